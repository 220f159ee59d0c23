package proto

import (
	"io"
	"unicode/utf8"

	"github.com/go-mcproto/mcproto/mcerr"
)

// MaxStringLength is the maximum encoded UTF-8 byte length of a protocol
// String field (spec.md §3).
const MaxStringLength = 32767

// ReadString decodes a VarInt-prefixed UTF-8 string. The prefix counts
// encoded UTF-8 bytes, not runes.
func ReadString(r Reader) (string, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return "", err
	}

	if n < 0 || n > MaxStringLength {
		return "", mcerr.Decode("invalid string size: %d", n)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", mcerr.Transport(err, "read string body")
	}

	if !utf8.Valid(buf) {
		return "", mcerr.Decode("invalid utf8 in string")
	}

	return string(buf), nil
}

// WriteString encodes a VarInt-prefixed UTF-8 string.
func WriteString(w Writer, s string) error {
	if len(s) > MaxStringLength {
		return mcerr.Decode("invalid string size: %d", len(s))
	}

	if err := WriteVarInt(w, int32(len(s))); err != nil {
		return err
	}

	return writeAll(w, []byte(s))
}

// ReadIdentifier decodes a namespaced identifier, encoded on the wire as an
// ordinary protocol String.
func ReadIdentifier(r Reader) (string, error) {
	return ReadString(r)
}

// WriteIdentifier encodes a namespaced identifier as an ordinary protocol String.
func WriteIdentifier(w Writer, s string) error {
	return WriteString(w, s)
}
