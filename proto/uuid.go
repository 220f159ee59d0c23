package proto

import (
	"encoding/hex"

	satori "github.com/satori/go.uuid"

	"github.com/go-mcproto/mcproto/mcerr"
)

// UUID is a 128-bit big-endian identifier. The underlying representation is
// satori/go.uuid's 16-byte array; this package owns wire encoding and
// dashed-string parsing directly since the protocol's string form is
// stricter than a general-purpose UUID parser (exactly 36 characters, dashes
// at fixed positions, no braces/urn prefixes).
type UUID = satori.UUID

// ReadUUID decodes a 128-bit big-endian UUID.
func ReadUUID(r Reader) (UUID, error) {
	buf, err := ReadFixed(r, 16)
	if err != nil {
		return UUID{}, err
	}

	var u UUID
	copy(u[:], buf)

	return u, nil
}

// WriteUUID encodes a 128-bit big-endian UUID.
func WriteUUID(w Writer, u UUID) error {
	return WriteFixed(w, u[:])
}

// ParseUUID parses the dashed string form (dashes at positions 8, 13, 18,
// 23), requiring exactly 36 characters, per spec.md §3.
func ParseUUID(s string) (UUID, error) {
	if len(s) != 36 {
		return UUID{}, mcerr.Decode("invalid uuid string length: %d", len(s))
	}

	for _, pos := range []int{8, 13, 18, 23} {
		if s[pos] != '-' {
			return UUID{}, mcerr.Decode("invalid uuid string: missing dash at %d", pos)
		}
	}

	hexDigits := s[:8] + s[9:13] + s[14:18] + s[19:23] + s[24:36]

	raw, err := hex.DecodeString(hexDigits)
	if err != nil {
		return UUID{}, mcerr.DecodeWrap(err, "invalid uuid hex")
	}

	var u UUID
	copy(u[:], raw)

	return u, nil
}

// FormatUUID renders the dashed string form of u.
func FormatUUID(u UUID) string {
	enc := hex.EncodeToString(u[:])

	return enc[:8] + "-" + enc[8:12] + "-" + enc[12:16] + "-" + enc[16:20] + "-" + enc[20:32]
}
