package composite

import (
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/proto"
)

// LengthCodec reads/writes the length prefix of a LenPrefixedBytes<L>,
// where L is one of VarInt, u8, i8, or bool (spec.md §3).
type LengthCodec struct {
	Read  func(r proto.Reader) (int, error)
	Write func(w proto.Writer, n int) error
}

// LengthVarInt treats the prefix as a VarInt.
var LengthVarInt = LengthCodec{
	Read: func(r proto.Reader) (int, error) {
		v, err := proto.ReadVarInt(r)
		return int(v), err
	},
	Write: func(w proto.Writer, n int) error {
		return proto.WriteVarInt(w, int32(n))
	},
}

// LengthU8 treats the prefix as a u8.
var LengthU8 = LengthCodec{
	Read: func(r proto.Reader) (int, error) {
		v, err := proto.ReadU8(r)
		return int(v), err
	},
	Write: func(w proto.Writer, n int) error {
		return proto.WriteU8(w, uint8(n))
	},
}

// LengthI8 treats the prefix as an i8.
var LengthI8 = LengthCodec{
	Read: func(r proto.Reader) (int, error) {
		v, err := proto.ReadI8(r)
		return int(v), err
	},
	Write: func(w proto.Writer, n int) error {
		return proto.WriteI8(w, int8(n))
	},
}

// LengthBool treats the prefix as a bool (0 or 1).
var LengthBool = LengthCodec{
	Read: func(r proto.Reader) (int, error) {
		v, err := proto.ReadBool(r)
		if !v {
			return 0, err
		}

		return 1, err
	},
	Write: func(w proto.Writer, n int) error {
		return proto.WriteBool(w, n != 0)
	},
}

// ReadLenPrefixedBytes decodes an L-prefixed opaque byte payload.
func ReadLenPrefixedBytes(r proto.Reader, lt LengthCodec) ([]byte, error) {
	n, err := lt.Read(r)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, mcerr.Decode("negative byte-blob length: %d", n)
	}

	return proto.ReadFixed(r, n)
}

// WriteLenPrefixedBytes encodes an L-prefixed opaque byte payload.
func WriteLenPrefixedBytes(w proto.Writer, data []byte, lt LengthCodec) error {
	if err := lt.Write(w, len(data)); err != nil {
		return err
	}

	return proto.WriteFixed(w, data)
}
