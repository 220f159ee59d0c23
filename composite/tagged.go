package composite

import (
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/proto"
)

// Discriminator reads/writes the tag value of a tagged sum, where the
// underlying wire type is one of VarInt, u8, i8, or bool (spec.md §3).
type Discriminator struct {
	Read  func(r proto.Reader) (int, error)
	Write func(w proto.Writer, n int) error
}

// DiscVarInt is a VarInt-encoded discriminator (the common case: Component,
// IdOrInline registry selectors, most packet sub-unions).
var DiscVarInt = Discriminator{
	Read: func(r proto.Reader) (int, error) {
		v, err := proto.ReadVarInt(r)
		return int(v), err
	},
	Write: func(w proto.Writer, n int) error {
		return proto.WriteVarInt(w, int32(n))
	},
}

// DiscU8 is a u8-encoded discriminator.
var DiscU8 = Discriminator{
	Read: func(r proto.Reader) (int, error) {
		v, err := proto.ReadU8(r)
		return int(v), err
	},
	Write: func(w proto.Writer, n int) error {
		return proto.WriteU8(w, uint8(n))
	},
}

// DiscI8 is an i8-encoded discriminator.
var DiscI8 = Discriminator{
	Read: func(r proto.Reader) (int, error) {
		v, err := proto.ReadI8(r)
		return int(v), err
	},
	Write: func(w proto.Writer, n int) error {
		return proto.WriteI8(w, int8(n))
	},
}

// DiscBool is a bool-encoded discriminator (two-variant sums only).
var DiscBool = Discriminator{
	Read: func(r proto.Reader) (int, error) {
		v, err := proto.ReadBool(r)
		if v {
			return 1, err
		}

		return 0, err
	},
	Write: func(w proto.Writer, n int) error {
		return proto.WriteBool(w, n != 0)
	},
}

// ReadTagIndex reads the discriminator value and returns the zero-based
// variant index (value - startIdx), rejecting values outside
// [startIdx, startIdx+variantCount).
func ReadTagIndex(r proto.Reader, d Discriminator, startIdx, variantCount int) (int, error) {
	val, err := d.Read(r)
	if err != nil {
		return 0, err
	}

	if val < startIdx || val-startIdx >= variantCount {
		return 0, mcerr.Decode("invalid enum index: %d", val)
	}

	return val - startIdx, nil
}

// WriteTagIndex writes startIdx+variantIndex as the discriminator.
func WriteTagIndex(w proto.Writer, d Discriminator, startIdx, variantIndex int) error {
	return d.Write(w, startIdx+variantIndex)
}
