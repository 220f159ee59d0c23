// Package nbt implements the network form of Named Binary Tag used on the
// Minecraft Java Edition wire (spec.md §4.C): a tag-id byte followed by the
// tag's payload, with no root name field (the in-game NBT format's root
// name is omitted over the network).
package nbt

import (
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/proto"
)

// Kind identifies the concrete shape stored in a Tag.
type Kind uint8

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

// Tag is a single NBT value. Exactly one field matching Kind is meaningful;
// the others are zero. This mirrors original_source's Rust sum type, since
// Go has no tagged-union language feature.
type Tag struct {
	Kind Kind

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64

	ByteArray []byte
	Str       string
	List      []Tag
	ListKind  Kind // element kind, meaningful even for an empty list
	Compound  map[string]Tag
	IntArray  []int32
	LongArray []int64
}

// End is the canonical End tag, used to terminate Compound encoding.
var End = Tag{Kind: KindEnd}

// NewCompound returns an empty Compound tag.
func NewCompound() Tag {
	return Tag{Kind: KindCompound, Compound: map[string]Tag{}}
}

// Get returns the named child of a Compound tag, or (zero, false) if absent
// or if the receiver is not a Compound.
func (t Tag) Get(name string) (Tag, bool) {
	if t.Kind != KindCompound {
		return Tag{}, false
	}

	v, ok := t.Compound[name]
	return v, ok
}

// Put inserts name into a Compound tag. Put panics if t is not a Compound,
// matching the upstream "will panic if this is not a compound" contract.
func (t Tag) Put(name string, v Tag) {
	if t.Kind != KindCompound {
		panic("nbt: Put on non-compound tag")
	}

	t.Compound[name] = v
}

func (t Tag) id() uint8 {
	return uint8(t.Kind)
}

// ReadTag decodes a network-form NBT tag: one id byte followed by its payload.
func ReadTag(r proto.Reader) (Tag, error) {
	id, err := proto.ReadU8(r)
	if err != nil {
		return Tag{}, err
	}

	return readPayload(r, Kind(id))
}

// WriteTag encodes a network-form NBT tag: the id byte followed by its payload.
func WriteTag(w proto.Writer, t Tag) error {
	if err := proto.WriteU8(w, t.id()); err != nil {
		return err
	}

	return writePayload(w, t)
}

func readPayload(r proto.Reader, k Kind) (Tag, error) {
	switch k {
	case KindEnd:
		return Tag{Kind: KindEnd}, nil
	case KindByte:
		v, err := proto.ReadI8(r)
		return Tag{Kind: KindByte, Byte: v}, err
	case KindShort:
		v, err := proto.ReadI16(r)
		return Tag{Kind: KindShort, Short: v}, err
	case KindInt:
		v, err := proto.ReadI32(r)
		return Tag{Kind: KindInt, Int: v}, err
	case KindLong:
		v, err := proto.ReadI64(r)
		return Tag{Kind: KindLong, Long: v}, err
	case KindFloat:
		v, err := proto.ReadF32(r)
		return Tag{Kind: KindFloat, Float: v}, err
	case KindDouble:
		v, err := proto.ReadF64(r)
		return Tag{Kind: KindDouble, Double: v}, err
	case KindByteArray:
		n, err := proto.ReadI32(r)
		if err != nil {
			return Tag{}, err
		}

		data, err := proto.ReadFixed(r, int(n))
		return Tag{Kind: KindByteArray, ByteArray: data}, err
	case KindString:
		s, err := readString(r)
		return Tag{Kind: KindString, Str: s}, err
	case KindList:
		return readList(r)
	case KindCompound:
		return readCompound(r)
	case KindIntArray:
		n, err := proto.ReadI32(r)
		if err != nil {
			return Tag{}, err
		}

		data := make([]int32, n)
		for i := range data {
			v, err := proto.ReadI32(r)
			if err != nil {
				return Tag{}, err
			}

			data[i] = v
		}

		return Tag{Kind: KindIntArray, IntArray: data}, nil
	case KindLongArray:
		n, err := proto.ReadI32(r)
		if err != nil {
			return Tag{}, err
		}

		data := make([]int64, n)
		for i := range data {
			v, err := proto.ReadI64(r)
			if err != nil {
				return Tag{}, err
			}

			data[i] = v
		}

		return Tag{Kind: KindLongArray, LongArray: data}, nil
	default:
		return Tag{}, mcerr.Decode("invalid NBT tag id: %d", k)
	}
}

func readList(r proto.Reader) (Tag, error) {
	elemID, err := proto.ReadU8(r)
	if err != nil {
		return Tag{}, err
	}

	n, err := proto.ReadI32(r)
	if err != nil {
		return Tag{}, err
	}

	elems := make([]Tag, n)
	for i := range elems {
		v, err := readPayload(r, Kind(elemID))
		if err != nil {
			return Tag{}, err
		}

		elems[i] = v
	}

	return Tag{Kind: KindList, List: elems, ListKind: Kind(elemID)}, nil
}

func readCompound(r proto.Reader) (Tag, error) {
	c := NewCompound()

	for {
		id, err := proto.ReadU8(r)
		if err != nil {
			return Tag{}, err
		}

		if Kind(id) == KindEnd {
			return c, nil
		}

		name, err := readString(r)
		if err != nil {
			return Tag{}, err
		}

		v, err := readPayload(r, Kind(id))
		if err != nil {
			return Tag{}, err
		}

		c.Compound[name] = v
	}
}

func writePayload(w proto.Writer, t Tag) error {
	switch t.Kind {
	case KindEnd:
		return nil
	case KindByte:
		return proto.WriteI8(w, t.Byte)
	case KindShort:
		return proto.WriteI16(w, t.Short)
	case KindInt:
		return proto.WriteI32(w, t.Int)
	case KindLong:
		return proto.WriteI64(w, t.Long)
	case KindFloat:
		return proto.WriteF32(w, t.Float)
	case KindDouble:
		return proto.WriteF64(w, t.Double)
	case KindByteArray:
		if err := proto.WriteI32(w, int32(len(t.ByteArray))); err != nil {
			return err
		}

		return proto.WriteFixed(w, t.ByteArray)
	case KindString:
		return writeString(w, t.Str)
	case KindList:
		return writeList(w, t)
	case KindCompound:
		return writeCompound(w, t)
	case KindIntArray:
		if err := proto.WriteI32(w, int32(len(t.IntArray))); err != nil {
			return err
		}

		for _, v := range t.IntArray {
			if err := proto.WriteI32(w, v); err != nil {
				return err
			}
		}

		return nil
	case KindLongArray:
		if err := proto.WriteI32(w, int32(len(t.LongArray))); err != nil {
			return err
		}

		for _, v := range t.LongArray {
			if err := proto.WriteI64(w, v); err != nil {
				return err
			}
		}

		return nil
	default:
		return mcerr.Programming("invalid NBT tag kind: %d", t.Kind)
	}
}

func writeList(w proto.Writer, t Tag) error {
	if len(t.List) == 0 {
		if err := proto.WriteU8(w, uint8(KindEnd)); err != nil {
			return err
		}

		return proto.WriteI32(w, 0)
	}

	elemID := t.List[0].id()
	if err := proto.WriteU8(w, elemID); err != nil {
		return err
	}

	if err := proto.WriteI32(w, int32(len(t.List))); err != nil {
		return err
	}

	for _, e := range t.List {
		if err := writePayload(w, e); err != nil {
			return err
		}
	}

	return nil
}

func writeCompound(w proto.Writer, t Tag) error {
	for k, v := range t.Compound {
		if err := proto.WriteU8(w, v.id()); err != nil {
			return err
		}

		if err := writeString(w, k); err != nil {
			return err
		}

		if err := writePayload(w, v); err != nil {
			return err
		}
	}

	return proto.WriteU8(w, uint8(KindEnd))
}

// readString decodes NBT's u16-length-prefixed (not VarInt-prefixed, unlike
// the rest of the protocol) modified-UTF8-as-plain-UTF8 string form.
func readString(r proto.Reader) (string, error) {
	n, err := proto.ReadU16(r)
	if err != nil {
		return "", err
	}

	data, err := proto.ReadFixed(r, int(n))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func writeString(w proto.Writer, s string) error {
	if err := proto.WriteU16(w, uint16(len(s))); err != nil {
		return err
	}

	return proto.WriteFixed(w, []byte(s))
}
