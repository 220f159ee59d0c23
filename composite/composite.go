// Package composite implements the generic composite codecs of spec.md
// §4.B: Option<T>, PrefixedArray<T>, LenPrefixedBytes<L>, tagged sums over a
// pluggable discriminator type, bitfield structs, and Id-or-Inline<T>.
//
// Each is written once as a generic function/type rather than copy-pasted
// per concrete T, per the "Generic codec dispatch" design note in spec.md
// §9: Go doesn't have the teacher language's compile-time codegen, but
// generics give the same one-definition behavioral contract.
package composite

import (
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/proto"
)

// ReadFunc decodes a single T from r.
type ReadFunc[T any] func(r proto.Reader) (T, error)

// WriteFunc encodes a single T to w.
type WriteFunc[T any] func(w proto.Writer, v T) error

// ReadOption decodes a presence-prefixed optional value: a bool, then T if true.
func ReadOption[T any](r proto.Reader, read ReadFunc[T]) (*T, error) {
	present, err := proto.ReadBool(r)
	if err != nil {
		return nil, err
	}

	if !present {
		return nil, nil
	}

	v, err := read(r)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// WriteOption encodes a presence-prefixed optional value.
func WriteOption[T any](w proto.Writer, v *T, write WriteFunc[T]) error {
	if err := proto.WriteBool(w, v != nil); err != nil {
		return err
	}

	if v == nil {
		return nil
	}

	return write(w, *v)
}

// ReadPrefixedArray decodes a VarInt-length-prefixed sequence of T.
func ReadPrefixedArray[T any](r proto.Reader, read ReadFunc[T]) ([]T, error) {
	n, err := proto.ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, mcerr.Decode("negative array length: %d", n)
	}

	items := make([]T, n)
	for i := range items {
		v, err := read(r)
		if err != nil {
			return nil, err
		}

		items[i] = v
	}

	return items, nil
}

// WritePrefixedArray encodes a VarInt-length-prefixed sequence of T.
func WritePrefixedArray[T any](w proto.Writer, items []T, write WriteFunc[T]) error {
	if err := proto.WriteVarInt(w, int32(len(items))); err != nil {
		return err
	}

	for _, v := range items {
		if err := write(w, v); err != nil {
			return err
		}
	}

	return nil
}
