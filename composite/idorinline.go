package composite

import (
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/proto"
)

// IdOrInline represents a value that is either a registry id or an inline
// definition of type T, per spec.md §3's Id-or-Inline<T>: a VarInt k is
// read first; k==0 means an inline T follows, k>0 means the value is
// registry id (k-1).
type IdOrInline[T any] struct {
	ID     int32
	Inline *T
}

// ReadIdOrInline decodes an Id-or-Inline<T> using readInline to decode the
// inline payload when present.
func ReadIdOrInline[T any](r proto.Reader, readInline ReadFunc[T]) (IdOrInline[T], error) {
	k, err := proto.ReadVarInt(r)
	if err != nil {
		return IdOrInline[T]{}, err
	}

	if k == 0 {
		v, err := readInline(r)
		if err != nil {
			return IdOrInline[T]{}, err
		}

		return IdOrInline[T]{Inline: &v}, nil
	}

	return IdOrInline[T]{ID: k - 1}, nil
}

// WriteIdOrInline encodes an Id-or-Inline<T>, writing the inline payload
// via writeInline when v.Inline is set.
func WriteIdOrInline[T any](w proto.Writer, v IdOrInline[T], writeInline WriteFunc[T]) error {
	if v.Inline != nil {
		if err := proto.WriteVarInt(w, 0); err != nil {
			return err
		}

		return writeInline(w, *v.Inline)
	}

	if v.ID < 0 {
		return mcerr.Programming("negative registry id in IdOrInline: %d", v.ID)
	}

	return proto.WriteVarInt(w, v.ID+1)
}
