package composite

import (
	"github.com/go-mcproto/mcproto/proto"
)

// IdSet represents a set of registry ids, either referenced by a tag name
// or enumerated as an explicit array of ids (spec.md §3 IdSet).
type IdSet struct {
	ByTag bool
	Tag   string
	IDs   []int32
}

// ReadIdSet decodes an IdSet: a VarInt ty of 0 means a tag-name follows,
// otherwise ty-1 is the number of VarInt ids that follow.
func ReadIdSet(r proto.Reader) (IdSet, error) {
	ty, err := proto.ReadVarInt(r)
	if err != nil {
		return IdSet{}, err
	}

	if ty == 0 {
		tag, err := proto.ReadIdentifier(r)
		if err != nil {
			return IdSet{}, err
		}

		return IdSet{ByTag: true, Tag: tag}, nil
	}

	n := ty - 1
	ids := make([]int32, n)
	for i := range ids {
		id, err := proto.ReadVarInt(r)
		if err != nil {
			return IdSet{}, err
		}

		ids[i] = id
	}

	return IdSet{IDs: ids}, nil
}

// WriteIdSet encodes an IdSet.
func WriteIdSet(w proto.Writer, s IdSet) error {
	if s.ByTag {
		if err := proto.WriteVarInt(w, 0); err != nil {
			return err
		}

		return proto.WriteIdentifier(w, s.Tag)
	}

	if err := proto.WriteVarInt(w, int32(len(s.IDs))+1); err != nil {
		return err
	}

	for _, id := range s.IDs {
		if err := proto.WriteVarInt(w, id); err != nil {
			return err
		}
	}

	return nil
}
