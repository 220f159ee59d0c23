// Package slot implements the item-stack and data-component codec of
// spec.md §4.D: Slot, HashedSlot, Item, and the ~100-shape Component
// tagged sum (a representative subset here — see Component's doc comment).
package slot

import (
	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/proto"
)

// Slot is an item stack slot: item_count == 0 means empty, otherwise an
// Item follows.
type Slot struct {
	ItemCount int32
	Item      *Item
}

// ReadSlot decodes a Slot.
func ReadSlot(r proto.Reader) (Slot, error) {
	count, err := proto.ReadVarInt(r)
	if err != nil {
		return Slot{}, err
	}

	if count <= 0 {
		return Slot{ItemCount: count}, nil
	}

	item, err := ReadItem(r)
	if err != nil {
		return Slot{}, err
	}

	return Slot{ItemCount: count, Item: &item}, nil
}

// WriteSlot encodes a Slot.
func WriteSlot(w proto.Writer, s Slot) error {
	if err := proto.WriteVarInt(w, s.ItemCount); err != nil {
		return err
	}

	if s.Item == nil {
		return nil
	}

	return WriteItem(w, *s.Item)
}

// Item is the non-empty payload of a Slot. The protocol writes
// len(ComponentsToAdd) and len(ComponentsToRemove) as two independent
// VarInts *before* either list — preserved bit-exactly here even though
// it reads unusually compared to the rest of the protocol's single
// length-then-elements arrays.
type Item struct {
	ItemID            int32
	ComponentsToAdd   []Component
	ComponentsToRemove []int32
}

// ReadItem decodes an Item.
func ReadItem(r proto.Reader) (Item, error) {
	itemID, err := proto.ReadVarInt(r)
	if err != nil {
		return Item{}, err
	}

	addLen, err := proto.ReadVarInt(r)
	if err != nil {
		return Item{}, err
	}

	removeLen, err := proto.ReadVarInt(r)
	if err != nil {
		return Item{}, err
	}

	add := make([]Component, addLen)
	for i := range add {
		c, err := ReadComponent(r)
		if err != nil {
			return Item{}, err
		}

		add[i] = c
	}

	remove := make([]int32, removeLen)
	for i := range remove {
		v, err := proto.ReadVarInt(r)
		if err != nil {
			return Item{}, err
		}

		remove[i] = v
	}

	return Item{ItemID: itemID, ComponentsToAdd: add, ComponentsToRemove: remove}, nil
}

// WriteItem encodes an Item.
func WriteItem(w proto.Writer, it Item) error {
	if err := proto.WriteVarInt(w, it.ItemID); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, int32(len(it.ComponentsToAdd))); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, int32(len(it.ComponentsToRemove))); err != nil {
		return err
	}

	for _, c := range it.ComponentsToAdd {
		if err := WriteComponent(w, c); err != nil {
			return err
		}
	}

	for _, id := range it.ComponentsToRemove {
		if err := proto.WriteVarInt(w, id); err != nil {
			return err
		}
	}

	return nil
}

// HashedComponent is a (component_type, data_hash) pair used by HashedStack
// in place of the full component payload.
type HashedComponent struct {
	ComponentType int32
	DataHash      uint32
}

func readHashedComponent(r proto.Reader) (HashedComponent, error) {
	ty, err := proto.ReadVarInt(r)
	if err != nil {
		return HashedComponent{}, err
	}

	hash, err := proto.ReadU32(r)
	return HashedComponent{ComponentType: ty, DataHash: hash}, err
}

func writeHashedComponent(w proto.Writer, c HashedComponent) error {
	if err := proto.WriteVarInt(w, c.ComponentType); err != nil {
		return err
	}

	return proto.WriteU32(w, c.DataHash)
}

// HashedStack is the hashed-component form of an item stack used where the
// client only needs to verify it already has the matching component data.
type HashedStack struct {
	ItemID             int32
	ItemCount          int32
	ComponentsToAdd    []HashedComponent
	ComponentsToRemove []int32
}

// ReadHashedStack decodes a HashedStack.
func ReadHashedStack(r proto.Reader) (HashedStack, error) {
	itemID, err := proto.ReadVarInt(r)
	if err != nil {
		return HashedStack{}, err
	}

	itemCount, err := proto.ReadVarInt(r)
	if err != nil {
		return HashedStack{}, err
	}

	add, err := composite.ReadPrefixedArray(r, readHashedComponent)
	if err != nil {
		return HashedStack{}, err
	}

	remove, err := composite.ReadPrefixedArray(r, proto.ReadVarInt)
	if err != nil {
		return HashedStack{}, err
	}

	return HashedStack{ItemID: itemID, ItemCount: itemCount, ComponentsToAdd: add, ComponentsToRemove: remove}, nil
}

// WriteHashedStack encodes a HashedStack.
func WriteHashedStack(w proto.Writer, s HashedStack) error {
	if err := proto.WriteVarInt(w, s.ItemID); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, s.ItemCount); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, s.ComponentsToAdd, writeHashedComponent); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, s.ComponentsToRemove, proto.WriteVarInt)
}

// HashedSlot is an optional HashedStack (spec.md §4.D).
type HashedSlot = *HashedStack

// ReadHashedSlot decodes a HashedSlot.
func ReadHashedSlot(r proto.Reader) (HashedSlot, error) {
	return composite.ReadOption(r, ReadHashedStack)
}

// WriteHashedSlot encodes a HashedSlot.
func WriteHashedSlot(w proto.Writer, s HashedSlot) error {
	return composite.WriteOption(w, s, WriteHashedStack)
}
