package slot

import (
	"bytes"
	"testing"

	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/nbt"
	"github.com/stretchr/testify/require"
)

func TestSlot_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSlot(&buf, Slot{ItemCount: 0}))

	got, err := ReadSlot(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Nil(t, got.Item)
	require.Equal(t, int32(0), got.ItemCount)
}

func TestSlot_WithItem_ComponentOrderQuirk(t *testing.T) {
	item := Item{
		ItemID: 42,
		ComponentsToAdd: []Component{
			{Kind: ComponentMaxStackSize, Int32Val: 16},
			{Kind: ComponentUnbreakable},
		},
		ComponentsToRemove: []int32{7},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSlot(&buf, Slot{ItemCount: 1, Item: &item}))

	got, err := ReadSlot(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, got.Item)
	require.Equal(t, int32(42), got.Item.ItemID)
	require.Len(t, got.Item.ComponentsToAdd, 2)
	require.Equal(t, int32(16), got.Item.ComponentsToAdd[0].Int32Val)
	require.Equal(t, []int32{7}, got.Item.ComponentsToRemove)
}

func TestHashedStack_RoundTrip(t *testing.T) {
	hs := HashedStack{
		ItemID:          1,
		ItemCount:       2,
		ComponentsToAdd: []HashedComponent{{ComponentType: 3, DataHash: 0xdeadbeef}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHashedStack(&buf, hs))

	got, err := ReadHashedStack(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, hs, got)
}

func TestHashedSlot_Absent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHashedSlot(&buf, nil))

	got, err := ReadHashedSlot(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestComponent_CustomData(t *testing.T) {
	c := Component{Kind: ComponentCustomData, NBT: nbt.Tag{Kind: nbt.KindInt, Int: 7}}

	var buf bytes.Buffer
	require.NoError(t, WriteComponent(&buf, c))

	got, err := ReadComponent(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, int32(7), got.NBT.Int)
}

func TestComponent_Equippable(t *testing.T) {
	c := Component{
		Kind:       ComponentEquippable,
		EquipSlot:  EquippableHead,
		EquipSound: composite.IdOrInline[SoundEvent]{ID: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComponent(&buf, c))

	got, err := ReadComponent(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, EquippableHead, got.EquipSlot)
	require.Equal(t, int32(5), got.EquipSound.ID)
}

func TestComponent_UnknownKind_Rejected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buf.WriteByte(99)) // not a registry id this catalog models

	_, err := ReadComponent(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
}

func TestComponent_BundleContents_RecursiveSlots(t *testing.T) {
	inner := Item{ItemID: 1}
	c := Component{
		Kind:  ComponentBundleContents,
		Slots: []Slot{{ItemCount: 1, Item: &inner}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComponent(&buf, c))

	got, err := ReadComponent(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, got.Slots, 1)
	require.Equal(t, int32(1), got.Slots[0].Item.ItemID)
}
