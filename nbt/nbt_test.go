package nbt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, tag Tag) Tag {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteTag(&buf, tag))

	got, err := ReadTag(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	return got
}

func TestScalarTags_RoundTrip(t *testing.T) {
	require.Equal(t, Tag{Kind: KindByte, Byte: -5}, roundTrip(t, Tag{Kind: KindByte, Byte: -5}))
	require.Equal(t, Tag{Kind: KindShort, Short: 1234}, roundTrip(t, Tag{Kind: KindShort, Short: 1234}))
	require.Equal(t, Tag{Kind: KindInt, Int: -70000}, roundTrip(t, Tag{Kind: KindInt, Int: -70000}))
	require.Equal(t, Tag{Kind: KindLong, Long: 1 << 40}, roundTrip(t, Tag{Kind: KindLong, Long: 1 << 40}))
	require.Equal(t, Tag{Kind: KindFloat, Float: 1.5}, roundTrip(t, Tag{Kind: KindFloat, Float: 1.5}))
	require.Equal(t, Tag{Kind: KindDouble, Double: 2.25}, roundTrip(t, Tag{Kind: KindDouble, Double: 2.25}))
}

func TestStringTag_RoundTrip(t *testing.T) {
	got := roundTrip(t, Tag{Kind: KindString, Str: "hello nbt"})
	require.Equal(t, "hello nbt", got.Str)
}

func TestByteArrayTag_RoundTrip(t *testing.T) {
	got := roundTrip(t, Tag{Kind: KindByteArray, ByteArray: []byte{1, 2, 3}})
	require.Equal(t, []byte{1, 2, 3}, got.ByteArray)
}

func TestIntArrayAndLongArray_RoundTrip(t *testing.T) {
	gotI := roundTrip(t, Tag{Kind: KindIntArray, IntArray: []int32{1, -2, 3}})
	require.Equal(t, []int32{1, -2, 3}, gotI.IntArray)

	gotL := roundTrip(t, Tag{Kind: KindLongArray, LongArray: []int64{1, -2, 3}})
	require.Equal(t, []int64{1, -2, 3}, gotL.LongArray)
}

func TestListTag_RoundTrip(t *testing.T) {
	list := Tag{Kind: KindList, List: []Tag{
		{Kind: KindInt, Int: 1},
		{Kind: KindInt, Int: 2},
	}}

	got := roundTrip(t, list)
	require.Equal(t, KindInt, got.ListKind)
	require.Len(t, got.List, 2)
	require.Equal(t, int32(1), got.List[0].Int)
	require.Equal(t, int32(2), got.List[1].Int)
}

func TestListTag_Empty(t *testing.T) {
	got := roundTrip(t, Tag{Kind: KindList, List: nil})
	require.Equal(t, KindEnd, got.ListKind)
	require.Empty(t, got.List)
}

func TestCompoundTag_RoundTrip(t *testing.T) {
	c := NewCompound()
	c.Put("health", Tag{Kind: KindFloat, Float: 20})
	c.Put("name", Tag{Kind: KindString, Str: "Steve"})

	got := roundTrip(t, c)
	require.Equal(t, KindCompound, got.Kind)

	health, ok := got.Get("health")
	require.True(t, ok)
	require.Equal(t, float32(20), health.Float)

	name, ok := got.Get("name")
	require.True(t, ok)
	require.Equal(t, "Steve", name.Str)

	_, ok = got.Get("missing")
	require.False(t, ok)
}

func TestNestedCompound_RoundTrip(t *testing.T) {
	inner := NewCompound()
	inner.Put("x", Tag{Kind: KindInt, Int: 7})

	outer := NewCompound()
	outer.Put("inner", inner)

	got := roundTrip(t, outer)
	gotInner, ok := got.Get("inner")
	require.True(t, ok)

	x, ok := gotInner.Get("x")
	require.True(t, ok)
	require.Equal(t, int32(7), x.Int)
}

func TestEndTag_RoundTrip(t *testing.T) {
	got := roundTrip(t, End)
	require.Equal(t, KindEnd, got.Kind)
}
