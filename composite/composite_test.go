package composite

import (
	"bytes"
	"testing"

	"github.com/go-mcproto/mcproto/proto"
	"github.com/stretchr/testify/require"
)

func readVarIntString(r proto.Reader) (string, error) {
	return proto.ReadString(r)
}

func writeVarIntString(w proto.Writer, s string) error {
	return proto.WriteString(w, s)
}

func TestOption_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	s := "present"
	require.NoError(t, WriteOption(&buf, &s, writeVarIntString))

	got, err := ReadOption(bytes.NewReader(buf.Bytes()), readVarIntString)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "present", *got)
}

func TestOption_Absent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOption[string](&buf, nil, writeVarIntString))

	got, err := ReadOption(bytes.NewReader(buf.Bytes()), readVarIntString)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPrefixedArray_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	items := []string{"a", "bb", "ccc"}
	require.NoError(t, WritePrefixedArray(&buf, items, writeVarIntString))

	got, err := ReadPrefixedArray(bytes.NewReader(buf.Bytes()), readVarIntString)
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestPrefixedArray_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePrefixedArray[string](&buf, nil, writeVarIntString))

	got, err := ReadPrefixedArray(bytes.NewReader(buf.Bytes()), readVarIntString)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLenPrefixedBytes_AllLengthTypes(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}

	for _, lt := range []LengthCodec{LengthVarInt, LengthU8, LengthI8} {
		var buf bytes.Buffer
		require.NoError(t, WriteLenPrefixedBytes(&buf, data, lt))

		got, err := ReadLenPrefixedBytes(bytes.NewReader(buf.Bytes()), lt)
		require.NoError(t, err)
		require.Equal(t, data, got)
	}
}

func TestTagIndex_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTagIndex(&buf, DiscVarInt, 0, 3))

	idx, err := ReadTagIndex(bytes.NewReader(buf.Bytes()), DiscVarInt, 0, 5)
	require.NoError(t, err)
	require.Equal(t, 3, idx)
}

func TestTagIndex_OutOfRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, proto.WriteVarInt(&buf, 10))

	_, err := ReadTagIndex(bytes.NewReader(buf.Bytes()), DiscVarInt, 0, 5)
	require.Error(t, err)
}

func TestTagIndex_BelowStart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, proto.WriteVarInt(&buf, 1))

	_, err := ReadTagIndex(bytes.NewReader(buf.Bytes()), DiscVarInt, 5, 3)
	require.Error(t, err)
}

func TestBitfieldU8(t *testing.T) {
	var b BitfieldU8
	b = b.With(0, true).With(3, true)
	require.True(t, b.Has(0))
	require.True(t, b.Has(3))
	require.False(t, b.Has(1))

	b = b.With(0, false)
	require.False(t, b.Has(0))
}

func TestBitfieldI32(t *testing.T) {
	var b BitfieldI32
	b = b.With(10, true)
	require.True(t, b.Has(10))
	require.False(t, b.Has(9))
}

func TestIdOrInline_Inline(t *testing.T) {
	var buf bytes.Buffer
	v := IdOrInline[string]{Inline: strPtr("x")}
	require.NoError(t, WriteIdOrInline(&buf, v, writeVarIntString))

	got, err := ReadIdOrInline(bytes.NewReader(buf.Bytes()), readVarIntString)
	require.NoError(t, err)
	require.NotNil(t, got.Inline)
	require.Equal(t, "x", *got.Inline)
}

func TestIdOrInline_ID(t *testing.T) {
	var buf bytes.Buffer
	v := IdOrInline[string]{ID: 41}
	require.NoError(t, WriteIdOrInline(&buf, v, writeVarIntString))

	got, err := ReadIdOrInline(bytes.NewReader(buf.Bytes()), readVarIntString)
	require.NoError(t, err)
	require.Nil(t, got.Inline)
	require.Equal(t, int32(41), got.ID)
}

func TestIdSet_ByTag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIdSet(&buf, IdSet{ByTag: true, Tag: "minecraft:arrows"}))

	got, err := ReadIdSet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, got.ByTag)
	require.Equal(t, "minecraft:arrows", got.Tag)
}

func TestIdSet_IDArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIdSet(&buf, IdSet{IDs: []int32{1, 2, 3}}))

	got, err := ReadIdSet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.False(t, got.ByTag)
	require.Equal(t, []int32{1, 2, 3}, got.IDs)
}

func strPtr(s string) *string { return &s }
