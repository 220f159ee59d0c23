package proto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalars_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteBool(&buf, true))
	require.NoError(t, WriteU8(&buf, 200))
	require.NoError(t, WriteI8(&buf, -5))
	require.NoError(t, WriteU16(&buf, 60000))
	require.NoError(t, WriteI32(&buf, -12345))
	require.NoError(t, WriteU64(&buf, 1<<63))
	require.NoError(t, WriteF32(&buf, 3.5))
	require.NoError(t, WriteF64(&buf, -2.25))

	r := bytes.NewReader(buf.Bytes())

	b, err := ReadBool(r)
	require.NoError(t, err)
	require.True(t, b)

	u8, err := ReadU8(r)
	require.NoError(t, err)
	require.Equal(t, uint8(200), u8)

	i8, err := ReadI8(r)
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)

	u16, err := ReadU16(r)
	require.NoError(t, err)
	require.Equal(t, uint16(60000), u16)

	i32, err := ReadI32(r)
	require.NoError(t, err)
	require.Equal(t, int32(-12345), i32)

	u64, err := ReadU64(r)
	require.NoError(t, err)
	require.Equal(t, uint64(1<<63), u64)

	f32, err := ReadF32(r)
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	f64, err := ReadF64(r)
	require.NoError(t, err)
	require.Equal(t, float64(-2.25), f64)
}

func TestString_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "hello, minecraft"))

	got, err := ReadString(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "hello, minecraft", got)
}

func TestString_TooLong(t *testing.T) {
	var buf bytes.Buffer
	err := WriteString(&buf, string(make([]byte, MaxStringLength+1)))
	require.Error(t, err)
}

func TestUUID_RoundTrip(t *testing.T) {
	u, err := ParseUUID("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	require.Equal(t, "550e8400-e29b-41d4-a716-446655440000", FormatUUID(u))

	var buf bytes.Buffer
	require.NoError(t, WriteUUID(&buf, u))

	got, err := ReadUUID(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestUUID_ParseRejectsWrongLength(t *testing.T) {
	_, err := ParseUUID("550e8400-e29b-41d4-a716-44665544000")
	require.Error(t, err)
}

func TestPosition_RoundTrip(t *testing.T) {
	cases := []Position{
		{0, 0, 0},
		{1, 2, 3},
		{-1, -1, -1},
		{33554431, 2047, 33554431},
		{-33554432, -2048, -33554432},
	}

	for _, p := range cases {
		var buf bytes.Buffer
		require.NoError(t, WritePosition(&buf, p))

		got, err := ReadPosition(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestBitSet_RoundTrip(t *testing.T) {
	b := NewBitSet(130)
	b.Set(0)
	b.Set(64)
	b.Set(129)

	var buf bytes.Buffer
	require.NoError(t, WriteBitSet(&buf, b))

	got, err := ReadBitSet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, got.Get(0))
	require.True(t, got.Get(64))
	require.True(t, got.Get(129))
	require.False(t, got.Get(1))
}

func TestFixedBitSet_RoundTrip(t *testing.T) {
	b := NewFixedBitSet(20)
	b.Set(0)
	b.Set(19)

	var buf bytes.Buffer
	require.NoError(t, WriteFixedBitSet(&buf, b))
	require.Equal(t, 3, buf.Len()) // ceil(20/8) == 3

	got, err := ReadFixedBitSet(bytes.NewReader(buf.Bytes()), 20)
	require.NoError(t, err)
	require.True(t, got.Get(0))
	require.True(t, got.Get(19))
	require.False(t, got.Get(10))
}

func TestAngle_DegreesOpenQuestion(t *testing.T) {
	// Per spec.md Open Question #2, Degrees() intentionally returns the
	// raw*360/256 value (degrees), matching upstream naming confusion.
	a := AngleFromDegrees(180)
	require.InDelta(t, 180.0, float64(a.Degrees()), 3.0)
}
