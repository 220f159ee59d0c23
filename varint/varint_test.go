package varint

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarInt_RoundTrip(t *testing.T) {
	cases := []int32{0, 1, 127, 128, 16383, 16384, 1<<28 - 1, math.MaxInt32, -1, math.MinInt32}

	for _, n := range cases {
		buf := AppendInt(nil, n)
		require.Equal(t, WrittenSizeInt(n), len(buf))

		got, err := ReadInt(bytes.NewReader(buf))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestVarInt_KnownEncodings(t *testing.T) {
	cases := map[int32][]byte{
		0:          {0x00},
		1:          {0x01},
		2:          {0x02},
		127:        {0x7f},
		128:        {0x80, 0x01},
		255:        {0xff, 0x01},
		25565:      {0xdd, 0xc7, 0x01},
		2097151:    {0xff, 0xff, 0x7f},
		2147483647: {0xff, 0xff, 0xff, 0xff, 0x07},
		-1:         {0xff, 0xff, 0xff, 0xff, 0x0f},
		-2147483648: {0x80, 0x80, 0x80, 0x80, 0x08},
	}

	for n, want := range cases {
		require.Equal(t, want, AppendInt(nil, n), "encoding %d", n)

		got, err := ReadInt(bytes.NewReader(want))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestVarInt_TooBig(t *testing.T) {
	// 5 bytes, continuation bit set on the 5th (index 4).
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff}
	_, err := ReadInt(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrVarIntTooBig)
}

func TestVarLong_RoundTrip(t *testing.T) {
	cases := []int64{0, 1, 127, 128, math.MaxInt64, math.MinInt64, -1}

	for _, n := range cases {
		buf := AppendLong(nil, n)
		require.Equal(t, WrittenSizeLong(n), len(buf))

		got, err := ReadLong(bytes.NewReader(buf))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestVarLong_TooBig(t *testing.T) {
	data := make([]byte, 10)
	for i := range data {
		data[i] = 0xff
	}
	_, err := ReadLong(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrVarLongTooBig)
}

func TestWriteInt_MatchesAppend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInt(&buf, 300))
	require.Equal(t, AppendInt(nil, 300), buf.Bytes())
}
