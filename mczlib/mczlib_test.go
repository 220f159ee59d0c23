package mczlib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := New(6)
	data := bytes.Repeat([]byte{0x00}, 10000)

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	got, err := c.Decompress(compressed, 20000)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestCodec_DecompressRejectsNotCompressed(t *testing.T) {
	c := New(6)

	_, err := c.Decompress([]byte("this is not a zlib stream"), 1000)
	require.Error(t, err)
}

func TestCodec_DecompressRejectsTooLong(t *testing.T) {
	c := New(6)
	data := bytes.Repeat([]byte{0xAB}, 2000)

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	_, err = c.Decompress(compressed, 100)
	require.Error(t, err)
}
