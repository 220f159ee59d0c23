package mccipher

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()

	key, err := hex.DecodeString("7532710be168544415a69d2a122b4230")
	require.NoError(t, err)
	require.Len(t, key, 16)

	return key
}

func TestCFB8_EncryptThenDecrypt_IsIdentity(t *testing.T) {
	key := testKey(t)

	plaintext := []byte("the quick brown fox jumps over the lazy dog, 0123456789, and some more padding bytes to span multiple AES blocks of 16 bytes each")

	var ciphertext bytes.Buffer
	enc, err := NewStreamEncryptor(&ciphertext, key)
	require.NoError(t, err)

	_, err = enc.Write(plaintext)
	require.NoError(t, err)

	dec, err := NewStreamDecryptor(bytes.NewReader(ciphertext.Bytes()), key)
	require.NoError(t, err)

	got := make([]byte, len(plaintext))
	_, err = io.ReadFull(dec, got)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestCFB8_RejectsWrongKeySize(t *testing.T) {
	_, err := NewStreamEncryptor(&bytes.Buffer{}, []byte("too short"))
	require.Error(t, err)
}

func TestCFB8_ByteAtATimeWrites_MatchBulkWrite(t *testing.T) {
	key := testKey(t)
	plaintext := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}

	var bulk bytes.Buffer
	encBulk, err := NewStreamEncryptor(&bulk, key)
	require.NoError(t, err)
	_, err = encBulk.Write(plaintext)
	require.NoError(t, err)

	var piecewise bytes.Buffer
	encPiece, err := NewStreamEncryptor(&piecewise, key)
	require.NoError(t, err)
	for _, b := range plaintext {
		_, err = encPiece.Write([]byte{b})
		require.NoError(t, err)
	}

	require.Equal(t, bulk.Bytes(), piecewise.Bytes())
}
