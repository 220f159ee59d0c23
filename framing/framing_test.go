package framing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoder_Uncompressed_Framing(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	// id 0 (1 byte) + 9-byte payload == 10 bytes of id+body.
	payload := bytes.Repeat([]byte{0x42}, 9)
	require.NoError(t, enc.WritePacket(RawPacket{ID: 0, Payload: payload}))

	got := buf.Bytes()
	require.Equal(t, byte(0x0a), got[0])
	require.Equal(t, byte(0x00), got[1]) // packet id VarInt
	require.Equal(t, payload, got[2:])
}

func TestEncoder_Decoder_Uncompressed_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	pkt := RawPacket{ID: 5, Payload: []byte("hello")}
	require.NoError(t, enc.WritePacket(pkt))

	dec := NewDecoder(&buf)
	got, err := dec.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, pkt, got)
}

func TestEncoder_Decoder_Compressed_BelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.SetCompression(256, 6)

	pkt := RawPacket{ID: 1, Payload: bytes.Repeat([]byte{0x01}, 50)}
	require.NoError(t, enc.WritePacket(pkt))

	dec := NewDecoder(&buf)
	dec.SetCompression(256, 6)

	got, err := dec.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, pkt, got)
}

func TestEncoder_Decoder_Compressed_AboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.SetCompression(256, 6)

	pkt := RawPacket{ID: 1, Payload: bytes.Repeat([]byte{0x00}, 9999)}
	require.NoError(t, enc.WritePacket(pkt))

	dec := NewDecoder(&buf)
	dec.SetCompression(256, 6)

	got, err := dec.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, pkt, got)
}

func TestDecoder_RejectsOutOfBoundsLength(t *testing.T) {
	var buf bytes.Buffer
	// write a VarInt length of MaxPacketSize+1 with no following data.
	for _, b := range varIntBytes(MaxPacketSize + 1) {
		buf.WriteByte(b)
	}

	dec := NewDecoder(&buf)
	_, err := dec.ReadPacket()
	require.Error(t, err)
}

func TestDecoder_RejectsNotCompressed(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	// No compression set on encoder: produces a plain uncompressed frame.
	payload := bytes.Repeat([]byte{0x02}, 300)
	require.NoError(t, enc.WritePacket(RawPacket{ID: 0, Payload: payload}))

	dec := NewDecoder(&buf)
	dec.SetCompression(256, 6)

	_, err := dec.ReadPacket()
	require.Error(t, err)
}

func TestEncryption_SetTwice_Fails(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	key := bytes.Repeat([]byte{0x01}, 16)

	require.NoError(t, enc.SetEncryption(key))
	require.Error(t, enc.SetEncryption(key))
}

func TestEncoder_Decoder_Encrypted_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	key := bytes.Repeat([]byte{0x09}, 16)

	enc := NewEncoder(&buf)
	require.NoError(t, enc.SetEncryption(key))

	pkt := RawPacket{ID: 3, Payload: []byte("encrypted payload")}
	require.NoError(t, enc.WritePacket(pkt))

	dec := NewDecoder(&buf)
	require.NoError(t, dec.SetEncryption(key))

	got, err := dec.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, pkt, got)
}

func varIntBytes(v int64) []byte {
	var out []byte
	u := uint32(v)
	for {
		if u&^uint32(0x7F) == 0 {
			out = append(out, byte(u))
			return out
		}

		out = append(out, byte(u&0x7F)|0x80)
		u >>= 7
	}
}
