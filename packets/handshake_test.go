package packets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandshake_RoundTrip(t *testing.T) {
	h := &Handshake{
		ProtocolVersion: 770,
		ServerAddress:   "play.example.com",
		ServerPort:      25565,
		Intent:          IntentLogin,
	}

	var buf bytes.Buffer
	require.NoError(t, h.WriteTo(&buf))

	got := &Handshake{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, h, got)
	require.Equal(t, "login", got.Intent.NextState())
}

func TestDispatch_ReadWritePacket_Status(t *testing.T) {
	p := &StatusRequest{}

	var buf bytes.Buffer
	require.NoError(t, WritePacket(stateStatus, serverbound, &buf, p))

	got, err := ReadPacket(stateStatus, serverbound, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.IsType(t, &StatusRequest{}, got)
}

func TestDispatch_ReadPacket_UnknownID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePacket(stateStatus, serverbound, &buf, &StatusRequest{}))

	raw := buf.Bytes()
	raw[0] = 0x7F // clobber the packet id VarInt with an id nothing registers

	_, err := ReadPacket(stateStatus, serverbound, bytes.NewReader(raw))
	require.Error(t, err)
}
