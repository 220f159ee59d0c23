package mcconn

import (
	"bytes"
	"testing"

	"github.com/go-mcproto/mcproto/packets"
	"github.com/go-mcproto/mcproto/registry"
	"github.com/stretchr/testify/require"
)

func TestConnection_WriteReadPacket_RoundTrip(t *testing.T) {
	var wire bytes.Buffer

	writer := New(&wire, nil)
	writer.SetState(registry.StateHandshake)

	h := &packets.Handshake{
		ProtocolVersion: 770,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		Intent:          packets.IntentLogin,
	}
	require.NoError(t, writer.WritePacket(registry.Serverbound, h))

	reader := New(nil, bytes.NewReader(wire.Bytes()))
	reader.SetState(registry.StateHandshake)

	got, err := reader.ReadPacket(registry.Serverbound)
	require.NoError(t, err)
	require.IsType(t, &packets.Handshake{}, got)
	require.Equal(t, h, got)
}

func TestConnection_SetState_SwitchesCatalog(t *testing.T) {
	var wire bytes.Buffer

	conn := New(&wire, nil)
	conn.SetState(registry.StateStatus)
	require.Equal(t, registry.StateStatus, conn.State())

	require.NoError(t, conn.WritePacket(registry.Serverbound, &packets.StatusRequest{}))

	conn2 := New(nil, bytes.NewReader(wire.Bytes()))
	conn2.SetState(registry.StateStatus)

	got, err := conn2.ReadPacket(registry.Serverbound)
	require.NoError(t, err)
	require.IsType(t, &packets.StatusRequest{}, got)
}

func TestConnection_SetCompression_RoundTrip(t *testing.T) {
	var wire bytes.Buffer

	writer := New(&wire, nil)
	writer.SetState(registry.StateStatus)
	writer.SetCompression(0, 6)

	require.NoError(t, writer.WritePacket(registry.Serverbound, &packets.StatusRequest{}))

	reader := New(nil, bytes.NewReader(wire.Bytes()))
	reader.SetState(registry.StateStatus)
	reader.SetCompression(0, 6)

	got, err := reader.ReadPacket(registry.Serverbound)
	require.NoError(t, err)
	require.IsType(t, &packets.StatusRequest{}, got)
}

func TestConnection_SetEncryption_RoundTrip(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}

	var wire bytes.Buffer

	writer := New(&wire, nil)
	writer.SetState(registry.StateStatus)
	require.NoError(t, writer.SetEncryption(key))
	require.NoError(t, writer.WritePacket(registry.Serverbound, &packets.StatusRequest{}))

	reader := New(nil, bytes.NewReader(wire.Bytes()))
	reader.SetState(registry.StateStatus)
	require.NoError(t, reader.SetEncryption(key))

	got, err := reader.ReadPacket(registry.Serverbound)
	require.NoError(t, err)
	require.IsType(t, &packets.StatusRequest{}, got)
}
