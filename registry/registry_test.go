package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtocolID_KnownEntry(t *testing.T) {
	id, ok := ProtocolID(StateHandshake, Serverbound, "minecraft:intention")
	require.True(t, ok)
	require.Equal(t, int32(0), id)
}

func TestProtocolID_Unknown(t *testing.T) {
	_, ok := ProtocolID(StatePlay, Serverbound, "minecraft:does_not_exist")
	require.False(t, ok)
}

func TestProtocolID_CachedLookupMatchesFresh(t *testing.T) {
	id1, ok1 := ProtocolID(StateLogin, Clientbound, "minecraft:hello")
	id2, ok2 := ProtocolID(StateLogin, Clientbound, "minecraft:hello")
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, id1, id2)
}

func TestNameByID_RoundTrip(t *testing.T) {
	name, ok := NameByID(StateStatus, Serverbound, 1)
	require.True(t, ok)
	require.Equal(t, "minecraft:ping_request", name)
}
