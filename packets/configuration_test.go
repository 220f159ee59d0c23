package packets

import (
	"bytes"
	"testing"

	"github.com/go-mcproto/mcproto/nbt"
	"github.com/stretchr/testify/require"
)

func TestClientInformationConfig_RoundTrip(t *testing.T) {
	c := &ClientInformationConfig{
		Locale:              "en_US",
		ViewDistance:        10,
		ChatMode:            ChatModeCommandsOnly,
		ChatColors:          true,
		DisplayedSkinParts:  SkinParts(0x7F),
		MainHand:            MainHandLeft,
		EnableTextFiltering: false,
		AllowServerListings: true,
		ParticleStatus:      ParticleStatusDecreased,
	}

	var buf bytes.Buffer
	require.NoError(t, c.WriteTo(&buf))

	got := &ClientInformationConfig{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, c, got)
}

func TestRegistryData_RoundTrip(t *testing.T) {
	tag := nbt.NewCompound()
	tag.Put("foo", nbt.Tag{Kind: nbt.KindString, Str: "bar"})

	rd := &RegistryData{
		RegistryID: "minecraft:worldgen/biome",
		Entries: []RegistryEntry{
			{EntryID: "minecraft:plains", Data: &tag},
			{EntryID: "minecraft:desert", Data: nil},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, rd.WriteTo(&buf))

	got := &RegistryData{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, rd, got)
}

func TestResourcePackPush_RoundTrip(t *testing.T) {
	rp := &ResourcePackPush{
		URL:    "https://example.com/pack.zip",
		Hash:   "deadbeef",
		Forced: true,
	}

	var buf bytes.Buffer
	require.NoError(t, rp.WriteTo(&buf))

	got := &ResourcePackPush{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, rp, got)
}

func TestSelectKnownPacks_RoundTrip(t *testing.T) {
	sk := &SelectKnownPacks{
		Packs: []KnownPack{
			{Namespace: "minecraft", ID: "core", Version: "1.21"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, sk.WriteTo(&buf))

	got := &SelectKnownPacks{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, sk, got)
}
