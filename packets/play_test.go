package packets

import (
	"bytes"
	"testing"

	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/nbt"
	"github.com/go-mcproto/mcproto/proto"
	"github.com/go-mcproto/mcproto/slot"
	"github.com/stretchr/testify/require"
)

func TestAcceptTeleportation_RoundTrip(t *testing.T) {
	p := &AcceptTeleportation{TeleportID: 7}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &AcceptTeleportation{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestChat_RoundTrip(t *testing.T) {
	p := &Chat{
		Message:      "hello",
		Timestamp:    1000,
		Salt:         42,
		Signature:    nil,
		MessageCount: 3,
		Acknowledged: proto.FixedBitSet{},
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &Chat{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestSetEntityData_RoundTrip(t *testing.T) {
	p := &SetEntityData{
		EntityID: 99,
		Metadata: EntityMetadata{
			Entries: []EntityMetadatum{
				{Index: 0, Value: EntityMetadatumValue{Kind: 0, I8: -1}},
				{Index: 8, Value: EntityMetadatumValue{Kind: 8, Bool: true}},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &SetEntityData{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestSetEquipment_RoundTrip(t *testing.T) {
	p := &SetEquipment{
		EntityID: 5,
		Equipment: EntityEquipment{
			Entries: []EquipmentEntry{
				{SlotID: 0, Item: slot.Slot{ItemCount: 1, Item: &slot.Item{ItemID: 42}}},
				{SlotID: 5, Item: slot.Slot{ItemCount: 0}},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &SetEquipment{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestCommands_RoundTrip(t *testing.T) {
	p := &Commands{
		Nodes: []Node{
			{Kind: NodeRoot, Children: []int32{1}},
			{
				Kind:     NodeArgument,
				Children: nil,
				Name:     "value",
				Parser: Parser{
					Kind:    ParserBrigadierInteger,
					IntOpts: BrigadierNumOptions[int32]{Min: 0, Max: 100},
				},
			},
		},
		RootIndex: 0,
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &Commands{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestPlayerInfoUpdate_RoundTrip(t *testing.T) {
	p := &PlayerInfoUpdate{
		PlayersActionsData: PlayersActionsData{
			Players: []PlayerActions{
				{
					UUID: proto.UUID{1, 2, 3},
					Actions: []PlayerAction{
						{Kind: ActionAddPlayer, AddPlayerName: "Steve", AddPlayerProperties: nil},
						{Kind: ActionUpdateListed, Listed: true},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &PlayerInfoUpdate{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestPlayerInfoUpdate_MismatchedPlayerActions_Rejected(t *testing.T) {
	p := &PlayerInfoUpdate{
		PlayersActionsData: PlayersActionsData{
			Players: []PlayerActions{
				{UUID: proto.UUID{1}, Actions: []PlayerAction{{Kind: ActionUpdateListed, Listed: true}}},
				{UUID: proto.UUID{2}, Actions: []PlayerAction{{Kind: ActionUpdateLatency, Latency: 50}}},
			},
		},
	}

	var buf bytes.Buffer
	require.Error(t, p.WriteTo(&buf))
}

func TestMapItemData_RoundTrip(t *testing.T) {
	p := &MapItemData{
		MapID:  1,
		Scale:  2,
		Locked: true,
		Icons:  nil,
		Patch: MapColorPatch{
			Columns: 2,
			Rows:    2,
			X:       0,
			Z:       0,
			Data:    []byte{1, 2, 3, 4},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &MapItemData{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestStopSound_RoundTrip(t *testing.T) {
	source := int32(1)
	sound := "minecraft:block.anvil.land"

	p := &StopSound{Data: StopSoundData{Source: &source, Sound: &sound}}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &StopSound{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestUpdateAdvancements_RoundTrip(t *testing.T) {
	bg := "minecraft:textures/block/stone.png"

	p := &UpdateAdvancements{
		Reset: true,
		Advancements: []AdvancementEntry{
			{
				Key:    "minecraft:story/root",
				Parent: nil,
				Display: &AdvancementDisplay{
					Title:       nbt.Tag{Kind: nbt.KindString, Str: "Minecraft"},
					Description: nbt.Tag{Kind: nbt.KindString, Str: "The heart and story of the game"},
					Icon:        slot.Slot{ItemCount: 1, Item: &slot.Item{ItemID: 1}},
					Flags:       AdvancementDisplayFlags{Flags: 0x01, BackgroundTexture: &bg},
				},
				Criteria:     []string{"minecraft:story/root"},
				Requirements: [][]string{{"minecraft:story/root"}},
			},
		},
		Removed: []string{"minecraft:story/old"},
		Progress: []AdvancementProgress{
			{
				Key: "minecraft:story/root",
				Criteria: []AdvancementCriterionProgress{
					{CriterionID: "minecraft:story/root", DateOfAchieving: nil},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &UpdateAdvancements{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestExplode_RoundTrip(t *testing.T) {
	p := &Explode{
		X: 1, Y: 2, Z: 3,
		PlayerKnockback:  nil,
		BlockInteraction: 1,
		Sound:            slot.SoundEvent{SoundName: "minecraft:entity.generic.explode"},
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &Explode{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestSound_RoundTrip(t *testing.T) {
	p := &Sound{
		SoundEvent:  composite.IdOrInline[slot.SoundEvent]{ID: 12},
		SoundSource: 0,
		X:           100, Y: 64, Z: -200,
		Volume: 1.0,
		Pitch:  1.0,
		Seed:   123456,
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &Sound{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
}

func TestPlayerPosition_RoundTrip(t *testing.T) {
	p := &PlayerPosition{
		TeleportID: 1,
		X:          10, Y: 64, Z: -10,
		VelX: 0, VelY: 0, VelZ: 0,
		Yaw: 90, Pitch: 0,
		Flags: composite.BitfieldI32(0).With(0, true),
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	got := &PlayerPosition{}
	require.NoError(t, got.ReadFrom(bytes.NewReader(buf.Bytes())))
	require.Equal(t, p, got)
	require.True(t, got.Flags.Has(0))
}

func TestLevelChunkWithLight_Dispatch(t *testing.T) {
	p := &LevelChunkWithLight{}

	var buf bytes.Buffer
	require.NoError(t, WritePacket(statePlay, clientbound, &buf, p))

	got, err := ReadPacket(statePlay, clientbound, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.IsType(t, &LevelChunkWithLight{}, got)
}
