package packets

import (
	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/nbt"
	"github.com/go-mcproto/mcproto/proto"
	"github.com/go-mcproto/mcproto/slot"
)

// ---------------------------------------------------------------------
// Serverbound
// ---------------------------------------------------------------------

// AcceptTeleportation confirms a clientbound PlayerPosition teleport.
type AcceptTeleportation struct {
	TeleportID int32
}

func (p *AcceptTeleportation) PacketName() string { return "minecraft:accept_teleportation" }

func (p *AcceptTeleportation) ReadFrom(r proto.Reader) error {
	var err error
	p.TeleportID, err = proto.ReadVarInt(r)

	return err
}

func (p *AcceptTeleportation) WriteTo(w proto.Writer) error {
	return proto.WriteVarInt(w, p.TeleportID)
}

// ChatAck acknowledges processing of a range of chat messages.
type ChatAck struct {
	Offset int32
}

func (p *ChatAck) PacketName() string { return "minecraft:chat_ack" }

func (p *ChatAck) ReadFrom(r proto.Reader) error {
	var err error
	p.Offset, err = proto.ReadVarInt(r)

	return err
}

func (p *ChatAck) WriteTo(w proto.Writer) error {
	return proto.WriteVarInt(w, p.Offset)
}

// ChatCommand sends an unsigned chat-prefixed command.
type ChatCommand struct {
	Command string
}

func (p *ChatCommand) PacketName() string { return "minecraft:chat_command" }

func (p *ChatCommand) ReadFrom(r proto.Reader) error {
	var err error
	p.Command, err = proto.ReadString(r)

	return err
}

func (p *ChatCommand) WriteTo(w proto.Writer) error {
	return proto.WriteString(w, p.Command)
}

// Chat is a plain signed chat message.
type Chat struct {
	Message      string
	Timestamp    int64
	Salt         int64
	Signature    *[]byte
	MessageCount int32
	Acknowledged proto.FixedBitSet
}

func (p *Chat) PacketName() string { return "minecraft:chat" }

func readFixedSignature(r proto.Reader) ([]byte, error) { return proto.ReadFixed(r, 256) }
func writeFixedSignature(w proto.Writer, b []byte) error { return proto.WriteFixed(w, b) }

func (p *Chat) ReadFrom(r proto.Reader) error {
	var err error

	if p.Message, err = proto.ReadString(r); err != nil {
		return err
	}

	if p.Timestamp, err = proto.ReadI64(r); err != nil {
		return err
	}

	if p.Salt, err = proto.ReadI64(r); err != nil {
		return err
	}

	if p.Signature, err = composite.ReadOption(r, readFixedSignature); err != nil {
		return err
	}

	if p.MessageCount, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.Acknowledged, err = proto.ReadFixedBitSet(r, 20)

	return err
}

func (p *Chat) WriteTo(w proto.Writer) error {
	if err := proto.WriteString(w, p.Message); err != nil {
		return err
	}

	if err := proto.WriteI64(w, p.Timestamp); err != nil {
		return err
	}

	if err := proto.WriteI64(w, p.Salt); err != nil {
		return err
	}

	if err := composite.WriteOption(w, p.Signature, writeFixedSignature); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.MessageCount); err != nil {
		return err
	}

	return proto.WriteFixedBitSet(w, p.Acknowledged)
}

// ClientCommandAction selects the action of a ClientCommand packet.
type ClientCommandAction int32

const (
	ClientCommandPerformRespawn ClientCommandAction = iota
	ClientCommandRequestStats
)

// ClientCommand requests a respawn or stats dump.
type ClientCommand struct {
	Action ClientCommandAction
}

func (p *ClientCommand) PacketName() string { return "minecraft:client_command" }

func (p *ClientCommand) ReadFrom(r proto.Reader) error {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 2)
	p.Action = ClientCommandAction(idx)

	return err
}

func (p *ClientCommand) WriteTo(w proto.Writer) error {
	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(p.Action))
}

// ClientInformationPlay re-announces client preferences once in Play
// (identical wire shape to ClientInformationConfig).
type ClientInformationPlay struct {
	ClientInformationConfig
}

func (p *ClientInformationPlay) PacketName() string { return "minecraft:client_information" }

// CloseContainerServer tells the server the client closed a container UI.
type CloseContainerServer struct {
	ContainerID uint8
}

func (p *CloseContainerServer) PacketName() string { return "minecraft:close_container" }

func (p *CloseContainerServer) ReadFrom(r proto.Reader) error {
	var err error
	p.ContainerID, err = proto.ReadU8(r)

	return err
}

func (p *CloseContainerServer) WriteTo(w proto.Writer) error {
	return proto.WriteU8(w, p.ContainerID)
}

// ChangedSlot is one {slot index, resulting item} pair of a ContainerClick.
type ChangedSlot struct {
	SlotIndex int16
	Item      slot.Slot
}

func readChangedSlot(r proto.Reader) (ChangedSlot, error) {
	var c ChangedSlot

	var err error

	if c.SlotIndex, err = proto.ReadI16(r); err != nil {
		return ChangedSlot{}, err
	}

	c.Item, err = slot.ReadSlot(r)

	return c, err
}

func writeChangedSlot(w proto.Writer, c ChangedSlot) error {
	if err := proto.WriteI16(w, c.SlotIndex); err != nil {
		return err
	}

	return slot.WriteSlot(w, c.Item)
}

// ContainerClick reports a click on an open container's slot.
type ContainerClick struct {
	ContainerID  uint8
	StateID      int32
	Slot         int16
	Button       int8
	Mode         int32
	ChangedSlots []ChangedSlot
	CarriedItem  slot.Slot
}

func (p *ContainerClick) PacketName() string { return "minecraft:container_click" }

func (p *ContainerClick) ReadFrom(r proto.Reader) error {
	var err error

	if p.ContainerID, err = proto.ReadU8(r); err != nil {
		return err
	}

	if p.StateID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Slot, err = proto.ReadI16(r); err != nil {
		return err
	}

	if p.Button, err = proto.ReadI8(r); err != nil {
		return err
	}

	if p.Mode, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.ChangedSlots, err = composite.ReadPrefixedArray(r, readChangedSlot); err != nil {
		return err
	}

	p.CarriedItem, err = slot.ReadSlot(r)

	return err
}

func (p *ContainerClick) WriteTo(w proto.Writer) error {
	if err := proto.WriteU8(w, p.ContainerID); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.StateID); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.Slot); err != nil {
		return err
	}

	if err := proto.WriteI8(w, p.Button); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.Mode); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, p.ChangedSlots, writeChangedSlot); err != nil {
		return err
	}

	return slot.WriteSlot(w, p.CarriedItem)
}

// CustomPayloadPlay carries an arbitrary plugin-channel message in Play.
type CustomPayloadPlay struct {
	Channel string
	Data    []byte
}

func (p *CustomPayloadPlay) PacketName() string { return "minecraft:custom_payload" }

func (p *CustomPayloadPlay) ReadFrom(r proto.Reader) error {
	var err error

	if p.Channel, err = proto.ReadIdentifier(r); err != nil {
		return err
	}

	p.Data, err = readRemainingBytes(r)

	return err
}

func (p *CustomPayloadPlay) WriteTo(w proto.Writer) error {
	if err := proto.WriteIdentifier(w, p.Channel); err != nil {
		return err
	}

	return writeRemainingBytes(w, p.Data)
}

// InteractKind selects which of Interact's three variants is present.
type InteractKind int32

const (
	InteractPlain InteractKind = iota
	InteractAttack
	InteractAt
)

// Interact reports a player interacting with an entity.
type Interact struct {
	EntityID int32
	Kind     InteractKind
	Hand     int32
	TargetX  float32
	TargetY  float32
	TargetZ  float32
	Sneaking bool
}

func (p *Interact) PacketName() string { return "minecraft:interact" }

func (p *Interact) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 3)
	if err != nil {
		return err
	}

	p.Kind = InteractKind(idx)

	switch p.Kind {
	case InteractAt:
		if p.TargetX, err = proto.ReadF32(r); err != nil {
			return err
		}

		if p.TargetY, err = proto.ReadF32(r); err != nil {
			return err
		}

		if p.TargetZ, err = proto.ReadF32(r); err != nil {
			return err
		}

		if p.Hand, err = proto.ReadVarInt(r); err != nil {
			return err
		}
	case InteractPlain:
		if p.Hand, err = proto.ReadVarInt(r); err != nil {
			return err
		}
	}

	p.Sneaking, err = proto.ReadBool(r)

	return err
}

func (p *Interact) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	if err := composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(p.Kind)); err != nil {
		return err
	}

	switch p.Kind {
	case InteractAt:
		if err := proto.WriteF32(w, p.TargetX); err != nil {
			return err
		}

		if err := proto.WriteF32(w, p.TargetY); err != nil {
			return err
		}

		if err := proto.WriteF32(w, p.TargetZ); err != nil {
			return err
		}

		if err := proto.WriteVarInt(w, p.Hand); err != nil {
			return err
		}
	case InteractPlain:
		if err := proto.WriteVarInt(w, p.Hand); err != nil {
			return err
		}
	}

	return proto.WriteBool(w, p.Sneaking)
}

// KeepAlivePlay carries an opaque id the receiver must echo back.
type KeepAlivePlay struct {
	ID int64
}

func (p *KeepAlivePlay) PacketName() string { return "minecraft:keep_alive" }

func (p *KeepAlivePlay) ReadFrom(r proto.Reader) error {
	var err error
	p.ID, err = proto.ReadI64(r)

	return err
}

func (p *KeepAlivePlay) WriteTo(w proto.Writer) error {
	return proto.WriteI64(w, p.ID)
}

// MovePlayerPos reports a position-only movement update.
type MovePlayerPos struct {
	X, Y, Z float64
	Flags   composite.BitfieldU8
}

func (p *MovePlayerPos) PacketName() string { return "minecraft:move_player_pos" }

func (p *MovePlayerPos) ReadFrom(r proto.Reader) error {
	var err error

	if p.X, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Y, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Z, err = proto.ReadF64(r); err != nil {
		return err
	}

	flags, err := proto.ReadU8(r)
	p.Flags = composite.BitfieldU8(flags)

	return err
}

func (p *MovePlayerPos) WriteTo(w proto.Writer) error {
	if err := proto.WriteF64(w, p.X); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Y); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Z); err != nil {
		return err
	}

	return proto.WriteU8(w, uint8(p.Flags))
}

// MovePlayerPosRot reports a position+rotation movement update.
type MovePlayerPosRot struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      composite.BitfieldU8
}

func (p *MovePlayerPosRot) PacketName() string { return "minecraft:move_player_pos_rot" }

func (p *MovePlayerPosRot) ReadFrom(r proto.Reader) error {
	var err error

	if p.X, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Y, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Z, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Yaw, err = proto.ReadF32(r); err != nil {
		return err
	}

	if p.Pitch, err = proto.ReadF32(r); err != nil {
		return err
	}

	flags, err := proto.ReadU8(r)
	p.Flags = composite.BitfieldU8(flags)

	return err
}

func (p *MovePlayerPosRot) WriteTo(w proto.Writer) error {
	if err := proto.WriteF64(w, p.X); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Y); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Z); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.Yaw); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.Pitch); err != nil {
		return err
	}

	return proto.WriteU8(w, uint8(p.Flags))
}

// MovePlayerRot reports a rotation-only movement update.
type MovePlayerRot struct {
	Yaw, Pitch float32
	Flags      composite.BitfieldU8
}

func (p *MovePlayerRot) PacketName() string { return "minecraft:move_player_rot" }

func (p *MovePlayerRot) ReadFrom(r proto.Reader) error {
	var err error

	if p.Yaw, err = proto.ReadF32(r); err != nil {
		return err
	}

	if p.Pitch, err = proto.ReadF32(r); err != nil {
		return err
	}

	flags, err := proto.ReadU8(r)
	p.Flags = composite.BitfieldU8(flags)

	return err
}

func (p *MovePlayerRot) WriteTo(w proto.Writer) error {
	if err := proto.WriteF32(w, p.Yaw); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.Pitch); err != nil {
		return err
	}

	return proto.WriteU8(w, uint8(p.Flags))
}

// MovePlayerStatusOnly reports only the on-ground/against-wall flags.
type MovePlayerStatusOnly struct {
	Flags composite.BitfieldU8
}

func (p *MovePlayerStatusOnly) PacketName() string { return "minecraft:move_player_status_only" }

func (p *MovePlayerStatusOnly) ReadFrom(r proto.Reader) error {
	flags, err := proto.ReadU8(r)
	p.Flags = composite.BitfieldU8(flags)

	return err
}

func (p *MovePlayerStatusOnly) WriteTo(w proto.Writer) error {
	return proto.WriteU8(w, uint8(p.Flags))
}

// PlayerAbilitiesServer reports the client's fly/sprint input flags.
type PlayerAbilitiesServer struct {
	Flags composite.BitfieldU8
}

func (p *PlayerAbilitiesServer) PacketName() string { return "minecraft:player_abilities" }

func (p *PlayerAbilitiesServer) ReadFrom(r proto.Reader) error {
	flags, err := proto.ReadU8(r)
	p.Flags = composite.BitfieldU8(flags)

	return err
}

func (p *PlayerAbilitiesServer) WriteTo(w proto.Writer) error {
	return proto.WriteU8(w, uint8(p.Flags))
}

// PlayerAction reports a digging/placement action at a block position.
type PlayerAction struct {
	Status   int32
	Location proto.Position
	Face     int8
	Sequence int32
}

func (p *PlayerAction) PacketName() string { return "minecraft:player_action" }

func (p *PlayerAction) ReadFrom(r proto.Reader) error {
	var err error

	if p.Status, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Location, err = proto.ReadPosition(r); err != nil {
		return err
	}

	if p.Face, err = proto.ReadI8(r); err != nil {
		return err
	}

	p.Sequence, err = proto.ReadVarInt(r)

	return err
}

func (p *PlayerAction) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.Status); err != nil {
		return err
	}

	if err := proto.WritePosition(w, p.Location); err != nil {
		return err
	}

	if err := proto.WriteI8(w, p.Face); err != nil {
		return err
	}

	return proto.WriteVarInt(w, p.Sequence)
}

// PlayerCommand reports a sneak/sprint/jump-with-horse action.
type PlayerCommand struct {
	EntityID  int32
	ActionID  int32
	JumpBoost int32
}

func (p *PlayerCommand) PacketName() string { return "minecraft:player_command" }

func (p *PlayerCommand) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.ActionID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.JumpBoost, err = proto.ReadVarInt(r)

	return err
}

func (p *PlayerCommand) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.ActionID); err != nil {
		return err
	}

	return proto.WriteVarInt(w, p.JumpBoost)
}

// PlayerInput carries the current WASD/jump/sneak/sprint input bitfield.
type PlayerInput struct {
	Flags composite.BitfieldU8
}

func (p *PlayerInput) PacketName() string { return "minecraft:player_input" }

func (p *PlayerInput) ReadFrom(r proto.Reader) error {
	flags, err := proto.ReadU8(r)
	p.Flags = composite.BitfieldU8(flags)

	return err
}

func (p *PlayerInput) WriteTo(w proto.Writer) error {
	return proto.WriteU8(w, uint8(p.Flags))
}

// PongPlay answers a clientbound Ping.
type PongPlay struct {
	ID int32
}

func (p *PongPlay) PacketName() string { return "minecraft:pong" }

func (p *PongPlay) ReadFrom(r proto.Reader) error {
	var err error
	p.ID, err = proto.ReadI32(r)

	return err
}

func (p *PongPlay) WriteTo(w proto.Writer) error {
	return proto.WriteI32(w, p.ID)
}

// SetCarriedItem selects the active hotbar slot.
type SetCarriedItem struct {
	Slot int16
}

func (p *SetCarriedItem) PacketName() string { return "minecraft:set_carried_item" }

func (p *SetCarriedItem) ReadFrom(r proto.Reader) error {
	var err error
	p.Slot, err = proto.ReadI16(r)

	return err
}

func (p *SetCarriedItem) WriteTo(w proto.Writer) error {
	return proto.WriteI16(w, p.Slot)
}

// SetCreativeModeSlot directly overwrites an inventory slot in creative mode.
type SetCreativeModeSlot struct {
	Slot        int16
	ClickedItem slot.Slot
}

func (p *SetCreativeModeSlot) PacketName() string { return "minecraft:set_creative_mode_slot" }

func (p *SetCreativeModeSlot) ReadFrom(r proto.Reader) error {
	var err error

	if p.Slot, err = proto.ReadI16(r); err != nil {
		return err
	}

	p.ClickedItem, err = slot.ReadSlot(r)

	return err
}

func (p *SetCreativeModeSlot) WriteTo(w proto.Writer) error {
	if err := proto.WriteI16(w, p.Slot); err != nil {
		return err
	}

	return slot.WriteSlot(w, p.ClickedItem)
}

// Swing plays the main/off hand swing animation.
type Swing struct {
	Hand int32
}

func (p *Swing) PacketName() string { return "minecraft:swing" }

func (p *Swing) ReadFrom(r proto.Reader) error {
	var err error
	p.Hand, err = proto.ReadVarInt(r)

	return err
}

func (p *Swing) WriteTo(w proto.Writer) error {
	return proto.WriteVarInt(w, p.Hand)
}

// UseItemOn reports a right-click on a block face.
type UseItemOn struct {
	Hand           int32
	Location       proto.Position
	Face           int32
	CursorX        float32
	CursorY        float32
	CursorZ        float32
	InsideBlock    bool
	WorldBorderHit bool
	Sequence       int32
}

func (p *UseItemOn) PacketName() string { return "minecraft:use_item_on" }

func (p *UseItemOn) ReadFrom(r proto.Reader) error {
	var err error

	if p.Hand, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Location, err = proto.ReadPosition(r); err != nil {
		return err
	}

	if p.Face, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.CursorX, err = proto.ReadF32(r); err != nil {
		return err
	}

	if p.CursorY, err = proto.ReadF32(r); err != nil {
		return err
	}

	if p.CursorZ, err = proto.ReadF32(r); err != nil {
		return err
	}

	if p.InsideBlock, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.WorldBorderHit, err = proto.ReadBool(r); err != nil {
		return err
	}

	p.Sequence, err = proto.ReadVarInt(r)

	return err
}

func (p *UseItemOn) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.Hand); err != nil {
		return err
	}

	if err := proto.WritePosition(w, p.Location); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.Face); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.CursorX); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.CursorY); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.CursorZ); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.InsideBlock); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.WorldBorderHit); err != nil {
		return err
	}

	return proto.WriteVarInt(w, p.Sequence)
}

// UseItem reports a right-click in the air (eating, drawing a bow, ...).
type UseItem struct {
	Hand     int32
	Sequence int32
	Yaw      float32
	Pitch    float32
}

func (p *UseItem) PacketName() string { return "minecraft:use_item" }

func (p *UseItem) ReadFrom(r proto.Reader) error {
	var err error

	if p.Hand, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Sequence, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Yaw, err = proto.ReadF32(r); err != nil {
		return err
	}

	p.Pitch, err = proto.ReadF32(r)

	return err
}

func (p *UseItem) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.Hand); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.Sequence); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.Yaw); err != nil {
		return err
	}

	return proto.WriteF32(w, p.Pitch)
}

// ---------------------------------------------------------------------
// Clientbound
// ---------------------------------------------------------------------

// BundleDelimiter has no fields: it brackets a run of packets the client
// must apply atomically.
type BundleDelimiter struct{}

func (p *BundleDelimiter) PacketName() string         { return "minecraft:bundle_delimiter" }
func (p *BundleDelimiter) ReadFrom(r proto.Reader) error { return nil }
func (p *BundleDelimiter) WriteTo(w proto.Writer) error  { return nil }

// AddEntity spawns a non-living (or living) entity at a position.
type AddEntity struct {
	EntityID   int32
	EntityUUID proto.UUID
	Kind       int32
	X, Y, Z    float64
	Pitch      proto.Angle
	Yaw        proto.Angle
	HeadYaw    proto.Angle
	Data       int32
	VelX       int16
	VelY       int16
	VelZ       int16
}

func (p *AddEntity) PacketName() string { return "minecraft:add_entity" }

func (p *AddEntity) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.EntityUUID, err = proto.ReadUUID(r); err != nil {
		return err
	}

	if p.Kind, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.X, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Y, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Z, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Pitch, err = proto.ReadAngle(r); err != nil {
		return err
	}

	if p.Yaw, err = proto.ReadAngle(r); err != nil {
		return err
	}

	if p.HeadYaw, err = proto.ReadAngle(r); err != nil {
		return err
	}

	if p.Data, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.VelX, err = proto.ReadI16(r); err != nil {
		return err
	}

	if p.VelY, err = proto.ReadI16(r); err != nil {
		return err
	}

	p.VelZ, err = proto.ReadI16(r)

	return err
}

func (p *AddEntity) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	if err := proto.WriteUUID(w, p.EntityUUID); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.Kind); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.X); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Y); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Z); err != nil {
		return err
	}

	if err := proto.WriteAngle(w, p.Pitch); err != nil {
		return err
	}

	if err := proto.WriteAngle(w, p.Yaw); err != nil {
		return err
	}

	if err := proto.WriteAngle(w, p.HeadYaw); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.Data); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.VelX); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.VelY); err != nil {
		return err
	}

	return proto.WriteI16(w, p.VelZ)
}

// Animate plays a one-shot entity animation (swing, hurt, ...).
type Animate struct {
	EntityID int32
	Action   uint8
}

func (p *Animate) PacketName() string { return "minecraft:animate" }

func (p *Animate) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.Action, err = proto.ReadU8(r)

	return err
}

func (p *Animate) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	return proto.WriteU8(w, p.Action)
}

// BlockUpdate sets a single block state at a position.
type BlockUpdate struct {
	Location proto.Position
	BlockID  int32
}

func (p *BlockUpdate) PacketName() string { return "minecraft:block_update" }

func (p *BlockUpdate) ReadFrom(r proto.Reader) error {
	var err error

	if p.Location, err = proto.ReadPosition(r); err != nil {
		return err
	}

	p.BlockID, err = proto.ReadVarInt(r)

	return err
}

func (p *BlockUpdate) WriteTo(w proto.Writer) error {
	if err := proto.WritePosition(w, p.Location); err != nil {
		return err
	}

	return proto.WriteVarInt(w, p.BlockID)
}

// BossEventAction is the tagged sum of BossEvent's six update kinds.
type BossEventAction int32

const (
	BossEventAdd BossEventAction = iota
	BossEventRemove
	BossEventUpdateHealth
	BossEventUpdateTitle
	BossEventUpdateStyle
	BossEventUpdateFlags
)

// BossEvent updates the client's boss-bar HUD.
type BossEvent struct {
	UUID     proto.UUID
	Action   BossEventAction
	Title    *slot.TextComponent
	Health   float32
	Color    int32
	Division int32
	Flags    uint8
}

func (p *BossEvent) PacketName() string { return "minecraft:boss_event" }

func (p *BossEvent) ReadFrom(r proto.Reader) error {
	var err error

	if p.UUID, err = proto.ReadUUID(r); err != nil {
		return err
	}

	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 6)
	if err != nil {
		return err
	}

	p.Action = BossEventAction(idx)

	switch p.Action {
	case BossEventAdd:
		t, err := readTextComponent(r)
		if err != nil {
			return err
		}

		p.Title = &t

		if p.Health, err = proto.ReadF32(r); err != nil {
			return err
		}

		if p.Color, err = proto.ReadVarInt(r); err != nil {
			return err
		}

		if p.Division, err = proto.ReadVarInt(r); err != nil {
			return err
		}

		p.Flags, err = proto.ReadU8(r)
	case BossEventUpdateHealth:
		p.Health, err = proto.ReadF32(r)
	case BossEventUpdateTitle:
		t, err := readTextComponent(r)
		if err != nil {
			return err
		}

		p.Title = &t
	case BossEventUpdateStyle:
		if p.Color, err = proto.ReadVarInt(r); err != nil {
			return err
		}

		p.Division, err = proto.ReadVarInt(r)
	case BossEventUpdateFlags:
		p.Flags, err = proto.ReadU8(r)
	}

	return err
}

func (p *BossEvent) WriteTo(w proto.Writer) error {
	if err := proto.WriteUUID(w, p.UUID); err != nil {
		return err
	}

	if err := composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(p.Action)); err != nil {
		return err
	}

	switch p.Action {
	case BossEventAdd:
		if err := writeTextComponent(w, *p.Title); err != nil {
			return err
		}

		if err := proto.WriteF32(w, p.Health); err != nil {
			return err
		}

		if err := proto.WriteVarInt(w, p.Color); err != nil {
			return err
		}

		if err := proto.WriteVarInt(w, p.Division); err != nil {
			return err
		}

		return proto.WriteU8(w, p.Flags)
	case BossEventUpdateHealth:
		return proto.WriteF32(w, p.Health)
	case BossEventUpdateTitle:
		return writeTextComponent(w, *p.Title)
	case BossEventUpdateStyle:
		if err := proto.WriteVarInt(w, p.Color); err != nil {
			return err
		}

		return proto.WriteVarInt(w, p.Division)
	case BossEventUpdateFlags:
		return proto.WriteU8(w, p.Flags)
	}

	return nil
}

// ChangeDifficulty updates the world's difficulty and its lock state.
type ChangeDifficulty struct {
	Difficulty uint8
	Locked     bool
}

func (p *ChangeDifficulty) PacketName() string { return "minecraft:change_difficulty" }

func (p *ChangeDifficulty) ReadFrom(r proto.Reader) error {
	var err error

	if p.Difficulty, err = proto.ReadU8(r); err != nil {
		return err
	}

	p.Locked, err = proto.ReadBool(r)

	return err
}

func (p *ChangeDifficulty) WriteTo(w proto.Writer) error {
	if err := proto.WriteU8(w, p.Difficulty); err != nil {
		return err
	}

	return proto.WriteBool(w, p.Locked)
}

// ContainerClose tells the client to close its open container UI.
type ContainerClose struct {
	ContainerID uint8
}

func (p *ContainerClose) PacketName() string { return "minecraft:container_close" }

func (p *ContainerClose) ReadFrom(r proto.Reader) error {
	var err error
	p.ContainerID, err = proto.ReadU8(r)

	return err
}

func (p *ContainerClose) WriteTo(w proto.Writer) error {
	return proto.WriteU8(w, p.ContainerID)
}

// ContainerSetContent replaces the full contents of an open container.
type ContainerSetContent struct {
	ContainerID uint8
	StateID     int32
	Items       []slot.Slot
	CarriedItem slot.Slot
}

func (p *ContainerSetContent) PacketName() string { return "minecraft:container_set_content" }

func (p *ContainerSetContent) ReadFrom(r proto.Reader) error {
	var err error

	if p.ContainerID, err = proto.ReadU8(r); err != nil {
		return err
	}

	if p.StateID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Items, err = composite.ReadPrefixedArray(r, slot.ReadSlot); err != nil {
		return err
	}

	p.CarriedItem, err = slot.ReadSlot(r)

	return err
}

func (p *ContainerSetContent) WriteTo(w proto.Writer) error {
	if err := proto.WriteU8(w, p.ContainerID); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.StateID); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, p.Items, slot.WriteSlot); err != nil {
		return err
	}

	return slot.WriteSlot(w, p.CarriedItem)
}

// ContainerSetSlot overwrites one slot of an open container.
type ContainerSetSlot struct {
	ContainerID int8
	StateID     int32
	Slot        int16
	Item        slot.Slot
}

func (p *ContainerSetSlot) PacketName() string { return "minecraft:container_set_slot" }

func (p *ContainerSetSlot) ReadFrom(r proto.Reader) error {
	var err error

	if p.ContainerID, err = proto.ReadI8(r); err != nil {
		return err
	}

	if p.StateID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Slot, err = proto.ReadI16(r); err != nil {
		return err
	}

	p.Item, err = slot.ReadSlot(r)

	return err
}

func (p *ContainerSetSlot) WriteTo(w proto.Writer) error {
	if err := proto.WriteI8(w, p.ContainerID); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.StateID); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.Slot); err != nil {
		return err
	}

	return slot.WriteSlot(w, p.Item)
}

// Cooldown starts (or clears, at Ticks==0) an item-use cooldown.
type Cooldown struct {
	ItemID        int32
	CooldownTicks int32
}

func (p *Cooldown) PacketName() string { return "minecraft:cooldown" }

func (p *Cooldown) ReadFrom(r proto.Reader) error {
	var err error

	if p.ItemID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.CooldownTicks, err = proto.ReadVarInt(r)

	return err
}

func (p *Cooldown) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.ItemID); err != nil {
		return err
	}

	return proto.WriteVarInt(w, p.CooldownTicks)
}

// CustomPayloadClientbound carries an arbitrary plugin-channel message
// from the server.
type CustomPayloadClientbound struct {
	Channel string
	Data    []byte
}

func (p *CustomPayloadClientbound) PacketName() string { return "minecraft:custom_payload" }

func (p *CustomPayloadClientbound) ReadFrom(r proto.Reader) error {
	var err error

	if p.Channel, err = proto.ReadIdentifier(r); err != nil {
		return err
	}

	p.Data, err = readRemainingBytes(r)

	return err
}

func (p *CustomPayloadClientbound) WriteTo(w proto.Writer) error {
	if err := proto.WriteIdentifier(w, p.Channel); err != nil {
		return err
	}

	return writeRemainingBytes(w, p.Data)
}

// DisconnectPlay ends the connection with a text-component reason.
type DisconnectPlay struct {
	Reason slot.TextComponent
}

func (p *DisconnectPlay) PacketName() string { return "minecraft:disconnect" }

func (p *DisconnectPlay) ReadFrom(r proto.Reader) error {
	var err error
	p.Reason, err = readTextComponent(r)

	return err
}

func (p *DisconnectPlay) WriteTo(w proto.Writer) error {
	return writeTextComponent(w, p.Reason)
}

// EntityEvent triggers a one-shot client-side entity status effect.
type EntityEvent struct {
	EntityID     int32
	EntityStatus int8
}

func (p *EntityEvent) PacketName() string { return "minecraft:entity_event" }

func (p *EntityEvent) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadI32(r); err != nil {
		return err
	}

	p.EntityStatus, err = proto.ReadI8(r)

	return err
}

func (p *EntityEvent) WriteTo(w proto.Writer) error {
	if err := proto.WriteI32(w, p.EntityID); err != nil {
		return err
	}

	return proto.WriteI8(w, p.EntityStatus)
}

// Explode triggers an explosion effect with optional player-knockback and
// a block-interaction mode, exercising the LpVec3 packed-velocity codec.
type Explode struct {
	X, Y, Z          float64
	PlayerKnockback  *LpVec3
	BlockInteraction int32
	Sound            slot.SoundEvent
}

func (p *Explode) PacketName() string { return "minecraft:explode" }

func (p *Explode) ReadFrom(r proto.Reader) error {
	var err error

	if p.X, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Y, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Z, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.PlayerKnockback, err = composite.ReadOption(r, readLpVec3); err != nil {
		return err
	}

	if p.BlockInteraction, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.Sound, err = slot.ReadSoundEvent(r)

	return err
}

func (p *Explode) WriteTo(w proto.Writer) error {
	if err := proto.WriteF64(w, p.X); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Y); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Z); err != nil {
		return err
	}

	if err := composite.WriteOption(w, p.PlayerKnockback, writeLpVec3); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.BlockInteraction); err != nil {
		return err
	}

	return slot.WriteSoundEvent(w, p.Sound)
}

// GameEvent signals a world-level state change (rain start, game mode
// change, ...) keyed by a numeric event id.
type GameEvent struct {
	Event uint8
	Value float32
}

func (p *GameEvent) PacketName() string { return "minecraft:game_event" }

func (p *GameEvent) ReadFrom(r proto.Reader) error {
	var err error

	if p.Event, err = proto.ReadU8(r); err != nil {
		return err
	}

	p.Value, err = proto.ReadF32(r)

	return err
}

func (p *GameEvent) WriteTo(w proto.Writer) error {
	if err := proto.WriteU8(w, p.Event); err != nil {
		return err
	}

	return proto.WriteF32(w, p.Value)
}

// KeepAliveClientbound is a server-initiated heartbeat the client must echo.
type KeepAliveClientbound struct {
	ID int64
}

func (p *KeepAliveClientbound) PacketName() string { return "minecraft:keep_alive" }

func (p *KeepAliveClientbound) ReadFrom(r proto.Reader) error {
	var err error
	p.ID, err = proto.ReadI64(r)

	return err
}

func (p *KeepAliveClientbound) WriteTo(w proto.Writer) error {
	return proto.WriteI64(w, p.ID)
}

// BlockEntityInfo is one pre-baked block entity carried in a chunk packet.
type BlockEntityInfo struct {
	PackedXZ uint8
	Y        int16
	Kind     int32
	Data     nbt.Tag
}

func readBlockEntityInfo(r proto.Reader) (BlockEntityInfo, error) {
	var b BlockEntityInfo

	var err error

	if b.PackedXZ, err = proto.ReadU8(r); err != nil {
		return BlockEntityInfo{}, err
	}

	if b.Y, err = proto.ReadI16(r); err != nil {
		return BlockEntityInfo{}, err
	}

	if b.Kind, err = proto.ReadVarInt(r); err != nil {
		return BlockEntityInfo{}, err
	}

	b.Data, err = nbt.ReadTag(r)

	return b, err
}

func writeBlockEntityInfo(w proto.Writer, b BlockEntityInfo) error {
	if err := proto.WriteU8(w, b.PackedXZ); err != nil {
		return err
	}

	if err := proto.WriteI16(w, b.Y); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, b.Kind); err != nil {
		return err
	}

	return nbt.WriteTag(w, b.Data)
}

// LevelChunkWithLight carries one chunk column's block/biome data and its
// sky/block light arrays, exercising the variable-length BitSet codec for
// each light section's presence masks.
type LevelChunkWithLight struct {
	ChunkX, ChunkZ     int32
	Heightmaps         nbt.Tag
	Data               []byte
	BlockEntities      []BlockEntityInfo
	SkyLightMask       proto.BitSet
	BlockLightMask     proto.BitSet
	EmptySkyLightMask  proto.BitSet
	EmptyBlockLightMask proto.BitSet
	SkyLightArrays     [][]byte
	BlockLightArrays   [][]byte
}

func readByteArray(r proto.Reader) ([]byte, error) {
	return composite.ReadLenPrefixedBytes(r, composite.LengthVarInt)
}

func writeByteArray(w proto.Writer, b []byte) error {
	return composite.WriteLenPrefixedBytes(w, b, composite.LengthVarInt)
}

func (p *LevelChunkWithLight) PacketName() string { return "minecraft:level_chunk_with_light" }

func (p *LevelChunkWithLight) ReadFrom(r proto.Reader) error {
	var err error

	if p.ChunkX, err = proto.ReadI32(r); err != nil {
		return err
	}

	if p.ChunkZ, err = proto.ReadI32(r); err != nil {
		return err
	}

	if p.Heightmaps, err = nbt.ReadTag(r); err != nil {
		return err
	}

	if p.Data, err = readByteArray(r); err != nil {
		return err
	}

	if p.BlockEntities, err = composite.ReadPrefixedArray(r, readBlockEntityInfo); err != nil {
		return err
	}

	if p.SkyLightMask, err = proto.ReadBitSet(r); err != nil {
		return err
	}

	if p.BlockLightMask, err = proto.ReadBitSet(r); err != nil {
		return err
	}

	if p.EmptySkyLightMask, err = proto.ReadBitSet(r); err != nil {
		return err
	}

	if p.EmptyBlockLightMask, err = proto.ReadBitSet(r); err != nil {
		return err
	}

	if p.SkyLightArrays, err = composite.ReadPrefixedArray(r, readByteArray); err != nil {
		return err
	}

	p.BlockLightArrays, err = composite.ReadPrefixedArray(r, readByteArray)

	return err
}

func (p *LevelChunkWithLight) WriteTo(w proto.Writer) error {
	if err := proto.WriteI32(w, p.ChunkX); err != nil {
		return err
	}

	if err := proto.WriteI32(w, p.ChunkZ); err != nil {
		return err
	}

	if err := nbt.WriteTag(w, p.Heightmaps); err != nil {
		return err
	}

	if err := writeByteArray(w, p.Data); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, p.BlockEntities, writeBlockEntityInfo); err != nil {
		return err
	}

	if err := proto.WriteBitSet(w, p.SkyLightMask); err != nil {
		return err
	}

	if err := proto.WriteBitSet(w, p.BlockLightMask); err != nil {
		return err
	}

	if err := proto.WriteBitSet(w, p.EmptySkyLightMask); err != nil {
		return err
	}

	if err := proto.WriteBitSet(w, p.EmptyBlockLightMask); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, p.SkyLightArrays, writeByteArray); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, p.BlockLightArrays, writeByteArray)
}

// DeathLocation is the optional "you died here" marker carried by Login
// and Respawn.
type DeathLocation struct {
	DimensionName string
	Location      proto.Position
}

func readDeathLocation(r proto.Reader) (DeathLocation, error) {
	var d DeathLocation

	var err error

	if d.DimensionName, err = proto.ReadIdentifier(r); err != nil {
		return DeathLocation{}, err
	}

	d.Location, err = proto.ReadPosition(r)

	return d, err
}

func writeDeathLocation(w proto.Writer, d DeathLocation) error {
	if err := proto.WriteIdentifier(w, d.DimensionName); err != nil {
		return err
	}

	return proto.WritePosition(w, d.Location)
}

// Login begins the Play phase: world list, dimension, and game-rule data.
type Login struct {
	EntityID            int32
	IsHardcore          bool
	DimensionNames       []string
	MaxPlayers           int32
	ViewDistance         int32
	SimulationDistance   int32
	ReducedDebugInfo     bool
	EnableRespawnScreen  bool
	DoLimitedCrafting    bool
	DimensionType        int32
	DimensionName        string
	HashedSeed           int64
	GameMode             uint8
	PreviousGameMode     int8
	IsDebug              bool
	IsFlat               bool
	DeathLoc             *DeathLocation
	PortalCooldown       int32
	SeaLevel             int32
	EnforcesSecureChat   bool
}

func (p *Login) PacketName() string { return "minecraft:login" }

func (p *Login) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadI32(r); err != nil {
		return err
	}

	if p.IsHardcore, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.DimensionNames, err = composite.ReadPrefixedArray(r, proto.ReadIdentifier); err != nil {
		return err
	}

	if p.MaxPlayers, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.ViewDistance, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.SimulationDistance, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.ReducedDebugInfo, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.EnableRespawnScreen, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.DoLimitedCrafting, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.DimensionType, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.DimensionName, err = proto.ReadIdentifier(r); err != nil {
		return err
	}

	if p.HashedSeed, err = proto.ReadI64(r); err != nil {
		return err
	}

	if p.GameMode, err = proto.ReadU8(r); err != nil {
		return err
	}

	if p.PreviousGameMode, err = proto.ReadI8(r); err != nil {
		return err
	}

	if p.IsDebug, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.IsFlat, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.DeathLoc, err = composite.ReadOption(r, readDeathLocation); err != nil {
		return err
	}

	if p.PortalCooldown, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.SeaLevel, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.EnforcesSecureChat, err = proto.ReadBool(r)

	return err
}

func (p *Login) WriteTo(w proto.Writer) error {
	if err := proto.WriteI32(w, p.EntityID); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.IsHardcore); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, p.DimensionNames, proto.WriteIdentifier); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.MaxPlayers); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.ViewDistance); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.SimulationDistance); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.ReducedDebugInfo); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.EnableRespawnScreen); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.DoLimitedCrafting); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.DimensionType); err != nil {
		return err
	}

	if err := proto.WriteIdentifier(w, p.DimensionName); err != nil {
		return err
	}

	if err := proto.WriteI64(w, p.HashedSeed); err != nil {
		return err
	}

	if err := proto.WriteU8(w, p.GameMode); err != nil {
		return err
	}

	if err := proto.WriteI8(w, p.PreviousGameMode); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.IsDebug); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.IsFlat); err != nil {
		return err
	}

	if err := composite.WriteOption(w, p.DeathLoc, writeDeathLocation); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.PortalCooldown); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.SeaLevel); err != nil {
		return err
	}

	return proto.WriteBool(w, p.EnforcesSecureChat)
}

// MapIcon is one marker (player, frame, banner, ...) drawn on a map.
type MapIcon struct {
	Kind        int32
	X, Z        int8
	Direction   int8
	DisplayName *slot.TextComponent
}

func readMapIcon(r proto.Reader) (MapIcon, error) {
	var m MapIcon

	var err error

	if m.Kind, err = proto.ReadVarInt(r); err != nil {
		return MapIcon{}, err
	}

	if m.X, err = proto.ReadI8(r); err != nil {
		return MapIcon{}, err
	}

	if m.Z, err = proto.ReadI8(r); err != nil {
		return MapIcon{}, err
	}

	if m.Direction, err = proto.ReadI8(r); err != nil {
		return MapIcon{}, err
	}

	m.DisplayName, err = readOptTextComponent(r)

	return m, err
}

func writeMapIcon(w proto.Writer, m MapIcon) error {
	if err := proto.WriteVarInt(w, m.Kind); err != nil {
		return err
	}

	if err := proto.WriteI8(w, m.X); err != nil {
		return err
	}

	if err := proto.WriteI8(w, m.Z); err != nil {
		return err
	}

	if err := proto.WriteI8(w, m.Direction); err != nil {
		return err
	}

	return writeOptTextComponent(w, m.DisplayName)
}

// MapItemData pushes a rendered map's icon list and an optional pixel-
// patch update, exercising the MapColorPatch quirk (spec.md §4.E).
type MapItemData struct {
	MapID  int32
	Scale  int8
	Locked bool
	Icons  *[]MapIcon
	Patch  MapColorPatch
}

func (p *MapItemData) PacketName() string { return "minecraft:map_item_data" }

func (p *MapItemData) ReadFrom(r proto.Reader) error {
	var err error

	if p.MapID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Scale, err = proto.ReadI8(r); err != nil {
		return err
	}

	if p.Locked, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.Icons, err = composite.ReadOption(r, func(r proto.Reader) ([]MapIcon, error) {
		return composite.ReadPrefixedArray(r, readMapIcon)
	}); err != nil {
		return err
	}

	p.Patch, err = readMapColorPatch(r)

	return err
}

func (p *MapItemData) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.MapID); err != nil {
		return err
	}

	if err := proto.WriteI8(w, p.Scale); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.Locked); err != nil {
		return err
	}

	if err := composite.WriteOption(w, p.Icons, func(w proto.Writer, v []MapIcon) error {
		return composite.WritePrefixedArray(w, v, writeMapIcon)
	}); err != nil {
		return err
	}

	return writeMapColorPatch(w, p.Patch)
}

// MoveEntityPos applies a small relative position delta to an entity.
type MoveEntityPos struct {
	EntityID        int32
	DeltaX, DeltaY, DeltaZ int16
	OnGround        bool
}

func (p *MoveEntityPos) PacketName() string { return "minecraft:move_entity_pos" }

func (p *MoveEntityPos) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.DeltaX, err = proto.ReadI16(r); err != nil {
		return err
	}

	if p.DeltaY, err = proto.ReadI16(r); err != nil {
		return err
	}

	if p.DeltaZ, err = proto.ReadI16(r); err != nil {
		return err
	}

	p.OnGround, err = proto.ReadBool(r)

	return err
}

func (p *MoveEntityPos) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.DeltaX); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.DeltaY); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.DeltaZ); err != nil {
		return err
	}

	return proto.WriteBool(w, p.OnGround)
}

// MoveEntityPosRot applies a relative position delta and absolute rotation.
type MoveEntityPosRot struct {
	EntityID               int32
	DeltaX, DeltaY, DeltaZ int16
	Yaw, Pitch             proto.Angle
	OnGround               bool
}

func (p *MoveEntityPosRot) PacketName() string { return "minecraft:move_entity_pos_rot" }

func (p *MoveEntityPosRot) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.DeltaX, err = proto.ReadI16(r); err != nil {
		return err
	}

	if p.DeltaY, err = proto.ReadI16(r); err != nil {
		return err
	}

	if p.DeltaZ, err = proto.ReadI16(r); err != nil {
		return err
	}

	if p.Yaw, err = proto.ReadAngle(r); err != nil {
		return err
	}

	if p.Pitch, err = proto.ReadAngle(r); err != nil {
		return err
	}

	p.OnGround, err = proto.ReadBool(r)

	return err
}

func (p *MoveEntityPosRot) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.DeltaX); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.DeltaY); err != nil {
		return err
	}

	if err := proto.WriteI16(w, p.DeltaZ); err != nil {
		return err
	}

	if err := proto.WriteAngle(w, p.Yaw); err != nil {
		return err
	}

	if err := proto.WriteAngle(w, p.Pitch); err != nil {
		return err
	}

	return proto.WriteBool(w, p.OnGround)
}

// PlayerAbilitiesClientbound pushes the player's fly/invulnerable/creative
// bitfield plus fly speed and FOV modifier.
type PlayerAbilitiesClientbound struct {
	Flags        composite.BitfieldU8
	FlyingSpeed  float32
	FOVModifier  float32
}

func (p *PlayerAbilitiesClientbound) PacketName() string { return "minecraft:player_abilities" }

func (p *PlayerAbilitiesClientbound) ReadFrom(r proto.Reader) error {
	flags, err := proto.ReadU8(r)
	if err != nil {
		return err
	}

	p.Flags = composite.BitfieldU8(flags)

	if p.FlyingSpeed, err = proto.ReadF32(r); err != nil {
		return err
	}

	p.FOVModifier, err = proto.ReadF32(r)

	return err
}

func (p *PlayerAbilitiesClientbound) WriteTo(w proto.Writer) error {
	if err := proto.WriteU8(w, uint8(p.Flags)); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.FlyingSpeed); err != nil {
		return err
	}

	return proto.WriteF32(w, p.FOVModifier)
}

// PriorChatMessage is one previously-seen chat message referenced by a
// PlayerChat packet's lastSeen list.
type PriorChatMessage struct {
	MessageID int32
	Signature []byte
}

func readPriorChatMessage(r proto.Reader) (PriorChatMessage, error) {
	var m PriorChatMessage

	var err error

	if m.MessageID, err = proto.ReadVarInt(r); err != nil {
		return PriorChatMessage{}, err
	}

	if m.MessageID == 0 {
		m.Signature, err = proto.ReadFixed(r, 256)
	}

	return m, err
}

func writePriorChatMessage(w proto.Writer, m PriorChatMessage) error {
	if err := proto.WriteVarInt(w, m.MessageID); err != nil {
		return err
	}

	if m.MessageID == 0 {
		return proto.WriteFixed(w, m.Signature)
	}

	return nil
}

// ChatFilterKind is PlayerChat's filter-mask tagged sum discriminator.
type ChatFilterKind int32

const (
	ChatFilterPassThrough ChatFilterKind = iota
	ChatFilterFullyFiltered
	ChatFilterPartiallyFiltered
)

// ChatFilter is the (possibly masked) filtering state of a chat message.
type ChatFilter struct {
	Kind ChatFilterKind
	Mask proto.BitSet
}

func readChatFilter(r proto.Reader) (ChatFilter, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 3)
	if err != nil {
		return ChatFilter{}, err
	}

	f := ChatFilter{Kind: ChatFilterKind(idx)}
	if f.Kind == ChatFilterPartiallyFiltered {
		f.Mask, err = proto.ReadBitSet(r)
	}

	return f, err
}

func writeChatFilter(w proto.Writer, f ChatFilter) error {
	if err := composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(f.Kind)); err != nil {
		return err
	}

	if f.Kind == ChatFilterPartiallyFiltered {
		return proto.WriteBitSet(w, f.Mask)
	}

	return nil
}

// PlayerChat is a signed, filterable chat message broadcast to the client.
type PlayerChat struct {
	Sender           proto.UUID
	Index            int32
	Signature        []byte
	Message          string
	Timestamp        int64
	Salt             int64
	PriorMessages    []PriorChatMessage
	UnsignedContent  *slot.TextComponent
	Filter           ChatFilter
	ChatType         int32
	SenderName       slot.TextComponent
	TargetName       *slot.TextComponent
}

func (p *PlayerChat) PacketName() string { return "minecraft:player_chat" }

func (p *PlayerChat) ReadFrom(r proto.Reader) error {
	var err error

	if p.Sender, err = proto.ReadUUID(r); err != nil {
		return err
	}

	if p.Index, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	sig, err := composite.ReadOption(r, readFixedSignature)
	if err != nil {
		return err
	}

	if sig != nil {
		p.Signature = *sig
	}

	if p.Message, err = proto.ReadString(r); err != nil {
		return err
	}

	if p.Timestamp, err = proto.ReadI64(r); err != nil {
		return err
	}

	if p.Salt, err = proto.ReadI64(r); err != nil {
		return err
	}

	if p.PriorMessages, err = composite.ReadPrefixedArray(r, readPriorChatMessage); err != nil {
		return err
	}

	if p.UnsignedContent, err = readOptTextComponent(r); err != nil {
		return err
	}

	if p.Filter, err = readChatFilter(r); err != nil {
		return err
	}

	if p.ChatType, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.SenderName, err = readTextComponent(r); err != nil {
		return err
	}

	p.TargetName, err = readOptTextComponent(r)

	return err
}

func (p *PlayerChat) WriteTo(w proto.Writer) error {
	if err := proto.WriteUUID(w, p.Sender); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.Index); err != nil {
		return err
	}

	var sig *[]byte
	if p.Signature != nil {
		sig = &p.Signature
	}

	if err := composite.WriteOption(w, sig, writeFixedSignature); err != nil {
		return err
	}

	if err := proto.WriteString(w, p.Message); err != nil {
		return err
	}

	if err := proto.WriteI64(w, p.Timestamp); err != nil {
		return err
	}

	if err := proto.WriteI64(w, p.Salt); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, p.PriorMessages, writePriorChatMessage); err != nil {
		return err
	}

	if err := writeOptTextComponent(w, p.UnsignedContent); err != nil {
		return err
	}

	if err := writeChatFilter(w, p.Filter); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.ChatType); err != nil {
		return err
	}

	if err := writeTextComponent(w, p.SenderName); err != nil {
		return err
	}

	return writeOptTextComponent(w, p.TargetName)
}

// PlayerInfoRemove drops players from the tab list by uuid.
type PlayerInfoRemove struct {
	UUIDs []proto.UUID
}

func (p *PlayerInfoRemove) PacketName() string { return "minecraft:player_info_remove" }

func (p *PlayerInfoRemove) ReadFrom(r proto.Reader) error {
	var err error
	p.UUIDs, err = composite.ReadPrefixedArray(r, proto.ReadUUID)

	return err
}

func (p *PlayerInfoRemove) WriteTo(w proto.Writer) error {
	return composite.WritePrefixedArray(w, p.UUIDs, proto.WriteUUID)
}

// PlayerInfoUpdate adds players to, or updates fields of, the tab list;
// the wire shape is exactly PlayersActionsData (spec.md §4.E).
type PlayerInfoUpdate struct {
	PlayersActionsData
}

func (p *PlayerInfoUpdate) PacketName() string { return "minecraft:player_info_update" }

func (p *PlayerInfoUpdate) ReadFrom(r proto.Reader) error {
	var err error
	p.PlayersActionsData, err = readPlayersActionsData(r)

	return err
}

func (p *PlayerInfoUpdate) WriteTo(w proto.Writer) error {
	return writePlayersActionsData(w, p.PlayersActionsData)
}

// PlayerPosition teleports the client's camera; Flags is the relative-vs-
// absolute bitfield for each of the eight fields below, exercising the
// BitfieldI32 codec.
type PlayerPosition struct {
	TeleportID int32
	X, Y, Z    float64
	VelX, VelY, VelZ float64
	Yaw, Pitch float32
	Flags      composite.BitfieldI32
}

func (p *PlayerPosition) PacketName() string { return "minecraft:player_position" }

func (p *PlayerPosition) ReadFrom(r proto.Reader) error {
	var err error

	if p.TeleportID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.X, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Y, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Z, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.VelX, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.VelY, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.VelZ, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Yaw, err = proto.ReadF32(r); err != nil {
		return err
	}

	if p.Pitch, err = proto.ReadF32(r); err != nil {
		return err
	}

	flags, err := proto.ReadI32(r)
	p.Flags = composite.BitfieldI32(flags)

	return err
}

func (p *PlayerPosition) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.TeleportID); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.X); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Y); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Z); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.VelX); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.VelY); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.VelZ); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.Yaw); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.Pitch); err != nil {
		return err
	}

	return proto.WriteI32(w, int32(p.Flags))
}

// RemoveEntities despawns a batch of entities by id.
type RemoveEntities struct {
	EntityIDs []int32
}

func (p *RemoveEntities) PacketName() string { return "minecraft:remove_entities" }

func (p *RemoveEntities) ReadFrom(r proto.Reader) error {
	var err error
	p.EntityIDs, err = composite.ReadPrefixedArray(r, proto.ReadVarInt)

	return err
}

func (p *RemoveEntities) WriteTo(w proto.Writer) error {
	return composite.WritePrefixedArray(w, p.EntityIDs, proto.WriteVarInt)
}

// Respawn re-establishes the player's world/gamemode state without a full
// reconnect (shares most fields with Login).
type Respawn struct {
	DimensionType      int32
	DimensionName      string
	HashedSeed         int64
	GameMode           uint8
	PreviousGameMode   int8
	IsDebug            bool
	IsFlat             bool
	DeathLoc           *DeathLocation
	PortalCooldown     int32
	SeaLevel           int32
	DataKept           composite.BitfieldU8
}

func (p *Respawn) PacketName() string { return "minecraft:respawn" }

func (p *Respawn) ReadFrom(r proto.Reader) error {
	var err error

	if p.DimensionType, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.DimensionName, err = proto.ReadIdentifier(r); err != nil {
		return err
	}

	if p.HashedSeed, err = proto.ReadI64(r); err != nil {
		return err
	}

	if p.GameMode, err = proto.ReadU8(r); err != nil {
		return err
	}

	if p.PreviousGameMode, err = proto.ReadI8(r); err != nil {
		return err
	}

	if p.IsDebug, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.IsFlat, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.DeathLoc, err = composite.ReadOption(r, readDeathLocation); err != nil {
		return err
	}

	if p.PortalCooldown, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.SeaLevel, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	dataKept, err := proto.ReadU8(r)
	p.DataKept = composite.BitfieldU8(dataKept)

	return err
}

func (p *Respawn) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.DimensionType); err != nil {
		return err
	}

	if err := proto.WriteIdentifier(w, p.DimensionName); err != nil {
		return err
	}

	if err := proto.WriteI64(w, p.HashedSeed); err != nil {
		return err
	}

	if err := proto.WriteU8(w, p.GameMode); err != nil {
		return err
	}

	if err := proto.WriteI8(w, p.PreviousGameMode); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.IsDebug); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.IsFlat); err != nil {
		return err
	}

	if err := composite.WriteOption(w, p.DeathLoc, writeDeathLocation); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.PortalCooldown); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.SeaLevel); err != nil {
		return err
	}

	return proto.WriteU8(w, uint8(p.DataKept))
}

// SetEntityData pushes an entity's metadata stream (spec.md §4.E's
// sentinel-terminated EntityMetadata quirk).
type SetEntityData struct {
	EntityID int32
	Metadata EntityMetadata
}

func (p *SetEntityData) PacketName() string { return "minecraft:set_entity_data" }

func (p *SetEntityData) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.Metadata, err = readEntityMetadata(r)

	return err
}

func (p *SetEntityData) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	return writeEntityMetadata(w, p.Metadata)
}

// SetEquipment pushes an entity's equipped-item stream (spec.md §4.E's
// continuation-bit EntityEquipment quirk).
type SetEquipment struct {
	EntityID  int32
	Equipment EntityEquipment
}

func (p *SetEquipment) PacketName() string { return "minecraft:set_equipment" }

func (p *SetEquipment) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.Equipment, err = readEntityEquipment(r)

	return err
}

func (p *SetEquipment) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	return writeEntityEquipment(w, p.Equipment)
}

// SetHealth updates the client's health/food/saturation HUD.
type SetHealth struct {
	Health     float32
	Food       int32
	Saturation float32
}

func (p *SetHealth) PacketName() string { return "minecraft:set_health" }

func (p *SetHealth) ReadFrom(r proto.Reader) error {
	var err error

	if p.Health, err = proto.ReadF32(r); err != nil {
		return err
	}

	if p.Food, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.Saturation, err = proto.ReadF32(r)

	return err
}

func (p *SetHealth) WriteTo(w proto.Writer) error {
	if err := proto.WriteF32(w, p.Health); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.Food); err != nil {
		return err
	}

	return proto.WriteF32(w, p.Saturation)
}

// SetTime updates the world age and time-of-day clock.
type SetTime struct {
	WorldAge   int64
	TimeOfDay  int64
}

func (p *SetTime) PacketName() string { return "minecraft:set_time" }

func (p *SetTime) ReadFrom(r proto.Reader) error {
	var err error

	if p.WorldAge, err = proto.ReadI64(r); err != nil {
		return err
	}

	p.TimeOfDay, err = proto.ReadI64(r)

	return err
}

func (p *SetTime) WriteTo(w proto.Writer) error {
	if err := proto.WriteI64(w, p.WorldAge); err != nil {
		return err
	}

	return proto.WriteI64(w, p.TimeOfDay)
}

// Sound plays a registry or inline sound event at a fixed-point position,
// exercising the Id-or-Inline<T> quirk over slot.SoundEvent.
type Sound struct {
	SoundEvent  composite.IdOrInline[slot.SoundEvent]
	SoundSource int32
	X, Y, Z     int32
	Volume      float32
	Pitch       float32
	Seed        int64
}

func (p *Sound) PacketName() string { return "minecraft:sound" }

func (p *Sound) ReadFrom(r proto.Reader) error {
	var err error

	if p.SoundEvent, err = composite.ReadIdOrInline(r, slot.ReadSoundEvent); err != nil {
		return err
	}

	if p.SoundSource, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.X, err = proto.ReadI32(r); err != nil {
		return err
	}

	if p.Y, err = proto.ReadI32(r); err != nil {
		return err
	}

	if p.Z, err = proto.ReadI32(r); err != nil {
		return err
	}

	if p.Volume, err = proto.ReadF32(r); err != nil {
		return err
	}

	if p.Pitch, err = proto.ReadF32(r); err != nil {
		return err
	}

	p.Seed, err = proto.ReadI64(r)

	return err
}

func (p *Sound) WriteTo(w proto.Writer) error {
	if err := composite.WriteIdOrInline(w, p.SoundEvent, slot.WriteSoundEvent); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, p.SoundSource); err != nil {
		return err
	}

	if err := proto.WriteI32(w, p.X); err != nil {
		return err
	}

	if err := proto.WriteI32(w, p.Y); err != nil {
		return err
	}

	if err := proto.WriteI32(w, p.Z); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.Volume); err != nil {
		return err
	}

	if err := proto.WriteF32(w, p.Pitch); err != nil {
		return err
	}

	return proto.WriteI64(w, p.Seed)
}

// StopSound silences a currently-playing sound (spec.md §4.E's
// StopSoundData quirk).
type StopSound struct {
	Data StopSoundData
}

func (p *StopSound) PacketName() string { return "minecraft:stop_sound" }

func (p *StopSound) ReadFrom(r proto.Reader) error {
	var err error
	p.Data, err = readStopSoundData(r)

	return err
}

func (p *StopSound) WriteTo(w proto.Writer) error {
	return writeStopSoundData(w, p.Data)
}

// SystemChat delivers a server-originated text-component message not tied
// to a player sender.
type SystemChat struct {
	Content slot.TextComponent
	Overlay bool
}

func (p *SystemChat) PacketName() string { return "minecraft:system_chat" }

func (p *SystemChat) ReadFrom(r proto.Reader) error {
	var err error

	if p.Content, err = readTextComponent(r); err != nil {
		return err
	}

	p.Overlay, err = proto.ReadBool(r)

	return err
}

func (p *SystemChat) WriteTo(w proto.Writer) error {
	if err := writeTextComponent(w, p.Content); err != nil {
		return err
	}

	return proto.WriteBool(w, p.Overlay)
}

// TeleportEntity applies an absolute position/velocity/rotation update to
// a remote entity.
type TeleportEntity struct {
	EntityID         int32
	X, Y, Z          float64
	VelX, VelY, VelZ float64
	Yaw, Pitch       proto.Angle
	OnGround         bool
}

func (p *TeleportEntity) PacketName() string { return "minecraft:teleport_entity" }

func (p *TeleportEntity) ReadFrom(r proto.Reader) error {
	var err error

	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.X, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Y, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Z, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.VelX, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.VelY, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.VelZ, err = proto.ReadF64(r); err != nil {
		return err
	}

	if p.Yaw, err = proto.ReadAngle(r); err != nil {
		return err
	}

	if p.Pitch, err = proto.ReadAngle(r); err != nil {
		return err
	}

	p.OnGround, err = proto.ReadBool(r)

	return err
}

func (p *TeleportEntity) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.X); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Y); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.Z); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.VelX); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.VelY); err != nil {
		return err
	}

	if err := proto.WriteF64(w, p.VelZ); err != nil {
		return err
	}

	if err := proto.WriteAngle(w, p.Yaw); err != nil {
		return err
	}

	if err := proto.WriteAngle(w, p.Pitch); err != nil {
		return err
	}

	return proto.WriteBool(w, p.OnGround)
}

// AdvancementCriterionProgress records whether/when one criterion of an
// advancement was achieved.
type AdvancementCriterionProgress struct {
	CriterionID    string
	DateOfAchieving *int64
}

func readAdvancementCriterionProgress(r proto.Reader) (AdvancementCriterionProgress, error) {
	var c AdvancementCriterionProgress

	var err error

	if c.CriterionID, err = proto.ReadIdentifier(r); err != nil {
		return AdvancementCriterionProgress{}, err
	}

	c.DateOfAchieving, err = composite.ReadOption(r, proto.ReadI64)

	return c, err
}

func writeAdvancementCriterionProgress(w proto.Writer, c AdvancementCriterionProgress) error {
	if err := proto.WriteIdentifier(w, c.CriterionID); err != nil {
		return err
	}

	return composite.WriteOption(w, c.DateOfAchieving, proto.WriteI64)
}

// AdvancementProgress is one advancement's full criteria-completion state.
type AdvancementProgress struct {
	Key      string
	Criteria []AdvancementCriterionProgress
}

func readAdvancementProgress(r proto.Reader) (AdvancementProgress, error) {
	var a AdvancementProgress

	var err error

	if a.Key, err = proto.ReadIdentifier(r); err != nil {
		return AdvancementProgress{}, err
	}

	a.Criteria, err = composite.ReadPrefixedArray(r, readAdvancementCriterionProgress)

	return a, err
}

func writeAdvancementProgress(w proto.Writer, a AdvancementProgress) error {
	if err := proto.WriteIdentifier(w, a.Key); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, a.Criteria, writeAdvancementCriterionProgress)
}

// AdvancementDisplay is an advancement's HUD presentation, exercising the
// AdvancementDisplayFlags quirk's exact-equality background-texture check.
type AdvancementDisplay struct {
	Title       slot.TextComponent
	Description slot.TextComponent
	Icon        slot.Slot
	Flags       AdvancementDisplayFlags
	XCoord      float32
	YCoord      float32
}

func readAdvancementDisplay(r proto.Reader) (AdvancementDisplay, error) {
	var d AdvancementDisplay

	var err error

	if d.Title, err = readTextComponent(r); err != nil {
		return AdvancementDisplay{}, err
	}

	if d.Description, err = readTextComponent(r); err != nil {
		return AdvancementDisplay{}, err
	}

	if d.Icon, err = slot.ReadSlot(r); err != nil {
		return AdvancementDisplay{}, err
	}

	if d.Flags, err = readAdvancementDisplayFlags(r); err != nil {
		return AdvancementDisplay{}, err
	}

	if d.XCoord, err = proto.ReadF32(r); err != nil {
		return AdvancementDisplay{}, err
	}

	d.YCoord, err = proto.ReadF32(r)

	return d, err
}

func writeAdvancementDisplay(w proto.Writer, d AdvancementDisplay) error {
	if err := writeTextComponent(w, d.Title); err != nil {
		return err
	}

	if err := writeTextComponent(w, d.Description); err != nil {
		return err
	}

	if err := slot.WriteSlot(w, d.Icon); err != nil {
		return err
	}

	if err := writeAdvancementDisplayFlags(w, d.Flags); err != nil {
		return err
	}

	if err := proto.WriteF32(w, d.XCoord); err != nil {
		return err
	}

	return proto.WriteF32(w, d.YCoord)
}

// AdvancementEntry binds one advancement's key to its parent, display, and
// the requirement groups that must all be satisfied to unlock it.
type AdvancementEntry struct {
	Key          string
	Parent       *string
	Display      *AdvancementDisplay
	Criteria     []string
	Requirements [][]string
}

func readAdvancementEntry(r proto.Reader) (AdvancementEntry, error) {
	var a AdvancementEntry

	var err error

	if a.Key, err = proto.ReadIdentifier(r); err != nil {
		return AdvancementEntry{}, err
	}

	if a.Parent, err = composite.ReadOption(r, proto.ReadIdentifier); err != nil {
		return AdvancementEntry{}, err
	}

	if a.Display, err = composite.ReadOption(r, readAdvancementDisplay); err != nil {
		return AdvancementEntry{}, err
	}

	if a.Criteria, err = composite.ReadPrefixedArray(r, proto.ReadIdentifier); err != nil {
		return AdvancementEntry{}, err
	}

	a.Requirements, err = composite.ReadPrefixedArray(r, func(r proto.Reader) ([]string, error) {
		return composite.ReadPrefixedArray(r, proto.ReadString)
	})

	return a, err
}

func writeAdvancementEntry(w proto.Writer, a AdvancementEntry) error {
	if err := proto.WriteIdentifier(w, a.Key); err != nil {
		return err
	}

	if err := composite.WriteOption(w, a.Parent, proto.WriteIdentifier); err != nil {
		return err
	}

	if err := composite.WriteOption(w, a.Display, writeAdvancementDisplay); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, a.Criteria, proto.WriteIdentifier); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, a.Requirements, func(w proto.Writer, v []string) error {
		return composite.WritePrefixedArray(w, v, proto.WriteString)
	})
}

// UpdateAdvancements pushes the full advancement tree delta: new/updated
// entries, removed keys, and per-player progress.
type UpdateAdvancements struct {
	Reset        bool
	Advancements []AdvancementEntry
	Removed      []string
	Progress     []AdvancementProgress
}

func (p *UpdateAdvancements) PacketName() string { return "minecraft:update_advancements" }

func (p *UpdateAdvancements) ReadFrom(r proto.Reader) error {
	var err error

	if p.Reset, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.Advancements, err = composite.ReadPrefixedArray(r, readAdvancementEntry); err != nil {
		return err
	}

	if p.Removed, err = composite.ReadPrefixedArray(r, proto.ReadIdentifier); err != nil {
		return err
	}

	p.Progress, err = composite.ReadPrefixedArray(r, readAdvancementProgress)

	return err
}

func (p *UpdateAdvancements) WriteTo(w proto.Writer) error {
	if err := proto.WriteBool(w, p.Reset); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, p.Advancements, writeAdvancementEntry); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, p.Removed, proto.WriteIdentifier); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, p.Progress, writeAdvancementProgress)
}

// Commands pushes the full brigadier command-tree graph (spec.md §4.E's
// Node quirk) plus the index of its root node.
type Commands struct {
	Nodes      []Node
	RootIndex  int32
}

func (p *Commands) PacketName() string { return "minecraft:commands" }

func (p *Commands) ReadFrom(r proto.Reader) error {
	var err error

	if p.Nodes, err = composite.ReadPrefixedArray(r, readNode); err != nil {
		return err
	}

	p.RootIndex, err = proto.ReadVarInt(r)

	return err
}

func (p *Commands) WriteTo(w proto.Writer) error {
	if err := composite.WritePrefixedArray(w, p.Nodes, writeNode); err != nil {
		return err
	}

	return proto.WriteVarInt(w, p.RootIndex)
}

func init() {
	register(statePlay, serverbound, "minecraft:accept_teleportation", func() Packet { return &AcceptTeleportation{} })
	register(statePlay, serverbound, "minecraft:chat_ack", func() Packet { return &ChatAck{} })
	register(statePlay, serverbound, "minecraft:chat_command", func() Packet { return &ChatCommand{} })
	register(statePlay, serverbound, "minecraft:chat", func() Packet { return &Chat{} })
	register(statePlay, serverbound, "minecraft:client_command", func() Packet { return &ClientCommand{} })
	register(statePlay, serverbound, "minecraft:client_information", func() Packet { return &ClientInformationPlay{} })
	register(statePlay, serverbound, "minecraft:close_container", func() Packet { return &CloseContainerServer{} })
	register(statePlay, serverbound, "minecraft:container_click", func() Packet { return &ContainerClick{} })
	register(statePlay, serverbound, "minecraft:custom_payload", func() Packet { return &CustomPayloadPlay{} })
	register(statePlay, serverbound, "minecraft:interact", func() Packet { return &Interact{} })
	register(statePlay, serverbound, "minecraft:keep_alive", func() Packet { return &KeepAlivePlay{} })
	register(statePlay, serverbound, "minecraft:move_player_pos", func() Packet { return &MovePlayerPos{} })
	register(statePlay, serverbound, "minecraft:move_player_pos_rot", func() Packet { return &MovePlayerPosRot{} })
	register(statePlay, serverbound, "minecraft:move_player_rot", func() Packet { return &MovePlayerRot{} })
	register(statePlay, serverbound, "minecraft:move_player_status_only", func() Packet { return &MovePlayerStatusOnly{} })
	register(statePlay, serverbound, "minecraft:player_abilities", func() Packet { return &PlayerAbilitiesServer{} })
	register(statePlay, serverbound, "minecraft:player_action", func() Packet { return &PlayerAction{} })
	register(statePlay, serverbound, "minecraft:player_command", func() Packet { return &PlayerCommand{} })
	register(statePlay, serverbound, "minecraft:player_input", func() Packet { return &PlayerInput{} })
	register(statePlay, serverbound, "minecraft:pong", func() Packet { return &PongPlay{} })
	register(statePlay, serverbound, "minecraft:set_carried_item", func() Packet { return &SetCarriedItem{} })
	register(statePlay, serverbound, "minecraft:set_creative_mode_slot", func() Packet { return &SetCreativeModeSlot{} })
	register(statePlay, serverbound, "minecraft:swing", func() Packet { return &Swing{} })
	register(statePlay, serverbound, "minecraft:use_item_on", func() Packet { return &UseItemOn{} })
	register(statePlay, serverbound, "minecraft:use_item", func() Packet { return &UseItem{} })

	register(statePlay, clientbound, "minecraft:bundle_delimiter", func() Packet { return &BundleDelimiter{} })
	register(statePlay, clientbound, "minecraft:add_entity", func() Packet { return &AddEntity{} })
	register(statePlay, clientbound, "minecraft:animate", func() Packet { return &Animate{} })
	register(statePlay, clientbound, "minecraft:block_update", func() Packet { return &BlockUpdate{} })
	register(statePlay, clientbound, "minecraft:boss_event", func() Packet { return &BossEvent{} })
	register(statePlay, clientbound, "minecraft:change_difficulty", func() Packet { return &ChangeDifficulty{} })
	register(statePlay, clientbound, "minecraft:container_close", func() Packet { return &ContainerClose{} })
	register(statePlay, clientbound, "minecraft:container_set_content", func() Packet { return &ContainerSetContent{} })
	register(statePlay, clientbound, "minecraft:container_set_slot", func() Packet { return &ContainerSetSlot{} })
	register(statePlay, clientbound, "minecraft:cooldown", func() Packet { return &Cooldown{} })
	register(statePlay, clientbound, "minecraft:custom_payload", func() Packet { return &CustomPayloadClientbound{} })
	register(statePlay, clientbound, "minecraft:disconnect", func() Packet { return &DisconnectPlay{} })
	register(statePlay, clientbound, "minecraft:entity_event", func() Packet { return &EntityEvent{} })
	register(statePlay, clientbound, "minecraft:explode", func() Packet { return &Explode{} })
	register(statePlay, clientbound, "minecraft:game_event", func() Packet { return &GameEvent{} })
	register(statePlay, clientbound, "minecraft:keep_alive", func() Packet { return &KeepAliveClientbound{} })
	register(statePlay, clientbound, "minecraft:level_chunk_with_light", func() Packet { return &LevelChunkWithLight{} })
	register(statePlay, clientbound, "minecraft:login", func() Packet { return &Login{} })
	register(statePlay, clientbound, "minecraft:map_item_data", func() Packet { return &MapItemData{} })
	register(statePlay, clientbound, "minecraft:move_entity_pos", func() Packet { return &MoveEntityPos{} })
	register(statePlay, clientbound, "minecraft:move_entity_pos_rot", func() Packet { return &MoveEntityPosRot{} })
	register(statePlay, clientbound, "minecraft:player_abilities", func() Packet { return &PlayerAbilitiesClientbound{} })
	register(statePlay, clientbound, "minecraft:player_chat", func() Packet { return &PlayerChat{} })
	register(statePlay, clientbound, "minecraft:player_info_remove", func() Packet { return &PlayerInfoRemove{} })
	register(statePlay, clientbound, "minecraft:player_info_update", func() Packet { return &PlayerInfoUpdate{} })
	register(statePlay, clientbound, "minecraft:player_position", func() Packet { return &PlayerPosition{} })
	register(statePlay, clientbound, "minecraft:remove_entities", func() Packet { return &RemoveEntities{} })
	register(statePlay, clientbound, "minecraft:respawn", func() Packet { return &Respawn{} })
	register(statePlay, clientbound, "minecraft:set_entity_data", func() Packet { return &SetEntityData{} })
	register(statePlay, clientbound, "minecraft:set_equipment", func() Packet { return &SetEquipment{} })
	register(statePlay, clientbound, "minecraft:set_health", func() Packet { return &SetHealth{} })
	register(statePlay, clientbound, "minecraft:set_time", func() Packet { return &SetTime{} })
	register(statePlay, clientbound, "minecraft:sound", func() Packet { return &Sound{} })
	register(statePlay, clientbound, "minecraft:stop_sound", func() Packet { return &StopSound{} })
	register(statePlay, clientbound, "minecraft:system_chat", func() Packet { return &SystemChat{} })
	register(statePlay, clientbound, "minecraft:teleport_entity", func() Packet { return &TeleportEntity{} })
	register(statePlay, clientbound, "minecraft:update_advancements", func() Packet { return &UpdateAdvancements{} })
	register(statePlay, clientbound, "minecraft:commands", func() Packet { return &Commands{} })
}
