package packets

import (
	"math"

	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/nbt"
	"github.com/go-mcproto/mcproto/proto"
	"github.com/go-mcproto/mcproto/slot"
)

// --- EntityMetadata: sentinel-terminated {index, value} stream ----------

// EntityMetadatumValue is the tagged value carried by one metadata entry.
// Only the scalar/common variants are modeled; the remainder of the
// upstream ~35-variant union follow the same VarInt-tag-then-payload shape
// and would be added the same way.
type EntityMetadatumValue struct {
	Kind      int32
	I8        int8
	VarIntV   int32
	VarLongV  int64
	F32       float32
	Str       string
	Text      *slot.TextComponent
	OptText   *slot.TextComponent
	ItemSlot  slot.Slot
	Bool      bool
	Rotations [3]float32
	Pos       proto.Position
	OptPos    *proto.Position
}

func readEntityMetadatumValue(r proto.Reader) (EntityMetadatumValue, error) {
	kind, err := proto.ReadVarInt(r)
	if err != nil {
		return EntityMetadatumValue{}, err
	}

	v := EntityMetadatumValue{Kind: kind}

	switch kind {
	case 0:
		v.I8, err = proto.ReadI8(r)
	case 1:
		v.VarIntV, err = proto.ReadVarInt(r)
	case 2:
		v.VarLongV, err = proto.ReadVarLong(r)
	case 3:
		v.F32, err = proto.ReadF32(r)
	case 4:
		v.Str, err = proto.ReadString(r)
	case 5:
		var t slot.TextComponent
		t, err = nbt.ReadTag(r)
		v.Text = &t
	case 6:
		v.OptText, err = composite.ReadOption(r, func(r proto.Reader) (slot.TextComponent, error) { return nbt.ReadTag(r) })
	case 7:
		v.ItemSlot, err = slot.ReadSlot(r)
	case 8:
		v.Bool, err = proto.ReadBool(r)
	case 9:
		for i := range v.Rotations {
			v.Rotations[i], err = proto.ReadF32(r)
			if err != nil {
				break
			}
		}
	case 10:
		v.Pos, err = proto.ReadPosition(r)
	case 11:
		v.OptPos, err = composite.ReadOption(r, proto.ReadPosition)
	default:
		return EntityMetadatumValue{}, mcerr.Decode("unsupported entity metadata value kind: %d", kind)
	}

	return v, err
}

func writeEntityMetadatumValue(w proto.Writer, v EntityMetadatumValue) error {
	if err := proto.WriteVarInt(w, v.Kind); err != nil {
		return err
	}

	switch v.Kind {
	case 0:
		return proto.WriteI8(w, v.I8)
	case 1:
		return proto.WriteVarInt(w, v.VarIntV)
	case 2:
		return proto.WriteVarLong(w, v.VarLongV)
	case 3:
		return proto.WriteF32(w, v.F32)
	case 4:
		return proto.WriteString(w, v.Str)
	case 5:
		return nbt.WriteTag(w, *v.Text)
	case 6:
		return composite.WriteOption(w, v.OptText, func(w proto.Writer, t slot.TextComponent) error { return nbt.WriteTag(w, t) })
	case 7:
		return slot.WriteSlot(w, v.ItemSlot)
	case 8:
		return proto.WriteBool(w, v.Bool)
	case 9:
		for _, f := range v.Rotations {
			if err := proto.WriteF32(w, f); err != nil {
				return err
			}
		}

		return nil
	case 10:
		return proto.WritePosition(w, v.Pos)
	case 11:
		return composite.WriteOption(w, v.OptPos, proto.WritePosition)
	default:
		return mcerr.Programming("unsupported entity metadata value kind: %d", v.Kind)
	}
}

// EntityMetadatum is one {index, value} entry of an EntityMetadata stream.
type EntityMetadatum struct {
	Index uint8
	Value EntityMetadatumValue
}

// EntityMetadata is a stream of EntityMetadatum entries terminated by the
// sentinel index byte 0xff, per spec.md §4.E.
type EntityMetadata struct {
	Entries []EntityMetadatum
}

func readEntityMetadata(r proto.Reader) (EntityMetadata, error) {
	var m EntityMetadata

	for {
		index, err := proto.ReadU8(r)
		if err != nil {
			return EntityMetadata{}, err
		}

		if index == 0xff {
			return m, nil
		}

		value, err := readEntityMetadatumValue(r)
		if err != nil {
			return EntityMetadata{}, err
		}

		m.Entries = append(m.Entries, EntityMetadatum{Index: index, Value: value})
	}
}

func writeEntityMetadata(w proto.Writer, m EntityMetadata) error {
	for _, e := range m.Entries {
		if err := proto.WriteU8(w, e.Index); err != nil {
			return err
		}

		if err := writeEntityMetadatumValue(w, e.Value); err != nil {
			return err
		}
	}

	return proto.WriteU8(w, 0xff)
}

// --- EntityEquipment: continuation-bit-terminated {flags, Slot} stream --

// EquipmentEntry is one equipped item, keyed by equipment slot id 0..=6
// (main hand, off hand, boots, leggings, chestplate, helmet, body).
type EquipmentEntry struct {
	SlotID uint8
	Item   slot.Slot
}

// EntityEquipment is a stream of EquipmentEntry values. Every entry but the
// last carries the continuation bit 0x80 set in its leading byte alongside
// the slot id in the low bits; the terminating entry's leading byte has
// the continuation bit clear and carries no item, per spec.md §4.E.
type EntityEquipment struct {
	Entries []EquipmentEntry
}

func readEntityEquipment(r proto.Reader) (EntityEquipment, error) {
	var eq EntityEquipment

	for {
		flags, err := proto.ReadU8(r)
		if err != nil {
			return EntityEquipment{}, err
		}

		if flags&0x80 == 0 {
			return eq, nil
		}

		item, err := slot.ReadSlot(r)
		if err != nil {
			return EntityEquipment{}, err
		}

		eq.Entries = append(eq.Entries, EquipmentEntry{SlotID: flags & 0x7f, Item: item})
	}
}

func writeEntityEquipment(w proto.Writer, eq EntityEquipment) error {
	for i, e := range eq.Entries {
		flags := e.SlotID & 0x7f
		if i != len(eq.Entries)-1 {
			flags |= 0x80
		}

		if err := proto.WriteU8(w, flags); err != nil {
			return err
		}

		if err := slot.WriteSlot(w, e.Item); err != nil {
			return err
		}
	}

	return proto.WriteU8(w, 0)
}

// --- Command tree Node ---------------------------------------------------

// NodeKind is the low two bits of a Node's flags byte.
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeLiteral
	NodeArgument
	NodeRootAlt
)

// Node is one entry of a command-tree graph (spec.md §4.E): a 1-byte
// flags field (bits 0-1 node type, bit 2 is_executable, bit 3 has_redirect,
// bit 4 has_suggestions_type, bit 5 is_restricted), the children array,
// then optional redirect/name/parser/suggestions_type in that order.
type Node struct {
	Kind             NodeKind
	IsExecutable     bool
	IsRestricted     bool
	Children         []int32
	Redirect         *int32
	Name             string
	Parser           Parser
	SuggestionsType  *string
}

func readNode(r proto.Reader) (Node, error) {
	flags, err := proto.ReadU8(r)
	if err != nil {
		return Node{}, err
	}

	children, err := composite.ReadPrefixedArray(r, proto.ReadVarInt)
	if err != nil {
		return Node{}, err
	}

	kind := NodeKind(flags & 0x03)
	n := Node{
		Kind:         kind,
		IsExecutable: flags&0x04 != 0,
		IsRestricted: flags&0x20 != 0,
		Children:     children,
	}

	hasRedirect := flags&0x08 != 0
	hasSuggestionsType := flags&0x10 != 0

	if hasRedirect {
		redirect, err := proto.ReadVarInt(r)
		if err != nil {
			return Node{}, err
		}

		n.Redirect = &redirect
	}

	switch kind {
	case NodeRoot, NodeRootAlt:
	case NodeLiteral:
		n.Name, err = proto.ReadString(r)
		if err != nil {
			return Node{}, err
		}
	case NodeArgument:
		n.Name, err = proto.ReadString(r)
		if err != nil {
			return Node{}, err
		}

		n.Parser, err = readParser(r)
		if err != nil {
			return Node{}, err
		}

		if hasSuggestionsType {
			s, err := proto.ReadIdentifier(r)
			if err != nil {
				return Node{}, err
			}

			n.SuggestionsType = &s
		}
	default:
		return Node{}, mcerr.Decode("invalid node type id: %d", kind)
	}

	return n, nil
}

func writeNode(w proto.Writer, n Node) error {
	var flags uint8

	flags |= uint8(n.Kind) & 0x03
	if n.IsExecutable {
		flags |= 0x04
	}

	hasRedirect := n.Redirect != nil
	if hasRedirect {
		flags |= 0x08
	}

	hasSuggestionsType := n.SuggestionsType != nil
	if hasSuggestionsType {
		flags |= 0x10
	}

	if n.IsRestricted {
		flags |= 0x20
	}

	if err := proto.WriteU8(w, flags); err != nil {
		return err
	}

	if err := composite.WritePrefixedArray(w, n.Children, proto.WriteVarInt); err != nil {
		return err
	}

	if hasRedirect {
		if err := proto.WriteVarInt(w, *n.Redirect); err != nil {
			return err
		}
	}

	switch n.Kind {
	case NodeLiteral:
		if err := proto.WriteString(w, n.Name); err != nil {
			return err
		}
	case NodeArgument:
		if err := proto.WriteString(w, n.Name); err != nil {
			return err
		}

		if err := writeParser(w, n.Parser); err != nil {
			return err
		}

		if hasSuggestionsType {
			if err := proto.WriteIdentifier(w, *n.SuggestionsType); err != nil {
				return err
			}
		}
	}

	return nil
}

// ParserKind selects the brigadier/minecraft argument parser a command
// Argument node uses. Only a representative subset of the upstream
// ~50-variant catalog is modeled; the remainder share one of the two wire
// shapes already present here (bare tag, or tag + BrigadierNumOptions).
type ParserKind int32

const (
	ParserBrigadierBool ParserKind = iota
	ParserBrigadierFloat
	ParserBrigadierDouble
	ParserBrigadierInteger
	ParserBrigadierLong
	ParserBrigadierString
	ParserMinecraftEntity
	ParserMinecraftBlockPos
	ParserMinecraftVec3
	ParserMinecraftComponent
	parserKindCount
)

// Parser is a tagged sum over ParserKind; only BrigadierInteger currently
// carries BrigadierNumOptions[int32] bounds, matching the struct fields
// modeled below.
type Parser struct {
	Kind    ParserKind
	IntOpts BrigadierNumOptions[int32]
	StrType int32 // BrigadierStringOptions' single VarInt enum field
}

func readParser(r proto.Reader) (Parser, error) {
	kind, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, int(parserKindCount))
	if err != nil {
		return Parser{}, err
	}

	p := Parser{Kind: ParserKind(kind)}

	switch p.Kind {
	case ParserBrigadierInteger:
		p.IntOpts, err = readBrigadierNumOptionsI32(r)
	case ParserBrigadierString:
		p.StrType, err = proto.ReadVarInt(r)
	}

	return p, err
}

func writeParser(w proto.Writer, p Parser) error {
	if err := composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(p.Kind)); err != nil {
		return err
	}

	switch p.Kind {
	case ParserBrigadierInteger:
		return writeBrigadierNumOptionsI32(w, p.IntOpts)
	case ParserBrigadierString:
		return proto.WriteVarInt(w, p.StrType)
	}

	return nil
}

// BrigadierNumOptions carries optional min/max bounds for a numeric
// brigadier argument type, per spec.md §4.E: a 1-byte flags field (bit 0
// "min present", bit 1 "max present"), then present values only; an
// absent bound assumes the numeric type's extrema.
type BrigadierNumOptions[T any] struct {
	Min T
	Max T
}

func readBrigadierNumOptionsI32(r proto.Reader) (BrigadierNumOptions[int32], error) {
	flags, err := proto.ReadU8(r)
	if err != nil {
		return BrigadierNumOptions[int32]{}, err
	}

	opts := BrigadierNumOptions[int32]{Min: math.MinInt32, Max: math.MaxInt32}

	if flags&0x01 != 0 {
		opts.Min, err = proto.ReadI32(r)
		if err != nil {
			return BrigadierNumOptions[int32]{}, err
		}
	}

	if flags&0x02 != 0 {
		opts.Max, err = proto.ReadI32(r)
		if err != nil {
			return BrigadierNumOptions[int32]{}, err
		}
	}

	return opts, nil
}

func writeBrigadierNumOptionsI32(w proto.Writer, opts BrigadierNumOptions[int32]) error {
	var flags uint8

	hasMin := opts.Min != math.MinInt32
	hasMax := opts.Max != math.MaxInt32

	if hasMin {
		flags |= 0x01
	}

	if hasMax {
		flags |= 0x02
	}

	if err := proto.WriteU8(w, flags); err != nil {
		return err
	}

	if hasMin {
		if err := proto.WriteI32(w, opts.Min); err != nil {
			return err
		}
	}

	if hasMax {
		if err := proto.WriteI32(w, opts.Max); err != nil {
			return err
		}
	}

	return nil
}

// --- PlayersActionsData ---------------------------------------------------

// PlayerActionKind indexes the 8 possible per-player actions carried in a
// PlayerInfoUpdate packet, in the reader's bit order (spec.md §9 Open
// Question #4).
type PlayerActionKind int

const (
	ActionAddPlayer PlayerActionKind = iota
	ActionInitializeChat
	ActionUpdateGamemode
	ActionUpdateListed
	ActionUpdateLatency
	ActionUpdateDisplayName
	ActionUpdateListPriority
	ActionUpdateHat
)

// ChatSessionData is the signed chat session a player announces via
// PlayerAction.ChatSession (InitializeChat).
type ChatSessionData struct {
	SessionID          proto.UUID
	PublicKeyExpiresAt int64
	PublicKey          []byte
	PublicKeySignature []byte
}

func readChatSessionData(r proto.Reader) (ChatSessionData, error) {
	var d ChatSessionData

	var err error

	if d.SessionID, err = proto.ReadUUID(r); err != nil {
		return ChatSessionData{}, err
	}

	if d.PublicKeyExpiresAt, err = proto.ReadI64(r); err != nil {
		return ChatSessionData{}, err
	}

	if d.PublicKey, err = composite.ReadLenPrefixedBytes(r, composite.LengthVarInt); err != nil {
		return ChatSessionData{}, err
	}

	d.PublicKeySignature, err = composite.ReadLenPrefixedBytes(r, composite.LengthVarInt)

	return d, err
}

func writeChatSessionData(w proto.Writer, d ChatSessionData) error {
	if err := proto.WriteUUID(w, d.SessionID); err != nil {
		return err
	}

	if err := proto.WriteI64(w, d.PublicKeyExpiresAt); err != nil {
		return err
	}

	if err := composite.WriteLenPrefixedBytes(w, d.PublicKey, composite.LengthVarInt); err != nil {
		return err
	}

	return composite.WriteLenPrefixedBytes(w, d.PublicKeySignature, composite.LengthVarInt)
}

// PlayerAction is one tagged action payload for a single player entry.
type PlayerAction struct {
	Kind PlayerActionKind

	AddPlayerName       string
	AddPlayerProperties []ProfileProperty

	ChatSession *ChatSessionData

	Gamemode     int32
	Listed       bool
	Latency      int32
	DisplayName  *slot.TextComponent
	ListPriority int32
	HatVisible   bool
}

// PlayerActions is one player's UUID plus its present actions, in bit-index order.
type PlayerActions struct {
	UUID    proto.UUID
	Actions []PlayerAction
}

// PlayersActionsData is an 8-bit action-presence bitmask shared uniformly
// across all players in the packet, followed by a VarInt-prefixed array of
// PlayerActions, per spec.md §4.E. The writer emits bits in the same order
// the reader expects (AddPlayer..UpdateHat), correcting the upstream
// writer/reader bit-index mismatch flagged in spec.md §9 Open Question #4.
//
// The single mask applies to every player entry: every PlayerActions in
// Players must carry exactly the same set of action Kinds (same bits, any
// order). writePlayersActionsData rejects a mismatched player with
// mcerr.Programming rather than silently writing a mask that only some
// players' byte layouts agree with.
type PlayersActionsData struct {
	Players []PlayerActions
}

func readPlayersActionsData(r proto.Reader) (PlayersActionsData, error) {
	mask, err := proto.ReadU8(r)
	if err != nil {
		return PlayersActionsData{}, err
	}

	n, err := proto.ReadVarInt(r)
	if err != nil {
		return PlayersActionsData{}, err
	}

	if n < 0 {
		return PlayersActionsData{}, mcerr.Decode("negative player count: %d", n)
	}

	data := PlayersActionsData{Players: make([]PlayerActions, n)}

	for i := range data.Players {
		uuid, err := proto.ReadUUID(r)
		if err != nil {
			return PlayersActionsData{}, err
		}

		actions := PlayerActions{UUID: uuid}

		for bit := 0; bit < 8; bit++ {
			if mask&(1<<uint(bit)) == 0 {
				continue
			}

			a := PlayerAction{Kind: PlayerActionKind(bit)}

			switch PlayerActionKind(bit) {
			case ActionAddPlayer:
				a.AddPlayerName, err = proto.ReadString(r)
				if err != nil {
					break
				}

				a.AddPlayerProperties, err = composite.ReadPrefixedArray(r, readProfileProperty)
			case ActionInitializeChat:
				a.ChatSession, err = composite.ReadOption(r, readChatSessionData)
			case ActionUpdateGamemode:
				a.Gamemode, err = proto.ReadVarInt(r)
			case ActionUpdateListed:
				a.Listed, err = proto.ReadBool(r)
			case ActionUpdateLatency:
				a.Latency, err = proto.ReadVarInt(r)
			case ActionUpdateDisplayName:
				a.DisplayName, err = composite.ReadOption(r, func(r proto.Reader) (slot.TextComponent, error) { return nbt.ReadTag(r) })
			case ActionUpdateListPriority:
				a.ListPriority, err = proto.ReadVarInt(r)
			case ActionUpdateHat:
				a.HatVisible, err = proto.ReadBool(r)
			}

			if err != nil {
				return PlayersActionsData{}, err
			}

			actions.Actions = append(actions.Actions, a)
		}

		data.Players[i] = actions
	}

	return data, nil
}

func writePlayersActionsData(w proto.Writer, data PlayersActionsData) error {
	var mask uint8

	for _, p := range data.Players {
		for _, a := range p.Actions {
			mask |= 1 << uint(a.Kind)
		}
	}

	for _, p := range data.Players {
		var playerMask uint8
		for _, a := range p.Actions {
			playerMask |= 1 << uint(a.Kind)
		}

		if playerMask != mask {
			return mcerr.Programming("writePlayersActionsData: player %s has action set %08b, want shared mask %08b (the wire format carries one mask for every player)", p.UUID, playerMask, mask)
		}
	}

	if err := proto.WriteU8(w, mask); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, int32(len(data.Players))); err != nil {
		return err
	}

	for _, p := range data.Players {
		if err := proto.WriteUUID(w, p.UUID); err != nil {
			return err
		}

		for _, a := range p.Actions {
			var err error

			switch a.Kind {
			case ActionAddPlayer:
				err = proto.WriteString(w, a.AddPlayerName)
				if err != nil {
					break
				}

				err = composite.WritePrefixedArray(w, a.AddPlayerProperties, writeProfileProperty)
			case ActionInitializeChat:
				err = composite.WriteOption(w, a.ChatSession, writeChatSessionData)
			case ActionUpdateGamemode:
				err = proto.WriteVarInt(w, a.Gamemode)
			case ActionUpdateListed:
				err = proto.WriteBool(w, a.Listed)
			case ActionUpdateLatency:
				err = proto.WriteVarInt(w, a.Latency)
			case ActionUpdateDisplayName:
				err = composite.WriteOption(w, a.DisplayName, func(w proto.Writer, t slot.TextComponent) error { return nbt.WriteTag(w, t) })
			case ActionUpdateListPriority:
				err = proto.WriteVarInt(w, a.ListPriority)
			case ActionUpdateHat:
				err = proto.WriteBool(w, a.HatVisible)
			}

			if err != nil {
				return err
			}
		}
	}

	return nil
}

// --- MapColorPatch ---------------------------------------------------------

// MapColorPatch is a map-data update region: a leading u8 column count; 0
// means no further fields, otherwise rows/x/z/data follow, per spec.md §4.E.
type MapColorPatch struct {
	Columns uint8
	Rows    uint8
	X       uint8
	Z       uint8
	Data    []byte
}

func readMapColorPatch(r proto.Reader) (MapColorPatch, error) {
	columns, err := proto.ReadU8(r)
	if err != nil {
		return MapColorPatch{}, err
	}

	if columns == 0 {
		return MapColorPatch{}, nil
	}

	p := MapColorPatch{Columns: columns}

	if p.Rows, err = proto.ReadU8(r); err != nil {
		return MapColorPatch{}, err
	}

	if p.X, err = proto.ReadU8(r); err != nil {
		return MapColorPatch{}, err
	}

	if p.Z, err = proto.ReadU8(r); err != nil {
		return MapColorPatch{}, err
	}

	p.Data, err = composite.ReadLenPrefixedBytes(r, composite.LengthU8)

	return p, err
}

func writeMapColorPatch(w proto.Writer, p MapColorPatch) error {
	if err := proto.WriteU8(w, p.Columns); err != nil {
		return err
	}

	if p.Columns == 0 {
		return nil
	}

	if err := proto.WriteU8(w, p.Rows); err != nil {
		return err
	}

	if err := proto.WriteU8(w, p.X); err != nil {
		return err
	}

	if err := proto.WriteU8(w, p.Z); err != nil {
		return err
	}

	return composite.WriteLenPrefixedBytes(w, p.Data, composite.LengthU8)
}

// --- StopSoundData ----------------------------------------------------

// StopSoundData carries an optional sound source/name pair behind a 1-byte
// flags field (bit 0 "has source", bit 1 "has sound"), per spec.md §4.E.
type StopSoundData struct {
	Source *int32
	Sound  *string
}

func readStopSoundData(r proto.Reader) (StopSoundData, error) {
	flags, err := proto.ReadU8(r)
	if err != nil {
		return StopSoundData{}, err
	}

	var d StopSoundData

	if flags == 1 || flags == 3 {
		v, err := proto.ReadVarInt(r)
		if err != nil {
			return StopSoundData{}, err
		}

		d.Source = &v
	}

	if flags == 2 || flags == 3 {
		v, err := proto.ReadIdentifier(r)
		if err != nil {
			return StopSoundData{}, err
		}

		d.Sound = &v
	}

	return d, nil
}

func writeStopSoundData(w proto.Writer, d StopSoundData) error {
	var flags uint8

	if d.Source != nil {
		flags |= 1
	}

	if d.Sound != nil {
		flags |= 1 << 1
	}

	if err := proto.WriteU8(w, flags); err != nil {
		return err
	}

	if d.Source != nil {
		if err := proto.WriteVarInt(w, *d.Source); err != nil {
			return err
		}
	}

	if d.Sound != nil {
		if err := proto.WriteIdentifier(w, *d.Sound); err != nil {
			return err
		}
	}

	return nil
}

// --- AdvancementDisplayFlags --------------------------------------------

// AdvancementDisplayFlags carries a raw i32 flags word plus an optional
// background texture identifier. Per spec.md §9 Open Question #1, presence
// is decided by `flags & 0x01 == 1` (exact equality, not a bitwise test) —
// preserved here exactly rather than "fixed" to `!= 0`, since the two
// differ whenever bit 1 (0x02) or above is also set and no authoritative
// source was available to confirm intent.
type AdvancementDisplayFlags struct {
	Flags              int32
	BackgroundTexture  *string
}

func readAdvancementDisplayFlags(r proto.Reader) (AdvancementDisplayFlags, error) {
	flags, err := proto.ReadI32(r)
	if err != nil {
		return AdvancementDisplayFlags{}, err
	}

	d := AdvancementDisplayFlags{Flags: flags}

	if flags&0x01 == 1 {
		bg, err := proto.ReadIdentifier(r)
		if err != nil {
			return AdvancementDisplayFlags{}, err
		}

		d.BackgroundTexture = &bg
	}

	return d, nil
}

func writeAdvancementDisplayFlags(w proto.Writer, d AdvancementDisplayFlags) error {
	if err := proto.WriteI32(w, d.Flags); err != nil {
		return err
	}

	if d.BackgroundTexture != nil {
		return proto.WriteIdentifier(w, *d.BackgroundTexture)
	}

	return nil
}

// --- LpVec3: compact packed velocity ---------------------------------

// LpVec3 is a 48-bit-packed velocity vector with an optional VarInt "fast"
// magnitude extension, per spec.md §4.E / §9 Open Question #3. The packing
// below is a direct transliteration of original_source's implementation,
// preserved as-is (including its unverified math) per the open question's
// instruction not to guess intent.
type LpVec3 struct {
	X, Y, Z float64
}

func clampLpVec3(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	const bound = 1.7179869183e10

	if v > bound {
		return bound
	}

	if v < -bound {
		return -bound
	}

	return v
}

func absMax(a, b float64) float64 {
	if math.Abs(a) > math.Abs(b) {
		return a
	}

	return b
}

func readLpVec3(r proto.Reader) (LpVec3, error) {
	i, err := proto.ReadU8(r)
	if err != nil {
		return LpVec3{}, err
	}

	if i == 0 {
		return LpVec3{}, nil
	}

	j, err := proto.ReadU8(r)
	if err != nil {
		return LpVec3{}, err
	}

	l, err := proto.ReadU32(r)
	if err != nil {
		return LpVec3{}, err
	}

	m := uint64(l)<<16 | uint64(j)<<8 | uint64(i)
	n := uint64(i) & 3

	if i&4 == 4 {
		fast, err := proto.ReadVarInt(r)
		if err != nil {
			return LpVec3{}, err
		}

		n |= (uint64(uint32(fast)) & 0xFFFFFFFF) << 2
	}

	return LpVec3{
		X: float64(m>>3) * float64(n),
		Y: float64(m>>18) * float64(n),
		Z: float64(m>>33) * float64(n),
	}, nil
}

func writeLpVec3(w proto.Writer, v LpVec3) error {
	d := clampLpVec3(v.X)
	e := clampLpVec3(v.Y)
	f := clampLpVec3(v.Z)
	g := absMax(d, absMax(e, f))

	if g < 3.051944088384301e-5 {
		return proto.WriteU8(w, 0)
	}

	l := uint64(math.Ceil(g))
	bl := (l & 3) != l

	var m uint64
	if bl {
		m = (l & 3) | 4
	} else {
		m = l
	}

	n := uint64(d/float64(l)) << 3
	o := uint64(e/float64(l)) << 18
	p := uint64(f/float64(l)) << 33
	q := m | n | o | p

	if err := proto.WriteU8(w, uint8(q)); err != nil {
		return err
	}

	if err := proto.WriteU8(w, uint8(q>>8)); err != nil {
		return err
	}

	if err := proto.WriteU32(w, uint32(q>>16)); err != nil {
		return err
	}

	if bl {
		return proto.WriteVarInt(w, int32(l>>2))
	}

	return nil
}
