package slot

import (
	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/nbt"
	"github.com/go-mcproto/mcproto/proto"
)

// TextComponent is carried over the network as NBT since 1.20.3 (the
// chat-component rework); the full rich-text grammar is out of scope here,
// callers work with the raw nbt.Tag.
type TextComponent = nbt.Tag

func readTextComponent(r proto.Reader) (TextComponent, error) { return nbt.ReadTag(r) }
func writeTextComponent(w proto.Writer, t TextComponent) error { return nbt.WriteTag(w, t) }

// ColorI32 is a 24-bit RGB color packed into the low 24 bits of a u32,
// top byte ignored (spec.md §4.D).
type ColorI32 struct {
	R, G, B uint8
}

// ReadColorI32 decodes a ColorI32.
func ReadColorI32(r proto.Reader) (ColorI32, error) {
	v, err := proto.ReadU32(r)
	if err != nil {
		return ColorI32{}, err
	}

	return ColorI32{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// WriteColorI32 encodes a ColorI32.
func WriteColorI32(w proto.Writer, c ColorI32) error {
	v := uint32(c.B) | uint32(c.G)<<8 | uint32(c.R)<<16
	return proto.WriteU32(w, v)
}

// Rarity is the item-rarity enum (common/uncommon/rare/epic).
type Rarity int32

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
)

func readRarity(r proto.Reader) (Rarity, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 4)
	return Rarity(idx), err
}

func writeRarity(w proto.Writer, v Rarity) error {
	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(v))
}

// Enchantment pairs an enchantment registry id with a level.
type Enchantment struct {
	TypeID int32
	Level  int32
}

func readEnchantment(r proto.Reader) (Enchantment, error) {
	id, err := proto.ReadVarInt(r)
	if err != nil {
		return Enchantment{}, err
	}

	lvl, err := proto.ReadVarInt(r)
	return Enchantment{TypeID: id, Level: lvl}, err
}

func writeEnchantment(w proto.Writer, e Enchantment) error {
	if err := proto.WriteVarInt(w, e.TypeID); err != nil {
		return err
	}

	return proto.WriteVarInt(w, e.Level)
}

// SoundEvent is a direct (non-registry) sound definition usable as the
// inline arm of an IdOrInline[SoundEvent].
type SoundEvent struct {
	SoundName  string
	FixedRange *float32
}

// ReadSoundEvent decodes a SoundEvent.
func ReadSoundEvent(r proto.Reader) (SoundEvent, error) {
	name, err := proto.ReadIdentifier(r)
	if err != nil {
		return SoundEvent{}, err
	}

	rng, err := composite.ReadOption(r, proto.ReadF32)
	if err != nil {
		return SoundEvent{}, err
	}

	return SoundEvent{SoundName: name, FixedRange: rng}, nil
}

// WriteSoundEvent encodes a SoundEvent.
func WriteSoundEvent(w proto.Writer, s SoundEvent) error {
	if err := proto.WriteIdentifier(w, s.SoundName); err != nil {
		return err
	}

	return composite.WriteOption(w, s.FixedRange, proto.WriteF32)
}

// EquippableSlot is the armor/equipment slot enum used by the Equippable component.
type EquippableSlot int32

const (
	EquippableMainhand EquippableSlot = iota
	EquippableFeet
	EquippableLegs
	EquippableChest
	EquippableHead
	EquippableOffhand
	EquippableBody
)

func readEquippableSlot(r proto.Reader) (EquippableSlot, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 7)
	return EquippableSlot(idx), err
}

func writeEquippableSlot(w proto.Writer, v EquippableSlot) error {
	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(v))
}

// ConsumeAnimation is the eat/drink/block/... animation enum used by Consumable.
type ConsumeAnimation int32

const (
	ConsumeNone ConsumeAnimation = iota
	ConsumeEat
	ConsumeDrink
	ConsumeBlock
	ConsumeBow
	ConsumeSpear
	ConsumeCrossbow
	ConsumeSpyglass
	ConsumeTootHorn
	ConsumeBrush
)

func readConsumeAnimation(r proto.Reader) (ConsumeAnimation, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 10)
	return ConsumeAnimation(idx), err
}

func writeConsumeAnimation(w proto.Writer, v ConsumeAnimation) error {
	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(v))
}

// ConsumeEffect is the tagged sum of effects a Consumable component applies
// on use; only ApplyEffects/ClearAllEffects/TeleportRandomly are modeled
// here (see Component's scope note), the rest map to ErrUnsupportedKind.
type ConsumeEffect struct {
	Kind        ConsumeEffectKind
	Effects     []PotionEffect
	Probability float32
	Diameter    float32
}

// ConsumeEffectKind discriminates ConsumeEffect's variants.
type ConsumeEffectKind int32

const (
	ConsumeEffectApplyEffects ConsumeEffectKind = iota
	ConsumeEffectRemoveEffects
	ConsumeEffectClearAllEffects
	ConsumeEffectTeleportRandomly
	ConsumeEffectPlaySound
)

func readConsumeEffect(r proto.Reader) (ConsumeEffect, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 5)
	if err != nil {
		return ConsumeEffect{}, err
	}

	switch ConsumeEffectKind(idx) {
	case ConsumeEffectApplyEffects:
		effects, err := composite.ReadPrefixedArray(r, readPotionEffect)
		if err != nil {
			return ConsumeEffect{}, err
		}

		prob, err := proto.ReadF32(r)
		return ConsumeEffect{Kind: ConsumeEffectApplyEffects, Effects: effects, Probability: prob}, err
	case ConsumeEffectClearAllEffects:
		return ConsumeEffect{Kind: ConsumeEffectClearAllEffects}, nil
	case ConsumeEffectTeleportRandomly:
		d, err := proto.ReadF32(r)
		return ConsumeEffect{Kind: ConsumeEffectTeleportRandomly, Diameter: d}, err
	default:
		return ConsumeEffect{}, ErrUnsupportedKind
	}
}

func writeConsumeEffect(w proto.Writer, e ConsumeEffect) error {
	if err := composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(e.Kind)); err != nil {
		return err
	}

	switch e.Kind {
	case ConsumeEffectApplyEffects:
		if err := composite.WritePrefixedArray(w, e.Effects, writePotionEffect); err != nil {
			return err
		}

		return proto.WriteF32(w, e.Probability)
	case ConsumeEffectClearAllEffects:
		return nil
	case ConsumeEffectTeleportRandomly:
		return proto.WriteF32(w, e.Diameter)
	default:
		return ErrUnsupportedKind
	}
}

// PotionEffect pairs an effect registry id with its duration/flags.
type PotionEffect struct {
	TypeID        int32
	Amplifier     int32
	Duration      int32 // -1 means infinite
	Ambient       bool
	ShowParticles bool
	ShowIcon      bool
	Hidden        *PotionEffect
}

func readPotionEffect(r proto.Reader) (PotionEffect, error) {
	typeID, err := proto.ReadVarInt(r)
	if err != nil {
		return PotionEffect{}, err
	}

	pe, err := readPotionEffectDetail(r)
	if err != nil {
		return PotionEffect{}, err
	}

	pe.TypeID = typeID
	return pe, nil
}

func readPotionEffectDetail(r proto.Reader) (PotionEffect, error) {
	amp, err := proto.ReadVarInt(r)
	if err != nil {
		return PotionEffect{}, err
	}

	dur, err := proto.ReadVarInt(r)
	if err != nil {
		return PotionEffect{}, err
	}

	ambient, err := proto.ReadBool(r)
	if err != nil {
		return PotionEffect{}, err
	}

	showParticles, err := proto.ReadBool(r)
	if err != nil {
		return PotionEffect{}, err
	}

	showIcon, err := proto.ReadBool(r)
	if err != nil {
		return PotionEffect{}, err
	}

	hasHidden, err := proto.ReadBool(r)
	if err != nil {
		return PotionEffect{}, err
	}

	var hidden *PotionEffect
	if hasHidden {
		h, err := readPotionEffectDetail(r)
		if err != nil {
			return PotionEffect{}, err
		}

		hidden = &h
	}

	return PotionEffect{
		Amplifier: amp, Duration: dur, Ambient: ambient,
		ShowParticles: showParticles, ShowIcon: showIcon, Hidden: hidden,
	}, nil
}

func writePotionEffect(w proto.Writer, pe PotionEffect) error {
	if err := proto.WriteVarInt(w, pe.TypeID); err != nil {
		return err
	}

	return writePotionEffectDetail(w, pe)
}

func writePotionEffectDetail(w proto.Writer, pe PotionEffect) error {
	if err := proto.WriteVarInt(w, pe.Amplifier); err != nil {
		return err
	}

	if err := proto.WriteVarInt(w, pe.Duration); err != nil {
		return err
	}

	if err := proto.WriteBool(w, pe.Ambient); err != nil {
		return err
	}

	if err := proto.WriteBool(w, pe.ShowParticles); err != nil {
		return err
	}

	if err := proto.WriteBool(w, pe.ShowIcon); err != nil {
		return err
	}

	if err := proto.WriteBool(w, pe.Hidden != nil); err != nil {
		return err
	}

	if pe.Hidden != nil {
		return writePotionEffectDetail(w, *pe.Hidden)
	}

	return nil
}

// ToolRule is a single block-set/speed/drop rule of the Tool component.
type ToolRule struct {
	Blocks                composite.IdSet
	Speed                 *float32
	CorrectDropForBlocks  *bool
}

func readToolRule(r proto.Reader) (ToolRule, error) {
	blocks, err := composite.ReadIdSet(r)
	if err != nil {
		return ToolRule{}, err
	}

	speed, err := composite.ReadOption(r, proto.ReadF32)
	if err != nil {
		return ToolRule{}, err
	}

	drop, err := composite.ReadOption(r, proto.ReadBool)
	if err != nil {
		return ToolRule{}, err
	}

	return ToolRule{Blocks: blocks, Speed: speed, CorrectDropForBlocks: drop}, nil
}

func writeToolRule(w proto.Writer, t ToolRule) error {
	if err := composite.WriteIdSet(w, t.Blocks); err != nil {
		return err
	}

	if err := composite.WriteOption(w, t.Speed, proto.WriteF32); err != nil {
		return err
	}

	return composite.WriteOption(w, t.CorrectDropForBlocks, proto.WriteBool)
}

// AttributeOperation is the add/multiply-base/multiply-total enum.
type AttributeOperation int32

const (
	AttributeAdd AttributeOperation = iota
	AttributeMultiplyBase
	AttributeMultiplyTotal
)

// AttributeModifierSlot restricts where an AttributeModifier applies.
type AttributeModifierSlot int32

const (
	AttrSlotAny AttributeModifierSlot = iota
	AttrSlotMainHand
	AttrSlotOffHand
	AttrSlotHand
	AttrSlotFeet
	AttrSlotLegs
	AttrSlotChest
	AttrSlotHead
	AttrSlotArmor
	AttrSlotBody
)

// AttributeModifier is a single entity-attribute modification carried by
// the AttributeModifiers component.
type AttributeModifier struct {
	AttributeID int32
	ModifierID  string
	Value       float64
	Operation   AttributeOperation
	Slot        AttributeModifierSlot
}

func readAttributeModifier(r proto.Reader) (AttributeModifier, error) {
	attrID, err := proto.ReadVarInt(r)
	if err != nil {
		return AttributeModifier{}, err
	}

	modID, err := proto.ReadIdentifier(r)
	if err != nil {
		return AttributeModifier{}, err
	}

	value, err := proto.ReadF64(r)
	if err != nil {
		return AttributeModifier{}, err
	}

	opIdx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 3)
	if err != nil {
		return AttributeModifier{}, err
	}

	slotIdx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 10)
	if err != nil {
		return AttributeModifier{}, err
	}

	return AttributeModifier{
		AttributeID: attrID, ModifierID: modID, Value: value,
		Operation: AttributeOperation(opIdx), Slot: AttributeModifierSlot(slotIdx),
	}, nil
}

func writeAttributeModifier(w proto.Writer, a AttributeModifier) error {
	if err := proto.WriteVarInt(w, a.AttributeID); err != nil {
		return err
	}

	if err := proto.WriteIdentifier(w, a.ModifierID); err != nil {
		return err
	}

	if err := proto.WriteF64(w, a.Value); err != nil {
		return err
	}

	if err := composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(a.Operation)); err != nil {
		return err
	}

	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(a.Slot))
}
