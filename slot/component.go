package slot

import (
	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/nbt"
	"github.com/go-mcproto/mcproto/proto"
)

// ComponentKind identifies the shape carried by a Component. The full
// protocol has ~100 component kinds (spec.md §4.D); this catalog implements
// the subset that exercises every distinct wire shape the rest follow
// (scalar, bool, nbt passthrough, PrefixedArray of a struct, Option of an
// Identifier, IdOrInline of a registry entry, nested enum, recursive Slot).
// A Component id outside this catalog cannot be generically skipped: the
// wire format gives components no self-delimiting length, so decoding an
// id this package doesn't know produces a decode error pointing at the
// registry id rather than silently desyncing the stream.
//
// Values are pinned to the real registry ids (original_source's Component
// enum order), not raw declaration order: the catalog below implements a
// non-contiguous subset of a ~70+ variant enum, so leaving these as a bare
// iota would silently renumber every variant after the first gap.
type ComponentKind int32

const (
	ComponentCustomData               ComponentKind = 0
	ComponentMaxStackSize             ComponentKind = 1
	ComponentMaxDamage                ComponentKind = 2
	ComponentDamage                   ComponentKind = 3
	ComponentUnbreakable              ComponentKind = 4
	ComponentCustomName               ComponentKind = 5
	ComponentItemName                 ComponentKind = 6
	ComponentLore                     ComponentKind = 8
	ComponentRarity                   ComponentKind = 9
	ComponentEnchantments             ComponentKind = 10
	ComponentAttributeModifiers       ComponentKind = 13
	ComponentCustomModelData          ComponentKind = 14
	ComponentRepairCost               ComponentKind = 16
	ComponentCreativeSlotLock         ComponentKind = 17
	ComponentEnchantmentGlintOverride ComponentKind = 18
	ComponentFood                     ComponentKind = 20
	ComponentConsumable               ComponentKind = 21
	ComponentUseRemainder             ComponentKind = 22
	ComponentTool                     ComponentKind = 25
	ComponentEquippable               ComponentKind = 28
	ComponentRepairable               ComponentKind = 29
	ComponentGlider                   ComponentKind = 30
	ComponentStoredEnchantments       ComponentKind = 34
	ComponentDyedColor                ComponentKind = 35
	ComponentMapColor                 ComponentKind = 36
	ComponentChargedProjectiles       ComponentKind = 40
	ComponentBundleContents           ComponentKind = 41
	ComponentPotionContents           ComponentKind = 42
)

// ErrUnsupportedKind is returned when a Component/ConsumeEffect variant this
// package does not model is encountered.
var ErrUnsupportedKind = mcerr.Decode("component variant not in catalog")

// Component is a single data-component entry of an Item's additive list.
// Exactly the fields relevant to Kind are populated; see ComponentKind's
// doc comment for the scope of what's modeled.
type Component struct {
	Kind ComponentKind

	NBT nbt.Tag // CustomData

	Int32Val int32 // MaxStackSize, MaxDamage, Damage, RepairCost, MapID
	BoolVal  bool  // EnchantmentGlintOverride

	Text TextComponent // CustomName, ItemName

	Lore []TextComponent

	Rarity Rarity

	Enchantments []Enchantment

	AttributeModifiers []AttributeModifier

	CustomModelDataFloats  []float32
	CustomModelDataFlags   []bool
	CustomModelDataStrings []string
	CustomModelDataColors  []int32

	FoodNutrition           int32
	FoodSaturationModifier  float32
	FoodCanAlwaysEat        bool

	ConsumeSeconds         float32
	ConsumeAnimation       ConsumeAnimation
	ConsumeSound           composite.IdOrInline[SoundEvent]
	ConsumeHasParticles    bool
	ConsumeEffects         []ConsumeEffect

	UseRemainder *Slot

	ToolRules              []ToolRule
	ToolDefaultMiningSpeed float32
	ToolDamagePerBlock     int32

	EquipSlot            EquippableSlot
	EquipSound           composite.IdOrInline[SoundEvent]
	EquipModel           *string
	EquipCameraOverlay   *string
	EquipAllowedEntities *composite.IdSet
	EquipDispensable     bool
	EquipSwappable       bool
	EquipDamageOnHurt    bool

	RepairableItems composite.IdSet

	Color ColorI32 // DyedColor, MapColor

	PotionID          *int32
	PotionCustomColor *ColorI32

	Slots []Slot // ChargedProjectiles, BundleContents
}

// ReadComponent decodes a single Component by its VarInt kind id. The id is
// the registry id directly (see ComponentKind's doc comment), not an index
// into this catalog's smaller implemented subset.
func ReadComponent(r proto.Reader) (Component, error) {
	rawID, err := proto.ReadVarInt(r)
	if err != nil {
		return Component{}, err
	}

	kind := ComponentKind(rawID)
	c := Component{Kind: kind}

	switch kind {
	case ComponentCustomData:
		c.NBT, err = nbt.ReadTag(r)
	case ComponentMaxStackSize, ComponentMaxDamage, ComponentDamage, ComponentRepairCost:
		c.Int32Val, err = proto.ReadVarInt(r)
	case ComponentUnbreakable, ComponentCreativeSlotLock, ComponentGlider:
		// no payload
	case ComponentCustomName, ComponentItemName:
		c.Text, err = readTextComponent(r)
	case ComponentLore:
		c.Lore, err = composite.ReadPrefixedArray(r, readTextComponent)
	case ComponentRarity:
		c.Rarity, err = readRarity(r)
	case ComponentEnchantments, ComponentStoredEnchantments:
		c.Enchantments, err = composite.ReadPrefixedArray(r, readEnchantment)
	case ComponentAttributeModifiers:
		c.AttributeModifiers, err = composite.ReadPrefixedArray(r, readAttributeModifier)
	case ComponentCustomModelData:
		if c.CustomModelDataFloats, err = composite.ReadPrefixedArray(r, proto.ReadF32); err != nil {
			break
		}

		if c.CustomModelDataFlags, err = composite.ReadPrefixedArray(r, proto.ReadBool); err != nil {
			break
		}

		if c.CustomModelDataStrings, err = composite.ReadPrefixedArray(r, proto.ReadString); err != nil {
			break
		}

		c.CustomModelDataColors, err = composite.ReadPrefixedArray(r, proto.ReadI32)
	case ComponentEnchantmentGlintOverride:
		c.BoolVal, err = proto.ReadBool(r)
	case ComponentFood:
		if c.FoodNutrition, err = proto.ReadVarInt(r); err != nil {
			break
		}

		if c.FoodSaturationModifier, err = proto.ReadF32(r); err != nil {
			break
		}

		c.FoodCanAlwaysEat, err = proto.ReadBool(r)
	case ComponentConsumable:
		if c.ConsumeSeconds, err = proto.ReadF32(r); err != nil {
			break
		}

		if c.ConsumeAnimation, err = readConsumeAnimation(r); err != nil {
			break
		}

		if c.ConsumeSound, err = composite.ReadIdOrInline(r, ReadSoundEvent); err != nil {
			break
		}

		if c.ConsumeHasParticles, err = proto.ReadBool(r); err != nil {
			break
		}

		c.ConsumeEffects, err = composite.ReadPrefixedArray(r, readConsumeEffect)
	case ComponentUseRemainder:
		var s Slot
		s, err = ReadSlot(r)
		c.UseRemainder = &s
	case ComponentTool:
		if c.ToolRules, err = composite.ReadPrefixedArray(r, readToolRule); err != nil {
			break
		}

		if c.ToolDefaultMiningSpeed, err = proto.ReadF32(r); err != nil {
			break
		}

		c.ToolDamagePerBlock, err = proto.ReadVarInt(r)
	case ComponentEquippable:
		if c.EquipSlot, err = readEquippableSlot(r); err != nil {
			break
		}

		if c.EquipSound, err = composite.ReadIdOrInline(r, ReadSoundEvent); err != nil {
			break
		}

		if c.EquipModel, err = composite.ReadOption(r, proto.ReadIdentifier); err != nil {
			break
		}

		if c.EquipCameraOverlay, err = composite.ReadOption(r, proto.ReadIdentifier); err != nil {
			break
		}

		if c.EquipAllowedEntities, err = composite.ReadOption(r, composite.ReadIdSet); err != nil {
			break
		}

		if c.EquipDispensable, err = proto.ReadBool(r); err != nil {
			break
		}

		if c.EquipSwappable, err = proto.ReadBool(r); err != nil {
			break
		}

		c.EquipDamageOnHurt, err = proto.ReadBool(r)
	case ComponentRepairable:
		c.RepairableItems, err = composite.ReadIdSet(r)
	case ComponentDyedColor, ComponentMapColor:
		c.Color, err = ReadColorI32(r)
	case ComponentPotionContents:
		if c.PotionID, err = composite.ReadOption(r, proto.ReadVarInt); err != nil {
			break
		}

		c.PotionCustomColor, err = composite.ReadOption(r, ReadColorI32)
	case ComponentChargedProjectiles, ComponentBundleContents:
		c.Slots, err = composite.ReadPrefixedArray(r, ReadSlot)
	default:
		return Component{}, ErrUnsupportedKind
	}

	if err != nil {
		return Component{}, err
	}

	return c, nil
}

// WriteComponent encodes a single Component.
func WriteComponent(w proto.Writer, c Component) error {
	if err := proto.WriteVarInt(w, int32(c.Kind)); err != nil {
		return err
	}

	switch c.Kind {
	case ComponentCustomData:
		return nbt.WriteTag(w, c.NBT)
	case ComponentMaxStackSize, ComponentMaxDamage, ComponentDamage, ComponentRepairCost:
		return proto.WriteVarInt(w, c.Int32Val)
	case ComponentUnbreakable, ComponentCreativeSlotLock, ComponentGlider:
		return nil
	case ComponentCustomName, ComponentItemName:
		return writeTextComponent(w, c.Text)
	case ComponentLore:
		return composite.WritePrefixedArray(w, c.Lore, writeTextComponent)
	case ComponentRarity:
		return writeRarity(w, c.Rarity)
	case ComponentEnchantments, ComponentStoredEnchantments:
		return composite.WritePrefixedArray(w, c.Enchantments, writeEnchantment)
	case ComponentAttributeModifiers:
		return composite.WritePrefixedArray(w, c.AttributeModifiers, writeAttributeModifier)
	case ComponentCustomModelData:
		if err := composite.WritePrefixedArray(w, c.CustomModelDataFloats, proto.WriteF32); err != nil {
			return err
		}

		if err := composite.WritePrefixedArray(w, c.CustomModelDataFlags, proto.WriteBool); err != nil {
			return err
		}

		if err := composite.WritePrefixedArray(w, c.CustomModelDataStrings, proto.WriteString); err != nil {
			return err
		}

		return composite.WritePrefixedArray(w, c.CustomModelDataColors, proto.WriteI32)
	case ComponentEnchantmentGlintOverride:
		return proto.WriteBool(w, c.BoolVal)
	case ComponentFood:
		if err := proto.WriteVarInt(w, c.FoodNutrition); err != nil {
			return err
		}

		if err := proto.WriteF32(w, c.FoodSaturationModifier); err != nil {
			return err
		}

		return proto.WriteBool(w, c.FoodCanAlwaysEat)
	case ComponentConsumable:
		if err := proto.WriteF32(w, c.ConsumeSeconds); err != nil {
			return err
		}

		if err := writeConsumeAnimation(w, c.ConsumeAnimation); err != nil {
			return err
		}

		if err := composite.WriteIdOrInline(w, c.ConsumeSound, WriteSoundEvent); err != nil {
			return err
		}

		if err := proto.WriteBool(w, c.ConsumeHasParticles); err != nil {
			return err
		}

		return composite.WritePrefixedArray(w, c.ConsumeEffects, writeConsumeEffect)
	case ComponentUseRemainder:
		return WriteSlot(w, *c.UseRemainder)
	case ComponentTool:
		if err := composite.WritePrefixedArray(w, c.ToolRules, writeToolRule); err != nil {
			return err
		}

		if err := proto.WriteF32(w, c.ToolDefaultMiningSpeed); err != nil {
			return err
		}

		return proto.WriteVarInt(w, c.ToolDamagePerBlock)
	case ComponentEquippable:
		if err := writeEquippableSlot(w, c.EquipSlot); err != nil {
			return err
		}

		if err := composite.WriteIdOrInline(w, c.EquipSound, WriteSoundEvent); err != nil {
			return err
		}

		if err := composite.WriteOption(w, c.EquipModel, proto.WriteIdentifier); err != nil {
			return err
		}

		if err := composite.WriteOption(w, c.EquipCameraOverlay, proto.WriteIdentifier); err != nil {
			return err
		}

		if err := composite.WriteOption(w, c.EquipAllowedEntities, composite.WriteIdSet); err != nil {
			return err
		}

		if err := proto.WriteBool(w, c.EquipDispensable); err != nil {
			return err
		}

		if err := proto.WriteBool(w, c.EquipSwappable); err != nil {
			return err
		}

		return proto.WriteBool(w, c.EquipDamageOnHurt)
	case ComponentRepairable:
		return composite.WriteIdSet(w, c.RepairableItems)
	case ComponentDyedColor, ComponentMapColor:
		return WriteColorI32(w, c.Color)
	case ComponentPotionContents:
		if err := composite.WriteOption(w, c.PotionID, proto.WriteVarInt); err != nil {
			return err
		}

		return composite.WriteOption(w, c.PotionCustomColor, WriteColorI32)
	case ComponentChargedProjectiles, ComponentBundleContents:
		return composite.WritePrefixedArray(w, c.Slots, WriteSlot)
	default:
		return ErrUnsupportedKind
	}
}
