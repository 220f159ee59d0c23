package packets

import (
	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/proto"
	"github.com/go-mcproto/mcproto/slot"
)

// ClientInformationConfig announces the client's locale/render-distance/
// chat/skin preferences while the connection transitions through
// Configuration (the same shape is re-sent in Play).
type ClientInformationConfig struct {
	Locale              string
	ViewDistance         int8
	ChatMode             ChatMode
	ChatColors           bool
	DisplayedSkinParts   SkinParts
	MainHand             MainHand
	EnableTextFiltering  bool
	AllowServerListings  bool
	ParticleStatus       ParticleStatus
}

func (p *ClientInformationConfig) PacketName() string { return "minecraft:client_information" }

func (p *ClientInformationConfig) ReadFrom(r proto.Reader) error {
	var err error

	if p.Locale, err = proto.ReadString(r); err != nil {
		return err
	}

	if p.ViewDistance, err = proto.ReadI8(r); err != nil {
		return err
	}

	if p.ChatMode, err = readChatMode(r); err != nil {
		return err
	}

	if p.ChatColors, err = proto.ReadBool(r); err != nil {
		return err
	}

	skinParts, err := proto.ReadU8(r)
	if err != nil {
		return err
	}

	p.DisplayedSkinParts = SkinParts(skinParts)

	if p.MainHand, err = readMainHand(r); err != nil {
		return err
	}

	if p.EnableTextFiltering, err = proto.ReadBool(r); err != nil {
		return err
	}

	if p.AllowServerListings, err = proto.ReadBool(r); err != nil {
		return err
	}

	p.ParticleStatus, err = readParticleStatus(r)

	return err
}

func (p *ClientInformationConfig) WriteTo(w proto.Writer) error {
	if err := proto.WriteString(w, p.Locale); err != nil {
		return err
	}

	if err := proto.WriteI8(w, p.ViewDistance); err != nil {
		return err
	}

	if err := writeChatMode(w, p.ChatMode); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.ChatColors); err != nil {
		return err
	}

	if err := proto.WriteU8(w, uint8(p.DisplayedSkinParts)); err != nil {
		return err
	}

	if err := writeMainHand(w, p.MainHand); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.EnableTextFiltering); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.AllowServerListings); err != nil {
		return err
	}

	return writeParticleStatus(w, p.ParticleStatus)
}

// CustomPayloadConfig carries an arbitrary plugin-channel message; its
// payload consumes the rest of the framed packet body.
type CustomPayloadConfig struct {
	Channel string
	Data    []byte
}

func (p *CustomPayloadConfig) PacketName() string { return "minecraft:custom_payload" }

func (p *CustomPayloadConfig) ReadFrom(r proto.Reader) error {
	var err error

	if p.Channel, err = proto.ReadIdentifier(r); err != nil {
		return err
	}

	p.Data, err = readRemainingBytes(r)

	return err
}

func (p *CustomPayloadConfig) WriteTo(w proto.Writer) error {
	if err := proto.WriteIdentifier(w, p.Channel); err != nil {
		return err
	}

	return writeRemainingBytes(w, p.Data)
}

// FinishConfiguration has no fields in either direction: serverbound it
// acknowledges the transition into Play, clientbound it requests it
// (spec.md §8's end-to-end replay property).
type FinishConfiguration struct{}

func (p *FinishConfiguration) PacketName() string         { return "minecraft:finish_configuration" }
func (p *FinishConfiguration) ReadFrom(r proto.Reader) error { return nil }
func (p *FinishConfiguration) WriteTo(w proto.Writer) error  { return nil }

// KeepAliveConfig carries an opaque id that must be echoed back unchanged.
type KeepAliveConfig struct {
	ID int64
}

func (p *KeepAliveConfig) PacketName() string { return "minecraft:keep_alive" }

func (p *KeepAliveConfig) ReadFrom(r proto.Reader) error {
	var err error
	p.ID, err = proto.ReadI64(r)

	return err
}

func (p *KeepAliveConfig) WriteTo(w proto.Writer) error {
	return proto.WriteI64(w, p.ID)
}

// PongConfig answers a clientbound Ping with the same id.
type PongConfig struct {
	ID int32
}

func (p *PongConfig) PacketName() string { return "minecraft:pong" }

func (p *PongConfig) ReadFrom(r proto.Reader) error {
	var err error
	p.ID, err = proto.ReadI32(r)

	return err
}

func (p *PongConfig) WriteTo(w proto.Writer) error {
	return proto.WriteI32(w, p.ID)
}

// ResourcePackResponse reports how the client handled a pushed pack.
type ResourcePackResponse struct {
	UUID   proto.UUID
	Result ResourcePackResult
}

func (p *ResourcePackResponse) PacketName() string { return "minecraft:resource_pack" }

func (p *ResourcePackResponse) ReadFrom(r proto.Reader) error {
	var err error

	if p.UUID, err = proto.ReadUUID(r); err != nil {
		return err
	}

	p.Result, err = readResourcePackResult(r)

	return err
}

func (p *ResourcePackResponse) WriteTo(w proto.Writer) error {
	if err := proto.WriteUUID(w, p.UUID); err != nil {
		return err
	}

	return writeResourcePackResult(w, p.Result)
}

// SelectKnownPacks exchanges the data-pack versions each peer already has
// cached, in either direction, so RegistryData only needs to carry deltas.
type SelectKnownPacks struct {
	Packs []KnownPack
}

func (p *SelectKnownPacks) PacketName() string { return "minecraft:select_known_packs" }

func (p *SelectKnownPacks) ReadFrom(r proto.Reader) error {
	var err error
	p.Packs, err = composite.ReadPrefixedArray(r, readKnownPack)

	return err
}

func (p *SelectKnownPacks) WriteTo(w proto.Writer) error {
	return composite.WritePrefixedArray(w, p.Packs, writeKnownPack)
}

// CookieRequestConfig asks the client to echo back a stored cookie by key.
type CookieRequestConfig struct {
	Key string
}

func (p *CookieRequestConfig) PacketName() string { return "minecraft:cookie_request" }

func (p *CookieRequestConfig) ReadFrom(r proto.Reader) error {
	var err error
	p.Key, err = proto.ReadIdentifier(r)

	return err
}

func (p *CookieRequestConfig) WriteTo(w proto.Writer) error {
	return proto.WriteIdentifier(w, p.Key)
}

// DisconnectConfig carries a text-component reason for a configuration-
// phase disconnect (unlike Login's plain-string reason, this one is NBT).
type DisconnectConfig struct {
	Reason slot.TextComponent
}

func (p *DisconnectConfig) PacketName() string { return "minecraft:disconnect" }

func (p *DisconnectConfig) ReadFrom(r proto.Reader) error {
	var err error
	p.Reason, err = readTextComponent(r)

	return err
}

func (p *DisconnectConfig) WriteTo(w proto.Writer) error {
	return writeTextComponent(w, p.Reason)
}

// PingConfig is a clientbound heartbeat the client must answer with a
// matching Pong.
type PingConfig struct {
	ID int32
}

func (p *PingConfig) PacketName() string { return "minecraft:ping" }

func (p *PingConfig) ReadFrom(r proto.Reader) error {
	var err error
	p.ID, err = proto.ReadI32(r)

	return err
}

func (p *PingConfig) WriteTo(w proto.Writer) error {
	return proto.WriteI32(w, p.ID)
}

// RegistryData pushes one registry's entries (and their NBT payloads) to
// the client; SelectKnownPacks lets the client skip registries it
// already has.
type RegistryData struct {
	RegistryID string
	Entries    []RegistryEntry
}

func (p *RegistryData) PacketName() string { return "minecraft:registry_data" }

func (p *RegistryData) ReadFrom(r proto.Reader) error {
	var err error

	if p.RegistryID, err = proto.ReadIdentifier(r); err != nil {
		return err
	}

	p.Entries, err = composite.ReadPrefixedArray(r, readRegistryEntry)

	return err
}

func (p *RegistryData) WriteTo(w proto.Writer) error {
	if err := proto.WriteIdentifier(w, p.RegistryID); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, p.Entries, writeRegistryEntry)
}

// ResourcePackPop removes a previously pushed pack; a nil UUID means "all".
type ResourcePackPop struct {
	UUID *proto.UUID
}

func (p *ResourcePackPop) PacketName() string { return "minecraft:resource_pack_pop" }

func (p *ResourcePackPop) ReadFrom(r proto.Reader) error {
	var err error
	p.UUID, err = readOptUUID(r)

	return err
}

func (p *ResourcePackPop) WriteTo(w proto.Writer) error {
	return writeOptUUID(w, p.UUID)
}

// ResourcePackPush offers a client-downloadable pack.
type ResourcePackPush struct {
	UUID    proto.UUID
	URL     string
	Hash    string
	Forced  bool
	Prompt  *slot.TextComponent
}

func (p *ResourcePackPush) PacketName() string { return "minecraft:resource_pack_push" }

func (p *ResourcePackPush) ReadFrom(r proto.Reader) error {
	var err error

	if p.UUID, err = proto.ReadUUID(r); err != nil {
		return err
	}

	if p.URL, err = proto.ReadString(r); err != nil {
		return err
	}

	if p.Hash, err = proto.ReadString(r); err != nil {
		return err
	}

	if p.Forced, err = proto.ReadBool(r); err != nil {
		return err
	}

	p.Prompt, err = readOptTextComponent(r)

	return err
}

func (p *ResourcePackPush) WriteTo(w proto.Writer) error {
	if err := proto.WriteUUID(w, p.UUID); err != nil {
		return err
	}

	if err := proto.WriteString(w, p.URL); err != nil {
		return err
	}

	if err := proto.WriteString(w, p.Hash); err != nil {
		return err
	}

	if err := proto.WriteBool(w, p.Forced); err != nil {
		return err
	}

	return writeOptTextComponent(w, p.Prompt)
}

// UpdateEnabledFeatures tells the client which namespaced feature flags
// (e.g. "minecraft:vanilla") are active on this server.
type UpdateEnabledFeatures struct {
	Features []string
}

func (p *UpdateEnabledFeatures) PacketName() string { return "minecraft:update_enabled_features" }

func (p *UpdateEnabledFeatures) ReadFrom(r proto.Reader) error {
	var err error
	p.Features, err = composite.ReadPrefixedArray(r, proto.ReadIdentifier)

	return err
}

func (p *UpdateEnabledFeatures) WriteTo(w proto.Writer) error {
	return composite.WritePrefixedArray(w, p.Features, proto.WriteIdentifier)
}

// UpdateTags pushes the block/item/entity/fluid tag tables for each
// registry they classify.
type UpdateTags struct {
	Registries []Tags
}

func (p *UpdateTags) PacketName() string { return "minecraft:update_tags" }

func (p *UpdateTags) ReadFrom(r proto.Reader) error {
	var err error
	p.Registries, err = composite.ReadPrefixedArray(r, readTags)

	return err
}

func (p *UpdateTags) WriteTo(w proto.Writer) error {
	return composite.WritePrefixedArray(w, p.Registries, writeTags)
}

func init() {
	register(stateConfiguration, serverbound, "minecraft:client_information", func() Packet { return &ClientInformationConfig{} })
	register(stateConfiguration, serverbound, "minecraft:custom_payload", func() Packet { return &CustomPayloadConfig{} })
	register(stateConfiguration, serverbound, "minecraft:finish_configuration", func() Packet { return &FinishConfiguration{} })
	register(stateConfiguration, serverbound, "minecraft:keep_alive", func() Packet { return &KeepAliveConfig{} })
	register(stateConfiguration, serverbound, "minecraft:pong", func() Packet { return &PongConfig{} })
	register(stateConfiguration, serverbound, "minecraft:resource_pack", func() Packet { return &ResourcePackResponse{} })
	register(stateConfiguration, serverbound, "minecraft:select_known_packs", func() Packet { return &SelectKnownPacks{} })

	register(stateConfiguration, clientbound, "minecraft:cookie_request", func() Packet { return &CookieRequestConfig{} })
	register(stateConfiguration, clientbound, "minecraft:custom_payload", func() Packet { return &CustomPayloadConfig{} })
	register(stateConfiguration, clientbound, "minecraft:disconnect", func() Packet { return &DisconnectConfig{} })
	register(stateConfiguration, clientbound, "minecraft:finish_configuration", func() Packet { return &FinishConfiguration{} })
	register(stateConfiguration, clientbound, "minecraft:keep_alive", func() Packet { return &KeepAliveConfig{} })
	register(stateConfiguration, clientbound, "minecraft:ping", func() Packet { return &PingConfig{} })
	register(stateConfiguration, clientbound, "minecraft:registry_data", func() Packet { return &RegistryData{} })
	register(stateConfiguration, clientbound, "minecraft:resource_pack_pop", func() Packet { return &ResourcePackPop{} })
	register(stateConfiguration, clientbound, "minecraft:resource_pack_push", func() Packet { return &ResourcePackPush{} })
	register(stateConfiguration, clientbound, "minecraft:update_enabled_features", func() Packet { return &UpdateEnabledFeatures{} })
	register(stateConfiguration, clientbound, "minecraft:update_tags", func() Packet { return &UpdateTags{} })
	register(stateConfiguration, clientbound, "minecraft:select_known_packs", func() Packet { return &SelectKnownPacks{} })
}
