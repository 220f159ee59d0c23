package packets

import (
	"io"

	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/nbt"
	"github.com/go-mcproto/mcproto/proto"
	"github.com/go-mcproto/mcproto/slot"
)

// readRemainingBytes reads r to EOF, matching original_source's Vec<u8>
// codec: plugin-message/custom-query payloads carry no length prefix of
// their own and consume the rest of the already-framed packet body.
func readRemainingBytes(r proto.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, mcerr.Transport(err, "read remaining bytes")
	}

	return data, nil
}

func writeRemainingBytes(w proto.Writer, data []byte) error {
	return proto.WriteFixed(w, data)
}

// Intent is the Handshake packet's next-state selector: a u8-discriminated
// tagged sum starting at 1 (spec.md §8's dispatch testable property: value
// 2 decodes to Login).
type Intent int32

const (
	IntentStatus Intent = iota
	IntentLogin
	IntentTransfer
)

// NextState maps an Intent to the connection state it transitions into.
func (i Intent) NextState() string {
	switch i {
	case IntentStatus:
		return "status"
	case IntentLogin:
		return "login"
	case IntentTransfer:
		return "configuration"
	default:
		return ""
	}
}

func readIntent(r proto.Reader) (Intent, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscU8, 1, 3)
	return Intent(idx), err
}

func writeIntent(w proto.Writer, i Intent) error {
	return composite.WriteTagIndex(w, composite.DiscU8, 1, int(i))
}

// ProfileProperty is one signed profile property (e.g. "textures") carried
// by a GameProfile or AddPlayer action.
type ProfileProperty struct {
	Name      string
	Value     string
	Signature *string
}

func readProfileProperty(r proto.Reader) (ProfileProperty, error) {
	var p ProfileProperty

	var err error

	if p.Name, err = proto.ReadString(r); err != nil {
		return ProfileProperty{}, err
	}

	if p.Value, err = proto.ReadString(r); err != nil {
		return ProfileProperty{}, err
	}

	p.Signature, err = composite.ReadOption(r, proto.ReadString)

	return p, err
}

func writeProfileProperty(w proto.Writer, p ProfileProperty) error {
	if err := proto.WriteString(w, p.Name); err != nil {
		return err
	}

	if err := proto.WriteString(w, p.Value); err != nil {
		return err
	}

	return composite.WriteOption(w, p.Signature, proto.WriteString)
}

// GameProfile is a resolved player identity: uuid, username, and signed properties.
type GameProfile struct {
	UUID       proto.UUID
	Username   string
	Properties []ProfileProperty
}

func readGameProfile(r proto.Reader) (GameProfile, error) {
	var g GameProfile

	var err error

	if g.UUID, err = proto.ReadUUID(r); err != nil {
		return GameProfile{}, err
	}

	if g.Username, err = proto.ReadString(r); err != nil {
		return GameProfile{}, err
	}

	g.Properties, err = composite.ReadPrefixedArray(r, readProfileProperty)

	return g, err
}

func writeGameProfile(w proto.Writer, g GameProfile) error {
	if err := proto.WriteUUID(w, g.UUID); err != nil {
		return err
	}

	if err := proto.WriteString(w, g.Username); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, g.Properties, writeProfileProperty)
}

// RegistryEntry is one (identifier, optional NBT payload) entry of a
// RegistryData packet.
type RegistryEntry struct {
	EntryID string
	Data    *nbt.Tag
}

func readRegistryEntry(r proto.Reader) (RegistryEntry, error) {
	var e RegistryEntry

	var err error

	if e.EntryID, err = proto.ReadIdentifier(r); err != nil {
		return RegistryEntry{}, err
	}

	e.Data, err = composite.ReadOption(r, nbt.ReadTag)

	return e, err
}

func writeRegistryEntry(w proto.Writer, e RegistryEntry) error {
	if err := proto.WriteIdentifier(w, e.EntryID); err != nil {
		return err
	}

	return composite.WriteOption(w, e.Data, nbt.WriteTag)
}

// Tag is a named list of registry ids bound together under a tag name.
type Tag struct {
	TagName string
	Entries []int32
}

func readTag(r proto.Reader) (Tag, error) {
	var t Tag

	var err error

	if t.TagName, err = proto.ReadIdentifier(r); err != nil {
		return Tag{}, err
	}

	t.Entries, err = composite.ReadPrefixedArray(r, proto.ReadVarInt)

	return t, err
}

func writeTag(w proto.Writer, t Tag) error {
	if err := proto.WriteIdentifier(w, t.TagName); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, t.Entries, proto.WriteVarInt)
}

// Tags binds a set of Tag entries to the registry they classify.
type Tags struct {
	Registry string
	TagList  []Tag
}

func readTags(r proto.Reader) (Tags, error) {
	var t Tags

	var err error

	if t.Registry, err = proto.ReadIdentifier(r); err != nil {
		return Tags{}, err
	}

	t.TagList, err = composite.ReadPrefixedArray(r, readTag)

	return t, err
}

func writeTags(w proto.Writer, t Tags) error {
	if err := proto.WriteIdentifier(w, t.Registry); err != nil {
		return err
	}

	return composite.WritePrefixedArray(w, t.TagList, writeTag)
}

// KnownPack identifies one data pack version a peer already has cached.
type KnownPack struct {
	Namespace string
	ID        string
	Version   string
}

func readKnownPack(r proto.Reader) (KnownPack, error) {
	var k KnownPack

	var err error

	if k.Namespace, err = proto.ReadString(r); err != nil {
		return KnownPack{}, err
	}

	if k.ID, err = proto.ReadString(r); err != nil {
		return KnownPack{}, err
	}

	k.Version, err = proto.ReadString(r)

	return k, err
}

func writeKnownPack(w proto.Writer, k KnownPack) error {
	if err := proto.WriteString(w, k.Namespace); err != nil {
		return err
	}

	if err := proto.WriteString(w, k.ID); err != nil {
		return err
	}

	return proto.WriteString(w, k.Version)
}

// ChatMode is the client's chat visibility preference.
type ChatMode int32

const (
	ChatModeEnabled ChatMode = iota
	ChatModeCommandsOnly
	ChatModeHidden
)

func readChatMode(r proto.Reader) (ChatMode, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 3)
	return ChatMode(idx), err
}

func writeChatMode(w proto.Writer, m ChatMode) error {
	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(m))
}

// SkinParts is the bitfield of visible skin layers a client displays.
type SkinParts = composite.BitfieldU8

// MainHand selects which hand a client considers primary.
type MainHand int32

const (
	MainHandLeft MainHand = iota
	MainHandRight
)

func readMainHand(r proto.Reader) (MainHand, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 2)
	return MainHand(idx), err
}

func writeMainHand(w proto.Writer, m MainHand) error {
	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(m))
}

// ParticleStatus is the client's particle-density preference.
type ParticleStatus int32

const (
	ParticleStatusAll ParticleStatus = iota
	ParticleStatusDecreased
	ParticleStatusMinimal
)

func readParticleStatus(r proto.Reader) (ParticleStatus, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 3)
	return ParticleStatus(idx), err
}

func writeParticleStatus(w proto.Writer, p ParticleStatus) error {
	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(p))
}

// ResourcePackResult reports the client's handling of a pushed resource pack.
type ResourcePackResult int32

const (
	ResourcePackSuccessfullyDownloaded ResourcePackResult = iota
	ResourcePackDeclined
	ResourcePackFailedToDownload
	ResourcePackAccepted
	ResourcePackDownloaded
	ResourcePackInvalidURL
	ResourcePackFailedToReload
	ResourcePackDiscarded
)

func readResourcePackResult(r proto.Reader) (ResourcePackResult, error) {
	idx, err := composite.ReadTagIndex(r, composite.DiscVarInt, 0, 8)
	return ResourcePackResult(idx), err
}

func writeResourcePackResult(w proto.Writer, v ResourcePackResult) error {
	return composite.WriteTagIndex(w, composite.DiscVarInt, 0, int(v))
}

// textComponentOrEmpty reads/writes a TextComponent that is always present
// (most chat-bearing fields; Option<TextComponent> fields use
// composite.ReadOption/WriteOption directly against nbt.ReadTag/WriteTag).
func readTextComponent(r proto.Reader) (slot.TextComponent, error) { return nbt.ReadTag(r) }
func writeTextComponent(w proto.Writer, t slot.TextComponent) error { return nbt.WriteTag(w, t) }

func readOptTextComponent(r proto.Reader) (*slot.TextComponent, error) {
	return composite.ReadOption(r, readTextComponent)
}

func writeOptTextComponent(w proto.Writer, t *slot.TextComponent) error {
	return composite.WriteOption(w, t, writeTextComponent)
}

func readOptUUID(r proto.Reader) (*proto.UUID, error) {
	return composite.ReadOption(r, proto.ReadUUID)
}

func writeOptUUID(w proto.Writer, u *proto.UUID) error {
	return composite.WriteOption(w, u, proto.WriteUUID)
}

func readByteBlob(r proto.Reader) ([]byte, error) {
	return composite.ReadLenPrefixedBytes(r, composite.LengthVarInt)
}

func writeByteBlob(w proto.Writer, data []byte) error {
	return composite.WriteLenPrefixedBytes(w, data, composite.LengthVarInt)
}
