package packets

import (
	"github.com/go-mcproto/mcproto/composite"
	"github.com/go-mcproto/mcproto/proto"
)

// LoginStart begins authentication with the client's chosen name and
// offline-mode UUID.
type LoginStart struct {
	Name       string
	PlayerUUID proto.UUID
}

func (p *LoginStart) PacketName() string { return "minecraft:hello" }

func (p *LoginStart) ReadFrom(r proto.Reader) error {
	var err error

	if p.Name, err = proto.ReadString(r); err != nil {
		return err
	}

	p.PlayerUUID, err = proto.ReadUUID(r)

	return err
}

func (p *LoginStart) WriteTo(w proto.Writer) error {
	if err := proto.WriteString(w, p.Name); err != nil {
		return err
	}

	return proto.WriteUUID(w, p.PlayerUUID)
}

// EncryptionResponse carries the client's PKCS#1 v1.5-encrypted shared
// secret and verify token (spec.md §8's end-to-end replay property).
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (p *EncryptionResponse) PacketName() string { return "minecraft:key" }

func (p *EncryptionResponse) ReadFrom(r proto.Reader) error {
	var err error

	if p.SharedSecret, err = composite.ReadLenPrefixedBytes(r, composite.LengthVarInt); err != nil {
		return err
	}

	p.VerifyToken, err = composite.ReadLenPrefixedBytes(r, composite.LengthVarInt)

	return err
}

func (p *EncryptionResponse) WriteTo(w proto.Writer) error {
	if err := composite.WriteLenPrefixedBytes(w, p.SharedSecret, composite.LengthVarInt); err != nil {
		return err
	}

	return composite.WriteLenPrefixedBytes(w, p.VerifyToken, composite.LengthVarInt)
}

// LoginPluginResponse answers a server's custom login-plugin query.
type LoginPluginResponse struct {
	MessageID int32
	Data      []byte
}

func (p *LoginPluginResponse) PacketName() string { return "minecraft:custom_query_answer" }

func (p *LoginPluginResponse) ReadFrom(r proto.Reader) error {
	var err error

	if p.MessageID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	p.Data, err = readRemainingBytes(r)

	return err
}

func (p *LoginPluginResponse) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.MessageID); err != nil {
		return err
	}

	return writeRemainingBytes(w, p.Data)
}

// LoginAcknowledged has no fields: it confirms the transition into Configuration.
type LoginAcknowledged struct{}

func (p *LoginAcknowledged) PacketName() string         { return "minecraft:login_acknowledged" }
func (p *LoginAcknowledged) ReadFrom(r proto.Reader) error { return nil }
func (p *LoginAcknowledged) WriteTo(w proto.Writer) error  { return nil }

// LoginDisconnect carries a JSON-encoded disconnect reason.
type LoginDisconnect struct {
	Reason string
}

func (p *LoginDisconnect) PacketName() string { return "minecraft:login_disconnect" }

func (p *LoginDisconnect) ReadFrom(r proto.Reader) error {
	var err error
	p.Reason, err = proto.ReadString(r)

	return err
}

func (p *LoginDisconnect) WriteTo(w proto.Writer) error {
	return proto.WriteString(w, p.Reason)
}

// EncryptionRequest begins key exchange, per spec.md §8's end-to-end
// replay property.
type EncryptionRequest struct {
	ServerID          string
	PublicKey         []byte
	VerifyToken       []byte
	ShouldAuthenticate bool
}

func (p *EncryptionRequest) PacketName() string { return "minecraft:hello" }

func (p *EncryptionRequest) ReadFrom(r proto.Reader) error {
	var err error

	if p.ServerID, err = proto.ReadString(r); err != nil {
		return err
	}

	if p.PublicKey, err = composite.ReadLenPrefixedBytes(r, composite.LengthVarInt); err != nil {
		return err
	}

	if p.VerifyToken, err = composite.ReadLenPrefixedBytes(r, composite.LengthVarInt); err != nil {
		return err
	}

	p.ShouldAuthenticate, err = proto.ReadBool(r)

	return err
}

func (p *EncryptionRequest) WriteTo(w proto.Writer) error {
	if err := proto.WriteString(w, p.ServerID); err != nil {
		return err
	}

	if err := composite.WriteLenPrefixedBytes(w, p.PublicKey, composite.LengthVarInt); err != nil {
		return err
	}

	if err := composite.WriteLenPrefixedBytes(w, p.VerifyToken, composite.LengthVarInt); err != nil {
		return err
	}

	return proto.WriteBool(w, p.ShouldAuthenticate)
}

// LoginSuccess carries the resolved player profile.
type LoginSuccess struct {
	Profile GameProfile
}

func (p *LoginSuccess) PacketName() string { return "minecraft:login_finished" }

func (p *LoginSuccess) ReadFrom(r proto.Reader) error {
	var err error
	p.Profile, err = readGameProfile(r)

	return err
}

func (p *LoginSuccess) WriteTo(w proto.Writer) error {
	return writeGameProfile(w, p.Profile)
}

// SetCompression informs the client of the compression threshold to adopt
// from this point forward (spec.md §8's end-to-end replay property).
type SetCompression struct {
	Threshold int32
}

func (p *SetCompression) PacketName() string { return "minecraft:login_compression" }

func (p *SetCompression) ReadFrom(r proto.Reader) error {
	var err error
	p.Threshold, err = proto.ReadVarInt(r)

	return err
}

func (p *SetCompression) WriteTo(w proto.Writer) error {
	return proto.WriteVarInt(w, p.Threshold)
}

// LoginPluginRequest is a server-initiated custom login-plugin query.
type LoginPluginRequest struct {
	MessageID int32
	Channel   string
	Data      []byte
}

func (p *LoginPluginRequest) PacketName() string { return "minecraft:custom_query" }

func (p *LoginPluginRequest) ReadFrom(r proto.Reader) error {
	var err error

	if p.MessageID, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.Channel, err = proto.ReadIdentifier(r); err != nil {
		return err
	}

	p.Data, err = readRemainingBytes(r)

	return err
}

func (p *LoginPluginRequest) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.MessageID); err != nil {
		return err
	}

	if err := proto.WriteIdentifier(w, p.Channel); err != nil {
		return err
	}

	return writeRemainingBytes(w, p.Data)
}

func init() {
	register(stateLogin, serverbound, "minecraft:hello", func() Packet { return &LoginStart{} })
	register(stateLogin, serverbound, "minecraft:key", func() Packet { return &EncryptionResponse{} })
	register(stateLogin, serverbound, "minecraft:custom_query_answer", func() Packet { return &LoginPluginResponse{} })
	register(stateLogin, serverbound, "minecraft:login_acknowledged", func() Packet { return &LoginAcknowledged{} })

	register(stateLogin, clientbound, "minecraft:login_disconnect", func() Packet { return &LoginDisconnect{} })
	register(stateLogin, clientbound, "minecraft:hello", func() Packet { return &EncryptionRequest{} })
	register(stateLogin, clientbound, "minecraft:login_finished", func() Packet { return &LoginSuccess{} })
	register(stateLogin, clientbound, "minecraft:login_compression", func() Packet { return &SetCompression{} })
	register(stateLogin, clientbound, "minecraft:custom_query", func() Packet { return &LoginPluginRequest{} })
}
