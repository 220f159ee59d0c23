package packets

import "github.com/go-mcproto/mcproto/proto"

// Handshake is the single Handshake-state packet: the client's intent to
// transition the connection into Status, Login, or Configuration (via
// Transfer), per spec.md §8's dispatch testable property.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	Intent          Intent
}

func (p *Handshake) PacketName() string { return "minecraft:intention" }

func (p *Handshake) ReadFrom(r proto.Reader) error {
	var err error

	if p.ProtocolVersion, err = proto.ReadVarInt(r); err != nil {
		return err
	}

	if p.ServerAddress, err = proto.ReadString(r); err != nil {
		return err
	}

	if p.ServerPort, err = proto.ReadU16(r); err != nil {
		return err
	}

	p.Intent, err = readIntent(r)

	return err
}

func (p *Handshake) WriteTo(w proto.Writer) error {
	if err := proto.WriteVarInt(w, p.ProtocolVersion); err != nil {
		return err
	}

	if err := proto.WriteString(w, p.ServerAddress); err != nil {
		return err
	}

	if err := proto.WriteU16(w, p.ServerPort); err != nil {
		return err
	}

	return writeIntent(w, p.Intent)
}

func init() {
	register(stateHandshake, serverbound, "minecraft:intention", func() Packet { return &Handshake{} })
}
