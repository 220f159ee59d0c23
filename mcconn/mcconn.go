// Package mcconn glues the frame codec (package framing) to the packet
// catalog (package packets), tracking a connection's current protocol
// state the way a real client/server connection must: each call to
// ReadPacket/WritePacket dispatches against whichever state was last set
// by SetState, per spec.md §4.F/§7.
package mcconn

import (
	"bytes"
	"io"

	"github.com/go-mcproto/mcproto/framing"
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/packets"
	"github.com/go-mcproto/mcproto/registry"
	"github.com/go-mcproto/mcproto/varint"
)

// Connection is a single peer's view of a Minecraft wire connection: a
// framing.Encoder/Decoder pair plus the protocol state that determines how
// the next frame's packet id is resolved.
type Connection struct {
	enc *framing.Encoder
	dec *framing.Decoder

	state registry.State
}

// New wraps rw's write and read halves with fresh, uncompressed,
// unencrypted framing, starting in the Handshake state.
func New(w io.Writer, r io.Reader) *Connection {
	return &Connection{
		enc:   framing.NewEncoder(w),
		dec:   framing.NewDecoder(r),
		state: registry.StateHandshake,
	}
}

// SetState switches which catalog state subsequent ReadPacket/WritePacket
// calls dispatch against, following the server's handshake/login/
// configuration/play transitions.
func (c *Connection) SetState(state registry.State) {
	c.state = state
}

// State returns the connection's current protocol state.
func (c *Connection) State() registry.State {
	return c.state
}

// SetCompression enables zlib framing on both halves of the connection,
// per spec.md §4.H.
func (c *Connection) SetCompression(threshold, level int) {
	c.enc.SetCompression(threshold, level)
	c.dec.SetCompression(threshold, level)
}

// SetEncryption enables AES-128 CFB8 encryption on both halves of the
// connection. It may only be called once, per spec.md §4.I.
func (c *Connection) SetEncryption(key []byte) error {
	if err := c.enc.SetEncryption(key); err != nil {
		return err
	}

	return c.dec.SetEncryption(key)
}

// ReadPacket reads one frame and decodes it as a dir-bound packet in the
// connection's current state.
func (c *Connection) ReadPacket(dir registry.Direction) (packets.Packet, error) {
	raw, err := c.dec.ReadPacket()
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := varint.WriteInt(&body, raw.ID); err != nil {
		return nil, mcerr.Programming("mcconn: re-encoding packet id: %v", err)
	}

	body.Write(raw.Payload)

	return packets.ReadPacket(c.state, dir, &body)
}

// WritePacket encodes p as a dir-bound packet in the connection's current
// state and writes its frame.
func (c *Connection) WritePacket(dir registry.Direction, p packets.Packet) error {
	var body bytes.Buffer
	if err := packets.WritePacket(c.state, dir, &body, p); err != nil {
		return err
	}

	id, err := varint.ReadInt(&body)
	if err != nil {
		return mcerr.Programming("mcconn: decoding written packet id: %v", err)
	}

	return c.enc.WritePacket(framing.RawPacket{ID: id, Payload: body.Bytes()})
}
