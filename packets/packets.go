// Package packets implements the packet catalog and dispatch of spec.md
// §4.E/§4.F: one Go struct per (state, direction, resource name), each
// satisfying proto.Codec, registered against the bundled registry so
// ReadPacket/WritePacket can translate between wire ids and typed values.
package packets

import (
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/proto"
	"github.com/go-mcproto/mcproto/registry"
)

// Packet is satisfied by every catalog packet shape. PacketName returns the
// namespaced resource name ("minecraft:intention") used to resolve the
// wire id for the packet's (state, direction).
type Packet interface {
	proto.Codec
	PacketName() string
}

type factory func() Packet

type catalogEntry struct {
	name string
	new  factory
}

// Local short aliases for the registry's state/direction constants, used
// throughout this package's per-state files to keep registration terse.
const (
	stateHandshake     = registry.StateHandshake
	stateStatus        = registry.StateStatus
	stateLogin         = registry.StateLogin
	stateConfiguration = registry.StateConfiguration
	statePlay          = registry.StatePlay

	serverbound = registry.Serverbound
	clientbound = registry.Clientbound
)

var catalog = map[registry.State]map[registry.Direction]map[int32]catalogEntry{}

// register binds a packet type into the dispatch table. It resolves the
// protocol id from the bundled registry at init time and panics if the
// name is absent — a missing catalog/registry entry is a build-time bug,
// not a runtime condition a caller can recover from.
func register(state registry.State, dir registry.Direction, name string, new factory) {
	id, ok := registry.ProtocolID(state, dir, name)
	if !ok {
		panic("packets: no registry entry for " + string(state) + "/" + string(dir) + "/" + name)
	}

	byState, ok := catalog[state]
	if !ok {
		byState = map[registry.Direction]map[int32]catalogEntry{}
		catalog[state] = byState
	}

	byDir, ok := byState[dir]
	if !ok {
		byDir = map[int32]catalogEntry{}
		byState[dir] = byDir
	}

	byDir[id] = catalogEntry{name: name, new: new}
}

// ReadPacket reads a VarInt packet id from r, looks it up against
// (state, dir) in the compile-time dispatch table, and decodes the bound
// packet type, per spec.md §4.F.
func ReadPacket(state registry.State, dir registry.Direction, r proto.Reader) (Packet, error) {
	id, err := proto.ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	byDir, ok := catalog[state]
	if !ok {
		return nil, mcerr.Decode("invalid packet state: %s", state)
	}

	entries, ok := byDir[dir]
	if !ok {
		return nil, mcerr.Decode("invalid packet state: %s/%s", state, dir)
	}

	e, ok := entries[id]
	if !ok {
		return nil, mcerr.Decode("invalid packet id: %d", id)
	}

	p := e.new()
	if err := p.ReadFrom(r); err != nil {
		return nil, err
	}

	return p, nil
}

// WritePacket writes p's VarInt protocol id (resolved for state/dir) then
// its payload, per spec.md §4.F.
func WritePacket(state registry.State, dir registry.Direction, w proto.Writer, p Packet) error {
	id, ok := registry.ProtocolID(state, dir, p.PacketName())
	if !ok {
		return mcerr.Programming("packets: no registry entry for %s/%s/%s", state, dir, p.PacketName())
	}

	if err := proto.WriteVarInt(w, id); err != nil {
		return err
	}

	return p.WriteTo(w)
}
