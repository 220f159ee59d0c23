// Package registry loads the bundled packets.json document (spec.md §6)
// and resolves (state, direction, namespaced name) ↔ protocol id lookups
// used by packet dispatch and by Id-or-Inline<T> registry-backed fields.
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// State is a protocol connection phase.
type State string

const (
	StateHandshake     State = "handshake"
	StateStatus        State = "status"
	StateLogin         State = "login"
	StateConfiguration State = "configuration"
	StatePlay          State = "play"
)

// Direction is which peer sends a packet.
type Direction string

const (
	Serverbound Direction = "serverbound"
	Clientbound Direction = "clientbound"
)

type entry struct {
	ProtocolID int32 `json:"protocol_id"`
}

//go:embed packets.json
var packetsJSON []byte

type doc map[string]map[string]map[string]entry

var (
	loadOnce sync.Once
	data     doc

	cacheMu sync.Mutex
	idCache map[uint64]int32
	nameIdx map[uint64]string
)

func load() {
	loadOnce.Do(func() {
		if err := json.Unmarshal(packetsJSON, &data); err != nil {
			panic(fmt.Sprintf("registry: embedded packets.json is invalid: %v", err))
		}

		idCache = make(map[uint64]int32)
		nameIdx = make(map[uint64]string)
	})
}

func key(state State, dir Direction, name string) string {
	return string(state) + "/" + string(dir) + "/" + name
}

func reverseKey(state State, dir Direction, id int32) string {
	return fmt.Sprintf("%s/%s/#%d", state, dir, id)
}

// cacheKey hashes a composite lookup key to the xxhash64 the id/name
// caches are keyed by, so repeated dispatch on the same packet shape does
// not repeatedly compare strings through the JSON-derived nested maps.
func cacheKey(s string) uint64 {
	return xxhash.Sum64String(s)
}

// ProtocolID resolves a namespaced packet/registry-entry name to its
// protocol id within the given state and direction. The lookup result is
// cached by its xxhash-keyed composite key so repeated dispatch on the
// same packet shape does not repeatedly hash/compare strings through the
// JSON-derived nested maps.
func ProtocolID(state State, dir Direction, name string) (int32, bool) {
	load()

	k := cacheKey(key(state, dir, name))

	cacheMu.Lock()
	if id, ok := idCache[k]; ok {
		cacheMu.Unlock()
		return id, true
	}
	cacheMu.Unlock()

	byDir, ok := data[string(state)]
	if !ok {
		return 0, false
	}

	byName, ok := byDir[string(dir)]
	if !ok {
		return 0, false
	}

	e, ok := byName[name]
	if !ok {
		return 0, false
	}

	cacheMu.Lock()
	idCache[k] = e.ProtocolID
	cacheMu.Unlock()

	return e.ProtocolID, true
}

// NameByID resolves a protocol id back to its namespaced name; used for
// diagnostics and for the dispatch table's reverse lookup.
func NameByID(state State, dir Direction, id int32) (string, bool) {
	load()

	k := cacheKey(reverseKey(state, dir, id))

	cacheMu.Lock()
	if name, ok := nameIdx[k]; ok {
		cacheMu.Unlock()
		return name, true
	}
	cacheMu.Unlock()

	byDir, ok := data[string(state)]
	if !ok {
		return "", false
	}

	byName, ok := byDir[string(dir)]
	if !ok {
		return "", false
	}

	for name, e := range byName {
		if e.ProtocolID == id {
			cacheMu.Lock()
			nameIdx[k] = name
			cacheMu.Unlock()

			return name, true
		}
	}

	return "", false
}
