// Package store owns the two authoritative collections: brands and
// content pieces. Stores are the single source of truth; every
// mutation snapshots the collection to a Persister keyed by store
// name. Store operations are total: they act or silently no-op, and
// never return errors. Caller-side validation lives in internal/ops.
package store

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store names used as persistence keys.
const (
	BrandStoreName   = "brand-storage"
	ContentStoreName = "content-storage"
)

// Persister is the injected durable key-value capability. Load returns
// the serialized state for a store name, or ok=false when absent.
type Persister interface {
	Load(name string) (state []byte, ok bool, err error)
	Save(name string, state []byte) error
}

// newULID generates a fresh ULID. Uniqueness within the process
// lifetime is all the stores require.
func newULID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Memory is an in-process Persister with no durability. Used by tests
// and as the fallback when no database is available.
type Memory struct {
	states map[string][]byte
}

// NewMemory creates an empty in-memory persister.
func NewMemory() *Memory {
	return &Memory{states: make(map[string][]byte)}
}

// Load implements Persister.
func (m *Memory) Load(name string) ([]byte, bool, error) {
	state, ok := m.states[name]
	return state, ok, nil
}

// Save implements Persister.
func (m *Memory) Save(name string, state []byte) error {
	m.states[name] = append([]byte(nil), state...)
	return nil
}
