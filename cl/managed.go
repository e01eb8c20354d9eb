package cl

import (
	"sync"
	"sync/atomic"
)

// ManagedStatic is a lazily-constructed, thread-safe process-global
// singleton, modeled on the double-checked-publication bootstrap the CORE
// spec requires for its registry tables. First-touch construction is safe
// under concurrent callers; after that, registries are expected to be
// mutated by a single actor per the CORE's single-threaded-after-bootstrap
// model.
type ManagedStatic[T any] struct {
	ptr     atomic.Pointer[T]
	mu      sync.Mutex
	creator func() T
}

// ManagedStaticOf builds a ManagedStatic whose value is produced by creator
// on first access.
func ManagedStaticOf[T any](creator func() T) *ManagedStatic[T] {
	return &ManagedStatic[T]{creator: creator}
}

// Get returns the singleton, constructing it on first call.
func (m *ManagedStatic[T]) Get() T {
	if p := m.ptr.Load(); p != nil {
		return *p
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p := m.ptr.Load(); p != nil {
		return *p
	}
	v := m.creator()
	m.ptr.Store(&v)
	return v
}

// Reset destroys the current instance; the next Get rebuilds it from
// scratch. ResetCommandLineParser does not call it: it clears the TopLevel
// and All registries in place instead.
func (m *ManagedStatic[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ptr.Store(nil)
}

// IsConstructed reports whether the singleton has been built yet.
func (m *ManagedStatic[T]) IsConstructed() bool {
	return m.ptr.Load() != nil
}
