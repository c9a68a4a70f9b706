package pancake

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Register builds a record serializer for T with cfg and caches it as the
// per-type instance returned by Record.
func Register[T any](cfg RecordConfig) (*RecordSerializer[T], error) {
	rs, err := NewRecordSerializer[T](cfg)
	if err != nil {
		return nil, err
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeFor[T]()] = rs
	return rs, nil
}

// Record returns the cached serializer for T, building one with an empty
// configuration on first use.
func Record[T any]() (*RecordSerializer[T], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached.(*RecordSerializer[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached.(*RecordSerializer[T]), nil
	}

	rs, err := NewRecordSerializer[T](RecordConfig{})
	if err != nil {
		return nil, err
	}

	registry[typ] = rs
	return rs, nil
}

// Reset clears the record serializer registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
}
