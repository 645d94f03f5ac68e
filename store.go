package typedenv

import "os"

// Store is a mutable string-keyed mapping backing an Env handle.
// Implementations must expose the live data: writes through Set are visible
// to every other holder of the same store, and external mutation is visible
// to subsequent lookups. The handle never copies a store.
type Store interface {
	// Lookup returns the value for key and whether it is present.
	// An empty value with present=true is a hit, not a miss.
	Lookup(key string) (string, bool)

	// Set writes value under key, replacing any existing value.
	Set(key, value string)
}

// MapStore adapts a plain map[string]string as a Store. The map is used by
// reference, so mutations made outside the handle are observed immediately.
type MapStore map[string]string

// Lookup implements the Store interface.
func (m MapStore) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements the Store interface.
func (m MapStore) Set(key, value string) {
	m[key] = value
}

type processStore struct {
	prefix string
}

// Process returns a Store backed by the process environment.
// It is the default store when none is configured.
func Process() Store {
	return processStore{}
}

// ProcessWithPrefix returns a process-environment Store that prepends prefix
// to every key, so Lookup("HOST") with prefix "APP_" reads APP_HOST.
func ProcessWithPrefix(prefix string) Store {
	return processStore{prefix: prefix}
}

// Lookup reads a variable from the process environment.
func (p processStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(p.prefix + key)
}

// Set writes a variable to the process environment.
func (p processStore) Set(key, value string) {
	_ = os.Setenv(p.prefix+key, value)
}
