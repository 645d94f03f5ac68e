package typedenv

import (
	"fmt"
	"log/slog"
)

// Env is the access handle over a Store. It is a stateless dispatcher: it
// holds configuration fixed at construction and operates on the live store
// reference, so a single handle is safe to share and reuse indefinitely.
//
// A handle follows one of two access disciplines, selected at construction:
// eager (Get/Set) or lazy (Var). The discipline cannot change afterwards.
type Env struct {
	store    Store
	fallback Fallback
	diag     *diagnostics
	modeKey  string
	lazy     bool
}

// Option configures an Env handle.
type Option func(*Env)

// WithStore sets the backing store. Defaults to the process environment.
// The store is used by reference and never copied.
func WithStore(store Store) Option {
	return func(e *Env) {
		e.store = store
	}
}

// WithFallback configures the fallback applied when a key is absent.
func WithFallback(fallback Fallback) Option {
	return func(e *Env) {
		e.fallback = fallback
	}
}

// WithLog configures the diagnostics policy. Defaults to no diagnostics.
func WithLog(policy LogPolicy) Option {
	return func(e *Env) {
		e.diag.policy = policy
	}
}

// WithLogger sets the sink diagnostics warn to. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Env) {
		e.diag.logger = logger
	}
}

// WithModeKey overrides the store key holding the current mode.
// Defaults to DefaultModeKey.
func WithModeKey(key string) Option {
	return func(e *Env) {
		e.modeKey = key
	}
}

// Lazy selects the lazy access discipline: reads and writes go through
// accessors returned by Var, and Get/Set are rejected.
func Lazy() Option {
	return func(e *Env) {
		e.lazy = true
	}
}

// New creates an access handle over the configured store.
func New(opts ...Option) *Env {
	e := &Env{
		store:   Process(),
		diag:    &diagnostics{},
		modeKey: DefaultModeKey,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.diag.store = e.store
	e.diag.modeKey = e.modeKey
	return e
}

// Get reads key eagerly, returning the stored value or a fallback substitute.
// It fails with ErrNotFound or ErrInvalidFallback (wrapped in a LookupError)
// when neither yields a value, and with ErrInvalidAccessMode on a lazy handle.
func (e *Env) Get(key string) (string, error) {
	if e.lazy {
		return "", &LookupError{Key: key, Mode: e.currentMode(), Err: ErrInvalidAccessMode}
	}
	return e.resolve(key)
}

// MustGet is like Get but panics on error.
func (e *Env) MustGet(key string) string {
	v, err := e.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Set writes a string value under key. The value is checked before the store
// is touched: a non-string fails with ErrTypeCheck and leaves the store
// unchanged. On a lazy handle Set fails with ErrInvalidAccessMode; use the
// accessor write form instead.
//
// Set accepts any because stores are commonly populated from decoded
// configuration data (map[string]any); the check keeps such writes honest.
func (e *Env) Set(key string, value any) error {
	if e.lazy {
		return &LookupError{Key: key, Mode: e.currentMode(), Err: ErrInvalidAccessMode}
	}
	s, ok := value.(string)
	if !ok {
		return &LookupError{Key: key, Mode: e.currentMode(), Err: ErrTypeCheck}
	}
	e.store.Set(key, s)
	return nil
}

// Accessor is a deferred handle to a single key. Called with no arguments it
// resolves the key; called with one value it writes the value to the store
// and resolves the now-updated key in the same call.
type Accessor func(value ...string) (string, error)

// Var returns the lazy accessor for key. Nothing is resolved until the
// accessor is invoked. On an eager handle the returned accessor always fails
// with ErrInvalidAccessMode.
func (e *Env) Var(key string) Accessor {
	if !e.lazy {
		return func(value ...string) (string, error) {
			return "", &LookupError{Key: key, Mode: e.currentMode(), Err: ErrInvalidAccessMode}
		}
	}
	return func(value ...string) (string, error) {
		if len(value) > 1 {
			return "", fmt.Errorf("typedenv: accessor for key %q takes at most one value, got %d", key, len(value))
		}
		if len(value) == 1 {
			e.store.Set(key, value[0])
		}
		return e.resolve(key)
	}
}

// currentMode reads the mode fresh from the store. The store may mutate
// between calls, so the value is never cached.
func (e *Env) currentMode() Mode {
	v, ok := e.store.Lookup(e.modeKey)
	if !ok {
		return ""
	}
	return Mode(v)
}
