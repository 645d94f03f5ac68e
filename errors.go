package typedenv

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Env operations, always wrapped in a LookupError.
// All are synchronous and final: they propagate to the caller and are never
// retried or swallowed. Match them with errors.Is.
var (
	// ErrNotFound reports a key absent from the store with no fallback configured.
	ErrNotFound = errors.New("key not found")

	// ErrInvalidFallback reports a configured fallback that yielded nothing for
	// the key under the current mode.
	ErrInvalidFallback = errors.New("fallback yielded no value")

	// ErrTypeCheck reports an eager write whose value is not a string.
	ErrTypeCheck = errors.New("value must be a string")

	// ErrInvalidAccessMode reports an operation that belongs to the other
	// access discipline, e.g. Set on a lazy handle.
	ErrInvalidAccessMode = errors.New("operation not allowed in this access mode")
)

// LookupError carries the key and mode alongside the originating sentinel.
type LookupError struct {
	Key  string
	Mode Mode
	Err  error
}

func (e *LookupError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Mode == "" {
		return fmt.Sprintf("typedenv: key %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("typedenv: key %q mode=%s: %v", e.Key, e.Mode, e.Err)
}

func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
