package typedenv

// Fallback describes how to produce a substitute value for a key that is
// absent from the store. It is a closed set of four shapes: a literal value,
// a per-key table, a resolver function, and a mode-scoped wrapper that maps
// each mode to a nested Fallback. Exactly one shape is active per lookup once
// the mode-scoped layer, if any, is unwrapped.
type Fallback interface {
	// reduce walks the fallback against key under the given mode.
	// It reports whether a value was produced; an exhausted walk is not an
	// error here, the resolver decides how to surface it.
	reduce(key string, mode Mode) (string, bool)
}

type literalFallback string

// Literal returns a Fallback yielding the same value for every missing key.
func Literal(value string) Fallback {
	return literalFallback(value)
}

func (f literalFallback) reduce(key string, mode Mode) (string, bool) {
	return string(f), true
}

type tableFallback map[string]string

// Table returns a per-key Fallback. A missing key present in the table
// resolves to its entry; a key absent from the table yields nothing.
func Table(entries map[string]string) Fallback {
	return tableFallback(entries)
}

func (f tableFallback) reduce(key string, mode Mode) (string, bool) {
	entry, ok := f[key]
	if !ok {
		return "", false
	}
	return literalFallback(entry).reduce(key, mode)
}

type funcFallback func(key string) string

// Func returns a Fallback that resolves a missing key by invoking fn with it.
func Func(fn func(key string) string) Fallback {
	return funcFallback(fn)
}

func (f funcFallback) reduce(key string, mode Mode) (string, bool) {
	if f == nil {
		return "", false
	}
	return f(key), true
}

type modeFallback map[Mode]Fallback

// ByMode returns a mode-scoped Fallback. The entry matching the store's
// current mode is reduced in its place; it may itself be any Fallback shape,
// including nil for "nothing configured in this mode". A missing or
// unrecognized mode yields nothing. Mode scoping is all-or-nothing: when the
// selected entry yields nothing, the walk ends there.
func ByMode(entries map[Mode]Fallback) Fallback {
	return modeFallback(entries)
}

func (f modeFallback) reduce(key string, mode Mode) (string, bool) {
	sub, ok := f[mode]
	if !ok || sub == nil {
		return "", false
	}
	return sub.reduce(key, mode)
}
