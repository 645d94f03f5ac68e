package typedenv

// resolve implements the lookup precedence chain: store hit, then fallback
// walk, then error. A present key always wins, even with an empty value;
// fallbacks paper over absence, never override what a deployment set.
func (e *Env) resolve(key string) (string, error) {
	if v, ok := e.store.Lookup(key); ok {
		return v, nil
	}

	mode := e.currentMode()

	if e.fallback == nil {
		e.diag.observe(eventNotFound, key, "")
		return "", &LookupError{Key: key, Mode: mode, Err: ErrNotFound}
	}

	if v, ok := e.fallback.reduce(key, mode); ok {
		e.diag.observe(eventFallbackUsed, key, v)
		return v, nil
	}

	e.diag.observe(eventExhausted, key, "")
	return "", &LookupError{Key: key, Mode: mode, Err: ErrInvalidFallback}
}
