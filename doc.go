// Package typedenv provides typed access to flat string-keyed environment stores
// with layered fallbacks and mode-aware diagnostics.
//
// Quick Start:
//
//	env := typedenv.New(
//	    typedenv.WithFallback(typedenv.ByMode(map[typedenv.Mode]typedenv.Fallback{
//	        typedenv.Development: typedenv.Literal("localhost"),
//	        typedenv.Production:  typedenv.Func(func(key string) string { return key + "_unset" }),
//	    })),
//	    typedenv.WithLog(typedenv.LogAlways),
//	)
//
//	host, err := env.Get("DATABASE_HOST")
//
// Values are opaque strings. A key present in the store always wins, even when
// its value is empty; fallbacks apply only to absent keys. The current mode is
// read from the store (GO_ENV by default) on every lookup.
//
// See example_test.go for detailed usage.
package typedenv
