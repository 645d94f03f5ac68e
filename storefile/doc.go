// Package storefile loads a typedenv.MapStore from a YAML, JSON, or TOML
// file. Nested documents are flattened to dot-separated keys and scalar
// values are stringified, so the result plugs directly into typedenv.New via
// typedenv.WithStore.
package storefile
