// Package flatten converts decoded configuration documents into flat
// string-to-string maps with dot-separated keys.
package flatten

import (
	"fmt"
	"strconv"
)

// Strings flattens a decoded document (as produced by the yaml, json, or toml
// decoders) into dot-separated keys with stringified scalar values.
// Non-scalar leaves such as arrays are rejected: a flat string store has no
// faithful representation for them.
func Strings(doc map[string]any) (map[string]string, error) {
	out := make(map[string]string)
	if err := walk("", doc, out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(prefix string, value any, out map[string]string) error {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			if err := walk(join(prefix, key), val, out); err != nil {
				return err
			}
		}
	case map[any]any:
		// Older yaml decoders produce any-keyed maps.
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				return fmt.Errorf("non-string key %v under %q", key, prefix)
			}
			if err := walk(join(prefix, keyStr), val, out); err != nil {
				return err
			}
		}
	default:
		if prefix == "" {
			return nil
		}
		s, ok := stringify(value)
		if !ok {
			return fmt.Errorf("unsupported value type %T for key %q", value, prefix)
		}
		out[prefix] = s
	}
	return nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// stringify renders a scalar leaf as a string. Nulls render as empty strings
// so an explicit "key:" line still marks the key present.
func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case nil:
		return "", true
	default:
		return "", false
	}
}
