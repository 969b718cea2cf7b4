// Package config converts raw configuration values into the typed values
// returned by driven.ConfigStore implementations.
//
// Each helper takes the (value, found) pair returned by a store's Get, so
// stores implement their typed getters as config.Int(s.Get(key)).
package config

import (
	"strconv"
	"strings"
)

// String returns v when it is a string, otherwise "".
func String(v any, ok bool) string {
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Int converts TOML integers (int64), floats and numeric strings.
// Anything else reads as 0.
func Int(v any, ok bool) int {
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// Bool converts booleans and strings accepted by strconv.ParseBool.
func Bool(v any, ok bool) bool {
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, _ := strconv.ParseBool(strings.TrimSpace(b))
		return parsed
	default:
		return false
	}
}

// StringSlice converts string arrays and comma separated strings.
// Non-string array items are skipped.
func StringSlice(v any, ok bool) []string {
	if !ok {
		return nil
	}
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if items == "" {
			return []string{}
		}
		parts := strings.Split(items, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	default:
		return nil
	}
}
