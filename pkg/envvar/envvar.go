// Package envvar applies environment variable overrides onto configuration fields.
//
// Every setter ignores an empty key and an unset or empty variable, leaving
// the destination untouched. Numeric and boolean values that fail to parse
// are also ignored so validation sees the file or default value.
package envvar

import (
	"os"
	"strconv"
)

func lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	v := os.Getenv(key)
	return v, v != ""
}

// String overwrites dst with the value of key.
func String(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

// Int overwrites dst with the integer value of key.
func Int(dst *int, key string) {
	if v, ok := lookup(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Float overwrites dst with the floating point value of key.
func Float(dst *float64, key string) {
	if v, ok := lookup(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

// Bool overwrites dst with the boolean value of key.
func Bool(dst *bool, key string) {
	if v, ok := lookup(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
