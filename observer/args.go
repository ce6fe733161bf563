// SPDX-License-Identifier: MIT

package observer

// Args is an open key/value bag passed through from the sweep driver.
// No key is required and DMRGObserver reads none of them; the type exists
// so drivers and custom observers can agree on extra parameters without
// changing the Observer signature. A nil Args is valid and empty.
type Args map[string]any

// Float returns the float64 stored under key, or def when absent or of
// another type. Integer values are converted.
func (a Args) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	default:
		return def
	}
}

// Int returns the int stored under key, or def when absent or of another type.
func (a Args) Int(key string, def int) int {
	if v, ok := a[key].(int); ok {
		return v
	}

	return def
}

// Bool returns the bool stored under key, or def when absent or of another type.
func (a Args) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}

	return def
}

// String returns the string stored under key, or def when absent or of another type.
func (a Args) String(key string, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}

	return def
}

// Has reports whether key is present.
func (a Args) Has(key string) bool {
	_, ok := a[key]

	return ok
}
