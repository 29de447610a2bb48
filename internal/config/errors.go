package config

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for files whose extension is not one of
// .yaml, .yml, .toml or .json.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// UnknownKeyError is returned when a file names a key outside its
// section's key set.
type UnknownKeyError struct {
	Section string
	Key     string
}

func (e *UnknownKeyError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("unknown key %q", e.Key)
	}
	return fmt.Sprintf("unknown key %q in %s", e.Key, e.Section)
}
