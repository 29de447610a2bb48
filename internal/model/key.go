package model

import (
	"fmt"
	"strings"
)

// KeyType is the semantic type of a key. It selects the key's width policy
// and its colors.
type KeyType uint8

const (
	Character        KeyType = iota // Letter keys; width follows the canonical key
	SpecialCharacter                // Punctuation keys with a fixed special width
	Period                          // The period key
	Space                           // The space bar
	Shift                           // Shift, scaled from the canonical key
	Backspace                       // Backspace, scaled from the canonical key
	ModeChange                      // Switches between letters and symbols ("123")
	Return                          // Return / done
	KeyboardChange                  // Switches to the next input method (globe)
)

var keyTypeNames = [...]string{
	Character:        "character",
	SpecialCharacter: "special-character",
	Period:           "period",
	Space:            "space",
	Shift:            "shift",
	Backspace:        "backspace",
	ModeChange:       "mode-change",
	Return:           "return",
	KeyboardChange:   "keyboard-change",
}

// String returns the configuration name of the key type.
func (t KeyType) String() string {
	if int(t) < len(keyTypeNames) {
		return keyTypeNames[t]
	}
	return fmt.Sprintf("KeyType(%d)", uint8(t))
}

// Valid reports whether t is one of the declared key types.
func (t KeyType) Valid() bool {
	return int(t) < len(keyTypeNames)
}

// ParseKeyType resolves a configuration name such as "mode-change".
func ParseKeyType(name string) (KeyType, error) {
	for i, n := range keyTypeNames {
		if n == name {
			return KeyType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKeyType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t KeyType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeyType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *KeyType) UnmarshalText(text []byte) error {
	parsed, err := ParseKeyType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Key describes a single key. Keys are values and are never mutated after
// construction.
type Key struct {
	Type  KeyType `json:"type" yaml:"type" toml:"type"`
	Label string  `json:"label" yaml:"label" toml:"label"`

	// Output is the text inserted when the key is pressed.
	// Empty means the key has no text output (shift, backspace, ...).
	Output string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
}

// NewKey creates a key with no output text.
func NewKey(typ KeyType, label string) Key {
	return Key{Type: typ, Label: label}
}

// CharKey creates a Character key that inserts its label in lower case.
func CharKey(label string) Key {
	return Key{Type: Character, Label: label, Output: strings.ToLower(label)}
}

// WithOutput returns a copy of k that inserts output when pressed.
func (k Key) WithOutput(output string) Key {
	k.Output = output
	return k
}

// HasOutput reports whether the key inserts text.
func (k Key) HasOutput() bool {
	return k.Output != ""
}

// FixedWidth reports whether the key's width is a fixed metric rather than
// a ratio of the canonical key.
func (k Key) FixedWidth() bool {
	switch k.Type {
	case SpecialCharacter, Period, Space, ModeChange, Return, KeyboardChange:
		return true
	default:
		return false
	}
}
