package model

import "fmt"

// RowRole selects how the layout engine spaces the keys of a row.
type RowRole uint8

const (
	// RoleDefault anchors free, equal outer gaps to the edges and fixes
	// every interior gap to the keyGap metric.
	RoleDefault RowRole = iota
	// RoleSideButton pins the outer gaps to zero so the first and last keys
	// touch the edge spacers. The gaps next to them absorb the slack and
	// the remaining interior gaps use the keyGap metric.
	RoleSideButton
	// RoleEquallySpaced pins the outer gaps to zero and lets every interior
	// gap absorb an equal share of the leftover width.
	RoleEquallySpaced
)

var rowRoleNames = [...]string{
	RoleDefault:       "default",
	RoleSideButton:    "side-button",
	RoleEquallySpaced: "equally-spaced",
}

func (r RowRole) String() string {
	if int(r) < len(rowRoleNames) {
		return rowRoleNames[r]
	}
	return fmt.Sprintf("RowRole(%d)", uint8(r))
}

// Valid reports whether r is one of the declared roles.
func (r RowRole) Valid() bool {
	return int(r) < len(rowRoleNames)
}

// ParseRowRole resolves a configuration name such as "side-button".
func ParseRowRole(name string) (RowRole, error) {
	for i, n := range rowRoleNames {
		if n == name {
			return RowRole(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRowRole, name)
}

// MarshalText implements encoding.TextMarshaler.
func (r RowRole) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRowRole, uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RowRole) UnmarshalText(text []byte) error {
	parsed, err := ParseRowRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Row is an ordered sequence of keys sharing a spacing role.
type Row struct {
	Role RowRole `json:"role" yaml:"role" toml:"role"`
	Keys []Key   `json:"keys" yaml:"keys" toml:"keys"`
}

// NewRow creates a row with the given role.
func NewRow(role RowRole, keys ...Key) Row {
	return Row{Role: role, Keys: keys}
}

// CharRow creates a default row of Character keys, one per label.
func CharRow(labels ...string) Row {
	keys := make([]Key, len(labels))
	for i, l := range labels {
		keys[i] = CharKey(l)
	}
	return Row{Role: RoleDefault, Keys: keys}
}
