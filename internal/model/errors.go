package model

import "errors"

var (
	// ErrEmptyKeyboard is returned by Validate when a keyboard has no rows.
	ErrEmptyKeyboard = errors.New("keyboard has no rows")
	// ErrEmptyRow is returned by Validate when a row has no keys.
	ErrEmptyRow = errors.New("row has no keys")
	// ErrUnknownKeyType is returned when a key type name or value is not recognized.
	ErrUnknownKeyType = errors.New("unknown key type")
	// ErrUnknownRowRole is returned when a row role name or value is not recognized.
	ErrUnknownRowRole = errors.New("unknown row role")
)

// ErrShortSideButtonRow is returned by Validate when a side-button row has
// fewer than two keys and so cannot hold a key at each edge.
var ErrShortSideButtonRow = errors.New("side-button row needs at least two keys")
