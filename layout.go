// layout.go re-exports types from the internal packages.
// Any changes to those types must be mirrored here.
package kbd

import (
	"github.com/grindlemire/go-kbd/internal/config"
	"github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/element"
	"github.com/grindlemire/go-kbd/internal/layout"
	"github.com/grindlemire/go-kbd/internal/model"
	"github.com/grindlemire/go-kbd/internal/solver"
	"github.com/grindlemire/go-kbd/internal/theme"
)

// Rect is a frame in points.
type Rect = layout.Rect

// Size is a width and height in points.
type Size = layout.Size

// Edges are insets on four sides.
type Edges = layout.Edges

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// Keyboard is the static description of a keyboard.
type Keyboard = model.Keyboard

// Row is an ordered sequence of keys sharing a spacing role.
type Row = model.Row

// Key describes a single key.
type Key = model.Key

// KeyType selects a key's width policy and colors.
type KeyType = model.KeyType

const (
	Character        = model.Character
	SpecialCharacter = model.SpecialCharacter
	Period           = model.Period
	Space            = model.Space
	Shift            = model.Shift
	Backspace        = model.Backspace
	ModeChange       = model.ModeChange
	Return           = model.Return
	KeyboardChange   = model.KeyboardChange
)

// RowRole selects how a row's key gaps are distributed.
type RowRole = model.RowRole

const (
	RoleDefault       = model.RoleDefault
	RoleSideButton    = model.RoleSideButton
	RoleEquallySpaced = model.RoleEquallySpaced
)

// Address identifies a layout element.
type Address = element.Address

// Constraint is a linear relation between two element attributes.
type Constraint = constraint.Constraint

// Priority orders constraints that cannot all hold.
type Priority = constraint.Priority

// Metrics are the numeric layout parameters.
type Metrics = config.Metrics

// Palette holds the nine key colors.
type Palette = theme.Palette

// Color is an sRGB color with alpha.
type Color = theme.Color

// KeyColors are the colors one key is drawn with.
type KeyColors = theme.KeyColors

// Problem and Solution are what a Solver consumes and produces.
type (
	Problem  = solver.Problem
	Solution = solver.Solution
)

// NewKeyboard creates a keyboard from rows.
func NewKeyboard(name string, rows ...Row) *Keyboard {
	return model.New(name, rows...)
}

// NewRow creates a row with the given role.
func NewRow(role RowRole, keys ...Key) Row {
	return model.NewRow(role, keys...)
}

// CharRow creates a default row of character keys.
func CharRow(labels ...string) Row {
	return model.CharRow(labels...)
}

// NewKey creates a key with no output text.
func NewKey(typ KeyType, label string) Key {
	return model.NewKey(typ, label)
}

// CharKey creates a character key that inserts its lower-cased label.
func CharKey(label string) Key {
	return model.CharKey(label)
}

// Latin returns the built-in QWERTY keyboard.
func Latin() *Keyboard {
	return model.Latin()
}

// Cyrillic returns the built-in ЙЦУКЕН keyboard.
func Cyrillic() *Keyboard {
	return model.Cyrillic()
}

// Element addresses.
var (
	Superview    = element.Container
	LeftSpacer   = element.LeftSpacer
	RightSpacer  = element.RightSpacer
	TopSpacer    = element.TopSpacer
	BottomSpacer = element.BottomSpacer
	RowGapAt     = element.RowGap
	KeyGapAt     = element.KeyGap
	KeyAt        = element.Key
)
