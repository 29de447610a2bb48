package model

import "fmt"

// Keyboard is the static description of a keyboard: ordered rows of keys.
//
// Row and column indexes are the only addressing scheme the layout engine
// uses, so a Keyboard must not change while a layout pass is running.
type Keyboard struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Rows []Row  `json:"rows" yaml:"rows" toml:"rows"`
}

// New creates a keyboard from rows.
func New(name string, rows ...Row) *Keyboard {
	return &Keyboard{Name: name, Rows: rows}
}

// RowCount returns the number of rows.
func (k *Keyboard) RowCount() int {
	return len(k.Rows)
}

// ColumnCount returns the number of keys in row. It panics if row is out of range.
func (k *Keyboard) ColumnCount(row int) int {
	return len(k.Row(row).Keys)
}

// Row returns the row at index row. It panics if row is out of range.
func (k *Keyboard) Row(row int) Row {
	if row < 0 || row >= len(k.Rows) {
		panic(fmt.Sprintf("model: row %d out of range [0,%d)", row, len(k.Rows)))
	}
	return k.Rows[row]
}

// Key returns the key at (row, col). It panics if either index is out of range.
func (k *Keyboard) Key(row, col int) Key {
	r := k.Row(row)
	if col < 0 || col >= len(r.Keys) {
		panic(fmt.Sprintf("model: column %d out of range [0,%d) in row %d", col, len(r.Keys), row))
	}
	return r.Keys[col]
}

// KeyCount returns the total number of keys.
func (k *Keyboard) KeyCount() int {
	n := 0
	for _, r := range k.Rows {
		n += len(r.Keys)
	}
	return n
}

// Validate reports the first structural problem that would make the
// keyboard impossible to lay out.
func (k *Keyboard) Validate() error {
	if k == nil || len(k.Rows) == 0 {
		return ErrEmptyKeyboard
	}
	for i, r := range k.Rows {
		if !r.Role.Valid() {
			return fmt.Errorf("row %d: %w: %d", i, ErrUnknownRowRole, uint8(r.Role))
		}
		if len(r.Keys) == 0 {
			return fmt.Errorf("row %d: %w", i, ErrEmptyRow)
		}
		if r.Role == RoleSideButton && len(r.Keys) < 2 {
			return fmt.Errorf("row %d: %w", i, ErrShortSideButtonRow)
		}
		for j, key := range r.Keys {
			if !key.Type.Valid() {
				return fmt.Errorf("key %dx%d: %w: %d", j, i, ErrUnknownKeyType, uint8(key.Type))
			}
		}
	}
	return nil
}
