package constraint

import "github.com/grindlemire/go-kbd/internal/element"

// Set is an ordered collection of constraints generated for one pass.
type Set struct {
	items []Constraint
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add appends constraints in order.
func (s *Set) Add(cs ...Constraint) {
	s.items = append(s.items, cs...)
}

// Len returns the number of constraints.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All returns a copy of the constraints in insertion order.
func (s *Set) All() []Constraint {
	if s == nil {
		return nil
	}
	out := make([]Constraint, len(s.items))
	copy(out, s.items)
	return out
}

// Where returns the constraints matching keep, in order.
func (s *Set) Where(keep func(Constraint) bool) []Constraint {
	var out []Constraint
	for _, c := range s.All() {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Involving returns the constraints that mention h.
func (s *Set) Involving(h element.Handle) []Constraint {
	return s.Where(func(c Constraint) bool { return c.Involves(h) })
}

// On returns the constraints whose first anchor is a.
func (s *Set) On(a Anchor) []Constraint {
	return s.Where(func(c Constraint) bool { return c.First == a })
}

// Multiset counts each distinct constraint. Two passes that produce the
// same constraints in any order have equal multisets.
func (s *Set) Multiset() map[Constraint]int {
	out := make(map[Constraint]int, s.Len())
	for _, c := range s.All() {
		out[c]++
	}
	return out
}

// Strings renders every constraint with Format.
func (s *Set) Strings(n Namer) []string {
	out := make([]string, 0, s.Len())
	for _, c := range s.All() {
		out = append(out, Format(c, n))
	}
	return out
}
