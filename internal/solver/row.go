package solver

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

const epsilon = 1.0e-8

func nearZero(v float64) bool {
	return scalar.EqualWithinAbs(v, 0, epsilon)
}

type symbolKind uint8

const (
	invalidSymbol symbolKind = iota
	externalSymbol
	slackSymbol
	errorSymbol
	dummySymbol
)

// symbol is a tableau column. The zero value is the invalid symbol.
type symbol struct {
	id   uint64
	kind symbolKind
}

func (s symbol) valid() bool {
	return s.kind != invalidSymbol
}

// pivotable symbols may enter the basis when a row must change subject.
func (s symbol) pivotable() bool {
	return s.kind == slackSymbol || s.kind == errorSymbol
}

// row is one tableau row: basic = constant + sum(coefficient * symbol).
type row struct {
	constant float64
	cells    map[symbol]float64
}

func newRow(constant float64) *row {
	return &row{constant: constant, cells: make(map[symbol]float64)}
}

func (r *row) clone() *row {
	out := newRow(r.constant)
	for s, c := range r.cells {
		out.cells[s] = c
	}
	return out
}

// symbols returns the row's symbols ordered by id so pivot selection is
// deterministic.
func (r *row) symbols() []symbol {
	out := make([]symbol, 0, len(r.cells))
	for s := range r.cells {
		out = append(out, s)
	}
	sortSymbols(out)
	return out
}

func (r *row) coefficientFor(s symbol) float64 {
	return r.cells[s]
}

func (r *row) insertSymbol(s symbol, coefficient float64) {
	v := r.cells[s] + coefficient
	if nearZero(v) {
		delete(r.cells, s)
		return
	}
	r.cells[s] = v
}

func (r *row) insertRow(other *row, coefficient float64) {
	r.constant += other.constant * coefficient
	for s, c := range other.cells {
		r.insertSymbol(s, c*coefficient)
	}
}

func (r *row) remove(s symbol) {
	delete(r.cells, s)
}

func (r *row) reverseSign() {
	r.constant = -r.constant
	for s, c := range r.cells {
		r.cells[s] = -c
	}
}

// solveFor rewrites the row so that s is its subject. The row must
// contain s.
func (r *row) solveFor(s symbol) {
	coeff := -1.0 / r.cells[s]
	delete(r.cells, s)
	r.constant *= coeff
	for k, c := range r.cells {
		r.cells[k] = c * coeff
	}
}

// solveForPair solves the row "lhs = row" for rhs.
func (r *row) solveForPair(lhs, rhs symbol) {
	r.insertSymbol(lhs, -1)
	r.solveFor(rhs)
}

// substitute replaces s with the expression in other.
func (r *row) substitute(s symbol, other *row) {
	if c, ok := r.cells[s]; ok {
		delete(r.cells, s)
		r.insertRow(other, c)
	}
}

func (r *row) allDummies() bool {
	for s := range r.cells {
		if s.kind != dummySymbol {
			return false
		}
	}
	return true
}

func sortSymbols(syms []symbol) {
	sort.Slice(syms, func(i, j int) bool { return syms[i].id < syms[j].id })
}
