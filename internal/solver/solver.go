package solver

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsatisfiable is returned when a required constraint conflicts
	// with the required constraints already added. The solver must be
	// discarded after this error.
	ErrUnsatisfiable = errors.New("unsatisfiable required constraint")
	// ErrDuplicateConstraint is returned when a constraint is added twice.
	ErrDuplicateConstraint = errors.New("duplicate constraint")
	// ErrUnbounded is returned when the objective has no lower bound. It
	// cannot happen with positive strengths and indicates a solver bug.
	ErrUnbounded = errors.New("objective function is unbounded")
)

// Required is the strength of constraints that must hold.
const Required = 1001001000.0

// Operator is the relation of a constraint expression to zero.
type Operator int8

const (
	OpLE Operator = -1 // expression <= 0
	OpEQ Operator = 0  // expression == 0
	OpGE Operator = 1  // expression >= 0
)

// Variable is a solver unknown. Its Value is updated by UpdateVariables.
type Variable struct {
	Name  string
	value float64
}

// NewVariable creates a named variable.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

// Value returns the value computed by the last UpdateVariables.
func (v *Variable) Value() float64 {
	return v.value
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s=%g", v.Name, v.value)
}

// Term is coefficient*variable.
type Term struct {
	Variable    *Variable
	Coefficient float64
}

// Expression is a linear expression sum(terms) + constant.
type Expression struct {
	Terms    []Term
	Constant float64
}

// Constraint is "expression OP 0" with a strength.
type Constraint struct {
	Expression Expression
	Op         Operator
	Strength   float64
}

// NewConstraint creates a constraint. Strengths at or above Required are
// clamped to Required.
func NewConstraint(expr Expression, op Operator, strength float64) *Constraint {
	return &Constraint{Expression: expr, Op: op, Strength: min(strength, Required)}
}

func (c *Constraint) required() bool {
	return c.Strength >= Required
}

type tag struct {
	marker symbol
	other  symbol
}

// Solver holds the simplex tableau. It is not safe for concurrent use.
type Solver struct {
	constraints map[*Constraint]tag
	rows        map[symbol]*row
	vars        map[*Variable]symbol
	objective   *row
	artificial  *row
	nextID      uint64
}

// NewSolver creates an empty solver.
func NewSolver() *Solver {
	return &Solver{
		constraints: make(map[*Constraint]tag),
		rows:        make(map[symbol]*row),
		vars:        make(map[*Variable]symbol),
		objective:   newRow(0),
	}
}

// HasConstraint reports whether c was added.
func (s *Solver) HasConstraint(c *Constraint) bool {
	_, ok := s.constraints[c]
	return ok
}

// AddConstraint adds c and re-optimizes.
func (s *Solver) AddConstraint(c *Constraint) error {
	if s.HasConstraint(c) {
		return ErrDuplicateConstraint
	}

	r, t := s.createRow(c)
	subject := s.chooseSubject(r, t)

	// A row made only of dummy variables is either redundant with the
	// required constraints already present, or in conflict with them.
	if !subject.valid() && r.allDummies() {
		if !nearZero(r.constant) {
			return ErrUnsatisfiable
		}
		subject = t.marker
	}

	if !subject.valid() {
		ok, err := s.addWithArtificialVariable(r)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnsatisfiable
		}
	} else {
		r.solveFor(subject)
		s.substitute(subject, r)
		s.rows[subject] = r
	}

	s.constraints[c] = t
	return s.optimize(s.objective)
}

// UpdateVariables copies the current solution into every variable.
func (s *Solver) UpdateVariables() {
	for v, sym := range s.vars {
		if r, ok := s.rows[sym]; ok {
			v.value = r.constant
		} else {
			v.value = 0
		}
	}
}

func (s *Solver) newSymbol(kind symbolKind) symbol {
	s.nextID++
	return symbol{id: s.nextID, kind: kind}
}

func (s *Solver) varSymbol(v *Variable) symbol {
	if sym, ok := s.vars[v]; ok {
		return sym
	}
	sym := s.newSymbol(externalSymbol)
	s.vars[v] = sym
	return sym
}

// createRow builds the tableau row for c with every basic variable
// substituted out, plus the slack, error or dummy markers the operator
// needs. The row constant is made non-negative.
func (s *Solver) createRow(c *Constraint) (*row, tag) {
	expr := c.Expression
	r := newRow(expr.Constant)

	for _, term := range expr.Terms {
		if nearZero(term.Coefficient) {
			continue
		}
		sym := s.varSymbol(term.Variable)
		if basic, ok := s.rows[sym]; ok {
			r.insertRow(basic, term.Coefficient)
		} else {
			r.insertSymbol(sym, term.Coefficient)
		}
	}

	var t tag
	switch c.Op {
	case OpLE, OpGE:
		coeff := 1.0
		if c.Op == OpGE {
			coeff = -1.0
		}
		slack := s.newSymbol(slackSymbol)
		t.marker = slack
		r.insertSymbol(slack, coeff)
		if !c.required() {
			errSym := s.newSymbol(errorSymbol)
			t.other = errSym
			r.insertSymbol(errSym, -coeff)
			s.objective.insertSymbol(errSym, c.Strength)
		}
	case OpEQ:
		if c.required() {
			dummy := s.newSymbol(dummySymbol)
			t.marker = dummy
			r.insertSymbol(dummy, 1)
		} else {
			errPlus := s.newSymbol(errorSymbol)
			errMinus := s.newSymbol(errorSymbol)
			t.marker = errPlus
			t.other = errMinus
			r.insertSymbol(errPlus, -1)
			r.insertSymbol(errMinus, 1)
			s.objective.insertSymbol(errPlus, c.Strength)
			s.objective.insertSymbol(errMinus, c.Strength)
		}
	}

	if r.constant < 0 {
		r.reverseSign()
	}
	return r, t
}

// chooseSubject picks the symbol a new row is solved for: any external
// variable, else a slack or error marker with a negative coefficient.
func (s *Solver) chooseSubject(r *row, t tag) symbol {
	for _, sym := range r.symbols() {
		if sym.kind == externalSymbol {
			return sym
		}
	}
	if t.marker.pivotable() && r.coefficientFor(t.marker) < 0 {
		return t.marker
	}
	if t.other.pivotable() && r.coefficientFor(t.other) < 0 {
		return t.other
	}
	return symbol{}
}

// addWithArtificialVariable adds r through a temporary artificial
// variable and reports whether r could be satisfied.
func (s *Solver) addWithArtificialVariable(r *row) (bool, error) {
	art := s.newSymbol(slackSymbol)
	s.rows[art] = r.clone()
	s.artificial = r.clone()

	if err := s.optimize(s.artificial); err != nil {
		s.artificial = nil
		return false, err
	}
	success := nearZero(s.artificial.constant)
	s.artificial = nil

	if basic, ok := s.rows[art]; ok {
		delete(s.rows, art)
		if len(basic.cells) == 0 {
			return success, nil
		}
		entering := anyPivotableSymbol(basic)
		if !entering.valid() {
			return false, nil
		}
		basic.solveForPair(art, entering)
		s.substitute(entering, basic)
		s.rows[entering] = basic
	}

	for _, other := range s.rows {
		other.remove(art)
	}
	s.objective.remove(art)
	return success, nil
}

// substitute replaces sym with r in every row and objective.
func (s *Solver) substitute(sym symbol, r *row) {
	for _, other := range s.rows {
		other.substitute(sym, r)
	}
	s.objective.substitute(sym, r)
	if s.artificial != nil {
		s.artificial.substitute(sym, r)
	}
}

// optimize runs primal simplex on objective. Entering and leaving symbols
// are chosen by lowest id among the candidates (Bland's rule), which keeps
// results deterministic and rules out cycling.
func (s *Solver) optimize(objective *row) error {
	for {
		entering := enteringSymbol(objective)
		if !entering.valid() {
			return nil
		}
		leaving, ok := s.leavingSymbol(entering)
		if !ok {
			return ErrUnbounded
		}
		r := s.rows[leaving]
		delete(s.rows, leaving)
		r.solveForPair(leaving, entering)
		s.substitute(entering, r)
		s.rows[entering] = r
	}
}

func enteringSymbol(objective *row) symbol {
	for _, sym := range objective.symbols() {
		if sym.kind != dummySymbol && objective.cells[sym] < 0 {
			return sym
		}
	}
	return symbol{}
}

func (s *Solver) leavingSymbol(entering symbol) (symbol, bool) {
	basics := make([]symbol, 0, len(s.rows))
	for sym := range s.rows {
		if sym.kind != externalSymbol {
			basics = append(basics, sym)
		}
	}
	sortSymbols(basics)

	ratio := math.MaxFloat64
	var leaving symbol
	found := false
	for _, sym := range basics {
		coeff := s.rows[sym].coefficientFor(entering)
		if coeff >= 0 {
			continue
		}
		if r := -s.rows[sym].constant / coeff; r < ratio {
			ratio = r
			leaving = sym
			found = true
		}
	}
	return leaving, found
}

func anyPivotableSymbol(r *row) symbol {
	for _, sym := range r.symbols() {
		if sym.pivotable() {
			return sym
		}
	}
	return symbol{}
}
