package solver

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/element"
	"github.com/grindlemire/go-kbd/internal/layout"
)

// Problem is one layout pass submitted to a solver.
type Problem struct {
	// Elements is the number of handles issued by the pass's registry.
	Elements int
	// Container is the handle pinned to Bounds.
	Container element.Handle
	// Bounds is the container frame.
	Bounds layout.Rect
	// Constraints are added in order.
	Constraints []constraint.Constraint
}

// Solution holds the frames of one solved pass.
type Solution struct {
	// Frames is indexed by element handle.
	Frames []layout.Rect
	// Broken lists required constraints that conflicted with earlier ones
	// and were left out, in the order they were met.
	Broken []constraint.Constraint
}

// LayoutSolver solves problems with a fresh Solver per pass.
type LayoutSolver struct{}

// NewLayoutSolver creates a LayoutSolver.
func NewLayoutSolver() *LayoutSolver {
	return &LayoutSolver{}
}

type frameVars struct {
	left, top, width, height *Variable
}

// Solve computes a frame for every element.
//
// A required constraint that conflicts with the ones before it is dropped
// and reported in Solution.Broken; the pass is then replayed without it,
// since a solver that rejected a constraint cannot be reused.
func (ls *LayoutSolver) Solve(p Problem) (Solution, error) {
	if p.Container < 0 || int(p.Container) >= p.Elements {
		return Solution{}, fmt.Errorf("container handle %d out of range [0,%d)", p.Container, p.Elements)
	}
	for i, c := range p.Constraints {
		if err := checkConstraint(c, p.Elements); err != nil {
			return Solution{}, fmt.Errorf("constraint %d: %w", i, err)
		}
	}

	skip := make(map[int]bool)
	for {
		vars, broken, err := ls.attempt(p, skip)
		if err != nil {
			return Solution{}, err
		}
		if broken < 0 {
			return Solution{Frames: frames(vars), Broken: brokenConstraints(p.Constraints, skip)}, nil
		}
		skip[broken] = true
	}
}

// attempt adds every constraint not in skip. It returns the index of the
// first unsatisfiable constraint, or -1 when all were added.
func (ls *LayoutSolver) attempt(p Problem, skip map[int]bool) ([]frameVars, int, error) {
	s := NewSolver()
	vars := make([]frameVars, p.Elements)
	for i := range vars {
		vars[i] = frameVars{
			left:   NewVariable(fmt.Sprintf("%d.left", i)),
			top:    NewVariable(fmt.Sprintf("%d.top", i)),
			width:  NewVariable(fmt.Sprintf("%d.width", i)),
			height: NewVariable(fmt.Sprintf("%d.height", i)),
		}
	}

	box := vars[p.Container]
	pins := []struct {
		v     *Variable
		value float64
	}{
		{box.left, p.Bounds.X},
		{box.top, p.Bounds.Y},
		{box.width, p.Bounds.Width},
		{box.height, p.Bounds.Height},
	}
	for _, pin := range pins {
		expr := Expression{Terms: []Term{{Variable: pin.v, Coefficient: 1}}, Constant: -pin.value}
		if err := s.AddConstraint(NewConstraint(expr, OpEQ, Required)); err != nil {
			return nil, 0, fmt.Errorf("pin container: %w", err)
		}
	}

	for i, c := range p.Constraints {
		if skip[i] {
			continue
		}
		err := s.AddConstraint(convert(c, vars))
		if errors.Is(err, ErrUnsatisfiable) {
			return nil, i, nil
		}
		if err != nil {
			return nil, 0, fmt.Errorf("constraint %d: %w", i, err)
		}
	}

	s.UpdateVariables()
	return vars, -1, nil
}

func checkConstraint(c constraint.Constraint, elements int) error {
	if c.First.IsNone() || int(c.First.Item) >= elements || c.First.Attr == constraint.AttrNone {
		return fmt.Errorf("invalid first anchor %+v", c.First)
	}
	if !c.Second.IsNone() && (int(c.Second.Item) >= elements || c.Second.Item < 0 || c.Second.Attr == constraint.AttrNone) {
		return fmt.Errorf("invalid second anchor %+v", c.Second)
	}
	if c.Priority <= 0 {
		return fmt.Errorf("priority %v must be positive", c.Priority)
	}
	return nil
}

// terms expands an anchor into the frame variables it depends on.
func terms(a constraint.Anchor, v frameVars, scale float64) []Term {
	switch a.Attr {
	case constraint.AttrLeft:
		return []Term{{v.left, scale}}
	case constraint.AttrRight:
		return []Term{{v.left, scale}, {v.width, scale}}
	case constraint.AttrTop:
		return []Term{{v.top, scale}}
	case constraint.AttrBottom:
		return []Term{{v.top, scale}, {v.height, scale}}
	case constraint.AttrWidth:
		return []Term{{v.width, scale}}
	case constraint.AttrHeight:
		return []Term{{v.height, scale}}
	case constraint.AttrCenterX:
		return []Term{{v.left, scale}, {v.width, scale / 2}}
	case constraint.AttrCenterY:
		return []Term{{v.top, scale}, {v.height, scale / 2}}
	default:
		return nil
	}
}

// convert rewrites "first REL m*second + k" as "first - m*second - k REL 0".
func convert(c constraint.Constraint, vars []frameVars) *Constraint {
	expr := Expression{Constant: -c.Constant}
	expr.Terms = append(expr.Terms, terms(c.First, vars[c.First.Item], 1)...)
	if !c.Second.IsNone() {
		expr.Terms = append(expr.Terms, terms(c.Second, vars[c.Second.Item], -c.Multiplier)...)
	}

	op := OpEQ
	switch c.Relation {
	case constraint.LessOrEqual:
		op = OpLE
	case constraint.GreaterOrEqual:
		op = OpGE
	}
	return NewConstraint(expr, op, Strength(c.Priority))
}

// Strength maps a 1..1000 priority onto a solver strength. Required
// priorities map to Required; lower priorities weigh their error linearly.
func Strength(p constraint.Priority) float64 {
	if p.IsRequired() {
		return Required
	}
	return float64(p)
}

func frames(vars []frameVars) []layout.Rect {
	out := make([]layout.Rect, len(vars))
	for i, v := range vars {
		out[i] = layout.NewRect(v.left.Value(), v.top.Value(), v.width.Value(), v.height.Value())
	}
	return out
}

func brokenConstraints(cs []constraint.Constraint, skip map[int]bool) []constraint.Constraint {
	var out []constraint.Constraint
	for i, c := range cs {
		if skip[i] {
			out = append(out, c)
		}
	}
	return out
}
