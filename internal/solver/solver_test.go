package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

// expr builds "sum(coefficient*variable) + constant" from alternating
// variable/coefficient pairs.
func expr(constant float64, pairs ...any) Expression {
	e := Expression{Constant: constant}
	for i := 0; i < len(pairs); i += 2 {
		e.Terms = append(e.Terms, Term{Variable: pairs[i].(*Variable), Coefficient: pairs[i+1].(float64)})
	}
	return e
}

func TestSolver_RequiredEqualities(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	y := NewVariable("y")

	// x == 10, y == x + 5
	require.NoError(t, s.AddConstraint(NewConstraint(expr(-10, x, 1.0), OpEQ, Required)))
	require.NoError(t, s.AddConstraint(NewConstraint(expr(-5, y, 1.0, x, -1.0), OpEQ, Required)))
	s.UpdateVariables()

	assert.InDelta(t, 10, x.Value(), tol)
	assert.InDelta(t, 15, y.Value(), tol)
}

func TestSolver_StrengthOrdering(t *testing.T) {
	type tc struct {
		build func(s *Solver, x *Variable)
		want  float64
	}

	tests := map[string]tc{
		"required upper bound beats weak lower bound": {
			build: func(s *Solver, x *Variable) {
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-20, x, 1.0), OpGE, 50)))
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-10, x, 1.0), OpLE, Required)))
			},
			want: 10,
		},
		"higher priority target wins": {
			build: func(s *Solver, x *Variable) {
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-26, x, 1.0), OpEQ, 19)))
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-52, x, 1.0), OpEQ, 20)))
			},
			want: 52,
		},
		"bounded over-constrained pair degrades toward the stronger target": {
			build: func(s *Solver, x *Variable) {
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-30, x, 1.0), OpLE, Required)))
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-26, x, 1.0), OpEQ, 19)))
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-52, x, 1.0), OpEQ, 20)))
			},
			want: 30,
		},
		"range clamps a weak preference": {
			build: func(s *Solver, x *Variable) {
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-5, x, 1.0), OpGE, Required)))
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-39, x, 1.0), OpLE, Required)))
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-100, x, 1.0), OpEQ, 1)))
			},
			want: 39,
		},
		"order of addition does not matter": {
			build: func(s *Solver, x *Variable) {
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-100, x, 1.0), OpEQ, 1)))
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-39, x, 1.0), OpLE, Required)))
				require.NoError(t, s.AddConstraint(NewConstraint(expr(-5, x, 1.0), OpGE, Required)))
			},
			want: 39,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewSolver()
			x := NewVariable("x")
			tt.build(s, x)
			s.UpdateVariables()
			assert.InDelta(t, tt.want, x.Value(), tol)
		})
	}
}

func TestSolver_Unsatisfiable(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")

	require.NoError(t, s.AddConstraint(NewConstraint(expr(-10, x, 1.0), OpEQ, Required)))
	err := s.AddConstraint(NewConstraint(expr(-20, x, 1.0), OpEQ, Required))
	assert.ErrorIs(t, err, ErrUnsatisfiable)
}

func TestSolver_UnsatisfiableInequality(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")

	require.NoError(t, s.AddConstraint(NewConstraint(expr(-10, x, 1.0), OpLE, Required)))
	err := s.AddConstraint(NewConstraint(expr(-20, x, 1.0), OpGE, Required))
	assert.ErrorIs(t, err, ErrUnsatisfiable)
}

func TestSolver_RedundantRequired(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	y := NewVariable("y")

	// x == 10, y == x, y == 10 is consistent and redundant.
	require.NoError(t, s.AddConstraint(NewConstraint(expr(-10, x, 1.0), OpEQ, Required)))
	require.NoError(t, s.AddConstraint(NewConstraint(expr(0, y, 1.0, x, -1.0), OpEQ, Required)))
	require.NoError(t, s.AddConstraint(NewConstraint(expr(-10, y, 1.0), OpEQ, Required)))
	s.UpdateVariables()

	assert.InDelta(t, 10, y.Value(), tol)
}

func TestSolver_Duplicate(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	c := NewConstraint(expr(-1, x, 1.0), OpEQ, Required)

	require.NoError(t, s.AddConstraint(c))
	assert.True(t, s.HasConstraint(c))
	assert.ErrorIs(t, s.AddConstraint(c), ErrDuplicateConstraint)
}

func TestSolver_UnconstrainedVariableIsZero(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	y := NewVariable("y")

	// y only appears with a zero coefficient.
	require.NoError(t, s.AddConstraint(NewConstraint(expr(-3, x, 1.0, y, 0.0), OpEQ, Required)))
	s.UpdateVariables()

	assert.InDelta(t, 3, x.Value(), tol)
	assert.Equal(t, 0.0, y.Value())
}

func TestSolver_SharedSlack(t *testing.T) {
	s := NewSolver()
	a := NewVariable("a")
	b := NewVariable("b")

	// a + b == 100, a == b, both weakly pulled toward 0.
	require.NoError(t, s.AddConstraint(NewConstraint(expr(-100, a, 1.0, b, 1.0), OpEQ, Required)))
	require.NoError(t, s.AddConstraint(NewConstraint(expr(0, a, 1.0, b, -1.0), OpEQ, Required)))
	require.NoError(t, s.AddConstraint(NewConstraint(expr(0, a, 1.0), OpEQ, 1)))
	s.UpdateVariables()

	assert.InDelta(t, 50, a.Value(), tol)
	assert.InDelta(t, 50, b.Value(), tol)
}

func TestNewConstraint_ClampsStrength(t *testing.T) {
	c := NewConstraint(Expression{}, OpEQ, 5*Required)
	assert.Equal(t, Required, c.Strength)
	assert.True(t, c.required())
	assert.False(t, NewConstraint(Expression{}, OpEQ, 999).required())
}

func TestNearZero(t *testing.T) {
	tests := map[string]struct {
		v    float64
		want bool
	}{
		"zero":           {v: 0, want: true},
		"below epsilon":  {v: 1e-9, want: true},
		"negative small": {v: -1e-9, want: true},
		"above epsilon":  {v: 1e-7},
		"one":            {v: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, nearZero(tc.v))
		})
	}
}

func TestSolver_RedundantPinsAreAccepted(t *testing.T) {
	s := NewSolver()
	a := NewVariable("a")
	b := NewVariable("b")

	// a == 6, b == 6, b == a: the last row reduces to dummies only.
	require.NoError(t, s.AddConstraint(NewConstraint(expr(-6, a, 1.0), OpEQ, Required)))
	require.NoError(t, s.AddConstraint(NewConstraint(expr(-6, b, 1.0), OpEQ, Required)))
	require.NoError(t, s.AddConstraint(NewConstraint(expr(0, b, 1.0, a, -1.0), OpEQ, Required)))
	s.UpdateVariables()

	assert.InDelta(t, 6, a.Value(), tol)
	assert.InDelta(t, 6, b.Value(), tol)
}
