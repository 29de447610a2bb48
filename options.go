package kbd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Solver computes frames for a layout pass.
type Solver interface {
	Solve(Problem) (Solution, error)
}

// Option is a functional option for configuring a Container.
type Option func(*Container) error

// WithSolver replaces the default constraint solver.
func WithSolver(s Solver) Option {
	return func(c *Container) error {
		if s == nil {
			return errors.New("solver cannot be nil")
		}
		c.solver = s
		return nil
	}
}

// WithLogger sets the logger layout passes are reported to. Default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = l
		return nil
	}
}

// WithBounds sets the initial container frame. Default is 320x216, a phone
// keyboard in portrait.
func WithBounds(r Rect) Option {
	return func(c *Container) error {
		if err := checkBounds(r); err != nil {
			return err
		}
		c.bounds = r
		return nil
	}
}

func checkBounds(r Rect) error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidBounds, r.Width, r.Height)
	}
	return nil
}
