package kbd

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/element"
	"github.com/grindlemire/go-kbd/internal/generator"
	"github.com/grindlemire/go-kbd/internal/solver"
	"go.uber.org/zap"
)

var (
	// ErrNotInstalled is returned by accessors before a keyboard is
	// installed.
	ErrNotInstalled = errors.New("no keyboard installed")
	// ErrInvalidBounds is returned for a container with negative size.
	ErrInvalidBounds = errors.New("invalid container bounds")
)

// DefaultBounds is the container frame used when none is given.
var DefaultBounds = NewRect(0, 0, 320, 216)

// Container owns the layout of one installed keyboard. It is not safe for
// concurrent use; drive it from the goroutine that owns the view.
type Container struct {
	solver Solver
	logger *zap.Logger
	bounds Rect

	// Current pass. All nil when nothing is installed.
	keyboard *Keyboard
	params   Parameters
	registry *element.Registry
	set      *constraint.Set
	solution Solution
}

// pass is the result of one generate-and-solve run.
type pass struct {
	registry *element.Registry
	set      *constraint.Set
	solution Solution
}

// NewContainer creates an empty container.
func NewContainer(opts ...Option) (*Container, error) {
	c := &Container{
		solver: solver.NewLayoutSolver(),
		logger: zap.NewNop(),
		bounds: DefaultBounds,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Install lays out kb with params, replacing whatever was installed
// before. Installing the same keyboard twice regenerates the same
// constraints. Parameters without colors get the default palette. On error
// nothing is installed.
func (c *Container) Install(kb *Keyboard, params Parameters) error {
	c.reset()

	params = params.withDefaults()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("install: %w", err)
	}
	p, err := c.run(kb, params, c.bounds)
	if err != nil {
		return fmt.Errorf("install: %w", err)
	}

	c.keyboard = kb
	c.params = params
	c.commit(p)
	return nil
}

// Resize moves the container to bounds and lays the installed keyboard out
// again. Without an installed keyboard only the bounds are recorded.
func (c *Container) Resize(bounds Rect) error {
	if err := checkBounds(bounds); err != nil {
		return err
	}
	c.bounds = bounds
	if !c.Installed() {
		return nil
	}

	kb, params := c.keyboard, c.params
	p, err := c.run(kb, params, bounds)
	if err != nil {
		c.reset()
		return fmt.Errorf("resize: %w", err)
	}
	c.commit(p)
	return nil
}

// Uninstall discards the current layout.
func (c *Container) Uninstall() {
	c.reset()
}

func (c *Container) reset() {
	c.keyboard = nil
	c.params = Parameters{}
	c.registry = nil
	c.set = nil
	c.solution = Solution{}
}

func (c *Container) commit(p pass) {
	c.registry = p.registry
	c.set = p.set
	c.solution = p.solution
}

func (c *Container) run(kb *Keyboard, params Parameters, bounds Rect) (pass, error) {
	if kb == nil {
		return pass{}, fmt.Errorf("keyboard cannot be nil")
	}
	reg, err := element.Populate(kb)
	if err != nil {
		return pass{}, err
	}
	set, err := generator.Generate(kb, params.Metrics, reg)
	if err != nil {
		return pass{}, err
	}

	sol, err := c.solver.Solve(Problem{
		Elements:    reg.Len(),
		Container:   reg.MustLookup(element.Container()),
		Bounds:      bounds,
		Constraints: set.All(),
	})
	if err != nil {
		return pass{}, fmt.Errorf("solve: %w", err)
	}
	if len(sol.Frames) != reg.Len() {
		return pass{}, fmt.Errorf("solve: got %d frames for %d elements", len(sol.Frames), reg.Len())
	}

	for _, broken := range sol.Broken {
		c.logger.Warn("unsatisfiable constraint dropped",
			zap.String("keyboard", kb.Name),
			zap.String("constraint", constraint.Format(broken, reg)),
		)
	}
	c.logger.Debug("layout solved",
		zap.String("keyboard", kb.Name),
		zap.Int("elements", reg.Len()),
		zap.Int("constraints", set.Len()),
		zap.Int("broken", len(sol.Broken)),
		zap.Float64("width", bounds.Width),
		zap.Float64("height", bounds.Height),
	)

	return pass{registry: reg, set: set, solution: sol}, nil
}

// Installed reports whether a keyboard is laid out.
func (c *Container) Installed() bool {
	return c.registry != nil
}

// Bounds returns the container frame.
func (c *Container) Bounds() Rect {
	return c.bounds
}

// Content returns the bounds inside the installed keyboard's margins.
// Every key lies within it.
func (c *Container) Content() Rect {
	return c.bounds.Inset(c.params.Metrics.Margins())
}

// Keyboard returns the installed keyboard, or nil.
func (c *Container) Keyboard() *Keyboard {
	return c.keyboard
}

// Parameters returns the installed parameters.
func (c *Container) Parameters() Parameters {
	return c.params
}

// Registry returns the elements of the current pass, or nil.
func (c *Container) Registry() *element.Registry {
	return c.registry
}

// Constraints returns the constraints of the current pass, or nil.
func (c *Container) Constraints() *constraint.Set {
	return c.set
}

// ConstraintStrings renders the current constraints, one per line.
func (c *Container) ConstraintStrings() []string {
	if c.set == nil {
		return nil
	}
	return c.set.Strings(c.registry)
}

// Broken returns the required constraints the solver had to drop.
func (c *Container) Broken() []Constraint {
	return c.solution.Broken
}

// Frame returns the solved frame of the element at addr.
func (c *Container) Frame(addr Address) (Rect, error) {
	if !c.Installed() {
		return Rect{}, ErrNotInstalled
	}
	h, err := c.registry.Lookup(addr)
	if err != nil {
		return Rect{}, err
	}
	return c.solution.Frames[h], nil
}

// KeyFrame is a solved key.
type KeyFrame struct {
	Row    int
	Col    int
	Key    Key
	Frame  Rect
	Colors KeyColors
}

// Keys returns every key's frame in row-major order.
func (c *Container) Keys() []KeyFrame {
	if !c.Installed() {
		return nil
	}
	out := make([]KeyFrame, 0, c.keyboard.KeyCount())
	for row := 0; row < c.keyboard.RowCount(); row++ {
		for col := 0; col < c.keyboard.ColumnCount(row); col++ {
			k := c.keyboard.Key(row, col)
			h := c.registry.MustLookup(element.Key(col, row))
			out = append(out, KeyFrame{
				Row:    row,
				Col:    col,
				Key:    k,
				Frame:  c.solution.Frames[h],
				Colors: c.params.Colors.ColorsFor(k.Type),
			})
		}
	}
	return out
}

// Elements returns every element with its frame, in creation order.
func (c *Container) Elements() []ElementFrame {
	if !c.Installed() {
		return nil
	}
	elems := c.registry.Elements()
	out := make([]ElementFrame, len(elems))
	for i, e := range elems {
		out[i] = ElementFrame{Address: e.Address, Hidden: e.Hidden, Frame: c.solution.Frames[e.Handle]}
	}
	return out
}

// ElementFrame is a solved element.
type ElementFrame struct {
	Address Address
	Hidden  bool
	Frame   Rect
}
