package generator

import (
	"fmt"

	"github.com/grindlemire/go-kbd/internal/config"
	"github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/element"
	"github.com/grindlemire/go-kbd/internal/model"
)

const (
	// rowGapFloor is the smallest height the solver prefers for row gaps.
	rowGapFloor = 5

	rowGapPriority         constraint.Priority = constraint.PriorityFittingSize
	canonicalWidthPriority constraint.Priority = 19
	doubleWidthPriority    constraint.Priority = 20
	freeGapPriority        constraint.Priority = constraint.PriorityAlmostRequired
	keyHeightPriority      constraint.Priority = constraint.PriorityLowest
)

type generator struct {
	kb  *model.Keyboard
	m   config.Metrics
	reg *element.Registry
	set *constraint.Set

	container element.Handle
	left      element.Handle
	right     element.Handle
	top       element.Handle
	bottom    element.Handle
}

// Generate emits the constraints laying out kb inside the registry's
// container. reg must hold the container and grid elements created by
// element.Populate; the edge spacers are added to it here. A missing or
// duplicate element aborts the pass and no set is returned.
func Generate(kb *model.Keyboard, m config.Metrics, reg *element.Registry) (set *constraint.Set, err error) {
	if err := kb.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("generate %q: %w", kb.Name, err)
	}

	g := &generator{
		kb:  kb,
		m:   m,
		reg: reg,
		set: constraint.NewSet(),
	}

	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *element.MissingElementError:
				set, err = nil, fmt.Errorf("generate %q: %w", kb.Name, e)
			case *element.DuplicateNameError:
				set, err = nil, fmt.Errorf("generate %q: %w", kb.Name, e)
			default:
				panic(r)
			}
		}
	}()

	g.container = g.lookup(element.Container())
	g.edges()
	g.rowGaps()
	g.keyGaps()
	g.keys()
	return g.set, nil
}

func (g *generator) lookup(addr element.Address) element.Handle {
	return g.reg.MustLookup(addr)
}

func (g *generator) add(cs ...constraint.Constraint) {
	g.set.Add(cs...)
}

// rowAnchor returns key0x<row>, the element its row is centered on.
func (g *generator) rowAnchor(row int) element.Handle {
	return g.lookup(element.Key(0, row))
}
