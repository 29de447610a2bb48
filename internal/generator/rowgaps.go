package generator

import (
	c "github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/element"
)

// rowGaps stacks the rows vertically. rowGap0 is the canonical margin gap
// (flush under the top spacer, zero height) and the trailing gap copies its
// height. The first interior gap is the canonical row gap: it has a soft
// floor and every other interior gap matches it, so slack is spread evenly
// between the rows.
func (g *generator) rowGaps() {
	rows := g.kb.RowCount()
	margin := element.NoHandle
	canonical := element.NoHandle

	for row := 0; row <= rows; row++ {
		gap := g.lookup(element.RowGap(row))

		switch {
		case row == 0:
			margin = gap
			g.add(
				c.Eq(c.Top(gap), c.Bottom(g.top)),
				c.Absolute(c.Height(gap), c.Equal, 0),
			)
		case row == rows:
			g.add(
				c.Eq(c.Top(gap), c.Bottom(g.rowAnchor(row-1))),
				c.Eq(c.Height(gap), c.Height(margin)),
				c.Eq(c.Top(g.bottom), c.Bottom(gap)),
			)
		case canonical == element.NoHandle:
			canonical = gap
			g.add(
				c.Eq(c.Top(gap), c.Bottom(g.rowAnchor(row-1))),
				c.Absolute(c.Height(gap), c.GreaterOrEqual, rowGapFloor).At(rowGapPriority),
			)
		default:
			g.add(
				c.Eq(c.Top(gap), c.Bottom(g.rowAnchor(row-1))),
				c.Eq(c.Height(gap), c.Height(canonical)),
			)
		}

		g.add(
			c.Absolute(c.Width(gap), c.Equal, g.m.DebugWidth),
			c.Eq(c.CenterX(gap), c.CenterX(g.container)),
		)
	}
}
