package generator

import (
	c "github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/element"
	"github.com/grindlemire/go-kbd/internal/model"
)

// keyGaps places the horizontal spacers of every row. A row with n keys has
// gaps 0..n; which of them are fixed and which absorb slack depends on the
// row's role.
func (g *generator) keyGaps() {
	for row := 0; row < g.kb.RowCount(); row++ {
		n := g.kb.ColumnCount(row)
		zero := 0.0
		keyGap := g.m.KeyGap

		switch g.kb.Row(row).Role {
		case model.RoleSideButton:
			// Shift and backspace sit on the edges; the gaps next to them
			// stretch so the letters between stay centered.
			g.gapPair(row, 0, n, true, &zero)
			g.gapPair(row, 1, n-1, false, nil)
			g.gapRange(row, 2, n-2, &keyGap)
		case model.RoleEquallySpaced:
			g.gapPair(row, 0, n, true, &zero)
			g.gapRange(row, 1, n-1, nil)
		default:
			g.gapPair(row, 0, n, true, nil)
			g.gapRange(row, 1, n-1, &keyGap)
		}
	}
}

// gapPair constrains the two gaps start and end of a row to the same width,
// pinning each of them when width is set. When anchored, they are chained to the left and right edge spacers. A nil
// width leaves the pair free for the solver.
func (g *generator) gapPair(row, start, end int, anchored bool, width *float64) {
	first := g.lookup(element.KeyGap(start, row))
	last := g.lookup(element.KeyGap(end, row))

	if anchored {
		g.add(
			c.Eq(c.Left(first), c.Right(g.left)),
			c.Eq(c.Left(g.right), c.Right(last)),
		)
	}
	g.gapWidth(first, width)
	if last != first {
		g.gapWidth(last, width)
		g.add(c.Eq(c.Width(last), c.Width(first)))
	}

	g.centerGap(row, first)
	if last != first {
		g.centerGap(row, last)
	}
}

// gapRange constrains the gaps start..end of a row to one shared width,
// pinning every gap when width is set. It does nothing for an empty range.
func (g *generator) gapRange(row, start, end int, width *float64) {
	if start > end {
		return
	}
	first := g.lookup(element.KeyGap(start, row))
	for col := start; col <= end; col++ {
		gap := g.lookup(element.KeyGap(col, row))
		g.gapWidth(gap, width)
		if gap != first {
			g.add(c.Eq(c.Width(gap), c.Width(first)))
		}
		g.centerGap(row, gap)
	}
}

// gapWidth pins a gap to width, or keeps a free gap from going negative.
func (g *generator) gapWidth(gap element.Handle, width *float64) {
	if width != nil {
		g.add(c.Absolute(c.Width(gap), c.Equal, *width))
		return
	}
	g.add(c.Absolute(c.Width(gap), c.GreaterOrEqual, 0).At(freeGapPriority))
}

func (g *generator) centerGap(row int, gap element.Handle) {
	g.add(
		c.Absolute(c.Height(gap), c.Equal, g.m.DebugWidth),
		c.Eq(c.CenterY(gap), c.CenterY(g.rowAnchor(row))),
	)
}
