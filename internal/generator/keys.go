package generator

import (
	"github.com/grindlemire/go-kbd/internal/config"
	c "github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/element"
	"github.com/grindlemire/go-kbd/internal/model"
)

// keys chains every key between its two gaps and sizes it. key0x0 carries
// the only free size: its width is pinned twice at conflicting weak
// priorities and every character key follows it.
func (g *generator) keys() {
	canonical := g.rowAnchor(0)

	for row := 0; row < g.kb.RowCount(); row++ {
		gap := g.lookup(element.RowGap(row))

		for col := 0; col < g.kb.ColumnCount(row); col++ {
			key := g.lookup(element.Key(col, row))
			before := g.lookup(element.KeyGap(col, row))
			after := g.lookup(element.KeyGap(col+1, row))
			k := g.kb.Key(row, col)

			g.add(
				c.Eq(c.Left(key), c.Right(before)),
				c.Eq(c.Left(after), c.Right(key)),
			)
			if w, ok := fixedWidth(k.Type, g.m); ok {
				g.add(c.Absolute(c.Width(key), c.Equal, w))
			}
			g.add(c.Eq(c.Top(key), c.Bottom(gap)))

			if key == canonical {
				g.add(
					c.Absolute(c.Width(key), c.Equal, g.m.KeyWidth).At(canonicalWidthPriority),
					c.Absolute(c.Width(key), c.Equal, 2*g.m.KeyWidth).At(doubleWidthPriority),
					c.Absolute(c.Height(key), c.LessOrEqual, g.m.KeyHeight),
					c.Absolute(c.Height(key), c.GreaterOrEqual, config.MinKeyHeight),
					c.Absolute(c.Height(key), c.Equal, g.m.KeyHeight).At(keyHeightPriority),
				)
				continue
			}

			g.add(c.Eq(c.Height(key), c.Height(canonical)))
			switch k.Type {
			case model.Character:
				g.add(c.Eq(c.Width(key), c.Width(canonical)))
			case model.Shift, model.Backspace:
				ratio := g.m.ShiftAndBackspaceMaxWidth / g.m.KeyWidth
				g.add(c.Eq(c.Width(key), c.Width(canonical)).Times(ratio))
			}
		}
	}
}

// fixedWidth returns the width a key type is pinned to, if any.
func fixedWidth(t model.KeyType, m config.Metrics) (float64, bool) {
	switch t {
	case model.ModeChange, model.KeyboardChange, model.SpecialCharacter, model.Period:
		return m.SpecialKeyWidth, true
	case model.Space:
		return m.SpaceWidth, true
	case model.Return:
		return m.DoneKeyWidth, true
	default:
		return 0, false
	}
}
