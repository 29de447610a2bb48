package generator

import (
	c "github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/element"
)

// edges creates the four edge spacers and pins each one flush against its
// container edge. The spacers' thickness sets the keyboard's outer margins.
func (g *generator) edges() {
	box := g.container
	margins := g.m.Margins()
	g.left = g.reg.MustCreate(element.LeftSpacer())
	g.right = g.reg.MustCreate(element.RightSpacer())
	g.top = g.reg.MustCreate(element.TopSpacer())
	g.bottom = g.reg.MustCreate(element.BottomSpacer())

	g.add(
		c.Eq(c.Left(g.left), c.Left(box)),
		c.Absolute(c.Width(g.left), c.Equal, margins.Left),
		c.Eq(c.Right(g.right), c.Right(box)),
		c.Absolute(c.Width(g.right), c.Equal, margins.Right),
	)
	for _, h := range []element.Handle{g.left, g.right} {
		g.add(
			c.Absolute(c.Height(h), c.Equal, g.m.DebugWidth),
			c.Eq(c.CenterY(h), c.CenterY(box)),
		)
	}

	g.add(
		c.Eq(c.Top(g.top), c.Top(box)),
		c.Absolute(c.Height(g.top), c.Equal, margins.Top),
		c.Eq(c.Bottom(g.bottom), c.Bottom(box)),
		c.Absolute(c.Height(g.bottom), c.Equal, margins.Bottom),
	)
	for _, h := range []element.Handle{g.top, g.bottom} {
		g.add(
			c.Absolute(c.Width(h), c.Equal, g.m.DebugWidth),
			c.Eq(c.CenterX(h), c.CenterX(box)),
		)
	}
}
