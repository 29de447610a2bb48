package constraint

import (
	"fmt"
	"strconv"

	"github.com/grindlemire/go-kbd/internal/element"
)

// Attribute is a geometric property of an element.
type Attribute uint8

const (
	AttrNone Attribute = iota
	AttrLeft
	AttrRight
	AttrTop
	AttrBottom
	AttrWidth
	AttrHeight
	AttrCenterX
	AttrCenterY
)

var attributeNames = [...]string{
	AttrNone:    "none",
	AttrLeft:    "left",
	AttrRight:   "right",
	AttrTop:     "top",
	AttrBottom:  "bottom",
	AttrWidth:   "width",
	AttrHeight:  "height",
	AttrCenterX: "centerX",
	AttrCenterY: "centerY",
}

func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return fmt.Sprintf("Attribute(%d)", uint8(a))
}

// IsDimension reports whether a is a size rather than a position.
func (a Attribute) IsDimension() bool {
	return a == AttrWidth || a == AttrHeight
}

// Relation compares the two sides of a constraint.
type Relation int8

const (
	LessOrEqual    Relation = -1
	Equal          Relation = 0
	GreaterOrEqual Relation = 1
)

func (r Relation) String() string {
	switch r {
	case LessOrEqual:
		return "<="
	case Equal:
		return "=="
	case GreaterOrEqual:
		return ">="
	default:
		return fmt.Sprintf("Relation(%d)", int8(r))
	}
}

// Priority orders constraints when they cannot all be satisfied.
// The scale is 1..1000; Required constraints must hold.
type Priority float64

const (
	PriorityRequired       Priority = 1000
	PriorityAlmostRequired Priority = 999
	PriorityDefaultHigh    Priority = 750
	PriorityDefaultLow     Priority = 250
	PriorityFittingSize    Priority = 50
	PriorityLowest         Priority = 1
)

// IsRequired reports whether p is the required priority.
func (p Priority) IsRequired() bool {
	return p >= PriorityRequired
}

func (p Priority) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// Anchor is an attribute of one element.
type Anchor struct {
	Item element.Handle
	Attr Attribute
}

// None is the empty anchor used as the second item of absolute constraints.
var None = Anchor{Item: element.NoHandle, Attr: AttrNone}

// IsNone reports whether the anchor refers to no element.
func (a Anchor) IsNone() bool {
	return a.Item == element.NoHandle
}

// Left returns the left anchor of h.
func Left(h element.Handle) Anchor { return Anchor{Item: h, Attr: AttrLeft} }

// Right returns the right anchor of h.
func Right(h element.Handle) Anchor { return Anchor{Item: h, Attr: AttrRight} }

// Top returns the top anchor of h.
func Top(h element.Handle) Anchor { return Anchor{Item: h, Attr: AttrTop} }

// Bottom returns the bottom anchor of h.
func Bottom(h element.Handle) Anchor { return Anchor{Item: h, Attr: AttrBottom} }

// Width returns the width anchor of h.
func Width(h element.Handle) Anchor { return Anchor{Item: h, Attr: AttrWidth} }

// Height returns the height anchor of h.
func Height(h element.Handle) Anchor { return Anchor{Item: h, Attr: AttrHeight} }

// CenterX returns the horizontal center anchor of h.
func CenterX(h element.Handle) Anchor { return Anchor{Item: h, Attr: AttrCenterX} }

// CenterY returns the vertical center anchor of h.
func CenterY(h element.Handle) Anchor { return Anchor{Item: h, Attr: AttrCenterY} }

// Constraint is a single linear relation between two anchors.
type Constraint struct {
	First      Anchor
	Relation   Relation
	Second     Anchor
	Multiplier float64
	Constant   float64
	Priority   Priority
}

// Absolute creates a required constraint "first REL constant".
func Absolute(first Anchor, rel Relation, constant float64) Constraint {
	return Constraint{
		First:    first,
		Relation: rel,
		Second:   None,
		Constant: constant,
		Priority: PriorityRequired,
	}
}

// Relate creates a required constraint "first REL second".
func Relate(first Anchor, rel Relation, second Anchor) Constraint {
	return Constraint{
		First:      first,
		Relation:   rel,
		Second:     second,
		Multiplier: 1,
		Priority:   PriorityRequired,
	}
}

// Eq is Relate with the Equal relation.
func Eq(first, second Anchor) Constraint {
	return Relate(first, Equal, second)
}

// Times returns c with its multiplier set to m.
func (c Constraint) Times(m float64) Constraint {
	c.Multiplier = m
	return c
}

// Plus returns c with its constant set to k.
func (c Constraint) Plus(k float64) Constraint {
	c.Constant = k
	return c
}

// At returns c with priority p.
func (c Constraint) At(p Priority) Constraint {
	c.Priority = p
	return c
}

// IsAbsolute reports whether c compares an attribute to a constant.
func (c Constraint) IsAbsolute() bool {
	return c.Second.IsNone()
}

// Involves reports whether h appears on either side of c.
func (c Constraint) Involves(h element.Handle) bool {
	return c.First.Item == h || (!c.Second.IsNone() && c.Second.Item == h)
}

// Namer resolves handles to addresses for display.
type Namer interface {
	Address(h element.Handle) element.Address
}

// Format renders c, for example "key1x0.width == key0x0.width" or
// "rowGap1.height >= 5 @50". The priority is omitted when required.
func Format(c Constraint, n Namer) string {
	lhs := fmt.Sprintf("%s.%s", n.Address(c.First.Item), c.First.Attr)

	var rhs string
	switch {
	case c.IsAbsolute():
		rhs = formatNumber(c.Constant)
	default:
		rhs = fmt.Sprintf("%s.%s", n.Address(c.Second.Item), c.Second.Attr)
		if c.Multiplier != 1 {
			rhs = formatNumber(c.Multiplier) + "*" + rhs
		}
		if c.Constant > 0 {
			rhs += " + " + formatNumber(c.Constant)
		} else if c.Constant < 0 {
			rhs += " - " + formatNumber(-c.Constant)
		}
	}

	s := fmt.Sprintf("%s %s %s", lhs, c.Relation, rhs)
	if !c.Priority.IsRequired() {
		s += " @" + c.Priority.String()
	}
	return s
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
