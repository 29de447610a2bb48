package element

import "fmt"

// Kind is the kind of a layout element.
type Kind uint8

const (
	KindContainer    Kind = iota // The container the keyboard is laid out in
	KindLeftSpacer               // Fixed-width spacer at the left edge
	KindRightSpacer              // Fixed-width spacer at the right edge
	KindTopSpacer                // Fixed-height spacer at the top edge
	KindBottomSpacer             // Fixed-height spacer at the bottom edge
	KindRowGap                   // Invisible gap before a row (and after the last one)
	KindKeyGap                   // Invisible gap before a key (and after the last one)
	KindKey                      // A key
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindLeftSpacer:
		return "leftSpacer"
	case KindRightSpacer:
		return "rightSpacer"
	case KindTopSpacer:
		return "topSpacer"
	case KindBottomSpacer:
		return "bottomSpacer"
	case KindRowGap:
		return "rowGap"
	case KindKeyGap:
		return "keyGap"
	case KindKey:
		return "key"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Address identifies an element. Col is only meaningful for keys and key
// gaps, Row for keys, key gaps and row gaps.
type Address struct {
	Kind Kind
	Col  int
	Row  int
}

// Container addresses the container itself.
func Container() Address { return Address{Kind: KindContainer} }

// LeftSpacer addresses the left edge spacer.
func LeftSpacer() Address { return Address{Kind: KindLeftSpacer} }

// RightSpacer addresses the right edge spacer.
func RightSpacer() Address { return Address{Kind: KindRightSpacer} }

// TopSpacer addresses the top edge spacer.
func TopSpacer() Address { return Address{Kind: KindTopSpacer} }

// BottomSpacer addresses the bottom edge spacer.
func BottomSpacer() Address { return Address{Kind: KindBottomSpacer} }

// RowGap addresses the gap before row. RowGap(rowCount) is the trailing gap.
func RowGap(row int) Address { return Address{Kind: KindRowGap, Row: row} }

// KeyGap addresses the gap before column col in row. KeyGap(columnCount, row)
// is the trailing gap.
func KeyGap(col, row int) Address { return Address{Kind: KindKeyGap, Col: col, Row: row} }

// Key addresses the key at column col in row.
func Key(col, row int) Address { return Address{Kind: KindKey, Col: col, Row: row} }

// String returns the element's display name: "key3x1", "keyGap0x2",
// "rowGap4", "leftSpacer" or "superview".
func (a Address) String() string {
	switch a.Kind {
	case KindContainer:
		return "superview"
	case KindRowGap:
		return fmt.Sprintf("rowGap%d", a.Row)
	case KindKeyGap:
		return fmt.Sprintf("keyGap%dx%d", a.Col, a.Row)
	case KindKey:
		return fmt.Sprintf("key%dx%d", a.Col, a.Row)
	default:
		return a.Kind.String()
	}
}

// IsSpacer reports whether the element is invisible: an edge spacer, a row
// gap or a key gap.
func (a Address) IsSpacer() bool {
	switch a.Kind {
	case KindLeftSpacer, KindRightSpacer, KindTopSpacer, KindBottomSpacer, KindRowGap, KindKeyGap:
		return true
	default:
		return false
	}
}
