// Package geometry defines the vocabulary types shared by the editable
// circuit core: grid coordinates, points, axis-aligned lines and
// rectangles, orientations and the four display states of the insertion
// state machine.
package geometry

import "fmt"

// Grid is a discrete location on the grid in one dimension. It mirrors a
// signed 16-bit coordinate; Add saturates instead of wrapping and reports
// whether the result stayed in range, so that an editing operation can
// detect "moved off the representable grid" without a panic. AddUnchecked
// panics when the result is out of range.
type Grid int16

const (
	GridMin Grid = -32768
	GridMax Grid = 32767
)

// Add returns left+right together with whether the result stayed within
// [GridMin, GridMax]. A caller that only wants the saturated value can
// ignore the second return; call sites that must detect unrepresentable
// moves (move_or_delete_* operations, spec.md §4.4) check it.
func (g Grid) Add(delta int32) (Grid, bool) {
	r := int32(g) + delta
	if r < int32(GridMin) || r > int32(GridMax) {
		return saturate(r), false
	}
	return Grid(r), true
}

// AddUnchecked adds delta without checking representability. The caller
// must have already proven the result is representable (spec.md §9,
// "Unrepresentable coordinates").
func (g Grid) AddUnchecked(delta int32) Grid {
	r, ok := g.Add(delta)
	if !ok {
		panic(fmt.Sprintf("geometry: AddUnchecked overflowed grid range: %d + %d", g, delta))
	}
	return r
}

func saturate(v int32) Grid {
	if v < int32(GridMin) {
		return GridMin
	}
	if v > int32(GridMax) {
		return GridMax
	}
	return Grid(v)
}

func (g Grid) String() string { return fmt.Sprintf("%d", int16(g)) }

// Offset is a positive, discrete, 1-d length along a wire segment. It has
// the same width as Grid but is unsigned, matching grid.h's relation to
// offset.h in the original implementation.
type Offset uint16

func (o Offset) String() string { return fmt.Sprintf("%d", uint16(o)) }

// Point is a location on the 2-D grid.
type Point struct {
	X, Y Grid
}

func (p Point) String() string { return fmt.Sprintf("Point(%d, %d)", p.X, p.Y) }

// PointFine is a floating point location, used only by selection brushes
// (rectangles dragged with the mouse do not snap to the grid while being
// dragged).
type PointFine struct {
	X, Y float64
}

// RectFine is an axis-aligned floating point rectangle. P0 is not
// guaranteed to be the top-left corner; use Normalized to get a
// canonical-order rectangle.
type RectFine struct {
	P0, P1 PointFine
}

// Normalized returns a RectFine whose P0 is the lower corner and P1 the
// upper corner on both axes.
func (r RectFine) Normalized() RectFine {
	x0, x1 := r.P0.X, r.P1.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := r.P0.Y, r.P1.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return RectFine{PointFine{x0, y0}, PointFine{x1, y1}}
}

// Contains reports whether point p lies strictly inside the rectangle.
// VisibleSelection uses strict containment: an element must be fully
// inside the drag rectangle to be selected (spec.md §4.8).
func (r RectFine) Contains(p PointFine) bool {
	n := r.Normalized()
	return p.X > n.P0.X && p.X < n.P1.X && p.Y > n.P0.Y && p.Y < n.P1.Y
}

// Rect is an axis-aligned integer rectangle over grid coordinates, used by
// the spatial and collision indices.
type Rect struct {
	P0, P1 Point
}

// Intersects reports whether two grid rectangles overlap (inclusive of
// touching edges, since wire endpoints commonly share a boundary).
func (r Rect) Intersects(o Rect) bool {
	return r.P0.X <= o.P1.X && r.P1.X >= o.P0.X &&
		r.P0.Y <= o.P1.Y && r.P1.Y >= o.P0.Y
}

// OrderedLine is an axis-aligned segment between two points, with p0 < p1
// in the canonical (lexicographic y-then-x, matching the horizontal/
// vertical split used throughout the editing layer) order.
type OrderedLine struct {
	P0, P1 Point
}

// NewOrderedLine builds an OrderedLine from two arbitrary endpoints,
// reordering them into canonical order. It panics if the line is not
// axis-aligned or has zero length — both are invariant violations at every
// call site in this package (spec.md §3.1).
func NewOrderedLine(a, b Point) OrderedLine {
	if a.X != b.X && a.Y != b.Y {
		panic("geometry: line is not axis-aligned")
	}
	if a == b {
		panic("geometry: line has zero length")
	}
	if a.Y > b.Y || (a.Y == b.Y && a.X > b.X) {
		a, b = b, a
	}
	return OrderedLine{a, b}
}

// IsHorizontal reports whether the line runs along the X axis.
func (l OrderedLine) IsHorizontal() bool { return l.P0.Y == l.P1.Y }

// Length returns the line's length as an Offset.
func (l OrderedLine) Length() Offset {
	if l.IsHorizontal() {
		return Offset(int32(l.P1.X) - int32(l.P0.X))
	}
	return Offset(int32(l.P1.Y) - int32(l.P0.Y))
}

// PointAt returns the grid point located offset units from P0 along the
// line.
func (l OrderedLine) PointAt(o Offset) Point {
	if l.IsHorizontal() {
		return Point{X: Grid(int32(l.P0.X) + int32(o)), Y: l.P0.Y}
	}
	return Point{X: l.P0.X, Y: Grid(int32(l.P0.Y) + int32(o))}
}

// BoundingRect returns the (degenerate, zero-area-on-one-axis) bounding
// rectangle of the line.
func (l OrderedLine) BoundingRect() Rect {
	return Rect{l.P0, l.P1}
}

// OffsetOf is PointAt's inverse: it returns the offset along the line at
// which p lies, and whether p actually lies on the line at all.
func (l OrderedLine) OffsetOf(p Point) (Offset, bool) {
	if l.IsHorizontal() {
		if p.Y != l.P0.Y || p.X < l.P0.X || p.X > l.P1.X {
			return 0, false
		}
		return Offset(int32(p.X) - int32(l.P0.X)), true
	}
	if p.X != l.P0.X || p.Y < l.P0.Y || p.Y > l.P1.Y {
		return 0, false
	}
	return Offset(int32(p.Y) - int32(l.P0.Y)), true
}

// Part selects a contiguous sub-range [Begin, End) of a segment's length,
// measured in Offset units from the segment's p0.
type Part struct {
	Begin, End Offset
}

// Empty reports whether the part selects zero length.
func (p Part) Empty() bool { return p.Begin >= p.End }

// Intersects reports whether two parts of the same segment overlap.
func (p Part) Intersects(o Part) bool {
	return p.Begin < o.End && o.Begin < p.End
}

// Orientation is the direction a connector (logic item input/output, or a
// wire endpoint) faces.
type Orientation int

const (
	OrientationRight Orientation = iota
	OrientationLeft
	OrientationUp
	OrientationDown
	OrientationUndirected
)

func (o Orientation) String() string {
	switch o {
	case OrientationRight:
		return "right"
	case OrientationLeft:
		return "left"
	case OrientationUp:
		return "up"
	case OrientationDown:
		return "down"
	case OrientationUndirected:
		return "undirected"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Opposite returns the orientation a wire touching this connector must have
// to be considered compatible (spec.md §3.4, invariant 2).
func (o Orientation) Opposite() Orientation {
	switch o {
	case OrientationRight:
		return OrientationLeft
	case OrientationLeft:
		return OrientationRight
	case OrientationUp:
		return OrientationDown
	case OrientationDown:
		return OrientationUp
	default:
		return OrientationUndirected
	}
}

// DisplayState is the stored counterpart of InsertionMode on a Layout
// element (spec.md §3.1, §4.3).
type DisplayState int

const (
	DisplayTemporary DisplayState = iota
	DisplayColliding
	DisplayValid
	DisplayNormal
)

func (d DisplayState) String() string {
	switch d {
	case DisplayTemporary:
		return "temporary"
	case DisplayColliding:
		return "colliding"
	case DisplayValid:
		return "valid"
	case DisplayNormal:
		return "normal"
	default:
		return fmt.Sprintf("DisplayState(%d)", int(d))
	}
}

// IsInserted reports whether an element in this display state is part of
// the authoritative, non-colliding circuit (valid or normal).
func (d DisplayState) IsInserted() bool {
	return d == DisplayValid || d == DisplayNormal
}

// LineInsertionType picks which axis a two-point wire drag commits first,
// mirroring the original LineInsertionType enum.
type LineInsertionType int

const (
	LineInsertionHorizontalFirst LineInsertionType = iota
	LineInsertionVerticalFirst
)

func (t LineInsertionType) String() string {
	if t == LineInsertionHorizontalFirst {
		return "horizontal_first"
	}
	return "vertical_first"
}
