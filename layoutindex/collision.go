package layoutindex

import "github.com/logiksim/editcircuit/geometry"

// CellTag describes what occupies a grid cell (spec.md §4.2).
type CellTag int

const (
	CellEmpty CellTag = iota
	CellLogicItemBody
	CellDecorationBody
	CellWireEndpoint
	CellWireCrossing
)

type cellOccupant struct {
	tag   CellTag
	count int
}

// CollisionIndex is a hash map from point_t to a small tag describing what
// occupies that grid cell. Wire endpoints and crossings are allowed to
// share a cell with other wires (that is what makes a point a true cross
// point); logic-item and decoration bodies never share a cell with
// anything (spec.md §4.2).
type CollisionIndex struct {
	cells map[geometry.Point]cellOccupant
}

func NewCollisionIndex() *CollisionIndex {
	return &CollisionIndex{cells: make(map[geometry.Point]cellOccupant)}
}

// IsColliding reports whether placing an element of kind tag occupying the
// given cells would collide with anything already present. Bodies collide
// with anything; wire endpoints/crossings only collide with bodies.
func (c *CollisionIndex) IsColliding(cells []geometry.Point, tag CellTag) bool {
	bodyLike := tag == CellLogicItemBody || tag == CellDecorationBody
	for _, p := range cells {
		occ, ok := c.cells[p]
		if !ok || occ.count == 0 {
			continue
		}
		if bodyLike || occ.tag == CellLogicItemBody || occ.tag == CellDecorationBody {
			return true
		}
	}
	return false
}

// Occupy marks cells as occupied by tag, incrementing the reference count
// for cells that already carry a wire tag (so two wires crossing at a
// point both register and both must be removed before the cell clears).
func (c *CollisionIndex) Occupy(cells []geometry.Point, tag CellTag) {
	for _, p := range cells {
		occ := c.cells[p]
		occ.tag = tag
		occ.count++
		c.cells[p] = occ
	}
}

// Vacate reverses Occupy for the same cells/tag.
func (c *CollisionIndex) Vacate(cells []geometry.Point, tag CellTag) {
	for _, p := range cells {
		occ, ok := c.cells[p]
		if !ok {
			continue
		}
		occ.count--
		if occ.count <= 0 {
			delete(c.cells, p)
		} else {
			c.cells[p] = occ
		}
	}
}

// Tag returns the occupant tag at p, or CellEmpty if nothing occupies it.
func (c *CollisionIndex) Tag(p geometry.Point) CellTag {
	occ, ok := c.cells[p]
	if !ok {
		return CellEmpty
	}
	return occ.tag
}

// Count returns how many distinct occupants registered at p (>1 only
// happens for wire crossings).
func (c *CollisionIndex) Count(p geometry.Point) int {
	return c.cells[p].count
}

// LineCells enumerates every grid cell an OrderedLine passes through,
// inclusive of both endpoints — the unit Occupy/Vacate/IsColliding work
// in for wire segments.
func LineCells(l geometry.OrderedLine) []geometry.Point {
	n := int32(l.Length())
	cells := make([]geometry.Point, 0, n+1)
	for o := int32(0); o <= n; o++ {
		cells = append(cells, l.PointAt(geometry.Offset(o)))
	}
	return cells
}

// RectCells enumerates every grid cell inside rect (used for logic item
// and decoration bodies).
func RectCells(r geometry.Rect) []geometry.Point {
	var cells []geometry.Point
	for x := r.P0.X; x <= r.P1.X; x++ {
		for y := r.P0.Y; y <= r.P1.Y; y++ {
			cells = append(cells, geometry.Point{X: x, Y: y})
		}
	}
	return cells
}
