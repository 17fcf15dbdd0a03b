package layoutindex

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
)

// PayloadKind tags what a SpatialIndex entry refers to.
type PayloadKind int

const (
	PayloadLogicItem PayloadKind = iota
	PayloadDecoration
	PayloadSegment
)

// Payload identifies one element (of any kind) stored in the spatial
// index. Exactly one of the three id fields is meaningful, selected by
// Kind — the same discriminated-union-by-field convention the teacher
// uses for cgra.Data's optional fields.
type Payload struct {
	Kind       PayloadKind
	LogicItem  layout.LogicItemID
	Decoration layout.DecorationID
	Segment    layout.Segment
}

func LogicItemPayload(id layout.LogicItemID) Payload {
	return Payload{Kind: PayloadLogicItem, LogicItem: id}
}

func DecorationPayload(id layout.DecorationID) Payload {
	return Payload{Kind: PayloadDecoration, Decoration: id}
}

func SegmentPayload(s layout.Segment) Payload {
	return Payload{Kind: PayloadSegment, Segment: s}
}

// SpatialIndex is an R-tree-like structure keyed on axis-aligned
// rectangles (spec.md §4.2). The pack carries no R-tree library for Go
// (DESIGN.md), so this is a flat slice scanned linearly on Query — correct
// for the sizes an interactively edited schematic reaches, and trivially
// auditable against the class invariant it exists to serve.
type SpatialIndex struct {
	entries []spatialEntry
}

type spatialEntry struct {
	rect    geometry.Rect
	payload Payload
}

// NewSpatialIndex returns an empty index.
func NewSpatialIndex() *SpatialIndex { return &SpatialIndex{} }

// Insert adds payload with bounding rectangle rect.
func (s *SpatialIndex) Insert(rect geometry.Rect, payload Payload) {
	s.entries = append(s.entries, spatialEntry{rect, payload})
}

// Remove deletes the entry matching payload exactly (identity comparison
// over the Payload value, which is comparable). It is a no-op if no such
// entry exists, mirroring Layout's "already gone" tolerance on cleanup
// paths.
func (s *SpatialIndex) Remove(payload Payload) {
	for i, e := range s.entries {
		if e.payload == payload {
			s.entries[i] = s.entries[len(s.entries)-1]
			s.entries = s.entries[:len(s.entries)-1]
			return
		}
	}
}

// Query returns every payload whose bounding rectangle intersects rect.
func (s *SpatialIndex) Query(rect geometry.Rect) []Payload {
	var out []Payload
	for _, e := range s.entries {
		if e.rect.Intersects(rect) {
			out = append(out, e.payload)
		}
	}
	return out
}

// HasElement reports whether any stored rectangle contains the given fine
// point, boundary included, for UI hit-testing. VisibleSelection's
// strict-containment filter uses QueryFullyInside, not this.
func (s *SpatialIndex) HasElement(p geometry.PointFine) bool {
	for _, e := range s.entries {
		r := geometry.RectFine{
			P0: geometry.PointFine{X: float64(e.rect.P0.X), Y: float64(e.rect.P0.Y)},
			P1: geometry.PointFine{X: float64(e.rect.P1.X), Y: float64(e.rect.P1.Y)},
		}
		n := r.Normalized()
		if p.X >= n.P0.X && p.X <= n.P1.X && p.Y >= n.P0.Y && p.Y <= n.P1.Y {
			return true
		}
	}
	return false
}

// RectFor returns the bounding rectangle stored for payload, and whether
// an entry for it exists. Used by VisibleSelection to recover a
// segment's length from its bounding box when materializing a selection.
func (s *SpatialIndex) RectFor(payload Payload) (geometry.Rect, bool) {
	for _, e := range s.entries {
		if e.payload == payload {
			return e.rect, true
		}
	}
	return geometry.Rect{}, false
}

// QueryFullyInside returns every payload whose bounding rectangle lies
// strictly inside rect — the selection semantics VisibleSelection folds
// its add/subtract operations with (spec.md §4.8).
func (s *SpatialIndex) QueryFullyInside(rect geometry.RectFine) []Payload {
	n := rect.Normalized()
	var out []Payload
	for _, e := range s.entries {
		if float64(e.rect.P0.X) > n.P0.X && float64(e.rect.P1.X) < n.P1.X &&
			float64(e.rect.P0.Y) > n.P0.Y && float64(e.rect.P1.Y) < n.P1.Y {
			out = append(out, e.payload)
		}
	}
	return out
}
