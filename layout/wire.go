package layout

import "github.com/logiksim/editcircuit/geometry"

// SegmentPointType classifies one endpoint of a segment (spec.md §3.4).
type SegmentPointType int

const (
	SegmentPointInput SegmentPointType = iota
	SegmentPointOutput
	SegmentPointCorner
	SegmentPointCross
	SegmentPointShadow
	SegmentPointNewUnknown
)

func (t SegmentPointType) String() string {
	switch t {
	case SegmentPointInput:
		return "input"
	case SegmentPointOutput:
		return "output"
	case SegmentPointCorner:
		return "corner_point"
	case SegmentPointCross:
		return "cross_point"
	case SegmentPointShadow:
		return "shadow_point"
	default:
		return "new_unknown"
	}
}

// SegmentInfo is the data a segment tree stores per segment: its geometry
// and the classification of each endpoint.
type SegmentInfo struct {
	Line     geometry.OrderedLine
	P0Type   SegmentPointType
	P1Type   SegmentPointType
}

// HasInput reports whether either endpoint of the segment is the tree's
// input (root) connection.
func (s SegmentInfo) HasInput() bool {
	return s.P0Type == SegmentPointInput || s.P1Type == SegmentPointInput
}

// SegmentTree is the set of axis-aligned segments belonging to one wire
// id. Inserted wires must keep it a connected, acyclic tree (spec.md §3.4);
// temporary and colliding wires relax that to "no valid parts, restricted
// point types" and may be a disconnected forest while being edited.
type SegmentTree struct {
	segments []SegmentInfo
	keys     []SegmentKey
}

// NewSegmentTree returns an empty segment tree.
func NewSegmentTree() *SegmentTree {
	return &SegmentTree{}
}

// Size returns the number of segments in the tree.
func (t *SegmentTree) Size() int { return len(t.segments) }

// Empty reports whether the tree has no segments.
func (t *SegmentTree) Empty() bool { return len(t.segments) == 0 }

// Segment returns the segment at index i.
func (t *SegmentTree) Segment(i SegmentIndex) SegmentInfo { return t.segments[i] }

// Key returns the stable key of the segment at index i.
func (t *SegmentTree) Key(i SegmentIndex) SegmentKey { return t.keys[i] }

// SetKey overwrites the stable key of the segment at index i. Used by the
// key index when it allocates or re-roots keys on a swap-delete.
func (t *SegmentTree) SetKey(i SegmentIndex, key SegmentKey) { t.keys[i] = key }

// AddSegment appends a new segment with the given key and returns its
// index.
func (t *SegmentTree) AddSegment(info SegmentInfo, key SegmentKey) SegmentIndex {
	t.segments = append(t.segments, info)
	t.keys = append(t.keys, key)
	return SegmentIndex(len(t.segments) - 1)
}

// UpdateSegment overwrites the geometry/point-types of segment i in place.
// It never changes the segment's key.
func (t *SegmentTree) UpdateSegment(i SegmentIndex, info SegmentInfo) {
	t.segments[i] = info
}

// SwapAndDeleteSegment removes segment i by swapping the last segment into
// its place (O(1)), returning the index that used to be last so the caller
// can emit a SegmentIdUpdated/InsertedSegmentIdUpdated message for it
// (spec.md §4.6 ordering rule). If i was already last, movedFrom == i and
// no rename occurred.
func (t *SegmentTree) SwapAndDeleteSegment(i SegmentIndex) (movedFrom SegmentIndex) {
	last := SegmentIndex(len(t.segments) - 1)
	if i != last {
		t.segments[i] = t.segments[last]
		t.keys[i] = t.keys[last]
	}
	t.segments = t.segments[:last]
	t.keys = t.keys[:last]
	return last
}

// CopySegment appends a copy of segment i (same geometry/point-types, a
// freshly supplied key) and returns its new index. Used when splitting a
// segment: the original is shrunk and a copy carries the remainder.
func (t *SegmentTree) CopySegment(i SegmentIndex, newKey SegmentKey) SegmentIndex {
	return t.AddSegment(t.segments[i], newKey)
}

// ShrinkSegment narrows segment i's line to the given sub-part, measured
// as offsets from the segment's current P0. Point types of the endpoints
// that survive the shrink are preserved; a new endpoint exposed by the
// shrink is typed shadow_point, since a bare shrink cannot know whether
// the new endpoint is an interior cross or a dead end.
func (t *SegmentTree) ShrinkSegment(i SegmentIndex, part geometry.Part) {
	seg := t.segments[i]
	newP0 := seg.Line.PointAt(part.Begin)
	newP1 := seg.Line.PointAt(part.End)

	p0Type, p1Type := seg.P0Type, seg.P1Type
	if part.Begin != 0 {
		p0Type = SegmentPointShadow
	}
	if part.End != seg.Line.Length() {
		p1Type = SegmentPointShadow
	}

	t.segments[i] = SegmentInfo{
		Line:   geometry.OrderedLine{P0: newP0, P1: newP1},
		P0Type: p0Type,
		P1Type: p1Type,
	}
}

// GetPart returns the segment's full length as a Part, used as the
// starting point for selection/deletion ranges.
func (t *SegmentTree) GetPart(i SegmentIndex) geometry.Part {
	return geometry.Part{Begin: 0, End: t.segments[i].Line.Length()}
}

// AllIndices returns every currently-valid segment index, in storage
// order. Callers must not rely on this order surviving a mutation.
func (t *SegmentTree) AllIndices() []SegmentIndex {
	out := make([]SegmentIndex, len(t.segments))
	for i := range t.segments {
		out[i] = SegmentIndex(i)
	}
	return out
}

// InputIndex returns the index of the segment carrying the tree's input
// endpoint, or -1 if none exists (uninserted trees never have one).
func (t *SegmentTree) InputIndex() SegmentIndex {
	for i, s := range t.segments {
		if s.HasInput() {
			return SegmentIndex(i)
		}
	}
	return -1
}
