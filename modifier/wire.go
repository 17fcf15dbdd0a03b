package modifier

import (
	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/history"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/selection"
)

func (m *Modifier) segmentCreateEntry(key layout.SegmentKey, mode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoSegmentCreateUninserted,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			seg, ok := cd.Index.Keys.SegmentForKey(key)
			if !ok {
				return history.Entry{}
			}
			editing.ChangeWireSegmentInsertionMode(cd, &seg, editing.ModeTemporary, editing.HintNone)
			tree := cd.Layout.SegmentTreeFor(seg.Wire)
			info := tree.Segment(seg.Index)
			editing.DeleteTemporaryWireSegment(cd, &seg)
			return m.segmentDeleteEntry(key, info, mode)
		},
	}
}

func (m *Modifier) segmentDeleteEntry(key layout.SegmentKey, info layout.SegmentInfo, mode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoSegmentDeleteUninserted,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			newSeg := editing.AddWireSegment(cd, info.Line, mode)
			newKey, _ := cd.Index.Keys.KeyForSegment(newSeg)
			return m.segmentCreateEntry(newKey, mode)
		},
	}
}

// AddWireSegment draws a new wire segment, pushing its reverse onto the
// undo stack.
func (m *Modifier) AddWireSegment(line geometry.OrderedLine, mode editing.InsertionMode) layout.Segment {
	seg := editing.AddWireSegment(m.Data, line, mode)
	if seg == (layout.Segment{}) {
		return seg
	}
	key, _ := m.Data.Index.Keys.KeyForSegment(seg)
	m.History.Push(m.segmentCreateEntry(key, mode))
	return seg
}

// DeleteTemporaryWireSegment removes a temporary segment, pushing its
// re-creation onto the undo stack.
func (m *Modifier) DeleteTemporaryWireSegment(seg *layout.Segment) {
	key, _ := m.Data.Index.Keys.KeyForSegment(*seg)
	tree := m.Data.Layout.SegmentTreeFor(seg.Wire)
	info := tree.Segment(seg.Index)
	editing.DeleteTemporaryWireSegment(m.Data, seg)
	m.History.Push(m.segmentDeleteEntry(key, info, editing.ModeTemporary))
}

func (m *Modifier) segmentModeEntry(key layout.SegmentKey, targetMode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoSegmentInsertionMode,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			seg, ok := cd.Index.Keys.SegmentForKey(key)
			if !ok {
				return history.Entry{}
			}
			curMode := segmentModeOf(seg)
			editing.ChangeWireSegmentInsertionMode(cd, &seg, targetMode, editing.HintNone)
			return m.segmentModeEntry(key, curMode)
		},
	}
}

func segmentModeOf(seg layout.Segment) editing.InsertionMode {
	switch {
	case seg.Wire == layout.TemporaryWireID:
		return editing.ModeTemporary
	case seg.Wire == layout.CollidingWireID:
		return editing.ModeCollisions
	default:
		return editing.ModeInsertOrDiscard
	}
}

// ChangeWireSegmentInsertionMode transitions *seg toward newMode, pushing
// the inverse transition onto the undo stack.
func (m *Modifier) ChangeWireSegmentInsertionMode(seg *layout.Segment, newMode editing.InsertionMode) {
	key, _ := m.Data.Index.Keys.KeyForSegment(*seg)
	prevMode := segmentModeOf(*seg)
	editing.ChangeWireSegmentInsertionMode(m.Data, seg, newMode, editing.HintNone)
	m.History.Push(m.segmentModeEntry(key, prevMode))
}

// MoveOrDeleteTemporaryWire translates every segment of a temporary wire
// tree by delta. Undo support for whole-wire moves is coarser than
// per-segment moves (it replays the same delta in reverse across the
// whole tree rather than tracking each segment's key individually),
// which is sufficient since a temporary wire tree is always edited and
// discarded as one unit before insertion (spec.md §4.4).
func (m *Modifier) MoveOrDeleteTemporaryWire(wireID layout.WireID, dx, dy int32) {
	editing.MoveOrDeleteTemporaryWire(m.Data, wireID, dx, dy)
	var moveEntry func(dx, dy int32) history.Entry
	moveEntry = func(dx, dy int32) history.Entry {
		return history.Entry{Type: history.UndoSegmentMove, Apply: func(cd *editing.CircuitData) history.Entry {
			editing.MoveTemporaryWireUnchecked(cd, wireID, dx, dy)
			return moveEntry(-dx, -dy)
		}}
	}
	m.History.Push(moveEntry(-dx, -dy))
}

func (m *Modifier) toggleCrosspointEntry(point geometry.Point) history.Entry {
	return history.Entry{
		Type: history.UndoSegmentSetEndpoints,
		Apply: func(cd *editing.CircuitData) history.Entry {
			editing.ToggleWireCrosspoint(cd, point)
			return m.toggleCrosspointEntry(point)
		},
	}
}

// ToggleWireCrosspoint flips the point type at point between corner and
// cross, pushing a second toggle at the same point as the undo entry.
func (m *Modifier) ToggleWireCrosspoint(point geometry.Point) {
	editing.ToggleWireCrosspoint(m.Data, point)
	m.History.Push(m.toggleCrosspointEntry(point))
}

// MergeUninsertedSegment joins two uninserted segments into one. The
// merge is not separately undoable (History only ever sees its caller's
// higher-level operation, which itself is undoable) — mirroring
// spec.md §4.4's note that merge is an internal primitive used while
// regularizing a crosspoint removal, not a directly user-invoked edit.
func (m *Modifier) MergeUninsertedSegment(a, b layout.Segment) layout.Segment {
	return editing.MergeUninsertedSegment(m.Data, a, b)
}

// RegularizeTemporarySelection merges sel's collinear temporary segments
// and, with trueCrosses set, marks its true crosspoints. Like
// MergeUninsertedSegment this is not separately undoable: it is a
// canonicalization step a caller runs mid-drag, and the caller's own
// higher-level operation is what History records.
func (m *Modifier) RegularizeTemporarySelection(sel *selection.Selection, trueCrosses bool) []geometry.Point {
	return editing.RegularizeTemporarySelection(m.Data, sel, trueCrosses)
}

// SplitTemporarySegments splits sel's temporary segments at splitPoints.
// Not separately undoable, for the same reason RegularizeTemporarySelection
// isn't: it is a pre-insertion canonicalization step, not a user-facing
// edit in its own right.
func (m *Modifier) SplitTemporarySegments(sel *selection.Selection, splitPoints []geometry.Point) {
	editing.SplitTemporarySegments(m.Data, sel, splitPoints)
}
