// Package visibleselection implements the UI-facing selection: a base
// selection.Selection plus a queue of pending add/subtract rectangle
// operations, materialized on demand against a layoutindex.Index (spec.md
// §3.6, §4.8). Queuing rather than eagerly applying operations is what
// lets a drag rectangle update live without re-querying history for every
// pixel of mouse movement.
package visibleselection

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/layoutindex"
	"github.com/logiksim/editcircuit/selection"
)

// Function is the set operation a pending rectangle applies.
type Function int

const (
	FunctionAdd Function = iota
	FunctionSubtract
)

// Operation is one queued rectangle operation.
type Operation struct {
	Function Function
	Rect     geometry.RectFine
}

// VisibleSelection wraps a base selection.Selection with the queue of
// pending operations spec.md §4.8 describes. The base selection self-
// updates from messages like any other selection.Selection; the queued
// operations are re-applied from scratch every time the realized
// selection is requested, which keeps a live drag rectangle correct
// across arbitrary intervening edits without needing to replay them.
type VisibleSelection struct {
	base *selection.Selection
	ops  []Operation
}

// New wraps base (already registered on the message bus by its owner) as
// a fresh VisibleSelection with no pending operations.
func New(base *selection.Selection) *VisibleSelection {
	return &VisibleSelection{base: base}
}

// Base returns the underlying base selection.
func (v *VisibleSelection) Base() *selection.Selection { return v.base }

// AddOperation queues a new add/subtract rectangle operation.
func (v *VisibleSelection) AddOperation(op Operation) {
	v.ops = append(v.ops, op)
}

// PopLastOperation discards the most recently queued operation, if any.
func (v *VisibleSelection) PopLastOperation() {
	if len(v.ops) == 0 {
		return
	}
	v.ops = v.ops[:len(v.ops)-1]
}

// UpdateLastOperation replaces the most recently queued operation's rect
// — the live-drag-rectangle path. It does nothing if no operation is
// pending.
func (v *VisibleSelection) UpdateLastOperation(rect geometry.RectFine) {
	if len(v.ops) == 0 {
		return
	}
	v.ops[len(v.ops)-1].Rect = rect
}

// Clear empties both the base selection and the pending operation queue.
func (v *VisibleSelection) Clear() {
	v.base.Clear()
	v.ops = nil
}

// SetSelection replaces the base selection's contents with sel's and
// drops any pending operations.
func (v *VisibleSelection) SetSelection(sel *selection.Selection) {
	v.base.Clear()
	for _, id := range sel.LogicItems() {
		v.base.AddLogicItem(id)
	}
	for _, id := range sel.Decorations() {
		v.base.AddDecoration(id)
	}
	for _, seg := range sel.Segments() {
		for _, part := range sel.SegmentParts(seg) {
			v.base.AddSegmentPart(seg, part)
		}
	}
	v.ops = nil
}

// Apply materializes the realized selection: starting from the base
// selection, each queued operation queries idx.Spatial for candidates
// inside its rect and keeps only elements strictly contained by it
// (spec.md §4.8 step 2), then adds or subtracts them.
func (v *VisibleSelection) Apply(idx *layoutindex.Index) *selection.Selection {
	result := selection.New()
	for _, id := range v.base.LogicItems() {
		result.AddLogicItem(id)
	}
	for _, id := range v.base.Decorations() {
		result.AddDecoration(id)
	}
	for _, seg := range v.base.Segments() {
		for _, part := range v.base.SegmentParts(seg) {
			result.AddSegmentPart(seg, part)
		}
	}

	for _, op := range v.ops {
		candidates := idx.Spatial.QueryFullyInside(op.Rect.Normalized())
		for _, payload := range candidates {
			applyCandidate(result, op.Function, payload, op.Rect, idx)
		}
	}
	return result
}

func applyCandidate(result *selection.Selection, fn Function, payload layoutindex.Payload, rect geometry.RectFine, idx *layoutindex.Index) {
	switch payload.Kind {
	case layoutindex.PayloadLogicItem:
		if fn == FunctionAdd {
			result.AddLogicItem(payload.LogicItem)
		} else {
			result.RemoveLogicItem(payload.LogicItem)
		}
	case layoutindex.PayloadDecoration:
		if fn == FunctionAdd {
			result.AddDecoration(payload.Decoration)
		} else {
			result.RemoveDecoration(payload.Decoration)
		}
	case layoutindex.PayloadSegment:
		full := geometry.Part{Begin: 0, End: segmentLength(payload.Segment, idx)}
		if fn == FunctionAdd {
			result.AddSegmentPart(payload.Segment, full)
		} else {
			result.RemoveSegmentPart(payload.Segment, full)
		}
	}
}

func segmentLength(seg layout.Segment, idx *layoutindex.Index) geometry.Offset {
	rect, ok := idx.Spatial.RectFor(layoutindex.SegmentPayload(seg))
	if !ok {
		return 0
	}
	dx := int32(rect.P1.X) - int32(rect.P0.X)
	dy := int32(rect.P1.Y) - int32(rect.P0.Y)
	if dx > dy {
		return geometry.Offset(dx)
	}
	return geometry.Offset(dy)
}
