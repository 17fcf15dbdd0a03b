package editing

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/layoutindex"
	"github.com/logiksim/editcircuit/message"
	"github.com/logiksim/editcircuit/selection"
)

// Wires don't fit the elementHandle abstraction logicitem.go and
// decoration.go share: a wire's "body" is a whole SegmentTree, its
// insertion-mode transitions move segments between the temporary,
// colliding and real wire-id trees rather than flipping a field in
// place, and a single operation can split or merge multiple segments at
// once (spec.md §4.4). The functions below re-derive the same three-mode
// state diagram stepTowardMode implements, but drive it directly against
// layout.Layout's wire trees.

// AddWireSegment appends line to the temporary wire tree as a new
// segment, transitions it toward insertionMode, and returns its final
// location. The returned Segment is zero-valued if the segment was
// discarded (ModeInsertOrDiscard and colliding).
func AddWireSegment(cd *CircuitData, line geometry.OrderedLine, insertionMode InsertionMode) layout.Segment {
	tree := cd.Layout.SegmentTreeFor(layout.TemporaryWireID)
	key := cd.Index.Keys.NewSegmentKey()
	idx := tree.AddSegment(layout.SegmentInfo{
		Line:   line,
		P0Type: layout.SegmentPointShadow,
		P1Type: layout.SegmentPointShadow,
	}, key)
	seg := layout.Segment{Wire: layout.TemporaryWireID, Index: idx}
	cd.Bus.Submit(message.SegmentCreated{Segment: seg, Key: key, Size: line.Length()})

	// At each point visited by the new segment, fold in any other
	// uninserted segment of the same tree that touches it collinearly
	// (spec.md §4.4) before deciding where the combined segment lands.
	seg = mergeAtEachEndpoint(cd, seg)

	final, deleted := changeSegmentInsertionMode(cd, seg, insertionMode, HintNone)
	if deleted {
		return layout.Segment{}
	}
	return final
}

// DeleteTemporaryWireSegment removes a segment that is currently
// temporary (spec.md §4.4). *seg is zeroed on return.
func DeleteTemporaryWireSegment(cd *CircuitData, seg *layout.Segment) {
	if seg.Wire != layout.TemporaryWireID {
		violate("DeleteTemporaryWireSegment", "segment is not temporary")
	}
	deleteSegment(cd, *seg)
	*seg = layout.Segment{}
}

func deleteSegment(cd *CircuitData, seg layout.Segment) {
	tree := cd.Layout.SegmentTreeFor(seg.Wire)
	cd.Index.Keys.UnregisterSegment(seg)
	movedFrom := tree.SwapAndDeleteSegment(seg.Index)
	cd.Bus.Submit(message.SegmentPartDeleted{SegmentPart: layout.SegmentPart{Segment: seg, Part: geometry.Part{Begin: 0}}})
	if movedFrom != seg.Index {
		moved := layout.Segment{Wire: seg.Wire, Index: movedFrom}
		cd.Bus.Submit(message.SegmentIDUpdated{NewSegment: seg, OldSegment: moved})
	}
}

// MoveTemporaryWireUnchecked translates every segment of a temporary or
// colliding wire tree by delta without checking representability.
func MoveTemporaryWireUnchecked(cd *CircuitData, wireID layout.WireID, dx, dy int32) {
	if wireID != layout.TemporaryWireID && wireID != layout.CollidingWireID {
		violate("MoveTemporaryWireUnchecked", "wire is not temporary or colliding")
	}
	tree := cd.Layout.SegmentTreeFor(wireID)
	for _, idx := range tree.AllIndices() {
		info := tree.Segment(idx)
		info.Line = geometry.OrderedLine{
			P0: geometry.Point{X: info.Line.P0.X.AddUnchecked(dx), Y: info.Line.P0.Y.AddUnchecked(dy)},
			P1: geometry.Point{X: info.Line.P1.X.AddUnchecked(dx), Y: info.Line.P1.Y.AddUnchecked(dy)},
		}
		tree.UpdateSegment(idx, info)
	}
}

// MoveOrDeleteTemporaryWire translates every segment of a temporary wire
// tree by delta, discarding any segment whose destination is not
// representable (spec.md §4.4, §8 scenario 3).
func MoveOrDeleteTemporaryWire(cd *CircuitData, wireID layout.WireID, dx, dy int32) {
	if wireID != layout.TemporaryWireID {
		violate("MoveOrDeleteTemporaryWire", "wire is not temporary")
	}
	tree := cd.Layout.SegmentTreeFor(wireID)
	// Walk from the back: deleteSegment swaps the last segment into the
	// deleted slot, which is then one that has already been visited.
	indices := tree.AllIndices()
	for i := len(indices) - 1; i >= 0; i-- {
		idx := indices[i]
		info := tree.Segment(idx)
		x0, ok0 := info.Line.P0.X.Add(dx)
		y0, ok1 := info.Line.P0.Y.Add(dy)
		x1, ok2 := info.Line.P1.X.Add(dx)
		y1, ok3 := info.Line.P1.Y.Add(dy)
		if !ok0 || !ok1 || !ok2 || !ok3 {
			deleteSegment(cd, layout.Segment{Wire: wireID, Index: idx})
			continue
		}
		info.Line = geometry.OrderedLine{P0: geometry.Point{X: x0, Y: y0}, P1: geometry.Point{X: x1, Y: y1}}
		tree.UpdateSegment(idx, info)
	}
}

// ChangeWireSegmentInsertionMode transitions *seg toward newMode. *seg is
// updated to the segment's new location (it may move to a different wire
// id's tree), or zeroed if it was discarded.
func ChangeWireSegmentInsertionMode(cd *CircuitData, seg *layout.Segment, newMode InsertionMode, hint Hint) {
	final, deleted := changeSegmentInsertionMode(cd, *seg, newMode, hint)
	if deleted {
		*seg = layout.Segment{}
		return
	}
	*seg = final
}

func segmentState(seg layout.Segment) geometry.DisplayState {
	switch {
	case seg.Wire == layout.TemporaryWireID:
		return geometry.DisplayTemporary
	case seg.Wire == layout.CollidingWireID:
		return geometry.DisplayColliding
	default:
		return geometry.DisplayNormal
	}
}

func segmentColliding(cd *CircuitData, seg layout.Segment, hint Hint) bool {
	switch hint {
	case HintExpectValid:
		return false
	case HintAssumeColliding:
		return true
	}
	info := cd.Layout.SegmentTreeFor(seg.Wire).Segment(seg.Index)
	return cd.Index.Collision.IsColliding(layoutindex.LineCells(info.Line), layoutindex.CellWireCrossing)
}

// moveSegmentToTree relocates the segment at seg into dstWireID's tree,
// emitting the SegmentIdUpdated messages both trees owe the KeyIndex
// (spec.md §4.6's rename-on-swap rule applies to the vacated slot too).
func moveSegmentToTree(cd *CircuitData, seg layout.Segment, dstWireID layout.WireID) layout.Segment {
	srcTree := cd.Layout.SegmentTreeFor(seg.Wire)
	info := srcTree.Segment(seg.Index)
	key := srcTree.Key(seg.Index)

	dstTree := cd.Layout.SegmentTreeFor(dstWireID)
	newIdx := dstTree.AddSegment(info, key)
	newSeg := layout.Segment{Wire: dstWireID, Index: newIdx}
	cd.Index.Keys.RenameSegment(newSeg, seg)
	cd.Bus.Submit(message.SegmentIDUpdated{NewSegment: newSeg, OldSegment: seg})

	movedFrom := srcTree.SwapAndDeleteSegment(seg.Index)
	if movedFrom != seg.Index {
		vacated := layout.Segment{Wire: seg.Wire, Index: movedFrom}
		cd.Bus.Submit(message.SegmentIDUpdated{NewSegment: seg, OldSegment: vacated})
	}

	return newSeg
}

func changeSegmentInsertionMode(cd *CircuitData, seg layout.Segment, target InsertionMode, hint Hint) (final layout.Segment, deleted bool) {
	for {
		cur := segmentState(seg)

		switch target {
		case ModeTemporary:
			switch cur {
			case geometry.DisplayNormal:
				cd.Bus.Submit(message.SegmentUninserted{Segment: seg, Data: cd.Layout.SegmentTreeFor(seg.Wire).Segment(seg.Index)})
				seg = moveSegmentToTree(cd, seg, layout.TemporaryWireID)
			case geometry.DisplayColliding:
				seg = moveSegmentToTree(cd, seg, layout.TemporaryWireID)
			}
			return seg, false

		case ModeCollisions:
			switch cur {
			case geometry.DisplayTemporary:
				if segmentColliding(cd, seg, hint) {
					seg = moveSegmentToTree(cd, seg, layout.CollidingWireID)
				} else {
					wireID := cd.Layout.AllocateWireID()
					seg = moveSegmentToTree(cd, seg, wireID)
					cd.Bus.Submit(message.SegmentInserted{Segment: seg, Data: cd.Layout.SegmentTreeFor(seg.Wire).Segment(seg.Index)})
				}
			}
			return seg, false

		case ModeInsertOrDiscard:
			switch cur {
			case geometry.DisplayNormal:
				return seg, false
			case geometry.DisplayColliding:
				deleteSegment(cd, seg)
				return layout.Segment{}, true
			case geometry.DisplayTemporary:
				if segmentColliding(cd, seg, hint) {
					seg = moveSegmentToTree(cd, seg, layout.CollidingWireID)
					continue
				}
				wireID := cd.Layout.AllocateWireID()
				seg = moveSegmentToTree(cd, seg, wireID)
				cd.Bus.Submit(message.SegmentInserted{Segment: seg, Data: cd.Layout.SegmentTreeFor(seg.Wire).Segment(seg.Index)})
				continue
			}
		}
	}
}

// ToggleWireCrosspoint flips the point type of an inserted wire endpoint
// located at point between corner_point and cross_point, the two types a
// user can toggle directly (spec.md §4.5; input/output/shadow points are
// never user-toggleable).
func ToggleWireCrosspoint(cd *CircuitData, point geometry.Point) {
	for _, ref := range cd.Index.Connection.EndpointsAt(point) {
		tree := cd.Layout.SegmentTreeFor(ref.Segment.Wire)
		info := tree.Segment(ref.Segment.Index)

		current := info.P0Type
		if ref.AtP1 {
			current = info.P1Type
		}
		// Only corner_point/cross_point are user-toggleable; an endpoint
		// that is already input/output/shadow is left untouched (spec.md
		// §9's open question on this case — treated as a no-op).
		if current != layout.SegmentPointCorner && current != layout.SegmentPointCross {
			continue
		}

		oldTypes := [2]layout.SegmentPointType{info.P0Type, info.P1Type}
		if ref.AtP1 {
			info.P1Type = toggleCrosspointType(info.P1Type)
		} else {
			info.P0Type = toggleCrosspointType(info.P0Type)
		}
		tree.UpdateSegment(ref.Segment.Index, info)
		newTypes := [2]layout.SegmentPointType{info.P0Type, info.P1Type}
		cd.Bus.Submit(message.InsertedEndPointsUpdated{Segment: ref.Segment, OldEndpoints: oldTypes, NewEndpoints: newTypes})
		return
	}
}

func toggleCrosspointType(t layout.SegmentPointType) layout.SegmentPointType {
	if t == layout.SegmentPointCross {
		return layout.SegmentPointCorner
	}
	return layout.SegmentPointCross
}

// SetTemporaryEndpointTypes overwrites the point-type classification of
// both ends of a temporary or colliding segment, used while the
// construction tool is still deciding how a drawn line connects to its
// neighbors (spec.md §4.4).
func SetTemporaryEndpointTypes(cd *CircuitData, seg layout.Segment, p0Type, p1Type layout.SegmentPointType) {
	if seg.Wire != layout.TemporaryWireID && seg.Wire != layout.CollidingWireID {
		violate("SetTemporaryEndpointTypes", "segment is not temporary or colliding")
	}
	tree := cd.Layout.SegmentTreeFor(seg.Wire)
	info := tree.Segment(seg.Index)
	info.P0Type, info.P1Type = p0Type, p1Type
	tree.UpdateSegment(seg.Index, info)
}

// MergeUninsertedSegment joins two collinear, touching segments of the
// same uninserted wire tree into one, deleting b and extending a to cover
// the combined span (spec.md §4.4's segment-merge primitive, used after a
// crosspoint is removed and its two half-segments become one line again).
func MergeUninsertedSegment(cd *CircuitData, a, b layout.Segment) layout.Segment {
	if a.Wire != b.Wire {
		violate("MergeUninsertedSegment", "segments belong to different wires")
	}
	if a.Wire != layout.TemporaryWireID && a.Wire != layout.CollidingWireID {
		violate("MergeUninsertedSegment", "segments are not uninserted")
	}
	tree := cd.Layout.SegmentTreeFor(a.Wire)
	infoA := tree.Segment(a.Index)
	infoB := tree.Segment(b.Index)

	merged := fixAndMergeSegments(infoA, infoB)
	tree.UpdateSegment(a.Index, merged)
	deleteSegment(cd, b)
	return a
}

// fixAndMergeSegments combines two collinear segments sharing an endpoint
// into one spanning both. Each outer endpoint keeps the classification it
// had in whichever input segment it came from (spec.md §4.4).
func fixAndMergeSegments(a, b layout.SegmentInfo) layout.SegmentInfo {
	points := []geometry.Point{a.Line.P0, a.Line.P1, b.Line.P0, b.Line.P1}
	line := geometry.NewOrderedLine(minPoint(points), maxPoint(points))

	p0Type := a.P0Type
	if a.Line.P0 != line.P0 {
		p0Type = b.P0Type
		if b.Line.P0 != line.P0 {
			p0Type = b.P1Type
		}
	}
	p1Type := a.P1Type
	if a.Line.P1 != line.P1 {
		p1Type = b.P1Type
		if b.Line.P1 != line.P1 {
			p1Type = b.P0Type
		}
	}
	return layout.SegmentInfo{Line: line, P0Type: p0Type, P1Type: p1Type}
}

// sharedCollinearEndpoint reports the point at which a and b touch
// end-to-end along the same line, if any — the precondition
// fixAndMergeSegments assumes of its two arguments.
func sharedCollinearEndpoint(a, b geometry.OrderedLine) (geometry.Point, bool) {
	if a.IsHorizontal() != b.IsHorizontal() {
		return geometry.Point{}, false
	}
	if a.IsHorizontal() && a.P0.Y != b.P0.Y {
		return geometry.Point{}, false
	}
	if !a.IsHorizontal() && a.P0.X != b.P0.X {
		return geometry.Point{}, false
	}
	switch {
	case a.P0 == b.P1:
		return a.P0, true
	case a.P1 == b.P0:
		return a.P1, true
	}
	return geometry.Point{}, false
}

// collinearPartner finds another segment of seg's own wire tree that
// touches seg end-to-end along the same line, if any.
func collinearPartner(cd *CircuitData, seg layout.Segment) (layout.Segment, bool) {
	tree := cd.Layout.SegmentTreeFor(seg.Wire)
	line := tree.Segment(seg.Index).Line
	for _, idx := range tree.AllIndices() {
		if idx == seg.Index {
			continue
		}
		if _, ok := sharedCollinearEndpoint(line, tree.Segment(idx).Line); ok {
			return layout.Segment{Wire: seg.Wire, Index: idx}, true
		}
	}
	return layout.Segment{}, false
}

// mergeAtEachEndpoint repeatedly folds seg's collinear neighbors into it
// until none remain, implementing add_wire_segment's "at each point
// visited by the new segment, call fix_and_merge_segments" step
// (spec.md §4.4).
func mergeAtEachEndpoint(cd *CircuitData, seg layout.Segment) layout.Segment {
	for {
		other, ok := collinearPartner(cd, seg)
		if !ok {
			return seg
		}
		// MergeUninsertedSegment's own swap-and-delete of the losing
		// segment can relocate the survivor to a different index (if it
		// happened to occupy the tree's last slot), so re-resolve seg by
		// key afterward rather than trusting the index we called with.
		key, _ := cd.Index.Keys.KeyForSegment(seg)
		MergeUninsertedSegment(cd, seg, other)
		seg, _ = cd.Index.Keys.SegmentForKey(key)
	}
}

// selectSegmentFully replaces sel's recorded selection of seg with its
// entire current span.
func selectSegmentFully(cd *CircuitData, sel *selection.Selection, seg layout.Segment) {
	clearSegmentSelection(sel, seg)
	length := cd.Layout.SegmentTreeFor(seg.Wire).Segment(seg.Index).Line.Length()
	sel.AddSegmentPart(seg, geometry.Part{Begin: 0, End: length})
}

func clearSegmentSelection(sel *selection.Selection, seg layout.Segment) {
	for _, part := range append([]geometry.Part(nil), sel.SegmentParts(seg)...) {
		sel.RemoveSegmentPart(seg, part)
	}
}

// RegularizeTemporarySelection merges every pair of sel's temporary
// segments that touch collinearly, end to end, at a point where exactly
// the two of them meet, repeating to a fixpoint so a just-moved selection
// ends up as few segments as the geometry allows (spec.md §4.4). A point
// where three or more selected segments meet is never merged across —
// that's a true crosspoint, not a straight run, and merging through it
// would erase the branch. It is idempotent: once no two selected segments
// share a plain collinear endpoint, re-running it finds nothing to merge.
// When trueCrosses is set, every such ≥3-way point is additionally marked
// cross_point on every endpoint that touches it (input/output endpoints
// are left alone, as in ToggleWireCrosspoint). Returns every point found
// to be a true crosspoint.
func RegularizeTemporarySelection(cd *CircuitData, sel *selection.Selection, trueCrosses bool) []geometry.Point {
	for {
		segs := sel.Segments()
		merged := false
		for i, a := range segs {
			if a.Wire != layout.TemporaryWireID {
				continue
			}
			lineA := cd.Layout.SegmentTreeFor(a.Wire).Segment(a.Index).Line
			for _, b := range segs[i+1:] {
				if b.Wire != a.Wire {
					continue
				}
				point, ok := sharedCollinearEndpoint(lineA, cd.Layout.SegmentTreeFor(b.Wire).Segment(b.Index).Line)
				if !ok || pointDegree(cd, sel, point) != 2 {
					continue
				}
				// As in mergeAtEachEndpoint, re-resolve the survivor by
				// key: MergeUninsertedSegment's swap-and-delete of b can
				// relocate a to a different index.
				key, _ := cd.Index.Keys.KeyForSegment(a)
				MergeUninsertedSegment(cd, a, b)
				survivor, _ := cd.Index.Keys.SegmentForKey(key)
				clearSegmentSelection(sel, b)
				selectSegmentFully(cd, sel, survivor)
				merged = true
				break
			}
			if merged {
				break
			}
		}
		if !merged {
			break
		}
	}

	if !trueCrosses {
		return nil
	}
	return markTrueCrosspoints(cd, sel)
}

// pointDegree counts how many of sel's temporary segment endpoints touch
// point.
func pointDegree(cd *CircuitData, sel *selection.Selection, point geometry.Point) int {
	n := 0
	for _, seg := range sel.Segments() {
		if seg.Wire != layout.TemporaryWireID {
			continue
		}
		line := cd.Layout.SegmentTreeFor(seg.Wire).Segment(seg.Index).Line
		if line.P0 == point {
			n++
		}
		if line.P1 == point {
			n++
		}
	}
	return n
}

// markTrueCrosspoints finds every point where three or more of sel's
// temporary segments meet and marks it cross_point on each endpoint that
// touches it, skipping input/output endpoints (spec.md §4.4, §4.5).
func markTrueCrosspoints(cd *CircuitData, sel *selection.Selection) []geometry.Point {
	segs := sel.Segments()
	degree := make(map[geometry.Point]int)
	for _, seg := range segs {
		if seg.Wire != layout.TemporaryWireID {
			continue
		}
		line := cd.Layout.SegmentTreeFor(seg.Wire).Segment(seg.Index).Line
		degree[line.P0]++
		degree[line.P1]++
	}

	var crosses []geometry.Point
	for point, n := range degree {
		if n < 3 {
			continue
		}
		crosses = append(crosses, point)
		for _, seg := range segs {
			if seg.Wire != layout.TemporaryWireID {
				continue
			}
			tree := cd.Layout.SegmentTreeFor(seg.Wire)
			info := tree.Segment(seg.Index)
			changed := false
			if info.Line.P0 == point && info.P0Type != layout.SegmentPointInput && info.P0Type != layout.SegmentPointOutput {
				info.P0Type = layout.SegmentPointCross
				changed = true
			}
			if info.Line.P1 == point && info.P1Type != layout.SegmentPointInput && info.P1Type != layout.SegmentPointOutput {
				info.P1Type = layout.SegmentPointCross
				changed = true
			}
			if changed {
				tree.UpdateSegment(seg.Index, info)
			}
		}
	}
	return crosses
}

// SplitTemporarySegments splits every temporary segment sel selects at
// each point in splitPoints that falls strictly inside that segment,
// keeping both halves in sel (spec.md §4.4). Re-inserting a moved
// selection runs this first so the selection doesn't end up geometrically
// conflicting with an inserted wire endpoint or another selection element
// it doesn't own.
func SplitTemporarySegments(cd *CircuitData, sel *selection.Selection, splitPoints []geometry.Point) {
	for _, point := range splitPoints {
		for _, seg := range sel.Segments() {
			if seg.Wire != layout.TemporaryWireID {
				continue
			}
			splitSegmentAt(cd, sel, seg, point)
		}
	}
}

// splitSegmentAt splits seg into two segments at point if point lies
// strictly inside seg's line, re-keying the remainder the same way a
// freshly drawn segment is (mirrors SegmentTree.CopySegment's documented
// split pattern: shrink the original, let the copy carry the remainder).
func splitSegmentAt(cd *CircuitData, sel *selection.Selection, seg layout.Segment, point geometry.Point) {
	tree := cd.Layout.SegmentTreeFor(seg.Wire)
	info := tree.Segment(seg.Index)
	offset, onLine := info.Line.OffsetOf(point)
	if !onLine || offset == 0 || offset == info.Line.Length() {
		return
	}
	full := info.Line.Length()

	key := cd.Index.Keys.NewSegmentKey()
	newIdx := tree.CopySegment(seg.Index, key)
	newSeg := layout.Segment{Wire: seg.Wire, Index: newIdx}

	tree.ShrinkSegment(seg.Index, geometry.Part{Begin: 0, End: offset})
	tree.ShrinkSegment(newIdx, geometry.Part{Begin: offset, End: full})
	cd.Bus.Submit(message.SegmentCreated{Segment: newSeg, Key: key, Size: tree.Segment(newIdx).Line.Length()})

	if parts := append([]geometry.Part(nil), sel.SegmentParts(seg)...); len(parts) > 0 {
		clearSegmentSelection(sel, seg)
		sel.AddSegmentPart(seg, geometry.Part{Begin: 0, End: offset})
		sel.AddSegmentPart(newSeg, geometry.Part{Begin: 0, End: full - offset})
	}
}

func minPoint(points []geometry.Point) geometry.Point {
	m := points[0]
	for _, p := range points[1:] {
		if p.Y < m.Y || (p.Y == m.Y && p.X < m.X) {
			m = p
		}
	}
	return m
}

func maxPoint(points []geometry.Point) geometry.Point {
	m := points[0]
	for _, p := range points[1:] {
		if p.Y > m.Y || (p.Y == m.Y && p.X > m.X) {
			m = p
		}
	}
	return m
}
