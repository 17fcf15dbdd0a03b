// Package selection implements named, live-updating sets of circuit
// elements. A Selection receives every info message the editing package
// emits and self-updates in place: a rename rewrites the id it holds, a
// segment part move rewrites the recorded part, a delete drops the
// element — exactly the message.Observer contract layoutindex.Index
// implements, applied here to a much smaller piece of state (spec.md
// §4.7).
package selection

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/message"
)

// ID identifies one Selection within a Store.
type ID uint64

// Selection is an unordered set of logic item ids, decoration ids, and a
// map from wire segment to the (possibly multiple) parts of that segment
// that are selected.
type Selection struct {
	logicItems  map[layout.LogicItemID]struct{}
	decorations map[layout.DecorationID]struct{}
	segments    map[layout.Segment][]geometry.Part
}

// New returns an empty Selection.
func New() *Selection {
	return &Selection{
		logicItems:  make(map[layout.LogicItemID]struct{}),
		decorations: make(map[layout.DecorationID]struct{}),
		segments:    make(map[layout.Segment][]geometry.Part),
	}
}

// AddLogicItem adds id to the selection.
func (s *Selection) AddLogicItem(id layout.LogicItemID) { s.logicItems[id] = struct{}{} }

// RemoveLogicItem removes id from the selection, if present.
func (s *Selection) RemoveLogicItem(id layout.LogicItemID) { delete(s.logicItems, id) }

// HasLogicItem reports whether id is selected.
func (s *Selection) HasLogicItem(id layout.LogicItemID) bool {
	_, ok := s.logicItems[id]
	return ok
}

// LogicItems returns every selected logic item id, in unspecified order.
func (s *Selection) LogicItems() []layout.LogicItemID {
	out := make([]layout.LogicItemID, 0, len(s.logicItems))
	for id := range s.logicItems {
		out = append(out, id)
	}
	return out
}

// AddDecoration adds id to the selection.
func (s *Selection) AddDecoration(id layout.DecorationID) { s.decorations[id] = struct{}{} }

// RemoveDecoration removes id from the selection, if present.
func (s *Selection) RemoveDecoration(id layout.DecorationID) { delete(s.decorations, id) }

// HasDecoration reports whether id is selected.
func (s *Selection) HasDecoration(id layout.DecorationID) bool {
	_, ok := s.decorations[id]
	return ok
}

// Decorations returns every selected decoration id, in unspecified order.
func (s *Selection) Decorations() []layout.DecorationID {
	out := make([]layout.DecorationID, 0, len(s.decorations))
	for id := range s.decorations {
		out = append(out, id)
	}
	return out
}

// AddSegmentPart records part of seg as selected, merging with any
// already-recorded parts of the same segment that it overlaps or abuts.
func (s *Selection) AddSegmentPart(seg layout.Segment, part geometry.Part) {
	s.segments[seg] = mergeParts(append(s.segments[seg], part))
}

// RemoveSegmentPart removes part from seg's recorded selection, splitting
// an existing part if part falls strictly inside it.
func (s *Selection) RemoveSegmentPart(seg layout.Segment, part geometry.Part) {
	parts := s.segments[seg]
	var out []geometry.Part
	for _, p := range parts {
		out = append(out, subtractPart(p, part)...)
	}
	if len(out) == 0 {
		delete(s.segments, seg)
	} else {
		s.segments[seg] = out
	}
}

// SegmentParts returns the selected parts of seg, or nil if none.
func (s *Selection) SegmentParts(seg layout.Segment) []geometry.Part {
	return s.segments[seg]
}

// Segments returns every segment with at least one selected part.
func (s *Selection) Segments() []layout.Segment {
	out := make([]layout.Segment, 0, len(s.segments))
	for seg := range s.segments {
		out = append(out, seg)
	}
	return out
}

// Empty reports whether the selection holds nothing at all.
func (s *Selection) Empty() bool {
	return len(s.logicItems) == 0 && len(s.decorations) == 0 && len(s.segments) == 0
}

// Clear empties the selection in place.
func (s *Selection) Clear() {
	s.logicItems = make(map[layout.LogicItemID]struct{})
	s.decorations = make(map[layout.DecorationID]struct{})
	s.segments = make(map[layout.Segment][]geometry.Part)
}

// Submit implements message.Observer: a rename rewrites the held id/key
// without changing membership; a delete drops the element; a segment
// part move/delete rewrites the recorded parts (spec.md §4.7).
func (s *Selection) Submit(m message.Message) {
	switch msg := m.(type) {

	case message.LogicItemIDUpdated:
		if s.HasLogicItem(msg.OldID) {
			delete(s.logicItems, msg.OldID)
			s.logicItems[msg.NewID] = struct{}{}
		}
	case message.LogicItemDeleted:
		delete(s.logicItems, msg.ID)
	case message.InsertedLogicItemIDUpdated:
		if s.HasLogicItem(msg.OldID) {
			delete(s.logicItems, msg.OldID)
			s.logicItems[msg.NewID] = struct{}{}
		}

	case message.DecorationIDUpdated:
		if s.HasDecoration(msg.OldID) {
			delete(s.decorations, msg.OldID)
			s.decorations[msg.NewID] = struct{}{}
		}
	case message.DecorationDeleted:
		delete(s.decorations, msg.ID)
	case message.InsertedDecorationIDUpdated:
		if s.HasDecoration(msg.OldID) {
			delete(s.decorations, msg.OldID)
			s.decorations[msg.NewID] = struct{}{}
		}

	case message.SegmentIDUpdated:
		if parts, ok := s.segments[msg.OldSegment]; ok {
			delete(s.segments, msg.OldSegment)
			s.segments[msg.NewSegment] = parts
		}
	case message.InsertedSegmentIDUpdated:
		if parts, ok := s.segments[msg.OldSegment]; ok {
			delete(s.segments, msg.OldSegment)
			s.segments[msg.NewSegment] = parts
		}
	case message.SegmentPartMoved:
		s.RemoveSegmentPart(msg.Source.Segment, msg.Source.Part)
		s.AddSegmentPart(msg.Destination.Segment, msg.Destination.Part)
	case message.SegmentPartDeleted:
		s.RemoveSegmentPart(msg.SegmentPart.Segment, msg.SegmentPart.Part)
	}
}

func mergeParts(parts []geometry.Part) []geometry.Part {
	if len(parts) < 2 {
		return parts
	}
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			if parts[i].Intersects(parts[j]) || adjacent(parts[i], parts[j]) {
				parts[i] = union(parts[i], parts[j])
				parts = append(parts[:j], parts[j+1:]...)
				j = i
			}
		}
	}
	return parts
}

func adjacent(a, b geometry.Part) bool {
	return a.End == b.Begin || b.End == a.Begin
}

func union(a, b geometry.Part) geometry.Part {
	begin, end := a.Begin, a.End
	if b.Begin < begin {
		begin = b.Begin
	}
	if b.End > end {
		end = b.End
	}
	return geometry.Part{Begin: begin, End: end}
}

func subtractPart(p, remove geometry.Part) []geometry.Part {
	if !p.Intersects(remove) {
		return []geometry.Part{p}
	}
	var out []geometry.Part
	if p.Begin < remove.Begin {
		out = append(out, geometry.Part{Begin: p.Begin, End: remove.Begin})
	}
	if p.End > remove.End {
		out = append(out, geometry.Part{Begin: remove.End, End: p.End})
	}
	return out
}
