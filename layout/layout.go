package layout

import "github.com/logiksim/editcircuit/geometry"

// Layout is the authoritative circuit data: logic items and decorations in
// compacting (swap-and-pop) slices, plus one segment tree per wire id.
// Layout never emits info messages and never checks cross-element
// invariants (collision, connection compatibility) — that is the editing
// package's job, driven through the Modifier. Layout only enforces the one
// invariant no other component can check for it: a new element's body must
// be fully representable on the grid (spec.md §4.1).
type Layout struct {
	logicItems  []PlacedLogicItem
	decorations []PlacedDecoration

	wires      map[WireID]*SegmentTree
	nextWireID WireID
}

// NewLayout returns an empty layout with its two reserved wire ids already
// present (spec.md §3.4).
func NewLayout() *Layout {
	l := &Layout{
		wires:      make(map[WireID]*SegmentTree),
		nextWireID: 0,
	}
	l.wires[TemporaryWireID] = NewSegmentTree()
	l.wires[CollidingWireID] = NewSegmentTree()
	return l
}

// --- Logic items ---

// LogicItemCount returns the number of logic items currently stored.
func (l *Layout) LogicItemCount() int { return len(l.logicItems) }

// LogicItem returns the placed logic item at id. The caller must have
// checked id is in range; an out-of-range id is a programmer error
// (invariant_violation, spec.md §7).
func (l *Layout) LogicItem(id LogicItemID) PlacedLogicItem {
	return l.logicItems[id]
}

// SetLogicItem overwrites the stored logic item at id in place (used for
// position/attribute/display-state updates that don't change identity).
func (l *Layout) SetLogicItem(id LogicItemID, item PlacedLogicItem) {
	l.logicItems[id] = item
}

// AddLogicItem appends a new logic item, returning NullLogicItemID if its
// body is not fully representable at position.
func (l *Layout) AddLogicItem(def LogicItemDefinition, position geometry.Point, state geometry.DisplayState, key LogicItemKey) LogicItemID {
	if _, ok := def.BodyRect(position); !ok {
		return NullLogicItemID
	}
	l.logicItems = append(l.logicItems, PlacedLogicItem{
		Definition: def,
		Position:   position,
		State:      state,
		Key:        key,
	})
	return LogicItemID(len(l.logicItems) - 1)
}

// SwapAndDeleteLogicItem removes id by swapping the last logic item into
// its place, returning the id that used to be last (spec.md §4.1). If id
// was already last, lastID == id and no rename occurred.
func (l *Layout) SwapAndDeleteLogicItem(id LogicItemID) (lastID LogicItemID, extracted PlacedLogicItem) {
	last := LogicItemID(len(l.logicItems) - 1)
	extracted = l.logicItems[id]
	if id != last {
		l.logicItems[id] = l.logicItems[last]
	}
	l.logicItems = l.logicItems[:last]
	return last, extracted
}

// --- Decorations ---

func (l *Layout) DecorationCount() int { return len(l.decorations) }

func (l *Layout) Decoration(id DecorationID) PlacedDecoration {
	return l.decorations[id]
}

func (l *Layout) SetDecoration(id DecorationID, dec PlacedDecoration) {
	l.decorations[id] = dec
}

func (l *Layout) AddDecoration(def DecorationDefinition, position geometry.Point, state geometry.DisplayState, key DecorationKey) DecorationID {
	if _, ok := def.BodyRect(position); !ok {
		return NullDecorationID
	}
	l.decorations = append(l.decorations, PlacedDecoration{
		Definition: def,
		Position:   position,
		State:      state,
		Key:        key,
	})
	return DecorationID(len(l.decorations) - 1)
}

func (l *Layout) SwapAndDeleteDecoration(id DecorationID) (lastID DecorationID, extracted PlacedDecoration) {
	last := DecorationID(len(l.decorations) - 1)
	extracted = l.decorations[id]
	if id != last {
		l.decorations[id] = l.decorations[last]
	}
	l.decorations = l.decorations[:last]
	return last, extracted
}

// --- Wires ---

// SegmentTreeFor returns the segment tree for wireID, creating it (for a
// fresh inserted wire id) if it does not exist yet. The two reserved ids
// always exist.
func (l *Layout) SegmentTreeFor(wireID WireID) *SegmentTree {
	t, ok := l.wires[wireID]
	if !ok {
		t = NewSegmentTree()
		l.wires[wireID] = t
	}
	return t
}

// HasWire reports whether wireID currently names a tree (possibly empty).
func (l *Layout) HasWire(wireID WireID) bool {
	_, ok := l.wires[wireID]
	return ok
}

// AllocateWireID reserves and returns the next inserted wire id. The
// caller must populate its segment tree before the id is considered live.
func (l *Layout) AllocateWireID() WireID {
	id := l.nextWireID
	l.nextWireID++
	l.wires[id] = NewSegmentTree()
	return id
}

// DeleteWire removes wireID's tree entirely, used once its last segment is
// deleted (spec.md §4.4). The reserved ids are never deleted.
func (l *Layout) DeleteWire(wireID WireID) {
	if wireID.IsTemporary() || wireID.IsColliding() {
		panic("layout: cannot delete reserved wire id")
	}
	delete(l.wires, wireID)
}

// InsertedWireIDs returns every currently-live inserted wire id (excludes
// the two reserved ids), in unspecified order.
func (l *Layout) InsertedWireIDs() []WireID {
	out := make([]WireID, 0, len(l.wires))
	for id := range l.wires {
		if id.IsInserted() {
			out = append(out, id)
		}
	}
	return out
}

// InsertedWireCount returns the number of live inserted wires.
func (l *Layout) InsertedWireCount() int {
	n := 0
	for id := range l.wires {
		if id.IsInserted() {
			n++
		}
	}
	return n
}
