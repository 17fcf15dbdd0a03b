// Package layout owns the authoritative circuit data: logic items,
// decorations and wire segment trees. It has no knowledge of indices,
// selections or history — those subsystems observe it through the info
// message bus defined in package message. Layout itself never emits
// messages; the editing package does that after calling into Layout,
// exactly as the teacher's core package keeps Tick (behavior) separate
// from the port/message plumbing around it.
package layout

import (
	"fmt"

	"github.com/logiksim/editcircuit/geometry"
)

// LogicItemID addresses a logic item by its compact, swap-and-pop index.
// Ids are reused after deletion; only LogicItemKey is permanent.
type LogicItemID int32

// NullLogicItemID is returned by operations that fail predictably (spec.md
// §4.1).
const NullLogicItemID LogicItemID = -1

func (id LogicItemID) IsNull() bool { return id == NullLogicItemID }

// DecorationID addresses a decoration the same way LogicItemID addresses a
// logic item.
type DecorationID int32

const NullDecorationID DecorationID = -1

func (id DecorationID) IsNull() bool { return id == NullDecorationID }

// WireID addresses a segment tree. Two well-known ids always exist.
type WireID int32

const (
	TemporaryWireID WireID = -1
	CollidingWireID WireID = -2
	NullWireID      WireID = -3
)

func (id WireID) IsTemporary() bool { return id == TemporaryWireID }
func (id WireID) IsColliding() bool { return id == CollidingWireID }
func (id WireID) IsInserted() bool  { return id >= 0 }

// SegmentIndex addresses one segment inside a wire's segment tree.
type SegmentIndex int32

// Segment names one segment of one wire: the primary currency of wire
// editing together with Part (spec.md §3.4).
type Segment struct {
	Wire  WireID
	Index SegmentIndex
}

// SegmentPart selects a contiguous sub-range of a segment.
type SegmentPart struct {
	Segment Segment
	Part    geometry.Part
}

// LogicItemKey, DecorationKey and SegmentKey are persistent, never-reused
// identifiers (spec.md §3.5). They are plain uint64s allocated by
// layoutindex.KeyIndex; Layout stores them alongside each element purely as
// a convenience lookup, it does not interpret them.
type LogicItemKey uint64
type DecorationKey uint64
type SegmentKey uint64

const (
	NullLogicItemKey  LogicItemKey  = 0
	NullDecorationKey DecorationKey = 0
	NullSegmentKey    SegmentKey    = 0
)

func (id LogicItemID) String() string {
	if id.IsNull() {
		return "LogicItemID(null)"
	}
	return fmt.Sprintf("LogicItemID(%d)", int32(id))
}

func (id DecorationID) String() string {
	if id.IsNull() {
		return "DecorationID(null)"
	}
	return fmt.Sprintf("DecorationID(%d)", int32(id))
}

func (id WireID) String() string {
	switch {
	case id == TemporaryWireID:
		return "WireID(temporary)"
	case id == CollidingWireID:
		return "WireID(colliding)"
	default:
		return fmt.Sprintf("WireID(%d)", int32(id))
	}
}
