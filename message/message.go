// Package message defines the tagged union of info messages an editing
// operation emits after mutating a layout.Layout. Every observer
// (layoutindex.Index, a selection.Selection, the visibleselection base
// selection, validator.Validator) implements Submit and
// exhaustively switches over the concrete type, following the teacher's
// polymorphic-hook convention (core/port.go's sim.HookCtx/HookPos) rather
// than a closed interface hierarchy with per-type methods.
package message

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
)

// Message is the marker interface every info message implements. It
// carries no behavior; observers type-switch on the concrete value.
type Message interface {
	isMessage()
}

// --- Id lifecycle (uninserted and inserted elements alike) ---

type LogicItemCreated struct {
	ID  layout.LogicItemID
	Key layout.LogicItemKey
}
type LogicItemIDUpdated struct{ NewID, OldID layout.LogicItemID }
type LogicItemDeleted struct{ ID layout.LogicItemID }

type DecorationCreated struct {
	ID  layout.DecorationID
	Key layout.DecorationKey
}
type DecorationIDUpdated struct{ NewID, OldID layout.DecorationID }
type DecorationDeleted struct{ ID layout.DecorationID }

type SegmentCreated struct {
	Segment layout.Segment
	Key     layout.SegmentKey
	Size    geometry.Offset
}
type SegmentIDUpdated struct{ NewSegment, OldSegment layout.Segment }
type SegmentPartMoved struct{ Source, Destination layout.SegmentPart }
type SegmentPartDeleted struct{ SegmentPart layout.SegmentPart }

// --- Insertion-mode transitions (spec.md §4.3, §4.6) ---

type LogicItemInserted struct {
	ID   layout.LogicItemID
	Data layout.PlacedLogicItem
}
type LogicItemUninserted struct {
	ID   layout.LogicItemID
	Data layout.PlacedLogicItem
}
type InsertedLogicItemIDUpdated struct {
	NewID, OldID layout.LogicItemID
	Data         layout.PlacedLogicItem
}

type DecorationInserted struct {
	ID   layout.DecorationID
	Data layout.PlacedDecoration
}
type DecorationUninserted struct {
	ID   layout.DecorationID
	Data layout.PlacedDecoration
}
type InsertedDecorationIDUpdated struct {
	NewID, OldID layout.DecorationID
	Data         layout.PlacedDecoration
}

type SegmentInserted struct {
	Segment layout.Segment
	Data    layout.SegmentInfo
}
type SegmentUninserted struct {
	Segment layout.Segment
	Data    layout.SegmentInfo
}
type InsertedSegmentIDUpdated struct {
	NewSegment, OldSegment layout.Segment
	Data                   layout.SegmentInfo
}
type InsertedEndPointsUpdated struct {
	Segment              layout.Segment
	NewEndpoints, OldEndpoints [2]layout.SegmentPointType
}

func (LogicItemCreated) isMessage()            {}
func (LogicItemIDUpdated) isMessage()          {}
func (LogicItemDeleted) isMessage()            {}
func (DecorationCreated) isMessage()           {}
func (DecorationIDUpdated) isMessage()         {}
func (DecorationDeleted) isMessage()           {}
func (SegmentCreated) isMessage()              {}
func (SegmentIDUpdated) isMessage()            {}
func (SegmentPartMoved) isMessage()            {}
func (SegmentPartDeleted) isMessage()          {}
func (LogicItemInserted) isMessage()           {}
func (LogicItemUninserted) isMessage()         {}
func (InsertedLogicItemIDUpdated) isMessage()  {}
func (DecorationInserted) isMessage()          {}
func (DecorationUninserted) isMessage()        {}
func (InsertedDecorationIDUpdated) isMessage() {}
func (SegmentInserted) isMessage()             {}
func (SegmentUninserted) isMessage()           {}
func (InsertedSegmentIDUpdated) isMessage()    {}
func (InsertedEndPointsUpdated) isMessage()    {}

// Observer is implemented by every subsystem that must stay in sync with
// Layout: LayoutIndex, each Selection, VisibleSelection's base selection
// and, when enabled, the MessageValidator (spec.md §4.6). History is not
// an observer; the modifier package pushes its entries directly.
type Observer interface {
	Submit(m Message)
}

// Bus dispatches a message to every registered observer in order. It does
// not itself interpret messages; it exists so Modifier has one call site
// (mirroring CircuitData::submit in the original implementation) instead
// of repeating the observer list at every editing call site.
type Bus struct {
	observers []Observer
}

// NewBus returns a Bus with no observers registered.
func NewBus() *Bus { return &Bus{} }

// Register adds an observer to the dispatch list. Order matters only in
// that every observer must see Deleted before the IdUpdated that renames
// the previously-last element into the vacated slot (spec.md §4.6);
// individual editing functions are responsible for emitting messages in
// that order, not Bus.
func (b *Bus) Register(o Observer) { b.observers = append(b.observers, o) }

// Unregister removes an observer (by identity) from the dispatch list,
// used when a Selection is destroyed.
func (b *Bus) Unregister(o Observer) {
	for i, existing := range b.observers {
		if existing == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// Submit dispatches m to every registered observer. Message dispatch is
// synchronous and re-entrant-free: an observer must not call back into the
// Modifier from within Submit (spec.md §5).
func (b *Bus) Submit(m Message) {
	for _, o := range b.observers {
		o.Submit(m)
	}
}
