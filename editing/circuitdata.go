// Package editing implements the low-level circuit-editing primitives:
// add/move/delete and insertion-mode transitions for logic items,
// decorations and wire segments. Every exported function here mutates a
// CircuitData's Layout and emits the info messages spec.md §4.6 describes,
// via CircuitData.Bus, so that LayoutIndex, every Selection, VisibleSelection
// and History (all registered as message.Observer on the bus by the
// modifier package) stay in sync. Editing functions may also query
// CircuitData.Index read-only (e.g. CollisionIndex.IsColliding), but they
// never write to the index directly — the bus is the only write path into
// it, matching the teacher's rule that a component's internal state is
// only ever touched by its own Tick/message-handling code, never poked at
// from outside (core/port.go's buffer fields are unexported for the same
// reason). The selection package is the one exception to "this package
// holds no references to the modifier-level aggregates": spec.md §4.4's
// selection-wide wire primitives (RegularizeTemporarySelection,
// SplitTemporarySegments) take a *selection.Selection directly, the same
// way the rest of this package takes a *layout.Segment, because they edit
// the selection's recorded parts in lockstep with the segments they split
// or merge.
package editing

import (
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/layoutindex"
	"github.com/logiksim/editcircuit/message"
)

// CircuitData bundles the authoritative Layout, its four-way Index, and
// the message bus editing functions publish mutation events on. It is the
// Go analogue of the original CircuitData aggregate (layout + index +
// selection_store + visible_selection, spec.md §9): the selection store,
// visible selection and history live alongside it in the modifier package,
// registered as observers on Bus rather than held here, so this package
// does not need to import them.
type CircuitData struct {
	Layout *layout.Layout
	Index  *layoutindex.Index
	Bus    *message.Bus
}

// NewCircuitData returns a CircuitData over a fresh, empty layout.
func NewCircuitData() *CircuitData {
	return &CircuitData{
		Layout: layout.NewLayout(),
		Index:  layoutindex.NewIndex(),
		Bus:    message.NewBus(),
	}
}

// InvariantViolation is panicked by editing functions on programmer error:
// an invalid id, a non-representable coordinate, or a precondition
// violated on an "_unchecked" operation (spec.md §7). It is a typed panic
// rather than a bare string (the one deliberate deviation from the
// teacher's plain panic(string) convention, justified in DESIGN.md) so
// that a caller that recovers the panic can distinguish a programmer
// error from an unrelated runtime panic. Nothing in this module recovers
// it.
type InvariantViolation struct {
	Op      string
	Message string
}

func (e *InvariantViolation) Error() string {
	return "editable circuit invariant violation in " + e.Op + ": " + e.Message
}

func violate(op, msg string) {
	panic(&InvariantViolation{Op: op, Message: msg})
}
