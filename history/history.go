// Package history implements the undo/redo stacks spec.md §4.9 describes:
// two linked stacks of reversible entries, tagged by UndoType and
// addressed by stable key (not compact id) so a reverse operation still
// finds the right element after intervening swap-deletes. Group
// boundaries batch a sequence of entries into one undo/redo step.
package history

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/logiksim/editcircuit/editing"
)

// UndoType tags what kind of reverse operation an Entry carries, purely
// for the debug table dump (validator/report-style, go-pretty) — the
// actual reverse/forward behavior lives in the entry's Apply closure.
type UndoType int

const (
	UndoNewGroup UndoType = iota

	UndoLogicItemCreateTemporary
	UndoLogicItemDeleteTemporary
	UndoLogicItemMoveTemporary
	UndoLogicItemCollidingToTemporary
	UndoLogicItemTemporaryToCollidingExpectValid
	UndoLogicItemTemporaryToCollidingAssumeColliding
	UndoLogicItemCollidingToInsert
	UndoLogicItemInsertToCollidingExpectValid
	UndoLogicItemChangeAttributes

	UndoDecorationCreateTemporary
	UndoDecorationDeleteTemporary
	UndoDecorationMoveTemporary
	UndoDecorationCollidingToTemporary
	UndoDecorationTemporaryToCollidingExpectValid
	UndoDecorationTemporaryToCollidingAssumeColliding
	UndoDecorationCollidingToInsert
	UndoDecorationInsertToCollidingExpectValid
	UndoDecorationChangeAttributes

	UndoSegmentCreateUninserted
	UndoSegmentDeleteUninserted
	UndoSegmentSetEndpoints
	UndoSegmentMerge
	UndoSegmentSplit
	UndoSegmentInsertionMode
	UndoSegmentMove

	UndoVisibleSelectionSet
	UndoVisibleSelectionPopLast
	UndoVisibleSelectionAddOperation
	UndoVisibleSelectionUpdateLast
	UndoVisibleSelectionClear
)

func (t UndoType) String() string {
	names := [...]string{
		"new_group",
		"logicitem_create_temporary", "logicitem_delete_temporary", "logicitem_move_temporary",
		"logicitem_colliding_to_temporary", "logicitem_temporary_to_colliding_expect_valid",
		"logicitem_temporary_to_colliding_assume_colliding", "logicitem_colliding_to_insert",
		"logicitem_insert_to_colliding_expect_valid", "logicitem_change_attributes",
		"decoration_create_temporary", "decoration_delete_temporary", "decoration_move_temporary",
		"decoration_colliding_to_temporary", "decoration_temporary_to_colliding_expect_valid",
		"decoration_temporary_to_colliding_assume_colliding", "decoration_colliding_to_insert",
		"decoration_insert_to_colliding_expect_valid", "decoration_change_attributes",
		"segment_create_uninserted", "segment_delete_uninserted", "segment_set_endpoints",
		"segment_merge", "segment_split", "segment_insertion_mode", "segment_move",
		"visible_selection_set", "visible_selection_pop_last", "visible_selection_add_operation",
		"visible_selection_update_last", "visible_selection_clear",
	}
	if int(t) < 0 || int(t) >= len(names) {
		return "unknown"
	}
	return names[t]
}

// Entry is one reversible step. Apply performs the step against cd and
// returns the complementary Entry that undoes it — so History.UndoGroup
// can push the return value straight onto the redo stack, and vice
// versa, without a second, parallel "inverse of inverse" implementation.
type Entry struct {
	Type  UndoType
	Key   any
	Apply func(cd *editing.CircuitData) Entry
}

// State is whether History is currently recording new entries.
type State int

const (
	StateTrackUndo State = iota
	StateDisabled
)

// History holds the undo and redo stacks (top = index len-1) and the
// current recording state (spec.md §4.9).
type History struct {
	undo  []Entry
	redo  []Entry
	state State
}

// New returns an empty History in the recording state.
func New() *History {
	return &History{state: StateTrackUndo}
}

// Push appends entry to the undo stack if recording is enabled, and
// clears the redo stack — a fresh forward action invalidates whatever
// redo chain existed (an Open Question spec.md §9 left unresolved;
// decided here, see DESIGN.md).
func (h *History) Push(entry Entry) {
	if h.state != StateTrackUndo {
		return
	}
	h.undo = append(h.undo, entry)
	h.redo = nil
}

// NewGroup pushes a group-boundary sentinel onto the undo stack.
func (h *History) NewGroup() {
	h.Push(Entry{Type: UndoNewGroup})
}

// DisableHistory pauses recording; Push becomes a no-op until re-enabled.
func (h *History) DisableHistory() { h.state = StateDisabled }

// EnableHistory resumes recording.
func (h *History) EnableHistory() { h.state = StateTrackUndo }

// ClearUndoHistory discards both stacks entirely.
func (h *History) ClearUndoHistory() {
	h.undo = nil
	h.redo = nil
}

// CanUndo reports whether there is a completed group available to undo.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether there is a completed group available to redo.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoGroup pops entries off the undo stack up to (not including) the
// next new_group sentinel, applying each in LIFO order and pushing its
// returned inverse onto the redo stack, then pops the sentinel itself
// (spec.md §4.9). Recording is suspended for the duration so the reverse
// operations don't re-enter Push.
func (h *History) UndoGroup(cd *editing.CircuitData) {
	h.runGroup(cd, &h.undo, &h.redo)
}

// RedoGroup is UndoGroup's mirror image over the redo stack.
func (h *History) RedoGroup(cd *editing.CircuitData) {
	h.runGroup(cd, &h.redo, &h.undo)
}

func (h *History) runGroup(cd *editing.CircuitData, from, to *[]Entry) {
	if len(*from) == 0 {
		return
	}
	prevState := h.state
	h.state = StateDisabled
	defer func() { h.state = prevState }()

	*to = append(*to, Entry{Type: UndoNewGroup})
	for len(*from) > 0 {
		e := (*from)[len(*from)-1]
		*from = (*from)[:len(*from)-1]
		if e.Type == UndoNewGroup {
			break
		}
		inverse := e.Apply(cd)
		*to = append(*to, inverse)
	}
}

// DumpStacks renders the undo and redo stacks as tables, top of stack
// first. Debugging aid only, not part of the undo/redo semantics
// themselves — mirrors validator's own go-pretty table rendering of
// diverged state.
func (h *History) DumpStacks() string {
	t := table.NewWriter()
	t.SetTitle("History stacks")
	t.AppendHeader(table.Row{"Stack", "Depth", "Type", "Key"})
	appendStack(t, "undo", h.undo)
	appendStack(t, "redo", h.redo)
	return t.Render()
}

func appendStack(t table.Writer, name string, stack []Entry) {
	for i := len(stack) - 1; i >= 0; i-- {
		e := stack[i]
		t.AppendRow(table.Row{name, len(stack) - 1 - i, e.Type, e.Key})
	}
}
