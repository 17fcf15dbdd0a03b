package modifier

import (
	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/history"
	"github.com/logiksim/editcircuit/selection"
	"github.com/logiksim/editcircuit/visibleselection"
)

// CreateSelection allocates a fresh, registered named selection.
func (m *Modifier) CreateSelection() selection.ID {
	return m.Selections.Create()
}

// DestroySelection discards a named selection.
func (m *Modifier) DestroySelection(id selection.ID) {
	m.Selections.Destroy(id)
}

// Selection returns the named selection, or nil if id does not exist.
func (m *Modifier) Selection(id selection.ID) *selection.Selection {
	return m.Selections.Get(id)
}

// NewSelectionGuard returns a scoped selection.Guard over a freshly
// created selection (spec.md §4.7).
func (m *Modifier) NewSelectionGuard() *selection.Guard {
	return selection.NewGuard(m.Selections)
}

// VisibleSelectionResult materializes the current visible selection
// against the live LayoutIndex (spec.md §4.8).
func (m *Modifier) VisibleSelectionResult() *selection.Selection {
	return m.Visible.Apply(m.Data.Index)
}

// AddVisibleSelectionOperation queues an add/subtract rectangle
// operation on the visible selection, pushing its removal onto the undo
// stack.
func (m *Modifier) AddVisibleSelectionOperation(op visibleselection.Operation) {
	m.Visible.AddOperation(op)
	var popEntry, addEntry func() history.Entry
	popEntry = func() history.Entry {
		return history.Entry{Type: history.UndoVisibleSelectionAddOperation, Apply: func(cd *editing.CircuitData) history.Entry {
			m.Visible.PopLastOperation()
			return addEntry()
		}}
	}
	addEntry = func() history.Entry {
		return history.Entry{Type: history.UndoVisibleSelectionAddOperation, Apply: func(cd *editing.CircuitData) history.Entry {
			m.Visible.AddOperation(op)
			return popEntry()
		}}
	}
	m.History.Push(popEntry())
}

// ClearVisibleSelection empties the visible selection's base set and
// operation queue, pushing onto the undo stack an entry that restores the
// realized selection as the base set (the queued operations themselves
// are not restored).
func (m *Modifier) ClearVisibleSelection() {
	snapshot := m.snapshotVisibleSelection()
	m.Visible.Clear()
	m.History.Push(m.visibleSelectionRestoreEntry(snapshot))
}

func (m *Modifier) snapshotVisibleSelection() *selection.Selection {
	snap := selection.New()
	base := m.Visible.Apply(m.Data.Index)
	for _, id := range base.LogicItems() {
		snap.AddLogicItem(id)
	}
	for _, id := range base.Decorations() {
		snap.AddDecoration(id)
	}
	for _, seg := range base.Segments() {
		for _, part := range base.SegmentParts(seg) {
			snap.AddSegmentPart(seg, part)
		}
	}
	return snap
}

func (m *Modifier) visibleSelectionRestoreEntry(snap *selection.Selection) history.Entry {
	return history.Entry{
		Type: history.UndoVisibleSelectionClear,
		Apply: func(cd *editing.CircuitData) history.Entry {
			_ = cd
			before := m.snapshotVisibleSelection()
			m.Visible.SetSelection(snap)
			return m.visibleSelectionRestoreEntry(before)
		},
	}
}
