package modifier

import (
	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/history"
	"github.com/logiksim/editcircuit/layout"
)

func (m *Modifier) decorationCreateEntry(key layout.DecorationKey, mode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoDecorationCreateTemporary,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			curID, ok := cd.Index.Keys.DecorationIDForKey(key)
			if !ok {
				return history.Entry{}
			}
			editing.ChangeDecorationInsertionMode(cd, &curID, editing.ModeTemporary, editing.HintNone)
			placed := cd.Layout.Decoration(curID)
			editing.DeleteTemporaryDecoration(cd, &curID)
			return m.decorationDeleteEntry(key, placed, mode)
		},
	}
}

func (m *Modifier) decorationDeleteEntry(key layout.DecorationKey, placed layout.PlacedDecoration, mode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoDecorationDeleteTemporary,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			newID := editing.AddDecoration(cd, placed.Definition, placed.Position, mode)
			newKey, _ := cd.Index.Keys.DecorationKeyForID(newID)
			return m.decorationCreateEntry(newKey, mode)
		},
	}
}

// AddDecoration creates a new decoration and pushes its reverse onto the
// undo stack.
func (m *Modifier) AddDecoration(def layout.DecorationDefinition, position geometry.Point, mode editing.InsertionMode) layout.DecorationID {
	id := editing.AddDecoration(m.Data, def, position, mode)
	if id.IsNull() {
		return id
	}
	key, _ := m.Data.Index.Keys.DecorationKeyForID(id)
	m.History.Push(m.decorationCreateEntry(key, mode))
	return id
}

// DeleteTemporaryDecoration removes a temporary decoration, pushing its
// re-creation onto the undo stack.
func (m *Modifier) DeleteTemporaryDecoration(id *layout.DecorationID) {
	key, _ := m.Data.Index.Keys.DecorationKeyForID(*id)
	placed := m.Data.Layout.Decoration(*id)
	editing.DeleteTemporaryDecoration(m.Data, id)
	m.History.Push(m.decorationDeleteEntry(key, placed, editing.ModeTemporary))
}

func (m *Modifier) decorationMoveEntry(key layout.DecorationKey, dx, dy int32) history.Entry {
	return history.Entry{
		Type: history.UndoDecorationMoveTemporary,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			curID, ok := cd.Index.Keys.DecorationIDForKey(key)
			if ok {
				editing.MoveTemporaryDecorationUnchecked(cd, curID, dx, dy)
			}
			return m.decorationMoveEntry(key, -dx, -dy)
		},
	}
}

// MoveOrDeleteTemporaryDecoration moves a temporary decoration by delta,
// pushing the inverse move (or re-creation) onto the undo stack.
func (m *Modifier) MoveOrDeleteTemporaryDecoration(id *layout.DecorationID, dx, dy int32) {
	key, _ := m.Data.Index.Keys.DecorationKeyForID(*id)
	before := m.Data.Layout.Decoration(*id)
	editing.MoveOrDeleteTemporaryDecoration(m.Data, id, dx, dy)

	if id.IsNull() {
		m.History.Push(m.decorationDeleteEntry(key, before, editing.ModeTemporary))
		return
	}
	m.History.Push(m.decorationMoveEntry(key, -dx, -dy))
}

func (m *Modifier) decorationModeEntry(key layout.DecorationKey, targetMode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoDecorationCollidingToTemporary,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			curID, ok := cd.Index.Keys.DecorationIDForKey(key)
			if !ok {
				return history.Entry{}
			}
			curMode := modeOf(cd.Layout.Decoration(curID).State)
			editing.ChangeDecorationInsertionMode(cd, &curID, targetMode, editing.HintNone)
			return m.decorationModeEntry(key, curMode)
		},
	}
}

// ChangeDecorationInsertionMode transitions id toward newMode, pushing
// the inverse transition onto the undo stack.
func (m *Modifier) ChangeDecorationInsertionMode(id *layout.DecorationID, newMode editing.InsertionMode) {
	key, _ := m.Data.Index.Keys.DecorationKeyForID(*id)
	prevMode := modeOf(m.Data.Layout.Decoration(*id).State)
	editing.ChangeDecorationInsertionMode(m.Data, id, newMode, editing.HintNone)
	m.History.Push(m.decorationModeEntry(key, prevMode))
}

// SetDecorationText overwrites a text decoration's content, pushing the
// restore-previous-text operation onto the undo stack.
func (m *Modifier) SetDecorationText(id layout.DecorationID, text string) {
	key, _ := m.Data.Index.Keys.DecorationKeyForID(id)
	old := editing.SetDecorationText(m.Data, id, text)
	m.History.Push(m.decorationTextEntry(key, old))
}

func (m *Modifier) decorationTextEntry(key layout.DecorationKey, before string) history.Entry {
	return history.Entry{
		Type: history.UndoDecorationChangeAttributes,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			curID, ok := cd.Index.Keys.DecorationIDForKey(key)
			if !ok {
				return history.Entry{}
			}
			prev := editing.SetDecorationText(cd, curID, before)
			return m.decorationTextEntry(key, prev)
		},
	}
}
