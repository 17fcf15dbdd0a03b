package modifier

import (
	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/history"
	"github.com/logiksim/editcircuit/layout"
)

// createEntry and deleteEntry are mutually recursive: undoing a create is
// a delete, undoing that delete is a create, indefinitely — so Undo/Redo
// can alternate forever without ever hitting a dead (nil Apply) entry.

func (m *Modifier) logicItemCreateEntry(key layout.LogicItemKey, mode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoLogicItemCreateTemporary,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			curID, ok := cd.Index.Keys.LogicItemIDForKey(key)
			if !ok {
				return history.Entry{}
			}
			editing.ChangeLogicItemInsertionMode(cd, &curID, editing.ModeTemporary, editing.HintNone)
			placed := cd.Layout.LogicItem(curID)
			editing.DeleteTemporaryLogicItem(cd, &curID)
			return m.logicItemDeleteEntry(key, placed, mode)
		},
	}
}

func (m *Modifier) logicItemDeleteEntry(key layout.LogicItemKey, placed layout.PlacedLogicItem, mode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoLogicItemDeleteTemporary,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			newID := editing.AddLogicItem(cd, placed.Definition, placed.Position, mode)
			newKey, _ := cd.Index.Keys.LogicItemKeyForID(newID)
			return m.logicItemCreateEntry(newKey, mode)
		},
	}
}

// AddLogicItem creates a new logic item and pushes its reverse
// (logicitem_delete_temporary, spec.md §4.9) onto the undo stack.
func (m *Modifier) AddLogicItem(def layout.LogicItemDefinition, position geometry.Point, mode editing.InsertionMode) layout.LogicItemID {
	id := editing.AddLogicItem(m.Data, def, position, mode)
	if id.IsNull() {
		return id
	}
	key, _ := m.Data.Index.Keys.LogicItemKeyForID(id)
	m.History.Push(m.logicItemCreateEntry(key, mode))
	return id
}

// DeleteTemporaryLogicItem removes a temporary logic item, pushing its
// re-creation onto the undo stack.
func (m *Modifier) DeleteTemporaryLogicItem(id *layout.LogicItemID) {
	key, _ := m.Data.Index.Keys.LogicItemKeyForID(*id)
	placed := m.Data.Layout.LogicItem(*id)
	editing.DeleteTemporaryLogicItem(m.Data, id)
	m.History.Push(m.logicItemDeleteEntry(key, placed, editing.ModeTemporary))
}

func (m *Modifier) logicItemMoveEntry(key layout.LogicItemKey, dx, dy int32) history.Entry {
	return history.Entry{
		Type: history.UndoLogicItemMoveTemporary,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			curID, ok := cd.Index.Keys.LogicItemIDForKey(key)
			if ok {
				editing.MoveTemporaryLogicItemUnchecked(cd, curID, dx, dy)
			}
			return m.logicItemMoveEntry(key, -dx, -dy)
		},
	}
}

// MoveOrDeleteTemporaryLogicItem moves a temporary logic item by delta,
// pushing the inverse move (or a re-creation, if it was discarded) onto
// the undo stack.
func (m *Modifier) MoveOrDeleteTemporaryLogicItem(id *layout.LogicItemID, dx, dy int32) {
	key, _ := m.Data.Index.Keys.LogicItemKeyForID(*id)
	before := m.Data.Layout.LogicItem(*id)
	editing.MoveOrDeleteTemporaryLogicItem(m.Data, id, dx, dy)

	if id.IsNull() {
		m.History.Push(m.logicItemDeleteEntry(key, before, editing.ModeTemporary))
		return
	}
	m.History.Push(m.logicItemMoveEntry(key, -dx, -dy))
}

func (m *Modifier) logicItemModeEntry(key layout.LogicItemKey, targetMode editing.InsertionMode) history.Entry {
	return history.Entry{
		Type: history.UndoLogicItemCollidingToTemporary,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			curID, ok := cd.Index.Keys.LogicItemIDForKey(key)
			if !ok {
				return history.Entry{}
			}
			curMode := modeOf(cd.Layout.LogicItem(curID).State)
			editing.ChangeLogicItemInsertionMode(cd, &curID, targetMode, editing.HintNone)
			return m.logicItemModeEntry(key, curMode)
		},
	}
}

// ChangeLogicItemInsertionMode transitions id toward newMode, pushing the
// inverse transition onto the undo stack.
func (m *Modifier) ChangeLogicItemInsertionMode(id *layout.LogicItemID, newMode editing.InsertionMode) {
	key, _ := m.Data.Index.Keys.LogicItemKeyForID(*id)
	prevMode := modeOf(m.Data.Layout.LogicItem(*id).State)
	editing.ChangeLogicItemInsertionMode(m.Data, id, newMode, editing.HintNone)
	m.History.Push(m.logicItemModeEntry(key, prevMode))
}

func modeOf(s geometry.DisplayState) editing.InsertionMode {
	switch s {
	case geometry.DisplayTemporary:
		return editing.ModeTemporary
	case geometry.DisplayColliding:
		return editing.ModeCollisions
	default:
		return editing.ModeInsertOrDiscard
	}
}

func (m *Modifier) toggleInverterEntry(point geometry.Point) history.Entry {
	return history.Entry{
		Type: history.UndoLogicItemChangeAttributes,
		Apply: func(cd *editing.CircuitData) history.Entry {
			editing.ToggleInverter(cd, point)
			return m.toggleInverterEntry(point)
		},
	}
}

// ToggleInverter flips the inverter at point, pushing a second toggle at
// the same point as the undo entry (the operation is its own inverse).
func (m *Modifier) ToggleInverter(point geometry.Point) {
	editing.ToggleInverter(m.Data, point)
	m.History.Push(m.toggleInverterEntry(point))
}

// SetClockGeneratorAttributes overwrites a clock generator's attributes,
// pushing the restore-previous-attributes operation onto the undo stack.
func (m *Modifier) SetClockGeneratorAttributes(id layout.LogicItemID, attrs layout.ClockGeneratorAttrs) {
	key, _ := m.Data.Index.Keys.LogicItemKeyForID(id)
	old := editing.SetClockGeneratorAttributes(m.Data, id, attrs)
	m.History.Push(m.logicItemAttrsEntry(key, old))
}

func (m *Modifier) logicItemAttrsEntry(key layout.LogicItemKey, before layout.ClockGeneratorAttrs) history.Entry {
	return history.Entry{
		Type: history.UndoLogicItemChangeAttributes,
		Key:  key,
		Apply: func(cd *editing.CircuitData) history.Entry {
			curID, ok := cd.Index.Keys.LogicItemIDForKey(key)
			if !ok {
				return history.Entry{}
			}
			prev := editing.SetClockGeneratorAttributes(cd, curID, before)
			return m.logicItemAttrsEntry(key, prev)
		},
	}
}
