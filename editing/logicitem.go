package editing

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/layoutindex"
	"github.com/logiksim/editcircuit/message"
)

type logicItemHandle struct {
	cd *CircuitData
	id layout.LogicItemID
}

func (h logicItemHandle) DisplayState() geometry.DisplayState {
	return h.cd.Layout.LogicItem(h.id).State
}

func (h logicItemHandle) SetDisplayState(s geometry.DisplayState) {
	item := h.cd.Layout.LogicItem(h.id)
	item.State = s
	h.cd.Layout.SetLogicItem(h.id, item)
}

func (h logicItemHandle) IsColliding(cd *CircuitData) bool {
	item := cd.Layout.LogicItem(h.id)
	rect, ok := item.Definition.BodyRect(item.Position)
	if !ok {
		return true
	}
	return cd.Index.Collision.IsColliding(layoutindex.RectCells(rect), layoutindex.CellLogicItemBody)
}

func (h logicItemHandle) EmitInserted(cd *CircuitData) {
	cd.Bus.Submit(message.LogicItemInserted{ID: h.id, Data: cd.Layout.LogicItem(h.id)})
}

func (h logicItemHandle) EmitUninserted(cd *CircuitData) {
	cd.Bus.Submit(message.LogicItemUninserted{ID: h.id, Data: cd.Layout.LogicItem(h.id)})
}

func (h logicItemHandle) DeleteUninserted(cd *CircuitData) {
	deleteTemporaryLogicItemByID(cd, h.id)
}

// AddLogicItem creates a new logic item at position with the given
// definition, runs the requested insertion mode transition, and returns
// its final id — or NullLogicItemID if the body is not representable, or
// if insertionMode == ModeInsertOrDiscard and the item collides (spec.md
// §4.5, §8 scenario 6).
func AddLogicItem(cd *CircuitData, def layout.LogicItemDefinition, position geometry.Point, insertionMode InsertionMode) layout.LogicItemID {
	key := cd.Index.Keys.NewLogicItemKey()
	id := cd.Layout.AddLogicItem(def, position, geometry.DisplayTemporary, key)
	if id.IsNull() {
		return layout.NullLogicItemID
	}
	cd.Bus.Submit(message.LogicItemCreated{ID: id, Key: key})

	deleted := stepTowardMode(cd, logicItemHandle{cd, id}, insertionMode, HintNone)
	if deleted {
		return layout.NullLogicItemID
	}
	return id
}

// DeleteTemporaryLogicItem removes a temporary logic item entirely. The
// id pointed to is set to NullLogicItemID, mirroring the reference
// parameter signature of the original change_logicitem_insertion_mode.
func DeleteTemporaryLogicItem(cd *CircuitData, id *layout.LogicItemID) {
	if cd.Layout.LogicItem(*id).State != geometry.DisplayTemporary {
		violate("DeleteTemporaryLogicItem", "logic item is not temporary")
	}
	deleteTemporaryLogicItemByID(cd, *id)
	*id = layout.NullLogicItemID
}

func deleteTemporaryLogicItemByID(cd *CircuitData, id layout.LogicItemID) {
	cd.Index.Keys.UnregisterLogicItem(id)
	lastID, _ := cd.Layout.SwapAndDeleteLogicItem(id)
	cd.Bus.Submit(message.LogicItemDeleted{ID: id})
	if lastID != id {
		cd.Bus.Submit(message.LogicItemIDUpdated{NewID: id, OldID: lastID})
	}
}

// MoveTemporaryLogicItemUnchecked moves a temporary logic item by delta
// without checking representability; the caller must have already proven
// the destination is representable (spec.md §9).
func MoveTemporaryLogicItemUnchecked(cd *CircuitData, id layout.LogicItemID, dx, dy int32) {
	item := cd.Layout.LogicItem(id)
	if item.State != geometry.DisplayTemporary {
		violate("MoveTemporaryLogicItemUnchecked", "logic item is not temporary")
	}
	item.Position = geometry.Point{
		X: item.Position.X.AddUnchecked(dx),
		Y: item.Position.Y.AddUnchecked(dy),
	}
	cd.Layout.SetLogicItem(id, item)
}

// MoveOrDeleteTemporaryLogicItem moves a temporary logic item by delta,
// or deletes it (setting *id to null) if the destination is not
// representable (spec.md §4.4, §8 scenario 3).
func MoveOrDeleteTemporaryLogicItem(cd *CircuitData, id *layout.LogicItemID, dx, dy int32) {
	item := cd.Layout.LogicItem(*id)
	newX, okX := item.Position.X.Add(dx)
	newY, okY := item.Position.Y.Add(dy)
	if !okX || !okY {
		DeleteTemporaryLogicItem(cd, id)
		return
	}
	item.Position = geometry.Point{X: newX, Y: newY}
	cd.Layout.SetLogicItem(*id, item)
}

// ChangeLogicItemInsertionMode transitions id toward newMode, following
// spec.md §4.3's edges. *id becomes NullLogicItemID if the element is
// discarded along the way.
func ChangeLogicItemInsertionMode(cd *CircuitData, id *layout.LogicItemID, newMode InsertionMode, hint Hint) {
	deleted := stepTowardMode(cd, logicItemHandle{cd, *id}, newMode, hint)
	if deleted {
		*id = layout.NullLogicItemID
	}
}

// SetClockGeneratorAttributes overwrites a logic item's clock-generator
// attributes in place, returning the previous attributes so History can
// restore them on undo (spec.md §4.9's logicitem_change_attributes).
func SetClockGeneratorAttributes(cd *CircuitData, id layout.LogicItemID, attrs layout.ClockGeneratorAttrs) layout.ClockGeneratorAttrs {
	item := cd.Layout.LogicItem(id)
	if item.Definition.Type != layout.LogicItemClockGenerator {
		violate("SetClockGeneratorAttributes", "logic item is not a clock generator")
	}
	old := *item.Definition.ClockGenerator
	next := attrs
	item.Definition.ClockGenerator = &next
	cd.Layout.SetLogicItem(id, item)
	return old
}

// ToggleInverter flips the inverter bit of whichever input or output pin
// of an inserted logic item is located at point (spec.md §4.5).
func ToggleInverter(cd *CircuitData, point geometry.Point) {
	for _, ref := range cd.Index.Connection.PinsAt(point) {
		item := cd.Layout.LogicItem(ref.LogicItem)
		switch ref.Kind {
		case layoutindex.PinInput:
			item.Definition.InputInverters[ref.PinIndex] = !item.Definition.InputInverters[ref.PinIndex]
		default:
			item.Definition.OutputInverters[ref.PinIndex] = !item.Definition.OutputInverters[ref.PinIndex]
		}
		cd.Layout.SetLogicItem(ref.LogicItem, item)
		return
	}
}
