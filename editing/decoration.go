package editing

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/layoutindex"
	"github.com/logiksim/editcircuit/message"
)

type decorationHandle struct {
	cd *CircuitData
	id layout.DecorationID
}

func (h decorationHandle) DisplayState() geometry.DisplayState {
	return h.cd.Layout.Decoration(h.id).State
}

func (h decorationHandle) SetDisplayState(s geometry.DisplayState) {
	dec := h.cd.Layout.Decoration(h.id)
	dec.State = s
	h.cd.Layout.SetDecoration(h.id, dec)
}

func (h decorationHandle) IsColliding(cd *CircuitData) bool {
	dec := cd.Layout.Decoration(h.id)
	rect, ok := dec.Definition.BodyRect(dec.Position)
	if !ok {
		return true
	}
	return cd.Index.Collision.IsColliding(layoutindex.RectCells(rect), layoutindex.CellDecorationBody)
}

func (h decorationHandle) EmitInserted(cd *CircuitData) {
	cd.Bus.Submit(message.DecorationInserted{ID: h.id, Data: cd.Layout.Decoration(h.id)})
}

func (h decorationHandle) EmitUninserted(cd *CircuitData) {
	cd.Bus.Submit(message.DecorationUninserted{ID: h.id, Data: cd.Layout.Decoration(h.id)})
}

func (h decorationHandle) DeleteUninserted(cd *CircuitData) {
	deleteTemporaryDecorationByID(cd, h.id)
}

// AddDecoration creates a new decoration at position, runs the requested
// insertion mode transition, and returns its final id — or
// NullDecorationID if the body is not representable or discarded on
// collision (spec.md §4.5, mirroring AddLogicItem).
func AddDecoration(cd *CircuitData, def layout.DecorationDefinition, position geometry.Point, insertionMode InsertionMode) layout.DecorationID {
	key := cd.Index.Keys.NewDecorationKey()
	id := cd.Layout.AddDecoration(def, position, geometry.DisplayTemporary, key)
	if id.IsNull() {
		return layout.NullDecorationID
	}
	cd.Bus.Submit(message.DecorationCreated{ID: id, Key: key})

	deleted := stepTowardMode(cd, decorationHandle{cd, id}, insertionMode, HintNone)
	if deleted {
		return layout.NullDecorationID
	}
	return id
}

// DeleteTemporaryDecoration removes a temporary decoration entirely.
func DeleteTemporaryDecoration(cd *CircuitData, id *layout.DecorationID) {
	if cd.Layout.Decoration(*id).State != geometry.DisplayTemporary {
		violate("DeleteTemporaryDecoration", "decoration is not temporary")
	}
	deleteTemporaryDecorationByID(cd, *id)
	*id = layout.NullDecorationID
}

func deleteTemporaryDecorationByID(cd *CircuitData, id layout.DecorationID) {
	cd.Index.Keys.UnregisterDecoration(id)
	lastID, _ := cd.Layout.SwapAndDeleteDecoration(id)
	cd.Bus.Submit(message.DecorationDeleted{ID: id})
	if lastID != id {
		cd.Bus.Submit(message.DecorationIDUpdated{NewID: id, OldID: lastID})
	}
}

// MoveTemporaryDecorationUnchecked moves a temporary decoration by delta
// without checking representability.
func MoveTemporaryDecorationUnchecked(cd *CircuitData, id layout.DecorationID, dx, dy int32) {
	dec := cd.Layout.Decoration(id)
	if dec.State != geometry.DisplayTemporary {
		violate("MoveTemporaryDecorationUnchecked", "decoration is not temporary")
	}
	dec.Position = geometry.Point{
		X: dec.Position.X.AddUnchecked(dx),
		Y: dec.Position.Y.AddUnchecked(dy),
	}
	cd.Layout.SetDecoration(id, dec)
}

// MoveOrDeleteTemporaryDecoration moves a temporary decoration by delta,
// or deletes it if the destination is not representable.
func MoveOrDeleteTemporaryDecoration(cd *CircuitData, id *layout.DecorationID, dx, dy int32) {
	dec := cd.Layout.Decoration(*id)
	newX, okX := dec.Position.X.Add(dx)
	newY, okY := dec.Position.Y.Add(dy)
	if !okX || !okY {
		DeleteTemporaryDecoration(cd, id)
		return
	}
	dec.Position = geometry.Point{X: newX, Y: newY}
	cd.Layout.SetDecoration(*id, dec)
}

// ChangeDecorationInsertionMode transitions id toward newMode.
func ChangeDecorationInsertionMode(cd *CircuitData, id *layout.DecorationID, newMode InsertionMode, hint Hint) {
	deleted := stepTowardMode(cd, decorationHandle{cd, *id}, newMode, hint)
	if deleted {
		*id = layout.NullDecorationID
	}
}

// SetDecorationText overwrites a text decoration's content, returning the
// previous text so History can restore it on undo.
func SetDecorationText(cd *CircuitData, id layout.DecorationID, text string) string {
	dec := cd.Layout.Decoration(id)
	old := dec.Definition.Text
	dec.Definition.Text = text
	cd.Layout.SetDecoration(id, dec)
	return old
}
