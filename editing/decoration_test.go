package editing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
)

func textDef(text string) layout.DecorationDefinition {
	return layout.DecorationDefinition{Type: layout.DecorationTextElement, Text: text, Width: 4, Height: 1}
}

var _ = Describe("AddDecoration", func() {
	var cd *editing.CircuitData

	BeforeEach(func() {
		cd = editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
	})

	It("inserts directly when mode is ModeInsertOrDiscard and there is no collision", func() {
		id := editing.AddDecoration(cd, textDef("hello"), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(id.IsNull()).To(BeFalse())
		Expect(cd.Layout.Decoration(id).State).To(Equal(geometry.DisplayNormal))
	})

	It("discards a decoration that collides under ModeInsertOrDiscard", func() {
		pos := geometry.Point{X: 0, Y: 0}
		first := editing.AddDecoration(cd, textDef("a"), pos, editing.ModeInsertOrDiscard)
		Expect(first.IsNull()).To(BeFalse())

		second := editing.AddDecoration(cd, textDef("b"), pos, editing.ModeInsertOrDiscard)
		Expect(second.IsNull()).To(BeTrue())
		Expect(cd.Layout.DecorationCount()).To(Equal(1))
	})

	It("returns null when the body is not representable on the grid", func() {
		id := editing.AddDecoration(cd, textDef("x"), geometry.Point{X: geometry.GridMax, Y: geometry.GridMax}, editing.ModeInsertOrDiscard)
		Expect(id.IsNull()).To(BeTrue())
	})
})

var _ = Describe("DeleteTemporaryDecoration", func() {
	It("panics when the decoration is not temporary", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddDecoration(cd, textDef("a"), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(func() { editing.DeleteTemporaryDecoration(cd, &id) }).To(Panic())
	})

	It("removes the decoration and nulls the id", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddDecoration(cd, textDef("a"), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)
		editing.DeleteTemporaryDecoration(cd, &id)
		Expect(id.IsNull()).To(BeTrue())
		Expect(cd.Layout.DecorationCount()).To(Equal(0))
	})

	It("renames the swapped-in last decoration and keeps the index in sync", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		a := editing.AddDecoration(cd, textDef("a"), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)
		b := editing.AddDecoration(cd, textDef("b"), geometry.Point{X: 10, Y: 0}, editing.ModeTemporary)

		keyB, ok := cd.Index.Keys.DecorationKeyForID(b)
		Expect(ok).To(BeTrue())

		editing.DeleteTemporaryDecoration(cd, &a)

		renamedB, ok := cd.Index.Keys.DecorationIDForKey(keyB)
		Expect(ok).To(BeTrue())
		Expect(renamedB).To(Equal(layout.DecorationID(0)))
	})
})

var _ = Describe("MoveOrDeleteTemporaryDecoration", func() {
	It("moves the decoration when the destination is representable", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddDecoration(cd, textDef("a"), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)
		editing.MoveOrDeleteTemporaryDecoration(cd, &id, 5, 5)
		Expect(id.IsNull()).To(BeFalse())
		Expect(cd.Layout.Decoration(id).Position).To(Equal(geometry.Point{X: 5, Y: 5}))
	})

	It("deletes the decoration when the destination overflows the grid", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddDecoration(cd, textDef("a"), geometry.Point{X: geometry.GridMax - 10, Y: 0}, editing.ModeTemporary)
		editing.MoveOrDeleteTemporaryDecoration(cd, &id, 100, 0)
		Expect(id.IsNull()).To(BeTrue())
	})
})

var _ = Describe("SetDecorationText", func() {
	It("overwrites the text and returns the previous value", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddDecoration(cd, textDef("old"), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)

		old := editing.SetDecorationText(cd, id, "new")
		Expect(old).To(Equal("old"))
		Expect(cd.Layout.Decoration(id).Definition.Text).To(Equal("new"))
	})
})
