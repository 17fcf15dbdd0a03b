package modifier_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/modifier"
)

func textDef(text string) layout.DecorationDefinition {
	return layout.DecorationDefinition{Type: layout.DecorationTextElement, Text: text}
}

var _ = Describe("Modifier decoration operations", func() {
	var m *modifier.Modifier

	BeforeEach(func() {
		m = modifier.New(modifier.Config{EnableHistory: true})
	})

	It("creates a decoration and undoes back to nonexistence", func() {
		m.NewGroup()
		id := m.AddDecoration(textDef("hello"), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(id.IsNull()).To(BeFalse())
		Expect(m.Data.Layout.DecorationCount()).To(Equal(1))

		m.Undo()
		Expect(m.Data.Layout.DecorationCount()).To(Equal(0))

		m.Redo()
		Expect(m.Data.Layout.DecorationCount()).To(Equal(1))
	})

	It("deletes a temporary decoration and undoes the deletion", func() {
		m.NewGroup()
		id := m.AddDecoration(textDef("hi"), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)

		m.NewGroup()
		m.DeleteTemporaryDecoration(&id)
		Expect(m.Data.Layout.DecorationCount()).To(Equal(0))

		m.Undo()
		Expect(m.Data.Layout.DecorationCount()).To(Equal(1))
	})

	It("moves a temporary decoration and undoes back to the original position", func() {
		m.NewGroup()
		id := m.AddDecoration(textDef("hi"), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)

		m.NewGroup()
		m.MoveOrDeleteTemporaryDecoration(&id, 2, 2)
		Expect(m.Data.Layout.Decoration(id).Position).To(Equal(geometry.Point{X: 2, Y: 2}))

		m.Undo()
		Expect(m.Data.Layout.Decoration(id).Position).To(Equal(geometry.Point{X: 0, Y: 0}))
	})

	It("sets decoration text and undoes back to the prior text", func() {
		m.NewGroup()
		id := m.AddDecoration(textDef("before"), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)

		m.NewGroup()
		m.SetDecorationText(id, "after")
		Expect(m.Data.Layout.Decoration(id).Definition.Text).To(Equal("after"))

		m.Undo()
		Expect(m.Data.Layout.Decoration(id).Definition.Text).To(Equal("before"))
	})

	It("changes decoration insertion mode and undoes back to the prior mode", func() {
		m.NewGroup()
		id := m.AddDecoration(textDef("hi"), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)

		m.NewGroup()
		m.ChangeDecorationInsertionMode(&id, editing.ModeInsertOrDiscard)
		Expect(m.Data.Layout.Decoration(id).State).To(Equal(geometry.DisplayNormal))

		m.Undo()
		Expect(m.Data.Layout.Decoration(id).State).To(Equal(geometry.DisplayTemporary))
	})
})
