package modifier_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/modifier"
)

func bufferDef() layout.LogicItemDefinition {
	return layout.LogicItemDefinition{
		Type:            layout.LogicItemBuffer,
		InputCount:      1,
		OutputCount:     1,
		InputInverters:  []bool{false},
		OutputInverters: []bool{false},
	}
}

var _ = Describe("Modifier logic item operations", func() {
	var m *modifier.Modifier

	BeforeEach(func() {
		m = modifier.New(modifier.Config{EnableHistory: true})
	})

	It("creates a logic item and undoes back to nonexistence", func() {
		m.NewGroup()
		id := m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(id.IsNull()).To(BeFalse())
		Expect(m.Data.Layout.LogicItemCount()).To(Equal(1))

		m.Undo()
		Expect(m.Data.Layout.LogicItemCount()).To(Equal(0))

		m.Redo()
		Expect(m.Data.Layout.LogicItemCount()).To(Equal(1))
	})

	It("deletes a temporary logic item and undoes the deletion", func() {
		m.NewGroup()
		id := m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)

		m.NewGroup()
		m.DeleteTemporaryLogicItem(&id)
		Expect(m.Data.Layout.LogicItemCount()).To(Equal(0))

		m.Undo()
		Expect(m.Data.Layout.LogicItemCount()).To(Equal(1))
	})

	It("moves a temporary logic item and undoes back to the original position", func() {
		m.NewGroup()
		id := m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)

		m.NewGroup()
		m.MoveOrDeleteTemporaryLogicItem(&id, 3, 4)
		Expect(m.Data.Layout.LogicItem(id).Position).To(Equal(geometry.Point{X: 3, Y: 4}))

		m.Undo()
		Expect(m.Data.Layout.LogicItem(id).Position).To(Equal(geometry.Point{X: 0, Y: 0}))
	})

	It("changes insertion mode and undoes back to the prior mode", func() {
		m.NewGroup()
		id := m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)

		m.NewGroup()
		m.ChangeLogicItemInsertionMode(&id, editing.ModeInsertOrDiscard)
		Expect(m.Data.Layout.LogicItem(id).State).To(Equal(geometry.DisplayNormal))

		m.Undo()
		Expect(m.Data.Layout.LogicItem(id).State).To(Equal(geometry.DisplayTemporary))
	})

	It("records a group that can be undone as one unit", func() {
		m.NewGroup()
		a := m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		b := m.AddLogicItem(bufferDef(), geometry.Point{X: 4, Y: 4}, editing.ModeInsertOrDiscard)
		Expect(a.IsNull()).To(BeFalse())
		Expect(b.IsNull()).To(BeFalse())
		Expect(m.Data.Layout.LogicItemCount()).To(Equal(2))

		m.Undo()
		Expect(m.Data.Layout.LogicItemCount()).To(Equal(0))
	})
})
