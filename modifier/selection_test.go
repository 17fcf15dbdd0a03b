package modifier_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/modifier"
	"github.com/logiksim/editcircuit/visibleselection"
)

var _ = Describe("Modifier selection store", func() {
	var m *modifier.Modifier

	BeforeEach(func() {
		m = modifier.New(modifier.Config{EnableHistory: true})
	})

	It("creates a selection that tracks a logic item it holds", func() {
		id := m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)

		selID := m.CreateSelection()
		sel := m.Selection(selID)
		Expect(sel).NotTo(BeNil())

		sel.AddLogicItem(id)
		Expect(sel.HasLogicItem(id)).To(BeTrue())
	})

	It("returns nil for a destroyed selection", func() {
		selID := m.CreateSelection()
		m.DestroySelection(selID)
		Expect(m.Selection(selID)).To(BeNil())
	})

	It("scopes a selection with a guard that cleans up on Close", func() {
		guard := m.NewSelectionGuard()
		Expect(m.Selection(guard.ID())).NotTo(BeNil())

		guard.Close()
		Expect(m.Selection(guard.ID())).To(BeNil())
	})
})

var _ = Describe("Modifier visible selection", func() {
	var m *modifier.Modifier

	BeforeEach(func() {
		m = modifier.New(modifier.Config{EnableHistory: true})
	})

	It("realizes an empty result with no queued operations", func() {
		result := m.VisibleSelectionResult()
		Expect(result.Empty()).To(BeTrue())
	})

	It("adds elements strictly inside a queued add rectangle and undoes the queue", func() {
		id := m.AddLogicItem(bufferDef(), geometry.Point{X: 2, Y: 2}, editing.ModeInsertOrDiscard)

		m.NewGroup()
		m.AddVisibleSelectionOperation(visibleselection.Operation{
			Function: visibleselection.FunctionAdd,
			Rect: geometry.RectFine{
				P0: geometry.PointFine{X: 0, Y: 0},
				P1: geometry.PointFine{X: 10, Y: 10},
			},
		})

		result := m.VisibleSelectionResult()
		Expect(result.HasLogicItem(id)).To(BeTrue())

		m.Undo()
		Expect(m.VisibleSelectionResult().Empty()).To(BeTrue())
	})

	It("clears the visible selection and undoes back to its prior contents", func() {
		id := m.AddLogicItem(bufferDef(), geometry.Point{X: 2, Y: 2}, editing.ModeInsertOrDiscard)
		m.NewGroup()
		m.AddVisibleSelectionOperation(visibleselection.Operation{
			Function: visibleselection.FunctionAdd,
			Rect: geometry.RectFine{
				P0: geometry.PointFine{X: 0, Y: 0},
				P1: geometry.PointFine{X: 10, Y: 10},
			},
		})
		Expect(m.VisibleSelectionResult().HasLogicItem(id)).To(BeTrue())

		m.NewGroup()
		m.ClearVisibleSelection()
		Expect(m.VisibleSelectionResult().Empty()).To(BeTrue())

		m.Undo()
		Expect(m.VisibleSelectionResult().HasLogicItem(id)).To(BeTrue())
	})
})
