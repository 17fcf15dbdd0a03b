package modifier_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/modifier"
)

var _ = Describe("Modifier configuration", func() {
	It("does not record undo history when EnableHistory is false", func() {
		m := modifier.New(modifier.Config{})
		m.NewGroup()
		m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(m.History.CanUndo()).To(BeFalse())
	})

	It("leaves the message log empty unless StoreMessages is set", func() {
		m := modifier.New(modifier.Config{})
		m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(m.MessageLog()).To(BeEmpty())
	})

	It("records every dispatched message when StoreMessages is set", func() {
		m := modifier.New(modifier.Config{StoreMessages: true})
		m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(len(m.MessageLog())).To(BeNumerically(">", 0))
	})

	It("panics on a divergent index when ValidateMessages is set", func() {
		m := modifier.New(modifier.Config{ValidateMessages: true})
		Expect(func() {
			m.Data.Index.Keys.RegisterLogicItem(0, 5)
			m.Data.Index.Keys.RegisterLogicItem(1, 5)
			m.Data.Bus.Submit(nil)
		}).To(Panic())
	})

	It("rebuilds the index and clears undo history on ReindexLayout", func() {
		m := modifier.New(modifier.Config{EnableHistory: true})
		m.NewGroup()
		id := m.AddLogicItem(bufferDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(m.History.CanUndo()).To(BeTrue())

		m.ReindexLayout()
		Expect(m.History.CanUndo()).To(BeFalse())
		Expect(m.Data.Index.Keys.IsBijection()).To(BeTrue())
		_ = id
	})
})
