package visibleselection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/layoutindex"
	"github.com/logiksim/editcircuit/selection"
	"github.com/logiksim/editcircuit/visibleselection"
)

var bufferDef = layout.LogicItemDefinition{
	Type: layout.LogicItemBuffer, InputCount: 1, OutputCount: 1,
	InputInverters: []bool{false}, OutputInverters: []bool{false},
}

var _ = Describe("VisibleSelection", func() {
	var base *selection.Selection
	var vs *visibleselection.VisibleSelection
	var idx *layoutindex.Index

	BeforeEach(func() {
		base = selection.New()
		vs = visibleselection.New(base)
		idx = layoutindex.NewIndex()
	})

	It("realizes the base selection with no queued operations", func() {
		base.AddLogicItem(3)
		result := vs.Apply(idx)
		Expect(result.HasLogicItem(3)).To(BeTrue())
	})

	It("adds elements strictly contained by a queued add rectangle", func() {
		rect, _ := bufferDef.BodyRect(geometry.Point{X: 1, Y: 1})
		idx.Spatial.Insert(rect, layoutindex.LogicItemPayload(0))

		vs.AddOperation(visibleselection.Operation{
			Function: visibleselection.FunctionAdd,
			Rect:     geometry.RectFine{P0: geometry.PointFine{X: 0, Y: 0}, P1: geometry.PointFine{X: 10, Y: 10}},
		})

		result := vs.Apply(idx)
		Expect(result.HasLogicItem(0)).To(BeTrue())
	})

	It("does not add elements only touching the rectangle's edge", func() {
		rect, _ := bufferDef.BodyRect(geometry.Point{X: 0, Y: 0})
		idx.Spatial.Insert(rect, layoutindex.LogicItemPayload(0))

		vs.AddOperation(visibleselection.Operation{
			Function: visibleselection.FunctionAdd,
			Rect:     geometry.RectFine{P0: geometry.PointFine{X: 0, Y: 0}, P1: geometry.PointFine{X: 2, Y: 1}},
		})

		result := vs.Apply(idx)
		Expect(result.HasLogicItem(0)).To(BeFalse())
	})

	It("subtracts a previously-added element when a later operation removes it", func() {
		rect, _ := bufferDef.BodyRect(geometry.Point{X: 1, Y: 1})
		idx.Spatial.Insert(rect, layoutindex.LogicItemPayload(0))

		bigRect := geometry.RectFine{P0: geometry.PointFine{X: 0, Y: 0}, P1: geometry.PointFine{X: 10, Y: 10}}
		vs.AddOperation(visibleselection.Operation{Function: visibleselection.FunctionAdd, Rect: bigRect})
		vs.AddOperation(visibleselection.Operation{Function: visibleselection.FunctionSubtract, Rect: bigRect})

		result := vs.Apply(idx)
		Expect(result.HasLogicItem(0)).To(BeFalse())
	})

	It("updates the most recently queued operation's rectangle in place", func() {
		vs.AddOperation(visibleselection.Operation{
			Function: visibleselection.FunctionAdd,
			Rect:     geometry.RectFine{P0: geometry.PointFine{X: 0, Y: 0}, P1: geometry.PointFine{X: 1, Y: 1}},
		})

		rect, _ := bufferDef.BodyRect(geometry.Point{X: 1, Y: 1})
		idx.Spatial.Insert(rect, layoutindex.LogicItemPayload(0))

		vs.UpdateLastOperation(geometry.RectFine{P0: geometry.PointFine{X: 0, Y: 0}, P1: geometry.PointFine{X: 10, Y: 10}})

		result := vs.Apply(idx)
		Expect(result.HasLogicItem(0)).To(BeTrue())
	})

	It("discards the most recently queued operation on PopLastOperation", func() {
		vs.AddOperation(visibleselection.Operation{Function: visibleselection.FunctionAdd})
		vs.PopLastOperation()

		rect, _ := bufferDef.BodyRect(geometry.Point{X: 1, Y: 1})
		idx.Spatial.Insert(rect, layoutindex.LogicItemPayload(0))

		result := vs.Apply(idx)
		Expect(result.HasLogicItem(0)).To(BeFalse())
	})

	It("clears both the base selection and the pending queue", func() {
		base.AddLogicItem(1)
		vs.AddOperation(visibleselection.Operation{Function: visibleselection.FunctionAdd})

		vs.Clear()

		Expect(base.Empty()).To(BeTrue())
		Expect(vs.Apply(idx).HasLogicItem(1)).To(BeFalse())
	})

	It("replaces the base selection's contents on SetSelection", func() {
		other := selection.New()
		other.AddLogicItem(9)

		vs.AddOperation(visibleselection.Operation{Function: visibleselection.FunctionAdd})
		vs.SetSelection(other)

		Expect(base.HasLogicItem(9)).To(BeTrue())
		Expect(vs.Apply(idx).HasLogicItem(9)).To(BeTrue())
	})
})
