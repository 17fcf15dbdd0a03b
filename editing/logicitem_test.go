package editing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/layoutindex"
)

func andGateDef() layout.LogicItemDefinition {
	return layout.LogicItemDefinition{
		Type:            layout.LogicItemAnd,
		InputCount:      2,
		OutputCount:     1,
		InputInverters:  []bool{false, false},
		OutputInverters: []bool{false},
	}
}

var _ = Describe("AddLogicItem", func() {
	var cd *editing.CircuitData

	BeforeEach(func() {
		cd = editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
	})

	It("inserts directly when mode is ModeInsertOrDiscard and there is no collision", func() {
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 2, Y: 2}, editing.ModeInsertOrDiscard)
		Expect(id.IsNull()).To(BeFalse())
		Expect(cd.Layout.LogicItem(id).State).To(Equal(geometry.DisplayNormal))
	})

	It("stays temporary when mode is ModeTemporary", func() {
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 2, Y: 2}, editing.ModeTemporary)
		Expect(id.IsNull()).To(BeFalse())
		Expect(cd.Layout.LogicItem(id).State).To(Equal(geometry.DisplayTemporary))
	})

	It("discards an item that collides under ModeInsertOrDiscard", func() {
		pos := geometry.Point{X: 2, Y: 2}
		first := editing.AddLogicItem(cd, andGateDef(), pos, editing.ModeInsertOrDiscard)
		Expect(first.IsNull()).To(BeFalse())

		second := editing.AddLogicItem(cd, andGateDef(), pos, editing.ModeInsertOrDiscard)
		Expect(second.IsNull()).To(BeTrue())
		Expect(cd.Layout.LogicItemCount()).To(Equal(1))
	})

	It("returns null when the body is not representable on the grid", func() {
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: geometry.GridMax, Y: geometry.GridMax}, editing.ModeInsertOrDiscard)
		Expect(id.IsNull()).To(BeTrue())
	})
})

var _ = Describe("ChangeLogicItemInsertionMode", func() {
	var cd *editing.CircuitData

	BeforeEach(func() {
		cd = editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
	})

	It("transitions a temporary item through colliding into normal", func() {
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)
		editing.ChangeLogicItemInsertionMode(cd, &id, editing.ModeInsertOrDiscard, editing.HintNone)
		Expect(id.IsNull()).To(BeFalse())
		Expect(cd.Layout.LogicItem(id).State).To(Equal(geometry.DisplayNormal))
	})

	It("discards the element and nulls the id when forced colliding", func() {
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)
		editing.ChangeLogicItemInsertionMode(cd, &id, editing.ModeInsertOrDiscard, editing.HintAssumeColliding)
		Expect(id.IsNull()).To(BeTrue())
	})

	It("moves an inserted item back to temporary and preserves it", func() {
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		editing.ChangeLogicItemInsertionMode(cd, &id, editing.ModeTemporary, editing.HintNone)
		Expect(id.IsNull()).To(BeFalse())
		Expect(cd.Layout.LogicItem(id).State).To(Equal(geometry.DisplayTemporary))
	})
})

var _ = Describe("DeleteTemporaryLogicItem", func() {
	It("panics when the item is not temporary", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(func() { editing.DeleteTemporaryLogicItem(cd, &id) }).To(Panic())
	})

	It("removes the item and nulls the id", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)
		editing.DeleteTemporaryLogicItem(cd, &id)
		Expect(id.IsNull()).To(BeTrue())
		Expect(cd.Layout.LogicItemCount()).To(Equal(0))
	})

	It("renames the swapped-in last element and keeps the index in sync", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		a := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)
		b := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 10, Y: 0}, editing.ModeTemporary)

		keyB, ok := cd.Index.Keys.LogicItemKeyForID(b)
		Expect(ok).To(BeTrue())

		editing.DeleteTemporaryLogicItem(cd, &a)

		renamedB, ok := cd.Index.Keys.LogicItemIDForKey(keyB)
		Expect(ok).To(BeTrue())
		Expect(renamedB).To(Equal(layout.LogicItemID(0)))
	})
})

var _ = Describe("MoveOrDeleteTemporaryLogicItem", func() {
	It("moves the item when the destination is representable", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeTemporary)
		editing.MoveOrDeleteTemporaryLogicItem(cd, &id, 5, 5)
		Expect(id.IsNull()).To(BeFalse())
		Expect(cd.Layout.LogicItem(id).Position).To(Equal(geometry.Point{X: 5, Y: 5}))
	})

	It("deletes the item when the destination overflows the grid", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: geometry.GridMax - 10, Y: 0}, editing.ModeTemporary)
		editing.MoveOrDeleteTemporaryLogicItem(cd, &id, 100, 0)
		Expect(id.IsNull()).To(BeTrue())
	})
})

var _ = Describe("ToggleInverter", func() {
	It("flips the inverter bit of the pin located at point", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)

		item := cd.Layout.LogicItem(id)
		pins := cd.Index.Connection.PinsAt(item.Position)
		Expect(pins).NotTo(BeEmpty())

		editing.ToggleInverter(cd, item.Position)

		after := cd.Layout.LogicItem(id)
		ref := pins[0]
		if ref.Kind == layoutindex.PinInput {
			Expect(after.Definition.InputInverters[ref.PinIndex]).To(BeTrue())
		} else {
			Expect(after.Definition.OutputInverters[ref.PinIndex]).To(BeTrue())
		}
	})
})

var _ = Describe("SetClockGeneratorAttributes", func() {
	It("panics for a non-clock-generator logic item", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		id := editing.AddLogicItem(cd, andGateDef(), geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)
		Expect(func() {
			editing.SetClockGeneratorAttributes(cd, id, layout.ClockGeneratorAttrs{})
		}).To(Panic())
	})

	It("overwrites attributes and returns the previous ones", func() {
		cd := editing.NewCircuitData()
		cd.Bus.Register(cd.Index)
		def := layout.LogicItemDefinition{
			Type:        layout.LogicItemClockGenerator,
			OutputCount: 1,
			OutputInverters: []bool{false},
			ClockGenerator: &layout.ClockGeneratorAttrs{Name: "clk", TimeOnNS: 10, TimeOffNS: 10},
		}
		id := editing.AddLogicItem(cd, def, geometry.Point{X: 0, Y: 0}, editing.ModeInsertOrDiscard)

		old := editing.SetClockGeneratorAttributes(cd, id, layout.ClockGeneratorAttrs{Name: "clk2", TimeOnNS: 20, TimeOffNS: 20})
		Expect(old.Name).To(Equal("clk"))
		Expect(cd.Layout.LogicItem(id).Definition.ClockGenerator.Name).To(Equal("clk2"))
	})
})
