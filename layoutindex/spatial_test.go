package layoutindex_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layoutindex"
)

var _ = Describe("SpatialIndex", func() {
	var s *layoutindex.SpatialIndex

	BeforeEach(func() { s = layoutindex.NewSpatialIndex() })

	It("returns payloads whose rectangle intersects the query", func() {
		payload := layoutindex.LogicItemPayload(0)
		s.Insert(geometry.Rect{P0: geometry.Point{X: 0, Y: 0}, P1: geometry.Point{X: 4, Y: 4}}, payload)

		got := s.Query(geometry.Rect{P0: geometry.Point{X: 2, Y: 2}, P1: geometry.Point{X: 6, Y: 6}})
		Expect(got).To(ConsistOf(payload))
	})

	It("removes an entry by payload identity", func() {
		payload := layoutindex.DecorationPayload(0)
		s.Insert(geometry.Rect{P0: geometry.Point{X: 0, Y: 0}, P1: geometry.Point{X: 4, Y: 4}}, payload)
		s.Remove(payload)

		Expect(s.Query(geometry.Rect{P0: geometry.Point{X: 0, Y: 0}, P1: geometry.Point{X: 4, Y: 4}})).To(BeEmpty())
	})

	It("reports a point inside a stored rectangle for HasElement", func() {
		s.Insert(geometry.Rect{P0: geometry.Point{X: 0, Y: 0}, P1: geometry.Point{X: 4, Y: 4}}, layoutindex.LogicItemPayload(0))

		Expect(s.HasElement(geometry.PointFine{X: 2, Y: 2})).To(BeTrue())
	})

	It("recovers the stored rectangle for a payload", func() {
		payload := layoutindex.LogicItemPayload(7)
		rect := geometry.Rect{P0: geometry.Point{X: 1, Y: 1}, P1: geometry.Point{X: 3, Y: 3}}
		s.Insert(rect, payload)

		got, ok := s.RectFor(payload)
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(rect))
	})

	It("requires strict interior containment for QueryFullyInside", func() {
		payload := layoutindex.LogicItemPayload(0)
		s.Insert(geometry.Rect{P0: geometry.Point{X: 2, Y: 2}, P1: geometry.Point{X: 4, Y: 4}}, payload)

		touching := geometry.RectFine{P0: geometry.PointFine{X: 0, Y: 0}, P1: geometry.PointFine{X: 4, Y: 4}}
		Expect(s.QueryFullyInside(touching)).To(BeEmpty())

		strictlyInside := geometry.RectFine{P0: geometry.PointFine{X: 0, Y: 0}, P1: geometry.PointFine{X: 5, Y: 5}}
		Expect(s.QueryFullyInside(strictlyInside)).To(ConsistOf(payload))
	})
})

var _ = Describe("CollisionIndex", func() {
	var c *layoutindex.CollisionIndex

	BeforeEach(func() { c = layoutindex.NewCollisionIndex() })

	It("reports no collision against an empty grid", func() {
		cells := []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
		Expect(c.IsColliding(cells, layoutindex.CellLogicItemBody)).To(BeFalse())
	})

	It("lets two wire crossings share a cell", func() {
		p := []geometry.Point{{X: 0, Y: 0}}
		c.Occupy(p, layoutindex.CellWireCrossing)
		Expect(c.IsColliding(p, layoutindex.CellWireCrossing)).To(BeFalse())
		Expect(c.Count(p[0])).To(Equal(1))

		c.Occupy(p, layoutindex.CellWireCrossing)
		Expect(c.Count(p[0])).To(Equal(2))
	})

	It("collides a body against any existing occupant", func() {
		p := []geometry.Point{{X: 0, Y: 0}}
		c.Occupy(p, layoutindex.CellWireCrossing)
		Expect(c.IsColliding(p, layoutindex.CellLogicItemBody)).To(BeTrue())
	})

	It("collides a wire against an existing body", func() {
		p := []geometry.Point{{X: 0, Y: 0}}
		c.Occupy(p, layoutindex.CellLogicItemBody)
		Expect(c.IsColliding(p, layoutindex.CellWireCrossing)).To(BeTrue())
	})

	It("clears a cell only once every occupant has vacated", func() {
		p := []geometry.Point{{X: 0, Y: 0}}
		c.Occupy(p, layoutindex.CellWireCrossing)
		c.Occupy(p, layoutindex.CellWireCrossing)

		c.Vacate(p, layoutindex.CellWireCrossing)
		Expect(c.Tag(p[0])).To(Equal(layoutindex.CellWireCrossing))

		c.Vacate(p, layoutindex.CellWireCrossing)
		Expect(c.Tag(p[0])).To(Equal(layoutindex.CellEmpty))
	})

	It("enumerates cells along an ordered line inclusive of both endpoints", func() {
		line := geometry.NewOrderedLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 3, Y: 0})
		cells := layoutindex.LineCells(line)
		Expect(cells).To(HaveLen(4))
		Expect(cells[0]).To(Equal(geometry.Point{X: 0, Y: 0}))
		Expect(cells[3]).To(Equal(geometry.Point{X: 3, Y: 0}))
	})

	It("enumerates every cell inside a rectangle", func() {
		rect := geometry.Rect{P0: geometry.Point{X: 0, Y: 0}, P1: geometry.Point{X: 1, Y: 1}}
		cells := layoutindex.RectCells(rect)
		Expect(cells).To(HaveLen(4))
	})
})
