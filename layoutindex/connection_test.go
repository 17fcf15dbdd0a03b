package layoutindex_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/layoutindex"
)

var _ = Describe("ConnectionIndex", func() {
	var c *layoutindex.ConnectionIndex

	BeforeEach(func() { c = layoutindex.NewConnectionIndex() })

	It("registers and looks up a pin at a point", func() {
		p := geometry.Point{X: 2, Y: 2}
		ref := layoutindex.PinRef{Kind: layoutindex.PinInput, LogicItem: 0, PinIndex: 0, Orientation: geometry.OrientationLeft}
		c.AddPin(p, ref)

		got := c.PinsAt(p)
		Expect(got).To(ConsistOf(ref))
	})

	It("removes a pin and clears the bucket when it was the last one", func() {
		p := geometry.Point{X: 2, Y: 2}
		ref := layoutindex.PinRef{Kind: layoutindex.PinInput, LogicItem: 0, PinIndex: 0}
		c.AddPin(p, ref)
		c.RemovePin(p, ref)
		Expect(c.PinsAt(p)).To(BeEmpty())
	})

	It("finds an output pin oriented opposite the probing wire", func() {
		p := geometry.Point{X: 5, Y: 5}
		out := layoutindex.PinRef{Kind: layoutindex.PinOutput, LogicItem: 1, Orientation: geometry.OrientationRight}
		c.AddPin(p, out)

		got, ok := c.OutputAt(p, geometry.OrientationLeft)
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(out))

		_, ok = c.OutputAt(p, geometry.OrientationRight)
		Expect(ok).To(BeFalse())
	})

	It("registers and looks up wire endpoints at a point", func() {
		p := geometry.Point{X: 0, Y: 0}
		ref := layoutindex.WireEndpointRef{Segment: layout.Segment{Wire: 3, Index: 0}, AtP1: false}
		c.AddEndpoint(p, ref)

		Expect(c.EndpointsAt(p)).To(ConsistOf(ref))

		c.RemoveEndpoint(p, ref)
		Expect(c.EndpointsAt(p)).To(BeEmpty())
	})
})
