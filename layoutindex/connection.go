package layoutindex

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
)

// PinKind distinguishes a logic item's input pins from its output pins
// within the connection index.
type PinKind int

const (
	PinInput PinKind = iota
	PinOutput
)

// PinRef is one logic-item connector located at a grid point.
type PinRef struct {
	Kind        PinKind
	LogicItem   layout.LogicItemID
	PinIndex    int
	Orientation geometry.Orientation
}

// WireEndpointRef is one wire segment endpoint located at a grid point,
// classified as either an input (root) or output-compatible free end.
type WireEndpointRef struct {
	Segment     layout.Segment
	AtP1        bool
	Orientation geometry.Orientation
}

// ConnectionIndex maps a grid point to every logic-item pin and inserted
// wire endpoint located there, used to detect and realize input/output
// adjacency between wires and logic items on insertion (spec.md §4.2).
type ConnectionIndex struct {
	pins      map[geometry.Point][]PinRef
	endpoints map[geometry.Point][]WireEndpointRef
}

func NewConnectionIndex() *ConnectionIndex {
	return &ConnectionIndex{
		pins:      make(map[geometry.Point][]PinRef),
		endpoints: make(map[geometry.Point][]WireEndpointRef),
	}
}

func (c *ConnectionIndex) AddPin(p geometry.Point, ref PinRef) {
	c.pins[p] = append(c.pins[p], ref)
}

func (c *ConnectionIndex) RemovePin(p geometry.Point, ref PinRef) {
	refs := c.pins[p]
	for i, r := range refs {
		if r == ref {
			c.pins[p] = append(refs[:i], refs[i+1:]...)
			break
		}
	}
	if len(c.pins[p]) == 0 {
		delete(c.pins, p)
	}
}

// PinsAt returns every logic-item pin registered at p.
func (c *ConnectionIndex) PinsAt(p geometry.Point) []PinRef {
	return c.pins[p]
}

// OutputAt returns the output pin at p compatible with orientation
// (opposite-facing, per spec.md §3.4 invariant 2), and whether one exists.
func (c *ConnectionIndex) OutputAt(p geometry.Point, wireOrientation geometry.Orientation) (PinRef, bool) {
	for _, ref := range c.pins[p] {
		if ref.Kind == PinOutput && ref.Orientation == wireOrientation.Opposite() {
			return ref, true
		}
	}
	return PinRef{}, false
}

func (c *ConnectionIndex) AddEndpoint(p geometry.Point, ref WireEndpointRef) {
	c.endpoints[p] = append(c.endpoints[p], ref)
}

func (c *ConnectionIndex) RemoveEndpoint(p geometry.Point, ref WireEndpointRef) {
	refs := c.endpoints[p]
	for i, r := range refs {
		if r == ref {
			c.endpoints[p] = append(refs[:i], refs[i+1:]...)
			break
		}
	}
	if len(c.endpoints[p]) == 0 {
		delete(c.endpoints, p)
	}
}

// EndpointsAt returns every inserted wire endpoint registered at p.
func (c *ConnectionIndex) EndpointsAt(p geometry.Point) []WireEndpointRef {
	return c.endpoints[p]
}
