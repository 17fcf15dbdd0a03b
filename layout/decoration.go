package layout

import "github.com/logiksim/editcircuit/geometry"

// DecorationType enumerates the non-connecting annotations Layout can
// store (spec.md §3.3). Only text labels exist today; the type exists so
// future decoration kinds don't change the public shape.
type DecorationType int

const (
	DecorationTextElement DecorationType = iota
)

// DecorationDefinition is the immutable blueprint for a decoration.
type DecorationDefinition struct {
	Type   DecorationType
	Text   string
	Width  int32
	Height int32
}

// PlacedDecoration is a decoration bound to a position and display state.
type PlacedDecoration struct {
	Definition DecorationDefinition
	Position   geometry.Point
	State      geometry.DisplayState
	Key        DecorationKey
}

// BodyRect returns the decoration's body rectangle, following the same
// full-representability rule logic items use (spec.md §3.3).
func (d DecorationDefinition) BodyRect(pos geometry.Point) (geometry.Rect, bool) {
	w, h := d.Width, d.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x1, okX := pos.X.Add(w)
	y1, okY := pos.Y.Add(h)
	if !okX || !okY {
		return geometry.Rect{}, false
	}
	return geometry.Rect{P0: pos, P1: geometry.Point{X: x1, Y: y1}}, true
}
