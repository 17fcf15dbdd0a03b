package editing

import "github.com/logiksim/editcircuit/geometry"

// InsertionMode is the mode an operation requests an element transition
// toward (spec.md §4.3, GLOSSARY). It is distinct from DisplayState, which
// is the four-valued state actually stored on the element.
type InsertionMode int

const (
	ModeTemporary InsertionMode = iota
	ModeCollisions
	ModeInsertOrDiscard
)

// Hint lets a caller assert the outcome of a pending collision check and
// short-circuit the CollisionIndex query — useful when the caller already
// knows the answer (e.g. it just performed an equivalent check itself).
type Hint int

const (
	HintNone Hint = iota
	HintExpectValid
	HintAssumeColliding
)

// elementHandle adapts one concrete kind of insertable element (logic
// item or decoration) to the shared insertion-mode state machine in
// stepTowardMode. Wire segments go through changeSegmentInsertionMode
// instead.
type elementHandle interface {
	DisplayState() geometry.DisplayState
	SetDisplayState(geometry.DisplayState)
	IsColliding(cd *CircuitData) bool
	EmitInserted(cd *CircuitData)
	EmitUninserted(cd *CircuitData)
	DeleteUninserted(cd *CircuitData)
}

// stepTowardMode drives h through the insertion-mode state machine
// described in spec.md §4.3 until it reaches a state stable under target,
// always transiting via colliding when changing mode. It returns true if
// the element was deleted along the way (target == ModeInsertOrDiscard
// from an element that turned out to collide).
func stepTowardMode(cd *CircuitData, h elementHandle, target InsertionMode, hint Hint) (deleted bool) {
	for {
		cur := h.DisplayState()

		switch target {
		case ModeTemporary:
			switch cur {
			case geometry.DisplayNormal, geometry.DisplayValid:
				h.EmitUninserted(cd)
				h.SetDisplayState(geometry.DisplayTemporary)
			case geometry.DisplayColliding:
				h.SetDisplayState(geometry.DisplayTemporary)
			}
			return false

		case ModeCollisions:
			switch cur {
			case geometry.DisplayTemporary:
				if colliding(cd, h, hint) {
					h.SetDisplayState(geometry.DisplayColliding)
				} else {
					h.SetDisplayState(geometry.DisplayValid)
					h.EmitInserted(cd)
				}
			case geometry.DisplayNormal:
				h.SetDisplayState(geometry.DisplayValid)
			}
			return false

		case ModeInsertOrDiscard:
			switch cur {
			case geometry.DisplayValid:
				h.SetDisplayState(geometry.DisplayNormal)
				return false
			case geometry.DisplayColliding:
				h.SetDisplayState(geometry.DisplayTemporary)
				h.DeleteUninserted(cd)
				return true
			case geometry.DisplayNormal:
				return false
			case geometry.DisplayTemporary:
				if colliding(cd, h, hint) {
					h.SetDisplayState(geometry.DisplayColliding)
					continue
				}
				h.SetDisplayState(geometry.DisplayValid)
				h.EmitInserted(cd)
				continue
			}
		}
	}
}

func colliding(cd *CircuitData, h elementHandle, hint Hint) bool {
	switch hint {
	case HintExpectValid:
		return false
	case HintAssumeColliding:
		return true
	default:
		return h.IsColliding(cd)
	}
}
