package layout

import "github.com/logiksim/editcircuit/geometry"

// LogicItemType enumerates the kinds of logic items the layout can store
// (spec.md §3.2).
type LogicItemType int

const (
	LogicItemAnd LogicItemType = iota
	LogicItemOr
	LogicItemXor
	LogicItemNand
	LogicItemNor
	LogicItemBuffer
	LogicItemClockGenerator
	LogicItemFlipFlopD
	LogicItemFlipFlopJK
	LogicItemFlipFlopSR
	LogicItemLatchD
	LogicItemShiftRegister
	LogicItemButton
	LogicItemLED
	LogicItemDisplayNumber
	LogicItemDisplayASCII
)

func (t LogicItemType) String() string {
	names := [...]string{
		"and", "or", "xor", "nand", "nor", "buffer", "clock_generator",
		"flipflop_d", "flipflop_jk", "flipflop_sr", "latch_d",
		"shift_register", "button", "led", "display_number", "display_ascii",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// ClockGeneratorAttrs carries the extra configuration clock generator logic
// items have (spec.md §3.2).
type ClockGeneratorAttrs struct {
	Name       string
	TimeOnNS   int64
	TimeOffNS  int64
	IsSymmetric bool
}

// LogicItemDefinition is the immutable blueprint for a logic item: what
// Layout.AddLogicItem needs besides position and display state.
type LogicItemDefinition struct {
	Type             LogicItemType
	InputCount       int
	OutputCount      int
	Orientation      geometry.Orientation
	InputInverters   []bool
	OutputInverters  []bool
	ClockGenerator   *ClockGeneratorAttrs
}

// PlacedLogicItem is a logic item definition bound to a position and
// display state — what Layout actually stores per id.
type PlacedLogicItem struct {
	Definition LogicItemDefinition
	Position   geometry.Point
	State      geometry.DisplayState
	Key        LogicItemKey
}

// bodySize returns the logic item's body footprint in grid cells, one cell
// tall per input/output pin row and two cells wide (body + connector
// stubs), the same minimal rectangle model the teacher's PE tiles use for
// their single-cell body (cgra.Tile).
func (d LogicItemDefinition) bodySize() (w, h int32) {
	h = int32(d.InputCount)
	if int32(d.OutputCount) > h {
		h = int32(d.OutputCount)
	}
	if h < 1 {
		h = 1
	}
	return 2, h
}

// BodyRect returns the logic item's body rectangle in grid coordinates.
// Ok is false when the rectangle is not fully representable on the grid
// (spec.md §3.2 invariant); Layout.AddLogicItem refuses to create the item
// in that case.
func (d LogicItemDefinition) BodyRect(pos geometry.Point) (geometry.Rect, bool) {
	w, h := d.bodySize()
	x1, okX := pos.X.Add(int32(w))
	y1, okY := pos.Y.Add(int32(h))
	if !okX || !okY {
		return geometry.Rect{}, false
	}
	return geometry.Rect{P0: pos, P1: geometry.Point{X: x1, Y: y1}}, true
}
