package clipboard

import (
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/persist"
	"github.com/logiksim/editcircuit/selection"
)

// CopySelection serializes the elements sel references out of l into a
// Payload. A partially selected wire segment contributes only the
// selected parts' endpoints, matching what a paste should reproduce —
// the part the user actually highlighted, not the whole wire it lives on.
func CopySelection(l *layout.Layout, sel *selection.Selection) *Payload {
	p := &Payload{Version: persist.CurrentVersion}

	for _, id := range sel.LogicItems() {
		item := l.LogicItem(id)
		rec := persist.LogicItemRecord{
			Type:            int(item.Definition.Type),
			InputCount:      item.Definition.InputCount,
			OutputCount:     item.Definition.OutputCount,
			Position:        persist.SavePoint{X: int32(item.Position.X), Y: int32(item.Position.Y)},
			Orientation:     int(item.Definition.Orientation),
			InputInverters:  item.Definition.InputInverters,
			OutputInverters: item.Definition.OutputInverters,
		}
		if item.Definition.ClockGenerator != nil {
			rec.Attrs = &persist.ClockGeneratorAttrsRecord{
				Name:        item.Definition.ClockGenerator.Name,
				TimeOnNS:    item.Definition.ClockGenerator.TimeOnNS,
				TimeOffNS:   item.Definition.ClockGenerator.TimeOffNS,
				IsSymmetric: item.Definition.ClockGenerator.IsSymmetric,
			}
		}
		p.LogicItems = append(p.LogicItems, rec)
	}

	for _, id := range sel.Decorations() {
		dec := l.Decoration(id)
		p.Decorations = append(p.Decorations, persist.DecorationRecord{
			Type:     int(dec.Definition.Type),
			Text:     dec.Definition.Text,
			Width:    dec.Definition.Width,
			Height:   dec.Definition.Height,
			Position: persist.SavePoint{X: int32(dec.Position.X), Y: int32(dec.Position.Y)},
		})
	}

	for _, seg := range sel.Segments() {
		tree := l.SegmentTreeFor(seg.Wire)
		info := tree.Segment(seg.Index)
		for _, part := range sel.SegmentParts(seg) {
			p0 := info.Line.PointAt(part.Begin)
			p1 := info.Line.PointAt(part.End)
			p0Type := info.P0Type
			p1Type := info.P1Type
			if part.Begin != 0 {
				p0Type = layout.SegmentPointShadow
			}
			if part.End != info.Line.Length() {
				p1Type = layout.SegmentPointShadow
			}
			p.WireSegments = append(p.WireSegments, persist.WireSegmentRecord{
				WireID: int(seg.Wire),
				P0:     persist.SavePoint{X: int32(p0.X), Y: int32(p0.Y)},
				P1:     persist.SavePoint{X: int32(p1.X), Y: int32(p1.Y)},
				P0Type: int(p0Type),
				P1Type: int(p1Type),
			})
		}
	}

	return p
}
