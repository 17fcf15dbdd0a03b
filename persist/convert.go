package persist

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
)

// ToLayout rebuilds a fresh layout.Layout from a decoded Document. Every
// element is inserted directly at DisplayNormal with a freshly minted
// key — loading a file starts a new editing session, it does not resume
// one (stable keys from a previous session have no meaning once
// reloaded).
func ToLayout(doc *Document) *layout.Layout {
	l := layout.NewLayout()
	var nextKey uint64 = 1

	for _, rec := range doc.LogicItems {
		def := layout.LogicItemDefinition{
			Type:            layout.LogicItemType(rec.Type),
			InputCount:      rec.InputCount,
			OutputCount:     rec.OutputCount,
			Orientation:     geometry.Orientation(rec.Orientation),
			InputInverters:  append([]bool(nil), rec.InputInverters...),
			OutputInverters: append([]bool(nil), rec.OutputInverters...),
		}
		if rec.Attrs != nil {
			def.ClockGenerator = &layout.ClockGeneratorAttrs{
				Name:        rec.Attrs.Name,
				TimeOnNS:    rec.Attrs.TimeOnNS,
				TimeOffNS:   rec.Attrs.TimeOffNS,
				IsSymmetric: rec.Attrs.IsSymmetric,
			}
		}
		pos := geometry.Point{X: geometry.Grid(rec.Position.X), Y: geometry.Grid(rec.Position.Y)}
		l.AddLogicItem(def, pos, geometry.DisplayNormal, layout.LogicItemKey(nextKey))
		nextKey++
	}

	for _, rec := range doc.Decorations {
		def := layout.DecorationDefinition{Type: layout.DecorationType(rec.Type), Text: rec.Text, Width: rec.Width, Height: rec.Height}
		pos := geometry.Point{X: geometry.Grid(rec.Position.X), Y: geometry.Grid(rec.Position.Y)}
		l.AddDecoration(def, pos, geometry.DisplayNormal, layout.DecorationKey(nextKey))
		nextKey++
	}

	byWire := make(map[int][]WireSegmentRecord)
	order := make([]int, 0)
	for _, rec := range doc.WireSegments {
		if _, seen := byWire[rec.WireID]; !seen {
			order = append(order, rec.WireID)
		}
		byWire[rec.WireID] = append(byWire[rec.WireID], rec)
	}
	for _, wid := range order {
		wireID := l.AllocateWireID()
		tree := l.SegmentTreeFor(wireID)
		for _, rec := range byWire[wid] {
			line := geometry.NewOrderedLine(
				geometry.Point{X: geometry.Grid(rec.P0.X), Y: geometry.Grid(rec.P0.Y)},
				geometry.Point{X: geometry.Grid(rec.P1.X), Y: geometry.Grid(rec.P1.Y)},
			)
			tree.AddSegment(layout.SegmentInfo{
				Line:   line,
				P0Type: layout.SegmentPointType(rec.P0Type),
				P1Type: layout.SegmentPointType(rec.P1Type),
			}, layout.SegmentKey(nextKey))
			nextKey++
		}
	}

	return l
}

// FromLayout serializes every inserted element of l into a Document
// (view and simulation config left at their zero values — the caller,
// typically a Modifier owner that also tracks UI state, fills those in).
func FromLayout(l *layout.Layout) *Document {
	doc := &Document{Version: CurrentVersion}

	for id := layout.LogicItemID(0); int(id) < l.LogicItemCount(); id++ {
		item := l.LogicItem(id)
		if !item.State.IsInserted() {
			continue
		}
		rec := LogicItemRecord{
			Type:            int(item.Definition.Type),
			InputCount:      item.Definition.InputCount,
			OutputCount:     item.Definition.OutputCount,
			Position:        SavePoint{X: int32(item.Position.X), Y: int32(item.Position.Y)},
			Orientation:     int(item.Definition.Orientation),
			InputInverters:  item.Definition.InputInverters,
			OutputInverters: item.Definition.OutputInverters,
		}
		if item.Definition.ClockGenerator != nil {
			rec.Attrs = &ClockGeneratorAttrsRecord{
				Name:        item.Definition.ClockGenerator.Name,
				TimeOnNS:    item.Definition.ClockGenerator.TimeOnNS,
				TimeOffNS:   item.Definition.ClockGenerator.TimeOffNS,
				IsSymmetric: item.Definition.ClockGenerator.IsSymmetric,
			}
		}
		doc.LogicItems = append(doc.LogicItems, rec)
	}

	for id := layout.DecorationID(0); int(id) < l.DecorationCount(); id++ {
		dec := l.Decoration(id)
		if !dec.State.IsInserted() {
			continue
		}
		doc.Decorations = append(doc.Decorations, DecorationRecord{
			Type:     int(dec.Definition.Type),
			Text:     dec.Definition.Text,
			Width:    dec.Definition.Width,
			Height:   dec.Definition.Height,
			Position: SavePoint{X: int32(dec.Position.X), Y: int32(dec.Position.Y)},
		})
	}

	for _, wireID := range l.InsertedWireIDs() {
		tree := l.SegmentTreeFor(wireID)
		for _, i := range tree.AllIndices() {
			seg := tree.Segment(i)
			doc.WireSegments = append(doc.WireSegments, WireSegmentRecord{
				WireID: int(wireID),
				P0:     SavePoint{X: int32(seg.Line.P0.X), Y: int32(seg.Line.P0.Y)},
				P1:     SavePoint{X: int32(seg.Line.P1.X), Y: int32(seg.Line.P1.Y)},
				P0Type: int(seg.P0Type),
				P1Type: int(seg.P1Type),
			})
		}
	}

	return doc
}
