package layoutindex

import (
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/message"
)

// BuildIndex derives a fresh Index by replaying every inserted element of l
// as a synthetic Inserted message. Used wherever a Layout arrives without
// a history of the messages that built it — loading a file, or the
// validator package's from-scratch comparison — since Index otherwise only
// ever learns about a Layout incrementally through the bus.
func BuildIndex(l *layout.Layout) *Index {
	idx := NewIndex()
	for id := layout.LogicItemID(0); int(id) < l.LogicItemCount(); id++ {
		item := l.LogicItem(id)
		if item.State.IsInserted() {
			idx.Submit(message.LogicItemInserted{ID: id, Data: item})
		}
	}
	for id := layout.DecorationID(0); int(id) < l.DecorationCount(); id++ {
		dec := l.Decoration(id)
		if dec.State.IsInserted() {
			idx.Submit(message.DecorationInserted{ID: id, Data: dec})
		}
	}
	for _, wireID := range l.InsertedWireIDs() {
		tree := l.SegmentTreeFor(wireID)
		for _, i := range tree.AllIndices() {
			seg := layout.Segment{Wire: wireID, Index: i}
			idx.Submit(message.SegmentInserted{Segment: seg, Data: tree.Segment(i)})
		}
	}
	return idx
}
