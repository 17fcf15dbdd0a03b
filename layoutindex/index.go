package layoutindex

import (
	"github.com/logiksim/editcircuit/geometry"
	"github.com/logiksim/editcircuit/layout"
	"github.com/logiksim/editcircuit/message"
)

// Index bundles the four sub-indices kept in sync with a layout.Layout by
// submit(info_message) (spec.md §4.2). It implements message.Observer so
// it can be registered on a message.Bus alongside selections.
//
// The spatial and collision indices only ever hold INSERTED elements:
// collision checks during the temporary→colliding transition test a
// candidate against already-inserted geometry, never against other
// uninserted (temporary/colliding) elements (spec.md §4.3). Uninserted
// wire trees are tracked by Layout alone.
type Index struct {
	Spatial    *SpatialIndex
	Collision  *CollisionIndex
	Connection *ConnectionIndex
	Keys       *KeyIndex
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		Spatial:    NewSpatialIndex(),
		Collision:  NewCollisionIndex(),
		Connection: NewConnectionIndex(),
		Keys:       NewKeyIndex(),
	}
}

// Submit implements message.Observer.
func (idx *Index) Submit(m message.Message) {
	switch msg := m.(type) {

	case message.LogicItemCreated:
		idx.Keys.RegisterLogicItem(msg.ID, msg.Key)
	case message.LogicItemIDUpdated:
		idx.Keys.RenameLogicItem(msg.NewID, msg.OldID)
	case message.LogicItemDeleted:
		idx.Keys.UnregisterLogicItem(msg.ID)

	case message.DecorationCreated:
		idx.Keys.RegisterDecoration(msg.ID, msg.Key)
	case message.DecorationIDUpdated:
		idx.Keys.RenameDecoration(msg.NewID, msg.OldID)
	case message.DecorationDeleted:
		idx.Keys.UnregisterDecoration(msg.ID)

	case message.SegmentCreated:
		idx.Keys.RegisterSegment(msg.Segment, msg.Key)
	case message.SegmentIDUpdated:
		idx.Keys.RenameSegment(msg.NewSegment, msg.OldSegment)
	case message.SegmentPartMoved, message.SegmentPartDeleted:
		// Uninserted segment geometry is owned by Layout; the key index
		// only tracks whole-segment identity, which these messages don't
		// change.

	case message.LogicItemInserted:
		idx.insertLogicItem(msg.ID, msg.Data)
	case message.LogicItemUninserted:
		idx.uninsertLogicItem(msg.ID, msg.Data)
	case message.InsertedLogicItemIDUpdated:
		idx.uninsertLogicItem(msg.OldID, msg.Data)
		idx.insertLogicItem(msg.NewID, msg.Data)

	case message.DecorationInserted:
		idx.insertDecoration(msg.ID, msg.Data)
	case message.DecorationUninserted:
		idx.uninsertDecoration(msg.ID, msg.Data)
	case message.InsertedDecorationIDUpdated:
		idx.uninsertDecoration(msg.OldID, msg.Data)
		idx.insertDecoration(msg.NewID, msg.Data)

	case message.SegmentInserted:
		idx.insertSegment(msg.Segment, msg.Data)
	case message.SegmentUninserted:
		idx.uninsertSegment(msg.Segment, msg.Data)
	case message.InsertedSegmentIDUpdated:
		idx.uninsertSegment(msg.OldSegment, msg.Data)
		idx.insertSegment(msg.NewSegment, msg.Data)

	case message.InsertedEndPointsUpdated:
		idx.updateEndpoints(msg.Segment, msg.OldEndpoints, msg.NewEndpoints)
	}
}

func (idx *Index) insertLogicItem(id layout.LogicItemID, data layout.PlacedLogicItem) {
	rect, ok := data.Definition.BodyRect(data.Position)
	if !ok {
		panic("layoutindex: inserted logic item body not representable")
	}
	idx.Spatial.Insert(rect, LogicItemPayload(id))
	idx.Collision.Occupy(RectCells(rect), CellLogicItemBody)
	idx.registerLogicItemPins(id, data)
}

func (idx *Index) uninsertLogicItem(id layout.LogicItemID, data layout.PlacedLogicItem) {
	rect, ok := data.Definition.BodyRect(data.Position)
	if !ok {
		return
	}
	idx.Spatial.Remove(LogicItemPayload(id))
	idx.Collision.Vacate(RectCells(rect), CellLogicItemBody)
	idx.unregisterLogicItemPins(id, data)
}

func (idx *Index) registerLogicItemPins(id layout.LogicItemID, data layout.PlacedLogicItem) {
	for i := 0; i < data.Definition.InputCount; i++ {
		p, orient := pinLocation(data, i, false)
		idx.Connection.AddPin(p, PinRef{Kind: PinInput, LogicItem: id, PinIndex: i, Orientation: orient})
	}
	for i := 0; i < data.Definition.OutputCount; i++ {
		p, orient := pinLocation(data, i, true)
		idx.Connection.AddPin(p, PinRef{Kind: PinOutput, LogicItem: id, PinIndex: i, Orientation: orient})
	}
}

func (idx *Index) unregisterLogicItemPins(id layout.LogicItemID, data layout.PlacedLogicItem) {
	for i := 0; i < data.Definition.InputCount; i++ {
		p, orient := pinLocation(data, i, false)
		idx.Connection.RemovePin(p, PinRef{Kind: PinInput, LogicItem: id, PinIndex: i, Orientation: orient})
	}
	for i := 0; i < data.Definition.OutputCount; i++ {
		p, orient := pinLocation(data, i, true)
		idx.Connection.RemovePin(p, PinRef{Kind: PinOutput, LogicItem: id, PinIndex: i, Orientation: orient})
	}
}

// pinLocation returns the grid point and outward orientation of pin i
// (input or output) of a placed logic item. Inputs sit on the body's
// left edge (x = P0.X) and face opposite the item's orientation; outputs
// sit on the right edge (x = P1.X) and face the item's orientation. The
// edges do not rotate with the orientation. Pin index i offsets along the
// perpendicular axis, one grid cell per row, following the one-row-per-pin
// layout LogicItemDefinition.BodyRect assumes.
func pinLocation(data layout.PlacedLogicItem, i int, isOutput bool) (geometry.Point, geometry.Orientation) {
	rect, ok := data.Definition.BodyRect(data.Position)
	if !ok {
		panic("layoutindex: cannot locate pins of an unrepresentable logic item")
	}

	orient := data.Definition.Orientation
	pinOrient := orient.Opposite()
	edgeX := rect.P0.X
	if isOutput {
		pinOrient = orient
		edgeX = rect.P1.X
	}

	return geometry.Point{X: edgeX, Y: rect.P0.Y.AddUnchecked(int32(i))}, pinOrient
}

func (idx *Index) insertDecoration(id layout.DecorationID, data layout.PlacedDecoration) {
	rect, ok := data.Definition.BodyRect(data.Position)
	if !ok {
		panic("layoutindex: inserted decoration body not representable")
	}
	idx.Spatial.Insert(rect, DecorationPayload(id))
	idx.Collision.Occupy(RectCells(rect), CellDecorationBody)
}

func (idx *Index) uninsertDecoration(id layout.DecorationID, data layout.PlacedDecoration) {
	rect, ok := data.Definition.BodyRect(data.Position)
	if !ok {
		return
	}
	idx.Spatial.Remove(DecorationPayload(id))
	idx.Collision.Vacate(RectCells(rect), CellDecorationBody)
}

func (idx *Index) insertSegment(seg layout.Segment, data layout.SegmentInfo) {
	idx.Spatial.Insert(data.Line.BoundingRect(), SegmentPayload(seg))
	idx.Collision.Occupy(RectCells(data.Line.BoundingRect()), CellWireCrossing)
	idx.registerSegmentEndpoints(seg, data)
}

func (idx *Index) uninsertSegment(seg layout.Segment, data layout.SegmentInfo) {
	idx.Spatial.Remove(SegmentPayload(seg))
	idx.Collision.Vacate(RectCells(data.Line.BoundingRect()), CellWireCrossing)
	idx.unregisterSegmentEndpoints(seg, data)
}

// registerSegmentEndpoints records both endpoints of an inserted segment
// in the connection index. Their Orientation is left undirected.
func (idx *Index) registerSegmentEndpoints(seg layout.Segment, data layout.SegmentInfo) {
	idx.Connection.AddEndpoint(data.Line.P0, WireEndpointRef{Segment: seg, AtP1: false, Orientation: geometry.OrientationUndirected})
	idx.Connection.AddEndpoint(data.Line.P1, WireEndpointRef{Segment: seg, AtP1: true, Orientation: geometry.OrientationUndirected})
}

func (idx *Index) unregisterSegmentEndpoints(seg layout.Segment, data layout.SegmentInfo) {
	idx.Connection.RemoveEndpoint(data.Line.P0, WireEndpointRef{Segment: seg, AtP1: false, Orientation: geometry.OrientationUndirected})
	idx.Connection.RemoveEndpoint(data.Line.P1, WireEndpointRef{Segment: seg, AtP1: true, Orientation: geometry.OrientationUndirected})
}

func (idx *Index) updateEndpoints(seg layout.Segment, oldTypes, newTypes [2]layout.SegmentPointType) {
	// Point-type bookkeeping is purely informational for the spatial and
	// collision indices (geometry is unchanged); nothing to update here.
}
