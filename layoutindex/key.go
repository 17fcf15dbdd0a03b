package layoutindex

import "github.com/logiksim/editcircuit/layout"

// KeyIndex is the bidirectional map between stable keys and compact ids
// for all three element kinds, and the sole authority that reassigns
// stable keys on swap-delete (spec.md §3.5, §4.2). Keys are monotonically
// allocated and never reused.
type KeyIndex struct {
	nextLogicItemKey  layout.LogicItemKey
	nextDecorationKey layout.DecorationKey
	nextSegmentKey    layout.SegmentKey

	logicItemKeyToID map[layout.LogicItemKey]layout.LogicItemID
	logicItemIDToKey map[layout.LogicItemID]layout.LogicItemKey

	decorationKeyToID map[layout.DecorationKey]layout.DecorationID
	decorationIDToKey map[layout.DecorationID]layout.DecorationKey

	segmentKeyToSegment map[layout.SegmentKey]layout.Segment
	segmentToKey        map[layout.Segment]layout.SegmentKey
}

// NewKeyIndex returns an empty key index. Key 0 is reserved (Null*Key) so
// counters start at 1.
func NewKeyIndex() *KeyIndex {
	return &KeyIndex{
		nextLogicItemKey:    1,
		nextDecorationKey:   1,
		nextSegmentKey:      1,
		logicItemKeyToID:    make(map[layout.LogicItemKey]layout.LogicItemID),
		logicItemIDToKey:    make(map[layout.LogicItemID]layout.LogicItemKey),
		decorationKeyToID:   make(map[layout.DecorationKey]layout.DecorationID),
		decorationIDToKey:   make(map[layout.DecorationID]layout.DecorationKey),
		segmentKeyToSegment: make(map[layout.SegmentKey]layout.Segment),
		segmentToKey:        make(map[layout.Segment]layout.SegmentKey),
	}
}

// NewLogicItemKey allocates a fresh, never-reused logic item key. Callers
// (editing functions) allocate the key before calling Layout.AddLogicItem
// and pass it along so Layout and KeyIndex agree on it from the start.
func (k *KeyIndex) NewLogicItemKey() layout.LogicItemKey {
	key := k.nextLogicItemKey
	k.nextLogicItemKey++
	return key
}

func (k *KeyIndex) NewDecorationKey() layout.DecorationKey {
	key := k.nextDecorationKey
	k.nextDecorationKey++
	return key
}

func (k *KeyIndex) NewSegmentKey() layout.SegmentKey {
	key := k.nextSegmentKey
	k.nextSegmentKey++
	return key
}

// --- Logic items ---

func (k *KeyIndex) RegisterLogicItem(id layout.LogicItemID, key layout.LogicItemKey) {
	k.logicItemKeyToID[key] = id
	k.logicItemIDToKey[id] = key
}

func (k *KeyIndex) UnregisterLogicItem(id layout.LogicItemID) {
	key, ok := k.logicItemIDToKey[id]
	if !ok {
		return
	}
	delete(k.logicItemIDToKey, id)
	delete(k.logicItemKeyToID, key)
}

// RenameLogicItem moves the key bound to oldID so that it is now bound to
// newID — called when a swap-delete moves the last logic item into the
// deleted slot (spec.md §3.5).
func (k *KeyIndex) RenameLogicItem(newID, oldID layout.LogicItemID) {
	key, ok := k.logicItemIDToKey[oldID]
	if !ok {
		return
	}
	delete(k.logicItemIDToKey, oldID)
	k.logicItemIDToKey[newID] = key
	k.logicItemKeyToID[key] = newID
}

func (k *KeyIndex) LogicItemIDForKey(key layout.LogicItemKey) (layout.LogicItemID, bool) {
	id, ok := k.logicItemKeyToID[key]
	return id, ok
}

func (k *KeyIndex) LogicItemKeyForID(id layout.LogicItemID) (layout.LogicItemKey, bool) {
	key, ok := k.logicItemIDToKey[id]
	return key, ok
}

// --- Decorations ---

func (k *KeyIndex) RegisterDecoration(id layout.DecorationID, key layout.DecorationKey) {
	k.decorationKeyToID[key] = id
	k.decorationIDToKey[id] = key
}

func (k *KeyIndex) UnregisterDecoration(id layout.DecorationID) {
	key, ok := k.decorationIDToKey[id]
	if !ok {
		return
	}
	delete(k.decorationIDToKey, id)
	delete(k.decorationKeyToID, key)
}

func (k *KeyIndex) RenameDecoration(newID, oldID layout.DecorationID) {
	key, ok := k.decorationIDToKey[oldID]
	if !ok {
		return
	}
	delete(k.decorationIDToKey, oldID)
	k.decorationIDToKey[newID] = key
	k.decorationKeyToID[key] = newID
}

func (k *KeyIndex) DecorationIDForKey(key layout.DecorationKey) (layout.DecorationID, bool) {
	id, ok := k.decorationKeyToID[key]
	return id, ok
}

func (k *KeyIndex) DecorationKeyForID(id layout.DecorationID) (layout.DecorationKey, bool) {
	key, ok := k.decorationIDToKey[id]
	return key, ok
}

// --- Segments ---

func (k *KeyIndex) RegisterSegment(seg layout.Segment, key layout.SegmentKey) {
	k.segmentKeyToSegment[key] = seg
	k.segmentToKey[seg] = key
}

func (k *KeyIndex) UnregisterSegment(seg layout.Segment) {
	key, ok := k.segmentToKey[seg]
	if !ok {
		return
	}
	delete(k.segmentToKey, seg)
	delete(k.segmentKeyToSegment, key)
}

// RenameSegment moves the key bound to oldSeg so it is now bound to
// newSeg — covers both a swap-delete within a wire's tree and a segment
// being reassigned to a different wire id (merge/split).
func (k *KeyIndex) RenameSegment(newSeg, oldSeg layout.Segment) {
	key, ok := k.segmentToKey[oldSeg]
	if !ok {
		return
	}
	delete(k.segmentToKey, oldSeg)
	k.segmentToKey[newSeg] = key
	k.segmentKeyToSegment[key] = newSeg
}

func (k *KeyIndex) SegmentForKey(key layout.SegmentKey) (layout.Segment, bool) {
	seg, ok := k.segmentKeyToSegment[key]
	return seg, ok
}

func (k *KeyIndex) KeyForSegment(seg layout.Segment) (layout.SegmentKey, bool) {
	key, ok := k.segmentToKey[seg]
	return key, ok
}

// IsBijection reports whether every registered key maps back to the id it
// is the value for and vice versa — the universal invariant from spec.md
// §8 item 5, used by the debug-mode MessageValidator and by tests.
func (k *KeyIndex) IsBijection() bool {
	for key, id := range k.logicItemKeyToID {
		if k.logicItemIDToKey[id] != key {
			return false
		}
	}
	for id, key := range k.logicItemIDToKey {
		if k.logicItemKeyToID[key] != id {
			return false
		}
	}
	for key, id := range k.decorationKeyToID {
		if k.decorationIDToKey[id] != key {
			return false
		}
	}
	for key, seg := range k.segmentKeyToSegment {
		if k.segmentToKey[seg] != key {
			return false
		}
	}
	return true
}
