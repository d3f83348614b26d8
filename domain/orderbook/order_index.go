package orderbook

// orderIndex maps an external OrderID to its arena handle. Lookup and
// removal are O(1) expected; insert rejects a key already present.
type orderIndex struct {
	m map[OrderID]Handle
}

func newOrderIndex() *orderIndex {
	return &orderIndex{m: make(map[OrderID]Handle)}
}

func (idx *orderIndex) insert(id OrderID, h Handle) error {
	if _, exists := idx.m[id]; exists {
		return ErrDuplicateOrderID
	}
	idx.m[id] = h
	return nil
}

func (idx *orderIndex) lookup(id OrderID) (Handle, bool) {
	h, ok := idx.m[id]
	return h, ok
}

func (idx *orderIndex) remove(id OrderID) {
	delete(idx.m, id)
}

func (idx *orderIndex) len() int { return len(idx.m) }
