package orderbook

// priceLevel is a FIFO queue of resting orders at one (side, price)
// coordinate. Its list is intrusive: links live on the arena slots
// themselves, resolved through arena on every traversal.
type priceLevel struct {
	price Price
	side  Side

	arena *Arena

	head, tail Handle

	aggregateQty Quantity
	count        int
}

func newPriceLevel(arena *Arena, side Side, price Price) *priceLevel {
	return &priceLevel{
		price: price,
		side:  side,
		arena: arena,
		head:  NullHandle,
		tail:  NullHandle,
	}
}

// appendTail links h as the new tail. O(1).
func (p *priceLevel) appendTail(h Handle) {
	slot := p.arena.Get(h)
	slot.prev = p.tail
	slot.next = NullHandle
	slot.level = p

	if p.tail == NullHandle {
		p.head = h
	} else {
		p.arena.Get(p.tail).next = h
	}
	p.tail = h

	p.count++
	p.aggregateQty += slot.remaining
}

// peekHead returns the oldest resting handle, or NullHandle if empty.
func (p *priceLevel) peekHead() Handle {
	return p.head
}

// unlink removes h from the list in O(1), patching its neighbors and
// updating head/tail if h sat at either end.
func (p *priceLevel) unlink(h Handle) {
	slot := p.arena.Get(h)

	if slot.prev != NullHandle {
		p.arena.Get(slot.prev).next = slot.next
	} else {
		p.head = slot.next
	}

	if slot.next != NullHandle {
		p.arena.Get(slot.next).prev = slot.prev
	} else {
		p.tail = slot.prev
	}

	p.aggregateQty -= slot.remaining
	p.count--

	slot.prev = NullHandle
	slot.next = NullHandle
	slot.level = nil
}

// decrementHeadQty subtracts amount from the head order's remaining
// quantity. If the head is thereby fully consumed it is unlinked and
// its handle is returned alongside ok == true.
func (p *priceLevel) decrementHeadQty(amount Quantity) (freed Handle, ok bool) {
	h := p.head
	slot := p.arena.Get(h)

	slot.remaining -= amount
	p.aggregateQty -= amount

	if slot.remaining == 0 {
		p.unlink(h)
		return h, true
	}
	return NullHandle, false
}

func (p *priceLevel) isEmpty() bool { return p.count == 0 }
