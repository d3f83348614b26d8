package orderbook

import "math"

// Book is the facade: it owns one arena, one order index, and both
// book sides for a single instrument. It is single-writer; none of
// its operations are safe to call concurrently without an external
// serializing queue.
type Book struct {
	instrument string

	arena *Arena
	index *orderIndex
	bids  *bookSide
	asks  *bookSide

	tradeSeq uint64
}

// NewBook constructs an empty book with a fixed, non-growing arena.
func NewBook(instrumentTag string, arenaCapacity int) *Book {
	return &Book{
		instrument: instrumentTag,
		arena:      NewArena(arenaCapacity),
		index:      newOrderIndex(),
		bids:       newBookSide(Buy),
		asks:       newBookSide(Sell),
	}
}

// Instrument returns the book's instrument tag.
func (b *Book) Instrument() string { return b.instrument }

// PlaceLimit submits a new limit order. See spec: quantity must be
// non-zero and order_id must be unused, both checked before any
// state change. A fully-matched incoming order never allocates an
// arena slot, even when the arena has no free capacity.
func (b *Book) PlaceLimit(orderID OrderID, side Side, price Price, quantity Quantity) (PlaceReport, error) {
	if quantity == 0 {
		return PlaceReport{}, ErrInvalidQuantity
	}
	if _, exists := b.index.lookup(orderID); exists {
		return PlaceReport{}, ErrDuplicateOrderID
	}

	remaining, trades := b.match(orderID, side, price, quantity, nil)
	filled := quantity - remaining

	report := PlaceReport{
		Filled:   filled,
		Resting:  remaining,
		Trades:   trades,
		RestedAt: NullHandle,
	}

	if remaining == 0 {
		return report, nil
	}

	h, err := b.arena.Alloc()
	if err != nil {
		// Trades already emitted above are final; the report still
		// carries them even though the residual could not rest.
		return report, ErrCapacityExhausted
	}

	slot := b.arena.Get(h)
	slot.orderID = orderID
	slot.side = side
	slot.price = price
	slot.remaining = remaining

	if err := b.index.insert(orderID, h); err != nil {
		// the id was checked free above; a live duplicate here is a
		// programmer error, not a runtime condition.
		panic("orderbook: index/arena disagreement on insert")
	}

	lvl := b.sideOf(side).getOrCreate(b.arena, price)
	lvl.appendTail(h)

	report.RestedAt = h
	return report, nil
}

// Cancel removes a resting order, freeing its slot.
func (b *Book) Cancel(orderID OrderID) (CancelReport, error) {
	h, ok := b.index.lookup(orderID)
	if !ok {
		return CancelReport{}, ErrUnknownOrderID
	}

	slot := b.arena.Get(h)
	lvl := slot.level
	cancelled := slot.remaining

	lvl.unlink(h)
	b.sideOf(slot.side).removeIfEmpty(lvl)

	b.index.remove(orderID)
	b.arena.Free(h)

	return CancelReport{CancelledQty: cancelled}, nil
}

// Modify adjusts a resting order's price and/or quantity. A
// same-price, quantity-decreasing modify retains the order's time
// priority; anything else is equivalent to cancel followed by
// place_limit, which loses it.
func (b *Book) Modify(orderID OrderID, newPrice Price, newQuantity Quantity) (ModifyReport, error) {
	h, ok := b.index.lookup(orderID)
	if !ok {
		return ModifyReport{}, ErrUnknownOrderID
	}

	slot := b.arena.Get(h)

	if newQuantity == 0 {
		if _, err := b.Cancel(orderID); err != nil {
			return ModifyReport{}, err
		}
		return ModifyReport{FastPath: false}, nil
	}

	if newPrice == slot.price && newQuantity < slot.remaining {
		lvl := slot.level
		delta := slot.remaining - newQuantity
		slot.remaining = newQuantity
		lvl.aggregateQty -= delta
		return ModifyReport{FastPath: true}, nil
	}

	side := slot.side
	if _, err := b.Cancel(orderID); err != nil {
		return ModifyReport{}, err
	}
	report, err := b.PlaceLimit(orderID, side, newPrice, newQuantity)
	if err != nil {
		return ModifyReport{}, err
	}
	return ModifyReport{FastPath: false, Replaced: report}, nil
}

// BestBid returns the highest resting buy price and its aggregate
// quantity, or ok == false if the bid side is empty.
func (b *Book) BestBid() (price Price, qty Quantity, ok bool) {
	lvl := b.bids.bestLevel()
	if lvl == nil {
		return 0, 0, false
	}
	return lvl.price, lvl.aggregateQty, true
}

// BestAsk returns the lowest resting sell price and its aggregate
// quantity, or ok == false if the ask side is empty.
func (b *Book) BestAsk() (price Price, qty Quantity, ok bool) {
	lvl := b.asks.bestLevel()
	if lvl == nil {
		return 0, 0, false
	}
	return lvl.price, lvl.aggregateQty, true
}

// DepthAt returns the aggregate resting quantity at price on side, or
// zero if no level rests there.
func (b *Book) DepthAt(side Side, price Price) Quantity {
	lvl := b.sideOf(side).get(price)
	if lvl == nil {
		return 0
	}
	return lvl.aggregateQty
}

// SnapshotActive calls fn once per resting order, bids before asks,
// best price first within each side. It is the only way an external
// collaborator (persistence, introspection) may observe individual
// resting orders; it never exposes arena handles.
func (b *Book) SnapshotActive(fn func(OrderView)) {
	walk := func(lvl *priceLevel) bool {
		for h := lvl.peekHead(); h != NullHandle; {
			slot := b.arena.Get(h)
			fn(OrderView{OrderID: slot.orderID, Side: slot.side, Price: slot.price, Remaining: slot.remaining})
			h = slot.next
		}
		return true
	}
	b.bids.tree.ForEachDescending(walk)
	b.asks.tree.ForEachAscending(walk)
}

// ArenaStats reports the arena's current occupancy, for invariant
// checks and capacity monitoring.
func (b *Book) ArenaStats() (inUse, free, capacity int) {
	return b.arena.InUse(), b.arena.FreeCount(), b.arena.Capacity()
}

// CrossableLiquidity sums the resting quantity on the opposite side
// that an incoming order at (side, price) could immediately take,
// without mutating the book. It is the dry-run primitive behind
// fill-or-kill and post-only wrappers built on top of this package.
func (b *Book) CrossableLiquidity(side Side, price Price) Quantity {
	opposite := b.sideOf(side.Flip())

	var total Quantity
	opposite.iterCrossable(price, func(lvl *priceLevel) bool {
		total += lvl.aggregateQty
		return true
	})
	return total
}

// MaxPrice and MinPrice bound a Market order's walk so every level on
// the opposite side is considered crossable, regardless of its own
// (unused) limit price.
const (
	MaxPrice Price = math.MaxInt64
	MinPrice Price = math.MinInt64
)
