package orderbook

// Trade is emitted once per resting order filled (fully or partly)
// by an incoming order. maker is
// always the resting order; taker is always the incoming order.
// Trades print at the maker's price, never the taker's limit.
type Trade struct {
	MakerOrderID OrderID
	TakerOrderID OrderID
	Price        Price
	Quantity     Quantity
	MakerSide    Side
	Seq          uint64
}

// PlaceReport summarizes the outcome of a place_limit call.
type PlaceReport struct {
	Filled   Quantity
	Resting  Quantity
	Trades   []Trade
	RestedAt Handle // NullHandle if the order never rested
}

// CancelReport summarizes the outcome of a cancel call.
type CancelReport struct {
	CancelledQty Quantity
}

// ModifyReport summarizes the outcome of a modify call.
type ModifyReport struct {
	// FastPath is true when the quantity was decremented in place,
	// retaining the order's original time priority.
	FastPath bool
	// Replaced carries the PlaceReport of the cancel+place_limit that
	// ran when the fast path did not apply; it is the zero value on the
	// fast path and when a zero new quantity only cancels the order.
	Replaced PlaceReport
}

// match walks the opposite side's crossable levels from best price
// outward, consuming resting orders in FIFO order, emitting trades,
// and stopping when remaining reaches zero or no more levels cross.
// limitPrice bounds how far it is willing to walk; Market orders pass
// an extreme value so every level on the opposite side crosses.
func (b *Book) match(takerID OrderID, side Side, limitPrice Price, remaining Quantity, trades []Trade) (Quantity, []Trade) {
	opposite := b.sideOf(side.Flip())

	for remaining > 0 {
		lvl := opposite.bestLevel()
		if lvl == nil || !opposite.crossable(lvl.price, limitPrice) {
			break
		}

		for remaining > 0 && !lvl.isEmpty() {
			h := lvl.peekHead()
			maker := b.arena.Get(h)

			traded := remaining
			if maker.remaining < traded {
				traded = maker.remaining
			}

			b.tradeSeq++
			trades = append(trades, Trade{
				MakerOrderID: maker.orderID,
				TakerOrderID: takerID,
				Price:        maker.price,
				Quantity:     traded,
				MakerSide:    opposite.side,
				Seq:          b.tradeSeq,
			})

			remaining -= traded

			if freed, ok := lvl.decrementHeadQty(traded); ok {
				b.index.remove(maker.orderID)
				b.arena.Free(freed)
			}
		}

		opposite.removeIfEmpty(lvl)
	}

	return remaining, trades
}

func (b *Book) sideOf(s Side) *bookSide {
	if s == Buy {
		return b.bids
	}
	return b.asks
}
