package orderbook

import "testing"

func wantTrade(t *testing.T, got Trade, maker, taker OrderID, price Price, qty Quantity, makerSide Side) {
	t.Helper()
	if got.MakerOrderID != maker || got.TakerOrderID != taker || got.Price != price || got.Quantity != qty || got.MakerSide != makerSide {
		t.Fatalf("trade mismatch: got %+v", got)
	}
}

// S1 — Passive placement.
func TestScenarioPassivePlacement(t *testing.T) {
	b := NewBook("X", 16)

	rep, err := b.PlaceLimit(1, Buy, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Filled != 0 || rep.Resting != 10 || len(rep.Trades) != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}

	price, qty, ok := b.BestBid()
	if !ok || price != 100 || qty != 10 {
		t.Fatalf("unexpected best bid: price=%d qty=%d ok=%v", price, qty, ok)
	}
}

// S2 — Cross & full fill.
func TestScenarioCrossAndFullFill(t *testing.T) {
	b := NewBook("X", 16)
	mustPlace(t, b, 1, Buy, 100, 10)

	rep, err := b.PlaceLimit(2, Sell, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Filled != 10 || rep.Resting != 0 || len(rep.Trades) != 1 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	wantTrade(t, rep.Trades[0], 1, 2, 100, 10, Buy)

	if _, _, ok := b.BestBid(); ok {
		t.Fatalf("expected empty bid side")
	}
	_, free, _ := b.ArenaStats()
	if free != 1 {
		t.Fatalf("expected 1 free slot, got %d", free)
	}
}

// S3 — Partial fill + residual rests.
func TestScenarioPartialFillResidualRests(t *testing.T) {
	b := NewBook("X", 16)
	mustPlace(t, b, 1, Buy, 100, 10)

	rep, err := b.PlaceLimit(2, Sell, 100, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Filled != 4 || rep.Resting != 0 || len(rep.Trades) != 1 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	wantTrade(t, rep.Trades[0], 1, 2, 100, 4, Buy)

	price, qty, ok := b.BestBid()
	if !ok || price != 100 || qty != 6 {
		t.Fatalf("unexpected best bid: price=%d qty=%d ok=%v", price, qty, ok)
	}
}

// S4 — Sweeps two price levels FIFO.
func TestScenarioSweepsTwoLevelsFIFO(t *testing.T) {
	b := NewBook("X", 16)
	mustPlace(t, b, 1, Buy, 100, 5)
	mustPlace(t, b, 2, Buy, 100, 5)
	mustPlace(t, b, 3, Buy, 99, 10)

	rep, err := b.PlaceLimit(4, Sell, 99, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(rep.Trades))
	}
	wantTrade(t, rep.Trades[0], 1, 4, 100, 5, Buy)
	wantTrade(t, rep.Trades[1], 2, 4, 100, 5, Buy)
	wantTrade(t, rep.Trades[2], 3, 4, 99, 2, Buy)

	price, qty, ok := b.BestBid()
	if !ok || price != 99 || qty != 8 {
		t.Fatalf("unexpected best bid: price=%d qty=%d ok=%v", price, qty, ok)
	}
	if _, _, ok := b.BestAsk(); ok {
		t.Fatalf("expected no resting ask")
	}
}

// S5 — Cancel preserves priority of others.
func TestScenarioCancelPreservesPriority(t *testing.T) {
	b := NewBook("X", 16)
	mustPlace(t, b, 1, Buy, 100, 5)
	mustPlace(t, b, 2, Buy, 100, 5)

	if _, err := b.Cancel(1); err != nil {
		t.Fatalf("unexpected cancel error: %v", err)
	}

	rep, err := b.PlaceLimit(3, Sell, 100, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(rep.Trades))
	}
	wantTrade(t, rep.Trades[0], 2, 3, 100, 5, Buy)

	if _, _, ok := b.BestBid(); ok {
		t.Fatalf("expected empty bid side")
	}
	if _, _, ok := b.BestAsk(); ok {
		t.Fatalf("expected empty ask side")
	}
}

// S6 — Capacity exhaustion.
func TestScenarioCapacityExhaustion(t *testing.T) {
	b := NewBook("X", 2)
	mustPlace(t, b, 1, Buy, 100, 1)
	mustPlace(t, b, 2, Buy, 99, 1)

	_, err := b.PlaceLimit(3, Buy, 98, 1)
	if err != ErrCapacityExhausted {
		t.Fatalf("expected ErrCapacityExhausted, got %v", err)
	}

	if _, ok := b.index.lookup(1); !ok {
		t.Fatalf("order 1 should still be indexed")
	}
	if _, ok := b.index.lookup(2); !ok {
		t.Fatalf("order 2 should still be indexed")
	}

	rep, err := b.PlaceLimit(4, Sell, 98, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Filled != 2 || rep.Resting != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if len(rep.Trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(rep.Trades))
	}
	wantTrade(t, rep.Trades[0], 1, 4, 100, 1, Buy)
	wantTrade(t, rep.Trades[1], 2, 4, 99, 1, Buy)
}

func mustPlace(t *testing.T, b *Book, id OrderID, side Side, price Price, qty Quantity) PlaceReport {
	t.Helper()
	rep, err := b.PlaceLimit(id, side, price, qty)
	if err != nil {
		t.Fatalf("place(%d) failed: %v", id, err)
	}
	return rep
}

func TestPlaceRejectsZeroQuantity(t *testing.T) {
	b := NewBook("X", 4)
	if _, err := b.PlaceLimit(1, Buy, 100, 0); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if inUse, _, _ := b.ArenaStats(); inUse != 0 {
		t.Fatalf("expected no allocation on rejected order")
	}
}

func TestPlaceRejectsDuplicateOrderID(t *testing.T) {
	b := NewBook("X", 4)
	mustPlace(t, b, 1, Buy, 100, 5)
	if _, err := b.PlaceLimit(1, Buy, 101, 1); err != ErrDuplicateOrderID {
		t.Fatalf("expected ErrDuplicateOrderID, got %v", err)
	}
}

func TestCancelUnknownOrderID(t *testing.T) {
	b := NewBook("X", 4)
	if _, err := b.Cancel(42); err != ErrUnknownOrderID {
		t.Fatalf("expected ErrUnknownOrderID, got %v", err)
	}
}

func TestFullyMatchedOrderNeverAllocatesEvenAtCapacity(t *testing.T) {
	b := NewBook("X", 1)
	mustPlace(t, b, 1, Buy, 100, 5) // arena now full

	rep, err := b.PlaceLimit(2, Sell, 100, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Resting != 0 || rep.RestedAt != NullHandle {
		t.Fatalf("expected fully matched order to never rest: %+v", rep)
	}
}

func TestModifyFastPathRetainsPriority(t *testing.T) {
	b := NewBook("X", 4)
	mustPlace(t, b, 1, Buy, 100, 10)
	mustPlace(t, b, 2, Buy, 100, 5)

	rep, err := b.Modify(1, 100, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rep.FastPath {
		t.Fatalf("expected fast path")
	}

	trade := mustPlace(t, b, 3, Sell, 100, 4)
	if len(trade.Trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trade.Trades))
	}
	wantTrade(t, trade.Trades[0], 1, 3, 100, 3, Buy)
	wantTrade(t, trade.Trades[1], 2, 3, 100, 1, Buy)
}

func TestModifySlowPathOnPriceChange(t *testing.T) {
	b := NewBook("X", 4)
	mustPlace(t, b, 1, Buy, 100, 5)
	mustPlace(t, b, 2, Buy, 100, 5)

	if _, err := b.Modify(1, 101, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	price, qty, ok := b.BestBid()
	if !ok || price != 101 || qty != 5 {
		t.Fatalf("unexpected best bid after modify: price=%d qty=%d ok=%v", price, qty, ok)
	}

	// order 1 now rests alone at 101, a better bid than order 2 at 100,
	// so price priority makes it the maker for a sell at 100.
	rep := mustPlace(t, b, 3, Sell, 100, 5)
	if len(rep.Trades) != 1 || rep.Trades[0].MakerOrderID != 1 || rep.Trades[0].Price != 101 {
		t.Fatalf("unexpected trades: %+v", rep.Trades)
	}
}

func TestPlaceThenCancelAllEmptiesArena(t *testing.T) {
	b := NewBook("X", 8)
	for i := OrderID(1); i <= 8; i++ {
		mustPlace(t, b, i, Buy, Price(100-int64(i)), 1)
	}
	for i := OrderID(1); i <= 8; i++ {
		if _, err := b.Cancel(i); err != nil {
			t.Fatalf("cancel(%d) failed: %v", i, err)
		}
	}

	inUse, free, cap := b.ArenaStats()
	if inUse != 0 || free != 8 || cap != 8 {
		t.Fatalf("unexpected arena stats after cancel-all: inUse=%d free=%d cap=%d", inUse, free, cap)
	}
	if _, _, ok := b.BestBid(); ok {
		t.Fatalf("expected empty book")
	}
}

func TestSelfTradeAcrossDistinctIDsAllowed(t *testing.T) {
	b := NewBook("X", 4)
	mustPlace(t, b, 1, Buy, 100, 5)

	rep, err := b.PlaceLimit(2, Sell, 100, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Trades) != 1 {
		t.Fatalf("expected the distinct-id cross to trade")
	}
}

func TestArenaAtCapacityFullyMatchingResidualSucceeds(t *testing.T) {
	b := NewBook("X", 1)
	mustPlace(t, b, 1, Sell, 100, 5)

	rep, err := b.PlaceLimit(2, Buy, 100, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Resting != 0 {
		t.Fatalf("expected full match: %+v", rep)
	}
}

func TestCrossableLiquiditySumsWithoutMutating(t *testing.T) {
	b := NewBook("X", 64)
	mustPlace(t, b, 1, Sell, 100, 5)
	mustPlace(t, b, 2, Sell, 101, 7)

	if got := b.CrossableLiquidity(Buy, 100); got != 5 {
		t.Fatalf("expected 5 crossable at 100, got %d", got)
	}
	if got := b.CrossableLiquidity(Buy, 101); got != 12 {
		t.Fatalf("expected 12 crossable at 101, got %d", got)
	}
	if got := b.CrossableLiquidity(Buy, 99); got != 0 {
		t.Fatalf("expected 0 crossable at 99, got %d", got)
	}

	if inUse, _, _ := b.ArenaStats(); inUse != 2 {
		t.Fatalf("CrossableLiquidity must not mutate the book, arena in use = %d", inUse)
	}
}

func TestCrossableLiquidityAtMarketBoundsSeesEntireOppositeSide(t *testing.T) {
	b := NewBook("X", 64)
	mustPlace(t, b, 1, Sell, 100, 5)
	mustPlace(t, b, 2, Sell, 99999, 7)

	if got := b.CrossableLiquidity(Buy, MaxPrice); got != 12 {
		t.Fatalf("expected all resting asks crossable at MaxPrice, got %d", got)
	}

	mustPlace(t, b, 3, Buy, 1, 3)
	if got := b.CrossableLiquidity(Sell, MinPrice); got != 3 {
		t.Fatalf("expected all resting bids crossable at MinPrice, got %d", got)
	}
}

func TestInvariantsHoldAcrossMixedSequence(t *testing.T) {
	b := NewBook("X", 64)

	id := OrderID(1)
	place := func(side Side, price Price, qty Quantity) {
		b.PlaceLimit(id, side, price, qty)
		id++
	}

	place(Buy, 100, 5)
	place(Buy, 99, 3)
	place(Sell, 101, 4)
	place(Sell, 100, 2)
	place(Buy, 102, 10)
	place(Sell, 98, 20)

	checkInvariants(t, b)
}

func checkInvariants(t *testing.T, b *Book) {
	t.Helper()

	check := func(lvl *priceLevel) bool {
		var sum Quantity
		count := 0
		for h := lvl.peekHead(); h != NullHandle; {
			slot := b.arena.Get(h)
			if slot.level != lvl {
				t.Fatalf("order %d's level back-reference disagrees", slot.orderID)
			}
			sum += slot.remaining
			count++
			h = slot.next
		}
		if count != lvl.count {
			t.Fatalf("level %d: count mismatch, got list len %d want %d", lvl.price, count, lvl.count)
		}
		if sum != lvl.aggregateQty {
			t.Fatalf("level %d: aggregate mismatch, got %d want %d", lvl.price, sum, lvl.aggregateQty)
		}
		if count == 0 {
			t.Fatalf("level %d: empty level should have been removed", lvl.price)
		}
		return true
	}
	b.bids.tree.ForEachAscending(check)
	b.asks.tree.ForEachAscending(check)

	if bidP, _, bidOK := b.BestBid(); bidOK {
		if askP, _, askOK := b.BestAsk(); askOK && bidP >= askP {
			t.Fatalf("crossed book at rest: bid=%d ask=%d", bidP, askP)
		}
	}

	inUse, free, cap := b.ArenaStats()
	if inUse+free > cap {
		t.Fatalf("resting+free exceeds capacity: inUse=%d free=%d cap=%d", inUse, free, cap)
	}
}
