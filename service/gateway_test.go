package service

import (
	"errors"
	"testing"

	"lob/domain/orderbook"
	"lob/infra/memory"
	"lob/infra/sequence"
	entrywal "lob/infra/wal/entry"
	exitwal "lob/infra/wal/exit"
	"lob/snapshot"
)

func newTestService(t *testing.T) *OrderService {
	t.Helper()

	book := orderbook.NewBook("test", 64)
	pool := NewTradeBatchPool()
	ring := memory.NewRetireRing(256)
	reader := snapshot.NewReader()
	seq := sequence.New(0)

	entryWAL, err := entrywal.Open(entrywal.Config{Dir: t.TempDir(), SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("entry WAL open: %v", err)
	}
	exitWAL, err := exitwal.Open(t.TempDir())
	if err != nil {
		t.Fatalf("exit WAL open: %v", err)
	}
	t.Cleanup(func() { exitWAL.Close() })

	return NewOrderService(book, pool, ring, reader, seq, entryWAL, exitWAL)
}

func TestMarketOrderNeverRests(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.PlaceOrder(1, orderbook.Sell, 100, 5); err != nil {
		t.Fatalf("resting sell: %v", err)
	}

	report, err := svc.PlaceOrderTIF(2, orderbook.Buy, 0, 10, Market)
	if err != nil {
		t.Fatalf("market order: %v", err)
	}
	if report.Filled != 5 {
		t.Fatalf("expected 5 filled against the resting sell, got %d", report.Filled)
	}
	if report.Resting != 0 {
		t.Fatalf("market order left a residual resting: %+v", report)
	}
	if _, err := svc.CancelOrder(2); !errors.Is(err, orderbook.ErrUnknownOrderID) {
		t.Fatalf("market order's residual should already be cancelled, got %v", err)
	}
}

func TestIOCCancelsResidual(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.PlaceOrderTIF(1, orderbook.Buy, 100, 10, IOC)
	if err != nil {
		t.Fatalf("IOC order: %v", err)
	}
	if report.Filled != 0 || report.Resting != 10 {
		t.Fatalf("expected nothing to fill against an empty book: %+v", report)
	}
	if _, err := svc.CancelOrder(1); !errors.Is(err, orderbook.ErrUnknownOrderID) {
		t.Fatalf("IOC residual should already be cancelled, got %v", err)
	}
}

func TestFOKRejectsWithoutMutatingOnInsufficientLiquidity(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.PlaceOrder(1, orderbook.Sell, 100, 3); err != nil {
		t.Fatalf("resting sell: %v", err)
	}

	_, err := svc.PlaceOrderTIF(2, orderbook.Buy, 100, 10, FOK)
	if !errors.Is(err, orderbook.ErrInsufficientLiquidity) {
		t.Fatalf("expected ErrInsufficientLiquidity, got %v", err)
	}

	bid, _, hasBid := svc.BestBid()
	if hasBid {
		t.Fatalf("FOK rejection must not rest anything, got a bid at %d", bid)
	}
}

func TestFOKFillsWhenLiquiditySuffices(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.PlaceOrder(1, orderbook.Sell, 100, 10); err != nil {
		t.Fatalf("resting sell: %v", err)
	}

	report, err := svc.PlaceOrderTIF(2, orderbook.Buy, 100, 7, FOK)
	if err != nil {
		t.Fatalf("FOK order: %v", err)
	}
	if report.Filled != 7 {
		t.Fatalf("expected full fill of 7, got %d", report.Filled)
	}
}

func TestPostOnlyRejectsCrossingOrder(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.PlaceOrder(1, orderbook.Sell, 100, 5); err != nil {
		t.Fatalf("resting sell: %v", err)
	}

	_, err := svc.PlaceOrderTIF(2, orderbook.Buy, 100, 5, PostOnly)
	if !errors.Is(err, ErrWouldCross) {
		t.Fatalf("expected ErrWouldCross, got %v", err)
	}
}

func TestPostOnlyAcceptsNonCrossingOrder(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.PlaceOrder(1, orderbook.Sell, 100, 5); err != nil {
		t.Fatalf("resting sell: %v", err)
	}

	report, err := svc.PlaceOrderTIF(2, orderbook.Buy, 99, 5, PostOnly)
	if err != nil {
		t.Fatalf("post-only order: %v", err)
	}
	if report.Resting != 5 {
		t.Fatalf("expected the whole order to rest, got %+v", report)
	}
}
