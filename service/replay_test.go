package service

import (
	"testing"

	"lob/domain/orderbook"
	entrywal "lob/infra/wal/entry"
)

func TestReplayFromWALReproducesBookState(t *testing.T) {
	dir := t.TempDir()
	codec := DefaultCodec()

	entryWAL, err := entrywal.Open(entrywal.Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("entry WAL open: %v", err)
	}

	logPlace := func(seq uint64, orderID orderbook.OrderID, side orderbook.Side, price orderbook.Price, qty orderbook.Quantity) {
		payload, err := codec.Encode(PlaceIntent{OrderID: orderID, Side: side, Price: price, Quantity: qty})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := entryWAL.Append(entrywal.NewRecord(entrywal.RecordPlace, seq, payload)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	logCancel := func(seq uint64, orderID orderbook.OrderID) {
		payload, err := codec.Encode(CancelIntent{OrderID: orderID})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := entryWAL.Append(entrywal.NewRecord(entrywal.RecordCancel, seq, payload)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	logPlace(1, 1, orderbook.Sell, 100, 5)
	logPlace(2, 2, orderbook.Sell, 101, 3)
	logPlace(3, 3, orderbook.Buy, 100, 4)
	logCancel(4, 2)

	book := orderbook.NewBook("test", 64)
	lastSeq, err := ReplayFromWAL(dir, 0, book, codec)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if lastSeq != 4 {
		t.Fatalf("expected lastSeq 4, got %d", lastSeq)
	}

	// order 1 rested 5, sold 4 to order 3's buy, 1 remains resting.
	// order 2 was cancelled before it could trade.
	price, qty, ok := book.BestAsk()
	if !ok || price != 100 || qty != 1 {
		t.Fatalf("expected 1 remaining at ask 100, got price=%d qty=%d ok=%v", price, qty, ok)
	}
	if _, _, hasBid := book.BestBid(); hasBid {
		t.Fatalf("order 3's buy should have fully matched and left no bid")
	}
}

// TestReplaySkipsRejectedIntentsWithoutAborting covers the case the
// live writer always hits: an intent is durably logged before the
// book validates it, so the WAL can carry an intent the book goes on
// to reject. Replay must not stop dead at the rejection; everything
// logged after it still has to apply.
func TestReplaySkipsRejectedIntentsWithoutAborting(t *testing.T) {
	dir := t.TempDir()
	codec := DefaultCodec()

	entryWAL, err := entrywal.Open(entrywal.Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("entry WAL open: %v", err)
	}

	logPlace := func(seq uint64, orderID orderbook.OrderID, side orderbook.Side, price orderbook.Price, qty orderbook.Quantity) {
		payload, err := codec.Encode(PlaceIntent{OrderID: orderID, Side: side, Price: price, Quantity: qty})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := entryWAL.Append(entrywal.NewRecord(entrywal.RecordPlace, seq, payload)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	logCancel := func(seq uint64, orderID orderbook.OrderID) {
		payload, err := codec.Encode(CancelIntent{OrderID: orderID})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := entryWAL.Append(entrywal.NewRecord(entrywal.RecordCancel, seq, payload)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	logPlace(1, 1, orderbook.Sell, 100, 5)
	// seq 2 duplicates order 1's id: the live writer logged the
	// intent before PlaceLimit had a chance to reject it.
	logPlace(2, 1, orderbook.Sell, 100, 5)
	// seq 3 cancels an id that was never placed.
	logCancel(3, 99)
	logPlace(4, 2, orderbook.Buy, 100, 5)

	book := orderbook.NewBook("test", 64)
	lastSeq, err := ReplayFromWAL(dir, 0, book, codec)
	if err != nil {
		t.Fatalf("replay should skip rejected intents rather than abort: %v", err)
	}
	if lastSeq != 4 {
		t.Fatalf("expected lastSeq 4, got %d", lastSeq)
	}

	if _, _, hasBid := book.BestBid(); hasBid {
		t.Fatalf("order 2's buy should have fully matched order 1's resting sell")
	}
	if _, _, hasAsk := book.BestAsk(); hasAsk {
		t.Fatalf("order 1's resting sell should have been fully consumed by order 2's buy")
	}
}

// TestReplayFromWALSkipsRecordsAtOrBelowAfterSeq covers the crash
// window between a snapshot write and the entry WAL truncation that
// is supposed to follow it: the WAL can still carry records a loaded
// snapshot already reflects, and replaying them again must not
// re-apply them.
func TestReplayFromWALSkipsRecordsAtOrBelowAfterSeq(t *testing.T) {
	dir := t.TempDir()
	codec := DefaultCodec()

	entryWAL, err := entrywal.Open(entrywal.Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("entry WAL open: %v", err)
	}

	logPlace := func(seq uint64, orderID orderbook.OrderID, side orderbook.Side, price orderbook.Price, qty orderbook.Quantity) {
		payload, err := codec.Encode(PlaceIntent{OrderID: orderID, Side: side, Price: price, Quantity: qty})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := entryWAL.Append(entrywal.NewRecord(entrywal.RecordPlace, seq, payload)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	// seq 1 is already reflected in the "loaded snapshot" below; a
	// crash before truncation left it sitting in the WAL too.
	logPlace(1, 1, orderbook.Sell, 100, 5)
	logPlace(2, 2, orderbook.Sell, 101, 3)

	book := orderbook.NewBook("test", 64)
	// Simulates snapshot.Load already having placed order 1.
	if _, err := book.PlaceLimit(1, orderbook.Sell, 100, 5); err != nil {
		t.Fatalf("seed: %v", err)
	}

	lastSeq, err := ReplayFromWAL(dir, 1, book, codec)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if lastSeq != 2 {
		t.Fatalf("expected lastSeq 2, got %d", lastSeq)
	}

	if _, err := book.Cancel(1); err != nil {
		t.Fatalf("order 1 should have been placed exactly once, by the snapshot: %v", err)
	}
	if _, err := book.Cancel(2); err != nil {
		t.Fatalf("order 2 should have been replayed from the WAL: %v", err)
	}
}
