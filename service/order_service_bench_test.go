package service

import (
	"sync/atomic"
	"testing"

	"lob/domain/orderbook"
	"lob/infra/memory"
	"lob/infra/sequence"
	entrywal "lob/infra/wal/entry"
	exitwal "lob/infra/wal/exit"
	"lob/snapshot"
)

func BenchmarkPlaceOrder_Core(b *testing.B) {
	book := orderbook.NewBook("bench", 1<<20)

	pool := NewTradeBatchPool()
	ring := memory.NewRetireRing(4096)

	seq := sequence.New(0)
	reader := snapshot.NewReader()

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         b.TempDir(),
		SegmentSize: 64 << 20,
	})
	if err != nil {
		b.Fatal(err)
	}
	exitWAL, err := exitwal.Open(b.TempDir())
	if err != nil {
		b.Fatal(err)
	}

	svc := NewOrderService(book, pool, ring, reader, seq, entryWAL, exitWAL)

	var nextID atomic.Uint64

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			id := nextID.Add(1)
			side := orderbook.Buy
			if id%2 == 0 {
				side = orderbook.Sell
			}
			// alternating sides at the same price cross immediately,
			// so the arena never grows regardless of b.N.
			if _, err := svc.PlaceOrder(orderbook.OrderID(id), side, 100, 1); err != nil {
				b.Fatal(err)
			}
		}
	})
}
