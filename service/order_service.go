package service

import (
	"sync"

	"lob/domain/orderbook"
	"lob/infra/memory"
	"lob/infra/sequence"
	entrywal "lob/infra/wal/entry"
	exitwal "lob/infra/wal/exit"
	"lob/snapshot"

	wal "lob/infra/wal"
)

// tradeBatch is the pooled unit handed from a writer call to the
// exit-outbox hand-off. Trades is reused across Get/Put cycles so a
// steady-state PlaceOrder loop does not allocate a new slice per
// call once the pool has warmed up.
type tradeBatch struct {
	Trades []orderbook.Trade
}

// OrderService is the only write entry point into the engine. It
// serializes book mutation behind mu — the book itself promises
// nothing about concurrent access, and a gRPC server fans in one
// goroutine per request — and coordinates the entry WAL (durability
// of intent), the exit WAL (durable outbox of resulting trades), the
// sequencer (WAL ordering), and epoch-based reclamation of the pooled
// trade batches it retires after each publish. The broadcaster reads
// trades from the exit WAL, not from these batches.
type OrderService struct {
	mu sync.Mutex

	book *orderbook.Book

	pool *memory.Pool[tradeBatch]
	ring *memory.RetireRing

	snapReader *snapshot.Reader

	seq      *sequence.Sequencer
	entryWAL *entrywal.WAL
	exitWAL  *exitwal.ExitWAL
	codec    wal.Codec
}

// NewTradeBatchPool constructs the pool OrderService's publish path
// reuses for outgoing trade batches. Call sites that want a custom
// sync.Pool lifetime (e.g. benchmarks) construct their own instead.
func NewTradeBatchPool() *memory.Pool[tradeBatch] {
	return memory.NewPool(func() *tradeBatch { return &tradeBatch{} })
}

// DefaultCodec returns the WAL payload codec OrderService uses to
// encode intents and trades; replay must decode with the same codec
// the writer encoded with.
func DefaultCodec() wal.Codec { return wal.JSONCodec{} }

// NewOrderService wires all dependencies. No globals.
func NewOrderService(
	book *orderbook.Book,
	pool *memory.Pool[tradeBatch],
	ring *memory.RetireRing,
	snapReader *snapshot.Reader,
	seq *sequence.Sequencer,
	entryWAL *entrywal.WAL,
	exitWAL *exitwal.ExitWAL,
) *OrderService {
	return &OrderService{
		book:       book,
		pool:       pool,
		ring:       ring,
		snapReader: snapReader,
		seq:        seq,
		entryWAL:   entryWAL,
		exitWAL:    exitWAL,
		codec:      wal.JSONCodec{},
	}
}

// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────

// PlaceOrder submits a new resting-or-matching limit order.
func (s *OrderService) PlaceOrder(orderID orderbook.OrderID, side orderbook.Side, price orderbook.Price, qty orderbook.Quantity) (orderbook.PlaceReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placeOrderLocked(orderID, side, price, qty)
}

// placeOrderLocked is PlaceOrder's body, split out so gateway.go can
// hold s.mu across a liquidity pre-check and the place itself (FOK,
// PostOnly) without releasing it in between.
func (s *OrderService) placeOrderLocked(orderID orderbook.OrderID, side orderbook.Side, price orderbook.Price, qty orderbook.Quantity) (orderbook.PlaceReport, error) {
	if err := s.logIntent(entrywal.RecordPlace, PlaceIntent{OrderID: orderID, Side: side, Price: price, Quantity: qty}); err != nil {
		return orderbook.PlaceReport{}, err
	}

	report, err := s.book.PlaceLimit(orderID, side, price, qty)
	s.publish(report.Trades)
	return report, err
}

// CancelOrder removes a resting order.
func (s *OrderService) CancelOrder(orderID orderbook.OrderID) (orderbook.CancelReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.logIntent(entrywal.RecordCancel, CancelIntent{OrderID: orderID}); err != nil {
		return orderbook.CancelReport{}, err
	}

	return s.book.Cancel(orderID)
}

// ModifyOrder adjusts a resting order's price and/or quantity.
func (s *OrderService) ModifyOrder(orderID orderbook.OrderID, newPrice orderbook.Price, newQty orderbook.Quantity) (orderbook.ModifyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.logIntent(entrywal.RecordModify, ModifyIntent{OrderID: orderID, NewPrice: newPrice, NewQty: newQty}); err != nil {
		return orderbook.ModifyReport{}, err
	}

	report, err := s.book.Modify(orderID, newPrice, newQty)
	s.publish(report.Replaced.Trades)
	return report, err
}

func (s *OrderService) logIntent(t entrywal.RecordType, intent any) error {
	payload, err := s.codec.Encode(intent)
	if err != nil {
		return err
	}
	return s.entryWAL.Append(entrywal.NewRecord(t, s.seq.Next(), payload))
}

// publish hands completed trades to the exit outbox. Every trade
// carries its own monotonic Book sequence number, which is also the
// exit WAL's key, so replaying the outbox is idempotent.
func (s *OrderService) publish(trades []orderbook.Trade) {
	if len(trades) == 0 {
		return
	}

	batch := s.pool.Get()
	batch.Trades = append(batch.Trades[:0], trades...)

	for _, tr := range batch.Trades {
		payload, err := s.codec.Encode(tr)
		if err != nil {
			continue
		}
		_ = s.exitWAL.PutNew(tr.Seq, payload)
	}

	if !s.ring.Enqueue(batch) {
		// ring saturated: reclaim the batch straight back rather than
		// leak it, at the cost of losing pooling for this call.
		s.pool.Put(batch)
	}
}

// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────

func (s *OrderService) BestBid() (orderbook.Price, orderbook.Quantity, bool) { return s.book.BestBid() }
func (s *OrderService) BestAsk() (orderbook.Price, orderbook.Quantity, bool) { return s.book.BestAsk() }

// Snapshot returns a consistent, read-only view of all resting
// orders; the walk holds mu, so no write interleaves with it. While
// the walk is in flight the snapshot reader's epoch is active and
// AdvanceEpoch returns no retired trade batches to the pool.
func (s *OrderService) Snapshot() []orderbook.OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapReader.Begin()
	defer s.snapReader.End()

	out := make([]orderbook.OrderView, 0, 1024)
	s.book.SnapshotActive(func(v orderbook.OrderView) {
		out = append(out, v)
	})
	return out
}

// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────

// AdvanceEpoch performs safe reclamation of retired trade batches.
// Intended to be called periodically by a background job.
func (s *OrderService) AdvanceEpoch() {
	memory.AdvanceEpochAndReclaim(s.ring, s.pool, s.snapReader.Epoch())
}
