// Package orderbook implements a single-instrument, single-writer
// limit order book: an arena-backed store of resting orders, a
// red-black tree of price levels per side, and a price-time priority
// matching algorithm. Order slots come from a fixed-capacity arena, so
// resting, filling and cancelling an order allocate no per-order
// record; the Trades slice of each PlaceReport, each newly created
// price level with its tree node, and growth of the order-index map
// are heap allocations.
//
// The package has no knowledge of persistence, transport, or
// concurrency beyond what a single writer needs; those concerns live
// in infra/, service/, and api/.
package orderbook
