package snapshot

import (
	"encoding/gob"
	"os"

	"lob/domain/orderbook"
)

// Load restores book from path, returning the sequence number the
// snapshot was taken at (0, nil if no snapshot exists yet). Callers
// still need to replay the entry WAL from that sequence forward to
// reach current state.
func Load(path string, book *orderbook.Book) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil // snapshot optional
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Orders {
		if _, err := book.PlaceLimit(orderbook.OrderID(e.ID), orderbook.Side(e.Side), orderbook.Price(e.Price), orderbook.Quantity(e.Remaining)); err != nil {
			return 0, err
		}
	}

	return s.Seq, nil
}
