package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"lob/domain/orderbook"
)

// Writer serializes a []orderbook.OrderView (as produced by
// OrderService.Snapshot) to a single gob file in Dir.
type Writer struct {
	Dir string
}

func (w *Writer) Write(seq uint64, views []orderbook.OrderView) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(w.Dir, "snapshot.bin")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, len(views)),
	}

	for _, v := range views {
		s.Orders = append(s.Orders, OrderEntry{
			ID:        uint64(v.OrderID),
			Side:      uint8(v.Side),
			Price:     int64(v.Price),
			Remaining: uint64(v.Remaining),
		})
	}

	return gob.NewEncoder(f).Encode(&s)
}
