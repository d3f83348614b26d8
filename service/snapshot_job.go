package service

import (
	"log"
	"time"

	exitwal "lob/infra/wal/exit"
	"lob/snapshot"
)

// StartSnapshotJob periodically writes a full book snapshot, then
// truncates the entry WAL up to the snapshotted sequence and garbage
// collects any exit-outbox records the broadcaster has already
// acked. It runs on its own goroutine; callers of
// PlaceOrder/CancelOrder/ModifyOrder wait only while Snapshot's book
// walk holds the service mutex.
func (s *OrderService) StartSnapshotJob(dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for range t.C {
			seq := s.seq.Current()

			if err := w.Write(seq, s.Snapshot()); err != nil {
				log.Printf("[snapshot] write failed: %v", err)
				continue
			}

			if err := s.entryWAL.TruncateBefore(seq); err != nil {
				log.Printf("[snapshot] entry WAL truncate failed: %v", err)
			}

			if err := gcAcked(s.exitWAL); err != nil {
				log.Printf("[snapshot] exit WAL gc failed: %v", err)
			}
		}
	}()
}

// gcAcked deletes every exit-outbox record already delivered and
// acked by the broadcaster. It collects keys before deleting any of
// them, since ScanByState holds an iterator over the same store.
func gcAcked(exitWAL *exitwal.ExitWAL) error {
	var acked []uint64
	if err := exitWAL.ScanByState(exitwal.StateAcked, func(seq uint64, _ exitwal.ExitRecord) error {
		acked = append(acked, seq)
		return nil
	}); err != nil {
		return err
	}

	for _, seq := range acked {
		if err := exitWAL.Delete(seq); err != nil {
			return err
		}
	}
	return nil
}
