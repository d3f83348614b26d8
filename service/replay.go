package service

import (
	"errors"
	"fmt"
	"log"

	"lob/domain/orderbook"
	"lob/infra/sequence"
	entrywal "lob/infra/wal/entry"

	wal "lob/infra/wal"
)

// isRejection reports whether err is one of the domain's own
// sentinel rejections rather than a WAL or decode failure. A
// rejection is something the live system would also have rejected
// (duplicate id, bad quantity, unknown id, exhausted arena); replay
// must not treat it as fatal, since the intent was durably logged
// before the book had a chance to validate it and the same intent,
// replayed against the same prior state, is guaranteed to be
// rejected identically every time.
func isRejection(err error) bool {
	switch {
	case errors.Is(err, orderbook.ErrInvalidQuantity),
		errors.Is(err, orderbook.ErrDuplicateOrderID),
		errors.Is(err, orderbook.ErrUnknownOrderID),
		errors.Is(err, orderbook.ErrCapacityExhausted):
		return true
	default:
		return false
	}
}

// ReplayFromWAL rebuilds a freshly constructed book from the entry
// WAL, decoding each record's intent with codec and replaying it
// through the same book operations the service layer uses live. This
// is what gives the engine a bit-identical replay guarantee: the WAL
// carries the intents, not their outcomes, so trades are re-derived
// by re-running the same matching logic against the same input
// sequence.
//
// afterSeq skips every record at or below it, so a WAL that has not
// yet been truncated past the sequence a loaded snapshot already
// covers is not replayed twice; pass 0 to replay the whole WAL.
//
// The exit WAL is not replayed; it is an outbox for already-decided
// trades, not a source of book state.
func ReplayFromWAL(walDir string, afterSeq uint64, book *orderbook.Book, codec wal.Codec) (uint64, error) {
	lastSeq, err := entrywal.Replay(walDir, afterSeq, func(rec *entrywal.Record) error {
		switch rec.Type {
		case entrywal.RecordPlace:
			var intent PlaceIntent
			if err := codec.Decode(rec.Data, &intent); err != nil {
				return err
			}
			if _, err := book.PlaceLimit(intent.OrderID, intent.Side, intent.Price, intent.Quantity); err != nil {
				if isRejection(err) {
					log.Printf("[replay] seq %d place rejected, skipping: %v", rec.Seq, err)
					return nil
				}
				return err
			}
			return nil

		case entrywal.RecordCancel:
			var intent CancelIntent
			if err := codec.Decode(rec.Data, &intent); err != nil {
				return err
			}
			if _, err := book.Cancel(intent.OrderID); err != nil {
				if isRejection(err) {
					log.Printf("[replay] seq %d cancel rejected, skipping: %v", rec.Seq, err)
					return nil
				}
				return err
			}
			return nil

		case entrywal.RecordModify:
			var intent ModifyIntent
			if err := codec.Decode(rec.Data, &intent); err != nil {
				return err
			}
			if _, err := book.Modify(intent.OrderID, intent.NewPrice, intent.NewQty); err != nil {
				if isRejection(err) {
					log.Printf("[replay] seq %d modify rejected, skipping: %v", rec.Seq, err)
					return nil
				}
				return err
			}
			return nil

		default:
			return fmt.Errorf("service: unknown WAL record type %d", rec.Type)
		}
	})
	if err != nil {
		return 0, err
	}

	return lastSeq, nil
}

// ResumeSequencing resets seqGen to the last sequence number replay
// observed, so freshly issued sequence numbers continue from where
// the WAL left off rather than restarting at zero.
func ResumeSequencing(seqGen *sequence.Sequencer, lastSeq uint64) {
	seqGen.Reset(lastSeq)
}
