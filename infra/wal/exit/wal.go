package exit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type ExitState uint8

const (
	StateNew ExitState = iota
	StateSent
	StateAcked
	StateFailed
)

func (s ExitState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

// ExitRecord tracks the delivery state of one outbound trade event,
// keyed by its sequence number. Payload is the encoded event body
// the broadcaster publishes verbatim.
type ExitRecord struct {
	State       ExitState
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][payloadLen:4][payload]
func encodeRecord(r ExitRecord) []byte {
	buf := make([]byte, 1+4+8+4+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	binary.BigEndian.PutUint32(buf[13:17], uint32(len(r.Payload)))
	copy(buf[17:], r.Payload)
	return buf
}

func decodeRecord(b []byte) (ExitRecord, error) {
	if len(b) < 17 {
		return ExitRecord{}, errors.New("invalid exit record length")
	}
	l := binary.BigEndian.Uint32(b[13:17])
	if len(b) != 17+int(l) {
		return ExitRecord{}, errors.New("invalid exit record payload length")
	}
	payload := make([]byte, l)
	copy(payload, b[17:])
	return ExitRecord{
		State:       ExitState(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

// -------------------- WAL --------------------

// ExitWAL is a durable outbox: a pebble-backed map from event
// sequence number to its current delivery state, scanned by the
// broadcaster and advanced as each event is sent and acked.
type ExitWAL struct {
	db *pebble.DB
}

func Open(dir string) (*ExitWAL, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &ExitWAL{db: db}, nil
}

func (w *ExitWAL) Close() error {
	return w.db.Close()
}

// -------------------- API --------------------

// PutNew inserts a new outbox entry for eventSeq with its payload.
func (w *ExitWAL) PutNew(eventSeq uint64, payload []byte) error {
	rec := ExitRecord{State: StateNew, Payload: payload}
	return w.db.Set(keyFor(eventSeq), encodeRecord(rec), pebble.Sync)
}

// UpdateState updates state after send / ack / failure, preserving payload.
func (w *ExitWAL) UpdateState(eventSeq uint64, state ExitState, retries uint32) error {
	cur, err := w.Get(eventSeq)
	if err != nil {
		return err
	}
	cur.State = state
	cur.Retries = retries
	cur.LastAttempt = time.Now().UnixNano()
	return w.db.Set(keyFor(eventSeq), encodeRecord(cur), pebble.Sync)
}

// Delete removes an ACKED record (cleanup).
func (w *ExitWAL) Delete(eventSeq uint64) error {
	return w.db.Delete(keyFor(eventSeq), pebble.Sync)
}

// Get returns the current record for eventSeq.
func (w *ExitWAL) Get(eventSeq uint64) (ExitRecord, error) {
	val, closer, err := w.db.Get(keyFor(eventSeq))
	if err != nil {
		return ExitRecord{}, err
	}
	defer closer.Close()

	return decodeRecord(val)
}

// -------------------- Scan --------------------

// ScanByState iterates all records in the given state, used by the broadcaster.
func (w *ExitWAL) ScanByState(state ExitState, fn func(eventSeq uint64, rec ExitRecord) error) error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State != state {
			continue
		}
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if err := fn(seq, rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func keyFor(eventSeq uint64) []byte {
	return []byte(fmt.Sprintf("event/%020d", eventSeq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("event/"))), "%d", &seq)
	return seq, err
}
