package broadcaster

import (
	"context"
	"log"
	"time"

	exitwal "lob/infra/wal/exit"

	"github.com/IBM/sarama"
)

// Broadcaster drains the exit outbox and publishes each trade event
// to Kafka with guaranteed delivery: an event is only marked ACKED
// once sarama confirms the broker wrote it. Failed sends are marked
// FAILED; each tick drains NEW records and then FAILED ones, so a
// failed send is retried later in the same tick and on every tick
// after until it is acked.
type Broadcaster struct {
	exitWAL  *exitwal.ExitWAL
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

func New(exitWAL *exitwal.ExitWAL, brokers []string, topic string, interval time.Duration) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{exitWAL: exitWAL, producer: producer, topic: topic, interval: interval}, nil
}

// Start runs replayPending on a ticker until ctx is cancelled.
func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.replayPending()
			}
		}
	}()
}

func (b *Broadcaster) replayPending() {
	b.drain(exitwal.StateNew)
	b.drain(exitwal.StateFailed)
}

func (b *Broadcaster) drain(state exitwal.ExitState) {
	err := b.exitWAL.ScanByState(state, func(seq uint64, rec exitwal.ExitRecord) error {
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			log.Printf("[broadcaster] send failed for seq=%d: %v", seq, err)
			return b.exitWAL.UpdateState(seq, exitwal.StateFailed, rec.Retries+1)
		}

		return b.exitWAL.UpdateState(seq, exitwal.StateAcked, rec.Retries)
	})
	if err != nil {
		log.Printf("[broadcaster] scan failed: %v", err)
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
