package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	kafkafeed "lob/infra/kafka"
)

// tick is the fire-and-forget top-of-book payload published on every
// TickPublisher interval. Unlike the exit outbox, a dropped tick is
// not retried — the next interval supersedes it.
type tick struct {
	BestBid    int64  `json:"best_bid"`
	BestBidQty uint64 `json:"best_bid_qty"`
	HasBid     bool   `json:"has_bid"`
	BestAsk    int64  `json:"best_ask"`
	BestAskQty uint64 `json:"best_ask_qty"`
	HasAsk     bool   `json:"has_ask"`
}

// TickPublisher periodically snapshots best bid/ask and publishes it
// to a market-data topic via kafka-go, independent of the sarama
// broadcaster's guaranteed-delivery trade feed.
type TickPublisher struct {
	svc      *OrderService
	producer *kafkafeed.Producer
	interval time.Duration
}

func NewTickPublisher(svc *OrderService, producer *kafkafeed.Producer, interval time.Duration) *TickPublisher {
	return &TickPublisher{svc: svc, producer: producer, interval: interval}
}

func (p *TickPublisher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.publishOnce(ctx)
			}
		}
	}()
}

func (p *TickPublisher) publishOnce(ctx context.Context) {
	bidPrice, bidQty, hasBid := p.svc.BestBid()
	askPrice, askQty, hasAsk := p.svc.BestAsk()

	t := tick{
		BestBid: int64(bidPrice), BestBidQty: uint64(bidQty), HasBid: hasBid,
		BestAsk: int64(askPrice), BestAskQty: uint64(askQty), HasAsk: hasAsk,
	}

	payload, err := json.Marshal(t)
	if err != nil {
		log.Printf("[ticks] marshal failed: %v", err)
		return
	}

	if err := p.producer.Send(ctx, nil, payload); err != nil {
		log.Printf("[ticks] publish failed: %v", err)
	}
}
