package service

import (
	"time"

	entrywal "lob/infra/wal/entry"
)

// Config collects every knob cmd/server needs to wire an
// OrderService and its background jobs. It follows the teacher's
// plain-struct, constructor-argument style (entry.Config, exitwal's
// directory argument) rather than a file/env parser: no config
// library sits in the dependency surface this repo draws from, so
// cmd/server populates a Config literal and passes it down instead
// of reading it from disk.
type Config struct {
	ArenaCapacity int

	EntryWAL    entrywal.Config
	ExitWALDir  string
	SnapshotDir string

	SnapshotInterval     time.Duration
	EpochAdvanceInterval time.Duration

	KafkaBrokers           []string
	TradeTopic             string
	TickTopic              string
	TickInterval           time.Duration
	BroadcastFlushInterval time.Duration

	GRPCAddr string
}

// DefaultConfig returns the settings a single-instance local
// deployment runs with.
func DefaultConfig() Config {
	return Config{
		ArenaCapacity: 1 << 20,

		EntryWAL: entrywal.Config{
			Dir:             "./data/wal_entry",
			SegmentSize:     2 * 1024 * 1024,
			SegmentDuration: time.Minute,
		},
		ExitWALDir:  "./data/wal_exit",
		SnapshotDir: "./data/snapshot",

		SnapshotInterval:     30 * time.Second,
		EpochAdvanceInterval: 2 * time.Second,

		KafkaBrokers:           []string{"localhost:9092"},
		TradeTopic:             "orderbook.trades",
		TickTopic:              "orderbook.ticks",
		TickInterval:           250 * time.Millisecond,
		BroadcastFlushInterval: 2 * time.Second,

		GRPCAddr: ":50051",
	}
}
