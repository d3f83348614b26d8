package main

import (
	"context"
	"log"
	"net"
	"path/filepath"
	"time"

	"google.golang.org/grpc"

	"lob/api/grpcserver"
	pb "lob/api/pb"

	"lob/domain/orderbook"
	kafkafeed "lob/infra/kafka"
	"lob/infra/memory"
	"lob/infra/sequence"
	entrywal "lob/infra/wal/entry"
	exitwal "lob/infra/wal/exit"
	"lob/jobs/broadcaster"
	"lob/service"
	"lob/snapshot"
)

func main() {
	cfg := service.DefaultConfig()

	// ---------------- Domain ----------------

	book := orderbook.NewBook("default", cfg.ArenaCapacity)

	// ---------------- Snapshot load ----------------

	lastSnapSeq, err := snapshot.Load(filepath.Join(cfg.SnapshotDir, "snapshot.bin"), book)
	if err != nil {
		log.Fatalf("snapshot load failed: %v", err)
	}

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(cfg.EntryWAL)
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}

	// ---------------- Exit WAL ----------------

	exitWAL, err := exitwal.Open(cfg.ExitWALDir)
	if err != nil {
		log.Fatalf("exit WAL init failed: %v", err)
	}
	defer exitWAL.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(lastSnapSeq)

	// ---------------- WAL replay (from the snapshot forward) ----------------

	lastSeq, err := service.ReplayFromWAL(cfg.EntryWAL.Dir, lastSnapSeq, book, service.DefaultCodec())
	if err != nil {
		log.Fatalf("WAL replay failed: %v", err)
	}
	if lastSeq > 0 {
		service.ResumeSequencing(seqGen, lastSeq)
	}

	// ---------------- Memory ----------------

	pool := service.NewTradeBatchPool()
	ring := memory.NewRetireRing(1 << 16)
	snapReader := snapshot.NewReader()

	// ---------------- Service ----------------

	svc := service.NewOrderService(book, pool, ring, snapReader, seqGen, entryWAL, exitWAL)

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(cfg.EpochAdvanceInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				svc.AdvanceEpoch()
			}
		}
	}()

	svc.StartSnapshotJob(cfg.SnapshotDir, cfg.SnapshotInterval)

	bc, err := broadcaster.New(exitWAL, cfg.KafkaBrokers, cfg.TradeTopic, cfg.BroadcastFlushInterval)
	if err != nil {
		log.Fatalf("broadcaster init failed: %v", err)
	}
	bc.Start(ctx)
	defer bc.Close()

	tickProducer := kafkafeed.NewProducer(cfg.KafkaBrokers, cfg.TickTopic)
	defer tickProducer.Close()
	service.NewTickPublisher(svc, tickProducer, cfg.TickInterval).Start(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderServiceServer(grpcSrv, grpcserver.NewServer(svc))

	log.Printf("lob engine running on %s", cfg.GRPCAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
