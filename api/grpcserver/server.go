package grpcserver

import (
	"context"
	"errors"
	"log"

	pb "lob/api/pb"
	"lob/domain/orderbook"
	"lob/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server adapts OrderService to gRPC, translating between the wire
// messages generated from api/proto/orderbook.proto and the domain's
// Side/Price/Quantity/OrderID types.
type Server struct {
	pb.UnimplementedOrderServiceServer
	svc *service.OrderService
}

func NewServer(svc *service.OrderService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.PlaceOrderResponse, error) {
	side := toSide(req.Side)
	tif := toTIF(req.Tif)

	report, err := s.svc.PlaceOrderTIF(
		orderbook.OrderID(req.OrderId),
		side,
		orderbook.Price(req.Price),
		orderbook.Quantity(req.Quantity),
		tif,
	)
	if err != nil {
		return nil, toGRPCErr(err)
	}

	log.Printf("[gRPC] PlaceOrder id=%d side=%v price=%d qty=%d filled=%d resting=%d",
		req.OrderId, side, req.Price, req.Quantity, report.Filled, report.Resting)

	return &pb.PlaceOrderResponse{
		Filled:  uint64(report.Filled),
		Resting: uint64(report.Resting),
		Trades:  fromTrades(report.Trades),
	}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *pb.CancelOrderRequest) (*pb.CancelOrderResponse, error) {
	report, err := s.svc.CancelOrder(orderbook.OrderID(req.OrderId))
	if err != nil {
		return nil, toGRPCErr(err)
	}
	return &pb.CancelOrderResponse{CancelledQuantity: uint64(report.CancelledQty)}, nil
}

func (s *Server) ModifyOrder(ctx context.Context, req *pb.ModifyOrderRequest) (*pb.ModifyOrderResponse, error) {
	report, err := s.svc.ModifyOrder(orderbook.OrderID(req.OrderId), orderbook.Price(req.NewPrice), orderbook.Quantity(req.NewQty))
	if err != nil {
		return nil, toGRPCErr(err)
	}
	return &pb.ModifyOrderResponse{
		FastPath: report.FastPath,
		Filled:   uint64(report.Replaced.Filled),
		Resting:  uint64(report.Replaced.Resting),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetSnapshot(ctx context.Context, req *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	views := s.svc.Snapshot()

	resp := &pb.SnapshotResponse{Orders: make([]*pb.OrderEntry, 0, len(views))}
	for _, v := range views {
		resp.Orders = append(resp.Orders, &pb.OrderEntry{
			OrderId:   uint64(v.OrderID),
			Side:      fromSide(v.Side),
			Price:     int64(v.Price),
			Remaining: uint64(v.Remaining),
		})
	}
	return resp, nil
}

func (s *Server) GetBestPrices(ctx context.Context, req *pb.BestPricesRequest) (*pb.BestPricesResponse, error) {
	bidPrice, bidQty, hasBid := s.svc.BestBid()
	askPrice, askQty, hasAsk := s.svc.BestAsk()

	return &pb.BestPricesResponse{
		BestBid:    int64(bidPrice),
		BestBidQty: uint64(bidQty),
		HasBid:     hasBid,
		BestAsk:    int64(askPrice),
		BestAskQty: uint64(askQty),
		HasAsk:     hasAsk,
	}, nil
}

// -------------------- Converters --------------------

func toSide(s pb.Side) orderbook.Side {
	if s == pb.Side_SELL {
		return orderbook.Sell
	}
	return orderbook.Buy
}

func fromSide(s orderbook.Side) pb.Side {
	if s == orderbook.Sell {
		return pb.Side_SELL
	}
	return pb.Side_BUY
}

func toTIF(t pb.TimeInForce) service.TimeInForce {
	switch t {
	case pb.TimeInForce_MARKET:
		return service.Market
	case pb.TimeInForce_IOC:
		return service.IOC
	case pb.TimeInForce_FOK:
		return service.FOK
	case pb.TimeInForce_POST_ONLY:
		return service.PostOnly
	default:
		return service.Limit
	}
}

func fromTrades(trades []orderbook.Trade) []*pb.Trade {
	out := make([]*pb.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, &pb.Trade{
			MakerOrderId: uint64(t.MakerOrderID),
			TakerOrderId: uint64(t.TakerOrderID),
			Price:        int64(t.Price),
			Quantity:     uint64(t.Quantity),
			MakerSide:    fromSide(t.MakerSide),
			Seq:          t.Seq,
		})
	}
	return out
}

func toGRPCErr(err error) error {
	switch {
	case errors.Is(err, orderbook.ErrInvalidQuantity),
		errors.Is(err, orderbook.ErrDuplicateOrderID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, orderbook.ErrUnknownOrderID):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, orderbook.ErrInsufficientLiquidity),
		errors.Is(err, service.ErrWouldCross):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, orderbook.ErrCapacityExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
