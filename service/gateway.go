package service

import (
	"errors"

	"lob/domain/orderbook"
)

// ErrWouldCross is returned by PlaceOrderTIF's PostOnly case when the
// order would have matched immediately on arrival.
var ErrWouldCross = errors.New("service: order would cross the book")

// TimeInForce selects the semantics layered on top of the domain's
// plain limit order. The domain package itself only knows Limit;
// everything here is a pre- or post-check wrapper around it.
type TimeInForce int

const (
	Limit TimeInForce = iota
	Market
	IOC
	FOK
	PostOnly
)

// PlaceOrderTIF places according to tif, applying the wrapper semantics
// before or after the underlying domain call:
//
//   - Limit: unchanged, resting orders behave exactly as the book
//     describes them.
//   - Market: crosses at any price on the opposite side by passing
//     orderbook.MaxPrice (Buy) or orderbook.MinPrice (Sell) as the
//     domain call's limit price; any residual is cancelled immediately
//     and the returned report shows Resting 0.
//   - IOC: like Limit, but any residual is cancelled immediately; the
//     returned report still carries the cancelled residual in Resting.
//   - FOK: a dry-run liquidity check must show enough resting
//     quantity to fill in full before the order is allowed to touch
//     the book at all; otherwise it is rejected with no side effects.
//   - PostOnly: rejected outright if it would cross on arrival.
func (s *OrderService) PlaceOrderTIF(orderID orderbook.OrderID, side orderbook.Side, price orderbook.Price, qty orderbook.Quantity, tif TimeInForce) (orderbook.PlaceReport, error) {
	switch tif {
	case Market:
		bound := marketBound(side)
		report, err := s.PlaceOrder(orderID, side, bound, qty)
		if err != nil {
			return report, err
		}
		if report.Resting > 0 {
			if _, cerr := s.CancelOrder(orderID); cerr != nil {
				return report, cerr
			}
			report.Resting = 0
		}
		return report, nil

	case IOC:
		report, err := s.PlaceOrder(orderID, side, price, qty)
		if err != nil {
			return report, err
		}
		if report.Resting > 0 {
			if _, cerr := s.CancelOrder(orderID); cerr != nil {
				return report, cerr
			}
		}
		return report, nil

	case FOK:
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.book.CrossableLiquidity(side, price) < qty {
			return orderbook.PlaceReport{}, orderbook.ErrInsufficientLiquidity
		}
		return s.placeOrderLocked(orderID, side, price, qty)

	case PostOnly:
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.book.CrossableLiquidity(side, price) > 0 {
			return orderbook.PlaceReport{}, ErrWouldCross
		}
		return s.placeOrderLocked(orderID, side, price, qty)

	default:
		return s.PlaceOrder(orderID, side, price, qty)
	}
}

func marketBound(side orderbook.Side) orderbook.Price {
	if side == orderbook.Buy {
		return orderbook.MaxPrice
	}
	return orderbook.MinPrice
}
