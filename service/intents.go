package service

import "lob/domain/orderbook"

// These intents are the JSON-codec payload stored in each entry.WAL
// record; replay decodes them back into book operations.

type PlaceIntent struct {
	OrderID  orderbook.OrderID  `json:"order_id"`
	Side     orderbook.Side     `json:"side"`
	Price    orderbook.Price    `json:"price"`
	Quantity orderbook.Quantity `json:"quantity"`
}

type CancelIntent struct {
	OrderID orderbook.OrderID `json:"order_id"`
}

type ModifyIntent struct {
	OrderID  orderbook.OrderID  `json:"order_id"`
	NewPrice orderbook.Price    `json:"new_price"`
	NewQty   orderbook.Quantity `json:"new_qty"`
}
