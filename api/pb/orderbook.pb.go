// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: orderbook.proto

package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Side int32

const (
	Side_BUY  Side = 0
	Side_SELL Side = 1
)

// Enum value maps for Side.
var (
	Side_name = map[int32]string{
		0: "BUY",
		1: "SELL",
	}
	Side_value = map[string]int32{
		"BUY":  0,
		"SELL": 1,
	}
)

func (x Side) Enum() *Side {
	p := new(Side)
	*p = x
	return p
}

func (x Side) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Side) Descriptor() protoreflect.EnumDescriptor {
	return file_orderbook_proto_enumTypes[0].Descriptor()
}

func (Side) Type() protoreflect.EnumType {
	return &file_orderbook_proto_enumTypes[0]
}

func (x Side) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Side.Descriptor instead.
func (Side) EnumDescriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{0}
}

type TimeInForce int32

const (
	TimeInForce_LIMIT     TimeInForce = 0
	TimeInForce_MARKET    TimeInForce = 1
	TimeInForce_IOC       TimeInForce = 2
	TimeInForce_FOK       TimeInForce = 3
	TimeInForce_POST_ONLY TimeInForce = 4
)

// Enum value maps for TimeInForce.
var (
	TimeInForce_name = map[int32]string{
		0: "LIMIT",
		1: "MARKET",
		2: "IOC",
		3: "FOK",
		4: "POST_ONLY",
	}
	TimeInForce_value = map[string]int32{
		"LIMIT":     0,
		"MARKET":    1,
		"IOC":       2,
		"FOK":       3,
		"POST_ONLY": 4,
	}
)

func (x TimeInForce) Enum() *TimeInForce {
	p := new(TimeInForce)
	*p = x
	return p
}

func (x TimeInForce) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TimeInForce) Descriptor() protoreflect.EnumDescriptor {
	return file_orderbook_proto_enumTypes[1].Descriptor()
}

func (TimeInForce) Type() protoreflect.EnumType {
	return &file_orderbook_proto_enumTypes[1]
}

func (x TimeInForce) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TimeInForce.Descriptor instead.
func (TimeInForce) EnumDescriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{1}
}

type Trade struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MakerOrderId  uint64                 `protobuf:"varint,1,opt,name=maker_order_id,json=makerOrderId,proto3" json:"maker_order_id,omitempty"`
	TakerOrderId  uint64                 `protobuf:"varint,2,opt,name=taker_order_id,json=takerOrderId,proto3" json:"taker_order_id,omitempty"`
	Price         int64                  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Quantity      uint64                 `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	MakerSide     Side                   `protobuf:"varint,5,opt,name=maker_side,json=makerSide,proto3,enum=orderbook.Side" json:"maker_side,omitempty"`
	Seq           uint64                 `protobuf:"varint,6,opt,name=seq,proto3" json:"seq,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Trade) Reset() {
	*x = Trade{}
	mi := &file_orderbook_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Trade) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Trade) ProtoMessage() {}

func (x *Trade) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Trade.ProtoReflect.Descriptor instead.
func (*Trade) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{0}
}

func (x *Trade) GetMakerOrderId() uint64 {
	if x != nil {
		return x.MakerOrderId
	}
	return 0
}

func (x *Trade) GetTakerOrderId() uint64 {
	if x != nil {
		return x.TakerOrderId
	}
	return 0
}

func (x *Trade) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Trade) GetQuantity() uint64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *Trade) GetMakerSide() Side {
	if x != nil {
		return x.MakerSide
	}
	return Side_BUY
}

func (x *Trade) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

type PlaceOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       uint64                 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Side          Side                   `protobuf:"varint,2,opt,name=side,proto3,enum=orderbook.Side" json:"side,omitempty"`
	Price         int64                  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Quantity      uint64                 `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Tif           TimeInForce            `protobuf:"varint,5,opt,name=tif,proto3,enum=orderbook.TimeInForce" json:"tif,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaceOrderRequest) Reset() {
	*x = PlaceOrderRequest{}
	mi := &file_orderbook_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaceOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaceOrderRequest) ProtoMessage() {}

func (x *PlaceOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaceOrderRequest.ProtoReflect.Descriptor instead.
func (*PlaceOrderRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{1}
}

func (x *PlaceOrderRequest) GetOrderId() uint64 {
	if x != nil {
		return x.OrderId
	}
	return 0
}

func (x *PlaceOrderRequest) GetSide() Side {
	if x != nil {
		return x.Side
	}
	return Side_BUY
}

func (x *PlaceOrderRequest) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *PlaceOrderRequest) GetQuantity() uint64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *PlaceOrderRequest) GetTif() TimeInForce {
	if x != nil {
		return x.Tif
	}
	return TimeInForce_LIMIT
}

type PlaceOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filled        uint64                 `protobuf:"varint,1,opt,name=filled,proto3" json:"filled,omitempty"`
	Resting       uint64                 `protobuf:"varint,2,opt,name=resting,proto3" json:"resting,omitempty"`
	Trades        []*Trade               `protobuf:"bytes,3,rep,name=trades,proto3" json:"trades,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaceOrderResponse) Reset() {
	*x = PlaceOrderResponse{}
	mi := &file_orderbook_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaceOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaceOrderResponse) ProtoMessage() {}

func (x *PlaceOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaceOrderResponse.ProtoReflect.Descriptor instead.
func (*PlaceOrderResponse) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{2}
}

func (x *PlaceOrderResponse) GetFilled() uint64 {
	if x != nil {
		return x.Filled
	}
	return 0
}

func (x *PlaceOrderResponse) GetResting() uint64 {
	if x != nil {
		return x.Resting
	}
	return 0
}

func (x *PlaceOrderResponse) GetTrades() []*Trade {
	if x != nil {
		return x.Trades
	}
	return nil
}

type CancelOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       uint64                 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelOrderRequest) Reset() {
	*x = CancelOrderRequest{}
	mi := &file_orderbook_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelOrderRequest) ProtoMessage() {}

func (x *CancelOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelOrderRequest.ProtoReflect.Descriptor instead.
func (*CancelOrderRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{3}
}

func (x *CancelOrderRequest) GetOrderId() uint64 {
	if x != nil {
		return x.OrderId
	}
	return 0
}

type CancelOrderResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	CancelledQuantity uint64                 `protobuf:"varint,1,opt,name=cancelled_quantity,json=cancelledQuantity,proto3" json:"cancelled_quantity,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *CancelOrderResponse) Reset() {
	*x = CancelOrderResponse{}
	mi := &file_orderbook_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelOrderResponse) ProtoMessage() {}

func (x *CancelOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelOrderResponse.ProtoReflect.Descriptor instead.
func (*CancelOrderResponse) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{4}
}

func (x *CancelOrderResponse) GetCancelledQuantity() uint64 {
	if x != nil {
		return x.CancelledQuantity
	}
	return 0
}

type ModifyOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       uint64                 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	NewPrice      int64                  `protobuf:"varint,2,opt,name=new_price,json=newPrice,proto3" json:"new_price,omitempty"`
	NewQty        uint64                 `protobuf:"varint,3,opt,name=new_qty,json=newQty,proto3" json:"new_qty,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ModifyOrderRequest) Reset() {
	*x = ModifyOrderRequest{}
	mi := &file_orderbook_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ModifyOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ModifyOrderRequest) ProtoMessage() {}

func (x *ModifyOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ModifyOrderRequest.ProtoReflect.Descriptor instead.
func (*ModifyOrderRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{5}
}

func (x *ModifyOrderRequest) GetOrderId() uint64 {
	if x != nil {
		return x.OrderId
	}
	return 0
}

func (x *ModifyOrderRequest) GetNewPrice() int64 {
	if x != nil {
		return x.NewPrice
	}
	return 0
}

func (x *ModifyOrderRequest) GetNewQty() uint64 {
	if x != nil {
		return x.NewQty
	}
	return 0
}

type ModifyOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FastPath      bool                   `protobuf:"varint,1,opt,name=fast_path,json=fastPath,proto3" json:"fast_path,omitempty"`
	Filled        uint64                 `protobuf:"varint,2,opt,name=filled,proto3" json:"filled,omitempty"`
	Resting       uint64                 `protobuf:"varint,3,opt,name=resting,proto3" json:"resting,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ModifyOrderResponse) Reset() {
	*x = ModifyOrderResponse{}
	mi := &file_orderbook_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ModifyOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ModifyOrderResponse) ProtoMessage() {}

func (x *ModifyOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ModifyOrderResponse.ProtoReflect.Descriptor instead.
func (*ModifyOrderResponse) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{6}
}

func (x *ModifyOrderResponse) GetFastPath() bool {
	if x != nil {
		return x.FastPath
	}
	return false
}

func (x *ModifyOrderResponse) GetFilled() uint64 {
	if x != nil {
		return x.Filled
	}
	return 0
}

func (x *ModifyOrderResponse) GetResting() uint64 {
	if x != nil {
		return x.Resting
	}
	return 0
}

type SnapshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SnapshotRequest) Reset() {
	*x = SnapshotRequest{}
	mi := &file_orderbook_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SnapshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SnapshotRequest) ProtoMessage() {}

func (x *SnapshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SnapshotRequest.ProtoReflect.Descriptor instead.
func (*SnapshotRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{7}
}

type OrderEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       uint64                 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Side          Side                   `protobuf:"varint,2,opt,name=side,proto3,enum=orderbook.Side" json:"side,omitempty"`
	Price         int64                  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Remaining     uint64                 `protobuf:"varint,4,opt,name=remaining,proto3" json:"remaining,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderEntry) Reset() {
	*x = OrderEntry{}
	mi := &file_orderbook_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderEntry) ProtoMessage() {}

func (x *OrderEntry) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderEntry.ProtoReflect.Descriptor instead.
func (*OrderEntry) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{8}
}

func (x *OrderEntry) GetOrderId() uint64 {
	if x != nil {
		return x.OrderId
	}
	return 0
}

func (x *OrderEntry) GetSide() Side {
	if x != nil {
		return x.Side
	}
	return Side_BUY
}

func (x *OrderEntry) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *OrderEntry) GetRemaining() uint64 {
	if x != nil {
		return x.Remaining
	}
	return 0
}

type SnapshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*OrderEntry          `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SnapshotResponse) Reset() {
	*x = SnapshotResponse{}
	mi := &file_orderbook_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SnapshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SnapshotResponse) ProtoMessage() {}

func (x *SnapshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SnapshotResponse.ProtoReflect.Descriptor instead.
func (*SnapshotResponse) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{9}
}

func (x *SnapshotResponse) GetOrders() []*OrderEntry {
	if x != nil {
		return x.Orders
	}
	return nil
}

type BestPricesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BestPricesRequest) Reset() {
	*x = BestPricesRequest{}
	mi := &file_orderbook_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BestPricesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BestPricesRequest) ProtoMessage() {}

func (x *BestPricesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BestPricesRequest.ProtoReflect.Descriptor instead.
func (*BestPricesRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{10}
}

type BestPricesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BestBid       int64                  `protobuf:"varint,1,opt,name=best_bid,json=bestBid,proto3" json:"best_bid,omitempty"`
	BestBidQty    uint64                 `protobuf:"varint,2,opt,name=best_bid_qty,json=bestBidQty,proto3" json:"best_bid_qty,omitempty"`
	HasBid        bool                   `protobuf:"varint,3,opt,name=has_bid,json=hasBid,proto3" json:"has_bid,omitempty"`
	BestAsk       int64                  `protobuf:"varint,4,opt,name=best_ask,json=bestAsk,proto3" json:"best_ask,omitempty"`
	BestAskQty    uint64                 `protobuf:"varint,5,opt,name=best_ask_qty,json=bestAskQty,proto3" json:"best_ask_qty,omitempty"`
	HasAsk        bool                   `protobuf:"varint,6,opt,name=has_ask,json=hasAsk,proto3" json:"has_ask,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BestPricesResponse) Reset() {
	*x = BestPricesResponse{}
	mi := &file_orderbook_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BestPricesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BestPricesResponse) ProtoMessage() {}

func (x *BestPricesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BestPricesResponse.ProtoReflect.Descriptor instead.
func (*BestPricesResponse) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{11}
}

func (x *BestPricesResponse) GetBestBid() int64 {
	if x != nil {
		return x.BestBid
	}
	return 0
}

func (x *BestPricesResponse) GetBestBidQty() uint64 {
	if x != nil {
		return x.BestBidQty
	}
	return 0
}

func (x *BestPricesResponse) GetHasBid() bool {
	if x != nil {
		return x.HasBid
	}
	return false
}

func (x *BestPricesResponse) GetBestAsk() int64 {
	if x != nil {
		return x.BestAsk
	}
	return 0
}

func (x *BestPricesResponse) GetBestAskQty() uint64 {
	if x != nil {
		return x.BestAskQty
	}
	return 0
}

func (x *BestPricesResponse) GetHasAsk() bool {
	if x != nil {
		return x.HasAsk
	}
	return false
}

var File_orderbook_proto protoreflect.FileDescriptor

const file_orderbook_proto_rawDesc = "" +
	"\n" +
	"\x0forderbook.proto\x12\torderbook\"\xc7\x01\n" +
	"\x05Trade\x12$\n" +
	"\x0emaker_order_id\x18\x01 \x01(\x04R\fmakerOrderId\x12$\n" +
	"\x0etaker_order_id\x18\x02 \x01(\x04R\ftakerOrderId\x12\x14\n" +
	"\x05price\x18\x03 \x01(\x03R\x05price\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x04R\bquantity\x12.\n" +
	"\n" +
	"maker_side\x18\x05 \x01(\x0e2\x0f.orderbook.SideR\tmakerSide\x12\x10\n" +
	"\x03seq\x18\x06 \x01(\x04R\x03seq\"\xaf\x01\n" +
	"\x11PlaceOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\x04R\aorderId\x12#\n" +
	"\x04side\x18\x02 \x01(\x0e2\x0f.orderbook.SideR\x04side\x12\x14\n" +
	"\x05price\x18\x03 \x01(\x03R\x05price\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x04R\bquantity\x12(\n" +
	"\x03tif\x18\x05 \x01(\x0e2\x16.orderbook.TimeInForceR\x03tif\"p\n" +
	"\x12PlaceOrderResponse\x12\x16\n" +
	"\x06filled\x18\x01 \x01(\x04R\x06filled\x12\x18\n" +
	"\aresting\x18\x02 \x01(\x04R\aresting\x12(\n" +
	"\x06trades\x18\x03 \x03(\v2\x10.orderbook.TradeR\x06trades\"/\n" +
	"\x12CancelOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\x04R\aorderId\"D\n" +
	"\x13CancelOrderResponse\x12-\n" +
	"\x12cancelled_quantity\x18\x01 \x01(\x04R\x11cancelledQuantity\"e\n" +
	"\x12ModifyOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\x04R\aorderId\x12\x1b\n" +
	"\tnew_price\x18\x02 \x01(\x03R\bnewPrice\x12\x17\n" +
	"\anew_qty\x18\x03 \x01(\x04R\x06newQty\"d\n" +
	"\x13ModifyOrderResponse\x12\x1b\n" +
	"\tfast_path\x18\x01 \x01(\bR\bfastPath\x12\x16\n" +
	"\x06filled\x18\x02 \x01(\x04R\x06filled\x12\x18\n" +
	"\aresting\x18\x03 \x01(\x04R\aresting\"\x11\n" +
	"\x0fSnapshotRequest\"\x80\x01\n" +
	"\n" +
	"OrderEntry\x12\x19\n" +
	"\border_id\x18\x01 \x01(\x04R\aorderId\x12#\n" +
	"\x04side\x18\x02 \x01(\x0e2\x0f.orderbook.SideR\x04side\x12\x14\n" +
	"\x05price\x18\x03 \x01(\x03R\x05price\x12\x1c\n" +
	"\tremaining\x18\x04 \x01(\x04R\tremaining\"A\n" +
	"\x10SnapshotResponse\x12-\n" +
	"\x06orders\x18\x01 \x03(\v2\x15.orderbook.OrderEntryR\x06orders\"\x13\n" +
	"\x11BestPricesRequest\"\xc0\x01\n" +
	"\x12BestPricesResponse\x12\x19\n" +
	"\bbest_bid\x18\x01 \x01(\x03R\abestBid\x12 \n" +
	"\fbest_bid_qty\x18\x02 \x01(\x04R\n" +
	"bestBidQty\x12\x17\n" +
	"\ahas_bid\x18\x03 \x01(\bR\x06hasBid\x12\x19\n" +
	"\bbest_ask\x18\x04 \x01(\x03R\abestAsk\x12 \n" +
	"\fbest_ask_qty\x18\x05 \x01(\x04R\n" +
	"bestAskQty\x12\x17\n" +
	"\ahas_ask\x18\x06 \x01(\bR\x06hasAsk*\x19\n" +
	"\x04Side\x12\a\n" +
	"\x03BUY\x10\x00\x12\b\n" +
	"\x04SELL\x10\x01*E\n" +
	"\vTimeInForce\x12\t\n" +
	"\x05LIMIT\x10\x00\x12\n" +
	"\n" +
	"\x06MARKET\x10\x01\x12\a\n" +
	"\x03IOC\x10\x02\x12\a\n" +
	"\x03FOK\x10\x03\x12\r\n" +
	"\tPOST_ONLY\x10\x042\x8b\x03\n" +
	"\fOrderService\x12I\n" +
	"\n" +
	"PlaceOrder\x12\x1c.orderbook.PlaceOrderRequest\x1a\x1d.orderbook.PlaceOrderResponse\x12L\n" +
	"\vCancelOrder\x12\x1d.orderbook.CancelOrderRequest\x1a\x1e.orderbook.CancelOrderResponse\x12L\n" +
	"\vModifyOrder\x12\x1d.orderbook.ModifyOrderRequest\x1a\x1e.orderbook.ModifyOrderResponse\x12F\n" +
	"\vGetSnapshot\x12\x1a.orderbook.SnapshotRequest\x1a\x1b.orderbook.SnapshotResponse\x12L\n" +
	"\rGetBestPrices\x12\x1c.orderbook.BestPricesRequest\x1a\x1d.orderbook.BestPricesResponseB\fZ\n" +
	"lob/api/pbb\x06proto3"

var (
	file_orderbook_proto_rawDescOnce sync.Once
	file_orderbook_proto_rawDescData []byte
)

func file_orderbook_proto_rawDescGZIP() []byte {
	file_orderbook_proto_rawDescOnce.Do(func() {
		file_orderbook_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_orderbook_proto_rawDesc), len(file_orderbook_proto_rawDesc)))
	})
	return file_orderbook_proto_rawDescData
}

var file_orderbook_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_orderbook_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_orderbook_proto_goTypes = []any{
	(Side)(0),                   // 0: orderbook.Side
	(TimeInForce)(0),            // 1: orderbook.TimeInForce
	(*Trade)(nil),               // 2: orderbook.Trade
	(*PlaceOrderRequest)(nil),   // 3: orderbook.PlaceOrderRequest
	(*PlaceOrderResponse)(nil),  // 4: orderbook.PlaceOrderResponse
	(*CancelOrderRequest)(nil),  // 5: orderbook.CancelOrderRequest
	(*CancelOrderResponse)(nil), // 6: orderbook.CancelOrderResponse
	(*ModifyOrderRequest)(nil),  // 7: orderbook.ModifyOrderRequest
	(*ModifyOrderResponse)(nil), // 8: orderbook.ModifyOrderResponse
	(*SnapshotRequest)(nil),     // 9: orderbook.SnapshotRequest
	(*OrderEntry)(nil),          // 10: orderbook.OrderEntry
	(*SnapshotResponse)(nil),    // 11: orderbook.SnapshotResponse
	(*BestPricesRequest)(nil),   // 12: orderbook.BestPricesRequest
	(*BestPricesResponse)(nil),  // 13: orderbook.BestPricesResponse
}
var file_orderbook_proto_depIdxs = []int32{
	0,  // 0: orderbook.Trade.maker_side:type_name -> orderbook.Side
	0,  // 1: orderbook.PlaceOrderRequest.side:type_name -> orderbook.Side
	1,  // 2: orderbook.PlaceOrderRequest.tif:type_name -> orderbook.TimeInForce
	2,  // 3: orderbook.PlaceOrderResponse.trades:type_name -> orderbook.Trade
	0,  // 4: orderbook.OrderEntry.side:type_name -> orderbook.Side
	10, // 5: orderbook.SnapshotResponse.orders:type_name -> orderbook.OrderEntry
	3,  // 6: orderbook.OrderService.PlaceOrder:input_type -> orderbook.PlaceOrderRequest
	5,  // 7: orderbook.OrderService.CancelOrder:input_type -> orderbook.CancelOrderRequest
	7,  // 8: orderbook.OrderService.ModifyOrder:input_type -> orderbook.ModifyOrderRequest
	9,  // 9: orderbook.OrderService.GetSnapshot:input_type -> orderbook.SnapshotRequest
	12, // 10: orderbook.OrderService.GetBestPrices:input_type -> orderbook.BestPricesRequest
	4,  // 11: orderbook.OrderService.PlaceOrder:output_type -> orderbook.PlaceOrderResponse
	6,  // 12: orderbook.OrderService.CancelOrder:output_type -> orderbook.CancelOrderResponse
	8,  // 13: orderbook.OrderService.ModifyOrder:output_type -> orderbook.ModifyOrderResponse
	11, // 14: orderbook.OrderService.GetSnapshot:output_type -> orderbook.SnapshotResponse
	13, // 15: orderbook.OrderService.GetBestPrices:output_type -> orderbook.BestPricesResponse
	11, // [11:16] is the sub-list for method output_type
	6,  // [6:11] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_orderbook_proto_init() }
func file_orderbook_proto_init() {
	if File_orderbook_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_orderbook_proto_rawDesc), len(file_orderbook_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_orderbook_proto_goTypes,
		DependencyIndexes: file_orderbook_proto_depIdxs,
		EnumInfos:         file_orderbook_proto_enumTypes,
		MessageInfos:      file_orderbook_proto_msgTypes,
	}.Build()
	File_orderbook_proto = out.File
	file_orderbook_proto_goTypes = nil
	file_orderbook_proto_depIdxs = nil
}
