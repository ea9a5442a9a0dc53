package ftxapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Order struct {
	CreatedAt     time.Time        `json:"createdAt"`
	Future        string           `json:"future"`
	Id            int64            `json:"id"`
	Market        string           `json:"market"`
	Price         *decimal.Decimal `json:"price"`
	AvgFillPrice  *decimal.Decimal `json:"avgFillPrice"`
	Size          decimal.Decimal  `json:"size"`
	RemainingSize decimal.Decimal  `json:"remainingSize"`
	FilledSize    decimal.Decimal  `json:"filledSize"`
	Side          Side             `json:"side"`
	Status        OrderStatus      `json:"status"`
	Type          OrderType        `json:"type"`
	ReduceOnly    bool             `json:"reduceOnly"`
	Ioc           bool             `json:"ioc"`
	PostOnly      bool             `json:"postOnly"`
	ClientId      *string          `json:"clientId"`
}

// placeOrderPayload is the write payload of POST /api/orders. Optional fields
// are serialized as explicit JSON nulls, the exchange accepts a null price for
// market orders and a null clientId for server-assigned ids.
type placeOrderPayload struct {
	Market     string    `json:"market"`
	Side       Side      `json:"side"`
	Price      *float64  `json:"price"`
	Size       float64   `json:"size"`
	Type       OrderType `json:"type"`
	ReduceOnly bool      `json:"reduceOnly"`
	Ioc        bool      `json:"ioc"`
	PostOnly   bool      `json:"postOnly"`
	ClientId   *string   `json:"clientId"`
}

type PlaceOrderRequest struct {
	client requestgen.AuthenticatedAPIClient

	market     string
	side       Side
	price      *float64
	size       float64
	orderType  OrderType
	reduceOnly bool
	ioc        bool
	postOnly   bool
	clientId   *string
}

func (c *RestClient) NewPlaceOrderRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{
		client:    c,
		orderType: OrderTypeMarket,
	}
}

func (p *PlaceOrderRequest) Market(market string) *PlaceOrderRequest {
	p.market = market
	return p
}

func (p *PlaceOrderRequest) Side(side Side) *PlaceOrderRequest {
	p.side = side
	return p
}

func (p *PlaceOrderRequest) Price(price float64) *PlaceOrderRequest {
	p.price = &price
	return p
}

func (p *PlaceOrderRequest) Size(size float64) *PlaceOrderRequest {
	p.size = size
	return p
}

func (p *PlaceOrderRequest) OrderType(orderType OrderType) *PlaceOrderRequest {
	p.orderType = orderType
	return p
}

func (p *PlaceOrderRequest) ReduceOnly(reduceOnly bool) *PlaceOrderRequest {
	p.reduceOnly = reduceOnly
	return p
}

func (p *PlaceOrderRequest) Ioc(ioc bool) *PlaceOrderRequest {
	p.ioc = ioc
	return p
}

func (p *PlaceOrderRequest) PostOnly(postOnly bool) *PlaceOrderRequest {
	p.postOnly = postOnly
	return p
}

func (p *PlaceOrderRequest) ClientId(clientId string) *PlaceOrderRequest {
	p.clientId = &clientId
	return p
}

func (p *PlaceOrderRequest) Do(ctx context.Context) (*Order, error) {
	if len(p.market) == 0 {
		return nil, fmt.Errorf("market is required, empty string given")
	}

	switch p.side {
	case SideBuy, SideSell:
	default:
		return nil, fmt.Errorf("side gives invalid value %q", p.side)
	}

	payload := placeOrderPayload{
		Market:     p.market,
		Side:       p.side,
		Price:      p.price,
		Size:       p.size,
		Type:       p.orderType,
		ReduceOnly: p.reduceOnly,
		Ioc:        p.ioc,
		PostOnly:   p.postOnly,
		ClientId:   p.clientId,
	}

	req, err := p.client.NewAuthenticatedRequest(ctx, "POST", "api/orders", nil, payload)
	if err != nil {
		return nil, err
	}

	response, err := p.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data Order
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

type GetOpenOrdersRequest struct {
	client requestgen.AuthenticatedAPIClient

	market *string
}

func (c *RestClient) NewGetOpenOrdersRequest() *GetOpenOrdersRequest {
	return &GetOpenOrdersRequest{
		client: c,
	}
}

func (g *GetOpenOrdersRequest) Market(market string) *GetOpenOrdersRequest {
	g.market = &market
	return g
}

func (g *GetOpenOrdersRequest) Do(ctx context.Context) ([]Order, error) {
	var params url.Values
	if g.market != nil {
		params = url.Values{}
		params.Set("market", *g.market)
	}

	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/orders", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data []Order
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return data, nil
}

type GetOrderHistoryRequest struct {
	client requestgen.AuthenticatedAPIClient

	market    *string
	side      *Side
	orderType *OrderType
	startTime *time.Time
	endTime   *time.Time
}

func (c *RestClient) NewGetOrderHistoryRequest() *GetOrderHistoryRequest {
	return &GetOrderHistoryRequest{
		client: c,
	}
}

func (g *GetOrderHistoryRequest) Market(market string) *GetOrderHistoryRequest {
	g.market = &market
	return g
}

func (g *GetOrderHistoryRequest) Side(side Side) *GetOrderHistoryRequest {
	g.side = &side
	return g
}

func (g *GetOrderHistoryRequest) OrderType(orderType OrderType) *GetOrderHistoryRequest {
	g.orderType = &orderType
	return g
}

func (g *GetOrderHistoryRequest) StartTime(startTime time.Time) *GetOrderHistoryRequest {
	g.startTime = &startTime
	return g
}

func (g *GetOrderHistoryRequest) EndTime(endTime time.Time) *GetOrderHistoryRequest {
	g.endTime = &endTime
	return g
}

func (g *GetOrderHistoryRequest) Do(ctx context.Context) ([]Order, error) {
	params := url.Values{}
	if g.market != nil {
		params.Set("market", *g.market)
	}
	if g.side != nil {
		params.Set("side", string(*g.side))
	}
	if g.orderType != nil {
		params.Set("orderType", string(*g.orderType))
	}
	if g.startTime != nil {
		params.Set("start_time", strconv.FormatInt(g.startTime.Unix(), 10))
	}
	if g.endTime != nil {
		params.Set("end_time", strconv.FormatInt(g.endTime.Unix(), 10))
	}

	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/orders/history", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data []Order
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return data, nil
}

type GetOrderStatusRequest struct {
	client requestgen.AuthenticatedAPIClient

	orderID uint64
}

func (c *RestClient) NewGetOrderStatusRequest(orderID uint64) *GetOrderStatusRequest {
	return &GetOrderStatusRequest{
		client:  c,
		orderID: orderID,
	}
}

func (g *GetOrderStatusRequest) Do(ctx context.Context) (*Order, error) {
	refURL := fmt.Sprintf("api/orders/%d", g.orderID)
	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", refURL, nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data Order
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

type CancelOrderRequest struct {
	client requestgen.AuthenticatedAPIClient

	orderID uint64
}

func (c *RestClient) NewCancelOrderRequest(orderID uint64) *CancelOrderRequest {
	return &CancelOrderRequest{
		client:  c,
		orderID: orderID,
	}
}

func (c *CancelOrderRequest) Do(ctx context.Context) (*APIResponse, error) {
	refURL := fmt.Sprintf("api/orders/%d", c.orderID)
	req, err := c.client.NewAuthenticatedRequest(ctx, "DELETE", refURL, nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var apiResponse APIResponse
	if err := response.DecodeJSON(&apiResponse); err != nil {
		return nil, err
	}

	return &apiResponse, nil
}

type CancelAllOrdersRequest struct {
	client requestgen.AuthenticatedAPIClient

	market *string
}

func (c *RestClient) NewCancelAllOrdersRequest() *CancelAllOrdersRequest {
	return &CancelAllOrdersRequest{
		client: c,
	}
}

func (c *CancelAllOrdersRequest) Market(market string) *CancelAllOrdersRequest {
	c.market = &market
	return c
}

func (c *CancelAllOrdersRequest) Do(ctx context.Context) (*APIResponse, error) {
	var payload interface{}
	if c.market != nil {
		payload = map[string]interface{}{"market": *c.market}
	}

	req, err := c.client.NewAuthenticatedRequest(ctx, "DELETE", "api/orders", nil, payload)
	if err != nil {
		return nil, err
	}

	response, err := c.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var apiResponse APIResponse
	if err := response.DecodeJSON(&apiResponse); err != nil {
		return nil, err
	}

	return &apiResponse, nil
}

type Fill struct {
	// Id is fill ID
	Id            uint64           `json:"id"`
	Future        string           `json:"future"`
	Liquidity     Liquidity        `json:"liquidity"`
	Market        string           `json:"market"`
	BaseCurrency  string           `json:"baseCurrency"`
	QuoteCurrency string           `json:"quoteCurrency"`
	OrderId       uint64           `json:"orderId"`
	TradeId       uint64           `json:"tradeId"`
	Price         decimal.Decimal  `json:"price"`
	Side          Side             `json:"side"`
	Size          decimal.Decimal  `json:"size"`
	Time          time.Time        `json:"time"`
	Type          string           `json:"type"` // always = "order"
	Fee           decimal.Decimal  `json:"fee"`
	FeeCurrency   string           `json:"feeCurrency"`
	FeeRate       *decimal.Decimal `json:"feeRate"`
}

type GetFillsRequest struct {
	client requestgen.AuthenticatedAPIClient

	market    *string
	startTime *time.Time
	endTime   *time.Time
	orderID   *uint64

	// order is the order of the returned records, asc or null
	order *string
}

func (c *RestClient) NewGetFillsRequest() *GetFillsRequest {
	return &GetFillsRequest{
		client: c,
	}
}

func (g *GetFillsRequest) Market(market string) *GetFillsRequest {
	g.market = &market
	return g
}

func (g *GetFillsRequest) StartTime(startTime time.Time) *GetFillsRequest {
	g.startTime = &startTime
	return g
}

func (g *GetFillsRequest) EndTime(endTime time.Time) *GetFillsRequest {
	g.endTime = &endTime
	return g
}

func (g *GetFillsRequest) OrderID(orderID uint64) *GetFillsRequest {
	g.orderID = &orderID
	return g
}

func (g *GetFillsRequest) Order(order string) *GetFillsRequest {
	g.order = &order
	return g
}

func (g *GetFillsRequest) Do(ctx context.Context) ([]Fill, error) {
	params := url.Values{}
	if g.market != nil {
		params.Set("market", *g.market)
	}
	if g.startTime != nil {
		params.Set("start_time", strconv.FormatInt(g.startTime.Unix(), 10))
	}
	if g.endTime != nil {
		params.Set("end_time", strconv.FormatInt(g.endTime.Unix(), 10))
	}
	if g.orderID != nil {
		params.Set("orderId", strconv.FormatUint(*g.orderID, 10))
	}
	if g.order != nil {
		params.Set("order", *g.order)
	}

	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/fills", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data []Fill
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return data, nil
}
