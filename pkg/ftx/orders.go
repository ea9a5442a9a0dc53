package ftx

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tradekit/ftx/pkg/ftxapi"
)

// PlaceOrderOptions mirrors the write payload of POST /api/orders. Zero
// values of the optional fields are transmitted verbatim: a nil Price is sent
// as null (market order), a nil ClientId lets the exchange assign one.
type PlaceOrderOptions struct {
	Market string
	Side   ftxapi.Side
	Size   float64

	// Price must be nil for market orders.
	Price *float64

	// Type defaults to market.
	Type ftxapi.OrderType

	ReduceOnly bool
	Ioc        bool
	PostOnly   bool
	ClientId   *string
}

// PlaceOrder submits an order and returns the created order record.
func (c *Client) PlaceOrder(ctx context.Context, options PlaceOrderOptions) (*ftxapi.Order, error) {
	req := c.api.NewPlaceOrderRequest().
		Market(options.Market).
		Side(options.Side).
		Size(options.Size).
		ReduceOnly(options.ReduceOnly).
		Ioc(options.Ioc).
		PostOnly(options.PostOnly)

	if options.Price != nil {
		req.Price(*options.Price)
	}
	if options.Type != "" {
		req.OrderType(options.Type)
	}
	if options.ClientId != nil {
		req.ClientId(*options.ClientId)
	}

	log.WithFields(log.Fields{
		"market": options.Market,
		"side":   options.Side,
		"size":   options.Size,
	}).Debug("placing order")

	return req.Do(ctx)
}

// OpenOrders returns the open orders, optionally filtered by market. An empty
// market returns the open orders of all markets.
func (c *Client) OpenOrders(ctx context.Context, market string) ([]ftxapi.Order, error) {
	req := c.api.NewGetOpenOrdersRequest()
	if market != "" {
		req.Market(market)
	}

	return req.Do(ctx)
}

// OrderHistoryOptions are the optional filters of OrderHistory. Unset fields
// are omitted from the query.
type OrderHistoryOptions struct {
	Market    string
	Side      ftxapi.Side
	Type      ftxapi.OrderType
	StartTime *time.Time
	EndTime   *time.Time
}

// OrderHistory returns one page of historical orders, newest first.
func (c *Client) OrderHistory(ctx context.Context, options OrderHistoryOptions) ([]ftxapi.Order, error) {
	req := c.api.NewGetOrderHistoryRequest()
	if options.Market != "" {
		req.Market(options.Market)
	}
	if options.Side != "" {
		req.Side(options.Side)
	}
	if options.Type != "" {
		req.OrderType(options.Type)
	}
	if options.StartTime != nil {
		req.StartTime(*options.StartTime)
	}
	if options.EndTime != nil {
		req.EndTime(*options.EndTime)
	}

	return req.Do(ctx)
}

// CancelOrder cancels a single order by exchange-assigned id.
func (c *Client) CancelOrder(ctx context.Context, orderID uint64) error {
	_, err := c.api.NewCancelOrderRequest(orderID).Do(ctx)
	return err
}

// CancelAllOrders cancels every open order, optionally restricted to one
// market.
func (c *Client) CancelAllOrders(ctx context.Context, market string) error {
	req := c.api.NewCancelAllOrdersRequest()
	if market != "" {
		req.Market(market)
	}

	_, err := req.Do(ctx)
	return err
}
