package ftx

import (
	"context"
	"time"

	"github.com/tradekit/ftx/pkg/ftxapi"
)

// Account returns the account summary of the configured (sub)account.
func (c *Client) Account(ctx context.Context) (*ftxapi.Account, error) {
	return c.api.NewGetAccountRequest().Do(ctx)
}

// Balances returns the wallet balances of the configured (sub)account.
func (c *Client) Balances(ctx context.Context) ([]ftxapi.Balance, error) {
	return c.api.NewGetBalancesRequest().Do(ctx)
}

// Positions returns the open futures positions.
func (c *Client) Positions(ctx context.Context) ([]ftxapi.Position, error) {
	return c.api.NewGetPositionsRequest().Do(ctx)
}

// FillsOptions are the optional filters of Fills.
type FillsOptions struct {
	Market    string
	StartTime *time.Time
	EndTime   *time.Time
	OrderID   *uint64
}

// Fills returns one page of trade fills, newest first.
func (c *Client) Fills(ctx context.Context, options FillsOptions) ([]ftxapi.Fill, error) {
	req := c.api.NewGetFillsRequest()
	if options.Market != "" {
		req.Market(options.Market)
	}
	if options.StartTime != nil {
		req.StartTime(*options.StartTime)
	}
	if options.EndTime != nil {
		req.EndTime(*options.EndTime)
	}
	if options.OrderID != nil {
		req.OrderID(*options.OrderID)
	}

	return req.Do(ctx)
}
