package ftx

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/tradekit/ftx/pkg/ftxapi"
)

// Markets returns all markets: spot, perpetual futures, expiring futures and
// MOVE contracts.
func (c *Client) Markets(ctx context.Context) ([]ftxapi.Market, error) {
	return c.api.NewGetMarketsRequest().Do(ctx)
}

// Market returns the parameters of a single market, e.g. "BTC-PERP".
func (c *Client) Market(ctx context.Context, market string) (*ftxapi.Market, error) {
	return c.api.NewGetMarketRequest(market).Do(ctx)
}

// MarketPrice returns the current price of a market. Markets without a price
// (e.g. restricted ones) yield an error.
func (c *Client) MarketPrice(ctx context.Context, market string) (decimal.Decimal, error) {
	m, err := c.Market(ctx, market)
	if err != nil {
		return decimal.Zero, err
	}

	if m.Price == nil {
		return decimal.Zero, errors.Errorf("market %s has no price", market)
	}

	return *m.Price, nil
}
