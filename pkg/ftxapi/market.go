package ftxapi

import (
	"context"
	"fmt"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Market struct {
	Name           string           `json:"name"`
	BaseCurrency   string           `json:"baseCurrency"`
	QuoteCurrency  string           `json:"quoteCurrency"`
	Type           string           `json:"type"`
	Underlying     string           `json:"underlying"`
	Enabled        bool             `json:"enabled"`
	PostOnly       bool             `json:"postOnly"`
	Restricted     bool             `json:"restricted"`
	Ask            *decimal.Decimal `json:"ask"`
	Bid            *decimal.Decimal `json:"bid"`
	Price          *decimal.Decimal `json:"price"`
	Last           *decimal.Decimal `json:"last"`
	PriceIncrement decimal.Decimal  `json:"priceIncrement"`
	SizeIncrement  decimal.Decimal  `json:"sizeIncrement"`
	MinProvideSize decimal.Decimal  `json:"minProvideSize"`
	QuoteVolume24H decimal.Decimal  `json:"quoteVolume24h"`
	VolumeUsd24H   decimal.Decimal  `json:"volumeUsd24h"`
}

type GetMarketsRequest struct {
	client requestgen.AuthenticatedAPIClient
}

func (c *RestClient) NewGetMarketsRequest() *GetMarketsRequest {
	return &GetMarketsRequest{
		client: c,
	}
}

func (g *GetMarketsRequest) Do(ctx context.Context) ([]Market, error) {
	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/markets", nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data []Market
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return data, nil
}

type GetMarketRequest struct {
	client requestgen.AuthenticatedAPIClient

	market string
}

func (c *RestClient) NewGetMarketRequest(market string) *GetMarketRequest {
	return &GetMarketRequest{
		client: c,
		market: market,
	}
}

func (g *GetMarketRequest) Market(market string) *GetMarketRequest {
	g.market = market
	return g
}

func (g *GetMarketRequest) Do(ctx context.Context) (*Market, error) {
	if len(g.market) == 0 {
		return nil, fmt.Errorf("market is required, empty string given")
	}

	refURL := fmt.Sprintf("api/markets/%s", g.market)
	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", refURL, nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data Market
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return &data, nil
}
