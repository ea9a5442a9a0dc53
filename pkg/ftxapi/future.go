package ftxapi

import (
	"context"
	"fmt"
	"time"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Future struct {
	Name           string           `json:"name"`
	Underlying     string           `json:"underlying"`
	Description    string           `json:"description"`
	Type           FutureType       `json:"type"`
	Expiry         *time.Time       `json:"expiry"`
	Perpetual      bool             `json:"perpetual"`
	Expired        bool             `json:"expired"`
	Enabled        bool             `json:"enabled"`
	PostOnly       bool             `json:"postOnly"`
	Last           *decimal.Decimal `json:"last"`
	Bid            *decimal.Decimal `json:"bid"`
	Ask            *decimal.Decimal `json:"ask"`
	Index          *decimal.Decimal `json:"index"`
	Mark           *decimal.Decimal `json:"mark"`
	PriceIncrement decimal.Decimal  `json:"priceIncrement"`
	SizeIncrement  decimal.Decimal  `json:"sizeIncrement"`
}

type GetFuturesRequest struct {
	client requestgen.AuthenticatedAPIClient
}

func (c *RestClient) NewGetFuturesRequest() *GetFuturesRequest {
	return &GetFuturesRequest{
		client: c,
	}
}

func (g *GetFuturesRequest) Do(ctx context.Context) ([]Future, error) {
	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/futures", nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data []Future
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return data, nil
}

type GetFutureRequest struct {
	client requestgen.AuthenticatedAPIClient

	future string
}

func (c *RestClient) NewGetFutureRequest(future string) *GetFutureRequest {
	return &GetFutureRequest{
		client: c,
		future: future,
	}
}

func (g *GetFutureRequest) Do(ctx context.Context) (*Future, error) {
	if len(g.future) == 0 {
		return nil, fmt.Errorf("future is required, empty string given")
	}

	refURL := fmt.Sprintf("api/futures/%s", g.future)
	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", refURL, nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data Future
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return &data, nil
}
