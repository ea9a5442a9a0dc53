package ftxapi

import (
	"context"
	"net/url"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Account struct {
	Username           string           `json:"username"`
	Collateral         decimal.Decimal  `json:"collateral"`
	FreeCollateral     decimal.Decimal  `json:"freeCollateral"`
	Leverage           decimal.Decimal  `json:"leverage"`
	MakerFee           decimal.Decimal  `json:"makerFee"`
	TakerFee           decimal.Decimal  `json:"takerFee"`
	Liquidating        bool             `json:"liquidating"`
	MarginFraction     *decimal.Decimal `json:"marginFraction"`
	OpenMarginFraction *decimal.Decimal `json:"openMarginFraction"`
	TotalAccountValue  decimal.Decimal  `json:"totalAccountValue"`
	TotalPositionSize  decimal.Decimal  `json:"totalPositionSize"`
	BackstopProvider   bool             `json:"backstopProvider"`
	Positions          []Position       `json:"positions"`
}

type Position struct {
	Future                       string           `json:"future"`
	Side                         Side             `json:"side"`
	Size                         decimal.Decimal  `json:"size"`
	NetSize                      decimal.Decimal  `json:"netSize"`
	OpenSize                     decimal.Decimal  `json:"openSize"`
	LongOrderSize                decimal.Decimal  `json:"longOrderSize"`
	ShortOrderSize               decimal.Decimal  `json:"shortOrderSize"`
	Cost                         decimal.Decimal  `json:"cost"`
	EntryPrice                   *decimal.Decimal `json:"entryPrice"`
	EstimatedLiquidationPrice    *decimal.Decimal `json:"estimatedLiquidationPrice"`
	InitialMarginRequirement     decimal.Decimal  `json:"initialMarginRequirement"`
	MaintenanceMarginRequirement decimal.Decimal  `json:"maintenanceMarginRequirement"`
	RealizedPnl                  decimal.Decimal  `json:"realizedPnl"`
	UnrealizedPnl                decimal.Decimal  `json:"unrealizedPnl"`
}

type Balance struct {
	Coin                   string          `json:"coin"`
	Free                   decimal.Decimal `json:"free"`
	Total                  decimal.Decimal `json:"total"`
	AvailableWithoutBorrow decimal.Decimal `json:"availableWithoutBorrow"`
	SpotBorrow             decimal.Decimal `json:"spotBorrow"`
	UsdValue               decimal.Decimal `json:"usdValue"`
}

type GetAccountRequest struct {
	client requestgen.AuthenticatedAPIClient
}

func (c *RestClient) NewGetAccountRequest() *GetAccountRequest {
	return &GetAccountRequest{
		client: c,
	}
}

func (g *GetAccountRequest) Do(ctx context.Context) (*Account, error) {
	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/account", nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data Account
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

type GetBalancesRequest struct {
	client requestgen.AuthenticatedAPIClient
}

func (c *RestClient) NewGetBalancesRequest() *GetBalancesRequest {
	return &GetBalancesRequest{
		client: c,
	}
}

func (g *GetBalancesRequest) Do(ctx context.Context) ([]Balance, error) {
	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/wallet/balances", nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data []Balance
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return data, nil
}

type GetPositionsRequest struct {
	client requestgen.AuthenticatedAPIClient

	showAvgPrice bool
}

func (c *RestClient) NewGetPositionsRequest() *GetPositionsRequest {
	return &GetPositionsRequest{
		client: c,
	}
}

func (g *GetPositionsRequest) ShowAvgPrice(showAvgPrice bool) *GetPositionsRequest {
	g.showAvgPrice = showAvgPrice
	return g
}

func (g *GetPositionsRequest) Do(ctx context.Context) ([]Position, error) {
	var params url.Values
	if g.showAvgPrice {
		params = url.Values{}
		params.Set("showAvgPrice", "true")
	}

	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/positions", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data []Position
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return data, nil
}
