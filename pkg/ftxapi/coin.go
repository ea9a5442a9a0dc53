package ftxapi

import (
	"context"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Coin struct {
	Bep2Asset        *string         `json:"bep2Asset"`
	CanConvert       bool            `json:"canConvert"`
	CanDeposit       bool            `json:"canDeposit"`
	CanWithdraw      bool            `json:"canWithdraw"`
	Collateral       bool            `json:"collateral"`
	CollateralWeight decimal.Decimal `json:"collateralWeight"`
	CreditTo         *string         `json:"creditTo"`
	Erc20Contract    string          `json:"erc20Contract"`
	Fiat             bool            `json:"fiat"`
	HasTag           bool            `json:"hasTag"`
	Id               string          `json:"id"`
	IsToken          bool            `json:"isToken"`
	Methods          []string        `json:"methods"`
	Name             string          `json:"name"`
	SplMint          string          `json:"splMint"`
	Trc20Contract    string          `json:"trc20Contract"`
	UsdFungible      bool            `json:"usdFungible"`
}

type GetCoinsRequest struct {
	client requestgen.AuthenticatedAPIClient
}

func (c *RestClient) NewGetCoinsRequest() *GetCoinsRequest {
	return &GetCoinsRequest{
		client: c,
	}
}

func (g *GetCoinsRequest) Do(ctx context.Context) ([]Coin, error) {
	req, err := g.client.NewAuthenticatedRequest(ctx, "GET", "api/coins", nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var data []Coin
	if err := decodeResult(response, &data); err != nil {
		return nil, err
	}

	return data, nil
}
