// Package ftx provides a high level client over the FTX REST API: market and
// future discovery, order placement and history, and account queries.
package ftx

import (
	"github.com/pkg/errors"

	"github.com/tradekit/ftx/pkg/ftxapi"
)

// Config carries the credentials and endpoint of a client. Credentials are
// captured once at construction and are immutable afterwards.
type Config struct {
	// Endpoint is the REST base URL. Empty means production.
	Endpoint string

	Key    string
	Secret string

	// Subaccount selects an exchange-side sub-ledger by name. Optional.
	Subaccount string
}

type Client struct {
	api *ftxapi.RestClient
}

// New validates the credentials and builds a client around a reusable HTTP
// session. Key and secret must be non-empty.
func New(config Config) (*Client, error) {
	if len(config.Key) == 0 {
		return nil, errors.WithStack(ftxapi.ErrAPIKeyRequired)
	}

	if len(config.Secret) == 0 {
		return nil, errors.WithStack(ftxapi.ErrAPISecretRequired)
	}

	api, err := ftxapi.NewClient(config.Endpoint)
	if err != nil {
		return nil, err
	}

	api.Auth(config.Key, config.Secret, config.Subaccount)
	return &Client{api: api}, nil
}

// API exposes the underlying rest client for endpoints that have no high
// level wrapper.
func (c *Client) API() *ftxapi.RestClient {
	return c.api
}
