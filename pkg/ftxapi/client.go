// Package ftxapi implements a signed REST client for the FTX exchange API.
//
// The RestClient only builds, signs and dispatches requests; every endpoint
// is exposed as a request object with a fluent builder, following the shape
// of requestgen.AuthenticatedAPIClient.
package ftxapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
)

const defaultHTTPTimeout = time.Second * 15
const RestBaseURL = "https://ftx.com/api"

type APIResponse struct {
	Success     bool            `json:"success"`
	Result      json.RawMessage `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
	HasMoreData bool            `json:"hasMoreData,omitempty"`
}

type RestClient struct {
	BaseURL *url.URL

	client *http.Client

	Key, Secret, subAccount string
}

// NewClient creates a rest client pointed at the given base URL.
// An empty baseURL falls back to the production endpoint.
func NewClient(baseURL string) (*RestClient, error) {
	if baseURL == "" {
		baseURL = RestBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", baseURL)
	}

	return &RestClient{
		BaseURL: u,
		client: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}, nil
}

func (c *RestClient) Auth(key, secret, subAccount string) {
	c.Key = key
	// pragma: allowlist nextline secret
	c.Secret = secret
	c.subAccount = subAccount
}

// NewRequest create new API request. Relative url can be provided in refURL.
func (c *RestClient) NewRequest(ctx context.Context, method, refURL string, params url.Values, payload interface{}) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	pathURL := c.BaseURL.ResolveReference(rel)
	return http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
}

// NewAuthenticatedRequest creates new http request for authenticated routes.
func (c *RestClient) NewAuthenticatedRequest(ctx context.Context, method, refURL string, params url.Values, payload interface{}) (*http.Request, error) {
	if len(c.Key) == 0 {
		return nil, ErrAPIKeyRequired
	}

	if len(c.Secret) == 0 {
		return nil, ErrAPISecretRequired
	}

	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	// pathURL is for sending request
	pathURL := c.BaseURL.ResolveReference(rel)

	// path here is used for the auth header, it must contain the query string
	// because the signature covers the exact bytes on the wire.
	path := pathURL.Path
	if rel.RawQuery != "" {
		path += "?" + rel.RawQuery
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	// Build authentication headers
	c.attachAuthHeaders(req, method, path, body)
	return req, nil
}

func (c *RestClient) attachAuthHeaders(req *http.Request, method string, path string, body []byte) {
	millisecondTs := time.Now().UnixNano() / int64(time.Millisecond)
	ts := strconv.FormatInt(millisecondTs, 10)
	p := ts + method + path + string(body)
	signature := sign(c.Secret, p)
	req.Header.Set("FTX-KEY", c.Key)
	req.Header.Set("FTX-SIGN", signature)
	req.Header.Set("FTX-TS", ts)
	if c.subAccount != "" {
		req.Header.Set("FTX-SUBACCOUNT", url.PathEscape(c.subAccount))
	}
}

// SendRequest sends the request to the API server and normalizes the response.
//
// FTX wraps success and failure replies in the same JSON envelope, so a body
// that does not decode into the envelope is treated as a transport failure.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, err
	}

	var apiResponse APIResponse
	if err := json.Unmarshal(response.Body, &apiResponse); err != nil {
		return response, &TransportError{
			StatusCode: response.StatusCode,
			Status:     response.Status,
			Body:       response.Body,
		}
	}

	if !apiResponse.Success {
		return response, &APIError{
			Message:    apiResponse.Error,
			StatusCode: response.StatusCode,
		}
	}

	return response, nil
}

// sign uses sha256 to sign the payload with the given secret
func sign(secret, payload string) string {
	var sig = hmac.New(sha256.New, []byte(secret))
	_, err := sig.Write([]byte(payload))
	if err != nil {
		return ""
	}

	return hex.EncodeToString(sig.Sum(nil))
}

func castPayload(payload interface{}) ([]byte, error) {
	if payload != nil {
		switch v := payload.(type) {
		case string:
			return []byte(v), nil

		case []byte:
			return v, nil

		default:
			body, err := json.Marshal(v)
			return body, err
		}
	}

	return nil, nil
}

// decodeResult unwraps the response envelope and decodes the result field.
func decodeResult(response *requestgen.Response, v interface{}) error {
	var apiResponse APIResponse
	if err := response.DecodeJSON(&apiResponse); err != nil {
		return errors.Wrap(err, "failed to decode the response envelope")
	}

	if err := json.Unmarshal(apiResponse.Result, v); err != nil {
		return errors.Wrap(err, "failed to decode the result field")
	}

	return nil
}
