package ftxapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/ftx/pkg/testutil"
)

func Test_sign(t *testing.T) {
	// the example signature from the FTX API documentation
	secret := "T4lPid48QtjNxjLUFOcUZghD7CUJ7sTVsfuvQZF2"
	payload := "1588591511721GET/api/markets"
	assert.Equal(t, "dbc62ec300b2624c580611858d94f2332ac636bb86eccfa1167a7777c496ee6f", sign(secret, payload))

	body := `{"market": "BTC-PERP", "side": "sell", "price": 8500, "size": 1, "type": "limit", "reduceOnly": false, "ioc": false, "postOnly": false, "clientId": null}`
	payload = "1588591856950POST/api/orders" + body
	assert.Equal(t, "5d8e894cc0488810f7fd7a3e466f602298f27d30e91300338bce0cf4ec096eb0", sign(secret, payload))
}

func Test_castPayload(t *testing.T) {
	body, err := castPayload(nil)
	assert.NoError(t, err)
	assert.Nil(t, body)

	body, err = castPayload("raw")
	assert.NoError(t, err)
	assert.Equal(t, []byte("raw"), body)

	body, err = castPayload([]byte(`{"a":1}`))
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), body)

	body, err = castPayload(map[string]interface{}{"market": "BTC-PERP"})
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"market":"BTC-PERP"}`), body)
}

func TestNewClient(t *testing.T) {
	client, err := NewClient("")
	require.NoError(t, err)
	assert.Equal(t, RestBaseURL, client.BaseURL.String())

	client, err = NewClient("http://127.0.0.1:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", client.BaseURL.String())

	_, err = NewClient("://ftx")
	assert.Error(t, err)
}

func TestRestClient_NewAuthenticatedRequest_requiresCredentials(t *testing.T) {
	client, err := NewClient("")
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.NewAuthenticatedRequest(ctx, "GET", "api/markets", nil, nil)
	assert.ErrorIs(t, err, ErrAPIKeyRequired)

	client.Auth("key", "", "")
	_, err = client.NewAuthenticatedRequest(ctx, "GET", "api/markets", nil, nil)
	assert.ErrorIs(t, err, ErrAPISecretRequired)

	client.Auth("key", "secret", "")
	_, err = client.NewAuthenticatedRequest(ctx, "GET", "api/markets", nil, nil)
	assert.NoError(t, err)
}

func TestRestClient_NewAuthenticatedRequest_headers(t *testing.T) {
	client, err := NewClient("")
	require.NoError(t, err)
	client.Auth("my-key", "my-secret", "sub account-特殊")

	req, err := client.NewAuthenticatedRequest(context.Background(), "GET", "api/markets", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "my-key", req.Header.Get("FTX-KEY"))

	ts := req.Header.Get("FTX-TS")
	millis, err := strconv.ParseInt(ts, 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixNano()/int64(time.Millisecond), millis, float64(5*time.Second/time.Millisecond))

	// the signature must cover ts + method + path
	assert.Equal(t, sign("my-secret", ts+"GET"+"/api/markets"), req.Header.Get("FTX-SIGN"))

	// the subaccount header is percent-encoded, decoding restores the name
	sub := req.Header.Get("FTX-SUBACCOUNT")
	assert.NotEqual(t, "sub account-特殊", sub)
	decoded, err := url.PathUnescape(sub)
	require.NoError(t, err)
	assert.Equal(t, "sub account-特殊", decoded)
}

func TestRestClient_NewAuthenticatedRequest_signsQueryAndBody(t *testing.T) {
	client, err := NewClient("")
	require.NoError(t, err)
	client.Auth("my-key", "my-secret", "")

	params := url.Values{}
	params.Set("market", "BTC-PERP")
	req, err := client.NewAuthenticatedRequest(context.Background(), "GET", "api/orders", params, nil)
	require.NoError(t, err)

	ts := req.Header.Get("FTX-TS")
	assert.Equal(t, sign("my-secret", ts+"GET"+"/api/orders?market=BTC-PERP"), req.Header.Get("FTX-SIGN"))

	payload := map[string]interface{}{"market": "BTC-PERP"}
	req, err = client.NewAuthenticatedRequest(context.Background(), "POST", "api/orders", nil, payload)
	require.NoError(t, err)

	ts = req.Header.Get("FTX-TS")
	assert.Equal(t, sign("my-secret", ts+"POST"+"/api/orders"+`{"market":"BTC-PERP"}`), req.Header.Get("FTX-SIGN"))
}

func TestRestClient_SendRequest_resultPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": [1,2,3]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	req, err := client.NewRequest(context.Background(), "GET", "api/markets", nil, nil)
	require.NoError(t, err)

	response, err := client.SendRequest(req)
	require.NoError(t, err)

	var result []int
	require.NoError(t, decodeResult(response, &result))
	assert.Equal(t, []int{1, 2, 3}, result)
}

func TestRestClient_SendRequest_apiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "error": "Invalid parameter"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	req, err := client.NewRequest(context.Background(), "GET", "api/markets", nil, nil)
	require.NoError(t, err)

	_, err = client.SendRequest(req)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid parameter", apiErr.Message)
	assert.Equal(t, "Invalid parameter", apiErr.Error())
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestRestClient_SendRequest_transportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>502 Bad Gateway</html>`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	req, err := client.NewRequest(context.Background(), "GET", "api/markets", nil, nil)
	require.NoError(t, err)

	_, err = client.SendRequest(req)
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
}

func TestClient_NewGetAccountRequest(t *testing.T) {
	key, secret, ok := testutil.IntegrationTestConfigured(t, "FTX")
	if !ok {
		t.SkipNow()
		return
	}

	ctx, cancel := context.WithTimeout(context.TODO(), 15*time.Second)
	defer cancel()

	client, err := NewClient("")
	require.NoError(t, err)
	client.Auth(key, secret, "")

	account, err := client.NewGetAccountRequest().Do(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, account)
	t.Logf("account: %+v", account)
}
