package ftxapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*RestClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	client.Auth("test-key", "test-secret", "")
	return client, server
}

func TestPlaceOrderRequest_marketOrderPayload(t *testing.T) {
	var captured map[string]json.RawMessage

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// the signature covers the exact body bytes on the wire
		ts := r.Header.Get("FTX-TS")
		assert.Equal(t, sign("test-secret", ts+"POST"+"/api/orders"+string(body)), r.Header.Get("FTX-SIGN"))

		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": {"id": 9596912, "market": "XRP-PERP", "side": "buy", "size": 1.5, "type": "market", "status": "new", "price": null, "clientId": null}}`))
	}))

	order, err := client.NewPlaceOrderRequest().
		Market("XRP-PERP").
		Side(SideBuy).
		Size(1.5).
		Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9596912), order.Id)
	assert.Nil(t, order.Price)
	assert.Nil(t, order.ClientId)

	// unset optional fields are transmitted as explicit nulls, not omitted
	assert.JSONEq(t, "null", string(captured["price"]))
	assert.JSONEq(t, "null", string(captured["clientId"]))
	assert.JSONEq(t, `"market"`, string(captured["type"]))
	assert.JSONEq(t, `"buy"`, string(captured["side"]))
	assert.JSONEq(t, "1.5", string(captured["size"]))
	assert.JSONEq(t, "false", string(captured["reduceOnly"]))
	assert.JSONEq(t, "false", string(captured["ioc"]))
	assert.JSONEq(t, "false", string(captured["postOnly"]))
}

func TestPlaceOrderRequest_limitOrderPayload(t *testing.T) {
	var captured map[string]json.RawMessage

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": {"id": 1, "market": "BTC-PERP", "side": "sell", "size": 1, "type": "limit", "status": "new", "price": 8500}}`))
	}))

	order, err := client.NewPlaceOrderRequest().
		Market("BTC-PERP").
		Side(SideSell).
		Size(1).
		Price(8500).
		OrderType(OrderTypeLimit).
		PostOnly(true).
		ClientId("my-order-1").
		Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, order.Price)
	assert.Equal(t, "8500", order.Price.String())

	assert.JSONEq(t, "8500", string(captured["price"]))
	assert.JSONEq(t, `"limit"`, string(captured["type"]))
	assert.JSONEq(t, `"my-order-1"`, string(captured["clientId"]))
	assert.JSONEq(t, "true", string(captured["postOnly"]))
}

func TestPlaceOrderRequest_validation(t *testing.T) {
	client, err := NewClient("")
	require.NoError(t, err)
	client.Auth("key", "secret", "")

	_, err = client.NewPlaceOrderRequest().Side(SideBuy).Size(1).Do(context.Background())
	assert.EqualError(t, err, "market is required, empty string given")

	_, err = client.NewPlaceOrderRequest().Market("BTC-PERP").Size(1).Do(context.Background())
	assert.Error(t, err)
}

func TestGetOpenOrdersRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "BTC-PERP", r.URL.Query().Get("market"))

		ts := r.Header.Get("FTX-TS")
		assert.Equal(t, sign("test-secret", ts+"GET"+r.URL.RequestURI()), r.Header.Get("FTX-SIGN"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": [{"id": 10, "market": "BTC-PERP", "side": "buy", "size": 0.5, "type": "limit", "status": "open", "price": 9000}]}`))
	}))

	orders, err := client.NewGetOpenOrdersRequest().Market("BTC-PERP").Do(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(10), orders[0].Id)
	assert.Equal(t, OrderStatusOpen, orders[0].Status)
}

func TestGetOpenOrdersRequest_noMarketOmitsQuery(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.RequestURI())

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": []}`))
	}))

	orders, err := client.NewGetOpenOrdersRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetOrderHistoryRequest(t *testing.T) {
	start := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/history", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "BTC-PERP", q.Get("market"))
		assert.Equal(t, "buy", q.Get("side"))
		assert.Equal(t, "limit", q.Get("orderType"))
		assert.Equal(t, "1646092800", q.Get("start_time"))
		assert.Equal(t, "1646179200", q.Get("end_time"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": [{"id": 3, "market": "BTC-PERP", "side": "buy", "size": 1, "type": "limit", "status": "closed", "price": 8000}], "hasMoreData": false}`))
	}))

	orders, err := client.NewGetOrderHistoryRequest().
		Market("BTC-PERP").
		Side(SideBuy).
		OrderType(OrderTypeLimit).
		StartTime(start).
		EndTime(end).
		Do(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, OrderStatusClosed, orders[0].Status)
}

func TestCancelOrderRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/orders/9596912", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": "Order queued for cancellation"}`))
	}))

	resp, err := client.NewCancelOrderRequest(9596912).Do(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCancelAllOrdersRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"market": "BTC-PERP"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": "Orders queued for cancelation"}`))
	}))

	resp, err := client.NewCancelAllOrdersRequest().Market("BTC-PERP").Do(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestGetFillsRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/fills", r.URL.Path)
		assert.Equal(t, "BTC-PERP", r.URL.Query().Get("market"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": [{"id": 123, "market": "BTC-PERP", "side": "buy", "size": 0.5, "price": 9000, "liquidity": "taker", "fee": 3.1, "feeCurrency": "USD", "type": "order"}]}`))
	}))

	fills, err := client.NewGetFillsRequest().Market("BTC-PERP").Do(context.Background())
	require.NoError(t, err)
	require.Len(t, fills, 1)
	assert.Equal(t, LiquidityTaker, fills[0].Liquidity)
	assert.Equal(t, "9000", fills[0].Price.String())
}
