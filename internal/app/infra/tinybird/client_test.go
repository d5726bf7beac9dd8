package tinybird

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product_details_data.json", r.URL.Path)
		assert.Equal(t, "tb-token", r.URL.Query().Get("token"))
		assert.Equal(t, "500", r.URL.Query().Get("limit"))
		assert.Equal(t, "acme-3pl", r.URL.Query().Get("company_url"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"product_id":"P-1","brand_name":"Acme","unit_cost":12.5,"unit_quantity":30,"active":true},
			{"product_id":"P-2","brand_name":"","active":false}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tb-token", 500, "acme-3pl", WithHTTPClient(server.Client()))

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "P-1", products[0].ID)
	assert.Equal(t, "Acme", products[0].BrandName)
	require.NotNil(t, products[0].UnitCost)
	assert.Equal(t, 12.5, *products[0].UnitCost)
	assert.Equal(t, 30, products[0].Quantity)
	assert.True(t, products[0].Active)

	assert.Nil(t, products[1].UnitCost)
	assert.Equal(t, "Unknown Brand", products[1].BrandOrUnknown())
}

func TestShipments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inbound_shipments_data.json", r.URL.Path)
		// 未配置 company_url 时不应出现在 query string
		_, present := r.URL.Query()["company_url"]
		assert.False(t, present)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"shipment_id":"S-1","supplier":"globex","warehouse_id":"WH-1","expected_quantity":100,"received_quantity":80,"unit_cost":4.2,"status":"completed","created_date":"2026-07-01T00:00:00Z"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tb-token", 500, "", WithHTTPClient(server.Client()))

	shipments, err := client.Shipments(context.Background())
	require.NoError(t, err)
	require.Len(t, shipments, 1)

	s := shipments[0]
	assert.Equal(t, "S-1", s.ID)
	assert.Equal(t, "globex", s.Supplier)
	assert.True(t, s.HasDiscrepancy())
	assert.Equal(t, 20, s.QuantityDiff())
	assert.Equal(t, 4.2, s.CostOrZero())
}

func TestFetchNullDataTreatedAsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tb-token", 500, "", WithHTTPClient(server.Client()))

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFetchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token", 500, "", WithHTTPClient(server.Client()))

	_, err := client.Products(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestFetchMalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tb-token", 500, "", WithHTTPClient(server.Client()))

	_, err := client.Shipments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tinybird envelope failed")
}

func TestFetchContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tb-token", 500, "", WithHTTPClient(server.Client()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Products(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
