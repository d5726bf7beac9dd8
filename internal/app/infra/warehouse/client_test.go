package warehouse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments", r.URL.Path)
		assert.Equal(t, "wh-token", r.URL.Query().Get("token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"shipment_id":"W-1","warehouse_id":"WH-9","expected_quantity":50,"received_quantity":50,"status":"receiving"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "wh-token", WithHTTPClient(server.Client()))

	shipments, err := client.Shipments(context.Background())
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "W-1", shipments[0].ID)
	assert.Equal(t, "WH-9", shipments[0].WarehouseID)
	assert.False(t, shipments[0].HasDiscrepancy())
}

func TestShipmentsNullData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "wh-token", WithHTTPClient(server.Client()))

	shipments, err := client.Shipments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, shipments)
	assert.Empty(t, shipments)
}

func TestShipmentsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "wh-token", WithHTTPClient(server.Client()))

	_, err := client.Shipments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
