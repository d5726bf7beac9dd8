package svdashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lop/dpboard/internal/app/domains/entity/etproduct"
	"lop/dpboard/internal/app/domains/entity/etshipment"
	"lop/dpboard/internal/app/domains/services/svanomaly"
	"lop/dpboard/internal/app/domains/services/svinsight"
	"lop/dpboard/internal/app/pkg/errorx"
	"lop/dpboard/internal/app/pkg/logger"
)

// fakeProductSource / fakeShipmentSource 固定数据的上游替身
type fakeProductSource struct {
	products []*etproduct.Product
	err      error
}

func (f *fakeProductSource) Products(ctx context.Context) ([]*etproduct.Product, error) {
	return f.products, f.err
}

type fakeShipmentSource struct {
	shipments []*etshipment.Shipment
	err       error
}

func (f *fakeShipmentSource) Shipments(ctx context.Context) ([]*etshipment.Shipment, error) {
	return f.shipments, f.err
}

func fp(v float64) *float64 { return &v }

func newTestService(products []*etproduct.Product, shipments []*etshipment.Shipment, warehouse ShipmentSource) *Service {
	log := logger.NopLogger{}
	svc := NewService(
		&fakeProductSource{products: products},
		&fakeShipmentSource{shipments: shipments},
		warehouse,
		svinsight.NewGenerator(nil, log),
		log,
	)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func sampleData() ([]*etproduct.Product, []*etshipment.Shipment) {
	products := []*etproduct.Product{
		{ID: "P-1", BrandName: "Acme", Active: true, UnitCost: fp(10), Quantity: 50},
		{ID: "P-2", BrandName: "Acme", Active: true, UnitCost: fp(12), Quantity: 20},
		{ID: "P-3", BrandName: "Globex", Active: false, UnitCost: fp(8), Quantity: 0},
	}

	base := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	shipments := []*etshipment.Shipment{
		{ID: "S-1", BrandName: "Acme", Supplier: "supply-co", WarehouseID: "WH-1", ExpectedQuantity: 100, ReceivedQuantity: 100, UnitCost: fp(10), Status: "completed", CreatedAt: base},
		{ID: "S-2", BrandName: "Acme", Supplier: "supply-co", WarehouseID: "WH-1", ExpectedQuantity: 50, ReceivedQuantity: 40, UnitCost: fp(11), Status: "completed", CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "S-3", BrandName: "Globex", Supplier: "supply-co", WarehouseID: "WH-2", ExpectedQuantity: 30, ReceivedQuantity: 30, UnitCost: fp(9), Status: "receiving", CreatedAt: base.AddDate(0, 0, 2)},
	}
	return products, shipments
}

func TestDashboardData(t *testing.T) {
	products, shipments := sampleData()
	svc := newTestService(products, shipments, nil)

	data, err := svc.DashboardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, data.KPIs.TotalProducts)
	assert.Equal(t, 3, data.KPIs.TotalShipments)
	assert.InDelta(t, 66.7, data.KPIs.FulfillmentEfficiency, 0.01)
	assert.InDelta(t, 66.7, data.KPIs.InventoryHealth, 0.01)

	require.Len(t, data.BrandPerformance, 2)
	assert.Equal(t, "Acme", data.BrandPerformance[0].BrandName)

	// 样本太小，不应产生异常和风险
	assert.Empty(t, data.Anomalies)
	assert.Empty(t, data.MarginRisks)
	require.NotEmpty(t, data.Insights)
}

func TestDashboardDataEmptyUpstream(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	data, err := svc.DashboardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, data.KPIs.TotalProducts)
	assert.Equal(t, 0.0, data.KPIs.FulfillmentEfficiency)
	assert.Empty(t, data.Anomalies)
	assert.Empty(t, data.MarginRisks)

	// 空数据给单条信息级洞察
	require.Len(t, data.Insights, 1)
	assert.Equal(t, "dashboard-no-data", data.Insights[0].ID)
	assert.Equal(t, svinsight.SeverityInfo, data.Insights[0].Severity)
}

func TestDashboardDataUpstreamFailure(t *testing.T) {
	log := logger.NopLogger{}
	svc := NewService(
		&fakeProductSource{err: errors.New("boom")},
		&fakeShipmentSource{},
		nil,
		svinsight.NewGenerator(nil, log),
		log,
	)

	_, err := svc.DashboardData(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errorx.ErrUpstreamFetch)
}

func TestAnalyticsData(t *testing.T) {
	products, shipments := sampleData()
	svc := newTestService(products, shipments, nil)

	data, err := svc.AnalyticsData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, data.ActiveSuppliers)
	assert.Equal(t, 70, data.TotalOnHandUnits)
	require.Len(t, data.StatusBreakdown, 2)
	assert.Equal(t, "completed", data.StatusBreakdown[0].Status)
	require.Len(t, data.WarehouseVolumes, 2)
}

func TestCostData(t *testing.T) {
	products, shipments := sampleData()
	svc := newTestService(products, shipments, nil)

	data, err := svc.CostData(context.Background())
	require.NoError(t, err)

	assert.Empty(t, data.Anomalies)
	assert.Equal(t, 0.0, data.TotalImpact)

	// supply-co 有 3 个带成本观测，基线可用
	require.Len(t, data.Baselines, 1)
	assert.Equal(t, "supply-co", data.Baselines[0].Supplier)
	assert.True(t, data.Baselines[0].Adaptive)

	require.Len(t, data.Insights, 1)
	assert.Equal(t, "cost-variance-stable", data.Insights[0].ID)
}

func TestOrdersData(t *testing.T) {
	products, shipments := sampleData()
	svc := newTestService(products, shipments, nil)

	data, err := svc.OrdersData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, data.TotalShipments)
	assert.InDelta(t, 66.7, data.FulfillmentEfficiency, 0.01)
	assert.InDelta(t, 33.3, data.AtRiskRate, 0.01)
}

func TestWarehousesDataDisabled(t *testing.T) {
	products, shipments := sampleData()
	svc := newTestService(products, shipments, nil)

	_, err := svc.WarehousesData(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errorx.ErrWarehouseDisabled)
}

func TestWarehousesData(t *testing.T) {
	warehouseShipments := []*etshipment.Shipment{
		{ID: "W-1", WarehouseID: "WH-1", ExpectedQuantity: 10, ReceivedQuantity: 10, Status: "completed"},
		{ID: "W-2", WarehouseID: "WH-1", ExpectedQuantity: 10, ReceivedQuantity: 5, Status: "completed"},
		{ID: "W-3", WarehouseID: "WH-1", ExpectedQuantity: 10, ReceivedQuantity: 10, Status: "cancelled"},
		{ID: "W-4", WarehouseID: "WH-2", ExpectedQuantity: 20, ReceivedQuantity: 20, Status: "receiving"},
	}
	products, shipments := sampleData()
	svc := newTestService(products, shipments, &fakeShipmentSource{shipments: warehouseShipments})

	data, err := svc.WarehousesData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Warehouses, 2)
	wh1 := data.Warehouses[0]
	assert.Equal(t, "WH-1", wh1.WarehouseID)
	assert.Equal(t, 3, wh1.Shipments)
	assert.InDelta(t, 1.0/3.0, wh1.DiscrepancyRate, 0.001)
	assert.InDelta(t, 2.0/3.0, wh1.AtRiskRate, 0.001)

	// 仅保留仓库数量差异类异常
	for _, a := range data.Anomalies {
		assert.Equal(t, svanomaly.AnomalyTypeQuantityDiscrepancy, a.Type)
	}
}

func TestWarehousesDataUpstreamFailure(t *testing.T) {
	products, shipments := sampleData()
	svc := newTestService(products, shipments, &fakeShipmentSource{err: errors.New("timeout")})

	_, err := svc.WarehousesData(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errorx.ErrUpstreamFetch)
}
