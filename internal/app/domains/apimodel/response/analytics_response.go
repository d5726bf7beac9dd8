package response

import "lop/dpboard/internal/app/domains/services/svmetrics"

// AnalyticsData 运营分析响应（DTO）
type AnalyticsData struct {
	OrderVolumeGrowth    float64                     `json:"order_volume_growth"`
	AverageShipmentValue float64                     `json:"average_shipment_value"`
	ActiveSuppliers      int                         `json:"active_suppliers"`
	TotalOnHandUnits     int                         `json:"total_on_hand_units"`
	StatusBreakdown      []svmetrics.StatusCount     `json:"status_breakdown"`
	WarehouseVolumes     []svmetrics.WarehouseVolume `json:"warehouse_volumes"`
	BrandPerformance     []svmetrics.BrandRanking    `json:"brand_performance"`
}
