package response

import (
	"lop/dpboard/internal/app/domains/services/svanomaly"
	"lop/dpboard/internal/app/domains/services/svmetrics"
)

// WarehouseStats 单仓库统计（DTO）
type WarehouseStats struct {
	WarehouseID     string  `json:"warehouse_id"`
	Shipments       int     `json:"shipments"`
	DiscrepancyRate float64 `json:"discrepancy_rate"`
	AtRiskRate      float64 `json:"at_risk_rate"`
}

// WarehousesData 仓库响应（DTO）
type WarehousesData struct {
	Warehouses []WarehouseStats            `json:"warehouses"`
	Volumes    []svmetrics.WarehouseVolume `json:"volumes"`
	Anomalies  []svanomaly.Anomaly         `json:"anomalies"`
}
