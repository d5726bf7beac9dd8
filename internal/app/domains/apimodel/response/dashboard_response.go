package response

import (
	"lop/dpboard/internal/app/domains/services/svanomaly"
	"lop/dpboard/internal/app/domains/services/svinsight"
	"lop/dpboard/internal/app/domains/services/svmetrics"
	"lop/dpboard/internal/app/domains/services/svrisk"
)

// KPISet 核心 KPI（DTO）
type KPISet struct {
	FulfillmentEfficiency float64 `json:"fulfillment_efficiency"`
	AtRiskRate            float64 `json:"at_risk_rate"`
	OrderVolumeGrowth     float64 `json:"order_volume_growth"`
	InventoryHealth       float64 `json:"inventory_health"`
	TotalProducts         int     `json:"total_products"`
	TotalShipments        int     `json:"total_shipments"`
}

// DashboardData 仪表盘聚合响应（DTO）
type DashboardData struct {
	KPIs             KPISet                   `json:"kpis"`
	BrandPerformance []svmetrics.BrandRanking `json:"brand_performance"`
	Anomalies        []svanomaly.Anomaly      `json:"anomalies"`
	MarginRisks      []svrisk.BrandRisk       `json:"margin_risks"`
	Insights         []svinsight.Insight      `json:"insights"`
}
