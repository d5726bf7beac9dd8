package response

import "lop/dpboard/internal/app/domains/services/svmetrics"

// OrdersData 订单/货件响应（DTO）
type OrdersData struct {
	TotalShipments        int                     `json:"total_shipments"`
	FulfillmentEfficiency float64                 `json:"fulfillment_efficiency"`
	AtRiskRate            float64                 `json:"at_risk_rate"`
	OrderVolumeGrowth     float64                 `json:"order_volume_growth"`
	StatusBreakdown       []svmetrics.StatusCount `json:"status_breakdown"`
}
