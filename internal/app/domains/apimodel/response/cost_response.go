package response

import (
	"lop/dpboard/internal/app/domains/services/svanomaly"
	"lop/dpboard/internal/app/domains/services/svinsight"
)

// SupplierBaseline 供应商成本基线摘要（DTO，不透出完整历史序列）
type SupplierBaseline struct {
	Supplier     string  `json:"supplier"`
	Baseline     float64 `json:"baseline"`
	Threshold    float64 `json:"threshold"`
	Confidence   float64 `json:"confidence"`
	Observations int     `json:"observations"`
	Adaptive     bool    `json:"adaptive"`
	Usable       bool    `json:"usable"`
}

// CostData 成本方差响应（DTO）
type CostData struct {
	Anomalies   []svanomaly.Anomaly `json:"anomalies"`
	TotalImpact float64             `json:"total_impact"`
	Baselines   []SupplierBaseline  `json:"baselines"`
	Insights    []svinsight.Insight `json:"insights"`
}
