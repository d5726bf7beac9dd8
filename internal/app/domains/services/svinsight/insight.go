package svinsight

// 洞察严重级别常量
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// 洞察域标签
const (
	DomainDashboard    = "dashboard-insights"
	DomainCostVariance = "cost-variance"
	DomainMarginRisk   = "margin-risk"
)

// 洞察来源
const (
	SourceRules = "rules"
	SourceLLM   = "llm"
)

// Insight 运营洞察（输出对象，只随响应序列化，不存储）
type Insight struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Severity         string   `json:"severity"`
	FinancialImpact  float64  `json:"financial_impact"`
	SuggestedActions []string `json:"suggested_actions"`
	Source           string   `json:"source"`
}

// MetricSnapshot 指标快照，模板规则与 LLM 提示词的共同输入
type MetricSnapshot struct {
	TotalProducts         int
	TotalShipments        int
	FulfillmentEfficiency float64
	AtRiskRate            float64
	OrderVolumeGrowth     float64
	InventoryHealth       float64
	AnomalyCount          int
	AnomalyImpact         float64
	HighRiskBrands        int
	RiskImpact            float64
}

// IsEmpty 当前批次无任何数据
func (m MetricSnapshot) IsEmpty() bool {
	return m.TotalProducts == 0 && m.TotalShipments == 0
}
