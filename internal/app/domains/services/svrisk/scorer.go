package svrisk

import (
	"math"
	"sort"

	"lop/dpboard/internal/app/domains/entity/etproduct"
	"lop/dpboard/internal/app/domains/entity/etshipment"
)

// 风险级别常量
const (
	RiskLevelHigh   = "High"
	RiskLevelMedium = "Medium"
	RiskLevelLow    = "Low"
)

// 评分参数
const (
	minReportableSKUs = 5 // 仅报告 SKU 数大于该值的品牌
	maxReported       = 5 // 输出上限

	annualizationFactor = 12 // 呆滞库存机会成本年化倍数
)

// BrandRisk 品牌毛利风险评分结果
type BrandRisk struct {
	BrandName         string  `json:"brand_name"`
	Score             int     `json:"score"`
	RiskLevel         string  `json:"risk_level"`
	SKUCount          int     `json:"sku_count"`
	AvgUnitCost       float64 `json:"avg_unit_cost"`
	InactivePercent   float64 `json:"inactive_percent"`
	DiscrepancyImpact float64 `json:"discrepancy_impact"`
	FinancialImpact   float64 `json:"financial_impact"`
}

// Scorer 品牌毛利风险评分器
// 从 SKU 复杂度、成本水位、呆滞库存占比、货件差异金额四个维度累加评分
type Scorer struct{}

// NewScorer 创建评分器实例
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score 计算各品牌风险评分
// 仅保留 score > 0 且 SKU 数 > 5 的品牌，按评分降序截断到前 5
func (sc *Scorer) Score(products []*etproduct.Product, shipments []*etshipment.Shipment) []BrandRisk {
	stats := collectBrandStats(products, shipments)

	brands := make([]string, 0, len(stats))
	for brand := range stats {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	risks := make([]BrandRisk, 0, len(brands))
	for _, brand := range brands {
		st := stats[brand]
		risk := scoreBrand(brand, st)
		if risk.Score > 0 && risk.SKUCount > minReportableSKUs {
			risks = append(risks, risk)
		}
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Score > risks[j].Score
	})

	if len(risks) > maxReported {
		risks = risks[:maxReported]
	}

	return risks
}

// brandStats 品牌维度的中间统计量
type brandStats struct {
	skuCount          int
	inactiveCount     int
	costTotal         float64
	costedSKUs        int
	discrepancyImpact float64
}

func collectBrandStats(products []*etproduct.Product, shipments []*etshipment.Shipment) map[string]*brandStats {
	stats := make(map[string]*brandStats)

	get := func(brand string) *brandStats {
		st, ok := stats[brand]
		if !ok {
			st = &brandStats{}
			stats[brand] = st
		}
		return st
	}

	for _, p := range products {
		st := get(p.BrandOrUnknown())
		st.skuCount++
		if !p.Active {
			st.inactiveCount++
		}
		if p.UnitCost != nil {
			st.costTotal += *p.UnitCost
			st.costedSKUs++
		}
	}

	for _, s := range shipments {
		if !s.HasDiscrepancy() {
			continue
		}
		st := get(s.BrandOrUnknown())
		st.discrepancyImpact += float64(s.QuantityDiff()) * s.CostOrZero()
	}

	return stats
}

// scoreBrand 各维度独立判阈后累加
func scoreBrand(brand string, st *brandStats) BrandRisk {
	avgCost := 0.0
	if st.costedSKUs > 0 {
		avgCost = st.costTotal / float64(st.costedSKUs)
	}

	inactivePercent := 0.0
	if st.skuCount > 0 {
		inactivePercent = float64(st.inactiveCount) / float64(st.skuCount) * 100
	}

	score := 0

	// SKU 复杂度
	switch {
	case st.skuCount > 50:
		score += 25
	case st.skuCount > 20:
		score += 15
	}

	// 成本水位
	switch {
	case avgCost > 50:
		score += 30
	case avgCost > 20:
		score += 15
	}

	// 呆滞库存占比
	switch {
	case inactivePercent > 30:
		score += 25
	case inactivePercent > 15:
		score += 10
	}

	// 货件差异金额
	if st.discrepancyImpact > 5000 {
		score += 20
	}

	level := RiskLevelLow
	switch {
	case score >= 60:
		level = RiskLevelHigh
	case score >= 30:
		level = RiskLevelMedium
	}

	// 差异金额 + 呆滞库存年化机会成本
	financialImpact := st.discrepancyImpact + float64(st.inactiveCount)*avgCost*annualizationFactor

	return BrandRisk{
		BrandName:         brand,
		Score:             score,
		RiskLevel:         level,
		SKUCount:          st.skuCount,
		AvgUnitCost:       round1(avgCost),
		InactivePercent:   round1(inactivePercent),
		DiscrepancyImpact: round1(st.discrepancyImpact),
		FinancialImpact:   round1(financialImpact),
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
