package svrisk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lop/dpboard/internal/app/domains/entity/etproduct"
	"lop/dpboard/internal/app/domains/entity/etshipment"
)

func fp(v float64) *float64 { return &v }

// brandProducts 生成指定品牌的 SKU 集合
func brandProducts(brand string, total, inactive int, unitCost float64) []*etproduct.Product {
	products := make([]*etproduct.Product, 0, total)
	for i := 0; i < total; i++ {
		products = append(products, &etproduct.Product{
			ID:        fmt.Sprintf("%s-%d", brand, i),
			BrandName: brand,
			UnitCost:  fp(unitCost),
			Active:    i >= inactive,
		})
	}
	return products
}

func TestScoreBrand(t *testing.T) {
	t.Run("all dimensions trip", func(t *testing.T) {
		// 60 SKU、均价 60、40% 呆滞、差异金额 6000 → 25+30+25+20 = 100
		st := &brandStats{
			skuCount:          60,
			inactiveCount:     24,
			costTotal:         3600,
			costedSKUs:        60,
			discrepancyImpact: 6000,
		}
		risk := scoreBrand("Acme", st)

		assert.Equal(t, 100, risk.Score)
		assert.Equal(t, RiskLevelHigh, risk.RiskLevel)
		assert.Equal(t, 60.0, risk.AvgUnitCost)
		assert.Equal(t, 40.0, risk.InactivePercent)
		// 差异金额 + 呆滞库存年化机会成本：6000 + 24×60×12
		assert.Equal(t, 6000.0+24*60*12, risk.FinancialImpact)
	})

	t.Run("mid tier thresholds", func(t *testing.T) {
		// 30 SKU、均价 30、20% 呆滞 → 15+15+10 = 40，Medium
		st := &brandStats{
			skuCount:      30,
			inactiveCount: 6,
			costTotal:     900,
			costedSKUs:    30,
		}
		risk := scoreBrand("Beta", st)

		assert.Equal(t, 40, risk.Score)
		assert.Equal(t, RiskLevelMedium, risk.RiskLevel)
	})

	t.Run("quiet brand scores zero", func(t *testing.T) {
		st := &brandStats{
			skuCount:   10,
			costTotal:  100,
			costedSKUs: 10,
		}
		risk := scoreBrand("Gamma", st)

		assert.Equal(t, 0, risk.Score)
		assert.Equal(t, RiskLevelLow, risk.RiskLevel)
		assert.Equal(t, 0.0, risk.FinancialImpact)
	})
}

func TestScoreFiltersSmallBrands(t *testing.T) {
	scorer := NewScorer()

	// 高风险特征但只有 5 个 SKU，不足报告门槛
	products := brandProducts("Tiny", 5, 3, 80)

	risks := scorer.Score(products, nil)
	assert.Empty(t, risks)
}

func TestScoreFiltersZeroScore(t *testing.T) {
	scorer := NewScorer()

	// 10 个便宜且活跃的 SKU，各维度都不触发
	products := brandProducts("Calm", 10, 0, 5)

	risks := scorer.Score(products, nil)
	assert.Empty(t, risks)
}

func TestScoreRanksAndTruncates(t *testing.T) {
	scorer := NewScorer()

	products := make([]*etproduct.Product, 0)
	// 7 个品牌，呆滞占比逐个升高，评分随之分层
	for i := 0; i < 7; i++ {
		brand := fmt.Sprintf("Brand-%d", i)
		products = append(products, brandProducts(brand, 25, 2+i*2, 25)...)
	}

	risks := scorer.Score(products, nil)
	require.Len(t, risks, maxReported)

	for i := 1; i < len(risks); i++ {
		assert.GreaterOrEqual(t, risks[i-1].Score, risks[i].Score)
	}
}

func TestScoreUsesShipmentDiscrepancies(t *testing.T) {
	scorer := NewScorer()

	products := brandProducts("Acme", 10, 0, 5)
	shipments := []*etshipment.Shipment{
		{BrandName: "Acme", ExpectedQuantity: 100, ReceivedQuantity: 50, UnitCost: fp(120)},
		{BrandName: "Acme", ExpectedQuantity: 10, ReceivedQuantity: 10, UnitCost: fp(120)}, // 无差异不计入
	}

	risks := scorer.Score(products, shipments)
	require.Len(t, risks, 1)

	risk := risks[0]
	assert.Equal(t, "Acme", risk.BrandName)
	assert.Equal(t, 20, risk.Score)
	assert.Equal(t, RiskLevelLow, risk.RiskLevel)
	assert.Equal(t, 6000.0, risk.DiscrepancyImpact)
	assert.Equal(t, 6000.0, risk.FinancialImpact)
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewScorer()

	products := append(
		brandProducts("Acme", 30, 10, 40),
		brandProducts("Beta", 30, 10, 40)...,
	)

	first := scorer.Score(products, nil)
	require.NotEmpty(t, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, scorer.Score(products, nil))
	}
	// 同分品牌按名称升序进入，稳定排序保持该顺序
	assert.Equal(t, "Acme", first[0].BrandName)
	assert.Equal(t, "Beta", first[1].BrandName)
}
