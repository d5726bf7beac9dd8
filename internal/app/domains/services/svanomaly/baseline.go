package svanomaly

import (
	"sort"

	"lop/dpboard/internal/app/domains/entity/etshipment"
)

// SupplierCostBaseline 供应商成本基线（请求级派生数据，不跨请求保留）
type SupplierCostBaseline struct {
	Supplier     string    `json:"supplier"`
	History      []float64 `json:"history"`
	Baseline     float64   `json:"baseline"`
	Threshold    float64   `json:"threshold"`
	Mean         float64   `json:"mean"`
	Confidence   float64   `json:"confidence"`
	Observations int       `json:"observations"`
	Adaptive     bool      `json:"adaptive"`
}

// Usable 基线是否可用于异常判定：至少 3 个观测值
func (b *SupplierCostBaseline) Usable() bool {
	return b.Observations >= minObservations
}

// buildBaseline 基于该供应商的成本历史构建基线
// 历史按创建时间升序；EMA 基线 + 自适应阈值，EMA 失效时退化为均值 × 1.4
func (d *Detector) buildBaseline(supplier string, shipments []*etshipment.Shipment) *SupplierCostBaseline {
	history := costHistory(shipments)

	b := &SupplierCostBaseline{
		Supplier:     supplier,
		History:      history,
		Observations: len(history),
	}

	if len(history) == 0 {
		return b
	}

	b.Mean = mean(history)

	ema := exponentialMovingAverage(history, d.emaPeriod)
	if ema > 0 {
		b.Baseline = ema
		b.Threshold = ema * d.thresholdMultiplier
		b.Adaptive = true
	} else {
		// 退化路径：算术均值 + 静态阈值
		b.Baseline = b.Mean
		b.Threshold = b.Mean * fallbackMultiplier
	}

	// 置信度随观测数增长，封顶 95
	b.Confidence = confidenceScore(len(history))

	return b
}

// costHistory 取有成本的货件，按创建时间升序排成成本序列
func costHistory(shipments []*etshipment.Shipment) []float64 {
	withCost := make([]*etshipment.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if s.HasCost() {
			withCost = append(withCost, s)
		}
	}

	sort.SliceStable(withCost, func(i, j int) bool {
		return withCost[i].CreatedAt.Before(withCost[j].CreatedAt)
	})

	history := make([]float64, 0, len(withCost))
	for _, s := range withCost {
		history = append(history, s.CostOrZero())
	}
	return history
}

// exponentialMovingAverage 指数移动平均，以首个观测值为种子
func exponentialMovingAverage(values []float64, period int) float64 {
	if len(values) == 0 || period <= 0 {
		return 0
	}

	k := 2.0 / (float64(period) + 1.0)
	ema := values[0]
	for _, v := range values[1:] {
		ema = v*k + ema*(1.0-k)
	}
	return ema
}

// confidenceScore 观测数映射为 0-100 置信度
func confidenceScore(observations int) float64 {
	score := 50.0 + float64(observations)*3.0
	if score > 95.0 {
		return 95.0
	}
	return score
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
