package svanomaly

import (
	"fmt"
	"math"
	"sort"

	"lop/dpboard/internal/app/domains/entity/etshipment"
)

// 异常类型常量
const (
	AnomalyTypeCostSpike           = "COST_SPIKE"
	AnomalyTypeQuantityDiscrepancy = "QUANTITY_DISCREPANCY"
)

// 异常级别常量
const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
)

// 检测参数
const (
	minObservations    = 3    // 供应商最小样本数，不足则跳过
	defaultEMAPeriod   = 14   // EMA 周期
	defaultMultiplier  = 1.25 // 自适应阈值倍数
	fallbackMultiplier = 1.4  // 退化路径静态阈值倍数

	meanDeviationLimit = 0.40 // 相对均值偏差超过 40% 视为可疑
	highDeviationLimit = 0.80 // 相对基线偏差超过 80% 升级为 High

	costNoiseFloor = 1000.0 // 成本异常金额噪声下限
	maxAnomalies   = 8      // 输出上限

	discrepancyRateLimit     = 0.30   // 仓库数量差异率阈值
	discrepancyHighRateLimit = 0.50   // High 级别阈值
	discrepancyImpactFloor   = 2000.0 // 仓库差异金额下限
	discrepancyMinShipments  = 5      // 仓库最小货件数（需大于该值）
)

// Anomaly 检测出的单个异常
type Anomaly struct {
	Type            string  `json:"type"`
	Severity        string  `json:"severity"`
	Supplier        string  `json:"supplier,omitempty"`
	WarehouseID     string  `json:"warehouse_id,omitempty"`
	ShipmentID      string  `json:"shipment_id,omitempty"`
	Description     string  `json:"description"`
	FinancialImpact float64 `json:"financial_impact"`
	Confidence      float64 `json:"confidence,omitempty"`
	UnitCost        float64 `json:"unit_cost,omitempty"`
	Baseline        float64 `json:"baseline,omitempty"`
	Threshold       float64 `json:"threshold,omitempty"`
}

// Detector 成本基线 / 异常检测器
// 每次请求基于当前货件批次全量重建，无跨请求状态
type Detector struct {
	emaPeriod           int
	thresholdMultiplier float64
}

// NewDetector 创建检测器实例（EMA 周期 14，阈值倍数 1.25）
func NewDetector() *Detector {
	return &Detector{
		emaPeriod:           defaultEMAPeriod,
		thresholdMultiplier: defaultMultiplier,
	}
}

// Detect 执行完整检测：供应商成本尖刺 + 仓库数量差异
// 两类异常合并后按金额影响降序，截断到前 8 条
func (d *Detector) Detect(shipments []*etshipment.Shipment) []Anomaly {
	anomalies := make([]Anomaly, 0)
	anomalies = append(anomalies, d.detectCostSpikes(shipments)...)
	anomalies = append(anomalies, d.detectQuantityDiscrepancies(shipments)...)

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].FinancialImpact > anomalies[j].FinancialImpact
	})

	if len(anomalies) > maxAnomalies {
		anomalies = anomalies[:maxAnomalies]
	}

	return anomalies
}

// SupplierBaselines 各供应商成本基线，按供应商名升序
func (d *Detector) SupplierBaselines(shipments []*etshipment.Shipment) []*SupplierCostBaseline {
	groups := groupBySupplier(shipments)

	suppliers := make([]string, 0, len(groups))
	for supplier := range groups {
		suppliers = append(suppliers, supplier)
	}
	sort.Strings(suppliers)

	baselines := make([]*SupplierCostBaseline, 0, len(suppliers))
	for _, supplier := range suppliers {
		baselines = append(baselines, d.buildBaseline(supplier, groups[supplier]))
	}
	return baselines
}

// detectCostSpikes 供应商维度的成本尖刺检测
func (d *Detector) detectCostSpikes(shipments []*etshipment.Shipment) []Anomaly {
	anomalies := make([]Anomaly, 0)

	groups := groupBySupplier(shipments)
	suppliers := make([]string, 0, len(groups))
	for supplier := range groups {
		suppliers = append(suppliers, supplier)
	}
	sort.Strings(suppliers)

	for _, supplier := range suppliers {
		group := groups[supplier]

		baseline := d.buildBaseline(supplier, group)
		if !baseline.Usable() {
			// 样本不足，跳过该供应商，避免稀疏数据误报
			continue
		}

		for _, s := range group {
			if !s.HasCost() {
				continue
			}

			cost := s.CostOrZero()
			if !isCostSpike(cost, baseline) {
				continue
			}

			impact := math.Abs(cost-baseline.Baseline) * float64(s.ReceivedQuantity)
			if impact <= costNoiseFloor {
				// 统计显著但金额无关紧要，抑制
				continue
			}

			anomalies = append(anomalies, Anomaly{
				Type:            AnomalyTypeCostSpike,
				Severity:        costSpikeSeverity(cost, baseline.Baseline),
				Supplier:        supplier,
				ShipmentID:      s.ID,
				Description:     fmt.Sprintf("Unit cost %.2f exceeds supplier baseline %.2f (threshold %.2f)", cost, baseline.Baseline, baseline.Threshold),
				FinancialImpact: impact,
				Confidence:      baseline.Confidence,
				UnitCost:        cost,
				Baseline:        baseline.Baseline,
				Threshold:       baseline.Threshold,
			})
		}
	}

	return anomalies
}

// isCostSpike 超出自适应阈值，或相对均值偏差超过 40%
func isCostSpike(cost float64, baseline *SupplierCostBaseline) bool {
	if cost > baseline.Threshold {
		return true
	}
	if baseline.Mean > 0 && math.Abs(cost-baseline.Mean)/baseline.Mean > meanDeviationLimit {
		return true
	}
	return false
}

// costSpikeSeverity 相对基线偏差超过 80% 为 High
func costSpikeSeverity(cost, baseline float64) string {
	if baseline > 0 && math.Abs(cost-baseline)/baseline > highDeviationLimit {
		return SeverityHigh
	}
	return SeverityMedium
}

// detectQuantityDiscrepancies 仓库维度的数量差异率检测
// 触发条件：差异率 > 30% 且累计金额影响 > 2000 且货件数 > 5
func (d *Detector) detectQuantityDiscrepancies(shipments []*etshipment.Shipment) []Anomaly {
	groups := make(map[string][]*etshipment.Shipment)
	order := make([]string, 0)
	for _, s := range shipments {
		if s.WarehouseID == "" {
			continue
		}
		if _, seen := groups[s.WarehouseID]; !seen {
			order = append(order, s.WarehouseID)
		}
		groups[s.WarehouseID] = append(groups[s.WarehouseID], s)
	}

	anomalies := make([]Anomaly, 0)
	for _, warehouseID := range order {
		group := groups[warehouseID]
		if len(group) <= discrepancyMinShipments {
			continue
		}

		discrepant := 0
		impact := 0.0
		for _, s := range group {
			if s.HasDiscrepancy() {
				discrepant++
				impact += float64(s.QuantityDiff()) * s.CostOrZero()
			}
		}

		rate := float64(discrepant) / float64(len(group))
		if rate <= discrepancyRateLimit || impact <= discrepancyImpactFloor {
			continue
		}

		severity := SeverityMedium
		if rate > discrepancyHighRateLimit {
			severity = SeverityHigh
		}

		anomalies = append(anomalies, Anomaly{
			Type:            AnomalyTypeQuantityDiscrepancy,
			Severity:        severity,
			WarehouseID:     warehouseID,
			Description:     fmt.Sprintf("Warehouse %s has %.0f%% quantity discrepancy rate across %d shipments", warehouseID, rate*100, len(group)),
			FinancialImpact: impact,
		})
	}

	return anomalies
}

// groupBySupplier 按供应商分组，忽略无供应商的货件
func groupBySupplier(shipments []*etshipment.Shipment) map[string][]*etshipment.Shipment {
	groups := make(map[string][]*etshipment.Shipment)
	for _, s := range shipments {
		if s.Supplier == "" {
			continue
		}
		groups[s.Supplier] = append(groups[s.Supplier], s)
	}
	return groups
}
