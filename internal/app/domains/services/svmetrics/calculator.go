package svmetrics

import (
	"math"
	"sort"
	"time"

	"lop/dpboard/internal/app/domains/entity/etproduct"
	"lop/dpboard/internal/app/domains/entity/etshipment"
)

// 品牌表现标签
const (
	LabelLeadingBrand     = "Leading Brand"
	LabelTopPerformer     = "Top Performer"
	LabelStrongPerformer  = "Strong Performer"
	LabelAveragePerformer = "Average Performer"
	LabelDevelopingBrand  = "Developing Brand"
)

// BrandRanking 品牌排名结果
type BrandRanking struct {
	BrandName        string `json:"brand_name"`
	SKUCount         int    `json:"sku_count"`
	Rank             int    `json:"rank"`
	PerformanceLabel string `json:"performance_label"`
}

// StatusCount 货件状态计数
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// WarehouseVolume 仓库货件量
type WarehouseVolume struct {
	WarehouseID string `json:"warehouse_id"`
	Shipments   int    `json:"shipments"`
}

// Calculator 指标计算器
// 所有方法都是对当前批次 (products, shipments) 的纯函数，
// 空输入不报错，比例类指标除零时返回 0
type Calculator struct{}

// NewCalculator 创建指标计算器实例
func NewCalculator() *Calculator {
	return &Calculator{}
}

// FulfillmentEfficiency 履约效率（%）
// 完成定义：数量无差异且未取消
func (c *Calculator) FulfillmentEfficiency(shipments []*etshipment.Shipment) float64 {
	if len(shipments) == 0 {
		return 0
	}

	fulfilled := 0
	for _, s := range shipments {
		if !s.HasDiscrepancy() && !s.IsCancelled() {
			fulfilled++
		}
	}

	return round1(float64(fulfilled) / float64(len(shipments)) * 100)
}

// AtRiskRate 风险货件占比（%）
func (c *Calculator) AtRiskRate(shipments []*etshipment.Shipment) float64 {
	if len(shipments) == 0 {
		return 0
	}

	atRisk := 0
	for _, s := range shipments {
		if s.IsAtRisk() {
			atRisk++
		}
	}

	return round1(float64(atRisk) / float64(len(shipments)) * 100)
}

// OrderVolumeGrowth 订单量增长率（%）
// 对比最近 30 天与之前 30-60 天两个窗口的货件数，前窗口为空时定义为 0
func (c *Calculator) OrderVolumeGrowth(shipments []*etshipment.Shipment, now time.Time) float64 {
	recentStart := now.AddDate(0, 0, -30)
	olderStart := now.AddDate(0, 0, -60)

	recent, older := 0, 0
	for _, s := range shipments {
		switch {
		case s.CreatedAt.After(recentStart):
			recent++
		case s.CreatedAt.After(olderStart):
			older++
		}
	}

	if older == 0 {
		return 0
	}

	return round1(float64(recent-older) / float64(older) * 100)
}

// InventoryHealth 库存健康度（%）：活跃 SKU 占比
func (c *Calculator) InventoryHealth(products []*etproduct.Product) float64 {
	if len(products) == 0 {
		return 0
	}

	active := 0
	for _, p := range products {
		if p.Active {
			active++
		}
	}

	return round1(float64(active) / float64(len(products)) * 100)
}

// BrandRankings 品牌排名：按 SKU 数降序，并列时保持输入顺序
func (c *Calculator) BrandRankings(products []*etproduct.Product) []BrandRanking {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range products {
		brand := p.BrandOrUnknown()
		if _, seen := counts[brand]; !seen {
			order = append(order, brand)
		}
		counts[brand]++
	}

	rankings := make([]BrandRanking, 0, len(order))
	for _, brand := range order {
		rankings = append(rankings, BrandRanking{
			BrandName: brand,
			SKUCount:  counts[brand],
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].SKUCount > rankings[j].SKUCount
	})

	total := len(rankings)
	for i := range rankings {
		rankings[i].Rank = i + 1
		rankings[i].PerformanceLabel = performanceLabel(i+1, total)
	}

	return rankings
}

// performanceLabel 按排名分位分配表现标签
func performanceLabel(rank, total int) string {
	switch {
	case rank == 1:
		return LabelLeadingBrand
	case rank <= 3:
		return LabelTopPerformer
	case float64(rank) <= float64(total)*0.3:
		return LabelStrongPerformer
	case float64(rank) <= float64(total)*0.7:
		return LabelAveragePerformer
	default:
		return LabelDevelopingBrand
	}
}

// StatusBreakdown 货件状态分布，按数量降序
func (c *Calculator) StatusBreakdown(shipments []*etshipment.Shipment) []StatusCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, s := range shipments {
		status := s.Status
		if status == "" {
			status = "unknown"
		}
		if _, seen := counts[status]; !seen {
			order = append(order, status)
		}
		counts[status]++
	}

	breakdown := make([]StatusCount, 0, len(order))
	for _, status := range order {
		breakdown = append(breakdown, StatusCount{Status: status, Count: counts[status]})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})

	return breakdown
}

// AverageShipmentValue 货件平均货值：单位成本 × 实收数量的均值（仅统计有成本的货件）
func (c *Calculator) AverageShipmentValue(shipments []*etshipment.Shipment) float64 {
	total, counted := 0.0, 0
	for _, s := range shipments {
		if !s.HasCost() {
			continue
		}
		total += s.CostOrZero() * float64(s.ReceivedQuantity)
		counted++
	}

	if counted == 0 {
		return 0
	}

	return round1(total / float64(counted))
}

// ActiveSupplierCount 当前批次中出现的供应商数
func (c *Calculator) ActiveSupplierCount(shipments []*etshipment.Shipment) int {
	suppliers := make(map[string]struct{})
	for _, s := range shipments {
		if s.Supplier != "" {
			suppliers[s.Supplier] = struct{}{}
		}
	}
	return len(suppliers)
}

// TotalOnHandUnits 活跃 SKU 的在库总量
func (c *Calculator) TotalOnHandUnits(products []*etproduct.Product) int {
	total := 0
	for _, p := range products {
		if p.Active {
			total += p.Quantity
		}
	}
	return total
}

// WarehouseVolumes 各仓库货件量，按数量降序
func (c *Calculator) WarehouseVolumes(shipments []*etshipment.Shipment) []WarehouseVolume {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, s := range shipments {
		if s.WarehouseID == "" {
			continue
		}
		if _, seen := counts[s.WarehouseID]; !seen {
			order = append(order, s.WarehouseID)
		}
		counts[s.WarehouseID]++
	}

	volumes := make([]WarehouseVolume, 0, len(order))
	for _, id := range order {
		volumes = append(volumes, WarehouseVolume{WarehouseID: id, Shipments: counts[id]})
	}

	sort.SliceStable(volumes, func(i, j int) bool {
		return volumes[i].Shipments > volumes[j].Shipments
	})

	return volumes
}

// round1 四舍五入到一位小数
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
