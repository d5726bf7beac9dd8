package etshipment

import (
	"strings"
	"time"
)

// 货件状态常量（上游为自由文本，仅列出参与业务规则的值）
const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusReceiving = "receiving"
)

// Shipment 入库货件/收货记录（领域对象）
// 来源于上游分析 API 或仓库 API 的扁平记录，只读，不落库
type Shipment struct {
	ID               string     `json:"shipment_id"`
	BrandName        string     `json:"brand_name"`
	Supplier         string     `json:"supplier"`
	WarehouseID      string     `json:"warehouse_id"`
	ExpectedQuantity int        `json:"expected_quantity"`
	ReceivedQuantity int        `json:"received_quantity"`
	UnitCost         *float64   `json:"unit_cost"`
	Status           string     `json:"status"`
	PONumber         *string    `json:"purchase_order_number"`
	CreatedAt        time.Time  `json:"created_date"`
	ExpectedArrival  *time.Time `json:"expected_arrival_date"`
	ActualArrival    *time.Time `json:"arrival_date"`
}

// HasDiscrepancy 预期数量与实收数量不一致
func (s *Shipment) HasDiscrepancy() bool {
	return s.ExpectedQuantity != s.ReceivedQuantity
}

// IsCancelled 货件已取消
func (s *Shipment) IsCancelled() bool {
	return strings.EqualFold(s.Status, StatusCancelled)
}

// IsAtRisk 风险货件定义：数量差异或已取消
func (s *Shipment) IsAtRisk() bool {
	return s.HasDiscrepancy() || s.IsCancelled()
}

// QuantityDiff 数量差异绝对值
func (s *Shipment) QuantityDiff() int {
	diff := s.ExpectedQuantity - s.ReceivedQuantity
	if diff < 0 {
		return -diff
	}
	return diff
}

// CostOrZero 单位成本，缺失时为 0
func (s *Shipment) CostOrZero() float64 {
	if s.UnitCost == nil {
		return 0
	}
	return *s.UnitCost
}

// HasCost 是否携带单位成本
func (s *Shipment) HasCost() bool {
	return s.UnitCost != nil
}

// BrandOrUnknown 品牌名，缺失时归入 Unknown Brand
func (s *Shipment) BrandOrUnknown() string {
	if s.BrandName == "" {
		return "Unknown Brand"
	}
	return s.BrandName
}
