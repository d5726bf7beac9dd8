package etproduct

import "time"

// Product SKU 记录（领域对象）
// 来源于上游分析 API 的扁平记录，只读，不落库
type Product struct {
	ID              string     `json:"product_id"`
	Name            string     `json:"product_name"`
	BrandName       string     `json:"brand_name"`
	Supplier        string     `json:"supplier_name"`
	UnitCost        *float64   `json:"unit_cost"`
	Quantity        int        `json:"unit_quantity"`
	Active          bool       `json:"active"`
	CountryOfOrigin string     `json:"country_of_origin"`
	CreatedAt       time.Time  `json:"created_date"`
	UpdatedAt       *time.Time `json:"updated_date"`
}

// BrandOrUnknown 品牌名，缺失时归入 Unknown Brand
func (p *Product) BrandOrUnknown() string {
	if p.BrandName == "" {
		return "Unknown Brand"
	}
	return p.BrandName
}

// CostOrZero 单位成本，缺失时为 0
func (p *Product) CostOrZero() float64 {
	if p.UnitCost == nil {
		return 0
	}
	return *p.UnitCost
}
