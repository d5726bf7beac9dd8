package svdashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"lop/dpboard/internal/app/domains/apimodel/response"
	"lop/dpboard/internal/app/domains/entity/etproduct"
	"lop/dpboard/internal/app/domains/entity/etshipment"
	"lop/dpboard/internal/app/domains/services/svanomaly"
	"lop/dpboard/internal/app/domains/services/svinsight"
	"lop/dpboard/internal/app/domains/services/svmetrics"
	"lop/dpboard/internal/app/domains/services/svrisk"
	"lop/dpboard/internal/app/pkg/errorx"
	"lop/dpboard/internal/app/pkg/logger"
)

// ProductSource 产品数据源接口（infra/tinybird 实现）
type ProductSource interface {
	Products(ctx context.Context) ([]*etproduct.Product, error)
}

// ShipmentSource 货件数据源接口（infra/tinybird、infra/warehouse 实现）
type ShipmentSource interface {
	Shipments(ctx context.Context) ([]*etshipment.Shipment, error)
}

// snapshot 单次请求的上游数据快照
type snapshot struct {
	products  []*etproduct.Product
	shipments []*etshipment.Shipment
}

// Service 仪表盘编排服务
// 每次请求：并发拉取 → 指标计算 → 异常检测 → 风险评分 → 洞察生成 → 组装 DTO
// 无任何跨请求状态
type Service struct {
	products  ProductSource
	shipments ShipmentSource
	warehouse ShipmentSource // 可选仓库侧数据源，未配置时为 nil
	calc      *svmetrics.Calculator
	detector  *svanomaly.Detector
	scorer    *svrisk.Scorer
	insights  *svinsight.Generator
	log       logger.Logger
	now       func() time.Time
}

// NewService 创建仪表盘服务实例
func NewService(
	products ProductSource,
	shipments ShipmentSource,
	warehouse ShipmentSource,
	insights *svinsight.Generator,
	log logger.Logger,
) *Service {
	return &Service{
		products:  products,
		shipments: shipments,
		warehouse: warehouse,
		calc:      svmetrics.NewCalculator(),
		detector:  svanomaly.NewDetector(),
		scorer:    svrisk.NewScorer(),
		insights:  insights,
		log:       log,
		now:       time.Now,
	}
}

// fetchSnapshot 并发拉取产品和货件，任一失败则整个请求失败（不重试）
func (s *Service) fetchSnapshot(ctx context.Context) (*snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := s.products.Products(gctx)
		if err != nil {
			return fmt.Errorf("%w: products: %v", errorx.ErrUpstreamFetch, err)
		}
		snap.products = products
		return nil
	})
	g.Go(func() error {
		shipments, err := s.shipments.Shipments(gctx)
		if err != nil {
			return fmt.Errorf("%w: shipments: %v", errorx.ErrUpstreamFetch, err)
		}
		snap.shipments = shipments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// DashboardData 组装仪表盘聚合数据
func (s *Service) DashboardData(ctx context.Context) (*response.DashboardData, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	anomalies := s.detector.Detect(snap.shipments)
	risks := s.scorer.Score(snap.products, snap.shipments)
	kpis := s.kpis(snap)

	metricSnap := s.metricSnapshot(snap, anomalies, risks)
	insights := s.insights.Generate(ctx, svinsight.DomainDashboard, metricSnap)

	return &response.DashboardData{
		KPIs:             kpis,
		BrandPerformance: s.calc.BrandRankings(snap.products),
		Anomalies:        anomalies,
		MarginRisks:      risks,
		Insights:         insights,
	}, nil
}

// AnalyticsData 组装运营分析数据
func (s *Service) AnalyticsData(ctx context.Context) (*response.AnalyticsData, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &response.AnalyticsData{
		OrderVolumeGrowth:    s.calc.OrderVolumeGrowth(snap.shipments, s.now()),
		AverageShipmentValue: s.calc.AverageShipmentValue(snap.shipments),
		ActiveSuppliers:      s.calc.ActiveSupplierCount(snap.shipments),
		TotalOnHandUnits:     s.calc.TotalOnHandUnits(snap.products),
		StatusBreakdown:      s.calc.StatusBreakdown(snap.shipments),
		WarehouseVolumes:     s.calc.WarehouseVolumes(snap.shipments),
		BrandPerformance:     s.calc.BrandRankings(snap.products),
	}, nil
}

// CostData 组装成本方差数据
func (s *Service) CostData(ctx context.Context) (*response.CostData, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	anomalies := s.detector.Detect(snap.shipments)
	baselines := s.detector.SupplierBaselines(snap.shipments)

	totalImpact := 0.0
	for _, a := range anomalies {
		totalImpact += a.FinancialImpact
	}

	metricSnap := s.metricSnapshot(snap, anomalies, nil)
	insights := s.insights.Generate(ctx, svinsight.DomainCostVariance, metricSnap)

	return &response.CostData{
		Anomalies:   anomalies,
		TotalImpact: totalImpact,
		Baselines:   response.FromBaselines(baselines),
		Insights:    insights,
	}, nil
}

// OrdersData 组装订单/货件数据
func (s *Service) OrdersData(ctx context.Context) (*response.OrdersData, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &response.OrdersData{
		TotalShipments:        len(snap.shipments),
		FulfillmentEfficiency: s.calc.FulfillmentEfficiency(snap.shipments),
		AtRiskRate:            s.calc.AtRiskRate(snap.shipments),
		OrderVolumeGrowth:     s.calc.OrderVolumeGrowth(snap.shipments, s.now()),
		StatusBreakdown:       s.calc.StatusBreakdown(snap.shipments),
	}, nil
}

// WarehousesData 组装仓库数据，依赖可选的仓库数据源
func (s *Service) WarehousesData(ctx context.Context) (*response.WarehousesData, error) {
	if s.warehouse == nil {
		return nil, errorx.ErrWarehouseDisabled
	}

	shipments, err := s.warehouse.Shipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: warehouse shipments: %v", errorx.ErrUpstreamFetch, err)
	}

	anomalies := make([]svanomaly.Anomaly, 0)
	for _, a := range s.detector.Detect(shipments) {
		if a.Type == svanomaly.AnomalyTypeQuantityDiscrepancy {
			anomalies = append(anomalies, a)
		}
	}

	return &response.WarehousesData{
		Warehouses: warehouseStats(shipments),
		Volumes:    s.calc.WarehouseVolumes(shipments),
		Anomalies:  anomalies,
	}, nil
}

// kpis 核心 KPI 汇总
func (s *Service) kpis(snap *snapshot) response.KPISet {
	return response.KPISet{
		FulfillmentEfficiency: s.calc.FulfillmentEfficiency(snap.shipments),
		AtRiskRate:            s.calc.AtRiskRate(snap.shipments),
		OrderVolumeGrowth:     s.calc.OrderVolumeGrowth(snap.shipments, s.now()),
		InventoryHealth:       s.calc.InventoryHealth(snap.products),
		TotalProducts:         len(snap.products),
		TotalShipments:        len(snap.shipments),
	}
}

// metricSnapshot 供洞察生成使用的指标快照
func (s *Service) metricSnapshot(snap *snapshot, anomalies []svanomaly.Anomaly, risks []svrisk.BrandRisk) svinsight.MetricSnapshot {
	anomalyImpact := 0.0
	for _, a := range anomalies {
		anomalyImpact += a.FinancialImpact
	}

	riskImpact := 0.0
	highRisk := 0
	for _, r := range risks {
		riskImpact += r.FinancialImpact
		if r.RiskLevel == svrisk.RiskLevelHigh {
			highRisk++
		}
	}

	return svinsight.MetricSnapshot{
		TotalProducts:         len(snap.products),
		TotalShipments:        len(snap.shipments),
		FulfillmentEfficiency: s.calc.FulfillmentEfficiency(snap.shipments),
		AtRiskRate:            s.calc.AtRiskRate(snap.shipments),
		OrderVolumeGrowth:     s.calc.OrderVolumeGrowth(snap.shipments, s.now()),
		InventoryHealth:       s.calc.InventoryHealth(snap.products),
		AnomalyCount:          len(anomalies),
		AnomalyImpact:         anomalyImpact,
		HighRiskBrands:        highRisk,
		RiskImpact:            riskImpact,
	}
}

// warehouseStats 仓库维度的差异率/风险率统计
func warehouseStats(shipments []*etshipment.Shipment) []response.WarehouseStats {
	type agg struct {
		total      int
		discrepant int
		atRisk     int
	}

	groups := make(map[string]*agg)
	order := make([]string, 0)
	for _, sh := range shipments {
		if sh.WarehouseID == "" {
			continue
		}
		a, ok := groups[sh.WarehouseID]
		if !ok {
			a = &agg{}
			groups[sh.WarehouseID] = a
			order = append(order, sh.WarehouseID)
		}
		a.total++
		if sh.HasDiscrepancy() {
			a.discrepant++
		}
		if sh.IsAtRisk() {
			a.atRisk++
		}
	}

	stats := make([]response.WarehouseStats, 0, len(order))
	for _, id := range order {
		a := groups[id]
		stats = append(stats, response.WarehouseStats{
			WarehouseID:     id,
			Shipments:       a.total,
			DiscrepancyRate: rate(a.discrepant, a.total),
			AtRiskRate:      rate(a.atRisk, a.total),
		})
	}
	return stats
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
