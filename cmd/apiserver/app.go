package main

import (
	"github.com/gin-gonic/gin"

	"lop/dpboard/internal/app/config"
	"lop/dpboard/internal/app/domains/services/svdashboard"
	"lop/dpboard/internal/app/domains/services/svinsight"
	"lop/dpboard/internal/app/infra/llm"
	"lop/dpboard/internal/app/infra/tinybird"
	"lop/dpboard/internal/app/infra/warehouse"
	"lop/dpboard/internal/app/pkg/logger"
	"lop/dpboard/internal/app/server/handlers/analytics"
	"lop/dpboard/internal/app/server/handlers/cost"
	"lop/dpboard/internal/app/server/handlers/dashboard"
	"lop/dpboard/internal/app/server/handlers/orders"
	"lop/dpboard/internal/app/server/handlers/warehouses"
	"lop/dpboard/internal/app/server/routers"
)

// App 应用依赖集合
type App struct {
	Engine *gin.Engine
	Logger logger.Logger
}

// InitializeApp 手工装配全部依赖
// 依赖方向：infra 客户端 → 服务 → 处理器 → 路由
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	// 上游数据源
	tbClient := tinybird.NewClient(
		cfg.Tinybird.BaseURL,
		cfg.Tinybird.Token,
		cfg.Tinybird.Limit,
		cfg.Tinybird.CompanyURL,
	)

	// 可选仓库数据源
	var whSource svdashboard.ShipmentSource
	if cfg.WarehouseEnabled() {
		whSource = warehouse.NewClient(cfg.Warehouse.BaseURL, cfg.Warehouse.Token)
	}

	// 可选 LLM，未配置时洞察走规则模板
	var completer svinsight.Completer
	if cfg.LLMEnabled() {
		completer = llm.NewClient(
			cfg.LLM.APIKey,
			cfg.LLM.BaseURL,
			cfg.LLM.Model,
			cfg.LLM.MaxTokens,
			cfg.LLM.Temperature,
		)
	}

	insightGen := svinsight.NewGenerator(completer, log)
	service := svdashboard.NewService(tbClient, tbClient, whSource, insightGen, log)

	engine := routers.SetupRoutes(
		log,
		dashboard.NewDashboardHandler(service, log),
		analytics.NewAnalyticsHandler(service, log),
		cost.NewCostHandler(service, log),
		orders.NewOrdersHandler(service, log),
		warehouses.NewWarehousesHandler(service, log),
	)

	cleanup := func() {
		_ = log.Sync()
	}

	return &App{Engine: engine, Logger: log}, cleanup, nil
}
