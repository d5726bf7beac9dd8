package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lop/dpboard/internal/app/pkg/ginx"
	"lop/dpboard/internal/app/pkg/logger"
	"lop/dpboard/internal/app/server/handlers/analytics"
	"lop/dpboard/internal/app/server/handlers/cost"
	"lop/dpboard/internal/app/server/handlers/dashboard"
	"lop/dpboard/internal/app/server/handlers/orders"
	"lop/dpboard/internal/app/server/handlers/warehouses"
	"lop/dpboard/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由
// 数据接口只接受 GET，其余方法统一返回 405
func SetupRoutes(
	log logger.Logger,
	dashboardHandler *dashboard.DashboardHandler,
	analyticsHandler *analytics.AnalyticsHandler,
	costHandler *cost.CostHandler,
	ordersHandler *orders.OrdersHandler,
	warehousesHandler *warehouses.WarehousesHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.AccessLog(log))
	r.Use(middlewares.CORS())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		ginx.MethodNotAllowed(c)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "dpboard",
			"message": "Service is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/dashboard-data", dashboardHandler.Get)
		api.GET("/analytics-data", analyticsHandler.Get)
		api.GET("/cost-data", costHandler.Get)
		api.GET("/orders-data", ordersHandler.Get)
		api.GET("/warehouses-data", warehousesHandler.Get)
	}

	return r
}
