package dashboard

import (
	"lop/dpboard/internal/app/domains/services/svdashboard"
	"lop/dpboard/internal/app/pkg/logger"
)

// DashboardHandler 仪表盘 HTTP 处理器
type DashboardHandler struct {
	service *svdashboard.Service
	log     logger.Logger
}

// NewDashboardHandler 创建仪表盘处理器实例
func NewDashboardHandler(service *svdashboard.Service, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}
