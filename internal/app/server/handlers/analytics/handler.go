package analytics

import (
	"lop/dpboard/internal/app/domains/services/svdashboard"
	"lop/dpboard/internal/app/pkg/logger"
)

// AnalyticsHandler 运营分析 HTTP 处理器
type AnalyticsHandler struct {
	service *svdashboard.Service
	log     logger.Logger
}

// NewAnalyticsHandler 创建运营分析处理器实例
func NewAnalyticsHandler(service *svdashboard.Service, log logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log,
	}
}
