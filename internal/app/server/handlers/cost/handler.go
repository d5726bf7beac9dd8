package cost

import (
	"lop/dpboard/internal/app/domains/services/svdashboard"
	"lop/dpboard/internal/app/pkg/logger"
)

// CostHandler 成本方差 HTTP 处理器
type CostHandler struct {
	service *svdashboard.Service
	log     logger.Logger
}

// NewCostHandler 创建成本方差处理器实例
func NewCostHandler(service *svdashboard.Service, log logger.Logger) *CostHandler {
	return &CostHandler{
		service: service,
		log:     log,
	}
}
