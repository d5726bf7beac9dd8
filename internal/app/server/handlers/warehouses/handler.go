package warehouses

import (
	"lop/dpboard/internal/app/domains/services/svdashboard"
	"lop/dpboard/internal/app/pkg/logger"
)

// WarehousesHandler 仓库 HTTP 处理器
type WarehousesHandler struct {
	service *svdashboard.Service
	log     logger.Logger
}

// NewWarehousesHandler 创建仓库处理器实例
func NewWarehousesHandler(service *svdashboard.Service, log logger.Logger) *WarehousesHandler {
	return &WarehousesHandler{
		service: service,
		log:     log,
	}
}
