package orders

import (
	"lop/dpboard/internal/app/domains/services/svdashboard"
	"lop/dpboard/internal/app/pkg/logger"
)

// OrdersHandler 订单/货件 HTTP 处理器
type OrdersHandler struct {
	service *svdashboard.Service
	log     logger.Logger
}

// NewOrdersHandler 创建订单处理器实例
func NewOrdersHandler(service *svdashboard.Service, log logger.Logger) *OrdersHandler {
	return &OrdersHandler{
		service: service,
		log:     log,
	}
}
