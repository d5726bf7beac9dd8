package orders

import (
	"github.com/gin-gonic/gin"

	"lop/dpboard/internal/app/pkg/ginx"
)

// Get 订单/货件数据接口
// GET /api/orders-data
func (h *OrdersHandler) Get(c *gin.Context) {
	data, err := h.service.OrdersData(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "build orders data failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, data)
}
