package dashboard

import (
	"github.com/gin-gonic/gin"

	"lop/dpboard/internal/app/pkg/ginx"
)

// Get 仪表盘聚合数据接口
// GET /api/dashboard-data
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.service.DashboardData(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "build dashboard data failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, data)
}
