package analytics

import (
	"github.com/gin-gonic/gin"

	"lop/dpboard/internal/app/pkg/ginx"
)

// Get 运营分析数据接口
// GET /api/analytics-data
func (h *AnalyticsHandler) Get(c *gin.Context) {
	data, err := h.service.AnalyticsData(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "build analytics data failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, data)
}
