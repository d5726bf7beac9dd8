package cost

import (
	"github.com/gin-gonic/gin"

	"lop/dpboard/internal/app/pkg/ginx"
)

// Get 成本方差数据接口
// GET /api/cost-data
func (h *CostHandler) Get(c *gin.Context) {
	data, err := h.service.CostData(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "build cost data failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, data)
}
