package warehouses

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lop/dpboard/internal/app/pkg/errorx"
	"lop/dpboard/internal/app/pkg/ginx"
)

// Get 仓库数据接口，依赖可选的仓库数据源配置
// GET /api/warehouses-data
func (h *WarehousesHandler) Get(c *gin.Context) {
	data, err := h.service.WarehousesData(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "build warehouses data failed: %v", err)
		if errors.Is(err, errorx.ErrWarehouseDisabled) {
			ginx.ConfigError(c, err.Error())
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, data)
}
