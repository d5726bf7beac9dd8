package middlewares

import (
	"github.com/gin-gonic/gin"

	"lop/dpboard/internal/app/pkg/ginx"
	"lop/dpboard/internal/app/pkg/logger"
)

// Recovery 捕获 panic，返回统一的 500 响应
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic recovered: %v", r)
				ginx.InternalError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
