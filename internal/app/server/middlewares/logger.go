package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"lop/dpboard/internal/app/pkg/logger"
	"lop/dpboard/internal/app/pkg/metrics"
)

// AccessLog 访问日志中间件，同时上报路由耗时指标
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		log.Infof(c.Request.Context(), "%s %s status=%d latency=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), elapsed)
	}
}
