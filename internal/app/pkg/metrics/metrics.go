package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 上游拉取与 LLM 降级的运行指标
var (
	// UpstreamRequestsTotal 上游数据源请求计数（source=tinybird/warehouse, status=ok/error）
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dpboard_upstream_requests_total",
		Help: "Total upstream data source requests by source and status.",
	}, []string{"source", "status"})

	// LLMFallbacksTotal LLM 调用失败后走规则模板的次数
	LLMFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dpboard_llm_fallbacks_total",
		Help: "Total insight generations that fell back to rule templates.",
	})

	// RequestDuration 各路由请求耗时
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dpboard_request_duration_seconds",
		Help:    "HTTP request duration by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// ObserveUpstream 记录一次上游请求结果
func ObserveUpstream(source string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(source, status).Inc()
}
