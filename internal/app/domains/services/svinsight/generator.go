package svinsight

import (
	"context"
	"fmt"
	"strings"

	"lop/dpboard/internal/app/pkg/logger"
	"lop/dpboard/internal/app/pkg/metrics"
)

// Completer LLM 协作方接口（infra/llm.Client 实现）
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Generator 洞察生成器
// 规则模板是基线路径；配置了 LLM 时叠加模型生成的建议，
// LLM 的任何失败都在本层吸收，绝不向调用方传播
type Generator struct {
	completer Completer
	log       logger.Logger
}

// NewGenerator 创建洞察生成器，completer 为 nil 时只走规则模板
func NewGenerator(completer Completer, log logger.Logger) *Generator {
	return &Generator{
		completer: completer,
		log:       log,
	}
}

// Generate 生成指定域的洞察列表
func (g *Generator) Generate(ctx context.Context, domain string, snap MetricSnapshot) []Insight {
	insights := templateInsights(domain, snap)

	if g.completer == nil {
		return insights
	}

	recommendations, err := g.recommend(ctx, domain, snap)
	if err != nil {
		// 降级：网络错误、非 2xx、内容不可解析都回到规则模板
		metrics.LLMFallbacksTotal.Inc()
		g.log.Warnf(ctx, "llm recommendation failed, falling back to rule templates: %v", err)
		return insights
	}

	// 用模型建议替换主洞察的固定动作，事实性指标仍由规则给出
	if len(insights) > 0 {
		insights[0].SuggestedActions = recommendations
		insights[0].Source = SourceLLM
	}

	return insights
}

// recommend 调用 LLM 并解析为建议列表
func (g *Generator) recommend(ctx context.Context, domain string, snap MetricSnapshot) ([]string, error) {
	systemPrompt, userPrompt := buildPrompts(domain, snap)

	content, err := g.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return ParseRecommendations(content)
}

// buildPrompts 把指标快照嵌入结构化提示词
func buildPrompts(domain string, snap MetricSnapshot) (string, string) {
	systemPrompt := `You are a 3PL operations analyst. Given warehouse and fulfillment metrics,
respond with 1-4 short, specific operational recommendations.
One recommendation per line, plain text, no numbering, no markdown, each 10-150 characters.`

	var sb strings.Builder
	fmt.Fprintf(&sb, "Focus area: %s\n", domain)
	fmt.Fprintf(&sb, "Products: %d (inventory health %.1f%%)\n", snap.TotalProducts, snap.InventoryHealth)
	fmt.Fprintf(&sb, "Shipments: %d (fulfillment efficiency %.1f%%, at-risk rate %.1f%%)\n", snap.TotalShipments, snap.FulfillmentEfficiency, snap.AtRiskRate)
	fmt.Fprintf(&sb, "Order volume growth: %.1f%%\n", snap.OrderVolumeGrowth)
	fmt.Fprintf(&sb, "Cost anomalies: %d (impact $%.0f)\n", snap.AnomalyCount, snap.AnomalyImpact)
	fmt.Fprintf(&sb, "High-risk brands: %d (exposure $%.0f)\n", snap.HighRiskBrands, snap.RiskImpact)

	return systemPrompt, sb.String()
}
