package svinsight

import "fmt"

// templateInsights 规则模板路径：直接由指标阈值推导，完全确定
func templateInsights(domain string, snap MetricSnapshot) []Insight {
	if snap.IsEmpty() {
		return []Insight{noDataInsight(domain)}
	}

	switch domain {
	case DomainCostVariance:
		return costVarianceInsights(snap)
	case DomainMarginRisk:
		return marginRiskInsights(snap)
	default:
		return dashboardInsights(snap)
	}
}

// noDataInsight 空数据不是错误，给一条信息级提示
func noDataInsight(domain string) Insight {
	return Insight{
		ID:          domain + "-no-data",
		Title:       "No operational data available",
		Description: "The upstream sources returned no products or shipments for this period.",
		Severity:    SeverityInfo,
		SuggestedActions: []string{
			"Verify the analytics data source connection and token",
			"Confirm the reporting window covers recent activity",
		},
		Source: SourceRules,
	}
}

func dashboardInsights(snap MetricSnapshot) []Insight {
	insights := make([]Insight, 0, 4)

	if snap.FulfillmentEfficiency < 80 {
		insights = append(insights, Insight{
			ID:          "dashboard-fulfillment-low",
			Title:       "Fulfillment efficiency below target",
			Description: fmt.Sprintf("Fulfillment efficiency is %.1f%%, below the 80%% operational target.", snap.FulfillmentEfficiency),
			Severity:    SeverityCritical,
			SuggestedActions: []string{
				"Review receiving workflows at underperforming warehouses",
				"Audit suppliers with repeated quantity discrepancies",
				"Escalate cancelled shipments with open purchase orders",
			},
			Source: SourceRules,
		})
	}

	if snap.AtRiskRate > 20 {
		insights = append(insights, Insight{
			ID:          "dashboard-at-risk-high",
			Title:       "Elevated at-risk shipment rate",
			Description: fmt.Sprintf("%.1f%% of shipments show quantity discrepancies or cancellations.", snap.AtRiskRate),
			Severity:    SeverityWarning,
			SuggestedActions: []string{
				"Prioritize reconciliation of discrepant shipments",
				"Contact suppliers behind the largest discrepancies",
			},
			Source: SourceRules,
		})
	}

	if snap.OrderVolumeGrowth < 0 {
		insights = append(insights, Insight{
			ID:          "dashboard-volume-decline",
			Title:       "Order volume declining",
			Description: fmt.Sprintf("Shipment volume changed %.1f%% versus the prior 30-day window.", snap.OrderVolumeGrowth),
			Severity:    SeverityWarning,
			SuggestedActions: []string{
				"Review demand forecasts with top brands",
				"Check for seasonal effects before adjusting capacity",
			},
			Source: SourceRules,
		})
	}

	if snap.InventoryHealth < 70 {
		insights = append(insights, Insight{
			ID:          "dashboard-inventory-health-low",
			Title:       "Inventory health degraded",
			Description: fmt.Sprintf("Only %.1f%% of SKUs are active and fulfillable.", snap.InventoryHealth),
			Severity:    SeverityWarning,
			SuggestedActions: []string{
				"Review inactive SKUs for discontinuation or reactivation",
				"Flag slow-moving inventory for clearance",
			},
			Source: SourceRules,
		})
	}

	if len(insights) == 0 {
		insights = append(insights, Insight{
			ID:          "dashboard-healthy",
			Title:       "Operations within normal range",
			Description: fmt.Sprintf("Fulfillment efficiency %.1f%%, inventory health %.1f%%. No thresholds breached.", snap.FulfillmentEfficiency, snap.InventoryHealth),
			Severity:    SeverityInfo,
			SuggestedActions: []string{
				"Continue monitoring supplier cost baselines",
			},
			Source: SourceRules,
		})
	}

	return insights
}

func costVarianceInsights(snap MetricSnapshot) []Insight {
	if snap.AnomalyCount == 0 {
		return []Insight{{
			ID:          "cost-variance-stable",
			Title:       "Supplier costs stable",
			Description: "No cost anomalies detected against supplier baselines this period.",
			Severity:    SeverityInfo,
			SuggestedActions: []string{
				"Keep baselines fresh by reviewing supplier contracts quarterly",
			},
			Source: SourceRules,
		}}
	}

	severity := SeverityWarning
	if snap.AnomalyImpact > 10000 {
		severity = SeverityCritical
	}

	return []Insight{{
		ID:              "cost-variance-anomalies",
		Title:           fmt.Sprintf("%d cost anomalies detected", snap.AnomalyCount),
		Description:     fmt.Sprintf("Detected %d shipments with anomalous unit costs, estimated impact $%.0f.", snap.AnomalyCount, snap.AnomalyImpact),
		Severity:        severity,
		FinancialImpact: snap.AnomalyImpact,
		SuggestedActions: []string{
			"Verify invoices for flagged shipments against purchase orders",
			"Renegotiate rates with suppliers exceeding their baseline",
			"Investigate warehouses with high discrepancy rates",
		},
		Source: SourceRules,
	}}
}

func marginRiskInsights(snap MetricSnapshot) []Insight {
	if snap.HighRiskBrands == 0 {
		return []Insight{{
			ID:          "margin-risk-low",
			Title:       "No high-risk brands",
			Description: "No brand currently exceeds the composite margin risk thresholds.",
			Severity:    SeverityInfo,
			SuggestedActions: []string{
				"Re-run margin scoring after the next inventory sync",
			},
			Source: SourceRules,
		}}
	}

	return []Insight{{
		ID:              "margin-risk-brands",
		Title:           fmt.Sprintf("%d brands at elevated margin risk", snap.HighRiskBrands),
		Description:     fmt.Sprintf("Composite scoring flags %d brands, annualized exposure $%.0f.", snap.HighRiskBrands, snap.RiskImpact),
		Severity:        SeverityCritical,
		FinancialImpact: snap.RiskImpact,
		SuggestedActions: []string{
			"Review SKU portfolios of flagged brands",
			"Reduce inactive inventory carrying costs",
			"Audit brand-level shipment discrepancies",
		},
		Source: SourceRules,
	}}
}
