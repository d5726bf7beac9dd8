package response

import "lop/dpboard/internal/app/domains/services/svanomaly"

// FromBaselines 从领域对象转换为基线摘要 DTO
func FromBaselines(baselines []*svanomaly.SupplierCostBaseline) []SupplierBaseline {
	out := make([]SupplierBaseline, 0, len(baselines))
	for _, b := range baselines {
		out = append(out, SupplierBaseline{
			Supplier:     b.Supplier,
			Baseline:     b.Baseline,
			Threshold:    b.Threshold,
			Confidence:   b.Confidence,
			Observations: b.Observations,
			Adaptive:     b.Adaptive,
			Usable:       b.Usable(),
		})
	}
	return out
}
