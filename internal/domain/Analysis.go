package domain

type PeriodAnalysis struct {
	Effective  *EffectiveCVResult                       `json:"effective"`
	Dimensions map[Dimension]*DimensionAllocationResult `json:"dimensions"`
}

// CVAnalysis compara o período pedido com o mês anterior
type CVAnalysis struct {
	Tenant           string          `json:"tenant"`
	Period           string          `json:"period"`
	ComparisonPeriod string          `json:"comparisonPeriod"`
	Current          *PeriodAnalysis `json:"current"`
	Comparison       *PeriodAnalysis `json:"comparison"`
}
