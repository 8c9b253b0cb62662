package domain

type Dimension string

const (
	DimensionDevice  Dimension = "device"
	DimensionChannel Dimension = "channel"
	DimensionAge     Dimension = "age"
	DimensionRegion  Dimension = "region"
	DimensionPage    Dimension = "page"
)

// AnalysisDimensions é a ordem em que as dimensões são calculadas na análise
var AnalysisDimensions = []Dimension{
	DimensionDevice,
	DimensionChannel,
	DimensionAge,
	DimensionRegion,
	DimensionPage,
}

// GA4Name retorna o nome da dimensão na Data API
func (d Dimension) GA4Name() string {
	switch d {
	case DimensionDevice:
		return "deviceCategory"
	case DimensionChannel:
		return "sessionDefaultChannelGroup"
	case DimensionAge:
		return "userAgeBracket"
	case DimensionRegion:
		return "region"
	case DimensionPage:
		return "pagePath"
	default:
		return ""
	}
}

func (d Dimension) IsValid() bool {
	return d.GA4Name() != ""
}

type AllocationStatus string

const (
	AllocationStatusNoData      AllocationStatus = "no_data"
	AllocationStatusFallbackGA4 AllocationStatus = "fallback_ga4"
	AllocationStatusOK          AllocationStatus = "ok"
)

// DimensionBreakdownRow é a linha bruta do feed para um valor de dimensão
type DimensionBreakdownRow struct {
	Label      string `json:"label"`
	Sessions   int    `json:"sessions"`
	Users      int    `json:"users"`
	Pageviews  int    `json:"pageviews"`
	EventCount int    `json:"event_count"`
}

type DimensionAllocationRow struct {
	Label            string  `json:"label"`
	Sessions         int     `json:"sessions"`
	Users            int     `json:"users"`
	Pageviews        int     `json:"pageviews"`
	GA4Count         int     `json:"ga4_count"`
	GA4Ratio         float64 `json:"ga4_ratio"`
	ReallocatedCount int     `json:"reallocated_count"`
	ReallocatedCVR   float64 `json:"reallocated_cvr"`
}

// DimensionAllocationResult distribui o total confirmado entre os valores da dimensão
type DimensionAllocationResult struct {
	Dimension       Dimension                `json:"dimension"`
	Status          AllocationStatus         `json:"status"`
	ConfirmedTotal  int                      `json:"confirmed_total"`
	GA4Total        int                      `json:"ga4_total"`
	ConfidenceRatio float64                  `json:"confidence_ratio"`
	Rows            []DimensionAllocationRow `json:"rows"`
}

// ReallocatedSum soma as contagens redistribuídas
func (r *DimensionAllocationResult) ReallocatedSum() int {
	total := 0
	for _, row := range r.Rows {
		total += row.ReallocatedCount
	}

	return total
}
