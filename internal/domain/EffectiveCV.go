package domain

import "time"

type CVSource string

const (
	CVSourceGA4      CVSource = "ga4"
	CVSourceHybrid   CVSource = "hybrid"
	CVSourceReviewed CVSource = "reviewed"
)

type EffectiveCVComponents struct {
	ManualTotal   int  `json:"manual_total"`
	GA4Total      int  `json:"ga4_total"`
	ReviewedTotal *int `json:"reviewed_total,omitempty"`
}

// EffectiveCVResult é o total de conversões confiável de um tenant no mês
type EffectiveCVResult struct {
	TenantID        string                `json:"tenant_id"`
	YearMonth       string                `json:"year_month"`
	Source          CVSource              `json:"source"`
	Total           int                   `json:"total"`
	Daily           map[string]int        `json:"daily"`
	Components      EffectiveCVComponents `json:"components"`
	BreakdownManual map[string]int        `json:"breakdown_manual"`
	HasOverrides    bool                  `json:"has_overrides"`
	Degraded        bool                  `json:"degraded,omitempty"`
}

// AutomatedDailyCounts guarda as contagens do feed por evento e por dia (YYYY-MM-DD)
type AutomatedDailyCounts struct {
	Counts   map[string]map[string]int `json:"counts"`
	Degraded bool                      `json:"degraded,omitempty"`
}

func NewAutomatedDailyCounts() *AutomatedDailyCounts {
	return &AutomatedDailyCounts{Counts: map[string]map[string]int{}}
}

func (a *AutomatedDailyCounts) Add(event, date string, count int) {
	if a.Counts == nil {
		a.Counts = map[string]map[string]int{}
	}

	if a.Counts[event] == nil {
		a.Counts[event] = map[string]int{}
	}

	a.Counts[event][date] += count
}

// EventTotal soma as contagens do evento no período
func (a *AutomatedDailyCounts) EventTotal(event string) int {
	if a == nil {
		return 0
	}

	total := 0
	for _, n := range a.Counts[event] {
		total += n
	}

	return total
}

func (a *AutomatedDailyCounts) Total() int {
	if a == nil {
		return 0
	}

	total := 0
	for event := range a.Counts {
		total += a.EventTotal(event)
	}

	return total
}

// DailyEventCountEntry é o cache persistido de um dia de contagens do feed
type DailyEventCountEntry struct {
	TenantID  string         `json:"tenant_id"`
	Date      string         `json:"date"`
	Counts    map[string]int `json:"counts"`
	UpdatedAt time.Time      `json:"updated_at"`
}
