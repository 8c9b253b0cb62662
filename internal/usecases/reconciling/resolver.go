package reconciling

import (
	"github.com/vfg2006/cv-report-api/internal/domain"
)

// ResolverInput reúne as quatro fontes de um tenant no mês
type ResolverInput struct {
	TenantID  string
	YearMonth string
	Days      []string // todos os dias do mês, YYYY-MM-DD

	Routes    []*domain.CVRoute
	Manual    map[string]domain.ManualCVMonth // rota -> dia -> lançamento
	Automated *domain.AutomatedDailyCounts
	Review    *domain.ReviewSummary

	OnlyConfiguredEvents bool
	PhoneEventName       string
	Degraded             bool
}

// ResolveEffectiveCV decide o total de conversões do mês em ordem estrita de prioridade:
// revisado, automatizado puro (sem rotas habilitadas) e híbrido.
func ResolveEffectiveCV(in ResolverInput) *domain.EffectiveCVResult {
	result := &domain.EffectiveCVResult{
		TenantID:        in.TenantID,
		YearMonth:       in.YearMonth,
		Daily:           make(map[string]int, len(in.Days)),
		BreakdownManual: map[string]int{},
		Degraded:        in.Degraded || (in.Automated != nil && in.Automated.Degraded),
	}

	enabled := domain.EnabledRoutes(in.Routes)
	routeKeys := make(map[string]bool, len(in.Routes))
	for _, route := range in.Routes {
		routeKeys[route.RouteKey] = true
	}

	for _, route := range enabled {
		month := in.Manual[route.RouteKey]
		if month.HasOverrides() {
			result.HasOverrides = true
			result.Components.ManualTotal += month.Sum()
		}
	}
	result.Components.GA4Total = in.Automated.Total()

	switch {
	case in.Review.HasReview():
		resolveReviewed(in, result)
	case len(enabled) == 0:
		resolveAutomated(in, result)
	default:
		resolveHybrid(in, enabled, routeKeys, result)
	}

	total := 0
	for _, day := range in.Days {
		if result.Daily[day] < 0 {
			result.Daily[day] = 0
		}
		total += result.Daily[day]
	}
	result.Total = total

	return result
}

func resolveReviewed(in ResolverInput, result *domain.EffectiveCVResult) {
	result.Source = domain.CVSourceReviewed

	reviewed := 0
	for _, day := range in.Days {
		n := in.Review.ValidByDay[day]
		result.Daily[day] = n
		reviewed += n
	}
	result.Components.ReviewedTotal = &reviewed
}

func resolveAutomated(in ResolverInput, result *domain.EffectiveCVResult) {
	result.Source = domain.CVSourceGA4

	for _, day := range in.Days {
		result.Daily[day] = 0
	}

	if in.Automated == nil {
		return
	}

	for _, byDay := range in.Automated.Counts {
		for day, n := range byDay {
			if _, ok := result.Daily[day]; ok {
				result.Daily[day] += n
			}
		}
	}
}

// resolveHybrid soma por rota o manual (quando há qualquer lançamento no mês) ou o
// automatizado, e acrescenta os eventos não configurados. Rotas desabilitadas ficam de fora.
func resolveHybrid(in ResolverInput, enabled []*domain.CVRoute, routeKeys map[string]bool, result *domain.EffectiveCVResult) {
	result.Source = domain.CVSourceGA4

	for _, day := range in.Days {
		result.Daily[day] = 0
	}

	for _, route := range enabled {
		month := in.Manual[route.RouteKey]

		if month.HasOverrides() {
			result.Source = domain.CVSourceHybrid
			result.BreakdownManual[route.RouteKey] = month.Sum()

			for _, day := range in.Days {
				if n, ok := month[day].Value(); ok {
					result.Daily[day] += n
				}
			}
			continue
		}

		if in.OnlyConfiguredEvents {
			continue
		}

		addEvent(in, route.RouteKey, result)
	}

	if in.Automated == nil {
		return
	}

	for event := range in.Automated.Counts {
		if routeKeys[event] {
			continue
		}

		if in.OnlyConfiguredEvents && event != in.PhoneEventName {
			continue
		}

		addEvent(in, event, result)
	}
}

func addEvent(in ResolverInput, event string, result *domain.EffectiveCVResult) {
	if in.Automated == nil {
		return
	}

	for day, n := range in.Automated.Counts[event] {
		if _, ok := result.Daily[day]; ok {
			result.Daily[day] += n
		}
	}
}
