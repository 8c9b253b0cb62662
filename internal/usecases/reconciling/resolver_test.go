package reconciling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

func marchDays(t *testing.T) []string {
	t.Helper()

	days, err := utils.MonthDays("2025-03")
	require.NoError(t, err)
	return days
}

func automated(counts map[string]map[string]int) *domain.AutomatedDailyCounts {
	a := domain.NewAutomatedDailyCounts()
	for event, days := range counts {
		for day, n := range days {
			a.Add(event, day, n)
		}
	}
	return a
}

func route(key string, enabled bool) *domain.CVRoute {
	return &domain.CVRoute{TenantID: "t1", RouteKey: key, Label: key, Enabled: enabled}
}

func TestResolveEffectiveCV(t *testing.T) {
	days := marchDays(t)

	tests := []struct {
		name       string
		in         ResolverInput
		wantSource domain.CVSource
		wantTotal  int
		validate   func(t *testing.T, result *domain.EffectiveCVResult)
	}{
		{
			name: "Manual de março substitui o automatizado da rota",
			in: ResolverInput{
				Routes: []*domain.CVRoute{route("form_submit", true)},
				Manual: map[string]domain.ManualCVMonth{
					"form_submit": {"2025-03-01": domain.Override(3), "2025-03-15": domain.Override(2)},
				},
				Automated: automated(map[string]map[string]int{
					"form_submit": {"2025-03-01": 5, "2025-03-02": 4, "2025-03-15": 1},
				}),
			},
			wantSource: domain.CVSourceHybrid,
			wantTotal:  5,
			validate: func(t *testing.T, result *domain.EffectiveCVResult) {
				assert.Equal(t, 3, result.Daily["2025-03-01"])
				assert.Equal(t, 0, result.Daily["2025-03-02"])
				assert.Equal(t, 2, result.Daily["2025-03-15"])
				assert.Equal(t, map[string]int{"form_submit": 5}, result.BreakdownManual)
				assert.Equal(t, 5, result.Components.ManualTotal)
				assert.Equal(t, 10, result.Components.GA4Total)
				assert.True(t, result.HasOverrides)
				assert.Nil(t, result.Components.ReviewedTotal)
			},
		},
		{
			name: "Rotas sem manual usam o automatizado",
			in: ResolverInput{
				Routes: []*domain.CVRoute{route("form_submit", true), route("line_click", true)},
				Automated: automated(map[string]map[string]int{
					"form_submit": {"2025-03-01": 2},
					"line_click":  {"2025-03-03": 1},
				}),
			},
			wantSource: domain.CVSourceGA4,
			wantTotal:  3,
		},
		{
			name: "Zero explícito torna a rota manual",
			in: ResolverInput{
				Routes: []*domain.CVRoute{route("form_submit", true)},
				Manual: map[string]domain.ManualCVMonth{
					"form_submit": {"2025-03-10": domain.Override(0)},
				},
				Automated: automated(map[string]map[string]int{
					"form_submit": {"2025-03-01": 7},
				}),
			},
			wantSource: domain.CVSourceHybrid,
			wantTotal:  0,
		},
		{
			name: "Eventos não configurados entram por cima",
			in: ResolverInput{
				Routes: []*domain.CVRoute{route("form_submit", true)},
				Automated: automated(map[string]map[string]int{
					"form_submit":   {"2025-03-01": 1},
					"generate_lead": {"2025-03-02": 2},
				}),
			},
			wantSource: domain.CVSourceGA4,
			wantTotal:  3,
		},
		{
			name: "Somente eventos configurados suprime o automatizado e mantém o telefone",
			in: ResolverInput{
				Routes: []*domain.CVRoute{route("form_submit", true), route("line_click", true)},
				Manual: map[string]domain.ManualCVMonth{
					"line_click": {"2025-03-04": domain.Override(4)},
				},
				Automated: automated(map[string]map[string]int{
					"form_submit":   {"2025-03-01": 6},
					"line_click":    {"2025-03-01": 9},
					"generate_lead": {"2025-03-02": 2},
					"phone_tap":     {"2025-03-05": 3},
				}),
				OnlyConfiguredEvents: true,
				PhoneEventName:       "phone_tap",
			},
			wantSource: domain.CVSourceHybrid,
			wantTotal:  7,
			validate: func(t *testing.T, result *domain.EffectiveCVResult) {
				assert.Equal(t, 4, result.Daily["2025-03-04"])
				assert.Equal(t, 3, result.Daily["2025-03-05"])
				assert.Zero(t, result.Daily["2025-03-01"])
			},
		},
		{
			name: "Rotas desabilitadas não contam nem como extra",
			in: ResolverInput{
				Routes: []*domain.CVRoute{route("form_submit", true), route("line_click", false)},
				Manual: map[string]domain.ManualCVMonth{
					"line_click": {"2025-03-04": domain.Override(8)},
				},
				Automated: automated(map[string]map[string]int{
					"form_submit": {"2025-03-01": 1},
					"line_click":  {"2025-03-01": 5},
				}),
			},
			wantSource: domain.CVSourceGA4,
			wantTotal:  1,
			validate: func(t *testing.T, result *domain.EffectiveCVResult) {
				assert.False(t, result.HasOverrides)
				assert.Zero(t, result.Components.ManualTotal)
			},
		},
		{
			name: "Sem rotas habilitadas soma todos os eventos",
			in: ResolverInput{
				Routes: []*domain.CVRoute{route("form_submit", false)},
				Automated: automated(map[string]map[string]int{
					"form_submit":   {"2025-03-01": 1},
					"generate_lead": {"2025-03-02": 2, "2025-04-01": 9},
				}),
			},
			wantSource: domain.CVSourceGA4,
			wantTotal:  3,
		},
		{
			name: "Revisão tem precedência sobre manual e automatizado",
			in: ResolverInput{
				Routes: []*domain.CVRoute{route("form_submit", true)},
				Manual: map[string]domain.ManualCVMonth{
					"form_submit": {"2025-03-01": domain.Override(30)},
				},
				Automated: automated(map[string]map[string]int{
					"form_submit": {"2025-03-01": 50},
				}),
				Review: &domain.ReviewSummary{
					Reviewed:   4,
					Valid:      3,
					Invalid:    1,
					ValidByDay: map[string]int{"2025-03-01": 2, "2025-03-20": 1},
				},
			},
			wantSource: domain.CVSourceReviewed,
			wantTotal:  3,
			validate: func(t *testing.T, result *domain.EffectiveCVResult) {
				require.NotNil(t, result.Components.ReviewedTotal)
				assert.Equal(t, 3, *result.Components.ReviewedTotal)
				assert.Equal(t, 1, result.Daily["2025-03-20"])
			},
		},
		{
			name: "Revisão sem linhas revisadas não conta",
			in: ResolverInput{
				Routes:    []*domain.CVRoute{route("form_submit", true)},
				Automated: automated(map[string]map[string]int{"form_submit": {"2025-03-01": 2}}),
				Review:    &domain.ReviewSummary{ValidByDay: map[string]int{}},
			},
			wantSource: domain.CVSourceGA4,
			wantTotal:  2,
		},
		{
			name: "Automatizado degradado marca o resultado",
			in: ResolverInput{
				Automated: &domain.AutomatedDailyCounts{Degraded: true},
			},
			wantSource: domain.CVSourceGA4,
			wantTotal:  0,
			validate: func(t *testing.T, result *domain.EffectiveCVResult) {
				assert.True(t, result.Degraded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.TenantID = "t1"
			tt.in.YearMonth = "2025-03"
			tt.in.Days = days

			result := ResolveEffectiveCV(tt.in)

			assert.Equal(t, tt.wantSource, result.Source)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Len(t, result.Daily, len(days))
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

// Propriedades verificadas com entradas aleatórias: total igual à soma diária, valores
// nunca negativos, rota manual ignora o automatizado e revisão conta apenas válidos.
func TestResolveEffectiveCV_Properties(t *testing.T) {
	days := marchDays(t)
	rng := rand.New(rand.NewSource(7))
	events := []string{"form_submit", "line_click", "phone_tap", "generate_lead"}

	for i := 0; i < 500; i++ {
		routes := []*domain.CVRoute{}
		for _, event := range events[:rng.Intn(3)] {
			routes = append(routes, route(event, true))
		}

		auto := domain.NewAutomatedDailyCounts()
		for _, event := range events {
			for j := 0; j < rng.Intn(6); j++ {
				auto.Add(event, days[rng.Intn(len(days))], rng.Intn(10))
			}
		}

		manual := map[string]domain.ManualCVMonth{}
		for _, r := range routes {
			if rng.Intn(2) == 0 {
				continue
			}
			month := domain.ManualCVMonth{}
			for j := 0; j <= rng.Intn(4); j++ {
				month[days[rng.Intn(len(days))]] = domain.Override(rng.Intn(100))
			}
			manual[r.RouteKey] = month
		}

		in := ResolverInput{
			TenantID:  "t1",
			YearMonth: "2025-03",
			Days:      days,
			Routes:    routes,
			Manual:    manual,
			Automated: auto,
		}

		result := ResolveEffectiveCV(in)

		sum := 0
		for _, n := range result.Daily {
			require.GreaterOrEqual(t, n, 0)
			sum += n
		}
		require.Equal(t, sum, result.Total)

		if len(routes) == 0 {
			require.Equal(t, domain.CVSourceGA4, result.Source)
			require.Equal(t, auto.Total(), result.Total)
			continue
		}

		expected := 0
		for event := range auto.Counts {
			managed := false
			for _, r := range routes {
				if r.RouteKey == event {
					managed = manual[event].HasOverrides()
				}
			}
			if !managed {
				expected += auto.EventTotal(event)
			}
		}
		for _, month := range manual {
			expected += month.Sum()
		}
		require.Equal(t, expected, result.Total)

		if len(manual) == 0 {
			require.Equal(t, domain.CVSourceGA4, result.Source)
		} else {
			require.Equal(t, domain.CVSourceHybrid, result.Source)
		}

		valid := rng.Intn(5)
		in.Review = &domain.ReviewSummary{
			Reviewed:   valid + 1,
			Valid:      valid,
			Invalid:    1,
			ValidByDay: map[string]int{days[0]: valid},
		}
		reviewed := ResolveEffectiveCV(in)
		require.Equal(t, domain.CVSourceReviewed, reviewed.Source)
		require.Equal(t, valid, reviewed.Total)
	}
}
