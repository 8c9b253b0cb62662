package reconciling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cv-report-api/infrastructure/cache"
	cachemocks "github.com/vfg2006/cv-report-api/infrastructure/cache/mocks"
	ga4mocks "github.com/vfg2006/cv-report-api/infrastructure/integrator/ga4/mocks"
	"github.com/vfg2006/cv-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	tenantRepo     *mocks.MockTenantRepository
	routeRepo      *mocks.MockCVRouteRepository
	manualRepo     *mocks.MockManualCVRepository
	reviewRepo     *mocks.MockCVReviewRepository
	eventCountRepo *mocks.MockEventCountRepository
	ga4Service     *ga4mocks.MockGA4Integrator
}

var (
	testTenant = &domain.Tenant{ID: "t1", Name: "Loja A", GA4PropertyID: "123", Status: domain.TenantStatusActive}
	testNow    = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
)

func testConfig() *config.Config {
	return &config.Config{
		GA4: config.GA4{
			SettleDays:     3,
			DailyCountsTTL: 3 * time.Hour,
		},
		CVDefaults: config.CVDefaults{PhoneEventName: "phone_tap"},
	}
}

func newTestService(t *testing.T, resultCache cache.ResultCache) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		tenantRepo:     mocks.NewMockTenantRepository(ctrl),
		routeRepo:      mocks.NewMockCVRouteRepository(ctrl),
		manualRepo:     mocks.NewMockManualCVRepository(ctrl),
		reviewRepo:     mocks.NewMockCVReviewRepository(ctrl),
		eventCountRepo: mocks.NewMockEventCountRepository(ctrl),
		ga4Service:     ga4mocks.NewMockGA4Integrator(ctrl),
	}

	service := NewService(testConfig(), m.tenantRepo, m.routeRepo, m.manualRepo, m.reviewRepo, m.eventCountRepo, m.ga4Service, resultCache)
	service.now = func() time.Time { return testNow }

	return service, m
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestService_ResolveValidation(t *testing.T) {
	service, _ := newTestService(t, cache.NewResultCache(config.ResultCache{}))

	_, err := service.Resolve(context.Background(), "", "2025-03")
	assert.ErrorIs(t, err, domain.ErrTenantRequired)

	_, err = service.Resolve(context.Background(), "t1", "03-2025")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestService_ResolveTenantNotFound(t *testing.T) {
	service, m := newTestService(t, cache.NewResultCache(config.ResultCache{}))

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t9").Return(nil, nil)

	result, err := service.Resolve(context.Background(), "t9", "2025-03")

	assert.Nil(t, result)
	require.ErrorIs(t, err, domain.ErrTenantNotFound)

	var cvErr *domain.CVError
	require.ErrorAs(t, err, &cvErr)
	assert.Equal(t, "t9", cvErr.TenantID)
}

func TestService_ResolveCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	resultCache := cachemocks.NewMockResultCache(ctrl)
	service, _ := newTestService(t, resultCache)

	cached := &domain.EffectiveCVResult{TenantID: "t1", YearMonth: "2025-03", Total: 42}
	resultCache.EXPECT().Get("effective:t1:2025-03").Return(cached, true)

	result, err := service.Resolve(context.Background(), "t1", "2025-03")

	require.NoError(t, err)
	assert.Same(t, cached, result)
}

func TestService_ResolveReadThrough(t *testing.T) {
	resultCache := cache.NewResultCache(config.ResultCache{})
	service, m := newTestService(t, resultCache)

	stored := make([]*domain.DailyEventCountEntry, 0)
	for d := 1; d <= 7; d++ {
		stored = append(stored, &domain.DailyEventCountEntry{
			TenantID:  "t1",
			Date:      day(d).Format(time.DateOnly),
			Counts:    map[string]int{"form_submit": 1},
			UpdatedAt: testNow.Add(-48 * time.Hour),
		})
	}
	// dia 8 ainda em assentamento e vencido, dia 9 ausente, dia 10 é hoje
	stored = append(stored, &domain.DailyEventCountEntry{
		TenantID:  "t1",
		Date:      "2025-03-08",
		Counts:    map[string]int{"form_submit": 9},
		UpdatedAt: testNow.Add(-5 * time.Hour),
	})

	fresh := domain.NewAutomatedDailyCounts()
	fresh.Add("form_submit", "2025-03-08", 1)
	fresh.Add("form_submit", "2025-03-09", 2)
	fresh.Add("form_submit", "2025-03-10", 3)

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(testTenant, nil)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return([]*domain.CVRoute{route("form_submit", true)}, nil)
	m.manualRepo.EXPECT().ListByMonth(gomock.Any(), "t1", "2025-03").Return(nil, nil)
	m.reviewRepo.EXPECT().SummarizeMonth(gomock.Any(), "t1", "2025-03").Return(&domain.ReviewSummary{ValidByDay: map[string]int{}}, nil)
	m.eventCountRepo.EXPECT().GetByDateRange(gomock.Any(), "t1", day(1), day(10)).Return(stored, nil)
	m.ga4Service.EXPECT().
		DailyEventCounts(gomock.Any(), testTenant, day(8), day(10), []string{"form_submit", "phone_tap"}).
		Return(fresh)

	saved := map[string]int{}
	m.eventCountRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.DailyEventCountEntry) error {
			saved[entry.Date] = entry.Counts["form_submit"]
			return nil
		}).Times(2)

	result, err := service.Resolve(context.Background(), "t1", "2025-03")

	require.NoError(t, err)
	assert.Equal(t, domain.CVSourceGA4, result.Source)
	assert.Equal(t, 13, result.Total)
	assert.False(t, result.Degraded)
	assert.Equal(t, map[string]int{"2025-03-08": 1, "2025-03-09": 2}, saved, "o dia corrente não é gravado")

	cached, found := resultCache.Get("effective:t1:2025-03")
	require.True(t, found)
	assert.Same(t, result, cached)
}

func TestService_ResolveDegradedIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	resultCache := cachemocks.NewMockResultCache(ctrl)
	service, m := newTestService(t, resultCache)

	stored := []*domain.DailyEventCountEntry{
		{TenantID: "t1", Date: "2025-02-03", Counts: map[string]int{"form_submit": 4}, UpdatedAt: testNow.Add(-720 * time.Hour)},
	}

	resultCache.EXPECT().Get("effective:t1:2025-02").Return(nil, false)
	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(testTenant, nil)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return(nil, nil)
	m.manualRepo.EXPECT().ListByMonth(gomock.Any(), "t1", "2025-02").Return(nil, errors.New("connection reset"))
	m.reviewRepo.EXPECT().SummarizeMonth(gomock.Any(), "t1", "2025-02").Return(nil, nil)
	m.eventCountRepo.EXPECT().GetByDateRange(gomock.Any(), "t1", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)).Return(stored, nil)
	m.ga4Service.EXPECT().
		DailyEventCounts(gomock.Any(), testTenant, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), []string{"phone_tap"}).
		Return(&domain.AutomatedDailyCounts{Degraded: true})

	result, err := service.Resolve(context.Background(), "t1", "2025-02")

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, domain.CVSourceGA4, result.Source)
	assert.Equal(t, 4, result.Total, "dias já gravados continuam valendo")
}

func TestService_RefreshIgnoresCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	resultCache := cachemocks.NewMockResultCache(ctrl)
	service, m := newTestService(t, resultCache)
	service.now = func() time.Time { return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) }

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(testTenant, nil)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return(nil, nil)
	m.manualRepo.EXPECT().ListByMonth(gomock.Any(), "t1", "2025-03").Return(nil, nil)
	m.reviewRepo.EXPECT().SummarizeMonth(gomock.Any(), "t1", "2025-03").Return(nil, nil)
	resultCache.EXPECT().Get("effective:t1:2025-03").Return(nil, false)
	resultCache.EXPECT().Invalidate(domain.CacheInvalidation{TenantID: "t1", Periods: []string{"2025-03"}, Reason: "cv_recalculated"}).Return(0)
	resultCache.EXPECT().Set("effective:t1:2025-03", gomock.Any(), []string{"tenant:t1", "tenant:t1:period:2025-03"})

	result, err := service.Refresh(context.Background(), "t1", "2025-03")

	require.NoError(t, err)
	assert.Zero(t, result.Total, "mês futuro não consulta o feed")
}

func TestService_RefreshDropsDependentResultsWhenTotalChanges(t *testing.T) {
	resultCache := cache.NewResultCache(config.ResultCache{TTL: time.Hour, CleanupInterval: time.Hour})
	service, m := newTestService(t, resultCache)
	service.now = func() time.Time { return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) }

	effectiveKey := domain.EffectiveCVCacheKey("t1", "2025-03")
	allocationKey := domain.AllocationCacheKey("t1", "2025-03", domain.DimensionDevice)
	analysisKey := domain.AnalysisCacheKey("t1", "2025-03")
	nextAnalysisKey := domain.AnalysisCacheKey("t1", "2025-04")
	otherAllocationKey := domain.AllocationCacheKey("t1", "2025-01", domain.DimensionDevice)

	resultCache.Set(effectiveKey, &domain.EffectiveCVResult{TenantID: "t1", YearMonth: "2025-03", Total: 10}, cache.ResultTags("t1", "2025-03"))
	resultCache.Set(allocationKey, &domain.DimensionAllocationResult{ConfirmedTotal: 10}, cache.ResultTags("t1", "2025-03"))
	resultCache.Set(analysisKey, &domain.CVAnalysis{}, append(cache.ResultTags("t1", "2025-03"), cache.ResultTags("t1", "2025-02")...))
	resultCache.Set(nextAnalysisKey, &domain.CVAnalysis{}, append(cache.ResultTags("t1", "2025-04"), cache.ResultTags("t1", "2025-03")...))
	resultCache.Set(otherAllocationKey, &domain.DimensionAllocationResult{ConfirmedTotal: 3}, cache.ResultTags("t1", "2025-01"))

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(testTenant, nil).Times(2)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return(nil, nil).Times(2)
	m.manualRepo.EXPECT().ListByMonth(gomock.Any(), "t1", "2025-03").Return(nil, nil).Times(2)
	gomock.InOrder(
		m.reviewRepo.EXPECT().SummarizeMonth(gomock.Any(), "t1", "2025-03").
			Return(&domain.ReviewSummary{Reviewed: 10, Valid: 10, ValidByDay: map[string]int{"2025-03-05": 10}}, nil),
		m.reviewRepo.EXPECT().SummarizeMonth(gomock.Any(), "t1", "2025-03").
			Return(&domain.ReviewSummary{Reviewed: 12, Valid: 12, ValidByDay: map[string]int{"2025-03-05": 12}}, nil),
	)

	// mesmo total: dependentes continuam no cache
	result, err := service.Refresh(context.Background(), "t1", "2025-03")
	require.NoError(t, err)
	require.Equal(t, 10, result.Total)

	_, found := resultCache.Get(allocationKey)
	assert.True(t, found)

	// total mudou: alocação e análises que usam o período saem
	result, err = service.Refresh(context.Background(), "t1", "2025-03")
	require.NoError(t, err)
	require.Equal(t, 12, result.Total)

	for _, key := range []string{allocationKey, analysisKey, nextAnalysisKey} {
		_, found := resultCache.Get(key)
		assert.False(t, found, key)
	}

	_, found = resultCache.Get(otherAllocationKey)
	assert.True(t, found, "outros períodos não são afetados")

	cached, found := resultCache.Get(effectiveKey)
	require.True(t, found)
	assert.Same(t, result, cached)
}
