package manualcv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/cv-report-api/infrastructure/cache/mocks"
	"github.com/vfg2006/cv-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	tenantRepo *mocks.MockTenantRepository
	routeRepo  *mocks.MockCVRouteRepository
	manualRepo *mocks.MockManualCVRepository
	cache      *cachemocks.MockResultCache
}

func newTestService(t *testing.T) (ManualCVService, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		tenantRepo: mocks.NewMockTenantRepository(ctrl),
		routeRepo:  mocks.NewMockCVRouteRepository(ctrl),
		manualRepo: mocks.NewMockManualCVRepository(ctrl),
		cache:      cachemocks.NewMockResultCache(ctrl),
	}

	return NewService(m.tenantRepo, m.routeRepo, m.manualRepo, m.cache), m
}

var testRoutes = []*domain.CVRoute{
	{TenantID: "t1", RouteKey: "form_submit", Enabled: true},
	{TenantID: "t1", RouteKey: "line_click", Enabled: false},
}

func TestSplitItems(t *testing.T) {
	keys := []string{"form_submit", "line_click"}

	tests := []struct {
		name        string
		items       []domain.ManualCVItem
		wantErr     error
		wantUpserts int
		wantDeletes int
	}{
		{
			name: "Override e Unset",
			items: []domain.ManualCVItem{
				{Date: "2025-03-01", Route: "form_submit", Count: domain.Override(3)},
				{Date: "2025-03-02", Route: "form_submit", Count: domain.Override(0)},
				{Date: "2025-03-03", Route: "line_click", Count: domain.Unset()},
			},
			wantUpserts: 2,
			wantDeletes: 1,
		},
		{
			name:    "Data fora do mês",
			items:   []domain.ManualCVItem{{Date: "2025-04-01", Route: "form_submit", Count: domain.Override(1)}},
			wantErr: domain.ErrDateOutsideMonth,
		},
		{
			name:    "Data inválida",
			items:   []domain.ManualCVItem{{Date: "2025-03-32", Route: "form_submit", Count: domain.Override(1)}},
			wantErr: domain.ErrDateOutsideMonth,
		},
		{
			name:    "Rota não configurada",
			items:   []domain.ManualCVItem{{Date: "2025-03-01", Route: "chat_open", Count: domain.Override(1)}},
			wantErr: domain.ErrUnknownRoute,
		},
		{
			name: "Contagem acima do limite rejeita o lote",
			items: []domain.ManualCVItem{
				{Date: "2025-03-01", Route: "form_submit", Count: domain.Override(2)},
				{Date: "2025-03-02", Route: "form_submit", Count: domain.Override(100)},
			},
			wantErr: domain.ErrInvalidManualCount,
		},
		{
			name:    "Contagem negativa",
			items:   []domain.ManualCVItem{{Date: "2025-03-01", Route: "form_submit", Count: domain.Override(-1)}},
			wantErr: domain.ErrInvalidManualCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upserts, deletes, err := SplitItems("t1", "2025-03", keys, tt.items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, upserts)
				assert.Nil(t, deletes)
				return
			}

			require.NoError(t, err)
			assert.Len(t, upserts, tt.wantUpserts)
			assert.Len(t, deletes, tt.wantDeletes)
		})
	}
}

func TestBuildMonths(t *testing.T) {
	days := []string{"2025-02-01", "2025-02-02", "2025-02-03"}
	entries := []*domain.ManualCVEntry{
		{RouteKey: "form_submit", Date: "2025-02-02", Count: 0},
		{RouteKey: "form_submit", Date: "2025-03-01", Count: 9},
		{RouteKey: "old_route", Date: "2025-02-01", Count: 4},
	}

	months := BuildMonths(days, []string{"form_submit", "line_click"}, entries)

	require.Len(t, months, 2)
	assert.Len(t, months["form_submit"], 3)
	assert.False(t, months["form_submit"]["2025-02-01"].IsSet())
	assert.Equal(t, domain.Override(0), months["form_submit"]["2025-02-02"])
	assert.True(t, months["form_submit"].HasOverrides())
	assert.False(t, months["line_click"].HasOverrides())
}

func TestService_GetMonth(t *testing.T) {
	service, m := newTestService(t)

	m.manualRepo.EXPECT().ListByRouteAndMonth(gomock.Any(), "t1", "form_submit", "2025-02").Return([]*domain.ManualCVEntry{
		{TenantID: "t1", RouteKey: "form_submit", Date: "2025-02-14", Count: 7},
	}, nil)

	month, err := service.GetMonth(context.Background(), "t1", "form_submit", "2025-02")

	require.NoError(t, err)
	assert.Len(t, month, 28)
	assert.Equal(t, domain.Override(7), month["2025-02-14"])
	assert.Equal(t, 7, month.Sum())
}

func TestService_GetMonthInvalidMonth(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetMonth(context.Background(), "t1", "form_submit", "2025-13")

	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestService_GetMonthAllRoutes(t *testing.T) {
	service, m := newTestService(t)

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&domain.Tenant{ID: "t1"}, nil)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return(testRoutes, nil)
	m.manualRepo.EXPECT().ListByMonth(gomock.Any(), "t1", "2025-03").Return([]*domain.ManualCVEntry{
		{TenantID: "t1", RouteKey: "form_submit", Date: "2025-03-01", Count: 3},
		{TenantID: "t1", RouteKey: "line_click", Date: "2025-03-15", Count: 0},
	}, nil)

	resp, err := service.GetMonthAllRoutes(context.Background(), "t1", "2025-03")

	require.NoError(t, err)
	assert.Len(t, resp.Items, 31)
	assert.Equal(t, testRoutes, resp.Routes)
	assert.Equal(t, domain.Override(3), resp.Items["2025-03-01"]["form_submit"])
	assert.False(t, resp.Items["2025-03-01"]["line_click"].IsSet())
	assert.Equal(t, domain.Override(0), resp.Items["2025-03-15"]["line_click"])
}

func TestService_SaveBatch(t *testing.T) {
	service, m := newTestService(t)

	req := &domain.SaveManualCVRequest{
		Tenant: "t1",
		Month:  "2025-03",
		Items: []domain.ManualCVItem{
			{Date: "2025-03-01", Route: "form_submit", Count: domain.Override(3)},
			{Date: "2025-03-15", Route: "form_submit", Count: domain.Override(2)},
			{Date: "2025-03-20", Route: "form_submit", Count: domain.Unset()},
		},
	}

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&domain.Tenant{ID: "t1"}, nil)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return(testRoutes, nil)
	m.manualRepo.EXPECT().ApplyBatch(gomock.Any(), gomock.Len(2), gomock.Len(1)).Return(2, 1, nil)
	m.cache.EXPECT().Invalidate(domain.CacheInvalidation{
		TenantID: "t1",
		Periods:  []string{"2025-02", "2025-03", "2025-04"},
		Reason:   "manual_cv_saved",
	}).Return(3)

	resp, err := service.SaveBatch(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, &domain.SaveManualCVResponse{Saved: 2, Deleted: 1}, resp)
}

func TestService_SaveBatchRejectsWithoutWriting(t *testing.T) {
	service, m := newTestService(t)

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&domain.Tenant{ID: "t1"}, nil)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return(testRoutes, nil)

	_, err := service.SaveBatch(context.Background(), &domain.SaveManualCVRequest{
		Tenant: "t1",
		Month:  "2025-03",
		Items: []domain.ManualCVItem{
			{Date: "2025-03-01", Route: "form_submit", Count: domain.Override(3)},
			{Date: "2025-03-02", Route: "form_submit", Count: domain.Override(150)},
		},
	})

	var cvErr *domain.CVError
	require.ErrorAs(t, err, &cvErr)
	assert.Equal(t, "VAL_005", cvErr.Code)
}

func TestService_SaveBatchDatabaseError(t *testing.T) {
	service, m := newTestService(t)

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&domain.Tenant{ID: "t1"}, nil)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return(testRoutes, nil)
	m.manualRepo.EXPECT().ApplyBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, 0, errors.New("tx aborted"))

	_, err := service.SaveBatch(context.Background(), &domain.SaveManualCVRequest{
		Tenant: "t1",
		Month:  "2025-03",
		Items:  []domain.ManualCVItem{{Date: "2025-03-01", Route: "form_submit", Count: domain.Override(1)}},
	})

	assert.ErrorIs(t, err, domain.ErrDatabaseOperation)
}

func TestService_UpsertDay(t *testing.T) {
	service, m := newTestService(t)

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&domain.Tenant{ID: "t1"}, nil)
	m.routeRepo.EXPECT().ListByTenant(gomock.Any(), "t1").Return(testRoutes, nil)
	m.manualRepo.EXPECT().ApplyBatch(gomock.Any(), gomock.Len(0), []*domain.ManualCVEntry{
		{TenantID: "t1", Date: "2025-03-05", RouteKey: "form_submit"},
	}).Return(0, 1, nil)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(0)

	err := service.UpsertDay(context.Background(), "t1", "form_submit", "2025-03-05", domain.Unset())

	require.NoError(t, err)
}

func TestService_SaveBatchTenantNotFound(t *testing.T) {
	service, m := newTestService(t)

	m.tenantRepo.EXPECT().GetTenantByID(gomock.Any(), "t9").Return(nil, nil)

	_, err := service.SaveBatch(context.Background(), &domain.SaveManualCVRequest{Tenant: "t9", Month: "2025-03"})

	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}
