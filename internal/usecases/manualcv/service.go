package manualcv

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/infrastructure/cache"
	"github.com/vfg2006/cv-report-api/infrastructure/repository"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/apiErrors"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type ManualCVService interface {
	GetMonth(ctx context.Context, tenantID, routeKey, ym string) (domain.ManualCVMonth, error)
	GetMonthAllRoutes(ctx context.Context, tenantID, ym string) (*domain.ManualCVMonthResponse, error)
	UpsertDay(ctx context.Context, tenantID, routeKey, date string, count domain.ManualCount) error
	SaveBatch(ctx context.Context, req *domain.SaveManualCVRequest) (*domain.SaveManualCVResponse, error)
}

type Service struct {
	tenantRepo repository.TenantRepository
	routeRepo  repository.CVRouteRepository
	manualRepo repository.ManualCVRepository
	cache      cache.ResultCache
}

func NewService(
	tenantRepo repository.TenantRepository,
	routeRepo repository.CVRouteRepository,
	manualRepo repository.ManualCVRepository,
	resultCache cache.ResultCache,
) ManualCVService {
	return &Service{
		tenantRepo: tenantRepo,
		routeRepo:  routeRepo,
		manualRepo: manualRepo,
		cache:      resultCache,
	}
}

// GetMonth retorna todos os dias do mês para a rota; dias sem lançamento ficam Unset
func (s *Service) GetMonth(ctx context.Context, tenantID, routeKey, ym string) (domain.ManualCVMonth, error) {
	days, err := validateMonth(tenantID, ym)
	if err != nil {
		return nil, err
	}

	entries, err := s.manualRepo.ListByRouteAndMonth(ctx, tenantID, routeKey, ym)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id":  tenantID,
			"route_key":  routeKey,
			"year_month": ym,
		}).Error("Erro ao buscar lançamentos manuais")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao buscar lançamentos manuais")
	}

	return BuildMonths(days, []string{routeKey}, entries)[routeKey], nil
}

// GetMonthAllRoutes monta a grade dia x rota do mês para todas as rotas configuradas
func (s *Service) GetMonthAllRoutes(ctx context.Context, tenantID, ym string) (*domain.ManualCVMonthResponse, error) {
	days, err := validateMonth(tenantID, ym)
	if err != nil {
		return nil, err
	}

	if err := s.ensureTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	routes, err := s.routeRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao listar rotas de CV")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao listar rotas de CV")
	}

	entries, err := s.manualRepo.ListByMonth(ctx, tenantID, ym)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao buscar lançamentos manuais")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao buscar lançamentos manuais")
	}

	months := BuildMonths(days, domain.RouteKeys(routes), entries)

	items := make(map[string]map[string]domain.ManualCount, len(days))
	for _, day := range days {
		items[day] = make(map[string]domain.ManualCount, len(routes))
		for _, route := range routes {
			items[day][route.RouteKey] = months[route.RouteKey][day]
		}
	}

	return &domain.ManualCVMonthResponse{
		Items:  items,
		Routes: routes,
	}, nil
}

// UpsertDay grava um override ou remove o lançamento quando count é Unset
func (s *Service) UpsertDay(ctx context.Context, tenantID, routeKey, date string, count domain.ManualCount) error {
	ym := ""
	if len(date) >= len(utils.YearMonthLayout) {
		ym = date[:len(utils.YearMonthLayout)]
	}

	_, err := s.SaveBatch(ctx, &domain.SaveManualCVRequest{
		Tenant: tenantID,
		Month:  ym,
		Items:  []domain.ManualCVItem{{Date: date, Route: routeKey, Count: count}},
	})

	return err
}

// SaveBatch valida todos os itens antes de gravar; um item inválido rejeita o lote inteiro.
// Grava numa única transação e invalida o mês e os meses vizinhos.
func (s *Service) SaveBatch(ctx context.Context, req *domain.SaveManualCVRequest) (*domain.SaveManualCVResponse, error) {
	if req == nil {
		return nil, domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}

	if _, err := validateMonth(req.Tenant, req.Month); err != nil {
		return nil, err
	}

	if err := s.ensureTenant(ctx, req.Tenant); err != nil {
		return nil, err
	}

	routes, err := s.routeRepo.ListByTenant(ctx, req.Tenant)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", req.Tenant).Error("Erro ao listar rotas de CV")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.Tenant, "Falha ao listar rotas de CV")
	}

	upserts, deletes, err := SplitItems(req.Tenant, req.Month, domain.RouteKeys(routes), req.Items)
	if err != nil {
		return nil, err
	}

	saved, deleted, err := s.manualRepo.ApplyBatch(ctx, upserts, deletes)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id":  req.Tenant,
			"year_month": req.Month,
		}).Error("Erro ao gravar lançamentos manuais")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.Tenant, "Falha ao gravar lançamentos manuais")
	}

	periods, _ := utils.AdjacentYearMonths(req.Month)
	removed := s.cache.Invalidate(domain.CacheInvalidation{
		TenantID: req.Tenant,
		Periods:  periods,
		Reason:   "manual_cv_saved",
	})

	logrus.WithFields(logrus.Fields{
		"tenant_id":     req.Tenant,
		"year_month":    req.Month,
		"saved":         saved,
		"deleted":       deleted,
		"cache_removed": removed,
	}).Info("Lançamentos manuais gravados")

	return &domain.SaveManualCVResponse{Saved: saved, Deleted: deleted}, nil
}

// SplitItems valida os itens e separa overrides (upsert) de Unset (delete).
// A data deve pertencer ao mês, a rota deve estar configurada e a contagem no intervalo.
func SplitItems(tenantID, ym string, routeKeys []string, items []domain.ManualCVItem) ([]*domain.ManualCVEntry, []*domain.ManualCVEntry, error) {
	configured := make(map[string]bool, len(routeKeys))
	for _, key := range routeKeys {
		configured[key] = true
	}

	upserts := []*domain.ManualCVEntry{}
	deletes := []*domain.ManualCVEntry{}

	for i, item := range items {
		date := strings.TrimSpace(item.Date)
		route := strings.TrimSpace(item.Route)

		if !utils.DateInMonth(date, ym) {
			return nil, nil, domain.NewCVErrorWithTenant(domain.ErrDateOutsideMonth, apiErrors.ErrInvalidFormat, tenantID,
				fmt.Sprintf("item %d: data %q fora de %s", i, item.Date, ym))
		}

		if !configured[route] {
			return nil, nil, domain.NewCVErrorWithTenant(domain.ErrUnknownRoute, apiErrors.ErrUnknownRoute, tenantID,
				fmt.Sprintf("item %d: rota %q", i, item.Route))
		}

		if err := item.Count.Validate(); err != nil {
			return nil, nil, domain.NewCVErrorWithTenant(domain.ErrInvalidManualCount, apiErrors.ErrInvalidManualCount, tenantID,
				fmt.Sprintf("item %d: %s", i, err.Error()))
		}

		entry := &domain.ManualCVEntry{TenantID: tenantID, Date: date, RouteKey: route}

		if n, ok := item.Count.Value(); ok {
			entry.Count = n
			upserts = append(upserts, entry)
			continue
		}

		deletes = append(deletes, entry)
	}

	return upserts, deletes, nil
}

// BuildMonths monta, para cada rota, o mapa de todos os dias do mês; lançamentos de rotas
// fora da lista são ignorados
func BuildMonths(days []string, routeKeys []string, entries []*domain.ManualCVEntry) map[string]domain.ManualCVMonth {
	months := make(map[string]domain.ManualCVMonth, len(routeKeys))
	for _, key := range routeKeys {
		month := make(domain.ManualCVMonth, len(days))
		for _, day := range days {
			month[day] = domain.Unset()
		}
		months[key] = month
	}

	for _, entry := range entries {
		month, ok := months[entry.RouteKey]
		if !ok {
			continue
		}

		if _, inMonth := month[entry.Date]; inMonth {
			month[entry.Date] = domain.Override(entry.Count)
		}
	}

	return months
}

func validateMonth(tenantID, ym string) ([]string, error) {
	if tenantID == "" {
		return nil, domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrMissingRequiredData, "Informe o tenant")
	}

	days, err := utils.MonthDays(ym)
	if err != nil {
		return nil, domain.NewCVErrorWithTenant(domain.ErrInvalidMonth, apiErrors.ErrInvalidFormat, tenantID, err.Error())
	}

	return days, nil
}

func (s *Service) ensureTenant(ctx context.Context, tenantID string) error {
	tenant, err := s.tenantRepo.GetTenantByID(ctx, tenantID)
	if err != nil {
		return domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao buscar tenant")
	}

	if tenant == nil {
		return domain.NewCVErrorWithTenant(domain.ErrTenantNotFound, apiErrors.ErrTenantNotFound, tenantID, "")
	}

	return nil
}
