package reconciling

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/infrastructure/cache"
	"github.com/vfg2006/cv-report-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/cv-report-api/infrastructure/repository"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/apiErrors"
	"github.com/vfg2006/cv-report-api/pkg/metrics"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Resolver interface {
	// Resolve retorna o resultado do cache ou recalcula. Falhas de dados degradam o resultado.
	Resolve(ctx context.Context, tenantID, ym string) (*domain.EffectiveCVResult, error)
	// Refresh ignora o cache, recalcula e grava o novo resultado
	Refresh(ctx context.Context, tenantID, ym string) (*domain.EffectiveCVResult, error)
}

type Service struct {
	cfg            *config.Config
	tenantRepo     repository.TenantRepository
	routeRepo      repository.CVRouteRepository
	manualRepo     repository.ManualCVRepository
	reviewRepo     repository.CVReviewRepository
	eventCountRepo repository.EventCountRepository
	ga4Service     ga4.GA4Integrator
	cache          cache.ResultCache
	now            func() time.Time
}

func NewService(
	cfg *config.Config,
	tenantRepo repository.TenantRepository,
	routeRepo repository.CVRouteRepository,
	manualRepo repository.ManualCVRepository,
	reviewRepo repository.CVReviewRepository,
	eventCountRepo repository.EventCountRepository,
	ga4Service ga4.GA4Integrator,
	resultCache cache.ResultCache,
) *Service {
	return &Service{
		cfg:            cfg,
		tenantRepo:     tenantRepo,
		routeRepo:      routeRepo,
		manualRepo:     manualRepo,
		reviewRepo:     reviewRepo,
		eventCountRepo: eventCountRepo,
		ga4Service:     ga4Service,
		cache:          resultCache,
		now:            time.Now,
	}
}

func (s *Service) Resolve(ctx context.Context, tenantID, ym string) (*domain.EffectiveCVResult, error) {
	if err := validateRequest(tenantID, ym); err != nil {
		return nil, err
	}

	key := domain.EffectiveCVCacheKey(tenantID, ym)
	if cached, found := s.cache.Get(key); found {
		if result, ok := cached.(*domain.EffectiveCVResult); ok {
			return result, nil
		}
	}

	return s.compute(ctx, tenantID, ym)
}

func (s *Service) Refresh(ctx context.Context, tenantID, ym string) (*domain.EffectiveCVResult, error) {
	if err := validateRequest(tenantID, ym); err != nil {
		return nil, err
	}

	return s.compute(ctx, tenantID, ym)
}

func validateRequest(tenantID, ym string) error {
	if tenantID == "" {
		return domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrMissingRequiredData, "Informe o tenant")
	}

	if _, err := utils.ParseYearMonth(ym); err != nil {
		return domain.NewCVErrorWithTenant(domain.ErrInvalidMonth, apiErrors.ErrInvalidFormat, tenantID, err.Error())
	}

	return nil
}

func (s *Service) compute(ctx context.Context, tenantID, ym string) (*domain.EffectiveCVResult, error) {
	tenant, err := s.tenantRepo.GetTenantByID(ctx, tenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao buscar tenant")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao buscar tenant")
	}

	if tenant == nil {
		return nil, domain.NewCVErrorWithTenant(domain.ErrTenantNotFound, apiErrors.ErrTenantNotFound, tenantID, "")
	}

	in, err := s.gather(ctx, tenant, ym)
	if err != nil {
		return nil, domain.NewCVErrorWithTenant(domain.ErrInvalidMonth, apiErrors.ErrInvalidFormat, tenantID, err.Error())
	}

	result := ResolveEffectiveCV(in)

	metrics.CVResolutions.WithLabelValues(string(result.Source), strconv.FormatBool(result.Degraded)).Inc()

	logrus.WithFields(logrus.Fields{
		"tenant_id":  tenantID,
		"year_month": ym,
		"source":     result.Source,
		"total":      result.Total,
		"degraded":   result.Degraded,
	}).Debug("CV efetivo calculado")

	if !result.Degraded {
		s.store(tenantID, ym, result)
	}

	return result, nil
}

// store grava o resultado. Alocações e análises do período dependem do total,
// então são descartadas quando não há entrada anterior ou o total mudou.
func (s *Service) store(tenantID, ym string, result *domain.EffectiveCVResult) {
	key := domain.EffectiveCVCacheKey(tenantID, ym)

	previous, found := s.cache.Get(key)
	if cached, ok := previous.(*domain.EffectiveCVResult); !found || !ok || cached.Total != result.Total {
		s.cache.Invalidate(domain.CacheInvalidation{
			TenantID: tenantID,
			Periods:  []string{ym},
			Reason:   "cv_recalculated",
		})
	}

	s.cache.Set(key, result, cache.ResultTags(tenantID, ym))
}

// gather lê as quatro fontes; erros de leitura viram entradas vazias e marcam degradação
func (s *Service) gather(ctx context.Context, tenant *domain.Tenant, ym string) (ResolverInput, error) {
	days, err := utils.MonthDays(ym)
	if err != nil {
		return ResolverInput{}, err
	}

	in := ResolverInput{
		TenantID:             tenant.ID,
		YearMonth:            ym,
		Days:                 days,
		Manual:               map[string]domain.ManualCVMonth{},
		OnlyConfiguredEvents: tenant.OnlyConfiguredEvents,
		PhoneEventName:       tenant.PhoneEvent(s.cfg.CVDefaults.PhoneEventName),
	}

	fields := logrus.Fields{"tenant_id": tenant.ID, "year_month": ym}

	routes, err := s.routeRepo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		logrus.WithError(err).WithFields(fields).Warn("Erro ao buscar rotas de CV, seguindo sem rotas")
		in.Degraded = true
	}
	in.Routes = routes

	entries, err := s.manualRepo.ListByMonth(ctx, tenant.ID, ym)
	if err != nil {
		logrus.WithError(err).WithFields(fields).Warn("Erro ao buscar lançamentos manuais, seguindo sem manual")
		in.Degraded = true
	}
	for _, entry := range entries {
		month, ok := in.Manual[entry.RouteKey]
		if !ok {
			month = domain.ManualCVMonth{}
			in.Manual[entry.RouteKey] = month
		}
		month[entry.Date] = domain.Override(entry.Count)
	}

	summary, err := s.reviewRepo.SummarizeMonth(ctx, tenant.ID, ym)
	if err != nil {
		logrus.WithError(err).WithFields(fields).Warn("Erro ao resumir revisão, seguindo sem revisão")
		in.Degraded = true
		summary = nil
	}
	in.Review = summary

	in.Automated = s.readAutomated(ctx, tenant, ym, domain.CVEventNames(routes, in.PhoneEventName))

	return in, nil
}
