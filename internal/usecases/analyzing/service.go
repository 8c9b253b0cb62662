package analyzing

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/infrastructure/cache"
	"github.com/vfg2006/cv-report-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/cv-report-api/infrastructure/repository"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/internal/usecases/reallocating"
	"github.com/vfg2006/cv-report-api/internal/usecases/reconciling"
	"github.com/vfg2006/cv-report-api/pkg/apiErrors"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Analyzer interface {
	Analyze(ctx context.Context, tenantID, period string) (*domain.CVAnalysis, error)
	Allocate(ctx context.Context, tenantID, ym string, dimension domain.Dimension) (*domain.DimensionAllocationResult, error)
	MonthlyReport(ctx context.Context, period string) ([]*domain.MonthlyCVSnapshot, error)
	AvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
}

type Service struct {
	cfg          *config.Config
	tenantRepo   repository.TenantRepository
	routeRepo    repository.CVRouteRepository
	snapshotRepo repository.MonthlyCVSnapshotRepository
	resolver     reconciling.Resolver
	ga4Service   ga4.GA4Integrator
	cache        cache.ResultCache
}

func NewService(
	cfg *config.Config,
	tenantRepo repository.TenantRepository,
	routeRepo repository.CVRouteRepository,
	snapshotRepo repository.MonthlyCVSnapshotRepository,
	resolver reconciling.Resolver,
	ga4Service ga4.GA4Integrator,
	resultCache cache.ResultCache,
) Analyzer {
	return &Service{
		cfg:          cfg,
		tenantRepo:   tenantRepo,
		routeRepo:    routeRepo,
		snapshotRepo: snapshotRepo,
		resolver:     resolver,
		ga4Service:   ga4Service,
		cache:        resultCache,
	}
}

// tenantScope reúne o que é comum aos dois períodos da análise
type tenantScope struct {
	tenant     *domain.Tenant
	eventNames []string
	degraded   bool
}

// Analyze calcula o CV efetivo e a realocação por dimensão do período e do mês anterior
func (s *Service) Analyze(ctx context.Context, tenantID, period string) (*domain.CVAnalysis, error) {
	if err := validatePeriod(tenantID, period); err != nil {
		return nil, err
	}

	key := domain.AnalysisCacheKey(tenantID, period)
	if cached, found := s.cache.Get(key); found {
		if analysis, ok := cached.(*domain.CVAnalysis); ok {
			return analysis, nil
		}
	}

	scope, err := s.loadScope(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	comparisonPeriod, _ := utils.ShiftYearMonth(period, -1)

	current, currentDegraded, err := s.analyzePeriod(ctx, scope, period)
	if err != nil {
		return nil, err
	}

	comparison, comparisonDegraded, err := s.analyzePeriod(ctx, scope, comparisonPeriod)
	if err != nil {
		return nil, err
	}

	analysis := &domain.CVAnalysis{
		Tenant:           tenantID,
		Period:           period,
		ComparisonPeriod: comparisonPeriod,
		Current:          current,
		Comparison:       comparison,
	}

	degraded := scope.degraded || currentDegraded || comparisonDegraded
	if !degraded {
		tags := append(cache.ResultTags(tenantID, period), domain.TenantPeriodTag(tenantID, comparisonPeriod))
		s.cache.Set(key, analysis, tags)
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":        tenantID,
		"period":           period,
		"current_total":    current.Effective.Total,
		"comparison_total": comparison.Effective.Total,
		"degraded":         degraded,
	}).Info("Análise de CV calculada")

	return analysis, nil
}

// Allocate calcula a realocação de uma única dimensão
func (s *Service) Allocate(ctx context.Context, tenantID, ym string, dimension domain.Dimension) (*domain.DimensionAllocationResult, error) {
	if err := validatePeriod(tenantID, ym); err != nil {
		return nil, err
	}

	if !dimension.IsValid() {
		return nil, domain.NewCVErrorWithTenant(domain.ErrInvalidDimension, apiErrors.ErrInvalidFormat, tenantID, string(dimension))
	}

	scope, err := s.loadScope(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	effective, err := s.resolver.Resolve(ctx, tenantID, ym)
	if err != nil {
		return nil, err
	}

	allocation, _ := s.allocate(ctx, scope, ym, dimension, effective)

	return allocation, nil
}

func (s *Service) analyzePeriod(ctx context.Context, scope *tenantScope, ym string) (*domain.PeriodAnalysis, bool, error) {
	effective, err := s.resolver.Resolve(ctx, scope.tenant.ID, ym)
	if err != nil {
		return nil, false, err
	}

	result := &domain.PeriodAnalysis{
		Effective:  effective,
		Dimensions: make(map[domain.Dimension]*domain.DimensionAllocationResult, len(domain.AnalysisDimensions)),
	}

	degraded := effective.Degraded
	for _, dimension := range domain.AnalysisDimensions {
		allocation, allocationDegraded := s.allocate(ctx, scope, ym, dimension, effective)
		result.Dimensions[dimension] = allocation
		degraded = degraded || allocationDegraded
	}

	return result, degraded, nil
}

// allocate busca a quebra bruta do feed e distribui o total efetivo. Falha no feed vira
// no_data e o resultado não é guardado no cache.
func (s *Service) allocate(ctx context.Context, scope *tenantScope, ym string, dimension domain.Dimension, effective *domain.EffectiveCVResult) (*domain.DimensionAllocationResult, bool) {
	key := domain.AllocationCacheKey(scope.tenant.ID, ym, dimension)
	if cached, found := s.cache.Get(key); found {
		// alocação feita sobre outro total efetivo é descartada
		if allocation, ok := cached.(*domain.DimensionAllocationResult); ok && allocation.ConfirmedTotal == effective.Total {
			return allocation, false
		}
	}

	first, last, _ := utils.MonthBounds(ym)

	degraded := scope.degraded || effective.Degraded

	breakdown, err := s.ga4Service.DimensionBreakdown(ctx, scope.tenant, dimension, first, last, scope.eventNames)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id":  scope.tenant.ID,
			"year_month": ym,
			"dimension":  dimension,
		}).Warn("Erro ao buscar quebra por dimensão, realocação sem dados")
		breakdown = nil
		degraded = true
	}

	allocation := reallocating.Reallocate(dimension, effective.Total, breakdown)

	if !degraded {
		s.cache.Set(key, allocation, cache.ResultTags(scope.tenant.ID, ym))
	}

	return allocation, degraded
}

// loadScope carrega o tenant e os eventos usados na quebra por dimensão. Sem rotas
// habilitadas a quebra usa os key events, como o cálculo puramente automático.
func (s *Service) loadScope(ctx context.Context, tenantID string) (*tenantScope, error) {
	tenant, err := s.tenantRepo.GetTenantByID(ctx, tenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao buscar tenant")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao buscar tenant")
	}

	if tenant == nil {
		return nil, domain.NewCVErrorWithTenant(domain.ErrTenantNotFound, apiErrors.ErrTenantNotFound, tenantID, "")
	}

	scope := &tenantScope{tenant: tenant}

	routes, err := s.routeRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Warn("Erro ao buscar rotas de CV, usando key events")
		scope.degraded = true
		return scope, nil
	}

	if len(domain.EnabledRoutes(routes)) > 0 {
		scope.eventNames = domain.CVEventNames(routes, tenant.PhoneEvent(s.cfg.CVDefaults.PhoneEventName))
	}

	return scope, nil
}

// MonthlyReport lista os snapshots gravados pela cadeia de recálculo para o período
func (s *Service) MonthlyReport(ctx context.Context, period string) ([]*domain.MonthlyCVSnapshot, error) {
	if _, err := utils.ParseYearMonth(period); err != nil {
		return nil, domain.NewCVError(domain.ErrInvalidMonth, apiErrors.ErrInvalidFormat, err.Error())
	}

	snapshots, err := s.snapshotRepo.ListByPeriod(ctx, period)
	if err != nil {
		logrus.WithError(err).WithField("period", period).Error("Erro ao buscar snapshots mensais")
		return nil, domain.NewCVError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar snapshots mensais")
	}

	return snapshots, nil
}

// AvailablePeriods retorna os períodos, anos e meses com snapshot gravado
func (s *Service) AvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	periods, err := s.snapshotRepo.GetAllPeriods(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar períodos disponíveis")
		return nil, domain.NewCVError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar períodos disponíveis")
	}

	periodMap := make(map[string]bool)
	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	for _, period := range periods {
		if _, err := utils.ParseYearMonth(period); err != nil {
			continue
		}

		// Formato YYYY-MM
		periodMap[period] = true
		yearMap[period[:4]] = true
		monthMap[period[5:]] = true
	}

	return &domain.AvailablePeriods{
		Periods: sortedKeys(periodMap),
		Years:   sortedKeys(yearMap),
		Months:  sortedKeys(monthMap),
	}, nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

func validatePeriod(tenantID, period string) error {
	if tenantID == "" {
		return domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrMissingRequiredData, "Informe o tenant")
	}

	if _, err := utils.ParseYearMonth(period); err != nil {
		return domain.NewCVErrorWithTenant(domain.ErrInvalidMonth, apiErrors.ErrInvalidFormat, tenantID, err.Error())
	}

	return nil
}
