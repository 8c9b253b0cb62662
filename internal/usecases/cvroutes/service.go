package cvroutes

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/infrastructure/cache"
	"github.com/vfg2006/cv-report-api/infrastructure/repository"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type RouteService interface {
	ListRoutes(ctx context.Context, tenantID string) ([]*domain.CVRoute, error)
	EnabledRoutes(ctx context.Context, tenantID string) ([]*domain.CVRoute, error)
	GetRoutesSettings(ctx context.Context, tenantID string) (*domain.CVRoutesResponse, error)
	SaveRoutes(ctx context.Context, req *domain.SaveCVRoutesRequest) (*domain.SaveCVRoutesResponse, error)
}

type Service struct {
	cfg            *config.Config
	tenantRepo     repository.TenantRepository
	routeRepo      repository.CVRouteRepository
	eventCountRepo repository.EventCountRepository
	cache          cache.ResultCache
}

func NewService(
	cfg *config.Config,
	tenantRepo repository.TenantRepository,
	routeRepo repository.CVRouteRepository,
	eventCountRepo repository.EventCountRepository,
	resultCache cache.ResultCache,
) RouteService {
	return &Service{
		cfg:            cfg,
		tenantRepo:     tenantRepo,
		routeRepo:      routeRepo,
		eventCountRepo: eventCountRepo,
		cache:          resultCache,
	}
}

func (s *Service) ListRoutes(ctx context.Context, tenantID string) ([]*domain.CVRoute, error) {
	if _, err := s.loadTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.listRoutes(ctx, tenantID)
}

func (s *Service) EnabledRoutes(ctx context.Context, tenantID string) ([]*domain.CVRoute, error) {
	routes, err := s.ListRoutes(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return domain.EnabledRoutes(routes), nil
}

func (s *Service) GetRoutesSettings(ctx context.Context, tenantID string) (*domain.CVRoutesResponse, error) {
	tenant, err := s.loadTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	routes, err := s.listRoutes(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &domain.CVRoutesResponse{
		Routes:               routes,
		OnlyConfiguredEvents: tenant.OnlyConfiguredEvents,
		PhoneEventName:       tenant.PhoneEvent(s.cfg.CVDefaults.PhoneEventName),
	}, nil
}

func (s *Service) listRoutes(ctx context.Context, tenantID string) ([]*domain.CVRoute, error) {
	routes, err := s.routeRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao listar rotas de CV")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao listar rotas de CV")
	}

	return routes, nil
}

// SaveRoutes substitui o conjunto de rotas do tenant. Qualquer erro de validação rejeita o
// lote inteiro sem alterar o estado.
func (s *Service) SaveRoutes(ctx context.Context, req *domain.SaveCVRoutesRequest) (*domain.SaveCVRoutesResponse, error) {
	if req == nil {
		return nil, domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}

	routes, err := BuildRoutes(req.Tenant, req.Routes)
	if err != nil {
		return nil, err
	}

	if _, err := s.loadTenant(ctx, req.Tenant); err != nil {
		return nil, err
	}

	settings := domain.TenantSettings{
		OnlyConfiguredEvents: req.OnlyConfiguredEvents,
		PhoneEventName:       trimmed(req.PhoneEventName),
	}

	if err := s.routeRepo.ReplaceAll(ctx, req.Tenant, routes, settings); err != nil {
		logrus.WithError(err).WithField("tenant_id", req.Tenant).Error("Erro ao salvar rotas de CV")
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.Tenant, "Falha ao salvar rotas de CV")
	}

	// Rotas mudam a atribuição de todo o histórico: invalidar todos os períodos do tenant
	removed := s.cache.Invalidate(domain.CacheInvalidation{
		TenantID: req.Tenant,
		Reason:   "cv_routes_saved",
	})

	// As contagens diárias gravadas dependem dos eventos pedidos ao feed
	dropped, err := s.eventCountRepo.DeleteByTenant(ctx, req.Tenant)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", req.Tenant).Warn("Erro ao descartar contagens diárias do tenant")
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":          req.Tenant,
		"routes":             len(routes),
		"cache_removed":      removed,
		"daily_rows_dropped": dropped,
	}).Info("Rotas de CV salvas")

	return &domain.SaveCVRoutesResponse{Updated: len(routes)}, nil
}

// BuildRoutes valida e normaliza as rotas recebidas: no máximo MaxCVRoutes, chave obrigatória
// e única. Sem ordem explícita vale a posição na lista; sem flag a rota fica habilitada.
func BuildRoutes(tenantID string, inputs []domain.CVRouteInput) ([]*domain.CVRoute, error) {
	if tenantID == "" {
		return nil, domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrMissingRequiredData, "Informe o tenant")
	}

	if len(inputs) > domain.MaxCVRoutes {
		return nil, domain.NewCVErrorWithTenant(domain.ErrTooManyRoutes, apiErrors.ErrTooManyRoutes, tenantID,
			fmt.Sprintf("recebidas %d rotas, máximo %d", len(inputs), domain.MaxCVRoutes))
	}

	seen := make(map[string]bool, len(inputs))
	routes := make([]*domain.CVRoute, 0, len(inputs))

	for i, input := range inputs {
		key := strings.TrimSpace(input.RouteKey)
		if key == "" {
			return nil, domain.NewCVErrorWithTenant(domain.ErrEmptyRouteKey, apiErrors.ErrMissingRequiredData, tenantID,
				fmt.Sprintf("rota na posição %d sem route_key", i))
		}

		if seen[key] {
			return nil, domain.NewCVErrorWithTenant(domain.ErrDuplicateRouteKey, apiErrors.ErrInvalidRequest, tenantID, key)
		}
		seen[key] = true

		route := &domain.CVRoute{
			TenantID:  tenantID,
			RouteKey:  key,
			Label:     strings.TrimSpace(input.Label),
			Enabled:   true,
			SortOrder: i,
		}
		if route.Label == "" {
			route.Label = key
		}
		if input.SortOrder != nil {
			route.SortOrder = *input.SortOrder
		}
		if input.Enabled != nil {
			route.Enabled = *input.Enabled
		}

		routes = append(routes, route)
	}

	return routes, nil
}

func (s *Service) loadTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	if tenantID == "" {
		return nil, domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrMissingRequiredData, "Informe o tenant")
	}

	tenant, err := s.tenantRepo.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao buscar tenant")
	}

	if tenant == nil {
		return nil, domain.NewCVErrorWithTenant(domain.ErrTenantNotFound, apiErrors.ErrTenantNotFound, tenantID, "")
	}

	return tenant, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}

	v := strings.TrimSpace(*value)
	return &v
}
