package reviewing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/infrastructure/cache"
	"github.com/vfg2006/cv-report-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/cv-report-api/infrastructure/repository"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/apiErrors"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

const anonymousInspector = "anonymous"

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type ReviewService interface {
	ListMonth(ctx context.Context, tenantID, ym string) (*domain.CVReviewResponse, error)
	UpdateRow(ctx context.Context, req *domain.UpdateReviewRowRequest, inspector string) error
	BulkUpdateRows(ctx context.Context, req *domain.BulkUpdateReviewRequest, inspector string) (*domain.BulkUpdateReviewResponse, error)
}

type Service struct {
	cfg        *config.Config
	tenantRepo repository.TenantRepository
	routeRepo  repository.CVRouteRepository
	reviewRepo repository.CVReviewRepository
	ga4Service ga4.GA4Integrator
	cache      cache.ResultCache
}

func NewService(
	cfg *config.Config,
	tenantRepo repository.TenantRepository,
	routeRepo repository.CVRouteRepository,
	reviewRepo repository.CVReviewRepository,
	ga4Service ga4.GA4Integrator,
	resultCache cache.ResultCache,
) ReviewService {
	return &Service{
		cfg:        cfg,
		tenantRepo: tenantRepo,
		routeRepo:  routeRepo,
		reviewRepo: reviewRepo,
		ga4Service: ga4Service,
		cache:      resultCache,
	}
}

// ListMonth materializa o mês a partir do feed e devolve as linhas com os status gravados.
// Se o feed falhar, devolve só o que já estava gravado.
func (s *Service) ListMonth(ctx context.Context, tenantID, ym string) (*domain.CVReviewResponse, error) {
	tenant, err := s.loadTenant(ctx, tenantID, ym)
	if err != nil {
		return nil, err
	}

	fresh, err := s.ingest(ctx, tenant, ym)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id":  tenantID,
			"year_month": ym,
		}).Warn("Erro ao buscar eventos para revisão, listando apenas linhas gravadas")
	}

	stored, err := s.reviewRepo.ListByMonth(ctx, tenantID, ym)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao buscar linhas de revisão")
		if fresh == nil {
			return nil, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao buscar linhas de revisão")
		}
	}

	return &domain.CVReviewResponse{Rows: MergeStored(fresh, stored)}, nil
}

// ingest busca os eventos de CV do mês, deduplica e grava as colunas descritivas
func (s *Service) ingest(ctx context.Context, tenant *domain.Tenant, ym string) ([]*domain.CVReviewRow, error) {
	first, last, err := utils.MonthBounds(ym)
	if err != nil {
		return nil, err
	}

	routes, err := s.routeRepo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar rotas de CV: %w", err)
	}

	eventNames := domain.CVEventNames(routes, tenant.PhoneEvent(s.cfg.CVDefaults.PhoneEventName))

	raw, err := s.ga4Service.ReviewEvents(ctx, tenant, first, last, eventNames)
	if err != nil {
		return nil, err
	}

	fresh := Deduplicate(tenant.ID, ym, raw)

	logrus.WithFields(logrus.Fields{
		"tenant_id":  tenant.ID,
		"year_month": ym,
		"raw_rows":   len(raw),
		"rows":       len(fresh),
	}).Debug("Eventos para revisão deduplicados")

	if len(fresh) > 0 {
		if err := s.reviewRepo.UpsertIngested(ctx, fresh); err != nil {
			logrus.WithError(err).WithField("tenant_id", tenant.ID).Warn("Erro ao gravar linhas de revisão")
		}
	}

	return fresh, nil
}

func (s *Service) UpdateRow(ctx context.Context, req *domain.UpdateReviewRowRequest, inspector string) error {
	if req == nil {
		return domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}

	updated, err := s.apply(ctx, req.Tenant, req.Month, []domain.ReviewUpdate{req.ReviewUpdate}, updatedBy(req.UpdatedBy, inspector))
	if err != nil {
		return err
	}

	if updated == 0 {
		return domain.NewCVErrorWithTenant(domain.ErrReviewRowNotFound, apiErrors.ErrReviewRowNotFound, req.Tenant, req.RowHash)
	}

	return nil
}

func (s *Service) BulkUpdateRows(ctx context.Context, req *domain.BulkUpdateReviewRequest, inspector string) (*domain.BulkUpdateReviewResponse, error) {
	if req == nil {
		return nil, domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}

	updated, err := s.apply(ctx, req.Tenant, req.Month, req.Items, updatedBy(req.UpdatedBy, inspector))
	if err != nil {
		return nil, err
	}

	return &domain.BulkUpdateReviewResponse{Updated: updated}, nil
}

// apply valida tudo antes de gravar. Se algum hash ainda não foi materializado, ingere o
// mês e tenta de novo uma vez.
func (s *Service) apply(ctx context.Context, tenantID, ym string, updates []domain.ReviewUpdate, by string) (int, error) {
	for _, update := range updates {
		if err := validateUpdate(tenantID, update); err != nil {
			return 0, err
		}
	}

	tenant, err := s.loadTenant(ctx, tenantID, ym)
	if err != nil {
		return 0, err
	}

	updated, err := s.reviewRepo.UpdateStatus(ctx, tenantID, ym, updates, by)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao atualizar status de revisão")
		return 0, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao atualizar revisão")
	}

	if updated < len(updates) {
		if _, err := s.ingest(ctx, tenant, ym); err != nil {
			logrus.WithError(err).WithField("tenant_id", tenantID).Warn("Erro ao materializar o mês antes da atualização")
		} else {
			updated, err = s.reviewRepo.UpdateStatus(ctx, tenantID, ym, updates, by)
			if err != nil {
				return 0, domain.NewCVErrorWithTenant(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, tenantID, "Falha ao atualizar revisão")
			}
		}
	}

	if updated > 0 {
		s.invalidate(tenantID, ym)
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":  tenantID,
		"year_month": ym,
		"requested":  len(updates),
		"updated":    updated,
		"updated_by": by,
	}).Info("Status de revisão atualizados")

	return updated, nil
}

func validateUpdate(tenantID string, update domain.ReviewUpdate) error {
	if !update.Status.IsValid() {
		return domain.NewCVErrorWithTenant(domain.ErrInvalidReviewStatus, apiErrors.ErrInvalidReviewStatus, tenantID,
			fmt.Sprintf("status %d fora de {0,1,2}", update.Status))
	}

	if !domain.ValidRowHash(update.RowHash) {
		return domain.NewCVErrorWithTenant(domain.ErrInvalidRowHash, apiErrors.ErrInvalidRowHash, tenantID, update.RowHash)
	}

	return nil
}

func (s *Service) loadTenant(ctx context.Context, tenantID, ym string) (*domain.Tenant, error) {
	if tenantID == "" {
		return nil, domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrMissingRequiredData, "Informe o tenant")
	}

	if _, err := utils.ParseYearMonth(ym); err != nil {
		return nil, domain.NewCVErrorWithTenant(domain.ErrInvalidMonth, apiErrors.ErrInvalidFormat, tenantID, err.Error())
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

// invalidate remove o mês revisado e os vizinhos, usados como comparação
func (s *Service) invalidate(tenantID, ym string) {
	periods, err := utils.AdjacentYearMonths(ym)
	if err != nil {
		periods = []string{ym}
	}

	s.cache.Invalidate(domain.CacheInvalidation{
		TenantID: tenantID,
		Periods:  periods,
		Reason:   "cv_review_updated",
	})
}

func updatedBy(fromBody *string, inspector string) string {
	if fromBody != nil && strings.TrimSpace(*fromBody) != "" {
		return strings.TrimSpace(*fromBody)
	}

	if strings.TrimSpace(inspector) != "" {
		return strings.TrimSpace(inspector)
	}

	return anonymousInspector
}

