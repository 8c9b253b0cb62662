package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cv-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cv-report-api/internal/domain"
)

const (
	tenantsTable = "tenants t"
)

//go:generate mockgen -source=tenant.go -destination=mocks/mock_tenant.go -package=mocks

type TenantRepository interface {
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenantsPage(ctx context.Context, statuses []domain.TenantStatus, offset, limit int) ([]*domain.Tenant, error)
	CountTenants(ctx context.Context, statuses []domain.TenantStatus) (int, error)
	UpdateSettings(ctx context.Context, tenantID string, settings domain.TenantSettings) error
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.ga4_property_id, t.status, t.only_configured_events, t.phone_event_name").
		From(tenantsTable).
		Where(squirrel.Eq{"t.id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	tenant, err := scanTenant(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
	}

	return tenant, nil
}

// ListTenantsPage lista tenants em ordem estável de id, usada pela cadeia de recálculo como cursor
func (r *tenantRepository) ListTenantsPage(ctx context.Context, statuses []domain.TenantStatus, offset, limit int) ([]*domain.Tenant, error) {
	queryBuilder := squirrel.
		Select("t.id, t.name, t.ga4_property_id, t.status, t.only_configured_events, t.phone_event_name").
		From(tenantsTable).
		OrderBy("t.id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"t.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tenants, nil
}

func (r *tenantRepository) CountTenants(ctx context.Context, statuses []domain.TenantStatus) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(tenantsTable).
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"t.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar tenants: %w", err)
	}

	return total, nil
}

func (r *tenantRepository) UpdateSettings(ctx context.Context, tenantID string, settings domain.TenantSettings) error {
	return updateTenantSettings(ctx, r.conn, tenantID, settings)
}

func updateTenantSettings(ctx context.Context, q postgres.Queryer, tenantID string, settings domain.TenantSettings) error {
	if settings.IsEmpty() {
		return nil
	}

	query := squirrel.Update("tenants").
		Where(squirrel.Eq{"id": tenantID}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if settings.OnlyConfiguredEvents != nil {
		query = query.Set("only_configured_events", *settings.OnlyConfiguredEvents)
	}

	if settings.PhoneEventName != nil {
		query = query.Set("phone_event_name", *settings.PhoneEventName)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao atualizar configurações do tenant: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*domain.Tenant, error) {
	tenant := &domain.Tenant{}
	var phoneEvent sql.NullString

	if err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.GA4PropertyID,
		&tenant.Status,
		&tenant.OnlyConfiguredEvents,
		&phoneEvent,
	); err != nil {
		return nil, err
	}

	if phoneEvent.Valid {
		tenant.PhoneEventName = &phoneEvent.String
	}

	return tenant, nil
}
