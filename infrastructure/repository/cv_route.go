package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cv-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cv-report-api/internal/domain"
)

const (
	cvRoutesTable = "cv_routes cr"
)

//go:generate mockgen -source=cv_route.go -destination=mocks/mock_cv_route.go -package=mocks

type CVRouteRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.CVRoute, error)
	ReplaceAll(ctx context.Context, tenantID string, routes []*domain.CVRoute, settings domain.TenantSettings) error
}

type cvRouteRepository struct {
	conn *postgres.Connection
}

func NewCVRouteRepository(conn *postgres.Connection) CVRouteRepository {
	return &cvRouteRepository{
		conn: conn,
	}
}

func (r *cvRouteRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.CVRoute, error) {
	query, args, err := squirrel.
		Select("cr.tenant_id, cr.route_key, cr.label, cr.enabled, cr.sort_order").
		From(cvRoutesTable).
		Where(squirrel.Eq{"cr.tenant_id": tenantID}).
		OrderBy("cr.sort_order ASC", "cr.route_key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	routes := make([]*domain.CVRoute, 0)
	for rows.Next() {
		route := &domain.CVRoute{}
		if err := rows.Scan(&route.TenantID, &route.RouteKey, &route.Label, &route.Enabled, &route.SortOrder); err != nil {
			return nil, fmt.Errorf("erro ao escanear rota de CV: %w", err)
		}
		routes = append(routes, route)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return routes, nil
}

// ReplaceAll substitui o conjunto de rotas do tenant numa única transação:
// rotas ausentes são removidas e as presentes são gravadas com a nova ordem.
func (r *cvRouteRepository) ReplaceAll(ctx context.Context, tenantID string, routes []*domain.CVRoute, settings domain.TenantSettings) error {
	deleteSQL, deleteArgs, err := buildDeleteMissingRoutesQuery(tenantID, domain.RouteKeys(routes))
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		if _, err := q.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover rotas antigas: %w", err)
		}

		if len(routes) > 0 {
			upsertSQL, upsertArgs, err := buildUpsertRoutesQuery(tenantID, routes)
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := q.ExecContext(ctx, upsertSQL, upsertArgs...); err != nil {
				var pqErr *pq.Error
				if errors.As(err, &pqErr) {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao gravar rotas: %w", err)
			}
		}

		return updateTenantSettings(ctx, q, tenantID, settings)
	})
}

func buildDeleteMissingRoutesQuery(tenantID string, keep []string) (string, []any, error) {
	query := squirrel.Delete("cv_routes").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar)

	if len(keep) > 0 {
		query = query.Where(squirrel.NotEq{"route_key": keep})
	}

	return query.ToSql()
}

func buildUpsertRoutesQuery(tenantID string, routes []*domain.CVRoute) (string, []any, error) {
	query := squirrel.StatementBuilder.
		Insert("cv_routes").
		Columns("tenant_id", "route_key", "label", "enabled", "sort_order").
		PlaceholderFormat(squirrel.Dollar)

	for _, route := range routes {
		query = query.Values(tenantID, route.RouteKey, route.Label, route.Enabled, route.SortOrder)
	}

	query = query.Suffix(`
			ON CONFLICT (tenant_id, route_key) DO UPDATE SET
				label = EXCLUDED.label,
				enabled = EXCLUDED.enabled,
				sort_order = EXCLUDED.sort_order,
				updated_at = NOW()
		`)

	return query.ToSql()
}
