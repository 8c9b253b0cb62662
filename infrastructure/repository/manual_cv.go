package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cv-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

const (
	manualCVEntriesTable = "manual_cv_entries mce"
)

//go:generate mockgen -source=manual_cv.go -destination=mocks/mock_manual_cv.go -package=mocks

type ManualCVRepository interface {
	ListByMonth(ctx context.Context, tenantID, ym string) ([]*domain.ManualCVEntry, error)
	ListByRouteAndMonth(ctx context.Context, tenantID, routeKey, ym string) ([]*domain.ManualCVEntry, error)
	Upsert(ctx context.Context, entry *domain.ManualCVEntry) error
	Delete(ctx context.Context, tenantID, date, routeKey string) (int64, error)
	ApplyBatch(ctx context.Context, upserts, deletes []*domain.ManualCVEntry) (int, int, error)
}

type manualCVRepository struct {
	conn *postgres.Connection
}

func NewManualCVRepository(conn *postgres.Connection) ManualCVRepository {
	return &manualCVRepository{
		conn: conn,
	}
}

func (r *manualCVRepository) ListByMonth(ctx context.Context, tenantID, ym string) ([]*domain.ManualCVEntry, error) {
	return r.list(ctx, tenantID, ym, squirrel.Eq{"mce.tenant_id": tenantID})
}

func (r *manualCVRepository) ListByRouteAndMonth(ctx context.Context, tenantID, routeKey, ym string) ([]*domain.ManualCVEntry, error) {
	return r.list(ctx, tenantID, ym, squirrel.Eq{"mce.tenant_id": tenantID, "mce.route_key": routeKey})
}

func (r *manualCVRepository) list(ctx context.Context, tenantID, ym string, where squirrel.Eq) ([]*domain.ManualCVEntry, error) {
	first, last, err := utils.MonthBounds(ym)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("mce.tenant_id, mce.date, mce.route_key, mce.count").
		From(manualCVEntriesTable).
		Where(where).
		Where(squirrel.GtOrEq{"mce.date": first.Format(utils.DateLayout)}).
		Where(squirrel.LtOrEq{"mce.date": last.Format(utils.DateLayout)}).
		OrderBy("mce.date ASC", "mce.route_key ASC").
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

	entries := make([]*domain.ManualCVEntry, 0)
	for rows.Next() {
		entry := &domain.ManualCVEntry{}
		var date time.Time
		if err := rows.Scan(&entry.TenantID, &date, &entry.RouteKey, &entry.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento manual: %w", err)
		}
		entry.Date = date.Format(utils.DateLayout)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *manualCVRepository) Upsert(ctx context.Context, entry *domain.ManualCVEntry) error {
	return upsertManualEntry(ctx, r.conn, entry)
}

func (r *manualCVRepository) Delete(ctx context.Context, tenantID, date, routeKey string) (int64, error) {
	return deleteManualEntry(ctx, r.conn, tenantID, date, routeKey)
}

// ApplyBatch grava e remove lançamentos numa única transação e devolve (gravados, removidos)
func (r *manualCVRepository) ApplyBatch(ctx context.Context, upserts, deletes []*domain.ManualCVEntry) (int, int, error) {
	saved, deleted := 0, 0

	err := r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, entry := range upserts {
			if err := upsertManualEntry(ctx, q, entry); err != nil {
				return err
			}
			saved++
		}

		for _, entry := range deletes {
			affected, err := deleteManualEntry(ctx, q, entry.TenantID, entry.Date, entry.RouteKey)
			if err != nil {
				return err
			}
			deleted += int(affected)
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return saved, deleted, nil
}

func upsertManualEntry(ctx context.Context, q postgres.Queryer, entry *domain.ManualCVEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("manual_cv_entries").
		Columns("tenant_id", "date", "route_key", "count").
		Values(entry.TenantID, entry.Date, entry.RouteKey, entry.Count).
		Suffix(`
			ON CONFLICT (tenant_id, date, route_key) DO UPDATE SET
				count = EXCLUDED.count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar lançamento manual: %w", err)
	}

	return nil
}

func deleteManualEntry(ctx context.Context, q postgres.Queryer, tenantID, date, routeKey string) (int64, error) {
	query, args, err := squirrel.Delete("manual_cv_entries").
		Where(squirrel.Eq{"tenant_id": tenantID, "date": date, "route_key": routeKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover lançamento manual: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
