package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/cv-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	dailyEventCountsTable = "ga4_daily_event_counts dec"
)

//go:generate mockgen -source=event_count.go -destination=mocks/mock_event_count.go -package=mocks

// EventCountRepository guarda as contagens diárias por evento vindas do GA4
type EventCountRepository interface {
	GetByDateRange(ctx context.Context, tenantID string, startDate, endDate time.Time) ([]*domain.DailyEventCountEntry, error)
	SaveOrUpdate(ctx context.Context, entry *domain.DailyEventCountEntry) error
	DeleteByTenant(ctx context.Context, tenantID string) (int64, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type eventCountRepository struct {
	conn *postgres.Connection
}

func NewEventCountRepository(conn *postgres.Connection) EventCountRepository {
	return &eventCountRepository{
		conn: conn,
	}
}

func (r *eventCountRepository) GetByDateRange(ctx context.Context, tenantID string, startDate, endDate time.Time) ([]*domain.DailyEventCountEntry, error) {
	query, args, err := squirrel.
		Select("dec.tenant_id, dec.date, dec.counts, dec.updated_at").
		From(dailyEventCountsTable).
		Where(squirrel.Eq{"dec.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"dec.date": startDate.Format(utils.DateLayout)}).
		Where(squirrel.LtOrEq{"dec.date": endDate.Format(utils.DateLayout)}).
		OrderBy("dec.date ASC").
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

	entries := make([]*domain.DailyEventCountEntry, 0)
	for rows.Next() {
		entry := &domain.DailyEventCountEntry{}
		var date time.Time
		var countsJSON []byte

		if err := rows.Scan(&entry.TenantID, &date, &countsJSON, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagens diárias: %w", err)
		}

		entry.Date = date.Format(utils.DateLayout)
		entry.Counts = map[string]int{}
		if countsJSON != nil {
			if err := json.Unmarshal(countsJSON, &entry.Counts); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de counts: %w", err)
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *eventCountRepository) SaveOrUpdate(ctx context.Context, entry *domain.DailyEventCountEntry) error {
	countsJSON, err := json.Marshal(entry.Counts)
	if err != nil {
		return fmt.Errorf("erro ao serializar counts para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ga4_daily_event_counts").
		Columns("tenant_id", "date", "counts").
		Values(entry.TenantID, entry.Date, countsJSON).
		Suffix(`
			ON CONFLICT (tenant_id, date) DO UPDATE SET
				counts = EXCLUDED.counts,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteByTenant descarta o cache diário do tenant; usado quando as rotas mudam
func (r *eventCountRepository) DeleteByTenant(ctx context.Context, tenantID string) (int64, error) {
	query, args, err := squirrel.Delete("ga4_daily_event_counts").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return execAffected(ctx, r.conn, query, args)
}

func (r *eventCountRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(utils.DateLayout)

	query, args, err := squirrel.Delete("ga4_daily_event_counts").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return execAffected(ctx, r.conn, query, args)
}

func execAffected(ctx context.Context, q postgres.Queryer, query string, args []any) (int64, error) {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
