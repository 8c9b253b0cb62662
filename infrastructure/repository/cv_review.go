package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cv-report-api/internal/domain"
)

const (
	cvReviewRowsTable = "cv_review_rows crr"

	// undefined_table
	pqUndefinedTable = "42P01"

	// 10 colunas por linha, bem abaixo do limite de 65535 parâmetros do protocolo
	ingestBatchSize = 1000
)

const createCVReviewRowsTable = `
CREATE TABLE IF NOT EXISTS cv_review_rows (
	tenant_id VARCHAR(64) NOT NULL,
	year_month CHAR(7) NOT NULL,
	row_hash CHAR(32) NOT NULL,
	event_name VARCHAR(120) NOT NULL,
	occurrence_minute CHAR(16) NOT NULL,
	page_path TEXT NOT NULL DEFAULT '',
	source_medium VARCHAR(255) NOT NULL DEFAULT '',
	device_category VARCHAR(64) NOT NULL DEFAULT '',
	country VARCHAR(120) NOT NULL DEFAULT '',
	event_count INTEGER NOT NULL DEFAULT 1,
	status SMALLINT NOT NULL DEFAULT 0,
	memo TEXT NOT NULL DEFAULT '',
	updated_by VARCHAR(255),
	updated_at TIMESTAMP,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	PRIMARY KEY (tenant_id, year_month, row_hash)
)`

//go:generate mockgen -source=cv_review.go -destination=mocks/mock_cv_review.go -package=mocks

type CVReviewRepository interface {
	ListByMonth(ctx context.Context, tenantID, ym string) ([]*domain.CVReviewRow, error)
	UpsertIngested(ctx context.Context, rows []*domain.CVReviewRow) error
	UpdateStatus(ctx context.Context, tenantID, ym string, updates []domain.ReviewUpdate, updatedBy string) (int, error)
	SummarizeMonth(ctx context.Context, tenantID, ym string) (*domain.ReviewSummary, error)
	EnsureSchema(ctx context.Context) error
}

type cvReviewRepository struct {
	conn *postgres.Connection
}

func NewCVReviewRepository(conn *postgres.Connection) CVReviewRepository {
	return &cvReviewRepository{
		conn: conn,
	}
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable
}

// EnsureSchema cria a tabela de revisão quando ela ainda não existe
func (r *cvReviewRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createCVReviewRowsTable); err != nil {
		return fmt.Errorf("erro ao criar tabela cv_review_rows: %w", err)
	}

	logrus.Info("Tabela cv_review_rows provisionada")
	return nil
}

// withSchema executa fn e, se a tabela não existir, provisiona e tenta de novo uma vez
func (r *cvReviewRepository) withSchema(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || !isUndefinedTable(err) {
		return err
	}

	logrus.Warn("Tabela cv_review_rows ausente, provisionando antes de gravar")
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}

	return fn()
}

func (r *cvReviewRepository) ListByMonth(ctx context.Context, tenantID, ym string) ([]*domain.CVReviewRow, error) {
	query, args, err := squirrel.
		Select("crr.tenant_id, crr.year_month, crr.row_hash, crr.event_name, crr.occurrence_minute, crr.page_path, " +
			"crr.source_medium, crr.device_category, crr.country, crr.event_count, crr.status, crr.memo, crr.updated_by, crr.updated_at").
		From(cvReviewRowsTable).
		Where(squirrel.Eq{"crr.tenant_id": tenantID, "crr.year_month": ym}).
		OrderBy("crr.occurrence_minute ASC", "crr.event_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return []*domain.CVReviewRow{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.CVReviewRow, 0)
	for rows.Next() {
		row := &domain.CVReviewRow{}
		var updatedBy sql.NullString
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&row.TenantID,
			&row.YearMonth,
			&row.RowHash,
			&row.EventName,
			&row.OccurrenceMinute,
			&row.PagePath,
			&row.SourceMedium,
			&row.DeviceCategory,
			&row.Country,
			&row.EventCount,
			&row.Status,
			&row.Memo,
			&updatedBy,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de revisão: %w", err)
		}
		if updatedBy.Valid {
			row.UpdatedBy = &updatedBy.String
		}
		if updatedAt.Valid {
			row.UpdatedAt = &updatedAt.Time
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// UpsertIngested materializa as linhas vindas do feed sem tocar em status e memo já gravados.
// As linhas vão em lotes de ingestBatchSize dentro de uma única transação.
func (r *cvReviewRepository) UpsertIngested(ctx context.Context, rows []*domain.CVReviewRow) error {
	if len(rows) == 0 {
		return nil
	}

	batches := batchReviewRows(rows, ingestBatchSize)

	return r.withSchema(ctx, func() error {
		return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
			for i, batch := range batches {
				query, args, err := buildUpsertIngestedQuery(batch)
				if err != nil {
					return fmt.Errorf("erro ao construir a query: %w", err)
				}

				if _, err := q.ExecContext(ctx, query, args...); err != nil {
					var pqErr *pq.Error
					if errors.As(err, &pqErr) {
						return fmt.Errorf("erro no banco de dados no lote %d/%d: %w (código: %s)", i+1, len(batches), pqErr, pqErr.Code)
					}
					return fmt.Errorf("erro ao materializar linhas de revisão: %w", err)
				}
			}
			return nil
		})
	})
}

// batchReviewRows fatia as linhas mantendo a ordem; o último lote pode ser menor
func batchReviewRows(rows []*domain.CVReviewRow, size int) [][]*domain.CVReviewRow {
	batches := make([][]*domain.CVReviewRow, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		batches = append(batches, rows[start:end])
	}
	return batches
}

func buildUpsertIngestedQuery(rows []*domain.CVReviewRow) (string, []any, error) {
	query := squirrel.StatementBuilder.
		Insert("cv_review_rows").
		Columns("tenant_id", "year_month", "row_hash", "event_name", "occurrence_minute",
			"page_path", "source_medium", "device_category", "country", "event_count").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		query = query.Values(
			row.TenantID,
			row.YearMonth,
			row.RowHash,
			row.EventName,
			row.OccurrenceMinute,
			row.PagePath,
			row.SourceMedium,
			row.DeviceCategory,
			row.Country,
			row.EventCount,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (tenant_id, year_month, row_hash) DO UPDATE SET
				page_path = EXCLUDED.page_path,
				source_medium = EXCLUDED.source_medium,
				device_category = EXCLUDED.device_category,
				country = EXCLUDED.country,
				event_count = EXCLUDED.event_count
		`)

	return query.ToSql()
}

// UpdateStatus grava status e memo das linhas informadas e devolve quantas existiam
func (r *cvReviewRepository) UpdateStatus(ctx context.Context, tenantID, ym string, updates []domain.ReviewUpdate, updatedBy string) (int, error) {
	updated := 0

	err := r.withSchema(ctx, func() error {
		updated = 0
		return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
			for _, update := range updates {
				query, args, err := buildUpdateStatusQuery(tenantID, ym, update, updatedBy)
				if err != nil {
					return fmt.Errorf("erro ao construir a query: %w", err)
				}

				result, err := q.ExecContext(ctx, query, args...)
				if err != nil {
					return err
				}

				affected, err := result.RowsAffected()
				if err != nil {
					return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
				}
				updated += int(affected)
			}
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar status de revisão: %w", err)
	}

	return updated, nil
}

func buildUpdateStatusQuery(tenantID, ym string, update domain.ReviewUpdate, updatedBy string) (string, []any, error) {
	query := squirrel.Update("cv_review_rows").
		Set("status", int(update.Status)).
		Set("updated_by", updatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tenant_id": tenantID, "year_month": ym, "row_hash": update.RowHash}).
		PlaceholderFormat(squirrel.Dollar)

	if update.Memo != nil {
		query = query.Set("memo", *update.Memo)
	}

	return query.ToSql()
}

// SummarizeMonth agrega os status gravados por dia, base da fonte "reviewed" do resolvedor
func (r *cvReviewRepository) SummarizeMonth(ctx context.Context, tenantID, ym string) (*domain.ReviewSummary, error) {
	query, args, err := squirrel.
		Select("crr.status, SUBSTRING(crr.occurrence_minute FROM 1 FOR 10) AS day, COUNT(*)").
		From(cvReviewRowsTable).
		Where(squirrel.Eq{"crr.tenant_id": tenantID, "crr.year_month": ym}).
		Where(squirrel.NotEq{"crr.status": int(domain.ReviewStatusUnreviewed)}).
		GroupBy("crr.status", "day").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return summarizeStatusCounts(nil), nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]statusDayCount, 0)
	for rows.Next() {
		var c statusDayCount
		if err := rows.Scan(&c.Status, &c.Day, &c.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de revisão: %w", err)
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summarizeStatusCounts(counts), nil
}

type statusDayCount struct {
	Status domain.ReviewStatus
	Day    string
	Count  int
}

func summarizeStatusCounts(counts []statusDayCount) *domain.ReviewSummary {
	summary := &domain.ReviewSummary{ValidByDay: map[string]int{}}

	for _, c := range counts {
		if c.Status == domain.ReviewStatusUnreviewed {
			continue
		}

		summary.Reviewed += c.Count

		switch c.Status {
		case domain.ReviewStatusValid:
			summary.Valid += c.Count
			summary.ValidByDay[c.Day] += c.Count
		case domain.ReviewStatusInvalid:
			summary.Invalid += c.Count
		}
	}

	return summary
}
