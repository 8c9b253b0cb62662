package repository

import (
	"context"
	"database/sql"
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
	monthlyCVSnapshotsTable = "monthly_cv_snapshots mcs"
	monthlyCVSnapshotFields = "mcs.id, mcs.tenant_id, mcs.period, mcs.source, mcs.total, mcs.result, mcs.created_at, mcs.updated_at"
)

//go:generate mockgen -source=monthly_cv_snapshot.go -destination=mocks/mock_monthly_cv_snapshot.go -package=mocks

type MonthlyCVSnapshotRepository interface {
	GetByTenantAndPeriod(ctx context.Context, tenantID, period string) (*domain.MonthlyCVSnapshot, error)
	ListByPeriod(ctx context.Context, period string) ([]*domain.MonthlyCVSnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.MonthlyCVSnapshot) error
	DeleteOlderThan(ctx context.Context, months int) (int64, error)
	GetAllPeriods(ctx context.Context) ([]string, error)
}

type monthlyCVSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMonthlyCVSnapshotRepository(conn *postgres.Connection) MonthlyCVSnapshotRepository {
	return &monthlyCVSnapshotRepository{
		conn: conn,
	}
}

func (r *monthlyCVSnapshotRepository) GetByTenantAndPeriod(ctx context.Context, tenantID, period string) (*domain.MonthlyCVSnapshot, error) {
	query, args, err := squirrel.
		Select(monthlyCVSnapshotFields).
		From(monthlyCVSnapshotsTable).
		Where(squirrel.Eq{"mcs.tenant_id": tenantID, "mcs.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot mensal: %w", err)
	}

	return snapshot, nil
}

func (r *monthlyCVSnapshotRepository) ListByPeriod(ctx context.Context, period string) ([]*domain.MonthlyCVSnapshot, error) {
	query, args, err := squirrel.
		Select(monthlyCVSnapshotFields).
		From(monthlyCVSnapshotsTable).
		Where(squirrel.Eq{"mcs.period": period}).
		OrderBy("mcs.tenant_id ASC").
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

	snapshots := make([]*domain.MonthlyCVSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots mensais: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *monthlyCVSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.MonthlyCVSnapshot) error {
	var resultJSON []byte
	var err error

	if snapshot.Result != nil {
		resultJSON, err = json.Marshal(snapshot.Result)
		if err != nil {
			return fmt.Errorf("erro ao serializar resultado para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_cv_snapshots").
		Columns("tenant_id", "period", "source", "total", "result").
		Values(snapshot.TenantID, snapshot.Period, snapshot.Source, snapshot.Total, resultJSON).
		Suffix(`
			ON CONFLICT (tenant_id, period) DO UPDATE SET
				source = EXCLUDED.source,
				total = EXCLUDED.total,
				result = EXCLUDED.result,
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

// DeleteOlderThan remove snapshots anteriores ao corte; o período YYYY-MM ordena lexicograficamente
func (r *monthlyCVSnapshotRepository) DeleteOlderThan(ctx context.Context, months int) (int64, error) {
	cutoffPeriod := utils.YearMonthOf(time.Now().AddDate(0, -months, 0))

	query, args, err := squirrel.Delete("monthly_cv_snapshots").
		Where(squirrel.Lt{"period": cutoffPeriod}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return execAffected(ctx, r.conn, query, args)
}

// GetAllPeriods retorna todos os períodos com snapshot no formato YYYY-MM
func (r *monthlyCVSnapshotRepository) GetAllPeriods(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("monthly_cv_snapshots").
		OrderBy("period ASC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func scanSnapshot(row rowScanner) (*domain.MonthlyCVSnapshot, error) {
	snapshot := &domain.MonthlyCVSnapshot{}
	var resultJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.TenantID,
		&snapshot.Period,
		&snapshot.Source,
		&snapshot.Total,
		&resultJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if resultJSON != nil {
		result := &domain.EffectiveCVResult{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de result: %w", err)
		}
		snapshot.Result = result
	}

	return snapshot, nil
}
