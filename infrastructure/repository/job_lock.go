package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cv-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cv-report-api/internal/domain"
)

//go:generate mockgen -source=job_lock.go -destination=mocks/mock_job_lock.go -package=mocks

// JobLockRepository controla o lock com prazo e o cursor das cadeias de execução
type JobLockRepository interface {
	Acquire(ctx context.Context, job, owner string, ttl time.Duration) (*domain.JobLock, bool, error)
	SaveCursor(ctx context.Context, job, owner string, cursor int, ttl time.Duration) error
	Release(ctx context.Context, job, owner string) error
	Get(ctx context.Context, job string) (*domain.JobLock, error)
	RecordRun(ctx context.Context, run *domain.JobRun) error
	ListRuns(ctx context.Context, job string, limit int) ([]*domain.JobRun, error)
}

type jobLockRepository struct {
	conn *postgres.Connection
}

func NewJobLockRepository(conn *postgres.Connection) JobLockRepository {
	return &jobLockRepository{
		conn: conn,
	}
}

// Acquire obtém o lock quando ele está livre, expirado ou já pertence ao mesmo dono.
// O cursor gravado é preservado para que uma cadeia interrompida continue de onde parou.
func (r *jobLockRepository) Acquire(ctx context.Context, job, owner string, ttl time.Duration) (*domain.JobLock, bool, error) {
	query, args, err := buildAcquireLockQuery(job, owner, ttl)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	lock := &domain.JobLock{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&lock.Job, &lock.Owner, &lock.LockedUntil, &lock.Cursor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("erro ao adquirir lock: %w", err)
	}

	return lock, true, nil
}

func buildAcquireLockQuery(job, owner string, ttl time.Duration) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert("job_locks").
		Columns("job", "owner", "locked_until", "cursor").
		Values(job, owner, squirrel.Expr("NOW() + (? * INTERVAL '1 second')", int64(ttl.Seconds())), 0).
		Suffix(`
			ON CONFLICT (job) DO UPDATE SET
				owner = EXCLUDED.owner,
				locked_until = EXCLUDED.locked_until
			WHERE job_locks.locked_until < NOW() OR job_locks.owner = EXCLUDED.owner
			RETURNING job, owner, locked_until, cursor
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// SaveCursor avança o cursor e estende o prazo do lock do dono atual
func (r *jobLockRepository) SaveCursor(ctx context.Context, job, owner string, cursor int, ttl time.Duration) error {
	query, args, err := squirrel.Update("job_locks").
		Set("cursor", cursor).
		Set("locked_until", squirrel.Expr("NOW() + (? * INTERVAL '1 second')", int64(ttl.Seconds()))).
		Where(squirrel.Eq{"job": job, "owner": owner}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	affected, err := execAffected(ctx, r.conn, query, args)
	if err != nil {
		return err
	}

	if affected == 0 {
		return fmt.Errorf("lock %s não pertence mais a %s", job, owner)
	}

	return nil
}

// Release zera o cursor e libera o lock imediatamente
func (r *jobLockRepository) Release(ctx context.Context, job, owner string) error {
	query, args, err := squirrel.Update("job_locks").
		Set("cursor", 0).
		Set("locked_until", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"job": job, "owner": owner}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = execAffected(ctx, r.conn, query, args)
	return err
}

func (r *jobLockRepository) Get(ctx context.Context, job string) (*domain.JobLock, error) {
	query, args, err := squirrel.
		Select("jl.job, jl.owner, jl.locked_until, jl.cursor").
		From("job_locks jl").
		Where(squirrel.Eq{"jl.job": job}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	lock := &domain.JobLock{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&lock.Job, &lock.Owner, &lock.LockedUntil, &lock.Cursor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar lock: %w", err)
	}

	return lock, nil
}

func (r *jobLockRepository) RecordRun(ctx context.Context, run *domain.JobRun) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("job_runs").
		Columns("job", "run_id", "outcome", "processed", "cursor", "message", "started_at", "finished_at").
		Values(run.Job, run.RunID, run.Outcome, run.Processed, run.Cursor, run.Message, run.StartedAt, run.FinishedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar execução: %w", err)
	}

	return nil
}

func (r *jobLockRepository) ListRuns(ctx context.Context, job string, limit int) ([]*domain.JobRun, error) {
	query, args, err := squirrel.
		Select("jr.id, jr.job, jr.run_id, jr.outcome, jr.processed, jr.cursor, jr.message, jr.started_at, jr.finished_at").
		From("job_runs jr").
		Where(squirrel.Eq{"jr.job": job}).
		OrderBy("jr.id DESC").
		Limit(uint64(limit)).
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

	runs := make([]*domain.JobRun, 0)
	for rows.Next() {
		run := &domain.JobRun{}
		if err := rows.Scan(&run.ID, &run.Job, &run.RunID, &run.Outcome, &run.Processed, &run.Cursor,
			&run.Message, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}
