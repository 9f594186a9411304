package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uctoportal/backend/internal/domain"
)

// ImportRunRepository implements usecase.ImportRunRepository.
type ImportRunRepository struct {
	pool *pgxpool.Pool
}

// NewImportRunRepository creates a new ImportRunRepository.
func NewImportRunRepository(pool *pgxpool.Pool) *ImportRunRepository {
	return &ImportRunRepository{pool: pool}
}

// Create records an import run.
func (r *ImportRunRepository) Create(ctx context.Context, run *domain.ImportRun) error {
	const insert = `
		INSERT INTO import_runs (id, ico, year, account_count, posting_count,
		                         status, error, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, insert,
		run.ID, run.ICO, run.Year, run.AccountCount, run.PostingCount,
		string(run.Status), run.Error,
		pgtype.Timestamptz{Time: run.StartedAt, Valid: true},
		pgtype.Timestamptz{Time: run.FinishedAt, Valid: true},
	)

	return err
}

// ListByCompany returns a company's import history, newest first.
func (r *ImportRunRepository) ListByCompany(ctx context.Context, ico string, limit, offset int) ([]*domain.ImportRun, error) {
	const query = `
		SELECT id, ico, year, account_count, posting_count, status, error,
		       started_at, finished_at
		FROM import_runs
		WHERE ico = $1
		ORDER BY started_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, ico, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*domain.ImportRun, 0)
	for rows.Next() {
		var (
			run      domain.ImportRun
			status   string
			started  pgtype.Timestamptz
			finished pgtype.Timestamptz
		)

		err := rows.Scan(&run.ID, &run.ICO, &run.Year, &run.AccountCount,
			&run.PostingCount, &status, &run.Error, &started, &finished)
		if err != nil {
			return nil, err
		}

		run.Status = domain.ImportRunStatus(status)
		run.StartedAt = started.Time
		run.FinishedAt = finished.Time
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
