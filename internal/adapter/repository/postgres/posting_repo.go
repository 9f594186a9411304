package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/usecase"
)

// PostingRepository implements usecase.PostingRepository over mirrored journal
// rows.
type PostingRepository struct {
	pool *pgxpool.Pool
}

// NewPostingRepository creates a new PostingRepository.
func NewPostingRepository(pool *pgxpool.Pool) *PostingRepository {
	return &PostingRepository{pool: pool}
}

// ListByAccount returns the rows touching accountCode on either side, ordered
// ascending by posting date. Undated rows sort first, ties keep insert order
// via the id.
func (r *PostingRepository) ListByAccount(ctx context.Context, ico, accountCode string, year int) ([]domain.Posting, error) {
	const query = `
		SELECT id, ref_number, posting_date, description, amount,
		       debit_side, credit_side, counterparty
		FROM postings
		WHERE ico = $1
		  AND year = $2
		  AND (debit_side = $3 OR credit_side = $3)
		ORDER BY posting_date ASC NULLS FIRST, id ASC`

	rows, err := r.pool.Query(ctx, query, ico, year, accountCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postings := make([]domain.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}

	return postings, rows.Err()
}

// ReplaceYearTx replaces one year of a company's mirrored postings inside the
// import transaction.
func (r *PostingRepository) ReplaceYearTx(ctx context.Context, tx usecase.Transaction, ico string, year int, postings []domain.Posting) error {
	pgxTx := tx.(*Tx).PgxTx()

	if _, err := pgxTx.Exec(ctx, `DELETE FROM postings WHERE ico = $1 AND year = $2`, ico, year); err != nil {
		return err
	}

	const insert = `
		INSERT INTO postings (id, ico, year, ref_number, posting_date, description,
		                      amount, debit_side, credit_side, counterparty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	batch := &pgx.Batch{}
	for _, p := range postings {
		batch.Queue(insert,
			p.ID, ico, year, p.RefNumber, timeToPgDate(p.Date), p.Description,
			p.Amount, p.DebitSide, p.CreditSide, p.Counterparty,
		)
	}

	return pgxTx.SendBatch(ctx, batch).Close()
}

func scanPosting(rows pgx.Rows) (domain.Posting, error) {
	var (
		p    domain.Posting
		date pgtype.Date
	)

	err := rows.Scan(&p.ID, &p.RefNumber, &date, &p.Description, &p.Amount,
		&p.DebitSide, &p.CreditSide, &p.Counterparty)
	if err != nil {
		return domain.Posting{}, err
	}

	if date.Valid {
		p.Date = date.Time
	}

	return p, nil
}

func timeToPgDate(t time.Time) pgtype.Date {
	// Zero time means the export row had no parseable date; keep it NULL.
	return pgtype.Date{Time: t, Valid: !t.IsZero()}
}
