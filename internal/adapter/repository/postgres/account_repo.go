package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository over the mirrored
// account directory.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// ListByCompany returns the account directory of a company.
func (r *AccountRepository) ListByCompany(ctx context.Context, ico string) ([]domain.AccountRecord, error) {
	const query = `
		SELECT id, code, display_label, institution_name, is_cash
		FROM accounts
		WHERE ico = $1
		ORDER BY code, display_label`

	rows, err := r.pool.Query(ctx, query, ico)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.AccountRecord, 0)
	for rows.Next() {
		var rec domain.AccountRecord
		if err := rows.Scan(&rec.ID, &rec.Code, &rec.DisplayLabel, &rec.InstitutionName, &rec.IsCash); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ReplaceByCompanyTx replaces a company's directory with the freshly imported
// one inside the import transaction.
func (r *AccountRepository) ReplaceByCompanyTx(ctx context.Context, tx usecase.Transaction, ico string, records []domain.AccountRecord) error {
	pgxTx := tx.(*Tx).PgxTx()

	if _, err := pgxTx.Exec(ctx, `DELETE FROM accounts WHERE ico = $1`, ico); err != nil {
		return err
	}

	const insert = `
		INSERT INTO accounts (id, ico, code, display_label, institution_name, is_cash)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, rec := range records {
		if _, err := pgxTx.Exec(ctx, insert,
			rec.ID, ico, rec.Code, rec.DisplayLabel, rec.InstitutionName, rec.IsCash,
		); err != nil {
			return err
		}
	}

	return nil
}
