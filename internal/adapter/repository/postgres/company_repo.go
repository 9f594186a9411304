package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uctoportal/backend/internal/domain"
)

// CompanyRepository implements usecase.CompanyRepository.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// GetByICO retrieves a company by its IČO.
func (r *CompanyRepository) GetByICO(ctx context.Context, ico string) (*domain.Company, error) {
	const query = `
		SELECT id, ico, name, created_at, updated_at
		FROM companies
		WHERE ico = $1`

	var c domain.Company

	err := r.pool.QueryRow(ctx, query, ico).Scan(&c.ID, &c.ICO, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}

		return nil, err
	}

	return &c, nil
}

// List lists companies with pagination.
func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]*domain.Company, error) {
	const query = `
		SELECT id, ico, name, created_at, updated_at
		FROM companies
		ORDER BY name
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.ICO, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, &c)
	}

	return companies, rows.Err()
}
