package usecase

import (
	"context"
	"time"

	"github.com/uctoportal/backend/internal/domain"
)

// CompanyRepository defines data access for companies.
type CompanyRepository interface {
	GetByICO(ctx context.Context, ico string) (*domain.Company, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Company, error)
}

// AccountRepository defines data access for the per-company account directory.
type AccountRepository interface {
	ListByCompany(ctx context.Context, ico string) ([]domain.AccountRecord, error)
	ReplaceByCompanyTx(ctx context.Context, tx Transaction, ico string, records []domain.AccountRecord) error
}

// PostingRepository defines data access for mirrored journal rows.
//
// ListByAccount returns only rows where accountCode is on the debit or credit
// side, ordered ascending by posting date. The statement builder relies on the
// filtering; the ordering it re-checks itself.
type PostingRepository interface {
	ListByAccount(ctx context.Context, ico, accountCode string, year int) ([]domain.Posting, error)
	ReplaceYearTx(ctx context.Context, tx Transaction, ico string, year int, postings []domain.Posting) error
}

// ImportRunRepository defines data access for import-run history.
type ImportRunRepository interface {
	Create(ctx context.Context, run *domain.ImportRun) error
	ListByCompany(ctx context.Context, ico string, limit, offset int) ([]*domain.ImportRun, error)
}

// LegacyExportSource reads a company's mirrored ledger export for one year.
// Reads are best effort: a missing file maps to domain.ErrExportNotFound and
// anything else is an opaque read error.
type LegacyExportSource interface {
	ReadAccounts(ctx context.Context, ico string, year int) ([]domain.AccountRecord, error)
	ReadPostings(ctx context.Context, ico string, year int) ([]domain.Posting, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations. Get returns (nil, nil) when the key is
// absent.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// Retrier retries an operation on transient failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
