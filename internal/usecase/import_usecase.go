package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/infrastructure/metrics"
)

// ImportUseCase mirrors a company's legacy ledger export into the portal
// tables. Reads from the export are the fragile part of the pipeline and go
// through the retrier; the write side is one transaction per run.
type ImportUseCase struct {
	txManager   TransactionManager
	companyRepo CompanyRepository
	accountRepo AccountRepository
	postingRepo PostingRepository
	runRepo     ImportRunRepository
	source      LegacyExportSource
	retrier     Retrier
	cache       Cache
	idGen       IDGenerator
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewImportUseCase creates a new ImportUseCase.
func NewImportUseCase(
	txManager TransactionManager,
	companyRepo CompanyRepository,
	accountRepo AccountRepository,
	postingRepo PostingRepository,
	runRepo ImportRunRepository,
	source LegacyExportSource,
	retrier Retrier,
	cache Cache,
	idGen IDGenerator,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *ImportUseCase {
	return &ImportUseCase{
		txManager:   txManager,
		companyRepo: companyRepo,
		accountRepo: accountRepo,
		postingRepo: postingRepo,
		runRepo:     runRepo,
		source:      source,
		retrier:     retrier,
		cache:       cache,
		idGen:       idGen,
		logger:      logger,
		metrics:     m,
	}
}

// RunImport reads the export for (ico, year) and replaces the mirrored
// account directory and the year's postings. Every attempt leaves an import
// run behind, failed ones included.
func (uc *ImportUseCase) RunImport(ctx context.Context, ico string, year int) (*domain.ImportRun, error) {
	if err := domain.ValidateICO(ico); err != nil {
		return nil, err
	}
	if err := domain.ValidateYear(year); err != nil {
		return nil, err
	}

	if _, err := uc.companyRepo.GetByICO(ctx, ico); err != nil {
		return nil, err
	}

	run := &domain.ImportRun{
		ID:        uc.idGen.Generate(),
		ICO:       ico,
		Year:      year,
		StartedAt: time.Now().UTC(),
	}

	accounts, postings, err := uc.readExport(ctx, ico, year)
	if err == nil {
		err = uc.mirror(ctx, ico, year, accounts, postings)
	}

	run.FinishedAt = time.Now().UTC()

	if err != nil {
		run.Status = domain.ImportRunFailed
		run.Error = err.Error()
		uc.recordRun(ctx, run)
		uc.countRun(run)

		return nil, fmt.Errorf("import %s/%d: %w", ico, year, err)
	}

	run.Status = domain.ImportRunSucceeded
	run.AccountCount = len(accounts)
	run.PostingCount = len(postings)
	uc.recordRun(ctx, run)
	uc.countRun(run)

	uc.invalidateStatements(ctx, ico)

	uc.logger.Info().
		Str("ico", ico).
		Int("year", year).
		Int("accounts", run.AccountCount).
		Int("postings", run.PostingCount).
		Msg("ledger export mirrored")

	return run, nil
}

// ListImports returns the import-run history for a company.
func (uc *ImportUseCase) ListImports(ctx context.Context, ico string, limit, offset int) ([]*domain.ImportRun, error) {
	if err := domain.ValidateICO(ico); err != nil {
		return nil, err
	}

	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.runRepo.ListByCompany(ctx, ico, limit, offset)
}

func (uc *ImportUseCase) readExport(ctx context.Context, ico string, year int) ([]domain.AccountRecord, []domain.Posting, error) {
	var (
		accounts []domain.AccountRecord
		postings []domain.Posting
	)

	err := uc.retrier.Retry(ctx, func() error {
		var readErr error

		accounts, readErr = uc.source.ReadAccounts(ctx, ico, year)
		if readErr != nil {
			return readErr
		}

		postings, readErr = uc.source.ReadPostings(ctx, ico, year)

		return readErr
	})
	if err != nil {
		uc.countReadError(err)
		return nil, nil, fmt.Errorf("read export: %w", err)
	}

	return accounts, postings, nil
}

func (uc *ImportUseCase) countReadError(err error) {
	if uc.metrics == nil {
		return
	}

	kind := "read"
	if errors.Is(err, domain.ErrExportNotFound) {
		kind = "missing"
	}

	uc.metrics.ExportReadErrors.WithLabelValues(kind).Inc()
}

func (uc *ImportUseCase) mirror(ctx context.Context, ico string, year int, accounts []domain.AccountRecord, postings []domain.Posting) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := uc.accountRepo.ReplaceByCompanyTx(ctx, tx, ico, accounts); err != nil {
		return fmt.Errorf("mirror accounts: %w", err)
	}

	if err := uc.postingRepo.ReplaceYearTx(ctx, tx, ico, year, postings); err != nil {
		return fmt.Errorf("mirror postings: %w", err)
	}

	return tx.Commit(ctx)
}

func (uc *ImportUseCase) recordRun(ctx context.Context, run *domain.ImportRun) {
	if err := uc.runRepo.Create(ctx, run); err != nil {
		uc.logger.Error().Err(err).Str("run_id", run.ID).Msg("failed to record import run")
	}
}

func (uc *ImportUseCase) countRun(run *domain.ImportRun) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.ImportRuns.WithLabelValues(string(run.Status)).Inc()
	uc.metrics.ImportDuration.Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())

	if run.Status == domain.ImportRunSucceeded {
		uc.metrics.PostingsImported.Add(float64(run.PostingCount))
		uc.metrics.AccountsImported.Add(float64(run.AccountCount))
	}
}

func (uc *ImportUseCase) invalidateStatements(ctx context.Context, ico string) {
	if uc.cache == nil {
		return
	}

	if err := uc.cache.DeleteByPrefix(ctx, StatementCacheKeyPrefix(ico)); err != nil {
		uc.logger.Warn().Err(err).Str("ico", ico).Msg("statement cache invalidation failed")
	}
}
