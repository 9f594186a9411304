package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/infrastructure/metrics"
)

const statementCachePrefix = "statement:"

// StatementUseCase builds running-balance statements over mirrored postings.
type StatementUseCase struct {
	companyRepo CompanyRepository
	accountRepo AccountRepository
	postingRepo PostingRepository
	cache       Cache
	cacheTTL    time.Duration
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewStatementUseCase creates a new StatementUseCase. Cache and metrics may be
// nil, which disables them.
func NewStatementUseCase(
	companyRepo CompanyRepository,
	accountRepo AccountRepository,
	postingRepo PostingRepository,
	cache Cache,
	cacheTTL time.Duration,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *StatementUseCase {
	return &StatementUseCase{
		companyRepo: companyRepo,
		accountRepo: accountRepo,
		postingRepo: postingRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
		metrics:     m,
	}
}

// GetStatementInput identifies the statement to build.
type GetStatementInput struct {
	ICO          string
	AccountToken string
	Year         int
}

// GetStatement resolves the account token against the company's directory,
// fetches the postings touching the canonical code and folds them into a
// statement. Results are cached per (ico, code, year) until the next import.
func (uc *StatementUseCase) GetStatement(ctx context.Context, input GetStatementInput) (*domain.Statement, error) {
	if err := domain.ValidateICO(input.ICO); err != nil {
		return nil, err
	}
	if err := domain.ValidateYear(input.Year); err != nil {
		return nil, err
	}

	if _, err := uc.companyRepo.GetByICO(ctx, input.ICO); err != nil {
		return nil, err
	}

	records, err := uc.accountRepo.ListByCompany(ctx, input.ICO)
	if err != nil {
		return nil, err
	}

	resolved, err := domain.ResolveAccount(input.AccountToken, records)
	if err != nil {
		return nil, err
	}

	cacheKey := statementCacheKey(input.ICO, resolved.Code, input.Year)
	if cached := uc.cacheLookup(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	postings, err := uc.postingRepo.ListByAccount(ctx, input.ICO, resolved.Code, input.Year)
	if err != nil {
		return nil, err
	}

	uc.reportUnparseableAmounts(input.ICO, resolved.Code, postings)

	statement, err := domain.BuildStatement(postings, resolved.Code)
	if err != nil {
		return nil, err
	}

	statement.AccountLabel = resolved.DisplayLabel
	statement.AccountName = resolved.DisplayName
	statement.InstitutionName = resolved.InstitutionName

	if uc.metrics != nil {
		uc.metrics.StatementsBuilt.Inc()
		uc.metrics.StatementLines.Observe(float64(statement.Totals.LineCount))
	}

	uc.cacheStore(ctx, cacheKey, statement)

	return statement, nil
}

func statementCacheKey(ico, code string, year int) string {
	return fmt.Sprintf("%s%s:%s:%d", statementCachePrefix, ico, code, year)
}

// StatementCacheKeyPrefix returns the cache prefix for one company, used to
// invalidate statements after an import.
func StatementCacheKeyPrefix(ico string) string {
	return statementCachePrefix + ico + ":"
}

func (uc *StatementUseCase) cacheLookup(ctx context.Context, key string) *domain.Statement {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("statement cache read failed")
		return nil
	}
	if raw == nil {
		uc.countCache("miss")
		return nil
	}

	var statement domain.Statement
	if err := json.Unmarshal(raw, &statement); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("statement cache entry corrupt")
		return nil
	}

	uc.countCache("hit")

	return &statement
}

func (uc *StatementUseCase) cacheStore(ctx context.Context, key string, statement *domain.Statement) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(statement)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, raw, uc.cacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("statement cache write failed")
	}
}

func (uc *StatementUseCase) countCache(result string) {
	if uc.metrics != nil {
		uc.metrics.StatementCacheHits.WithLabelValues(result).Inc()
	}
}

// reportUnparseableAmounts surfaces the rows the builder will zero-fill.
// The lenient coercion itself is part of the statement contract; this only
// makes the data-quality problem visible to operators.
func (uc *StatementUseCase) reportUnparseableAmounts(ico, code string, postings []domain.Posting) {
	bad := 0
	for _, p := range postings {
		if _, err := decimal.NewFromString(p.Amount); err != nil {
			bad++
		}
	}

	if bad > 0 {
		uc.logger.Warn().
			Str("ico", ico).
			Str("account", code).
			Int("rows", bad).
			Msg("postings with unparseable amounts zero-filled")
	}
}
