// Package syncworker periodically re-mirrors the legacy exports of every
// known company, so statements keep up with the desktop sync tool without
// anyone pressing the import button.
package syncworker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/usecase"
)

// CompanyLister lists the companies to keep in sync.
type CompanyLister interface {
	ListCompanies(ctx context.Context, input usecase.ListCompaniesInput) ([]*domain.Company, error)
}

// Importer mirrors one company's export for one year.
type Importer interface {
	RunImport(ctx context.Context, ico string, year int) (*domain.ImportRun, error)
}

// Worker drives periodic import sweeps.
type Worker struct {
	companies CompanyLister
	importer  Importer
	interval  time.Duration
	batchSize int
	now       func() time.Time
	logger    zerolog.Logger
}

// Config for Worker.
type Config struct {
	Companies CompanyLister
	Importer  Importer
	Interval  time.Duration // sweep interval
	BatchSize int           // companies per listing page
	Logger    zerolog.Logger
}

// New creates a new Worker.
func New(cfg Config) *Worker {
	if cfg.Interval == 0 {
		cfg.Interval = time.Hour
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}

	return &Worker{
		companies: cfg.Companies,
		importer:  cfg.Importer,
		interval:  cfg.Interval,
		batchSize: cfg.BatchSize,
		now:       time.Now,
		logger:    cfg.Logger,
	}
}

// Start runs sweeps until the context is cancelled. One sweep imports the
// current accounting year for every company; a company whose export is
// missing or broken is logged and skipped, the sweep goes on.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info().
		Dur("interval", w.interval).
		Msg("export sync worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("export sync worker shutting down")
			return ctx.Err()
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Worker) sweep(ctx context.Context) {
	year := w.now().Year()
	offset := 0
	synced := 0
	failed := 0

	for {
		companies, err := w.companies.ListCompanies(ctx, usecase.ListCompaniesInput{
			Limit:  w.batchSize,
			Offset: offset,
		})
		if err != nil {
			w.logger.Error().Err(err).Msg("sync sweep failed to list companies")
			return
		}

		if len(companies) == 0 {
			break
		}

		for _, company := range companies {
			if ctx.Err() != nil {
				return
			}

			if _, err := w.importer.RunImport(ctx, company.ICO, year); err != nil {
				failed++
				w.logger.Warn().
					Err(err).
					Str("ico", company.ICO).
					Int("year", year).
					Msg("sync import failed, skipping company")
				continue
			}
			synced++
		}

		if len(companies) < w.batchSize {
			break
		}
		offset += w.batchSize
	}

	w.logger.Info().
		Int("year", year).
		Int("synced", synced).
		Int("failed", failed).
		Msg("export sync sweep finished")
}
