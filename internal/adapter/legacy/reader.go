// Package legacy reads mirrored Pohoda ledger exports. The desktop-side sync
// tool dumps each company's accounting journal into one SQLite file per year;
// this package is the read side of that hand-off. Reads are best effort: the
// export may be missing, locked mid-write or half-broken, and callers are
// expected to retry or degrade.
package legacy

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/uctoportal/backend/internal/domain"
)

const exportDateLayout = "2006-01-02"

// Reader implements usecase.LegacyExportSource over export files named
// <ico>_<year>.db under the export directory.
type Reader struct {
	dir    string
	logger zerolog.Logger
}

// NewReader creates a new Reader.
func NewReader(dir string, logger zerolog.Logger) *Reader {
	return &Reader{dir: dir, logger: logger}
}

// ExportPath returns the export file path for a company and year.
func (r *Reader) ExportPath(ico string, year int) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s_%d.db", ico, year))
}

// ReadAccounts reads the exported account directory.
func (r *Reader) ReadAccounts(ctx context.Context, ico string, year int) ([]domain.AccountRecord, error) {
	db, err := r.open(ico, year)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	const query = `
		SELECT id, code, display_label, institution_name, is_cash
		FROM accounts
		ORDER BY id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AccountRecord, 0)
	for rows.Next() {
		var (
			rec               domain.AccountRecord
			code, label, inst sql.NullString
			isCash            sql.NullBool
		)

		if err := rows.Scan(&rec.ID, &code, &label, &inst, &isCash); err != nil {
			return nil, fmt.Errorf("read accounts: %w", err)
		}

		rec.Code = code.String
		rec.DisplayLabel = label.String
		rec.InstitutionName = inst.String
		rec.IsCash = isCash.Bool
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ReadPostings reads the exported journal. Rows come back in journal order;
// dates and amounts are kept as loosely as the export stores them.
func (r *Reader) ReadPostings(ctx context.Context, ico string, year int) ([]domain.Posting, error) {
	db, err := r.open(ico, year)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	const query = `
		SELECT id, ref_number, posting_date, description, amount,
		       debit_side, credit_side, counterparty
		FROM journal
		ORDER BY posting_date, id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	defer rows.Close()

	postings := make([]domain.Posting, 0)
	for rows.Next() {
		var (
			p                       domain.Posting
			ref, date, desc, amount sql.NullString
			debit, credit, party    sql.NullString
		)

		err := rows.Scan(&p.ID, &ref, &date, &desc, &amount, &debit, &credit, &party)
		if err != nil {
			return nil, fmt.Errorf("read journal: %w", err)
		}

		p.RefNumber = ref.String
		p.Date = r.parseDate(p.ID, date.String)
		p.Description = desc.String
		p.Amount = amount.String
		p.DebitSide = debit.String
		p.CreditSide = credit.String
		p.Counterparty = party.String
		postings = append(postings, p)
	}

	return postings, rows.Err()
}

func (r *Reader) open(ico string, year int) (*sql.DB, error) {
	path := r.ExportPath(ico, year)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrExportNotFound, path)
		}

		return nil, fmt.Errorf("stat export: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open export: %w", err)
	}

	return db, nil
}

// parseDate tolerates the garbage dates common in old exports. A row with an
// unusable date still belongs to the journal, it just sorts to the front.
func (r *Reader) parseDate(id, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	t, err := time.Parse(exportDateLayout, raw)
	if err != nil {
		r.logger.Warn().Str("posting_id", id).Str("date", raw).Msg("unparseable posting date in export")
		return time.Time{}
	}

	return t
}
