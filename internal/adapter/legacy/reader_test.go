package legacy

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/uctoportal/backend/internal/domain"
)

const (
	testICO  = "25596641"
	testYear = 2024
)

func writeExport(t *testing.T, dir string) {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(dir, "25596641_2024.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE accounts (
			id TEXT PRIMARY KEY,
			code TEXT,
			display_label TEXT,
			institution_name TEXT,
			is_cash INTEGER
		);
		CREATE TABLE journal (
			id TEXT PRIMARY KEY,
			ref_number TEXT,
			posting_date TEXT,
			description TEXT,
			amount TEXT,
			debit_side TEXT,
			credit_side TEXT,
			counterparty TEXT
		);`)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO accounts VALUES
			('a1', '221000', 'Fio běžný', 'Fio banka', 0),
			('a2', NULL, NULL, NULL, 1);
		INSERT INTO journal VALUES
			('p1', '1', '2024-01-02', 'faktura 2024001', '1500.50', '221000', '311000', 'Odběratel a.s.'),
			('p2', '2', 'neznámé', '', 'xx', '321000', '221000', NULL),
			('p3', '3', '2024-02-10', 'nájem', '800', '321000', '221000', 'Pronajímatel');`)
	require.NoError(t, err)
}

func TestReader_ReadAccounts(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir)

	r := NewReader(dir, zerolog.Nop())

	records, err := r.ReadAccounts(context.Background(), testICO, testYear)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, "221000", records[0].Code)
	require.Equal(t, "Fio banka", records[0].InstitutionName)
	require.False(t, records[0].IsCash)

	// NULL columns degrade to empty values, not errors.
	require.Equal(t, "", records[1].Code)
	require.True(t, records[1].IsCash)
}

func TestReader_ReadPostings(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir)

	r := NewReader(dir, zerolog.Nop())

	postings, err := r.ReadPostings(context.Background(), testICO, testYear)
	require.NoError(t, err)
	require.Len(t, postings, 3)

	byID := map[string]domain.Posting{}
	for _, p := range postings {
		byID[p.ID] = p
	}

	require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), byID["p1"].Date)
	require.Equal(t, "1500.50", byID["p1"].Amount)
	require.Equal(t, "Odběratel a.s.", byID["p1"].Counterparty)

	// Garbage dates and amounts come through raw; nothing rejects the row.
	require.True(t, byID["p2"].Date.IsZero())
	require.Equal(t, "xx", byID["p2"].Amount)
	require.Equal(t, "", byID["p2"].Counterparty)
}

func TestReader_MissingExport(t *testing.T) {
	r := NewReader(t.TempDir(), zerolog.Nop())

	_, err := r.ReadAccounts(context.Background(), testICO, testYear)
	require.ErrorIs(t, err, domain.ErrExportNotFound)

	_, err = r.ReadPostings(context.Background(), testICO, testYear)
	require.ErrorIs(t, err, domain.ErrExportNotFound)
}

func TestReader_ExportPath(t *testing.T) {
	r := NewReader("/var/exports", zerolog.Nop())
	require.Equal(t, filepath.Join("/var/exports", "25596641_2024.db"), r.ExportPath(testICO, testYear))
}

func TestRetrier_TransientErrorRetries(t *testing.T) {
	r := NewRetrier(zerolog.Nop())
	r.maxRetries = 2
	r.initialInterval = time.Millisecond
	r.maxInterval = 2 * time.Millisecond
	r.maxElapsedTime = 50 * time.Millisecond

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		if attempts < 2 {
			return errors.New("database is locked")
		}
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 2, attempts)
}

func TestRetrier_MissingExportIsPermanent(t *testing.T) {
	r := NewRetrier(zerolog.Nop())

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		return domain.ErrExportNotFound
	})

	require.ErrorIs(t, err, domain.ErrExportNotFound)
	require.Equal(t, 1, attempts)
}

func TestRetrier_GivesUpAfterMaxRetries(t *testing.T) {
	r := NewRetrier(zerolog.Nop())
	r.maxRetries = 2
	r.initialInterval = time.Millisecond
	r.maxInterval = 2 * time.Millisecond
	r.maxElapsedTime = 100 * time.Millisecond

	attempts := 0
	readErr := errors.New("database is locked")
	err := r.Retry(context.Background(), func() error {
		attempts++
		return readErr
	})

	require.ErrorIs(t, err, readErr)
	require.Equal(t, 3, attempts)
}
