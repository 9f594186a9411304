// Package testutil provides database fixtures for integration tests. The
// tests need a running PostgreSQL; set TEST_DATABASE_URL to point at one,
// otherwise they skip.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/infrastructure/postgres"
)

// TestDB provides isolated test database connections.
type TestDB struct {
	Pool *pgxpool.Pool
	t    *testing.T
}

// NewTestDB connects to the integration database and applies migrations.
// Skips the test when TEST_DATABASE_URL is not set.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	migrationsPath := "../../internal/infrastructure/postgres/migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		migrationsPath = "internal/infrastructure/postgres/migrations"
	}

	if err := postgres.RunMigrations(dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	return &TestDB{Pool: pool, t: t}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all data from tables.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `TRUNCATE companies, accounts, postings, import_runs CASCADE`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// SeedCompany inserts a company and returns it.
func (db *TestDB) SeedCompany(ctx context.Context, ico, name string) *domain.Company {
	db.t.Helper()

	company := &domain.Company{
		ID:   ulid.Make().String(),
		ICO:  ico,
		Name: name,
	}

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO companies (id, ico, name) VALUES ($1, $2, $3)`,
		company.ID, company.ICO, company.Name,
	)
	if err != nil {
		db.t.Fatalf("failed to seed company: %v", err)
	}

	return company
}

// SeedAccount inserts one account-directory row.
func (db *TestDB) SeedAccount(ctx context.Context, ico string, rec domain.AccountRecord) {
	db.t.Helper()

	if rec.ID == "" {
		rec.ID = ulid.Make().String()
	}

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO accounts (id, ico, code, display_label, institution_name, is_cash)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, ico, rec.Code, rec.DisplayLabel, rec.InstitutionName, rec.IsCash,
	)
	if err != nil {
		db.t.Fatalf("failed to seed account: %v", err)
	}
}

// SeedPosting inserts one mirrored journal row.
func (db *TestDB) SeedPosting(ctx context.Context, ico string, year int, p domain.Posting) {
	db.t.Helper()

	if p.ID == "" {
		p.ID = ulid.Make().String()
	}

	var date any
	if !p.Date.IsZero() {
		date = p.Date
	}

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO postings (id, ico, year, ref_number, posting_date, description,
		                       amount, debit_side, credit_side, counterparty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, ico, year, p.RefNumber, date, p.Description,
		p.Amount, p.DebitSide, p.CreditSide, p.Counterparty,
	)
	if err != nil {
		db.t.Fatalf("failed to seed posting: %v", err)
	}
}
