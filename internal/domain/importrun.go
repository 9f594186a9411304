package domain

import "time"

// ImportRunStatus is the outcome of one legacy-export mirror run.
type ImportRunStatus string

const (
	ImportRunSucceeded ImportRunStatus = "succeeded"
	ImportRunFailed    ImportRunStatus = "failed"
)

// ImportRun records one attempt to mirror a company's ledger export for a year
// into the portal tables.
type ImportRun struct {
	ID           string
	ICO          string
	Year         int
	AccountCount int
	PostingCount int
	Status       ImportRunStatus
	Error        string
	StartedAt    time.Time
	FinishedAt   time.Time
}
