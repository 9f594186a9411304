package domain

import (
	"time"
)

// PostingKind classifies a posting relative to the statement's account.
type PostingKind string

const (
	// PostingKindCredit is an inflow: the account sits on the debit (MD) side
	// of the journal entry.
	PostingKindCredit PostingKind = "credit"
	// PostingKindDebit is an outflow: the account sits on the credit (D) side.
	PostingKindDebit PostingKind = "debit"
)

// Posting is one journal-entry row mirrored from the legacy ledger export.
// It links two accounts via a debit side and a credit side plus an amount.
type Posting struct {
	ID           string
	RefNumber    string
	Date         time.Time // zero when the export row carried no parseable date
	Description  string
	Amount       string // raw non-negative magnitude as exported
	DebitSide    string
	CreditSide   string
	Counterparty string
}
