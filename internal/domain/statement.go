package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// StatementLine is one row of an account statement with the balance after it.
type StatementLine struct {
	Posting        Posting
	Description    string
	CreditAmount   decimal.Decimal
	DebitAmount    decimal.Decimal
	RunningBalance decimal.Decimal
	Kind           PostingKind
}

// StatementTotals aggregates a statement.
type StatementTotals struct {
	TotalCredit  decimal.Decimal
	TotalDebit   decimal.Decimal
	FinalBalance decimal.Decimal
	LineCount    int
}

// Statement is the ordered running-balance view of one account.
// It is computed per request and never persisted.
type Statement struct {
	AccountCode     string
	AccountLabel    string
	AccountName     string
	InstitutionName string
	Lines           []StatementLine
	Totals          StatementTotals
}

// BuildStatement folds a batch of postings into a chronological statement for
// accountCode. The batch must already be filtered to rows where accountCode is
// on the debit or credit side; the builder only decides which side it is.
//
// A posting whose debit side equals accountCode is an inflow and increases the
// balance (the MD/D convention of the source ledger); any other posting is an
// outflow. When both sides equal accountCode the debit-side check wins.
// Unparseable amounts count as zero rather than failing the whole statement,
// matching the lenient handling of malformed export rows.
func BuildStatement(postings []Posting, accountCode string) (*Statement, error) {
	if accountCode == "" {
		return nil, ErrInvalidAccountCode
	}

	// The source orders ascending by date, but a defensive stable sort keeps
	// the running balance correct even when it does not. Ties and zero dates
	// keep their batch order.
	ordered := make([]Posting, len(postings))
	copy(ordered, postings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	lines := make([]StatementLine, 0, len(ordered))
	balance := decimal.Zero
	totalCredit := decimal.Zero
	totalDebit := decimal.Zero

	for _, p := range ordered {
		amt, err := decimal.NewFromString(p.Amount)
		if err != nil {
			amt = decimal.Zero
		}

		line := StatementLine{
			Posting:     p,
			Description: lineDescription(p),
		}

		if p.DebitSide == accountCode {
			balance = balance.Add(amt)
			totalCredit = totalCredit.Add(amt)
			line.Kind = PostingKindCredit
			line.CreditAmount = amt
			line.DebitAmount = decimal.Zero
		} else {
			balance = balance.Sub(amt)
			totalDebit = totalDebit.Add(amt)
			line.Kind = PostingKindDebit
			line.DebitAmount = amt
			line.CreditAmount = decimal.Zero
		}

		line.RunningBalance = balance
		lines = append(lines, line)
	}

	return &Statement{
		AccountCode: accountCode,
		Lines:       lines,
		Totals: StatementTotals{
			TotalCredit:  totalCredit,
			TotalDebit:   totalDebit,
			FinalBalance: balance,
			LineCount:    len(lines),
		},
	}, nil
}

func lineDescription(p Posting) string {
	if p.Description != "" {
		return p.Description
	}

	return strings.TrimSpace("Transakce " + p.RefNumber)
}
