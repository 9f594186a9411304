package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/uctoportal/backend/internal/domain"
)

const statementDateLayout = "2006-01-02"

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ICO       string    `json:"ico"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyFromDomain converts a domain company to a response.
func CompanyFromDomain(c *domain.Company) *CompanyResponse {
	return &CompanyResponse{
		ICO:       c.ICO,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CompaniesFromDomain converts domain companies to responses.
func CompaniesFromDomain(companies []*domain.Company) []*CompanyResponse {
	result := make([]*CompanyResponse, len(companies))
	for i, c := range companies {
		result[i] = CompanyFromDomain(c)
	}
	return result
}

// ListCompaniesResponse wraps a company listing.
type ListCompaniesResponse struct {
	Companies []*CompanyResponse `json:"companies"`
	Total     int64              `json:"total"`
}

// AccountResponse represents one entry of a company's account directory.
type AccountResponse struct {
	Code            string `json:"code"`
	DisplayLabel    string `json:"display_label,omitempty"`
	InstitutionName string `json:"institution_name,omitempty"`
	IsCash          bool   `json:"is_cash"`
}

// AccountFromDomain converts a domain account record to a response.
func AccountFromDomain(rec domain.AccountRecord) *AccountResponse {
	return &AccountResponse{
		Code:            rec.Code,
		DisplayLabel:    rec.DisplayLabel,
		InstitutionName: rec.InstitutionName,
		IsCash:          rec.IsCash,
	}
}

// AccountsFromDomain converts domain account records to responses.
func AccountsFromDomain(records []domain.AccountRecord) []*AccountResponse {
	result := make([]*AccountResponse, len(records))
	for i, rec := range records {
		result[i] = AccountFromDomain(rec)
	}
	return result
}

// ListAccountsResponse wraps an account-directory listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// StatementLineResponse represents one statement row. An empty date means the
// export carried an unusable one; the row still counts.
type StatementLineResponse struct {
	ID             string          `json:"id"`
	RefNumber      string          `json:"ref_number,omitempty"`
	Date           string          `json:"date,omitempty"`
	Description    string          `json:"description"`
	Counterparty   string          `json:"counterparty,omitempty"`
	Kind           string          `json:"kind"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	DebitAmount    decimal.Decimal `json:"debit_amount"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// StatementTotalsResponse aggregates a statement.
type StatementTotalsResponse struct {
	TotalCredit  decimal.Decimal `json:"total_credit"`
	TotalDebit   decimal.Decimal `json:"total_debit"`
	FinalBalance decimal.Decimal `json:"final_balance"`
	LineCount    int             `json:"line_count"`
}

// StatementResponse represents an account statement in API responses.
type StatementResponse struct {
	AccountCode     string                   `json:"account_code"`
	AccountLabel    string                   `json:"account_label,omitempty"`
	AccountName     string                   `json:"account_name,omitempty"`
	InstitutionName string                   `json:"institution_name,omitempty"`
	Year            int                      `json:"year"`
	Lines           []*StatementLineResponse `json:"lines"`
	Totals          StatementTotalsResponse  `json:"totals"`
}

// StatementFromDomain converts a domain statement to a response.
func StatementFromDomain(s *domain.Statement, year int) *StatementResponse {
	lines := make([]*StatementLineResponse, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = statementLineFromDomain(line)
	}

	return &StatementResponse{
		AccountCode:     s.AccountCode,
		AccountLabel:    s.AccountLabel,
		AccountName:     s.AccountName,
		InstitutionName: s.InstitutionName,
		Year:            year,
		Lines:           lines,
		Totals: StatementTotalsResponse{
			TotalCredit:  s.Totals.TotalCredit,
			TotalDebit:   s.Totals.TotalDebit,
			FinalBalance: s.Totals.FinalBalance,
			LineCount:    s.Totals.LineCount,
		},
	}
}

func statementLineFromDomain(line domain.StatementLine) *StatementLineResponse {
	date := ""
	if !line.Posting.Date.IsZero() {
		date = line.Posting.Date.Format(statementDateLayout)
	}

	return &StatementLineResponse{
		ID:             line.Posting.ID,
		RefNumber:      line.Posting.RefNumber,
		Date:           date,
		Description:    line.Description,
		Counterparty:   line.Posting.Counterparty,
		Kind:           string(line.Kind),
		CreditAmount:   line.CreditAmount,
		DebitAmount:    line.DebitAmount,
		RunningBalance: line.RunningBalance,
	}
}

// ImportRunResponse represents an import run in API responses.
type ImportRunResponse struct {
	ID           string    `json:"id"`
	ICO          string    `json:"ico"`
	Year         int       `json:"year"`
	Status       string    `json:"status"`
	AccountCount int       `json:"account_count"`
	PostingCount int       `json:"posting_count"`
	Error        string    `json:"error,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

// ImportRunFromDomain converts a domain import run to a response.
func ImportRunFromDomain(run *domain.ImportRun) *ImportRunResponse {
	return &ImportRunResponse{
		ID:           run.ID,
		ICO:          run.ICO,
		Year:         run.Year,
		Status:       string(run.Status),
		AccountCount: run.AccountCount,
		PostingCount: run.PostingCount,
		Error:        run.Error,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
	}
}

// ImportRunsFromDomain converts domain import runs to responses.
func ImportRunsFromDomain(runs []*domain.ImportRun) []*ImportRunResponse {
	result := make([]*ImportRunResponse, len(runs))
	for i, run := range runs {
		result[i] = ImportRunFromDomain(run)
	}
	return result
}

// ListImportRunsResponse wraps an import-run listing.
type ListImportRunsResponse struct {
	Imports []*ImportRunResponse `json:"imports"`
	Total   int64                `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
