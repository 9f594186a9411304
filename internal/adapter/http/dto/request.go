package dto

// RunImportRequest represents a request to mirror a company's ledger export.
type RunImportRequest struct {
	Year int `json:"year"`
}
