package domain

import "errors"

var (
	// Directory errors
	ErrCompanyNotFound = errors.New("company not found")
	ErrAccountNotFound = errors.New("account not found")

	// Statement errors
	ErrInvalidAccountCode = errors.New("account code must not be empty")

	// Legacy export errors
	ErrExportNotFound = errors.New("ledger export not found")
)
