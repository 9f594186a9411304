package domain

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrInvalidICO  = errors.New("invalid company identification number")
	ErrInvalidYear = errors.New("invalid accounting year")
)

// Accounting year bounds. The portal predates no client's books; anything
// outside this window is a typo, not data.
const (
	MinAccountingYear = 1991
	MaxAccountingYear = 2100
)

// ValidateICO checks the 8-digit IČO format used to key companies and their
// legacy export files.
func ValidateICO(ico string) error {
	if len(ico) != 8 {
		return fmt.Errorf("%w: must be 8 digits, got %q", ErrInvalidICO, ico)
	}

	for _, r := range ico {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: must be 8 digits, got %q", ErrInvalidICO, ico)
		}
	}

	return nil
}

// ValidateYear checks an accounting year.
func ValidateYear(year int) error {
	if year < MinAccountingYear || year > MaxAccountingYear {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	return nil
}

// ValidatePagination clamps pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const maxPageSize = 1000
	const defaultPageSize = 50

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
