package domain

import "time"

// Company is a portal client whose ledger exports get mirrored.
type Company struct {
	ID        string
	ICO       string // 8-digit company identification number
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
