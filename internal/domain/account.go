package domain

// Default account codes from the Czech chart of accounts, substituted when the
// legacy export never filled in the code of the main account.
const (
	DefaultCashDeskCode = "211000"
	DefaultBankCode     = "221000"
)

// DefaultCashDeskName is the display name of the unlabeled main cash desk.
const DefaultCashDeskName = "Hlavní pokladna"

// AccountRecord is one row of a company's account directory.
type AccountRecord struct {
	ID              string
	Code            string
	DisplayLabel    string
	InstitutionName string
	IsCash          bool
}

// ResolvedAccount is the canonical identity of an account picked from the
// directory, ready for posting-side matching plus display.
type ResolvedAccount struct {
	Code            string
	DisplayLabel    string
	DisplayName     string
	InstitutionName string
	IsCash          bool
}

// ResolveAccount maps a user-supplied token, which may be either an account's
// display label or its numeric code, to the canonical account. The first
// matching record wins. Records with an empty code fall back to the default
// cash-desk or bank code.
func ResolveAccount(token string, records []AccountRecord) (*ResolvedAccount, error) {
	for _, rec := range records {
		if rec.DisplayLabel != token && rec.Code != token {
			continue
		}

		code := rec.Code
		if code == "" {
			if rec.IsCash {
				code = DefaultCashDeskCode
			} else {
				code = DefaultBankCode
			}
		}

		name := rec.DisplayLabel
		if name == "" && code == DefaultCashDeskCode {
			name = DefaultCashDeskName
		}

		return &ResolvedAccount{
			Code:            code,
			DisplayLabel:    rec.DisplayLabel,
			DisplayName:     name,
			InstitutionName: rec.InstitutionName,
			IsCash:          rec.IsCash,
		}, nil
	}

	return nil, ErrAccountNotFound
}
