package domain

import (
	"errors"
	"testing"
)

func TestResolveAccount(t *testing.T) {
	records := []AccountRecord{
		{ID: "a1", Code: "221000", DisplayLabel: "Fio běžný", InstitutionName: "Fio banka"},
		{ID: "a2", Code: "221100", DisplayLabel: "KB spořicí", InstitutionName: "Komerční banka"},
		{ID: "a3", Code: "", DisplayLabel: "", IsCash: true},
	}

	tests := []struct {
		name        string
		token       string
		wantCode    string
		wantDisplay string
		expectedErr error
	}{
		{
			name:        "match by display label",
			token:       "Fio běžný",
			wantCode:    "221000",
			wantDisplay: "Fio běžný",
		},
		{
			name:        "match by code",
			token:       "221100",
			wantCode:    "221100",
			wantDisplay: "KB spořicí",
		},
		{
			name:        "unlabeled cash desk falls back to default code and name",
			token:       "",
			wantCode:    DefaultCashDeskCode,
			wantDisplay: DefaultCashDeskName,
		},
		{
			name:        "no match",
			token:       "999999",
			expectedErr: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAccount(tt.token, records)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", got.Code, tt.wantCode)
			}
			if got.DisplayName != tt.wantDisplay {
				t.Errorf("display name = %q, want %q", got.DisplayName, tt.wantDisplay)
			}
		})
	}
}

func TestResolveAccount_UnlabeledBankFallsBackToBankCode(t *testing.T) {
	records := []AccountRecord{
		{ID: "a1", Code: "", DisplayLabel: "Hlavní účet", InstitutionName: "ČSOB"},
	}

	got, err := ResolveAccount("Hlavní účet", records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Code != DefaultBankCode {
		t.Errorf("code = %s, want %s", got.Code, DefaultBankCode)
	}
	if got.DisplayName != "Hlavní účet" {
		t.Errorf("display name = %q, want label verbatim", got.DisplayName)
	}
}

func TestResolveAccount_FirstMatchWins(t *testing.T) {
	records := []AccountRecord{
		{ID: "a1", Code: "221000", DisplayLabel: "První"},
		{ID: "a2", Code: "221000", DisplayLabel: "Druhý"},
	}

	got, err := ResolveAccount("221000", records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.DisplayLabel != "První" {
		t.Errorf("expected first record to win, got %q", got.DisplayLabel)
	}
}

func TestResolveAccount_EmptyDirectory(t *testing.T) {
	if _, err := ResolveAccount("221000", nil); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
