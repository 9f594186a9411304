package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uctoportal/backend/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrCompanyNotFound, http.StatusNotFound},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrExportNotFound, http.StatusNotFound},
		{domain.ErrInvalidICO, http.StatusBadRequest},
		{domain.ErrInvalidYear, http.StatusBadRequest},
		{domain.ErrInvalidAccountCode, http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
		{fmt.Errorf("import 25596641/2024: %w", domain.ErrExportNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=25&bad=abc", nil)

	if got := parseIntQuery(req, "limit", 50); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
	if got := parseIntQuery(req, "missing", 50); got != 50 {
		t.Errorf("expected default 50, got %d", got)
	}
	if got := parseIntQuery(req, "bad", 50); got != 50 {
		t.Errorf("expected default 50 for garbage, got %d", got)
	}
}
