package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/uctoportal/backend/internal/adapter/http/dto"
	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/usecase"
)

type stubStatementService struct {
	statement *domain.Statement
	err       error
	gotInput  usecase.GetStatementInput
}

func (s *stubStatementService) GetStatement(_ context.Context, input usecase.GetStatementInput) (*domain.Statement, error) {
	s.gotInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.statement, nil
}

func statementRequest(target string) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest(http.MethodGet, target, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("ico", "25596641")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	return httptest.NewRecorder(), req
}

func TestStatementHandlerGet(t *testing.T) {
	svc := &stubStatementService{
		statement: &domain.Statement{
			AccountCode:  "221000",
			AccountLabel: "Fio běžný",
			Lines: []domain.StatementLine{
				{
					Posting:        domain.Posting{ID: "p1", RefNumber: "1"},
					Description:    "faktura 2024001",
					CreditAmount:   decimal.RequireFromString("1500.50"),
					RunningBalance: decimal.RequireFromString("1500.50"),
					Kind:           domain.PostingKindCredit,
				},
			},
			Totals: domain.StatementTotals{
				TotalCredit:  decimal.RequireFromString("1500.50"),
				FinalBalance: decimal.RequireFromString("1500.50"),
				LineCount:    1,
			},
		},
	}
	h := NewStatementHandler(svc)

	rec, req := statementRequest("/api/v1/companies/25596641/statement?account=Fio+b%C4%9B%C5%BEn%C3%BD&year=2024")
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	want := usecase.GetStatementInput{ICO: "25596641", AccountToken: "Fio běžný", Year: 2024}
	if svc.gotInput != want {
		t.Fatalf("expected input %+v, got %+v", want, svc.gotInput)
	}

	var resp dto.StatementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	if resp.AccountCode != "221000" || resp.Year != 2024 {
		t.Fatalf("unexpected response header fields: %+v", resp)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].Kind != "credit" {
		t.Fatalf("unexpected lines: %+v", resp.Lines)
	}
	if !resp.Totals.FinalBalance.Equal(decimal.RequireFromString("1500.50")) {
		t.Fatalf("unexpected final balance: %s", resp.Totals.FinalBalance)
	}
}

func TestStatementHandlerGetMissingAccount(t *testing.T) {
	h := NewStatementHandler(&stubStatementService{})

	rec, req := statementRequest("/api/v1/companies/25596641/statement?year=2024")
	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStatementHandlerGetBadYear(t *testing.T) {
	h := NewStatementHandler(&stubStatementService{})

	for _, target := range []string{
		"/api/v1/companies/25596641/statement?account=221000",
		"/api/v1/companies/25596641/statement?account=221000&year=loni",
	} {
		rec, req := statementRequest(target)
		h.Get(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestStatementHandlerGetDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"company not found", domain.ErrCompanyNotFound, http.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"invalid year", domain.ErrInvalidYear, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStatementHandler(&stubStatementService{err: tt.err})

			rec, req := statementRequest("/api/v1/companies/25596641/statement?account=221000&year=2024")
			h.Get(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}
