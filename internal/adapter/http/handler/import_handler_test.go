package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/uctoportal/backend/internal/adapter/http/dto"
	"github.com/uctoportal/backend/internal/domain"
)

type stubImportService struct {
	run  *domain.ImportRun
	runs []*domain.ImportRun
	err  error
}

func (s *stubImportService) RunImport(_ context.Context, ico string, year int) (*domain.ImportRun, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.run, nil
}

func (s *stubImportService) ListImports(_ context.Context, ico string, limit, offset int) ([]*domain.ImportRun, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.runs, nil
}

func importRequest(body string) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/25596641/imports", strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("ico", "25596641")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	return httptest.NewRecorder(), req
}

func TestImportHandlerCreate(t *testing.T) {
	now := time.Now().UTC()
	svc := &stubImportService{
		run: &domain.ImportRun{
			ID:           "01RUN",
			ICO:          "25596641",
			Year:         2024,
			Status:       domain.ImportRunSucceeded,
			AccountCount: 3,
			PostingCount: 120,
			StartedAt:    now,
			FinishedAt:   now,
		},
	}
	h := NewImportHandler(svc)

	rec, req := importRequest(`{"year":2024}`)
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ImportRunResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	if resp.Status != "succeeded" || resp.PostingCount != 120 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestImportHandlerCreateBadBody(t *testing.T) {
	h := NewImportHandler(&stubImportService{})

	rec, req := importRequest(`{`)
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestImportHandlerCreateExportMissing(t *testing.T) {
	h := NewImportHandler(&stubImportService{err: domain.ErrExportNotFound})

	rec, req := importRequest(`{"year":2024}`)
	h.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
