package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uctoportal/backend/internal/adapter/http/dto"
	"github.com/uctoportal/backend/internal/domain"
)

// ImportService defines the behavior needed by ImportHandler.
type ImportService interface {
	RunImport(ctx context.Context, ico string, year int) (*domain.ImportRun, error)
	ListImports(ctx context.Context, ico string, limit, offset int) ([]*domain.ImportRun, error)
}

// ImportHandler handles legacy-export import HTTP requests.
type ImportHandler struct {
	importUC ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importUC ImportService) *ImportHandler {
	return &ImportHandler{importUC: importUC}
}

// Create mirrors a company's ledger export for one year.
func (h *ImportHandler) Create(w http.ResponseWriter, r *http.Request) {
	ico := chi.URLParam(r, "ico")

	var req dto.RunImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	run, err := h.importUC.RunImport(r.Context(), ico, req.Year)
	if err != nil {
		writeError(w, mapDomainError(err), "import failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ImportRunFromDomain(run))
}

// ListByCompany returns the import-run history of a company.
func (h *ImportHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	ico := chi.URLParam(r, "ico")
	limit := parseIntQuery(r, "limit", 0)
	offset := parseIntQuery(r, "offset", 0)

	runs, err := h.importUC.ListImports(r.Context(), ico, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list imports", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListImportRunsResponse{
		Imports: dto.ImportRunsFromDomain(runs),
		Total:   int64(len(runs)),
	})
}
