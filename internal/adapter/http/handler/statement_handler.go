package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/uctoportal/backend/internal/adapter/http/dto"
	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	GetStatement(ctx context.Context, input usecase.GetStatementInput) (*domain.Statement, error)
}

// StatementHandler handles statement HTTP requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get builds the statement of one account for one year. The account query
// parameter takes either the display label or the canonical code.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	ico := chi.URLParam(r, "ico")

	account := r.URL.Query().Get("account")
	if account == "" {
		writeError(w, http.StatusBadRequest, "missing account parameter", "")
		return
	}

	rawYear := r.URL.Query().Get("year")
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year parameter", rawYear)
		return
	}

	statement, err := h.statementUC.GetStatement(r.Context(), usecase.GetStatementInput{
		ICO:          ico,
		AccountToken: account,
		Year:         year,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement, year))
}
