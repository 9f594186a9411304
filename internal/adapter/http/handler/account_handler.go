package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uctoportal/backend/internal/adapter/http/dto"
	"github.com/uctoportal/backend/internal/domain"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	ListAccounts(ctx context.Context, ico string) ([]domain.AccountRecord, error)
}

// AccountHandler handles account-directory HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// List lists the account directory of a company.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	ico := chi.URLParam(r, "ico")

	records, err := h.accountUC.ListAccounts(r.Context(), ico)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(records),
		Total:    int64(len(records)),
	})
}
