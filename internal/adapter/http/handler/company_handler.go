package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uctoportal/backend/internal/adapter/http/dto"
	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/usecase"
)

// CompanyService defines the behavior needed by CompanyHandler.
type CompanyService interface {
	GetCompany(ctx context.Context, ico string) (*domain.Company, error)
	ListCompanies(ctx context.Context, input usecase.ListCompaniesInput) ([]*domain.Company, error)
}

// CompanyHandler handles company-directory HTTP requests.
type CompanyHandler struct {
	companyUC CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyUC CompanyService) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC}
}

// Get retrieves a company by its IČO.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	ico := chi.URLParam(r, "ico")

	company, err := h.companyUC.GetCompany(r.Context(), ico)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get company", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CompanyFromDomain(company))
}

// List lists companies.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 0)
	offset := parseIntQuery(r, "offset", 0)

	companies, err := h.companyUC.ListCompanies(r.Context(), usecase.ListCompaniesInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list companies", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCompaniesResponse{
		Companies: dto.CompaniesFromDomain(companies),
		Total:     int64(len(companies)),
	})
}
