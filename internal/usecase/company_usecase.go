package usecase

import (
	"context"

	"github.com/uctoportal/backend/internal/domain"
)

// CompanyUseCase handles company-directory reads.
type CompanyUseCase struct {
	companyRepo CompanyRepository
}

// NewCompanyUseCase creates a new CompanyUseCase.
func NewCompanyUseCase(companyRepo CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// GetCompany retrieves a company by its IČO.
func (uc *CompanyUseCase) GetCompany(ctx context.Context, ico string) (*domain.Company, error) {
	if err := domain.ValidateICO(ico); err != nil {
		return nil, err
	}

	return uc.companyRepo.GetByICO(ctx, ico)
}

// ListCompaniesInput represents input for listing companies.
type ListCompaniesInput struct {
	Limit  int
	Offset int
}

// ListCompanies lists companies with pagination.
func (uc *CompanyUseCase) ListCompanies(ctx context.Context, input ListCompaniesInput) ([]*domain.Company, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.companyRepo.List(ctx, limit, offset)
}
