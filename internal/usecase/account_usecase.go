package usecase

import (
	"context"

	"github.com/uctoportal/backend/internal/domain"
)

// AccountUseCase handles account-directory reads.
type AccountUseCase struct {
	companyRepo CompanyRepository
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(companyRepo CompanyRepository, accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{
		companyRepo: companyRepo,
		accountRepo: accountRepo,
	}
}

// ListAccounts lists the account directory of a company.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, ico string) ([]domain.AccountRecord, error) {
	if err := domain.ValidateICO(ico); err != nil {
		return nil, err
	}

	if _, err := uc.companyRepo.GetByICO(ctx, ico); err != nil {
		return nil, err
	}

	return uc.accountRepo.ListByCompany(ctx, ico)
}
