package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/uctoportal/backend/internal/domain"
	"github.com/uctoportal/backend/internal/usecase"
	"github.com/uctoportal/backend/internal/usecase/mocks"
)

func TestAccountUseCase_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	companyRepo.EXPECT().GetByICO(gomock.Any(), testICO).Return(&domain.Company{ICO: testICO}, nil)
	accountRepo.EXPECT().ListByCompany(gomock.Any(), testICO).Return([]domain.AccountRecord{
		{ID: "a1", Code: "221000", DisplayLabel: "Fio běžný"},
		{ID: "a2", Code: "", DisplayLabel: "", IsCash: true},
	}, nil)

	uc := usecase.NewAccountUseCase(companyRepo, accountRepo)

	records, err := uc.ListAccounts(context.Background(), testICO)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestAccountUseCase_ListAccounts_CompanyMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	companyRepo.EXPECT().GetByICO(gomock.Any(), testICO).Return(nil, domain.ErrCompanyNotFound)

	uc := usecase.NewAccountUseCase(companyRepo, accountRepo)

	if _, err := uc.ListAccounts(context.Background(), testICO); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
