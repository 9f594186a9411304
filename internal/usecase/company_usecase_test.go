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

func TestCompanyUseCase_GetCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	companyRepo.EXPECT().GetByICO(gomock.Any(), testICO).Return(&domain.Company{ICO: testICO, Name: "Vzorová s.r.o."}, nil)

	uc := usecase.NewCompanyUseCase(companyRepo)

	company, err := uc.GetCompany(context.Background(), testICO)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.Name != "Vzorová s.r.o." {
		t.Errorf("name = %q", company.Name)
	}
}

func TestCompanyUseCase_GetCompany_InvalidICO(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewCompanyUseCase(mocks.NewMockCompanyRepository(ctrl))

	if _, err := uc.GetCompany(context.Background(), "12"); !errors.Is(err, domain.ErrInvalidICO) {
		t.Fatalf("expected ErrInvalidICO, got %v", err)
	}
}

func TestCompanyUseCase_ListCompanies_ClampsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	companyRepo.EXPECT().List(gomock.Any(), 1000, 0).Return(nil, nil)

	uc := usecase.NewCompanyUseCase(companyRepo)

	if _, err := uc.ListCompanies(context.Background(), usecase.ListCompaniesInput{Limit: 9999, Offset: -1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
