package handler

import (
	"context"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type MockDirectoryUsecase struct {
	mock.Mock
}

func (m *MockDirectoryUsecase) Catalog(ctx context.Context) (*entity.DoctorCatalog, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*entity.DoctorCatalog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDirectoryUsecase) Browse(ctx context.Context, query entity.DirectoryQuery) (*dto.DirectoryResponse, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.(*dto.DirectoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDirectoryUsecase) Suggest(ctx context.Context, searchTerm string) (*dto.SuggestionListResponse, error) {
	args := m.Called(ctx, searchTerm)
	if v := args.Get(0); v != nil {
		return v.(*dto.SuggestionListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDirectoryUsecase) ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*dto.SpecialtyListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDirectoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, doctorID)
	if v := args.Get(0); v != nil {
		return v.(*dto.DoctorResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
