// Copyright (c) 2025 HireWire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/api/companies/models"
)

// MockCompanyRepository is a mock implementation of CompanyRepository for testing
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Find(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetByHandle(ctx context.Context, handle string) (*models.CompanyDetails, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyDetails), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, handle, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}
