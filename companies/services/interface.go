package services

import (
	"context"

	"github.com/hirewire/api/companies/models"
)

// CompanyService defines the business operations on companies.
type CompanyService interface {
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	QueryCompanies(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error)
	GetCompany(ctx context.Context, handle string) (*models.CompanyDetails, error)
	UpdateCompany(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, handle string) error
}
