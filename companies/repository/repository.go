// Copyright (c) 2025 HireWire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/hirewire/api/companies/models"
)

// CompanyRepository defines the interface for company database operations.
type CompanyRepository interface {
	// Create inserts a new company after checking the handle is free.
	// Returns the stored projection.
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)

	// Find lists companies matching the optional filter, ordered by name.
	// An empty result is an empty slice, not an error.
	Find(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error)

	// GetByHandle retrieves a single company along with its jobs.
	GetByHandle(ctx context.Context, handle string) (*models.CompanyDetails, error)

	// Update applies a sparse partial update and returns the updated
	// projection. An empty payload and a missing handle are both errors.
	Update(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error)

	// Delete removes a company by handle.
	Delete(ctx context.Context, handle string) error
}
