// Copyright (c) 2025 HireWire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/hirewire/api/jobs/models"
)

// JobRepository defines the interface for job posting database operations.
type JobRepository interface {
	// Create inserts a new job posting and returns the stored projection
	// including the generated id.
	Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)

	// Find lists jobs matching the optional filter, joined with the owning
	// company for its display name, ordered by title. An empty result is an
	// empty slice, not an error.
	Find(ctx context.Context, filter *models.JobFilter) ([]models.JobWithCompany, error)

	// GetByID retrieves a single job along with the owning company's public
	// profile.
	GetByID(ctx context.Context, id int64) (*models.JobDetails, error)

	// Update applies a sparse partial update and returns the updated
	// projection. An empty payload and a missing id are both errors.
	Update(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error)

	// Delete removes a job posting by id.
	Delete(ctx context.Context, id int64) error
}
