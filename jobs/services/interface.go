package services

import (
	"context"

	"github.com/hirewire/api/jobs/models"
)

// JobService defines the business operations on job postings.
type JobService interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	QueryJobs(ctx context.Context, filter *models.JobFilter) ([]models.JobWithCompany, error)
	GetJob(ctx context.Context, id int64) (*models.JobDetails, error)
	UpdateJob(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
