package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/hirewire/api/jobs/errors"
	"github.com/hirewire/api/jobs/handlers"
	"github.com/hirewire/api/jobs/models"
)

// MockJobService implements the JobService interface for testing
type MockJobService struct {
	createFunc func(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	queryFunc  func(ctx context.Context, filter *models.JobFilter) ([]models.JobWithCompany, error)
	getFunc    func(ctx context.Context, id int64) (*models.JobDetails, error)
	updateFunc func(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *MockJobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	return m.createFunc(ctx, req)
}

func (m *MockJobService) QueryJobs(ctx context.Context, filter *models.JobFilter) ([]models.JobWithCompany, error) {
	return m.queryFunc(ctx, filter)
}

func (m *MockJobService) GetJob(ctx context.Context, id int64) (*models.JobDetails, error) {
	return m.getFunc(ctx, id)
}

func (m *MockJobService) UpdateJob(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *MockJobService) DeleteJob(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

func newTestApp(svc *MockJobService) *fiber.App {
	app := fiber.New()
	h := handlers.NewJobHandler(svc)
	app.Post("/jobs", h.CreateJob)
	app.Get("/jobs", h.QueryJobs)
	app.Get("/jobs/:id", h.GetJob)
	app.Patch("/jobs/:id", h.UpdateJob)
	app.Delete("/jobs/:id", h.DeleteJob)
	return app
}

func TestQueryJobs_FilterDecoding(t *testing.T) {
	var captured *models.JobFilter
	svc := &MockJobService{
		queryFunc: func(_ context.Context, filter *models.JobFilter) ([]models.JobWithCompany, error) {
			captured = filter
			return []models.JobWithCompany{}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/jobs?title=eng&minSalary=100000&hasEquity=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, captured)
	assert.Equal(t, "eng", captured.Title)
	assert.Equal(t, int64(100000), captured.MinSalary)
	assert.True(t, captured.HasEquity)
}

func TestQueryJobs_NegativeMinSalaryIs400(t *testing.T) {
	svc := &MockJobService{}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/jobs?minSalary=-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateJob_ValidationRejectsMissingTitle(t *testing.T) {
	svc := &MockJobService{}
	app := newTestApp(svc)

	body, _ := json.Marshal(fiber.Map{"companyHandle": "c1"})
	req := httptest.NewRequest("POST", "/jobs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateJob_UnknownCompanyIs400(t *testing.T) {
	svc := &MockJobService{
		createFunc: func(_ context.Context, _ *models.CreateJobRequest) (*models.Job, error) {
			return nil, serrors.ErrUnknownCompany
		},
	}
	app := newTestApp(svc)

	body, _ := json.Marshal(fiber.Map{"title": "Engineer", "companyHandle": "nope"})
	req := httptest.NewRequest("POST", "/jobs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateJob_RejectsOutOfRangeEquity(t *testing.T) {
	svc := &MockJobService{}
	app := newTestApp(svc)

	body, _ := json.Marshal(fiber.Map{"title": "Engineer", "companyHandle": "c1", "equity": "1.5"})
	req := httptest.NewRequest("POST", "/jobs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetJob_NotFound(t *testing.T) {
	svc := &MockJobService{
		getFunc: func(_ context.Context, _ int64) (*models.JobDetails, error) {
			return nil, serrors.ErrJobNotFound
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/jobs/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetJob_NonNumericIDIs400(t *testing.T) {
	svc := &MockJobService{}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/jobs/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateJob_PartialTitle(t *testing.T) {
	var captured *models.UpdateJobRequest
	svc := &MockJobService{
		updateFunc: func(_ context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error) {
			captured = req
			title := *req.Title
			return &models.Job{ID: id, Title: title, CompanyHandle: "c1"}, nil
		},
	}
	app := newTestApp(svc)

	body, _ := json.Marshal(fiber.Map{"title": "Staff Engineer"})
	req := httptest.NewRequest("PATCH", "/jobs/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, captured)
	require.NotNil(t, captured.Title)
	assert.Equal(t, "Staff Engineer", *captured.Title)
	assert.Nil(t, captured.Salary)
	assert.Nil(t, captured.Equity)
}

func TestDeleteJob_Success(t *testing.T) {
	svc := &MockJobService{
		deleteFunc: func(_ context.Context, _ int64) error {
			return nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/jobs/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
