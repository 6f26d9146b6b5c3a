package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/hirewire/api/companies/errors"
	"github.com/hirewire/api/companies/handlers"
	"github.com/hirewire/api/companies/models"
)

// MockCompanyService implements the CompanyService interface for testing
type MockCompanyService struct {
	createFunc func(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	queryFunc  func(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error)
	getFunc    func(ctx context.Context, handle string) (*models.CompanyDetails, error)
	updateFunc func(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error)
	deleteFunc func(ctx context.Context, handle string) error
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	return m.createFunc(ctx, req)
}

func (m *MockCompanyService) QueryCompanies(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error) {
	return m.queryFunc(ctx, filter)
}

func (m *MockCompanyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetails, error) {
	return m.getFunc(ctx, handle)
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	return m.updateFunc(ctx, handle, req)
}

func (m *MockCompanyService) DeleteCompany(ctx context.Context, handle string) error {
	return m.deleteFunc(ctx, handle)
}

func newTestApp(svc *MockCompanyService) *fiber.App {
	app := fiber.New()
	h := handlers.NewCompanyHandler(svc)
	app.Post("/companies", h.CreateCompany)
	app.Get("/companies", h.QueryCompanies)
	app.Get("/companies/:handle", h.GetCompany)
	app.Patch("/companies/:handle", h.UpdateCompany)
	app.Delete("/companies/:handle", h.DeleteCompany)
	return app
}

func TestQueryCompanies_FilterDecoding(t *testing.T) {
	var captured *models.CompanyFilter
	svc := &MockCompanyService{
		queryFunc: func(_ context.Context, filter *models.CompanyFilter) ([]models.Company, error) {
			captured = filter
			return []models.Company{}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/companies?name=net&minEmployees=10&maxEmployees=500", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, captured)
	assert.Equal(t, "net", captured.Name)
	assert.Equal(t, int64(10), captured.MinEmployees)
	assert.Equal(t, int64(500), captured.MaxEmployees)
}

func TestQueryCompanies_InvalidRangeIs400(t *testing.T) {
	svc := &MockCompanyService{
		queryFunc: func(_ context.Context, _ *models.CompanyFilter) ([]models.Company, error) {
			return nil, serrors.ErrInvalidEmployeeRange
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/companies?minEmployees=500&maxEmployees=10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCompany_ValidationRejectsMissingHandle(t *testing.T) {
	svc := &MockCompanyService{}
	app := newTestApp(svc)

	body, _ := json.Marshal(fiber.Map{"name": "C1"})
	req := httptest.NewRequest("POST", "/companies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCompany_Duplicate(t *testing.T) {
	svc := &MockCompanyService{
		createFunc: func(_ context.Context, _ *models.CreateCompanyRequest) (*models.Company, error) {
			return nil, serrors.ErrCompanyExists
		},
	}
	app := newTestApp(svc)

	body, _ := json.Marshal(fiber.Map{"handle": "c1", "name": "C1"})
	req := httptest.NewRequest("POST", "/companies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestGetCompany_NotFound(t *testing.T) {
	svc := &MockCompanyService{
		getFunc: func(_ context.Context, _ string) (*models.CompanyDetails, error) {
			return nil, serrors.ErrCompanyNotFound
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/companies/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetCompany_Success(t *testing.T) {
	svc := &MockCompanyService{
		getFunc: func(_ context.Context, handle string) (*models.CompanyDetails, error) {
			return &models.CompanyDetails{
				Company: models.Company{Handle: handle, Name: "C1"},
				Jobs:    []models.CompanyJob{},
			}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/companies/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded struct {
		Company models.CompanyDetails `json:"company"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "c1", decoded.Company.Handle)
	assert.NotNil(t, decoded.Company.Jobs)
}

func TestDeleteCompany_Success(t *testing.T) {
	svc := &MockCompanyService{
		deleteFunc: func(_ context.Context, handle string) error {
			return nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/companies/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
