package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/companies/errors"
	"github.com/hirewire/api/companies/models"
	"github.com/hirewire/api/companies/services"
	"github.com/hirewire/api/companies/validation"
	"github.com/hirewire/api/internal/server"
)

type CompanyHandler struct {
	companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany handles POST /companies (admin only).
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateCompanyRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.CreateCompany(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"company": company})
}

// QueryCompanies handles GET /companies with optional name/minEmployees/
// maxEmployees filters.
func (h *CompanyHandler) QueryCompanies(c *fiber.Ctx) error {
	var filter models.CompanyFilter
	if err := server.DecodeQuery(c, &filter); err != nil {
		return errors.HandleValidationError(c, "Invalid query parameters")
	}

	if err := validation.ValidateCompanyFilter(&filter); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	companies, err := h.companyService.QueryCompanies(c.Context(), &filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"companies": companies})
}

// GetCompany handles GET /companies/:handle.
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	details, err := h.companyService.GetCompany(c.Context(), c.Params("handle"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": details})
}

// UpdateCompany handles PATCH /companies/:handle (admin only).
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	var req models.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateCompanyRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.UpdateCompany(c.Context(), c.Params("handle"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// DeleteCompany handles DELETE /companies/:handle (admin only).
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if err := h.companyService.DeleteCompany(c.Context(), handle); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": handle})
}
