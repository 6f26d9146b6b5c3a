package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/internal/server"
	"github.com/hirewire/api/jobs/errors"
	"github.com/hirewire/api/jobs/models"
	"github.com/hirewire/api/jobs/services"
	"github.com/hirewire/api/jobs/validation"
)

type JobHandler struct {
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJob handles POST /jobs (admin only).
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateJobRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.CreateJob(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"job": job})
}

// QueryJobs handles GET /jobs with optional title/minSalary/hasEquity
// filters.
func (h *JobHandler) QueryJobs(c *fiber.Ctx) error {
	var filter models.JobFilter
	if err := server.DecodeQuery(c, &filter); err != nil {
		return errors.HandleValidationError(c, "Invalid query parameters")
	}

	if err := validation.ValidateJobFilter(&filter); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	jobs, err := h.jobService.QueryJobs(c.Context(), &filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob handles GET /jobs/:id.
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return errors.HandleValidationError(c, "Invalid job id")
	}

	details, err := h.jobService.GetJob(c.Context(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": details})
}

// UpdateJob handles PATCH /jobs/:id (admin only).
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return errors.HandleValidationError(c, "Invalid job id")
	}

	var req models.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateJobRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.UpdateJob(c.Context(), id, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// DeleteJob handles DELETE /jobs/:id (admin only).
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return errors.HandleValidationError(c, "Invalid job id")
	}

	if err := h.jobService.DeleteJob(c.Context(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": id})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
