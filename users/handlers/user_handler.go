package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/internal/types"
	"github.com/hirewire/api/users/errors"
	"github.com/hirewire/api/users/models"
	"github.com/hirewire/api/users/services"
	"github.com/hirewire/api/users/validation"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /users (admin only).
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateUserRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.CreateUser(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// ListUsers handles GET /users (admin only).
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetUser handles GET /users/:username (self or admin).
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.Context(), c.Params("username"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// UpdateUser handles PATCH /users/:username (self or admin). Only admins
// may change the admin flag.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateUserRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	if req.IsAdmin != nil && !callerIsAdmin(c) {
		return c.Status(http.StatusForbidden).JSON(errors.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Only admins may change the admin flag",
		})
	}

	user, err := h.userService.UpdateUser(c.Context(), c.Params("username"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// DeleteUser handles DELETE /users/:username (self or admin).
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.userService.DeleteUser(c.Context(), username); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": username})
}

func callerIsAdmin(c *fiber.Ctx) bool {
	if u, ok := c.Locals(types.UserCtxName).(types.UserContext); ok {
		return u.IsAdmin()
	}
	return false
}
