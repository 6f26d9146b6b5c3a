package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/internal/middleware/authjwt"
	"github.com/hirewire/api/internal/middleware/authz"
	platformconfig "github.com/hirewire/api/internal/platform/config"
	"github.com/hirewire/api/users/handlers"
)

// RegisterRoutes is the single entry point for setting up user routes.
// Every route requires a verified identity; listing and creation are admin
// operations, while single-profile reads and writes are open to the profile
// owner as well.
func RegisterRoutes(app *fiber.App, handler *handlers.UserHandler, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/users", jwtMiddleware)

	group.Get("/", authz.Admin(), handler.ListUsers)
	group.Post("/", authz.Admin(), handler.CreateUser)

	group.Get("/:username", authz.SelfOrAdmin("username"), handler.GetUser)
	group.Patch("/:username", authz.SelfOrAdmin("username"), handler.UpdateUser)
	group.Delete("/:username", authz.SelfOrAdmin("username"), handler.DeleteUser)
}
