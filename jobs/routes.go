package jobs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/internal/middleware/authjwt"
	"github.com/hirewire/api/internal/middleware/authz"
	platformconfig "github.com/hirewire/api/internal/platform/config"
	"github.com/hirewire/api/jobs/handlers"
)

// RegisterRoutes is the single entry point for setting up job routes.
// Reads are public; writes require the admin role.
func RegisterRoutes(app *fiber.App, handler *handlers.JobHandler, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/jobs")

	// Public reads
	group.Get("/", handler.QueryJobs)
	group.Get("/:id", handler.GetJob)

	// Admin-gated writes
	group.Post("/", jwtMiddleware, authz.Admin(), handler.CreateJob)
	group.Patch("/:id", jwtMiddleware, authz.Admin(), handler.UpdateJob)
	group.Delete("/:id", jwtMiddleware, authz.Admin(), handler.DeleteJob)
}
