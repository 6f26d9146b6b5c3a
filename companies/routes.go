package companies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/companies/handlers"
	"github.com/hirewire/api/internal/middleware/authjwt"
	"github.com/hirewire/api/internal/middleware/authz"
	platformconfig "github.com/hirewire/api/internal/platform/config"
)

// RegisterRoutes is the single entry point for setting up company routes.
// Reads are public; writes require the admin role.
func RegisterRoutes(app *fiber.App, handler *handlers.CompanyHandler, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/companies")

	// Public reads
	group.Get("/", handler.QueryCompanies)
	group.Get("/:handle", handler.GetCompany)

	// Admin-gated writes
	group.Post("/", jwtMiddleware, authz.Admin(), handler.CreateCompany)
	group.Patch("/:handle", jwtMiddleware, authz.Admin(), handler.UpdateCompany)
	group.Delete("/:handle", jwtMiddleware, authz.Admin(), handler.DeleteCompany)
}
