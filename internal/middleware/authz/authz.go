// Package authz holds the request-authorization decision logic. The
// decisions are pure functions over the verified UserContext; the Fiber
// middleware constructors adapt them to routes.
package authz

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/internal/types"
)

var (
	// ErrAuthRequired means the operation needs a verified identity and the
	// caller is anonymous.
	ErrAuthRequired = errors.New("authentication required")
	// ErrForbidden means the caller is authenticated but its class is
	// insufficient for the operation.
	ErrForbidden = errors.New("insufficient permissions")
)

// RequireUser permits any authenticated caller. u == nil is anonymous.
func RequireUser(u *types.UserContext) error {
	if u == nil {
		return ErrAuthRequired
	}
	return nil
}

// RequireAdmin permits only callers carrying the admin role.
func RequireAdmin(u *types.UserContext) error {
	if u == nil {
		return ErrAuthRequired
	}
	if !u.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// RequireSelfOrAdmin permits admins regardless of target, and regular
// callers whose own username equals the target username.
func RequireSelfOrAdmin(u *types.UserContext, target string) error {
	if u == nil {
		return ErrAuthRequired
	}
	if u.IsAdmin() {
		return nil
	}
	if u.Username != target {
		return ErrForbidden
	}
	return nil
}

// userFromLocals fetches the UserContext stored by the authjwt middleware.
// Missing locals means the request reached us anonymously.
func userFromLocals(c *fiber.Ctx) *types.UserContext {
	if u, ok := c.Locals(types.UserCtxName).(types.UserContext); ok {
		return &u
	}
	return nil
}

// respond translates a decision failure into the HTTP error contract.
func respond(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrAuthRequired) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": "authentication required",
		})
	}
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"code":    "FORBIDDEN",
		"message": "insufficient permissions",
	})
}

// LoggedIn gates a route on any authenticated caller.
func LoggedIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := RequireUser(userFromLocals(c)); err != nil {
			return respond(c, err)
		}
		return c.Next()
	}
}

// Admin gates a route on the admin role.
func Admin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := RequireAdmin(userFromLocals(c)); err != nil {
			return respond(c, err)
		}
		return c.Next()
	}
}

// SelfOrAdmin gates a route on the admin role or on the caller matching the
// named route parameter (e.g. ":username").
func SelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := RequireSelfOrAdmin(userFromLocals(c), c.Params(param)); err != nil {
			return respond(c, err)
		}
		return c.Next()
	}
}
