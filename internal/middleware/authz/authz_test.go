package authz

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/api/internal/types"
)

func adminUser() *types.UserContext {
	return &types.UserContext{Username: "root", SystemRole: types.AdminRole}
}

func regularUser(name string) *types.UserContext {
	return &types.UserContext{Username: name, SystemRole: types.UserRole}
}

func TestRequireUser(t *testing.T) {
	assert.ErrorIs(t, RequireUser(nil), ErrAuthRequired)
	assert.NoError(t, RequireUser(regularUser("u1")))
	assert.NoError(t, RequireUser(adminUser()))
}

func TestRequireAdmin(t *testing.T) {
	assert.ErrorIs(t, RequireAdmin(nil), ErrAuthRequired)
	assert.ErrorIs(t, RequireAdmin(regularUser("u1")), ErrForbidden)
	assert.NoError(t, RequireAdmin(adminUser()))
}

func TestRequireSelfOrAdmin(t *testing.T) {
	assert.ErrorIs(t, RequireSelfOrAdmin(nil, "u1"), ErrAuthRequired)

	// Mismatched non-admin caller is always rejected.
	assert.ErrorIs(t, RequireSelfOrAdmin(regularUser("u2"), "u1"), ErrForbidden)

	// Self passes, admin passes regardless of target.
	assert.NoError(t, RequireSelfOrAdmin(regularUser("u1"), "u1"))
	assert.NoError(t, RequireSelfOrAdmin(adminUser(), "someone-else"))
}

// middleware-level behavior over a real Fiber app

func newTestApp(gate fiber.Handler, user *types.UserContext) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(types.UserCtxName, *user)
		}
		return c.Next()
	})
	app.Get("/users/:username", gate, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestSelfOrAdminMiddleware(t *testing.T) {
	cases := []struct {
		name   string
		user   *types.UserContext
		path   string
		status int
	}{
		{"anonymous", nil, "/users/u1", fiber.StatusUnauthorized},
		{"wrong user", regularUser("u2"), "/users/u1", fiber.StatusForbidden},
		{"self", regularUser("u1"), "/users/u1", fiber.StatusOK},
		{"admin any target", adminUser(), "/users/u1", fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(SelfOrAdmin("username"), tc.user)
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	app := newTestApp(Admin(), regularUser("u1"))
	resp, err := app.Test(httptest.NewRequest("GET", "/users/u1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	app = newTestApp(Admin(), adminUser())
	resp, err = app.Test(httptest.NewRequest("GET", "/users/u1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
