package authjwt

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/api/internal/types"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", New(cfg), func(c *fiber.Ctx) error {
		u, ok := c.Locals(types.UserCtxName).(types.UserContext)
		if !ok {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(u)
	})
	return app
}

func TestNew_ValidToken(t *testing.T) {
	app := newTestApp(Config{Secret: testSecret})

	token := signToken(t, testSecret, jwt.MapClaims{
		"username": "u1",
		"isAdmin":  true,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNew_MissingToken(t *testing.T) {
	app := newTestApp(Config{Secret: testSecret})

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestNew_OptionalAllowsAnonymous(t *testing.T) {
	app := newTestApp(Config{Secret: testSecret, Optional: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNew_OptionalStillRejectsBadToken(t *testing.T) {
	app := newTestApp(Config{Secret: testSecret, Optional: true})

	token := signToken(t, "wrong-secret", jwt.MapClaims{"username": "u1"})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestNew_ExpiredToken(t *testing.T) {
	app := newTestApp(Config{Secret: testSecret})

	token := signToken(t, testSecret, jwt.MapClaims{
		"username": "u1",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestNew_MissingUsernameClaim(t *testing.T) {
	app := newTestApp(Config{Secret: testSecret})

	token := signToken(t, testSecret, jwt.MapClaims{"isAdmin": true})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
