package authjwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hirewire/api/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// Secret is the HMAC shared secret used to verify HS256 tokens.
	Secret string
	// UserCtxName is the locals key the UserContext is stored under.
	// Defaults to types.UserCtxName.
	UserCtxName string
	// Optional makes the middleware pass anonymous requests through without
	// storing a UserContext, instead of rejecting them. A token that is
	// present but invalid is always rejected.
	Optional bool
}

// New creates a middleware that verifies the bearer token and stores the
// caller's UserContext in the request locals. Signature verification happens
// here; what the verified claims are allowed to do is decided by the authz
// middleware downstream.
func New(cfg Config) fiber.Handler {
	userKey := cfg.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	secret := []byte(cfg.Secret)

	return func(c *fiber.Ctx) error {
		var tokenString string

		authHeader := c.Get(types.HeaderAuthorization)
		if strings.HasPrefix(authHeader, types.BearerPrefix) {
			tokenString = strings.TrimPrefix(authHeader, types.BearerPrefix)
		}

		if tokenString == "" {
			if cfg.Optional {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing or invalid JWT",
			})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Enforce the expected signing algorithm.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token claim format",
			})
		}

		username, _ := claims["username"].(string)
		if username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Token is missing the username claim",
			})
		}

		role := types.UserRole
		if isAdmin, _ := claims["isAdmin"].(bool); isAdmin {
			role = types.AdminRole
		}

		c.Locals(userKey, types.UserContext{
			Username:   username,
			SystemRole: role,
		})

		return c.Next()
	}
}
