package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
)

// System roles
const (
	UserRole  = "user"
	AdminRole = "admin"
)

// UserCtxName is the fiber.Ctx locals key the JWT middleware stores the
// verified caller identity under.
const UserCtxName = "user"

// UserContext is the verified identity record extracted from a signed token.
// A request with no UserContext in its locals is anonymous.
type UserContext struct {
	Username   string `json:"username"`
	SystemRole string `json:"role"`
}

// IsAdmin reports whether the caller carries the elevated-access role.
func (u UserContext) IsAdmin() bool {
	return u.SystemRole == AdminRole
}
