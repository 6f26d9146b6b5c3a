package models

// User represents a profile record. Credentials live outside this service;
// identity arrives via verified tokens, so no secret material is stored
// here.
type User struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// CreateUserRequest is the payload for creating a user profile.
type CreateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest is a sparse partial-update payload. The username is
// immutable and the admin flag is only changeable by admins, enforced at
// the handler.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	IsAdmin   *bool   `json:"isAdmin"`
}
