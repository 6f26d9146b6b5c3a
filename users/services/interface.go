package services

import (
	"context"

	"github.com/hirewire/api/users/models"
)

// UserService defines the business operations on user profiles.
type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
}
