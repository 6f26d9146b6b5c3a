package repository

import (
	"context"

	"github.com/hirewire/api/users/models"
)

// UserRepository defines the data-access operations for user profiles.
type UserRepository interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, username string) error
}
