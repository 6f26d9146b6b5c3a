package services

import (
	"context"
	"fmt"

	"github.com/hirewire/api/users/models"
	"github.com/hirewire/api/users/repository"
)

// userService implements UserService on top of the repository. Profile
// reads are authorization-scoped per caller, so they are not cached.
type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.Update(ctx, username, req)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
