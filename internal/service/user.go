package service

import (
	"context"
	"fmt"

	"github.com/restkata/restkata/internal/domain"
	"github.com/restkata/restkata/internal/repo"
)

// UserService implements business logic for User operations.
// Email is treated as an opaque string — no format validation is applied.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(r repo.UserRepo) *UserService {
	return &UserService{repo: r}
}

// Create persists a new user under the client-assigned ID.
// Returns domain.ErrConflict if a user with that ID already exists.
func (s *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	result, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single user by ID.
// Returns domain.ErrNotFound if no user with that ID exists.
func (s *UserService) GetByID(ctx context.Context, id int64) (domain.User, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByID: %w", err)
	}
	return result, nil
}
