package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (models.InsertResult, error)
	Upsert(ctx context.Context, user models.User) (models.UpdateResult, error)
	SetRole(ctx context.Context, email string, role models.Role) (models.UpdateResult, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(s UserStore) *UserService {
	return &UserService{store: s}
}

// IsAdmin never reports NotFound: an unknown email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup user: %w", err)
	}
	return user.IsAdmin(), nil
}

func (s *UserService) Create(ctx context.Context, user models.User) (models.InsertResult, error) {
	if user.Email == "" {
		return models.InsertResult{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	res, err := s.store.Insert(ctx, user)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("create user: %w", err)
	}
	return res, nil
}

// Upsert inserts the user when the email is unknown, otherwise overwrites
// every supplied field of the matched document.
func (s *UserService) Upsert(ctx context.Context, user models.User) (models.UpdateResult, error) {
	if user.Email == "" {
		return models.UpdateResult{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	res, err := s.store.Upsert(ctx, user)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("upsert user: %w", err)
	}
	return res, nil
}

// PromoteToAdmin grants the admin role to target. The requester must be a
// verified, existing admin; anything else is ErrForbidden.
func (s *UserService) PromoteToAdmin(ctx context.Context, requester, target string) (models.UpdateResult, error) {
	if requester == "" {
		return models.UpdateResult{}, ErrForbidden
	}
	if target == "" {
		return models.UpdateResult{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	account, err := s.store.FindByEmail(ctx, requester)
	if errors.Is(err, store.ErrNotFound) {
		return models.UpdateResult{}, ErrForbidden
	}
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("lookup requester: %w", err)
	}
	if !account.IsAdmin() {
		return models.UpdateResult{}, ErrForbidden
	}

	res, err := s.store.SetRole(ctx, target, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("promote user: %w", err)
	}
	return res, nil
}
