package user

import (
	"context"
	"fmt"
)

// Service defines staff account management logic.
type Service interface {
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, id, role string) error
	SuspendUser(ctx context.Context, id string, suspended bool) error
	DeleteUser(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) UpdateRole(ctx context.Context, id, role string) error {
	if !IsValidRole(role) {
		return fmt.Errorf("invalid role %q", role)
	}
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if u.Role == RoleSuperAdmin {
		return fmt.Errorf("super admin role cannot be changed")
	}
	return s.repo.UpdateRole(ctx, id, role)
}

func (s *service) SuspendUser(ctx context.Context, id string, suspended bool) error {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if u.Role == RoleSuperAdmin {
		return fmt.Errorf("super admin cannot be suspended")
	}
	return s.repo.SetSuspended(ctx, id, suspended)
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if u.Role == RoleSuperAdmin {
		return fmt.Errorf("super admin cannot be deleted")
	}
	return s.repo.DeleteUser(ctx, id)
}
