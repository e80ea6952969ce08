package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rockschool/internal/auth"
	"rockschool/internal/model"
	"rockschool/internal/repository"
)

// UserService exposes user and role operations.
type UserService interface {
	// CreateUser is duplicate-guarded: creating an existing identity is a
	// no-op that returns the existing record with created=false.
	CreateUser(ctx context.Context, user *model.User) (*model.User, bool, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id uint) (int64, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	GrantRole(ctx context.Context, id uint, role string) (int64, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

var _ auth.RoleLookup = (UserService)(nil)

func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.User, bool, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("check user existence: %w", err)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return user, true, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, id uint) (int64, error) {
	return s.repo.Delete(ctx, id)
}

// IsAdmin reports whether the persisted role is admin. An unknown identity
// is simply not an admin.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return role == model.RoleAdmin, nil
}

// RoleByEmail is always a fresh read; the role guard depends on that.
func (s *userService) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *userService) GrantRole(ctx context.Context, id uint, role string) (int64, error) {
	return s.repo.UpdateRole(ctx, id, role)
}
