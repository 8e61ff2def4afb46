package services

import (
	"context"
	"errors"

	"github.com/Aayushkhairnar2101/Billing-system/internal/store"
	"github.com/Aayushkhairnar2101/Billing-system/types"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@billease.com"
	adminPassword = "admin"

	minPasswordLength = 4
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	GetByCredentials(ctx context.Context, username, password string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// IdentityService encapsulates registration and sign-in use-cases.
type IdentityService struct {
	repo UserRepository
}

func NewIdentityService(repo UserRepository) *IdentityService {
	return &IdentityService{repo: repo}
}

// RegisterParams carries the fields of a registration request.
type RegisterParams struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// SeedAdmin appends the default admin account unless it already exists.
// It runs at server start and is idempotent across restarts.
func (s *IdentityService) SeedAdmin(ctx context.Context) error {
	_, err := s.repo.GetByUsername(ctx, adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	_, err = s.repo.Create(ctx, types.User{
		Username: adminUsername,
		Email:    adminEmail,
		Password: adminPassword,
	})
	return err
}

// Register validates the request, enforces username uniqueness, and
// appends the new user. The returned view withholds the id and password.
func (s *IdentityService) Register(ctx context.Context, p RegisterParams) (types.PublicUser, error) {
	if p.Username == "" || p.Email == "" || p.Password == "" || p.ConfirmPassword == "" {
		return types.PublicUser{}, validationError("All fields required")
	}
	if p.Password != p.ConfirmPassword {
		return types.PublicUser{}, validationError("Passwords do not match")
	}
	if len(p.Password) < minPasswordLength {
		return types.PublicUser{}, validationError("Password must be at least 4 characters")
	}

	if _, err := s.repo.GetByUsername(ctx, p.Username); err == nil {
		return types.PublicUser{}, conflictError("Username already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.PublicUser{}, err
	}

	user, err := s.repo.Create(ctx, types.User{
		Username: p.Username,
		Email:    p.Email,
		Password: p.Password,
	})
	if err != nil {
		return types.PublicUser{}, err
	}

	return types.PublicUser{Username: user.Username, Email: user.Email}, nil
}

// SignIn matches the credentials against the users collection exactly.
func (s *IdentityService) SignIn(ctx context.Context, username, password string) (types.PublicUser, error) {
	if username == "" || password == "" {
		return types.PublicUser{}, validationError("Username and password required")
	}

	user, err := s.repo.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.PublicUser{}, authError("Invalid credentials")
		}
		return types.PublicUser{}, err
	}

	return types.PublicUser{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}
