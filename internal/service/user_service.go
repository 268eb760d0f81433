// Package service implements business logic on top of the repository layer.
package service

import (
	"context"

	"secretely/internal/models"
	"secretely/internal/repository"
	"secretely/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides registration and credential checks.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates the candidate, hashes the password, and stores the user.
func (s *UserService) Register(ctx context.Context, username, name, email, password string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// Explicit pre-checks give precise conflict messages; the unique
	// indexes remain the backstop against races.
	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}
	if existing, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user matching the credentials. The failure is
// deliberately uniform so callers cannot tell which field was wrong.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthenticatedError("Incorrect email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthenticatedError("Incorrect email or password")
	}
	return user, nil
}
