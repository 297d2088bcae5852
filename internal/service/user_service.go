// Package service implements the business logic layer of the application.
package service

import (
	"context"
	"strconv"
	"time"

	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides account lifecycle and profile business logic.
type UserService struct {
	userRepo repository.UserRepository
	// bcryptCost is carried as the raw configured string; it is parsed at
	// hash time so a bad value surfaces as a configuration error, not a
	// silently weakened hash.
	bcryptCost string
}

// CreateUserInput carries the fields for account creation.
type CreateUserInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// UpdateUserInput carries the fields for profile updates. Empty fields are
// left unchanged.
type UpdateUserInput struct {
	UserID   uint
	Name     string
	Username string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, bcryptCost string) *UserService {
	return &UserService{userRepo: userRepo, bcryptCost: bcryptCost}
}

// hashPassword hashes with the configured cost. A missing, non-numeric, or
// out-of-range cost is a deployment mistake and is reported as such rather
// than falling back to a default.
func (s *UserService) hashPassword(password string) (string, error) {
	if s.bcryptCost == "" {
		return "", models.NewConfigError("BCRYPT_COST is not configured")
	}
	cost, err := strconv.Atoi(s.bcryptCost)
	if err != nil {
		return "", models.NewConfigError("BCRYPT_COST is not numeric")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", models.NewConfigError("BCRYPT_COST is out of range")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return string(hash), nil
}

// CreateUser registers a new account. Username and email must be free among
// active accounts; identifiers released by soft-deleted accounts are reusable.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Username is already taken")
	}

	existing, err = s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email is already registered")
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns the account on success.
// A missing account and a wrong password are indistinguishable to callers.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// ListUsers returns active accounts.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetUserByID returns an active account by ID.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserWithTweets returns an active account with its latest tweets preloaded.
func (s *UserService) GetUserWithTweets(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.userRepo.GetByIDWithTweets(ctx, id, limit)
}

// UpdateUser applies profile changes. The username availability check only
// runs when the username actually changes.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = in.Name
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Username is already taken")
		}
		user.Username = in.Username
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SoftDeleteUser flags the account as deleted. The row is kept; the account
// simply disappears from all filtered reads and releases its identifiers.
func (s *UserService) SoftDeleteUser(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	user.Deleted = true
	user.DeletedAt = &now
	return s.userRepo.Update(ctx, user)
}
