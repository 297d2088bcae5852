package service

import (
	"context"
	"errors"
	"testing"

	"chirp/internal/models"

	"golang.org/x/crypto/bcrypt"
)

const validPassword = "SecurePass12!@"

func validCreateInput() CreateUserInput {
	return CreateUserInput{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: validPassword,
	}
}

func TestUserServiceCreateUser(t *testing.T) {
	users := noopUserRepo()
	var created *models.User
	users.createFn = func(_ context.Context, u *models.User) error {
		created = u
		u.ID = 1
		return nil
	}

	// MinCost keeps the test fast.
	svc := NewUserService(users, "4")
	user, err := svc.CreateUser(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected assigned ID, got %d", user.ID)
	}
	if created.Password == validPassword {
		t.Fatal("password should be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(validPassword)); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserServiceCreateUserUsernameTaken(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 2, Username: "testuser"}, nil
	}

	svc := NewUserService(users, "4")
	_, err := svc.CreateUser(context.Background(), validCreateInput())
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "CONFLICT" {
		t.Fatalf("expected conflict app error, got %#v", err)
	}
}

func TestUserServiceCreateUserBadBcryptCost(t *testing.T) {
	for _, cost := range []string{"", "abc", "3", "99"} {
		svc := NewUserService(noopUserRepo(), cost)
		_, err := svc.CreateUser(context.Background(), validCreateInput())
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != "CONFIG_ERROR" {
			t.Fatalf("cost %q: expected config app error, got %#v", cost, err)
		}
	}
}

func TestUserServiceCreateUserWeakPassword(t *testing.T) {
	svc := NewUserService(noopUserRepo(), "4")
	in := validCreateInput()
	in.Password = "short"
	_, err := svc.CreateUser(context.Background(), in)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(validPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	users := noopUserRepo()
	users.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "test@example.com" {
			return &models.User{ID: 1, Email: email, Password: string(hash)}, nil
		}
		return nil, nil
	}

	svc := NewUserService(users, "4")

	t.Run("Success", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "test@example.com", validPassword)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 {
			t.Fatalf("unexpected user %#v", user)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "test@example.com", "WrongPass12!@")
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != "UNAUTHORIZED" {
			t.Fatalf("expected unauthorized app error, got %#v", err)
		}
	})

	t.Run("Unknown Email", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "ghost@example.com", validPassword)
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != "UNAUTHORIZED" {
			t.Fatalf("expected unauthorized app error, got %#v", err)
		}
	})
}

func TestUserServiceUpdateUnchangedUsernameSkipsCheck(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "same", Name: "Old"}, nil
	}
	users.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		t.Fatal("availability check should not run for an unchanged username")
		return nil, nil
	}

	svc := NewUserService(users, "4")
	user, err := svc.UpdateUser(context.Background(), UpdateUserInput{UserID: 1, Username: "same", Name: "New"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "New" {
		t.Fatalf("expected name update, got %q", user.Name)
	}
}

func TestUserServiceUpdateNewUsernameTaken(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "old"}, nil
	}
	users.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 9, Username: "wanted"}, nil
	}

	svc := NewUserService(users, "4")
	_, err := svc.UpdateUser(context.Background(), UpdateUserInput{UserID: 1, Username: "wanted"})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "CONFLICT" {
		t.Fatalf("expected conflict app error, got %#v", err)
	}
}

func TestUserServiceSoftDelete(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "leaving"}, nil
	}
	var updated *models.User
	users.updateFn = func(_ context.Context, u *models.User) error {
		updated = u
		return nil
	}

	svc := NewUserService(users, "4")
	if err := svc.SoftDeleteUser(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil || !updated.Deleted || updated.DeletedAt == nil {
		t.Fatalf("expected deleted flag and timestamp, got %#v", updated)
	}
}
