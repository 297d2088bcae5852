package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestGetMyProfile(t *testing.T) {
	t.Parallel()

	s, db := newHandlerTestServer(t)
	user := seedHandlerUser(t, db, "myself")

	app := authedApp(user.ID)
	app.Get("/users/me", s.GetMyProfile)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got models.User
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Username != "myself" {
		t.Fatalf("unexpected profile %#v", got)
	}
}

func TestUpdateMyProfileUsernameConflict(t *testing.T) {
	t.Parallel()

	s, db := newHandlerTestServer(t)
	user := seedHandlerUser(t, db, "renamer")
	seedHandlerUser(t, db, "taken")

	app := authedApp(user.ID)
	app.Put("/users/me", s.UpdateMyProfile)

	body := []byte(`{"username":"taken"}`)
	req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestUpdateMyProfileRename(t *testing.T) {
	t.Parallel()

	s, db := newHandlerTestServer(t)
	user := seedHandlerUser(t, db, "oldname")

	app := authedApp(user.ID)
	app.Put("/users/me", s.UpdateMyProfile)

	body := []byte(`{"username":"newname","name":"New Name"}`)
	req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Username != "newname" || stored.Name != "New Name" {
		t.Fatalf("update not persisted: %#v", stored)
	}
}

func TestDeleteMyAccountReleasesUsername(t *testing.T) {
	t.Parallel()

	s, db := newHandlerTestServer(t)
	user := seedHandlerUser(t, db, "ghost")

	app := authedApp(user.ID)
	app.Delete("/users/me", s.DeleteMyAccount)
	app.Get("/users/:id", s.GetUserProfile)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/users/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	// The profile reads as never having existed.
	profResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/1", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = profResp.Body.Close() }()
	if profResp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after deletion, got %d", profResp.StatusCode)
	}

	// The row survives for audit and the username is reusable.
	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("row should survive soft delete: %v", err)
	}
	if !stored.Deleted || stored.DeletedAt == nil {
		t.Fatalf("expected deleted flags, got %#v", stored)
	}
	seedHandlerUser(t, db, "ghost")
}

func TestGetUserProfileInvalidID(t *testing.T) {
	t.Parallel()

	s, _ := newHandlerTestServer(t)

	app := fiber.New()
	app.Get("/users/:id", s.GetUserProfile)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetAllUsersExcludesDeleted(t *testing.T) {
	t.Parallel()

	s, db := newHandlerTestServer(t)
	seedHandlerUser(t, db, "visible")
	gone := seedHandlerUser(t, db, "gone")
	if err := db.Model(gone).Updates(map[string]any{"deleted": true}).Error; err != nil {
		t.Fatalf("flag deleted: %v", err)
	}

	app := fiber.New()
	app.Get("/users", s.GetAllUsers)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var users []models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 1 || users[0].Username != "visible" {
		t.Fatalf("expected only the visible user, got %#v", users)
	}
}
