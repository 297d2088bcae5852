package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestSignupAndLoginFlow(t *testing.T) {
	t.Parallel()

	s, db := newHandlerTestServer(t)

	app := fiber.New()
	app.Post("/auth/signup", s.Signup)
	app.Post("/auth/login", s.Login)

	signup := map[string]string{
		"name":     "Alice Example",
		"username": "alice",
		"email":    "alice@example.com",
		"password": "SecurePass12!@",
	}
	resp := postJSON(t, app, "/auth/signup", signup)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var signupBody struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signupBody); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if signupBody.Token == "" {
		t.Fatal("expected a token in signup response")
	}
	if signupBody.User.ID == 0 {
		t.Fatal("expected an assigned user ID")
	}

	// The stored password must be a hash, never the plaintext.
	var stored models.User
	if err := db.First(&stored, signupBody.User.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Password == signup["password"] {
		t.Fatal("password stored in plaintext")
	}

	loginResp := postJSON(t, app, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "SecurePass12!@",
	})
	defer func() { _ = loginResp.Body.Close() }()
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on login, got %d", loginResp.StatusCode)
	}

	badResp := postJSON(t, app, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "WrongPass12!@",
	})
	defer func() { _ = badResp.Body.Close() }()
	if badResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 on wrong password, got %d", badResp.StatusCode)
	}
}

func TestSignupDuplicateUsernameConflicts(t *testing.T) {
	t.Parallel()

	s, _ := newHandlerTestServer(t)

	app := fiber.New()
	app.Post("/auth/signup", s.Signup)

	payload := map[string]string{
		"name":     "Bob Example",
		"username": "bob",
		"email":    "bob@example.com",
		"password": "SecurePass12!@",
	}
	resp := postJSON(t, app, "/auth/signup", payload)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	payload["email"] = "bob2@example.com"
	dup := postJSON(t, app, "/auth/signup", payload)
	defer func() { _ = dup.Body.Close() }()
	if dup.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", dup.StatusCode)
	}
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	s, _ := newHandlerTestServer(t)

	app := fiber.New()
	app.Post("/auth/signup", s.Signup)

	cases := []struct {
		name    string
		payload map[string]string
	}{
		{"Missing Fields", map[string]string{"username": "carol"}},
		{"Weak Password", map[string]string{
			"name": "Carol", "username": "carol", "email": "carol@example.com", "password": "short",
		}},
		{"Bad Email", map[string]string{
			"name": "Carol", "username": "carol", "email": "not-an-email", "password": "SecurePass12!@",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/auth/signup", tc.payload)
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestLoginAfterAccountDeletionFails(t *testing.T) {
	t.Parallel()

	s, _ := newHandlerTestServer(t)

	app := fiber.New()
	app.Post("/auth/signup", s.Signup)
	app.Post("/auth/login", s.Login)

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"name":     "Dana Example",
		"username": "dana",
		"email":    "dana@example.com",
		"password": "SecurePass12!@",
	})
	var signupBody struct {
		User models.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signupBody); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	_ = resp.Body.Close()

	if err := s.userService.SoftDeleteUser(context.Background(), signupBody.User.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	loginResp := postJSON(t, app, "/auth/login", map[string]string{
		"email":    "dana@example.com",
		"password": "SecurePass12!@",
	})
	defer func() { _ = loginResp.Body.Close() }()
	if loginResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted account, got %d", loginResp.StatusCode)
	}
}
