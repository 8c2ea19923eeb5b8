package handler

import (
	"net/http"
	"testing"
)

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/login", LoginRequest{
		Email:    "anthony@arrebolweddings.com",
		Password: "secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp LoginResponse
	decodeJSON(t, w, &resp)
	if !resp.Success || resp.Token == "" {
		t.Errorf("Expected a token, got %+v", resp)
	}
	if resp.User.Name != "Anthony Cazares" || resp.User.Role != "admin" {
		t.Errorf("Unexpected user: %+v", resp.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/login", LoginRequest{
		Email:    "anthony@arrebolweddings.com",
		Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	var resp map[string]interface{}
	decodeJSON(t, w, &resp)
	if resp["error"] != "Credenciales incorrectas" {
		t.Errorf("Unexpected error message: %v", resp["error"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/login", map[string]string{"email": "a@b.com"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestListUsers(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var users []map[string]string
	decodeJSON(t, w, &users)
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if u["email"] == "" || u["name"] == "" {
			t.Errorf("User entry missing fields: %v", u)
		}
		if _, ok := u["password"]; ok {
			t.Error("Password must not be exposed")
		}
	}
}
