package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"digimart.backend/internal/domain/entities"
	"digimart.backend/internal/usecases"
	"digimart.backend/pkg/jwt"
)

func newAuthRouter(users *userRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("handler-test-secret", 15*time.Minute, 24*time.Hour)
	uc := usecases.NewAuthUsecase(users, jwtService, nil, 24*time.Hour)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	users := newUserRepoStub()
	r := newAuthRouter(users)

	w := postJSON(t, r, "/auth/register", gin.H{
		"email":    "new@example.com",
		"username": "newbie",
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created entities.User
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Role != entities.UserRoleBuyer {
		t.Fatalf("new users must start as buyers, got %s", created.Role)
	}

	w = postJSON(t, r, "/auth/login", gin.H{
		"email":    "new@example.com",
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var resp entities.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatalf("token pair missing: %+v", resp)
	}

	w = postJSON(t, r, "/auth/refresh", gin.H{"refreshToken": resp.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	users := newUserRepoStub()
	r := newAuthRouter(users)

	w := postJSON(t, r, "/auth/register", gin.H{
		"email":    "user@example.com",
		"username": "user",
		"password": "correct-horse",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = postJSON(t, r, "/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "wrong-horse",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	r := newAuthRouter(newUserRepoStub())

	w := postJSON(t, r, "/auth/register", gin.H{
		"email":    "not-an-email",
		"username": "x",
		"password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_RefreshWithGarbage(t *testing.T) {
	r := newAuthRouter(newUserRepoStub())

	w := postJSON(t, r, "/auth/refresh", gin.H{"refreshToken": "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
