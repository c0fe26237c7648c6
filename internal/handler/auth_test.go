package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restkata/restkata/internal/domain"
)

// loginRequest builds a form-encoded POST /login/ request.
func loginRequest(username, password string) *http.Request {
	form := url.Values{}
	if username != "" {
		form.Set("username", username)
	}
	if password != "" {
		form.Set("password", password)
	}
	req := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ---- POST /login/ --------------------------------------------------------------

func TestLogin_200(t *testing.T) {
	auth := &mockAuthServicer{
		login: func(_ context.Context, username, password string) (string, error) {
			assert.Equal(t, "admin", username)
			assert.Equal(t, "admin", password)
			return "tok-abc-123", nil
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, auth, nil).ServeHTTP(rec, loginRequest("admin", "admin"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-abc-123", rec.Header().Get("X-Session-Token"))
	assert.Equal(t, "Login successful", decodeBody(t, rec)["msg"])
}

func TestLogin_200_NoTrailingSlash(t *testing.T) {
	auth := &mockAuthServicer{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "tok-abc-123", nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=admin&password=admin"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, auth, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_401_BadCredentials(t *testing.T) {
	auth := &mockAuthServicer{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthorized)
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, auth, nil).ServeHTTP(rec, loginRequest("admin", "wrong"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assertDetail(t, rec, "Invalid credentials")
	assert.Empty(t, rec.Header().Get("X-Session-Token"))
}

func TestLogin_422_MissingFields(t *testing.T) {
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, nil, nil).ServeHTTP(rec, loginRequest("admin", ""))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assertDetail(t, rec, "username and password are required")
}

// ---- GET /secure-data ------------------------------------------------------------

func TestSecureData_200_ValidToken(t *testing.T) {
	auth := &mockAuthServicer{
		verifyToken: func(token string) bool { return token == "secret123" },
	}

	req := httptest.NewRequest(http.MethodGet, "/secure-data", nil)
	req.Header.Set("token", "secret123")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, auth, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "This is protected data", decodeBody(t, rec)["msg"])
}

func TestSecureData_403_InvalidToken(t *testing.T) {
	auth := &mockAuthServicer{
		verifyToken: func(_ string) bool { return false },
	}

	req := httptest.NewRequest(http.MethodGet, "/secure-data", nil)
	req.Header.Set("token", "forged")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, auth, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assertDetail(t, rec, "Invalid token")
}

func TestSecureData_422_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/secure-data", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, &mockAuthServicer{}, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assertDetail(t, rec, "token header is required")
}
