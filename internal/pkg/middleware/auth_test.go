package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/internal/pkg/token"
)

func authConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "middleware-secret",
		Expiration: 60,
		Issuer:     "krishilink",
	}
}

func issueTestToken(t *testing.T, cfg models.JWTConfig, role string) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	signed, _, err := token.IssueSession(userID, "9876543210", role, cfg)
	assert.NoError(t, err)
	return userID, signed
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	// Arrange
	cfg := authConfig()
	called := false
	handler := RequireAuth(cfg)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := handler(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_BadHeaderFormat(t *testing.T) {
	cfg := authConfig()
	called := false
	handler := RequireAuth(cfg)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	cfg := authConfig()
	called := false
	handler := RequireAuth(cfg)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_TokenSignedWithOtherSecret(t *testing.T) {
	cfg := authConfig()
	otherCfg := authConfig()
	otherCfg.Secret = "a-rogue-secret"
	_, signed := issueTestToken(t, otherCfg, models.RoleFarmer)

	called := false
	handler := RequireAuth(cfg)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	// Arrange
	cfg := authConfig()
	userID, signed := issueTestToken(t, cfg, models.RoleFarmer)

	var seen *models.AuthenticatedUser
	handler := RequireAuth(cfg)(func(c echo.Context) error {
		seen = AuthenticatedUser(c)
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := handler(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, seen)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, models.RoleFarmer, seen.Role)
}

func TestRequireRole_Allowed(t *testing.T) {
	cfg := authConfig()
	_, signed := issueTestToken(t, cfg, models.RoleAdmin)

	called := false
	handler := RequireAuth(cfg)(RequireRole(cfg, models.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireRole_Forbidden(t *testing.T) {
	cfg := authConfig()
	_, signed := issueTestToken(t, cfg, models.RoleFarmer)

	called := false
	handler := RequireAuth(cfg)(RequireRole(cfg, models.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRole_Standalone(t *testing.T) {
	// RequireRole registered without RequireAuth in front of it still
	// authenticates before checking the role
	cfg := authConfig()
	userID, signed := issueTestToken(t, cfg, models.RoleAdmin)

	var seen *models.AuthenticatedUser
	handler := RequireRole(cfg, models.RoleAdmin)(func(c echo.Context) error {
		seen = AuthenticatedUser(c)
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, seen)
	assert.Equal(t, userID, seen.UserID)
}

func TestRequireRole_StandaloneNoToken(t *testing.T) {
	cfg := authConfig()
	called := false
	handler := RequireRole(cfg, models.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireRole_StandaloneWrongRole(t *testing.T) {
	cfg := authConfig()
	_, signed := issueTestToken(t, cfg, models.RoleFarmer)

	called := false
	handler := RequireRole(cfg, models.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuthenticatedUser_Unset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, AuthenticatedUser(c))
}
