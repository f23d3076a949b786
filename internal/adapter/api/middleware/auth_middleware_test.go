package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reptileshop/internal/infrastructure/auth"
)

func runAuthenticated(t *testing.T, header string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(auth.NewJWTManager("secret", time.Hour, time.Minute))
	err := m.Authenticate(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	return c, err
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	tokens := auth.NewJWTManager("secret", time.Hour, time.Minute)
	token, err := tokens.Generate("user-1", true)
	require.NoError(t, err)

	c, err := runAuthenticated(t, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.Get("uid"))
	assert.Equal(t, true, c.Get("isAdmin"))
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	_, err := runAuthenticated(t, "")
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateRejectsBadFormat(t *testing.T) {
	_, err := runAuthenticated(t, "Token abc")
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateRejectsForgedToken(t *testing.T) {
	other := auth.NewJWTManager("different-secret", time.Hour, time.Minute)
	token, err := other.Generate("user-1", false)
	require.NoError(t, err)

	_, err = runAuthenticated(t, "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestOptionalContinuesWithoutToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(auth.NewJWTManager("secret", time.Hour, time.Minute))
	err := m.Optional(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	require.NoError(t, err)
	assert.Nil(t, c.Get("uid"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
