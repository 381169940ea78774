package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiyam0211/inty-backend/internal/pkg/identity"
	"github.com/saiyam0211/inty-backend/internal/pkg/usercontext"
)

type stubVerifier struct {
	identities map[string]*identity.Identity
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (*identity.Identity, error) {
	if id, ok := s.identities[token]; ok {
		return id, nil
	}
	return nil, identity.ErrUnauthorized
}

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()
	SetVerifier(&stubVerifier{identities: map[string]*identity.Identity{
		"user-token":  {UserID: "user_1"},
		"admin-token": {UserID: "admin_1", IsAdmin: true},
	}})
	t.Cleanup(func() { SetVerifier(nil) })

	app := fiber.New()
	app.Use(UserContextMiddleware)
	app.Get("/public", func(c *fiber.Ctx) error {
		uc := usercontext.GetUserContext(c)
		return c.JSON(fiber.Map{"loggedIn": uc.IsLoggedIn, "userId": uc.UserID})
	})
	app.Get("/private", RequireUser, func(c *fiber.Ctx) error {
		return c.SendString(usercontext.GetUserContext(c).UserID)
	})
	app.Get("/admin", RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAnonymousPassesPublicRoutes(t *testing.T) {
	app := newAuthTestApp(t)

	resp := request(t, app, "/public", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireUser(t *testing.T) {
	app := newAuthTestApp(t)

	resp := request(t, app, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, "/private", "bogus")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, "/private", "user-token")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	app := newAuthTestApp(t)

	resp := request(t, app, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, "/admin", "user-token")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, "/admin", "admin-token")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
