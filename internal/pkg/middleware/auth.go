package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/saiyam0211/inty-backend/internal/pkg/identity"
	"github.com/saiyam0211/inty-backend/internal/pkg/usercontext"
)

var verifier identity.Verifier

// SetVerifier injects the identity verifier used by the auth middlewares.
func SetVerifier(v identity.Verifier) {
	verifier = v
}

// UserContextMiddleware resolves an optional bearer token into the request's
// user context. Requests without a token pass through as anonymous; read-only
// masked display needs no authentication.
func UserContextMiddleware(c *fiber.Ctx) error {
	token := extractBearerToken(c)
	if token == "" || verifier == nil {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{})
		return c.Next()
	}

	id, err := verifier.Verify(c.UserContext(), token)
	if err != nil {
		if !errors.Is(err, identity.ErrUnauthorized) {
			log.Printf("auth: token verification failed: %v", err)
		}
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{})
		return c.Next()
	}

	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		UserID:     id.UserID,
		IsLoggedIn: true,
		IsAdmin:    id.IsAdmin,
	})
	return c.Next()
}

// RequireUser ensures a verified identity and returns JSON 401 otherwise.
func RequireUser(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "authentication_required",
			"message": "Sign in to continue",
		})
	}
	return c.Next()
}

// RequireAdmin ensures a verified identity with the admin role.
func RequireAdmin(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "authentication_required",
			"message": "Sign in to continue",
		})
	}
	if !uc.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "Admin access required",
		})
	}
	return c.Next()
}

func extractBearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
