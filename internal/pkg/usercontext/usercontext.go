package usercontext

import "github.com/gofiber/fiber/v2"

const KeyUserContext = "USER_CONTEXT"

// UserContext is the per-request identity resolved from the bearer token.
// UserID is the identity provider's subject; mutating handlers must use it and
// never a client-supplied id.
type UserContext struct {
	UserID     string
	IsLoggedIn bool
	IsAdmin    bool
}

// GetUserContext returns the identity attached by the auth middleware, or an
// anonymous context when none was set.
func GetUserContext(c *fiber.Ctx) UserContext {
	if uc, ok := c.Locals(KeyUserContext).(UserContext); ok {
		return uc
	}
	return UserContext{}
}
