package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saiyam0211/inty-backend/app/controllers"
	"github.com/saiyam0211/inty-backend/internal/pkg/middleware"
)

// installAdminRoutes registers the management surface. Every route requires
// an admin identity.
func installAdminRoutes(v1 fiber.Router) {
	admin := v1.Group("/admin", middleware.RequireAdmin)

	admin.Get("/subscriptions", controllers.HandleAdminListSubscriptions)
	admin.Post("/subscriptions", controllers.HandleAdminCreateSubscription)
	admin.Put("/subscriptions/:id", controllers.HandleAdminUpdateSubscription)
	admin.Put("/subscriptions/:id/active", controllers.HandleAdminToggleSubscriptionActive)
	admin.Delete("/subscriptions/:id", controllers.HandleAdminDeleteSubscription)
	admin.Get("/subscriptions/stats/dashboard", controllers.HandleAdminSubscriptionStats)

	admin.Get("/users/credits", controllers.HandleAdminListUserCredits)
	admin.Patch("/users/credits", controllers.HandleAdminAddCredits)
	admin.Get("/users/welcome-credits-settings", controllers.HandleAdminGetWelcomeSettings)
	admin.Put("/users/welcome-credits-settings", controllers.HandleAdminUpdateWelcomeSettings)
}
