package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/saiyam0211/inty-backend/app/controllers"
	"github.com/saiyam0211/inty-backend/app/repository"
	"github.com/saiyam0211/inty-backend/internal/pkg/database"
	"github.com/saiyam0211/inty-backend/internal/pkg/identity"
	"github.com/saiyam0211/inty-backend/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	db := database.GetDB()
	repository.InitializeGlobalFactory(db)
	controllers.InitializeControllers(db)
	middleware.SetVerifier(identity.NewVerifierFromEnv())

	api := app.Group("/api", limiter.New(limiter.Config{Max: 60}), middleware.UserContextMiddleware)
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	// Public: masked contact cards and the plan catalog.
	v1.Get("/contacts/:type/:id", controllers.HandleGetContact)
	v1.Get("/subscriptions", controllers.HandleListSubscriptions)

	// Signed-in users only.
	auth := v1.Group("", middleware.RequireUser)
	auth.Get("/contacts/:type/:id/details", controllers.HandleGetContactDetails)
	auth.Post("/contacts/:type/:id/unlock", controllers.HandleUnlockContact)
	auth.Get("/me/credits", controllers.HandleGetMyCredits)
	auth.Post("/payments/orders", controllers.HandleCreatePaymentOrder)
	auth.Post("/payments/verify", controllers.HandleVerifyPayment)

	installAdminRoutes(v1)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
