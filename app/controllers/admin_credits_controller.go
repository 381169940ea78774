package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/saiyam0211/inty-backend/app/models"
	"github.com/saiyam0211/inty-backend/internal/pkg/database"
)

const adminUserPageSize = 50

// HandleAdminListUserCredits returns a page of ledger rows for the back office.
func HandleAdminListUserCredits(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	users, total, err := ledgerService.ListWithCredits(c.UserContext(), (page-1)*adminUserPageSize, adminUserPageSize)
	if err != nil {
		return mapEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
	})
}

type addCreditsRequest struct {
	UserID           string `json:"userId"`
	DesignerCredits  int    `json:"designerCredits"`
	CraftsmanCredits int    `json:"craftsmanCredits"`
}

// HandleAdminAddCredits applies a manual operator grant through the same
// atomic ledger path the payment workflow uses.
func HandleAdminAddCredits(c *fiber.Ctx) error {
	var req addCreditsRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "userId is required")
	}
	if req.DesignerCredits <= 0 && req.CraftsmanCredits <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Enter a positive number of credits")
	}

	credits, err := ledgerService.AddCredits(c.UserContext(), strings.TrimSpace(req.UserID), req.DesignerCredits, req.CraftsmanCredits)
	if err != nil {
		return mapEngineError(c, err)
	}
	return c.JSON(fiber.Map{"credits": credits})
}

// HandleAdminGetWelcomeSettings returns the one-time welcome grant amounts.
func HandleAdminGetWelcomeSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"welcomeCredits": models.GetWelcomeCreditSettings()})
}

// HandleAdminUpdateWelcomeSettings changes the welcome grant amounts for
// users who have not received theirs yet. Past grants are not revisited.
func HandleAdminUpdateWelcomeSettings(c *fiber.Ctx) error {
	var req models.WelcomeCreditSettings
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if req.Designer < 0 || req.Craftsman < 0 || req.Designer > 100 || req.Craftsman > 100 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Amounts must be between 0 and 100")
	}

	if err := models.SaveWelcomeCreditSettings(database.GetDB(), req); err != nil {
		return mapEngineError(c, err)
	}
	return c.JSON(fiber.Map{"welcomeCredits": models.GetWelcomeCreditSettings()})
}
