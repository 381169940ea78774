package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyam0211/inty-backend/app/models"
	"github.com/saiyam0211/inty-backend/internal/pkg/usercontext"
)

// HandleGetMyCredits returns the caller's ledger and unlocked contact ids.
// The first signed-in call triggers the one-time welcome grant; concurrent
// first calls (two tabs) still grant exactly once.
func HandleGetMyCredits(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	ctx := c.UserContext()

	credits, granted, err := ledgerService.EnsureWelcomeCredits(ctx, uc.UserID, models.GetWelcomeCreditSettings())
	if err != nil {
		return mapEngineError(c, err)
	}

	viewedDesigners, err := ledgerService.UnlockedContactIDs(ctx, uc.UserID, models.ContactTypeDesigner)
	if err != nil {
		return mapEngineError(c, err)
	}
	viewedCraftsmen, err := ledgerService.UnlockedContactIDs(ctx, uc.UserID, models.ContactTypeCraftsman)
	if err != nil {
		return mapEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"credits":         credits,
		"viewedDesigners": viewedDesigners,
		"viewedCraftsmen": viewedCraftsmen,
		"welcomeGranted":  granted,
	})
}
