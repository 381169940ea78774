package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyam0211/inty-backend/app/models"
	"github.com/saiyam0211/inty-backend/app/repository"
)

type planRequest struct {
	Name          *string `json:"name"`
	Amount        *int    `json:"amount"`
	ContactsCount *int    `json:"contactsCount"`
	Type          *string `json:"type"`
	IsActive      *bool   `json:"isActive"`
}

// HandleAdminListSubscriptions returns every plan, active or not.
func HandleAdminListSubscriptions(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalFactory().GetPlanRepository().ListAll()
	if err != nil {
		return mapEngineError(c, err)
	}
	return c.JSON(plans)
}

// HandleAdminCreateSubscription creates a new credit bundle.
func HandleAdminCreateSubscription(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if req.Name == nil || req.Amount == nil || req.ContactsCount == nil || req.Type == nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "name, amount, contactsCount and type are required")
	}

	contactType, err := models.NormalizeContactType(*req.Type)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown contact type")
	}

	plan := &models.SubscriptionPlan{
		Name:          *req.Name,
		Amount:        *req.Amount,
		ContactsCount: *req.ContactsCount,
		Type:          contactType,
		IsActive:      true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := plan.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	if err := repository.GetGlobalFactory().GetPlanRepository().Create(plan); err != nil {
		return mapEngineError(c, err)
	}
	invalidatePlanCache()
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// HandleAdminUpdateSubscription applies a partial update to a plan. Historical
// orders are unaffected; they carry their own amount snapshot.
func HandleAdminUpdateSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid plan id")
	}

	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	plan, err := repo.GetByID(uint(id))
	if err != nil {
		return mapEngineError(c, err)
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Amount != nil {
		plan.Amount = *req.Amount
	}
	if req.ContactsCount != nil {
		plan.ContactsCount = *req.ContactsCount
	}
	if req.Type != nil {
		contactType, err := models.NormalizeContactType(*req.Type)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown contact type")
		}
		plan.Type = contactType
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := plan.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	if err := repo.Update(plan); err != nil {
		return mapEngineError(c, err)
	}
	invalidatePlanCache()
	return c.JSON(plan)
}

type planActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// HandleAdminToggleSubscriptionActive flips a plan in or out of the public
// catalog without touching its terms.
func HandleAdminToggleSubscriptionActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid plan id")
	}

	var req planActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if _, err := repo.GetByID(uint(id)); err != nil {
		return mapEngineError(c, err)
	}
	if err := repo.SetActive(uint(id), req.IsActive); err != nil {
		return mapEngineError(c, err)
	}
	invalidatePlanCache()

	plan, err := repo.GetByID(uint(id))
	if err != nil {
		return mapEngineError(c, err)
	}
	return c.JSON(plan)
}

// HandleAdminDeleteSubscription removes a plan, or deactivates it when
// completed orders reference it.
func HandleAdminDeleteSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid plan id")
	}

	deleted, err := repository.GetGlobalFactory().GetPlanRepository().Delete(uint(id))
	if err != nil {
		return mapEngineError(c, err)
	}
	invalidatePlanCache()

	if !deleted {
		return c.JSON(fiber.Map{
			"deleted":     false,
			"deactivated": true,
			"message":     "Plan is referenced by orders and was deactivated instead",
		})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// HandleAdminSubscriptionStats serves the dashboard numbers.
func HandleAdminSubscriptionStats(c *fiber.Ctx) error {
	stats, err := repository.GetGlobalFactory().GetPlanRepository().DashboardStats()
	if err != nil {
		return mapEngineError(c, err)
	}
	return c.JSON(stats)
}
