package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyam0211/inty-backend/app/models"
	"github.com/saiyam0211/inty-backend/app/repository"
	"github.com/saiyam0211/inty-backend/internal/pkg/masking"
	"github.com/saiyam0211/inty-backend/internal/pkg/usercontext"
)

// HandleGetContact returns the masked card for a professional plus, for a
// signed-in caller, the unlock status and spendable balance for the category.
// Anonymous callers get the masked view only.
func HandleGetContact(c *fiber.Ctx) error {
	contactType, err := models.NormalizeContactType(c.Params("type"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown contact type")
	}

	contact, err := repository.GetGlobalFactory().GetContactRepository().
		GetByIDAndType(c.Params("id"), contactType)
	if err != nil {
		return mapEngineError(c, err)
	}

	masked := masking.Mask(masking.Contact{
		Name:  contact.Name,
		Phone: contact.Phone,
		Email: contact.Email,
	})

	resp := fiber.Map{
		"id":                contact.ID,
		"type":              contact.Type,
		"name":              masked.Name,
		"phone":             masked.Phone,
		"email":             masked.Email,
		"city":              contact.City,
		"rate":              contact.Rate,
		"experienceYears":   contact.ExperienceYears,
		"projectsCompleted": contact.ProjectsCompleted,
		"rating":            contact.Rating,
		"reviewsCount":      contact.ReviewsCount,
	}

	uc := usercontext.GetUserContext(c)
	if uc.IsLoggedIn {
		status, err := ledgerService.ContactStatus(c.UserContext(), uc.UserID, contact.ID, contactType)
		if err != nil {
			return mapEngineError(c, err)
		}
		resp["status"] = status
	}

	return c.JSON(resp)
}

// HandleGetContactDetails returns the canonical phone and email of a contact
// the caller has already unlocked.
func HandleGetContactDetails(c *fiber.Ctx) error {
	contactType, err := models.NormalizeContactType(c.Params("type"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown contact type")
	}
	uc := usercontext.GetUserContext(c)

	contact, err := repository.GetGlobalFactory().GetContactRepository().
		GetByIDAndType(c.Params("id"), contactType)
	if err != nil {
		return mapEngineError(c, err)
	}

	unlocked, err := ledgerService.IsUnlocked(c.UserContext(), uc.UserID, contact.ID, contactType)
	if err != nil {
		return mapEngineError(c, err)
	}
	if !unlocked {
		return jsonError(c, fiber.StatusForbidden, "locked_contact", "Unlock this contact to see its details")
	}

	return c.JSON(fiber.Map{
		"id":    contact.ID,
		"type":  contact.Type,
		"name":  contact.Name,
		"phone": contact.Phone,
		"email": contact.Email,
	})
}

// HandleUnlockContact spends one credit to permanently reveal a contact and
// returns the canonical details together with the updated ledger. Repeats are
// idempotent and consume nothing.
func HandleUnlockContact(c *fiber.Ctx) error {
	contactType, err := models.NormalizeContactType(c.Params("type"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown contact type")
	}
	uc := usercontext.GetUserContext(c)

	contact, err := repository.GetGlobalFactory().GetContactRepository().
		GetByIDAndType(c.Params("id"), contactType)
	if err != nil {
		return mapEngineError(c, err)
	}

	result, err := ledgerService.Unlock(c.UserContext(), uc.UserID, contact.ID, contactType)
	if err != nil {
		return mapEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"alreadyUnlocked": result.AlreadyUnlocked,
		"credits":         result.Credits,
		"contact": fiber.Map{
			"id":    contact.ID,
			"type":  contact.Type,
			"name":  contact.Name,
			"phone": contact.Phone,
			"email": contact.Email,
		},
	})
}
