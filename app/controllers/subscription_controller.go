package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/saiyam0211/inty-backend/app/models"
	"github.com/saiyam0211/inty-backend/app/repository"
	"github.com/saiyam0211/inty-backend/internal/pkg/cache"
)

const planCacheTTL = 5 * time.Minute

func planCacheKey(contactType string) string {
	return "plans:active:" + contactType
}

// HandleListSubscriptions returns the active plans for a category, cheapest
// first so the SPA can pre-select the first entry. Results are cached; admin
// writes invalidate the cache. The cache is a hint only, never authoritative
// for purchases.
func HandleListSubscriptions(c *fiber.Ctx) error {
	contactType, err := models.NormalizeContactType(c.Query("type", models.ContactTypeDesigner))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown contact type")
	}

	if cached, err := cache.Get(planCacheKey(contactType)); err == nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	} else if !cache.IsNotFound(err) {
		log.Printf("plan cache read failed: %v", err)
	}

	plans, err := repository.GetGlobalFactory().GetPlanRepository().ListActive(contactType)
	if err != nil {
		return mapEngineError(c, err)
	}

	payload, err := json.Marshal(plans)
	if err != nil {
		return mapEngineError(c, err)
	}
	if err := cache.Set(planCacheKey(contactType), payload, planCacheTTL); err != nil {
		log.Printf("failed to cache plan list: %v", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

func invalidatePlanCache() {
	for _, t := range []string{models.ContactTypeDesigner, models.ContactTypeCraftsman} {
		if err := cache.Delete(planCacheKey(t)); err != nil {
			log.Printf("failed to invalidate plan cache for %s: %v", t, err)
		}
	}
}
