package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/saiyam0211/inty-backend/internal/pkg/ledger"
	"github.com/saiyam0211/inty-backend/internal/pkg/payment"
	"gorm.io/gorm"
)

var (
	ledgerService  *ledger.Service
	paymentService *payment.Service
)

// InitializeControllers wires the engine services all handlers share.
func InitializeControllers(db *gorm.DB) {
	ledgerService = ledger.NewServiceFromDB(db)
	paymentService = payment.NewServiceFromDB(db)
}

func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// mapEngineError translates typed engine errors into user-visible responses.
// Signature mismatches stay generic on purpose; internals are never leaked.
func mapEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInsufficientCredits):
		return jsonError(c, fiber.StatusPaymentRequired, "insufficient_credits",
			"You have no credits left for this category. Purchase a plan to unlock more contacts.")
	case errors.Is(err, ledger.ErrNegativeDelta):
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Credit amounts must not be negative")
	case errors.Is(err, payment.ErrInvalidSubscription):
		return jsonError(c, fiber.StatusBadRequest, "invalid_subscription", "The selected plan is not available")
	case errors.Is(err, payment.ErrGatewayUnavailable):
		return jsonError(c, fiber.StatusBadGateway, "gateway_unavailable",
			"The payment provider is temporarily unavailable. Please try again.")
	case errors.Is(err, payment.ErrSignatureMismatch):
		return jsonError(c, fiber.StatusBadRequest, "verification_failed", "Payment verification failed")
	case errors.Is(err, payment.ErrOrderNotFound):
		return jsonError(c, fiber.StatusNotFound, "order_not_found", "Payment order not found")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return jsonError(c, fiber.StatusNotFound, "not_found", "Resource not found")
	default:
		log.Printf("internal error: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Something went wrong")
	}
}
