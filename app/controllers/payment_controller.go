package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/saiyam0211/inty-backend/internal/pkg/env"
	"github.com/saiyam0211/inty-backend/internal/pkg/usercontext"
)

type createOrderRequest struct {
	SubscriptionID uint `json:"subscriptionId"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// HandleCreatePaymentOrder mints a gateway order for the chosen plan and
// returns what the checkout widget needs. No credit is granted here; the
// ledger only moves on verification.
func HandleCreatePaymentOrder(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil || req.SubscriptionID == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "subscriptionId is required")
	}

	order, err := paymentService.CreateOrder(c.UserContext(), uc.UserID, req.SubscriptionID)
	if err != nil {
		return mapEngineError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"orderId":     order.OrderID,
		"amount":      order.Amount,
		"amountPaise": order.Amount * 100,
		"currency":    order.Currency,
		"keyId":       strings.TrimSpace(env.GetEnv("RAZORPAY_KEY_ID", "")),
	})
}

// HandleVerifyPayment forwards the gateway callback triple verbatim to the
// payment workflow and returns the post-credit ledger. Safe to call twice: a
// replay returns the unchanged ledger.
func HandleVerifyPayment(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil ||
		req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "orderId, paymentId and signature are required")
	}

	credits, err := paymentService.VerifyPayment(c.UserContext(), req.OrderID, req.PaymentID, req.Signature, uc.UserID)
	if err != nil {
		return mapEngineError(c, err)
	}

	return c.JSON(fiber.Map{"credits": credits})
}
