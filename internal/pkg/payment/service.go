package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/saiyam0211/inty-backend/app/models"
	"github.com/saiyam0211/inty-backend/internal/pkg/env"
	"gorm.io/gorm"
)

// Service runs the payment order workflow: mint a gateway order for a credit
// bundle, then verify the signed checkout callback before crediting the
// ledger. Orders move created -> verified or created -> failed, never back; a
// created-but-never-verified order is inert and needs no cleanup.
type Service struct {
	repo    Repository
	gateway Gateway
	secret  string
}

// NewService creates a payment service with injected collaborators.
func NewService(repo Repository, gateway Gateway, keySecret string) *Service {
	return &Service{repo: repo, gateway: gateway, secret: keySecret}
}

// NewServiceFromDB wires the service against GORM and the env-configured
// Razorpay client.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(
		NewRepository(db),
		NewRazorpayClientFromEnv(),
		strings.TrimSpace(env.GetEnv("RAZORPAY_KEY_SECRET", "")),
	)
}

// CreateOrder validates the plan, mints a gateway order and persists it as
// created. Safe to retry on ErrGatewayUnavailable: credits only follow
// verification, so stray created orders cost nothing.
func (s *Service) CreateOrder(ctx context.Context, userID string, subscriptionID uint) (*models.PaymentOrder, error) {
	plan, err := s.repo.GetActivePlan(subscriptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSubscription
		}
		return nil, err
	}

	receipt := "rcpt_" + uuid.NewString()
	orderID, err := s.gateway.CreateOrder(ctx, plan.Amount*100, "INR", receipt)
	if err != nil {
		return nil, err
	}

	// Snapshot the plan terms: later plan edits must not change what this
	// order credits or how it reports.
	order := &models.PaymentOrder{
		OrderID:        orderID,
		UserID:         userID,
		SubscriptionID: plan.ID,
		PlanName:       plan.Name,
		ContactType:    plan.Type,
		ContactsCount:  plan.ContactsCount,
		Amount:         plan.Amount,
		Currency:       "INR",
		Status:         models.OrderStatusCreated,
		Receipt:        receipt,
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// VerifyPayment checks the gateway signature over (orderID, paymentID) and, on
// the first valid callback for the order, atomically marks it verified and
// credits the contact count snapshotted at purchase time. Replays of an
// already-verified order return the current ledger unchanged.
func (s *Service) VerifyPayment(ctx context.Context, orderID, paymentID, signature, userID string) (*models.UserCredits, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		// Do not reveal that the order exists.
		return nil, ErrOrderNotFound
	}

	if !VerifySignature(orderID, paymentID, signature, s.secret) {
		if err := s.repo.MarkFailed(orderID, paymentID); err != nil {
			log.Printf("payment: failed to mark order %s failed: %v", orderID, err)
		}
		return nil, ErrSignatureMismatch
	}

	column := models.CreditColumn(order.ContactType)
	if column == "" {
		return nil, fmt.Errorf("order %s has unknown contact type %q", orderID, order.ContactType)
	}

	_, credits, credited, err := s.repo.MarkVerifiedAndCredit(
		orderID,
		paymentID,
		column,
		order.ContactsCount,
	)
	if err != nil {
		return nil, err
	}
	if !credited {
		log.Printf("payment: order %s already verified, callback replay ignored", orderID)
	}
	return credits, nil
}
