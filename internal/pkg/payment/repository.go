package payment

import (
	"errors"

	"github.com/saiyam0211/inty-backend/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides the DB operations used by the payment workflow. The
// verify-and-credit step must be one transaction: an order marked verified
// without the ledger credited, or vice versa, is a corruption.
type Repository interface {
	GetActivePlan(id uint) (*models.SubscriptionPlan, error)
	CreateOrder(order *models.PaymentOrder) error
	GetOrder(orderID string) (*models.PaymentOrder, error)
	MarkFailed(orderID, paymentID string) error
	MarkVerifiedAndCredit(orderID, paymentID, creditColumn string, delta int) (*models.PaymentOrder, *models.UserCredits, bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a payment repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetActivePlan(id uint) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *gormRepository) CreateOrder(order *models.PaymentOrder) error {
	return r.db.Create(order).Error
}

func (r *gormRepository) GetOrder(orderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	err := r.db.Where("order_id = ?", orderID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *gormRepository) MarkFailed(orderID, paymentID string) error {
	// Failed is terminal but must never overwrite a verified order.
	return r.db.Model(&models.PaymentOrder{}).
		Where("order_id = ? AND status = ?", orderID, models.OrderStatusCreated).
		Updates(map[string]interface{}{
			"status":     models.OrderStatusFailed,
			"payment_id": paymentID,
		}).Error
}

// MarkVerifiedAndCredit flips created -> verified and credits the ledger in one
// transaction. The conditional update is the idempotency guard: of N concurrent
// callbacks for the same order only one matches, the rest report credited=false
// and read the ledger as-is.
func (r *gormRepository) MarkVerifiedAndCredit(orderID, paymentID, creditColumn string, delta int) (*models.PaymentOrder, *models.UserCredits, bool, error) {
	var (
		order    models.PaymentOrder
		credits  models.UserCredits
		credited bool
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PaymentOrder{}).
			Where("order_id = ? AND status = ?", orderID, models.OrderStatusCreated).
			Updates(map[string]interface{}{
				"status":     models.OrderStatusVerified,
				"payment_id": paymentID,
			})
		if res.Error != nil {
			return res.Error
		}
		credited = res.RowsAffected > 0

		if err := tx.Where("order_id = ?", orderID).First(&order).Error; err != nil {
			return err
		}

		if credited {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoNothing: true,
			}).Create(&models.UserCredits{UserID: order.UserID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.UserCredits{}).
				Where("user_id = ?", order.UserID).
				Update(creditColumn, gorm.Expr(creditColumn+" + ?", delta)).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", order.UserID).First(&credits).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, false, ErrOrderNotFound
		}
		return nil, nil, false, err
	}
	return &order, &credits, credited, nil
}
