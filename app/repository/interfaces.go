package repository

import (
	"time"

	"github.com/saiyam0211/inty-backend/app/models"
)

// PlanRepository defines the database operations for subscription plans.
type PlanRepository interface {
	Create(plan *models.SubscriptionPlan) error
	GetByID(id uint) (*models.SubscriptionPlan, error)
	Update(plan *models.SubscriptionPlan) error
	SetActive(id uint, active bool) error
	// Delete removes a plan, or deactivates it instead when completed orders
	// reference it so historical orders keep resolving to purchase-time terms.
	Delete(id uint) (deleted bool, err error)
	ListActive(contactType string) ([]models.SubscriptionPlan, error)
	ListAll() ([]models.SubscriptionPlan, error)
	DashboardStats() (*SubscriptionStats, error)
}

// ContactRepository defines read access to the professional directory copy.
type ContactRepository interface {
	GetByIDAndType(id, contactType string) (*models.Contact, error)
}

// RecentPayment is one row of the admin dashboard's purchase feed.
type RecentPayment struct {
	ID               uint      `json:"id"`
	Date             time.Time `json:"date"`
	UserID           string    `json:"userId"`
	SubscriptionName string    `json:"subscriptionName"`
	Amount           int       `json:"amount"`
}

// SubscriptionStats aggregates the numbers shown on the admin dashboard.
type SubscriptionStats struct {
	TotalSubscriptions     int64           `json:"totalSubscriptions"`
	ActiveSubscriptions    int64           `json:"activeSubscriptions"`
	DesignerSubscriptions  int64           `json:"designerSubscriptions"`
	CraftsmanSubscriptions int64           `json:"craftsmanSubscriptions"`
	TotalRevenue           int64           `json:"totalRevenue"`
	MonthlyRevenue         int64           `json:"monthlyRevenue"`
	UniqueUsers            int64           `json:"uniqueUsers"`
	RecentPurchases        int64           `json:"recentPurchases"`
	RecentPayments         []RecentPayment `json:"recentPayments"`
}
