package repository

import (
	"time"

	"github.com/saiyam0211/inty-backend/app/models"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}

func (r *planRepository) GetByID(id uint) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	if err := r.db.First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Update(plan *models.SubscriptionPlan) error {
	return r.db.Save(plan).Error
}

func (r *planRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.SubscriptionPlan{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *planRepository) Delete(id uint) (bool, error) {
	var referenced int64
	if err := r.db.Model(&models.PaymentOrder{}).
		Where("subscription_id = ?", id).
		Count(&referenced).Error; err != nil {
		return false, err
	}
	if referenced > 0 {
		return false, r.SetActive(id, false)
	}
	return true, r.db.Delete(&models.SubscriptionPlan{}, id).Error
}

// ListActive returns active plans of a category ordered by ascending price so
// the cheapest bundle is the SPA's default selection.
func (r *planRepository) ListActive(contactType string) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	q := r.db.Where("is_active = ?", true)
	if contactType != "" {
		q = q.Where("type = ?", contactType)
	}
	err := q.Order("amount ASC").Find(&plans).Error
	return plans, err
}

func (r *planRepository) ListAll() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := r.db.Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *planRepository) DashboardStats() (*SubscriptionStats, error) {
	stats := &SubscriptionStats{RecentPayments: []RecentPayment{}}

	plans := r.db.Model(&models.SubscriptionPlan{})
	if err := plans.Count(&stats.TotalSubscriptions).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.SubscriptionPlan{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveSubscriptions).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.SubscriptionPlan{}).
		Where("type = ?", models.ContactTypeDesigner).
		Count(&stats.DesignerSubscriptions).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.SubscriptionPlan{}).
		Where("type = ?", models.ContactTypeCraftsman).
		Count(&stats.CraftsmanSubscriptions).Error; err != nil {
		return nil, err
	}

	verified := func() *gorm.DB {
		return r.db.Model(&models.PaymentOrder{}).
			Where("status = ?", models.OrderStatusVerified)
	}
	monthAgo := time.Now().AddDate(0, 0, -30)

	if err := verified().Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := verified().Where("updated_at >= ?", monthAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.MonthlyRevenue).Error; err != nil {
		return nil, err
	}
	if err := verified().Distinct("user_id").Count(&stats.UniqueUsers).Error; err != nil {
		return nil, err
	}
	if err := verified().Where("updated_at >= ?", monthAgo).Count(&stats.RecentPurchases).Error; err != nil {
		return nil, err
	}

	// Orders carry their plan terms from purchase time, so the feed reports
	// what was actually bought even after plan edits.
	err := r.db.Model(&models.PaymentOrder{}).
		Select("id, updated_at AS date, user_id, plan_name AS subscription_name, amount").
		Where("status = ?", models.OrderStatusVerified).
		Order("updated_at DESC").
		Limit(10).
		Scan(&stats.RecentPayments).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
