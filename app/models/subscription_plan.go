package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SubscriptionPlan is a purchasable credit bundle. Amount is whole INR.
// Plans referenced by a completed order are deactivated rather than deleted so
// historical orders keep resolving to the terms in effect at purchase time.
type SubscriptionPlan struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	Amount        int       `gorm:"not null" json:"amount" validate:"required,min=1"`
	ContactsCount int       `gorm:"not null" json:"contactsCount" validate:"required,min=1"`
	Type          string    `gorm:"type:varchar(20);not null;index" json:"type" validate:"required,oneof=designer craftsman"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *SubscriptionPlan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}
