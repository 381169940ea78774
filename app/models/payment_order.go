package models

import "time"

const (
	OrderStatusCreated  = "created"
	OrderStatusVerified = "verified"
	OrderStatusFailed   = "failed"
)

// PaymentOrder mirrors a gateway order and its verification outcome.
// Status only moves created -> verified or created -> failed; the transition to
// verified happens at most once and is the step that credits the ledger.
// PlanName, ContactType and ContactsCount snapshot the plan terms at purchase
// time; verification and reporting read the snapshot, never the live plan, so
// later plan edits cannot change what a buyer paid for.
type PaymentOrder struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	OrderID        string    `gorm:"type:varchar(191);not null;uniqueIndex" json:"orderId"`
	UserID         string    `gorm:"type:varchar(191);not null;index" json:"userId"`
	SubscriptionID uint      `gorm:"not null;index" json:"subscriptionId"`
	PlanName       string    `gorm:"type:varchar(150);not null;default:''" json:"planName"`
	ContactType    string    `gorm:"type:varchar(20);not null;default:''" json:"contactType"`
	ContactsCount  int       `gorm:"not null;default:0" json:"contactsCount"`
	Amount         int       `gorm:"not null" json:"amount"`
	Currency       string    `gorm:"type:varchar(8);not null;default:'INR'" json:"currency"`
	Status         string    `gorm:"type:varchar(16);not null;default:'created';index" json:"status"`
	PaymentID      string    `gorm:"type:varchar(191);default:''" json:"paymentId,omitempty"`
	Receipt        string    `gorm:"type:varchar(64);default:''" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsVerified reports whether the order already credited the ledger.
func (o *PaymentOrder) IsVerified() bool {
	return o.Status == OrderStatusVerified
}
