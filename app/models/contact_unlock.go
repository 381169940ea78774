package models

import "time"

// ContactUnlock records that a user spent a credit to reveal one contact.
// Rows are insert-only; the unique index is the idempotency key for unlocking.
type ContactUnlock struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	UserID      string    `gorm:"type:varchar(191);not null;index:ux_contact_unlocks_user_contact,unique,priority:1" json:"userId"`
	ContactID   string    `gorm:"type:varchar(191);not null;index:ux_contact_unlocks_user_contact,unique,priority:2" json:"contactId"`
	ContactType string    `gorm:"type:varchar(20);not null;index:ux_contact_unlocks_user_contact,unique,priority:3" json:"contactType"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
