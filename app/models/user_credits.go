package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	ContactTypeDesigner  = "designer"
	ContactTypeCraftsman = "craftsman"
)

// NormalizeContactType lower-cases and validates a contact category.
func NormalizeContactType(t string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case ContactTypeDesigner:
		return ContactTypeDesigner, nil
	case ContactTypeCraftsman:
		return ContactTypeCraftsman, nil
	default:
		return "", fmt.Errorf("unknown contact type %q", t)
	}
}

// UserCredits is the per-identity credit ledger row. UserID is the opaque
// subject from the identity provider, never a client-supplied value. Balances
// never go negative; the repository enforces that with conditional updates.
type UserCredits struct {
	ID                     uint      `gorm:"primaryKey" json:"-"`
	UserID                 string    `gorm:"type:varchar(191);not null;uniqueIndex" json:"userId"`
	DesignerCredits        int       `gorm:"not null;default:0" json:"designerCredits"`
	CraftsmanCredits       int       `gorm:"not null;default:0" json:"craftsmanCredits"`
	ReceivedWelcomeCredits bool      `gorm:"not null;default:false" json:"receivedWelcomeCredits"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Balance returns the credit balance for a contact category, 0 for an unknown
// one. Adding a category means one more arm here and in CreditColumn.
func (uc *UserCredits) Balance(contactType string) int {
	switch contactType {
	case ContactTypeDesigner:
		return uc.DesignerCredits
	case ContactTypeCraftsman:
		return uc.CraftsmanCredits
	default:
		return 0
	}
}

// CreditColumn maps a contact category to its ledger column. Unknown
// categories map to "" so they can never spend or credit another category's
// balance; callers must treat "" as an error.
func CreditColumn(contactType string) string {
	switch contactType {
	case ContactTypeDesigner:
		return "designer_credits"
	case ContactTypeCraftsman:
		return "craftsman_credits"
	default:
		return ""
	}
}
