package ledger

import (
	"fmt"

	"github.com/saiyam0211/inty-backend/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides the DB operations used by the ledger service. Every
// mutation is a single atomic statement or transaction at the storage layer;
// concurrent callers for the same user are a normal, expected case.
type Repository interface {
	GetOrCreate(userID string) (*models.UserCredits, error)
	AddCredits(userID string, designerDelta, craftsmanDelta int) (*models.UserCredits, error)
	GrantWelcomeCredits(userID string, designerAmount, craftsmanAmount int) (*models.UserCredits, bool, error)
	IsUnlocked(userID, contactID, contactType string) (bool, error)
	UnlockedContactIDs(userID, contactType string) ([]string, error)
	SpendAndUnlock(userID, contactID, contactType string) (*models.UserCredits, bool, error)
	ListWithCredits(offset, limit int) ([]models.UserCredits, error)
	Count() (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a ledger repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetOrCreate(userID string) (*models.UserCredits, error) {
	return getOrCreate(r.db, userID)
}

func getOrCreate(db *gorm.DB, userID string) (*models.UserCredits, error) {
	// Insert-if-absent keyed by the unique user_id index; no implicit grant.
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&models.UserCredits{UserID: userID}).Error; err != nil {
		return nil, err
	}

	var uc models.UserCredits
	if err := db.Where("user_id = ?", userID).First(&uc).Error; err != nil {
		return nil, err
	}
	return &uc, nil
}

func (r *gormRepository) AddCredits(userID string, designerDelta, craftsmanDelta int) (*models.UserCredits, error) {
	if designerDelta < 0 || craftsmanDelta < 0 {
		return nil, ErrNegativeDelta
	}

	var uc *models.UserCredits
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getOrCreate(tx, userID); err != nil {
			return err
		}
		// Relative update so concurrent additions never lose each other.
		if err := tx.Model(&models.UserCredits{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"designer_credits":  gorm.Expr("designer_credits + ?", designerDelta),
				"craftsman_credits": gorm.Expr("craftsman_credits + ?", craftsmanDelta),
			}).Error; err != nil {
			return err
		}
		var err error
		uc, err = getOrCreate(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc, nil
}

func (r *gormRepository) GrantWelcomeCredits(userID string, designerAmount, craftsmanAmount int) (*models.UserCredits, bool, error) {
	if designerAmount < 0 || craftsmanAmount < 0 {
		return nil, false, ErrNegativeDelta
	}

	var uc *models.UserCredits
	granted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getOrCreate(tx, userID); err != nil {
			return err
		}
		// The received_welcome_credits guard makes the grant exactly-once:
		// of N concurrent callers only one update matches the condition.
		res := tx.Model(&models.UserCredits{}).
			Where("user_id = ? AND received_welcome_credits = ?", userID, false).
			Updates(map[string]interface{}{
				"designer_credits":         gorm.Expr("designer_credits + ?", designerAmount),
				"craftsman_credits":        gorm.Expr("craftsman_credits + ?", craftsmanAmount),
				"received_welcome_credits": true,
			})
		if res.Error != nil {
			return res.Error
		}
		granted = res.RowsAffected > 0

		var err error
		uc, err = getOrCreate(tx, userID)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return uc, granted, nil
}

func (r *gormRepository) IsUnlocked(userID, contactID, contactType string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ContactUnlock{}).
		Where("user_id = ? AND contact_id = ? AND contact_type = ?", userID, contactID, contactType).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) UnlockedContactIDs(userID, contactType string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.ContactUnlock{}).
		Where("user_id = ? AND contact_type = ?", userID, contactType).
		Order("created_at ASC").
		Pluck("contact_id", &ids).Error
	return ids, err
}

func (r *gormRepository) SpendAndUnlock(userID, contactID, contactType string) (*models.UserCredits, bool, error) {
	column := models.CreditColumn(contactType)
	if column == "" {
		return nil, false, fmt.Errorf("unknown contact type %q", contactType)
	}

	var uc *models.UserCredits
	alreadyUnlocked := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getOrCreate(tx, userID); err != nil {
			return err
		}

		// The unique (user, contact, type) index is the idempotency key: the
		// insert and the decrement commit together or not at all, and a
		// concurrent duplicate observes the existing row instead of spending.
		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "contact_id"},
				{Name: "contact_type"},
			},
			DoNothing: true,
		}).Create(&models.ContactUnlock{
			UserID:      userID,
			ContactID:   contactID,
			ContactType: contactType,
		})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			alreadyUnlocked = true
			var err error
			uc, err = getOrCreate(tx, userID)
			return err
		}

		spend := tx.Model(&models.UserCredits{}).
			Where("user_id = ? AND "+column+" >= 1", userID).
			Update(column, gorm.Expr(column+" - 1"))
		if spend.Error != nil {
			return spend.Error
		}
		if spend.RowsAffected == 0 {
			// Roll back the unlock row; nothing was spent.
			return ErrInsufficientCredits
		}

		var err error
		uc, err = getOrCreate(tx, userID)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return uc, alreadyUnlocked, nil
}

func (r *gormRepository) ListWithCredits(offset, limit int) ([]models.UserCredits, error) {
	var users []models.UserCredits
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

func (r *gormRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.UserCredits{}).Count(&count).Error
	return count, err
}
