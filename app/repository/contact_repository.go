package repository

import (
	"github.com/saiyam0211/inty-backend/app/models"
	"gorm.io/gorm"
)

// contactRepository implements the ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetByIDAndType(id, contactType string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Where("id = ? AND type = ?", id, contactType).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
