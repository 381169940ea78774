package models

import (
	"fmt"
	"strconv"
	"sync"

	"time"

	"gorm.io/gorm"
)

// Setting represents a system setting row
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	settingKeyWelcomeDesigner  = "welcome_credits_designer"
	settingKeyWelcomeCraftsman = "welcome_credits_craftsman"
)

// WelcomeCreditSettings holds the free credit amounts granted once per user on
// first sign-in. Admin-editable; defaults match the launch configuration.
type WelcomeCreditSettings struct {
	Designer  int `json:"designer" validate:"min=0,max=100"`
	Craftsman int `json:"craftsman" validate:"min=0,max=100"`
}

var (
	welcomeSettings   = WelcomeCreditSettings{Designer: 3, Craftsman: 3}
	welcomeSettingsMu sync.RWMutex
)

// GetWelcomeCreditSettings returns the current welcome credit amounts.
func GetWelcomeCreditSettings() WelcomeCreditSettings {
	welcomeSettingsMu.RLock()
	defer welcomeSettingsMu.RUnlock()
	return welcomeSettings
}

// LoadWelcomeCreditSettings loads the welcome credit amounts from the database
// into memory, keeping defaults for missing keys.
func LoadWelcomeCreditSettings(db *gorm.DB) error {
	welcomeSettingsMu.Lock()
	defer welcomeSettingsMu.Unlock()

	var settings []Setting
	if err := db.Where("setting_key IN ?", []string{settingKeyWelcomeDesigner, settingKeyWelcomeCraftsman}).
		Find(&settings).Error; err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	for _, setting := range settings {
		n, err := strconv.Atoi(setting.Value)
		if err != nil || n < 0 {
			continue
		}
		switch setting.Key {
		case settingKeyWelcomeDesigner:
			welcomeSettings.Designer = n
		case settingKeyWelcomeCraftsman:
			welcomeSettings.Craftsman = n
		}
	}

	return nil
}

// SaveWelcomeCreditSettings persists the amounts and updates the in-memory copy.
func SaveWelcomeCreditSettings(db *gorm.DB, s WelcomeCreditSettings) error {
	if s.Designer < 0 || s.Craftsman < 0 {
		return fmt.Errorf("welcome credit amounts must not be negative")
	}

	pairs := map[string]string{
		settingKeyWelcomeDesigner:  strconv.Itoa(s.Designer),
		settingKeyWelcomeCraftsman: strconv.Itoa(s.Craftsman),
	}
	for key, value := range pairs {
		var setting Setting
		err := db.Where("setting_key = ?", key).First(&setting).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&Setting{Key: key, Value: value}).Error; err != nil {
				return err
			}
			continue
		} else if err != nil {
			return err
		}
		setting.Value = value
		if err := db.Save(&setting).Error; err != nil {
			return err
		}
	}

	welcomeSettingsMu.Lock()
	welcomeSettings = s
	welcomeSettingsMu.Unlock()
	return nil
}
