package models

import "time"

// Contact is this service's copy of the professional directory record: the
// canonical phone/email revealed after an unlock plus the display fields the
// profile cards render. CRUD over the wider directory lives in the admin
// backend; this service only reads and seeds these rows.
type Contact struct {
	ID                string    `gorm:"type:varchar(191);primaryKey" json:"id"`
	Type              string    `gorm:"type:varchar(20);not null;index" json:"type"`
	Name              string    `gorm:"type:varchar(150);not null" json:"name"`
	Phone             string    `gorm:"type:varchar(20);not null" json:"-"`
	Email             string    `gorm:"type:varchar(200);not null" json:"-"`
	City              string    `gorm:"type:varchar(100)" json:"city"`
	Rate              string    `gorm:"type:varchar(50)" json:"rate"`
	ExperienceYears   int       `json:"experienceYears"`
	ProjectsCompleted int       `json:"projectsCompleted"`
	Rating            float64   `json:"rating"`
	ReviewsCount      int       `json:"reviewsCount"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"-"`
}
