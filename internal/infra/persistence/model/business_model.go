package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfileModel mirrors the 'business_profiles' table.
type BusinessProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID     string    `gorm:"type:varchar(255);not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:text"`
	Latitude    float64
	Longitude   float64
	Phone       string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(255)"`
	Website     string `gorm:"type:text"`
	IsOpen      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Reviews []BusinessReviewModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}

// BusinessReviewModel mirrors the 'business_reviews' table.
type BusinessReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     string    `gorm:"type:varchar(255);not null"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessReviewModel) TableName() string {
	return "business_reviews"
}
