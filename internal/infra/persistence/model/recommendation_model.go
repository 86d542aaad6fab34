package model

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationModel mirrors the 'recommendations' table. Scores are written
// by an external process; this service only reads and flips the viewed flag.
type RecommendationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     string    `gorm:"type:varchar(255);not null;index"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null"`
	RecType    string    `gorm:"type:varchar(50);not null;default:personalized"`
	Score      float64   `gorm:"not null"`
	Reason     string    `gorm:"type:text"`
	Viewed     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time

	Business *BusinessProfileModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (RecommendationModel) TableName() string {
	return "recommendations"
}
