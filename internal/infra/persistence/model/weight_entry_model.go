package model

import (
	"time"

	"github.com/google/uuid"
)

// WeightEntryModel mirrors the 'weight_entries' table.
type WeightEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     string    `gorm:"type:varchar(255);not null;index"`
	Weight     string    `gorm:"type:decimal(6,2);not null"`
	Unit       string    `gorm:"type:varchar(10);not null;default:lbs"`
	EntryType  string    `gorm:"type:varchar(20);not null;default:manual"`
	PhotoPath  *string   `gorm:"type:text"`
	Notes      *string   `gorm:"type:text"`
	RecordedAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeightEntryModel) TableName() string {
	return "weight_entries"
}
