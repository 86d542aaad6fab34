package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLogModel mirrors the append-only 'activity_logs' table.
type ActivityLogModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      string         `gorm:"type:varchar(255);not null;index"`
	Action      string         `gorm:"type:varchar(50);not null"`
	Description string         `gorm:"type:text"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
