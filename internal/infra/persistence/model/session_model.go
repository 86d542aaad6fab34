package model

import (
	"time"

	"gorm.io/datatypes"
)

// SessionModel mirrors the 'sessions' table backing the cookie session store.
type SessionModel struct {
	SID       string         `gorm:"type:varchar(255);primaryKey;column:sid"`
	UserID    string         `gorm:"type:varchar(255);not null;index"`
	Data      datatypes.JSON `gorm:"type:jsonb"`
	ExpiresAt time.Time      `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
