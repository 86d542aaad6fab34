// Package model contains the GORM persistence models mirroring the database
// tables. Models are exported so the gorm.io/gen tool can consume them.
package model

import "time"

// UserModel mirrors the 'users' table. The primary key is the OAuth
// provider's subject claim, not a generated id.
type UserModel struct {
	ID        string `gorm:"type:varchar(255);primaryKey"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Name      string `gorm:"type:varchar(255)"`
	AvatarURL string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	WeightEntries []WeightEntryModel `gorm:"foreignKey:UserID"`
	ActivityLogs  []ActivityLogModel `gorm:"foreignKey:UserID"`
	Sessions      []SessionModel     `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
