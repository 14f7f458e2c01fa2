// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(255);uniqueIndex:uq_users_username;not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
