package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_username" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin   bool      `gorm:"type:tinyint(1);not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
