package models

import "time"

// User represents a registered reviewer.
type User struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Username        string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password        string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash
	InstagramHandle string `json:"instagram_handle" gorm:"type:varchar(100)" validate:"required,max=100"`
	IsAdmin         bool   `json:"is_admin" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
}
