package models

import "time"

// Category is a named grouping that brands belong to.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
}
