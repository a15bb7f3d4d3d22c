package models

import "time"

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Message   string    `json:"message" gorm:"type:text" validate:"required,min=10"`
	CreatedAt time.Time `json:"created_at"`
}
