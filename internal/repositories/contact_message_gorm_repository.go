package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"brandreview/internal/models"
)

// GORMContactMessageRepository is a GORM implementation of
// ContactMessageRepository.
type GORMContactMessageRepository struct {
	db *gorm.DB
}

// NewGORMContactMessageRepository creates a new instance of
// GORMContactMessageRepository.
func NewGORMContactMessageRepository(db *gorm.DB) *GORMContactMessageRepository {
	return &GORMContactMessageRepository{db: db}
}

// GetAll retrieves all messages newest first. The id tie-break keeps
// the order stable when timestamps collide.
func (r *GORMContactMessageRepository) GetAll() ([]models.ContactMessage, error) {
	messages := make([]models.ContactMessage, 0)
	if err := r.db.Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}
	return messages, nil
}

// Create inserts a new message.
func (r *GORMContactMessageRepository) Create(message *models.ContactMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}
