package repositories

import "brandreview/internal/models"

// ContactMessageRepository defines the interface for contact-message
// data access.
type ContactMessageRepository interface {
	// GetAll returns messages newest first.
	GetAll() ([]models.ContactMessage, error)
	Create(message *models.ContactMessage) error
}
