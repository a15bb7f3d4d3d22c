package repositories

import (
	"sync"
	"time"

	"brandreview/internal/models"
)

// MockContactMessageRepository is an in-memory implementation of
// ContactMessageRepository.
type MockContactMessageRepository struct {
	messages []models.ContactMessage
	nextID   uint
	mu       sync.RWMutex
}

// NewMockContactMessageRepository creates a new instance of
// MockContactMessageRepository.
func NewMockContactMessageRepository() *MockContactMessageRepository {
	return &MockContactMessageRepository{nextID: 1}
}

// GetAll returns all messages newest first. Messages sharing a
// timestamp keep reverse insertion order.
func (r *MockContactMessageRepository) GetAll() ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messageList := make([]models.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		messageList = append(messageList, r.messages[i])
	}
	return messageList, nil
}

// Create adds a new message, assigning its ID and creation time.
func (r *MockContactMessageRepository) Create(message *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = r.nextID
	r.nextID++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, *message)
	return nil
}
