package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"brandreview/internal/models"
	"brandreview/internal/repositories"
	"brandreview/pkg/rabbitmq"
)

// ContactService handles business logic related to contact messages.
type ContactService struct {
	messageRepo repositories.ContactMessageRepository
	mqClient    *rabbitmq.Client
}

// NewContactService creates a new ContactService. mqClient may be nil;
// event publication is then skipped.
func NewContactService(messageRepo repositories.ContactMessageRepository, mqClient *rabbitmq.Client) *ContactService {
	return &ContactService{
		messageRepo: messageRepo,
		mqClient:    mqClient,
	}
}

// GetContactMessages retrieves all messages, newest first.
func (s *ContactService) GetContactMessages() ([]models.ContactMessage, error) {
	return s.messageRepo.GetAll()
}

// CreateContactMessage persists a message and emits a contact.received
// event so admins can be notified out of band. Publication failures
// are logged, never surfaced.
func (s *ContactService) CreateContactMessage(message *models.ContactMessage) (*models.ContactMessage, error) {
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return message, nil
	}

	event := map[string]interface{}{
		"event_id":   uuid.New().String(),
		"message_id": message.ID,
		"name":       message.Name,
		"email":      message.Email,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal contact event: %v", err)
		return message, nil
	}
	if err := s.mqClient.Publish("contact.received", body); err != nil {
		log.Printf("Warning: failed to publish contact.received for message %d: %v", message.ID, err)
	}
	return message, nil
}
