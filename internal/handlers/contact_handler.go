package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"brandreview/internal/models"
	"brandreview/internal/services"
)

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the contact routes. Submission is public;
// the listing is restricted to administrators.
func (h *ContactHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	router.Post("/contact", h.HandleCreateContactMessage)
	router.Get("/admin/contact-messages", authRequired, adminRequired, h.HandleGetContactMessages)
}

// ContactMessageRequest represents the request body for the contact
// form.
type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// HandleCreateContactMessage stores a contact form submission.
func (h *ContactHandler) HandleCreateContactMessage(c *fiber.Ctx) error {
	var req ContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	created, err := h.service.CreateContactMessage(&message)
	if err != nil {
		log.Printf("Error creating contact message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not submit message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleGetContactMessages lists all contact messages newest first.
// AuthRequired and AdminRequired run before this handler.
func (h *ContactHandler) HandleGetContactMessages(c *fiber.Ctx) error {
	messages, err := h.service.GetContactMessages()
	if err != nil {
		log.Printf("Error getting contact messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve messages",
		})
	}
	return c.JSON(messages)
}
