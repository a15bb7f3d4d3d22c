package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"brandreview/internal/models"
	"brandreview/internal/repositories"
	"brandreview/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. Listing is public;
// creation is restricted to administrators.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", authRequired, adminRequired, h.HandleCreateCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
		})
	}
	return c.JSON(categories)
}

// CreateCategoryRequest represents the request body for category
// creation.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	category := models.Category{Name: req.Name}
	if err := h.service.CreateCategory(&category); err != nil {
		if repositories.IsConflict(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Category with this name already exists",
			})
		}
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}
