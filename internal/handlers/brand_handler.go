package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"brandreview/internal/models"
	"brandreview/internal/repositories"
	"brandreview/internal/services"
)

// BrandHandler handles HTTP requests for brands.
type BrandHandler struct {
	service  *services.BrandService
	validate *validator.Validate
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(service *services.BrandService) *BrandHandler {
	return &BrandHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the brand routes. Browsing is public;
// creation requires an authenticated session.
func (h *BrandHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	brandRoutes := router.Group("/brands")
	brandRoutes.Get("/", h.HandleGetBrands)
	brandRoutes.Get("/:id", h.HandleGetBrandByID)
	brandRoutes.Post("/", authRequired, h.HandleCreateBrand)
}

// HandleGetBrands lists brands, filtered by ?categoryId= or ?q=. The
// category filter takes precedence when both are present.
func (h *BrandHandler) HandleGetBrands(c *fiber.Ctx) error {
	categoryID := c.QueryInt("categoryId", 0)
	if categoryID < 0 {
		categoryID = 0
	}
	query := c.Query("q")

	brands, err := h.service.ListBrands(uint(categoryID), query)
	if err != nil {
		log.Printf("Error listing brands: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve brands",
		})
	}
	return c.JSON(brands)
}

// HandleGetBrandByID retrieves a single brand with its rating summary.
func (h *BrandHandler) HandleGetBrandByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Brand not found",
		})
	}

	brand, err := h.service.GetBrand(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Brand not found",
			})
		}
		log.Printf("Error getting brand %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve brand",
		})
	}
	return c.JSON(brand)
}

// CreateBrandRequest represents the request body for brand creation.
// CategoryID is a FlexInt because the form client submits it as a
// string.
type CreateBrandRequest struct {
	Name            string         `json:"name" validate:"required,max=100"`
	InstagramHandle string         `json:"instagram_handle" validate:"required,max=100"`
	Description     string         `json:"description" validate:"omitempty,max=500"`
	LogoURL         string         `json:"logo_url" validate:"omitempty,max=2048"`
	WebsiteURL      string         `json:"website_url" validate:"omitempty,max=2048"`
	CategoryID      models.FlexInt `json:"category_id" validate:"required,gt=0"`
}

// HandleCreateBrand creates a new brand.
func (h *BrandHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var req CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing brand request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	brand := models.Brand{
		Name:            req.Name,
		InstagramHandle: req.InstagramHandle,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		WebsiteURL:      req.WebsiteURL,
		CategoryID:      uint(req.CategoryID),
	}
	if err := h.service.CreateBrand(&brand); err != nil {
		if repositories.IsConflict(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Brand with this Instagram handle already exists",
			})
		}
		if errors.Is(err, services.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Category does not exist",
			})
		}
		log.Printf("Error creating brand: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create brand",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(brand)
}
