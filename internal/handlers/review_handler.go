package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"brandreview/internal/models"
	"brandreview/internal/repositories"
	"brandreview/internal/services"
)

// ReviewHandler handles HTTP requests for brand reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes under the brand path.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/brands/:brandId/reviews", h.HandleGetBrandReviews)
	router.Post("/brands/:brandId/reviews", authRequired, h.HandleCreateReview)
}

// HandleGetBrandReviews lists a brand's reviews annotated with each
// reviewer's Instagram handle.
func (h *ReviewHandler) HandleGetBrandReviews(c *fiber.Ctx) error {
	brandID, err := c.ParamsInt("brandId")
	if err != nil || brandID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid brand id",
		})
	}

	reviews, err := h.service.GetReviewsByBrand(uint(brandID))
	if err != nil {
		log.Printf("Error getting reviews for brand %d: %v", brandID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
		})
	}
	return c.JSON(reviews)
}

// CreateReviewRequest represents the request body for review creation.
// Rating is a FlexInt because the form client submits it as a string.
type CreateReviewRequest struct {
	Rating     models.FlexInt `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText string         `json:"review_text" validate:"required"`
	ImageURL   string         `json:"image_url"`
}

// HandleCreateReview creates the authenticated user's review of a
// brand. Each user gets exactly one review per brand.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	brandID, err := c.ParamsInt("brandId")
	if err != nil || brandID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid brand id",
		})
	}

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	review := models.Review{
		UserID:     userID,
		BrandID:    uint(brandID),
		Rating:     int(req.Rating),
		ReviewText: req.ReviewText,
		ImageURL:   req.ImageURL,
	}
	created, err := h.service.CreateReview(&review)
	if err != nil {
		if repositories.IsConflict(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "You have already reviewed this brand",
			})
		}
		log.Printf("Error creating review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
