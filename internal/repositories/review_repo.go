package repositories

import "brandreview/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetByID(id uint) (*models.Review, error)
	// GetByBrand returns the brand's reviews in insertion order, each
	// annotated with the reviewer's Instagram handle.
	GetByBrand(brandID uint) ([]models.ReviewWithUser, error)
	GetUserReviewForBrand(userID, brandID uint) (*models.Review, error)
	RatingSummary(brandID uint) (*models.BrandRatingSummary, error)
	Create(review *models.Review) error
}
