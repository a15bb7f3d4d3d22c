package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"brandreview/internal/models"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
// The one-review-per-user-per-brand invariant is enforced by the
// composite unique index on (user_id, brand_id).
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// GetByID retrieves a review by its ID.
func (r *GORMReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review by ID %d: %w", id, err)
	}
	return &review, nil
}

// GetByBrand retrieves the brand's reviews joined with the reviewer's
// Instagram handle, in insertion order.
func (r *GORMReviewRepository) GetByBrand(brandID uint) ([]models.ReviewWithUser, error) {
	reviews := make([]models.ReviewWithUser, 0)
	err := r.db.
		Table("reviews").
		Select("reviews.id, reviews.user_id, reviews.brand_id, reviews.rating, reviews.review_text, reviews.image_url, reviews.created_at, users.instagram_handle AS user_instagram_handle").
		Joins("INNER JOIN users ON users.id = reviews.user_id").
		Where("reviews.brand_id = ?", brandID).
		Order("reviews.id").
		Scan(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews for brand %d: %w", brandID, err)
	}
	return reviews, nil
}

// GetUserReviewForBrand retrieves the single review a user left for a
// brand, if any.
func (r *GORMReviewRepository) GetUserReviewForBrand(userID, brandID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "user_id = ? AND brand_id = ?", userID, brandID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review for user %d, brand %d: %w", userID, brandID, err)
	}
	return &review, nil
}

// RatingSummary computes the average rating and review count for a brand.
func (r *GORMReviewRepository) RatingSummary(brandID uint) (*models.BrandRatingSummary, error) {
	var row struct {
		AverageRating *float64
		ReviewCount   int64
	}
	err := r.db.
		Table("reviews").
		Select("AVG(rating) AS average_rating, COUNT(*) AS review_count").
		Where("brand_id = ?", brandID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get rating summary for brand %d: %w", brandID, err)
	}
	summary := &models.BrandRatingSummary{ReviewCount: row.ReviewCount}
	if row.AverageRating != nil {
		summary.AverageRating = *row.AverageRating
	}
	return summary, nil
}

// Create inserts a new review. A duplicate (user, brand) pair surfaces
// as ConflictError via the composite unique index.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ConflictError{
				Field: "review",
				Value: fmt.Sprintf("user %d, brand %d", review.UserID, review.BrandID),
			}
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}
