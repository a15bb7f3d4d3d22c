package repositories

import (
	"fmt"
	"sync"
	"time"

	"brandreview/internal/models"
)

// MockReviewRepository is an in-memory implementation of
// ReviewRepository. It needs the user repository to annotate reviews
// with the reviewer's Instagram handle, mirroring the join the
// relational variant performs.
type MockReviewRepository struct {
	reviews map[uint]models.Review
	ids     []uint
	nextID  uint
	users   UserRepository
	mu      sync.RWMutex
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository(users UserRepository) *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[uint]models.Review),
		nextID:  1,
		users:   users,
	}
}

// GetByID returns a review by its ID.
func (r *MockReviewRepository) GetByID(id uint) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &review, nil
}

// GetByBrand returns the brand's reviews in insertion order, annotated
// with each reviewer's Instagram handle.
func (r *MockReviewRepository) GetByBrand(brandID uint) ([]models.ReviewWithUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	annotated := make([]models.ReviewWithUser, 0)
	for _, id := range r.ids {
		rev := r.reviews[id]
		if rev.BrandID != brandID {
			continue
		}
		handle := ""
		if user, err := r.users.GetByID(rev.UserID); err == nil {
			handle = user.InstagramHandle
		}
		annotated = append(annotated, models.ReviewWithUser{
			ID:                  rev.ID,
			UserID:              rev.UserID,
			BrandID:             rev.BrandID,
			Rating:              rev.Rating,
			ReviewText:          rev.ReviewText,
			ImageURL:            rev.ImageURL,
			CreatedAt:           rev.CreatedAt,
			UserInstagramHandle: handle,
		})
	}
	return annotated, nil
}

// GetUserReviewForBrand returns the single review a user left for a
// brand, if any.
func (r *MockReviewRepository) GetUserReviewForBrand(userID, brandID uint) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ids {
		rev := r.reviews[id]
		if rev.UserID == userID && rev.BrandID == brandID {
			return &rev, nil
		}
	}
	return nil, ErrNotFound
}

// RatingSummary computes the average rating and review count for a brand.
func (r *MockReviewRepository) RatingSummary(brandID uint) (*models.BrandRatingSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum, count int64
	for _, id := range r.ids {
		rev := r.reviews[id]
		if rev.BrandID == brandID {
			sum += int64(rev.Rating)
			count++
		}
	}
	summary := &models.BrandRatingSummary{ReviewCount: count}
	if count > 0 {
		summary.AverageRating = float64(sum) / float64(count)
	}
	return summary, nil
}

// Create adds a new review, assigning its ID and creation time. It
// fails with a ConflictError when the user has already reviewed the
// brand.
func (r *MockReviewRepository) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.ids {
		existing := r.reviews[id]
		if existing.UserID == review.UserID && existing.BrandID == review.BrandID {
			return &ConflictError{
				Field: "review",
				Value: fmt.Sprintf("user %d, brand %d", review.UserID, review.BrandID),
			}
		}
	}

	review.ID = r.nextID
	r.nextID++
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	r.reviews[review.ID] = *review
	r.ids = append(r.ids, review.ID)
	return nil
}
