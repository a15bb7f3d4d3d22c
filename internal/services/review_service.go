package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"brandreview/internal/models"
	"brandreview/internal/repositories"
	"brandreview/pkg/rabbitmq"
)

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	mqClient   *rabbitmq.Client
}

// NewReviewService creates a new ReviewService. mqClient may be nil;
// event publication is then skipped.
func NewReviewService(reviewRepo repositories.ReviewRepository, mqClient *rabbitmq.Client) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		mqClient:   mqClient,
	}
}

// GetReviewsByBrand returns the brand's reviews annotated with each
// reviewer's Instagram handle.
func (s *ReviewService) GetReviewsByBrand(brandID uint) ([]models.ReviewWithUser, error) {
	return s.reviewRepo.GetByBrand(brandID)
}

// GetUserReviewForBrand returns the single review a user left for a
// brand, if any.
func (s *ReviewService) GetUserReviewForBrand(userID, brandID uint) (*models.Review, error) {
	return s.reviewRepo.GetUserReviewForBrand(userID, brandID)
}

// CreateReview persists a new review, enforcing one review per user
// per brand. The existence check gives the friendly error; the store's
// composite unique index settles races. A review.created event is
// published on success.
func (s *ReviewService) CreateReview(review *models.Review) (*models.Review, error) {
	if existing, err := s.reviewRepo.GetUserReviewForBrand(review.UserID, review.BrandID); err == nil && existing != nil {
		return nil, &repositories.ConflictError{
			Field: "review",
			Value: fmt.Sprintf("user %d, brand %d", review.UserID, review.BrandID),
		}
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	s.publishReviewCreated(review)
	return review, nil
}

// publishReviewCreated emits a review.created event. Publication
// failures are logged, never surfaced: the review is already stored.
func (s *ReviewService) publishReviewCreated(review *models.Review) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"event_id":  uuid.New().String(),
		"review_id": review.ID,
		"user_id":   review.UserID,
		"brand_id":  review.BrandID,
		"rating":    review.Rating,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal review event: %v", err)
		return
	}
	if err := s.mqClient.Publish("review.created", body); err != nil {
		log.Printf("Warning: failed to publish review.created for review %d: %v", review.ID, err)
	}
}
