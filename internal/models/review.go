package models

import "time"

// Review is a single user's rating and commentary on one brand.
// The composite unique index enforces at most one review per
// (user, brand) pair at the storage layer.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_user_brand"`
	BrandID    uint      `json:"brand_id" gorm:"not null;uniqueIndex:idx_reviews_user_brand"`
	Rating     int       `json:"rating" gorm:"not null" validate:"required,gte=1,lte=5"`
	ReviewText string    `json:"review_text" gorm:"type:text" validate:"required"`
	ImageURL   string    `json:"image_url" gorm:"type:text"` // data URL or hosted URL
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewWithUser is the review read model served on brand pages: the
// review plus the reviewer's Instagram handle. No other user fields
// are exposed.
type ReviewWithUser struct {
	ID                  uint      `json:"id"`
	UserID              uint      `json:"user_id"`
	BrandID             uint      `json:"brand_id"`
	Rating              int       `json:"rating"`
	ReviewText          string    `json:"review_text"`
	ImageURL            string    `json:"image_url"`
	CreatedAt           time.Time `json:"created_at"`
	UserInstagramHandle string    `json:"user_instagram_handle"`
}
