package models

import "time"

// Brand is a reviewable entity tied to an Instagram handle and a category.
type Brand struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	InstagramHandle string    `json:"instagram_handle" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	Description     string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	LogoURL         string    `json:"logo_url" validate:"omitempty,max=2048"`
	WebsiteURL      string    `json:"website_url" validate:"omitempty,max=2048"`
	CategoryID      uint      `json:"category_id" gorm:"not null;index" validate:"required"`
	CreatedAt       time.Time `json:"created_at"`
}

// BrandRatingSummary aggregates the reviews of one brand.
type BrandRatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// BrandWithStats is the brand detail read model, a brand plus its
// rating aggregate.
type BrandWithStats struct {
	Brand
	BrandRatingSummary
}
