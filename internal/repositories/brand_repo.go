package repositories

import "brandreview/internal/models"

// BrandRepository defines the interface for brand data access.
type BrandRepository interface {
	GetAll() ([]models.Brand, error)
	GetByID(id uint) (*models.Brand, error)
	GetByInstagramHandle(handle string) (*models.Brand, error)
	GetByCategory(categoryID uint) ([]models.Brand, error)
	// Search matches the query case-insensitively as a substring of
	// either the brand name or the Instagram handle.
	Search(query string) ([]models.Brand, error)
	Create(brand *models.Brand) error
}
