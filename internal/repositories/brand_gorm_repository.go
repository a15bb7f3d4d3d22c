package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"brandreview/internal/models"
)

// GORMBrandRepository is a GORM implementation of BrandRepository.
type GORMBrandRepository struct {
	db *gorm.DB
}

// NewGORMBrandRepository creates a new instance of GORMBrandRepository.
func NewGORMBrandRepository(db *gorm.DB) *GORMBrandRepository {
	return &GORMBrandRepository{db: db}
}

// GetAll retrieves all brands.
func (r *GORMBrandRepository) GetAll() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Order("id").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get all brands: %w", err)
	}
	return brands, nil
}

// GetByID retrieves a single brand by its ID.
func (r *GORMBrandRepository) GetByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brand by ID %d: %w", id, err)
	}
	return &brand, nil
}

// GetByInstagramHandle retrieves the brand registered under the handle.
func (r *GORMBrandRepository) GetByInstagramHandle(handle string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, "instagram_handle = ?", handle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brand by handle %s: %w", handle, err)
	}
	return &brand, nil
}

// GetByCategory retrieves the brands belonging to one category.
func (r *GORMBrandRepository) GetByCategory(categoryID uint) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Where("category_id = ?", categoryID).Order("id").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get brands for category %d: %w", categoryID, err)
	}
	return brands, nil
}

// Search retrieves brands whose name or Instagram handle contains the
// query, case-insensitively. LOWER + LIKE keeps the match
// case-insensitive on both Postgres and SQLite.
func (r *GORMBrandRepository) Search(query string) ([]models.Brand, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var brands []models.Brand
	err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(instagram_handle) LIKE ?", pattern, pattern).
		Order("id").
		Find(&brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search brands for %q: %w", query, err)
	}
	return brands, nil
}

// Create inserts a new brand. A duplicate Instagram handle surfaces as
// ConflictError via the unique index.
func (r *GORMBrandRepository) Create(brand *models.Brand) error {
	if err := r.db.Create(brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ConflictError{Field: "instagram_handle", Value: brand.InstagramHandle}
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}
