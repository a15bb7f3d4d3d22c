package services

import (
	"errors"
	"fmt"

	"brandreview/internal/models"
	"brandreview/internal/repositories"
)

// ErrUnknownCategory is returned when a brand references a category
// that does not exist.
var ErrUnknownCategory = errors.New("category does not exist")

// BrandService handles business logic related to brands.
type BrandService struct {
	brandRepo    repositories.BrandRepository
	categoryRepo repositories.CategoryRepository
	reviewRepo   repositories.ReviewRepository
}

// NewBrandService creates a new BrandService.
func NewBrandService(brandRepo repositories.BrandRepository, categoryRepo repositories.CategoryRepository, reviewRepo repositories.ReviewRepository) *BrandService {
	return &BrandService{
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

// ListBrands returns brands filtered by category or search query. The
// category filter takes precedence when both are given; with neither,
// the full list comes back.
func (s *BrandService) ListBrands(categoryID uint, query string) ([]models.Brand, error) {
	switch {
	case categoryID != 0:
		return s.brandRepo.GetByCategory(categoryID)
	case query != "":
		return s.brandRepo.Search(query)
	default:
		return s.brandRepo.GetAll()
	}
}

// GetBrand retrieves a single brand with its rating aggregate.
func (s *BrandService) GetBrand(id uint) (*models.BrandWithStats, error) {
	brand, err := s.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	summary, err := s.reviewRepo.RatingSummary(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load rating summary: %w", err)
	}
	return &models.BrandWithStats{Brand: *brand, BrandRatingSummary: *summary}, nil
}

// CreateBrand persists a new brand after checking that the category
// exists and the Instagram handle is free. The handle check is the
// friendly fast path; the store's unique index settles races.
func (s *BrandService) CreateBrand(brand *models.Brand) error {
	if _, err := s.categoryRepo.GetByID(brand.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUnknownCategory
		}
		return fmt.Errorf("failed to check category: %w", err)
	}

	if existing, err := s.brandRepo.GetByInstagramHandle(brand.InstagramHandle); err == nil && existing != nil {
		return &repositories.ConflictError{Field: "instagram_handle", Value: brand.InstagramHandle}
	}

	if err := s.brandRepo.Create(brand); err != nil {
		return err
	}
	return nil
}
