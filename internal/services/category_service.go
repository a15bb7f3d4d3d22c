package services

import (
	"brandreview/internal/models"
	"brandreview/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// GetCategories retrieves all categories.
func (s *CategoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategory retrieves a single category by its ID.
func (s *CategoryService) GetCategory(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// CreateCategory persists a new category. Duplicate names surface as a
// ConflictError from the repository.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}
