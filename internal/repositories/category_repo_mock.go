package repositories

import (
	"sync"
	"time"

	"brandreview/internal/models"
)

// MockCategoryRepository is an in-memory implementation of
// CategoryRepository.
type MockCategoryRepository struct {
	categories map[uint]models.Category
	ids        []uint
	nextID     uint
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of
// MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[uint]models.Category),
		nextID:     1,
	}
}

// GetAll returns all categories in insertion order.
func (r *MockCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryList := make([]models.Category, 0, len(r.ids))
	for _, id := range r.ids {
		categoryList = append(categoryList, r.categories[id])
	}
	return categoryList, nil
}

// GetByID returns a category by its ID.
func (r *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

// Create adds a new category, assigning its ID and creation time.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.ids {
		if r.categories[id].Name == category.Name {
			return &ConflictError{Field: "name", Value: category.Name}
		}
	}

	category.ID = r.nextID
	r.nextID++
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	r.categories[category.ID] = *category
	r.ids = append(r.ids, category.ID)
	return nil
}
