package repositories

import (
	"strings"
	"sync"
	"time"

	"brandreview/internal/models"
)

// MockBrandRepository is an in-memory implementation of BrandRepository.
// An ordered id slice is kept beside the map so list operations come
// back in insertion order.
type MockBrandRepository struct {
	brands map[uint]models.Brand
	ids    []uint
	nextID uint
	mu     sync.RWMutex
}

// NewMockBrandRepository creates a new instance of MockBrandRepository.
func NewMockBrandRepository() *MockBrandRepository {
	return &MockBrandRepository{
		brands: make(map[uint]models.Brand),
		nextID: 1,
	}
}

// GetAll returns all brands in insertion order.
func (r *MockBrandRepository) GetAll() ([]models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brandList := make([]models.Brand, 0, len(r.ids))
	for _, id := range r.ids {
		brandList = append(brandList, r.brands[id])
	}
	return brandList, nil
}

// GetByID returns a brand by its ID.
func (r *MockBrandRepository) GetByID(id uint) (*models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brand, ok := r.brands[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &brand, nil
}

// GetByInstagramHandle returns the brand registered under the handle.
func (r *MockBrandRepository) GetByInstagramHandle(handle string) (*models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ids {
		if r.brands[id].InstagramHandle == handle {
			brand := r.brands[id]
			return &brand, nil
		}
	}
	return nil, ErrNotFound
}

// GetByCategory returns the brands in one category, insertion order.
func (r *MockBrandRepository) GetByCategory(categoryID uint) ([]models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brandList := make([]models.Brand, 0)
	for _, id := range r.ids {
		if r.brands[id].CategoryID == categoryID {
			brandList = append(brandList, r.brands[id])
		}
	}
	return brandList, nil
}

// Search returns brands whose name or Instagram handle contains the
// query, case-insensitively.
func (r *MockBrandRepository) Search(query string) ([]models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	brandList := make([]models.Brand, 0)
	for _, id := range r.ids {
		b := r.brands[id]
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.InstagramHandle), q) {
			brandList = append(brandList, b)
		}
	}
	return brandList, nil
}

// Create adds a new brand, assigning its ID and creation time.
func (r *MockBrandRepository) Create(brand *models.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.ids {
		if r.brands[id].InstagramHandle == brand.InstagramHandle {
			return &ConflictError{Field: "instagram_handle", Value: brand.InstagramHandle}
		}
	}

	brand.ID = r.nextID
	r.nextID++
	if brand.CreatedAt.IsZero() {
		brand.CreatedAt = time.Now()
	}
	r.brands[brand.ID] = *brand
	r.ids = append(r.ids, brand.ID)
	return nil
}
