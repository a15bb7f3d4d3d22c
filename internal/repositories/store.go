package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"brandreview/internal/models"
)

// Store bundles the per-entity repositories of one storage backend.
// The variant is picked once at startup: NewMemoryStore for the
// ephemeral development backend, NewGormStore for the relational one.
type Store struct {
	Users           UserRepository
	Brands          BrandRepository
	Reviews         ReviewRepository
	Categories      CategoryRepository
	ContactMessages ContactMessageRepository
}

// NewMemoryStore creates a Store backed by in-memory repositories.
func NewMemoryStore() *Store {
	users := NewMockUserRepository()
	return &Store{
		Users:           users,
		Brands:          NewMockBrandRepository(),
		Reviews:         NewMockReviewRepository(users),
		Categories:      NewMockCategoryRepository(),
		ContactMessages: NewMockContactMessageRepository(),
	}
}

// NewGormStore creates a Store backed by GORM repositories on db.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:           NewGORMUserRepository(db),
		Brands:          NewGORMBrandRepository(db),
		Reviews:         NewGORMReviewRepository(db),
		Categories:      NewGORMCategoryRepository(db),
		ContactMessages: NewGORMContactMessageRepository(db),
	}
}

// DefaultCategoryNames is the fixed list seeded into an empty store.
var DefaultCategoryNames = []string{
	"Gymwear",
	"Home Appliances",
	"Accessories",
	"Beauty Products",
	"Fashion",
	"Food & Beverages",
	"Tech Gadgets",
	"Art & Crafts",
}

// AdminUsername is the reserved administrator account name.
const AdminUsername = "admin"

// CreateDefaultCategories seeds the default category list. It is
// idempotent: nothing is inserted when any category already exists.
func (s *Store) CreateDefaultCategories() error {
	existing, err := s.Categories.GetAll()
	if err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, name := range DefaultCategoryNames {
		if err := s.Categories.Create(&models.Category{Name: name}); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}
	return nil
}

// CreateAdminUser seeds the administrator account if it is absent. The
// password is stored only in hashed form; hashing is supplied by the
// caller so the store stays free of crypto concerns.
func (s *Store) CreateAdminUser(password string, hash func(string) (string, error)) error {
	_, err := s.Users.GetByUsername(AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	hashed, err := hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.User{
		Username:        AdminUsername,
		Password:        hashed,
		InstagramHandle: "Instagram",
		IsAdmin:         true,
	}
	if err := s.Users.Create(admin); err != nil {
		// A concurrent boot may have won the insert; that still
		// satisfies idempotency.
		if IsConflict(err) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
