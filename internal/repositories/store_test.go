package repositories_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"brandreview/internal/models"
	"brandreview/internal/repositories"
)

// newGormTestStore opens a private in-memory SQLite database and
// migrates the schema. cache=shared keeps all pool connections on the
// same database; the test name keeps databases isolated between tests.
func newGormTestStore(t *testing.T) *repositories.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Brand{},
		&models.Review{},
		&models.ContactMessage{},
	)
	require.NoError(t, err)

	return repositories.NewGormStore(db)
}

// runOnBothVariants runs the same scenario against the in-memory and
// the relational storage variant; the contracts must be identical.
func runOnBothVariants(t *testing.T, fn func(t *testing.T, store *repositories.Store)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, repositories.NewMemoryStore())
	})
	t.Run("gorm", func(t *testing.T) {
		fn(t, newGormTestStore(t))
	})
}

func createTestUser(t *testing.T, store *repositories.Store, username, handle string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hashed", InstagramHandle: handle}
	require.NoError(t, store.Users.Create(user))
	return user
}

func createTestCategory(t *testing.T, store *repositories.Store, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, store.Categories.Create(category))
	return category
}

func createTestBrand(t *testing.T, store *repositories.Store, name, handle string, categoryID uint) *models.Brand {
	t.Helper()
	brand := &models.Brand{Name: name, InstagramHandle: handle, CategoryID: categoryID}
	require.NoError(t, store.Brands.Create(brand))
	return brand
}

func TestUserRepository_UsernameUniqueness(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		user := createTestUser(t, store, "alice", "alice_ig")
		assert.NotZero(t, user.ID)

		err := store.Users.Create(&models.User{Username: "alice", Password: "x", InstagramHandle: "other"})
		assert.True(t, repositories.IsConflict(err))

		found, err := store.Users.GetByUsername("alice")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		_, err = store.Users.GetByUsername("nobody")
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		_, err = store.Users.GetByID(9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestBrandRepository_HandleRoundTrip(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		category := createTestCategory(t, store, "Fashion")
		brand := createTestBrand(t, store, "Acme", "acme_ig", category.ID)

		found, err := store.Brands.GetByInstagramHandle("acme_ig")
		assert.NoError(t, err)
		assert.Equal(t, brand.ID, found.ID)
		assert.Equal(t, "Acme", found.Name)

		_, err = store.Brands.GetByInstagramHandle("unknown")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestBrandRepository_DuplicateHandleConflict(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		category := createTestCategory(t, store, "Fashion")
		createTestBrand(t, store, "Acme", "acme_ig", category.ID)

		err := store.Brands.Create(&models.Brand{Name: "Other", InstagramHandle: "acme_ig", CategoryID: category.ID})
		assert.True(t, repositories.IsConflict(err))

		var ce *repositories.ConflictError
		assert.ErrorAs(t, err, &ce)
		assert.Equal(t, "instagram_handle", ce.Field)
	})
}

func TestBrandRepository_Search(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		category := createTestCategory(t, store, "Fashion")
		createTestBrand(t, store, "AlphaWear", "alpha_official", category.ID)
		createTestBrand(t, store, "Beta Goods", "betagoods", category.ID)
		createTestBrand(t, store, "Plain", "contains_ALPHA_too", category.ID)

		results, err := store.Brands.Search("alpha")
		assert.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "AlphaWear", results[0].Name)
		assert.Equal(t, "Plain", results[1].Name)

		results, err = store.Brands.Search("BETA")
		assert.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Beta Goods", results[0].Name)

		results, err = store.Brands.Search("zzz")
		assert.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestBrandRepository_CategoryFilter(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		fashion := createTestCategory(t, store, "Fashion")
		tech := createTestCategory(t, store, "Tech Gadgets")
		acme := createTestBrand(t, store, "Acme", "acme_ig", fashion.ID)
		createTestBrand(t, store, "Gadgetron", "gadgetron", tech.ID)

		brands, err := store.Brands.GetByCategory(fashion.ID)
		assert.NoError(t, err)
		require.Len(t, brands, 1)
		assert.Equal(t, acme.ID, brands[0].ID)

		all, err := store.Brands.GetAll()
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestReviewRepository_OneReviewPerUserPerBrand(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		category := createTestCategory(t, store, "Fashion")
		brand := createTestBrand(t, store, "Acme", "acme_ig", category.ID)
		userA := createTestUser(t, store, "alice", "alice_ig")
		userC := createTestUser(t, store, "carol", "carol_ig")

		first := &models.Review{UserID: userA.ID, BrandID: brand.ID, Rating: 4, ReviewText: "Great quality"}
		require.NoError(t, store.Reviews.Create(first))

		// Same pair with different rating and text must still conflict.
		second := &models.Review{UserID: userA.ID, BrandID: brand.ID, Rating: 1, ReviewText: "Changed my mind"}
		err := store.Reviews.Create(second)
		assert.True(t, repositories.IsConflict(err))

		other := &models.Review{UserID: userC.ID, BrandID: brand.ID, Rating: 5, ReviewText: "Love this brand"}
		assert.NoError(t, store.Reviews.Create(other))

		existing, err := store.Reviews.GetUserReviewForBrand(userA.ID, brand.ID)
		assert.NoError(t, err)
		assert.Equal(t, first.ID, existing.ID)

		_, err = store.Reviews.GetUserReviewForBrand(userA.ID, brand.ID+100)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestReviewRepository_GetByBrandAnnotatesHandles(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		category := createTestCategory(t, store, "Fashion")
		brand := createTestBrand(t, store, "Acme", "acme_ig", category.ID)
		otherBrand := createTestBrand(t, store, "Other", "other_ig", category.ID)
		alice := createTestUser(t, store, "alice", "alice_ig")
		carol := createTestUser(t, store, "carol", "carol_ig")

		require.NoError(t, store.Reviews.Create(&models.Review{UserID: alice.ID, BrandID: brand.ID, Rating: 4, ReviewText: "Great quality"}))
		require.NoError(t, store.Reviews.Create(&models.Review{UserID: carol.ID, BrandID: brand.ID, Rating: 5, ReviewText: "Love this brand"}))
		require.NoError(t, store.Reviews.Create(&models.Review{UserID: alice.ID, BrandID: otherBrand.ID, Rating: 2, ReviewText: "Not convinced"}))

		reviews, err := store.Reviews.GetByBrand(brand.ID)
		assert.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "alice_ig", reviews[0].UserInstagramHandle)
		assert.Equal(t, "carol_ig", reviews[1].UserInstagramHandle)
		for _, r := range reviews {
			assert.Equal(t, brand.ID, r.BrandID)
		}
	})
}

func TestReviewRepository_RatingSummary(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		category := createTestCategory(t, store, "Fashion")
		brand := createTestBrand(t, store, "Acme", "acme_ig", category.ID)
		alice := createTestUser(t, store, "alice", "alice_ig")
		carol := createTestUser(t, store, "carol", "carol_ig")

		summary, err := store.Reviews.RatingSummary(brand.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), summary.ReviewCount)
		assert.Zero(t, summary.AverageRating)

		require.NoError(t, store.Reviews.Create(&models.Review{UserID: alice.ID, BrandID: brand.ID, Rating: 4, ReviewText: "Great quality"}))
		require.NoError(t, store.Reviews.Create(&models.Review{UserID: carol.ID, BrandID: brand.ID, Rating: 5, ReviewText: "Love this brand"}))

		summary, err = store.Reviews.RatingSummary(brand.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), summary.ReviewCount)
		assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
	})
}

func TestContactMessageRepository_NewestFirst(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		now := time.Now().Truncate(time.Second)
		oldest := &models.ContactMessage{Name: "Ann", Email: "ann@example.com", Message: "First message here", CreatedAt: now.Add(-2 * time.Hour)}
		middle := &models.ContactMessage{Name: "Ben", Email: "ben@example.com", Message: "Second message here", CreatedAt: now.Add(-1 * time.Hour)}
		newest := &models.ContactMessage{Name: "Cam", Email: "cam@example.com", Message: "Third message here", CreatedAt: now}

		require.NoError(t, store.ContactMessages.Create(oldest))
		require.NoError(t, store.ContactMessages.Create(middle))
		require.NoError(t, store.ContactMessages.Create(newest))

		messages, err := store.ContactMessages.GetAll()
		assert.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "Cam", messages[0].Name)
		assert.Equal(t, "Ben", messages[1].Name)
		assert.Equal(t, "Ann", messages[2].Name)
	})
}

func TestStore_CreateDefaultCategoriesIdempotent(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		require.NoError(t, store.CreateDefaultCategories())

		categories, err := store.Categories.GetAll()
		assert.NoError(t, err)
		require.Len(t, categories, len(repositories.DefaultCategoryNames))
		assert.Equal(t, "Gymwear", categories[0].Name)

		// A second run must not duplicate anything.
		require.NoError(t, store.CreateDefaultCategories())
		categories, err = store.Categories.GetAll()
		assert.NoError(t, err)
		assert.Len(t, categories, len(repositories.DefaultCategoryNames))
	})
}

func TestStore_CreateAdminUserIdempotent(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		hash := func(plain string) (string, error) { return "hashed:" + plain, nil }

		require.NoError(t, store.CreateAdminUser("secret-pass", hash))

		admin, err := store.Users.GetByUsername(repositories.AdminUsername)
		assert.NoError(t, err)
		assert.True(t, admin.IsAdmin)
		assert.Equal(t, "hashed:secret-pass", admin.Password)

		require.NoError(t, store.CreateAdminUser("secret-pass", hash))
		again, err := store.Users.GetByUsername(repositories.AdminUsername)
		assert.NoError(t, err)
		assert.Equal(t, admin.ID, again.ID)
	})
}

func TestCategoryRepository_DuplicateNameConflict(t *testing.T) {
	runOnBothVariants(t, func(t *testing.T, store *repositories.Store) {
		createTestCategory(t, store, "Fashion")
		err := store.Categories.Create(&models.Category{Name: "Fashion"})
		assert.True(t, repositories.IsConflict(err))
	})
}
