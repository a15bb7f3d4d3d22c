package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"brandreview/internal/models"
	"brandreview/internal/repositories"
	"brandreview/internal/services"
)

// MockUserRepository is a mock implementation of
// repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{
		Username:        "testuser",
		Password:        "password123",
		InstagramHandle: "test_ig",
	}

	mockRepo.On("GetByUsername", "testuser").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	// The stored password must be a bcrypt hash of the plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.User{ID: 1, Username: "testuser"}
	mockRepo.On("GetByUsername", "testuser").Return(existing, nil).Once()

	err := authService.RegisterUser(&models.User{
		Username:        "testuser",
		Password:        "password123",
		InstagramHandle: "test_ig",
	})
	assert.True(t, repositories.IsConflict(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, err := services.HashPassword("password123")
	assert.NoError(t, err)
	user := &models.User{ID: 7, Username: "testuser", Password: hashed, IsAdmin: true}

	// Successful login yields a token that validates with admin claims.
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	token, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])
	assert.Equal(t, true, claims["is_admin"])

	// Wrong password fails without leaking detail.
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, err = authService.LoginUser("testuser", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	// Unknown username fails identically.
	mockRepo.On("GetByUsername", "ghost").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.LoginUser("ghost", "password123")
	assert.EqualError(t, err, "invalid credentials")

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	_, err := authService.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with another secret must be rejected.
	otherService := services.NewAuthService(mockRepo, "other_secret")
	hashed, _ := services.HashPassword("password123")
	mockRepo.On("GetByUsername", "testuser").Return(&models.User{ID: 1, Username: "testuser", Password: hashed}, nil).Once()
	token, err := otherService.LoginUser("testuser", "password123")
	assert.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
