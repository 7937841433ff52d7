package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/services/auth"
	"github.com/krishilink/krishilink/services/auth/mocks"
)

func TestGetUserByID_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, FullName: "Ravi Kumar"}, nil)

	// Act
	user, err := uc.GetUserByID(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", user.FullName)
}

func TestGetUserByID_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(nil, auth.ErrUserNotFound)

	// Act
	user, err := uc.GetUserByID(context.Background(), userID)

	// Assert
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestGetUserByID_StoreDown(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(nil, errors.New("pq: connection refused"))

	// Act
	user, err := uc.GetUserByID(context.Background(), userID)

	// Assert: an outage must not read as "no such user"
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, FullName: "Ravi Kumar", Email: "ravi@example.com"}, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "Ravi K", user.FullName)
			// Empty fields leave the stored value untouched
			assert.Equal(t, "ravi@example.com", user.Email)
			return nil
		})

	// Act
	user, err := uc.UpdateProfile(context.Background(), userID, "Ravi K", "")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Ravi K", user.FullName)
}

func TestListUsers_ReturnsAll(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		ListUsers(gomock.Any()).
		Return([]*models.User{
			{ID: uuid.New(), Role: models.RoleFarmer},
			{ID: uuid.New(), Role: models.RoleRetailer},
		}, nil)

	// Act
	users, err := uc.ListUsers(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
