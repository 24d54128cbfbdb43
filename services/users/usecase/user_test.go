package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	jwtpkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/jwt"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/users/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWT = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "heartfund-test"}

func newTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(&models.Config{JWT: testJWT}, mockRepo, nil)
	uc.hashCost = bcrypt.MinCost
	return uc, mockRepo
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUC(t)

	var stored *models.User
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			stored = user
			return nil
		})

	// Act
	resp, err := uc.Register(context.Background(), models.RegisterRequest{
		Name:     " Ana ",
		Email:    "Ana@Example.com",
		Password: "correct-horse",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.Name)
	assert.Equal(t, "ana@example.com", stored.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
	assert.Empty(t, resp.User.PasswordHash)

	claims, err := jwtpkg.ValidateToken(resp.Token, testJWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
}

func TestRegister_Validation(t *testing.T) {
	uc, _ := newTestUC(t)

	tests := []models.RegisterRequest{
		{Name: "", Email: "ana@example.com", Password: "correct-horse"},
		{Name: "Ana", Email: "not-an-email", Password: "correct-horse"},
		{Name: "Ana", Email: "ana@example.com", Password: "short"},
		{Name: "Ana", Email: "ana@example.com", Password: "correct-horse", AvatarURL: "::"},
	}

	for _, req := range tests {
		_, err := uc.Register(context.Background(), req)
		assert.True(t, apperror.Is(err, apperror.KindValidation), "request %+v", req)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(apperror.Validation("An account with this email already exists").WithReason(apperror.ReasonDuplicate))

	_, err := uc.Register(context.Background(), models.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "correct-horse",
	})

	assert.Equal(t, apperror.ReasonDuplicate, apperror.ReasonOf(err))
}

func TestLogin(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	user := &models.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com", PasswordHash: hashed(t, "correct-horse")}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(user, nil)

	resp, err := uc.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Empty(t, resp.User.PasswordHash)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *mocks.MockUserRepo, t *testing.T)
	}{
		{
			name: "wrong password",
			setup: func(m *mocks.MockUserRepo, t *testing.T) {
				m.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).
					Return(&models.User{ID: uuid.New(), PasswordHash: hashed(t, "correct-horse")}, nil)
			},
		},
		{
			name: "unknown email",
			setup: func(m *mocks.MockUserRepo, t *testing.T) {
				m.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, apperror.NotFound("User not found"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo := newTestUC(t)
			tt.setup(mockRepo, t)

			resp, err := uc.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "battery-staple"})

			assert.Nil(t, resp)
			assert.Equal(t, apperror.ReasonInvalidCredentials, apperror.ReasonOf(err))
		})
	}
}

func TestLogin_StoreError(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := uc.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "x"})

	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}

func TestGetUser(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	id := uuid.New()

	mockRepo.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id, Name: "Ana"}, nil)
	user, err := uc.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	mockRepo.EXPECT().GetUserByID(gomock.Any(), id).Return(nil, apperror.NotFound("User not found"))
	_, err = uc.GetUser(context.Background(), id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
