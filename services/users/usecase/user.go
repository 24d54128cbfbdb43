package usecase

import (
	"context"
	"strings"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	jwtpkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/jwt"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/validation"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/users"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserUC implements users.UserUC
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	logger   *logger.ZapLogger
	hashCost int
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
	zapLogger *logger.ZapLogger,
) *UserUC {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
		logger:   zapLogger,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register creates an account and signs the donor in
func (u *UserUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.AvatarURL = strings.TrimSpace(req.AvatarURL)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.hashCost)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindValidation, err, "Password cannot be used")
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		AvatarURL:    req.AvatarURL,
		PasswordHash: string(hash),
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.Persistence(err, "Failed to create account")
	}

	u.logger.Info("User registered", logger.UserID(user.ID))

	return u.issueToken(*user)
}

// Login verifies credentials and issues a token
func (u *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, invalidCredentials()
		}
		return nil, apperror.Persistence(err, "Failed to sign in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		u.logger.Warn("Failed login attempt", logger.UserID(user.ID))
		return nil, invalidCredentials()
	}

	return u.issueToken(*user)
}

// GetUser returns the account for id
func (u *UserUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.Persistence(err, "Failed to load user")
	}
	return user, nil
}

func (u *UserUC) issueToken(user models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user, u.cfg.JWT)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistence, err, "Failed to issue token")
	}

	user.PasswordHash = ""
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func invalidCredentials() error {
	return apperror.Authorization("Invalid email or password").WithReason(apperror.ReasonInvalidCredentials)
}
