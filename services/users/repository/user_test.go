package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "email", "avatar_url", "password_hash", "created_at"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestCreateUser(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewUserRepository(&models.Config{}, db)

	user := &models.User{Name: "Ana", Email: " Ana@Example.com ", PasswordHash: "hash"}

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (email) DO NOTHING")).
		WithArgs(sqlmock.AnyArg(), "Ana", "ana@example.com", "", "hash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := repo.CreateUser(context.Background(), user)

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewUserRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateUser(context.Background(), &models.User{Email: "ana@example.com"})

	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Equal(t, apperror.ReasonDuplicate, apperror.ReasonOf(err))
}

func TestCreateUser_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewUserRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("connection refused"))

	err := repo.CreateUser(context.Background(), &models.User{Email: "ana@example.com"})

	assert.ErrorContains(t, err, "failed to insert user")
}

func TestGetUserByID(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewUserRepository(&models.Config{}, db)
	id := uuid.New()

	rows := sqlmock.NewRows(columns).
		AddRow(id.String(), "Ana", "ana@example.com", "", "hash", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestGetUserByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewUserRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByID(context.Background(), uuid.New())

	assert.Nil(t, user)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestGetUserByEmail(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		wantKind apperror.Kind
		wantErr  bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("ana@example.com").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(uuid.New().String(), "Ana", "ana@example.com", "", "hash", time.Now()))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(sql.ErrNoRows)
			},
			wantKind: apperror.KindNotFound,
			wantErr:  true,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			defer db.Close()
			repo := NewUserRepository(&models.Config{}, db)
			tt.setup(mock)

			user, err := repo.GetUserByEmail(context.Background(), "ANA@example.com")

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "Ana", user.Name)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}
