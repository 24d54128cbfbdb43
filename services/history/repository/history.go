package repository

import (
	"context"
	"fmt"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/database"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type HistoryRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

func NewHistoryRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *HistoryRepo {
	return &HistoryRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// AppendDonation stores a completed donation. A record whose transaction id
// is already stored is ignored.
func (r *HistoryRepo) AppendDonation(ctx context.Context, record *models.DonationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	query := `
		INSERT INTO donations (id, user_id, campaign_id, campaign_title, amount, transaction_id, donated_at)
		VALUES (:id, :user_id, :campaign_id, :campaign_title, :amount, :transaction_id, :donated_at)
		ON CONFLICT (transaction_id) DO NOTHING
	`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to append donation: %w", err)
	}
	return nil
}

// ListDonations returns the user's donations, newest first
func (r *HistoryRepo) ListDonations(ctx context.Context, userID uuid.UUID) ([]models.DonationRecord, error) {
	query := `
		SELECT id, user_id, campaign_id, campaign_title, amount, transaction_id, donated_at
		FROM donations
		WHERE user_id = $1
		ORDER BY donated_at DESC
	`

	donations := []models.DonationRecord{}
	if err := r.db.SelectContext(ctx, &donations, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}
