package history

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/history HistoryRepo

// HistoryRepo stores donation records in Postgres and recently viewed lists in Redis
type HistoryRepo interface {
	// AppendDonation is idempotent on record.TransactionID
	AppendDonation(ctx context.Context, record *models.DonationRecord) error
	ListDonations(ctx context.Context, userID uuid.UUID) ([]models.DonationRecord, error)

	RecordView(ctx context.Context, userID, campaignID uuid.UUID) error
	GetRecentlyViewed(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	SetRecentlyViewed(ctx context.Context, userID uuid.UUID, campaignIDs []uuid.UUID) error
}
