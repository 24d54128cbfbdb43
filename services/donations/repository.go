package donations

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/donations CampaignStore,HistoryStore

// CampaignStore reads campaigns and applies donations to their aggregates
type CampaignStore interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	IncrementAggregate(ctx context.Context, id uuid.UUID, amount int64) (*models.Campaign, error)
}

// HistoryStore records completed donations
type HistoryStore interface {
	AppendDonation(ctx context.Context, record *models.DonationRecord) error
}
