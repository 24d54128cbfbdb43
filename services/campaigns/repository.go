package campaigns

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns CampaignRepo

// CampaignRepo defines the interface for campaign data access operations
type CampaignRepo interface {
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	GetCampaignsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Campaign, error)
	InsertCampaign(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error)
	// IncrementAggregate adds amount to current_amount and one donor in a single statement
	IncrementAggregate(ctx context.Context, id uuid.UUID, amount int64) (*models.Campaign, error)
}
