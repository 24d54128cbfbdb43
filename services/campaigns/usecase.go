package campaigns

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns CampaignUC

// CampaignUC defines the interface for campaign business logic
type CampaignUC interface {
	ListCampaigns(ctx context.Context, filter models.CampaignFilter) (*models.CampaignCatalog, error)
	// GetCampaign records the view for viewer when viewer is not nil
	GetCampaign(ctx context.Context, viewer *models.User, id uuid.UUID) (*models.Campaign, error)
	CreateCampaign(ctx context.Context, creator *models.User, draft models.CampaignDraft) (*models.Campaign, error)
}
