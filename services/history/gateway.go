package history

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/history CampaignReader

// CampaignReader resolves campaign ids to campaigns
type CampaignReader interface {
	GetCampaignsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Campaign, error)
}
