package campaigns

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns ViewTracker

// ViewTracker records campaign detail views for a user
type ViewTracker interface {
	RecordView(ctx context.Context, userID, campaignID uuid.UUID) error
}
