package activity

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/activity ActivityUC

// ActivityUC defines the interface for the recent activity feed
type ActivityUC interface {
	RecordDonation(ctx context.Context, event models.DonationCompletedEvent) error
	Backfill(ctx context.Context) error
	RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
