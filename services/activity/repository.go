package activity

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/activity ActivityRepo

// ActivityRepo keeps the public feed in Redis and reads its source rows from Postgres
type ActivityRepo interface {
	PushEntry(ctx context.Context, entry models.ActivityEntry, size int) error
	ReplaceFeed(ctx context.Context, entries []models.ActivityEntry) error
	RecentEntries(ctx context.Context, limit int) ([]models.ActivityEntry, error)

	// LatestDonations reads the newest donations joined with donor names
	LatestDonations(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
