package usecase

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity"
	"github.com/google/uuid"
)

const defaultFeedSize = 20

// ActivityUC implements activity.ActivityUC
type ActivityUC struct {
	cfg          *models.Config
	activityRepo activity.ActivityRepo
	logger       *logger.ZapLogger
}

// NewActivityUC creates a new activity use case
func NewActivityUC(
	cfg *models.Config,
	activityRepo activity.ActivityRepo,
	zapLogger *logger.ZapLogger,
) *ActivityUC {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	return &ActivityUC{
		cfg:          cfg,
		activityRepo: activityRepo,
		logger:       zapLogger,
	}
}

func (uc *ActivityUC) feedSize() int {
	if uc.cfg == nil || uc.cfg.Activity.FeedSize <= 0 {
		return defaultFeedSize
	}
	return uc.cfg.Activity.FeedSize
}

// RecordDonation adds a completed donation to the head of the feed
func (uc *ActivityUC) RecordDonation(ctx context.Context, event models.DonationCompletedEvent) error {
	if event.CampaignID == uuid.Nil || event.Amount <= 0 {
		return apperror.Validation("Invalid donation event")
	}

	entry := models.ActivityEntry{
		CampaignID:    event.CampaignID,
		CampaignTitle: event.CampaignTitle,
		DonorName:     event.DonorName,
		Amount:        event.Amount,
		Date:          event.Date,
	}
	if err := uc.activityRepo.PushEntry(ctx, entry, uc.feedSize()); err != nil {
		return apperror.Persistence(err, "Failed to record activity")
	}

	uc.logger.Debug("Activity recorded",
		logger.TransactionID(event.TransactionID),
		logger.CampaignID(event.CampaignID),
		logger.Amount(event.Amount))
	return nil
}

// Backfill rebuilds the feed from the donations table
func (uc *ActivityUC) Backfill(ctx context.Context) error {
	entries, err := uc.activityRepo.LatestDonations(ctx, uc.feedSize())
	if err != nil {
		return apperror.Persistence(err, "Failed to load latest donations")
	}

	if err := uc.activityRepo.ReplaceFeed(ctx, entries); err != nil {
		return apperror.Persistence(err, "Failed to rebuild activity feed")
	}

	uc.logger.Info("Activity feed rebuilt", logger.Int("entries", len(entries)))
	return nil
}

// RecentActivity returns the newest entries. A limit outside 1..feed size
// falls back to the feed size.
func (uc *ActivityUC) RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	size := uc.feedSize()
	if limit <= 0 || limit > size {
		limit = size
	}

	entries, err := uc.activityRepo.RecentEntries(ctx, limit)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load recent activity")
	}
	return entries, nil
}
