package usecase

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/history"
	"github.com/google/uuid"
)

// HistoryUC implements history.HistoryUC
type HistoryUC struct {
	cfg            *models.Config
	historyRepo    history.HistoryRepo
	campaignReader history.CampaignReader
	logger         *logger.ZapLogger
}

// NewHistoryUC creates a new history use case
func NewHistoryUC(
	cfg *models.Config,
	historyRepo history.HistoryRepo,
	campaignReader history.CampaignReader,
	zapLogger *logger.ZapLogger,
) *HistoryUC {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	return &HistoryUC{
		cfg:            cfg,
		historyRepo:    historyRepo,
		campaignReader: campaignReader,
		logger:         zapLogger,
	}
}

// GetHistory returns the donor's donations, the recently viewed campaigns and
// the total donated. Campaign resolution failures degrade to ids only.
func (uc *HistoryUC) GetHistory(ctx context.Context, userID uuid.UUID) (*models.HistorySummary, error) {
	donations, err := uc.historyRepo.ListDonations(ctx, userID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load donation history")
	}

	viewedIDs, err := uc.historyRepo.GetRecentlyViewed(ctx, userID)
	if err != nil {
		uc.logger.Warn("Failed to load recently viewed campaigns",
			logger.UserID(userID),
			logger.Err(err))
		viewedIDs = []uuid.UUID{}
	}

	viewed := []models.Campaign{}
	if len(viewedIDs) > 0 && uc.campaignReader != nil {
		resolved, err := uc.campaignReader.GetCampaignsByIDs(ctx, viewedIDs)
		if err != nil {
			uc.logger.Warn("Failed to resolve recently viewed campaigns",
				logger.UserID(userID),
				logger.Err(err))
		} else {
			viewed = resolved
		}
	}

	var total int64
	for _, d := range donations {
		total += d.Amount
	}

	return &models.HistorySummary{
		UserHistory: models.UserHistory{
			Donations:         donations,
			RecentlyViewedIDs: viewedIDs,
		},
		RecentlyViewed: viewed,
		TotalDonated:   total,
	}, nil
}

// RecordView records that userID opened campaignID
func (uc *HistoryUC) RecordView(ctx context.Context, userID, campaignID uuid.UUID) error {
	if err := uc.historyRepo.RecordView(ctx, userID, campaignID); err != nil {
		return apperror.Persistence(err, "Failed to record view")
	}
	return nil
}

// AppendDonation stores a completed donation in the donor's history
func (uc *HistoryUC) AppendDonation(ctx context.Context, record *models.DonationRecord) error {
	if err := uc.historyRepo.AppendDonation(ctx, record); err != nil {
		return apperror.Persistence(err, "Failed to save donation history")
	}

	uc.logger.Debug("Donation appended to history",
		logger.UserID(record.UserID),
		logger.CampaignID(record.CampaignID),
		logger.TransactionID(record.TransactionID),
		logger.Amount(record.Amount))
	return nil
}
