package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/validation"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns"
	"github.com/google/uuid"
)

// CampaignUC implements campaigns.CampaignUC
type CampaignUC struct {
	cfg          *models.Config
	campaignRepo campaigns.CampaignRepo
	viewTracker  campaigns.ViewTracker
	logger       *logger.ZapLogger
	now          func() time.Time
}

// NewCampaignUC creates a new campaign use case
func NewCampaignUC(
	cfg *models.Config,
	campaignRepo campaigns.CampaignRepo,
	viewTracker campaigns.ViewTracker,
	zapLogger *logger.ZapLogger,
) *CampaignUC {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	return &CampaignUC{
		cfg:          cfg,
		campaignRepo: campaignRepo,
		viewTracker:  viewTracker,
		logger:       zapLogger,
		now:          time.Now,
	}
}

// ListCampaigns returns the catalog filtered by filter. Categories are
// computed over every campaign so the category picker stays stable.
func (uc *CampaignUC) ListCampaigns(ctx context.Context, filter models.CampaignFilter) (*models.CampaignCatalog, error) {
	all, err := uc.campaignRepo.ListCampaigns(ctx)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load campaigns")
	}

	filtered := Filter(all, filter.Search, filter.Category)
	return &models.CampaignCatalog{
		Featured:   Featured(all),
		Campaigns:  filtered,
		Categories: Categories(all),
		Total:      len(filtered),
	}, nil
}

// GetCampaign returns one campaign and records the view for an authenticated viewer
func (uc *CampaignUC) GetCampaign(ctx context.Context, viewer *models.User, id uuid.UUID) (*models.Campaign, error) {
	campaign, err := uc.campaignRepo.GetCampaign(ctx, id)
	if err != nil {
		return nil, asStoreError(err, "Failed to load campaign")
	}

	if viewer != nil && uc.viewTracker != nil {
		if err := uc.viewTracker.RecordView(ctx, viewer.ID, campaign.ID); err != nil {
			uc.logger.Warn("Failed to record recently viewed campaign",
				logger.UserID(viewer.ID),
				logger.CampaignID(campaign.ID),
				logger.Err(err))
		}
	}

	return campaign, nil
}

// CreateCampaign validates draft and stores a new campaign owned by creator
func (uc *CampaignUC) CreateCampaign(ctx context.Context, creator *models.User, draft models.CampaignDraft) (*models.Campaign, error) {
	if creator == nil {
		return nil, apperror.Authorization("You must be logged in to create a campaign").
			WithReason(apperror.ReasonUnauthenticated)
	}

	draft.Title = strings.TrimSpace(draft.Title)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Category = strings.TrimSpace(draft.Category)

	if err := validation.Struct(draft); err != nil {
		return nil, err
	}
	if draft.Category == models.CategoryAll {
		return nil, apperror.Validation("category must name a specific category")
	}
	if !draft.EndDate.After(uc.now()) {
		return nil, apperror.Validation("end_date must be in the future")
	}

	images := draft.ImageURLs
	if len(images) == 0 {
		images = []string{models.DefaultCampaignImage}
	}

	campaign := &models.Campaign{
		ID:              uuid.New(),
		CreatorID:       creator.ID,
		CreatorName:     creator.Name,
		CreatorAvatar:   creator.AvatarURL,
		Title:           draft.Title,
		Description:     draft.Description,
		LongDescription: draft.LongDescription,
		ImageURLs:       images,
		Category:        draft.Category,
		GoalAmount:      draft.GoalAmount,
		CurrentAmount:   0,
		DonorCount:      0,
		EndDate:         draft.EndDate,
	}

	stored, err := uc.campaignRepo.InsertCampaign(ctx, campaign)
	if err != nil {
		return nil, asStoreError(err, "Failed to create campaign")
	}

	uc.logger.Info("Campaign created",
		logger.CampaignID(stored.ID),
		logger.UserID(creator.ID),
		logger.Amount(stored.GoalAmount))

	return stored, nil
}

// asStoreError keeps classified repository errors and wraps the rest as persistence failures
func asStoreError(err error, message string) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Persistence(err, message)
}
