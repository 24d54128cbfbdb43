package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Activity: models.ActivityConfig{FeedSize: 3},
	}
}

func TestRecordDonation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepo(ctrl)
	uc := NewActivityUC(testConfig(), mockRepo, nil)

	event := models.DonationCompletedEvent{
		TransactionID: "TX-1",
		CampaignID:    uuid.New(),
		CampaignTitle: "Clean Water",
		DonorID:       uuid.New(),
		DonorName:     "Ada",
		Amount:        2500,
		Currency:      "USD",
		Date:          time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	mockRepo.EXPECT().
		PushEntry(gomock.Any(), models.ActivityEntry{
			CampaignID:    event.CampaignID,
			CampaignTitle: "Clean Water",
			DonorName:     "Ada",
			Amount:        2500,
			Date:          event.Date,
		}, 3).
		Return(nil)

	// Act
	err := uc.RecordDonation(context.Background(), event)

	// Assert
	assert.NoError(t, err)
}

func TestRecordDonation_InvalidEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepo(ctrl)
	uc := NewActivityUC(testConfig(), mockRepo, nil)

	tests := []struct {
		name  string
		event models.DonationCompletedEvent
	}{
		{"missing campaign", models.DonationCompletedEvent{Amount: 100}},
		{"zero amount", models.DonationCompletedEvent{CampaignID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.RecordDonation(context.Background(), tt.event)

			assert.True(t, apperror.Is(err, apperror.KindValidation))
		})
	}
}

func TestRecordDonation_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepo(ctrl)
	uc := NewActivityUC(testConfig(), mockRepo, nil)

	mockRepo.EXPECT().PushEntry(gomock.Any(), gomock.Any(), 3).Return(errors.New("redis down"))

	err := uc.RecordDonation(context.Background(), models.DonationCompletedEvent{CampaignID: uuid.New(), Amount: 100})

	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}

func TestBackfill(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepo(ctrl)
	uc := NewActivityUC(testConfig(), mockRepo, nil)

	latest := []models.ActivityEntry{
		{CampaignID: uuid.New(), CampaignTitle: "A", Amount: 100},
		{CampaignID: uuid.New(), CampaignTitle: "B", Amount: 200},
	}

	gomock.InOrder(
		mockRepo.EXPECT().LatestDonations(gomock.Any(), 3).Return(latest, nil),
		mockRepo.EXPECT().ReplaceFeed(gomock.Any(), latest).Return(nil),
	)

	// Act
	err := uc.Backfill(context.Background())

	// Assert
	assert.NoError(t, err)
}

func TestBackfill_SourceFailureKeepsFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepo(ctrl)
	uc := NewActivityUC(testConfig(), mockRepo, nil)

	mockRepo.EXPECT().LatestDonations(gomock.Any(), 3).Return(nil, errors.New("db down"))
	mockRepo.EXPECT().ReplaceFeed(gomock.Any(), gomock.Any()).Times(0)

	err := uc.Backfill(context.Background())

	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}

func TestBackfill_ReplaceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepo(ctrl)
	uc := NewActivityUC(testConfig(), mockRepo, nil)

	mockRepo.EXPECT().LatestDonations(gomock.Any(), 3).Return([]models.ActivityEntry{}, nil)
	mockRepo.EXPECT().ReplaceFeed(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	err := uc.Backfill(context.Background())

	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}

func TestRecentActivity_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"within feed size", 2, 2},
		{"zero uses feed size", 0, 3},
		{"negative uses feed size", -1, 3},
		{"above feed size", 50, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockActivityRepo(ctrl)
			uc := NewActivityUC(testConfig(), mockRepo, nil)

			mockRepo.EXPECT().RecentEntries(gomock.Any(), tt.wantLimit).Return([]models.ActivityEntry{}, nil)

			entries, err := uc.RecentActivity(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.NotNil(t, entries)
		})
	}
}

func TestRecentActivity_DefaultFeedSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepo(ctrl)
	uc := NewActivityUC(&models.Config{}, mockRepo, nil)

	mockRepo.EXPECT().RecentEntries(gomock.Any(), defaultFeedSize).Return(nil, errors.New("redis down"))

	entries, err := uc.RecentActivity(context.Background(), 0)

	assert.Nil(t, entries)
	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}
