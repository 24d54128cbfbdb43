package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/history/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T) (*HistoryUC, *mocks.MockHistoryRepo, *mocks.MockCampaignReader) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockHistoryRepo(ctrl)
	mockReader := mocks.NewMockCampaignReader(ctrl)
	return NewHistoryUC(&models.Config{}, mockRepo, mockReader, nil), mockRepo, mockReader
}

func TestGetHistory(t *testing.T) {
	// Arrange
	uc, mockRepo, mockReader := newTestUC(t)
	userID := uuid.New()
	a, b := uuid.New(), uuid.New()

	mockRepo.EXPECT().ListDonations(gomock.Any(), userID).Return([]models.DonationRecord{
		{TransactionID: "TX-2", Amount: 2500},
		{TransactionID: "TX-1", Amount: 1000},
	}, nil)
	mockRepo.EXPECT().GetRecentlyViewed(gomock.Any(), userID).Return([]uuid.UUID{a, b}, nil)
	mockReader.EXPECT().GetCampaignsByIDs(gomock.Any(), []uuid.UUID{a, b}).Return([]models.Campaign{
		{ID: a, Title: "Clean Water"},
		{ID: b, Title: "School Books"},
	}, nil)

	// Act
	summary, err := uc.GetHistory(context.Background(), userID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3500), summary.TotalDonated)
	assert.Len(t, summary.Donations, 2)
	assert.Equal(t, []uuid.UUID{a, b}, summary.RecentlyViewedIDs)
	assert.Equal(t, "Clean Water", summary.RecentlyViewed[0].Title)
}

func TestGetHistory_Empty(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	userID := uuid.New()

	mockRepo.EXPECT().ListDonations(gomock.Any(), userID).Return([]models.DonationRecord{}, nil)
	mockRepo.EXPECT().GetRecentlyViewed(gomock.Any(), userID).Return([]uuid.UUID{}, nil)

	summary, err := uc.GetHistory(context.Background(), userID)

	require.NoError(t, err)
	assert.Zero(t, summary.TotalDonated)
	assert.Empty(t, summary.Donations)
	assert.Empty(t, summary.RecentlyViewed)
}

func TestGetHistory_DonationsError(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().ListDonations(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	summary, err := uc.GetHistory(context.Background(), uuid.New())

	assert.Nil(t, summary)
	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}

func TestGetHistory_RecentlyViewedFailureDegrades(t *testing.T) {
	uc, mockRepo, mockReader := newTestUC(t)
	userID := uuid.New()
	a := uuid.New()

	mockRepo.EXPECT().ListDonations(gomock.Any(), userID).Return([]models.DonationRecord{{Amount: 10}}, nil)
	mockRepo.EXPECT().GetRecentlyViewed(gomock.Any(), userID).Return([]uuid.UUID{a}, nil)
	mockReader.EXPECT().GetCampaignsByIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	summary, err := uc.GetHistory(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a}, summary.RecentlyViewedIDs)
	assert.Empty(t, summary.RecentlyViewed)
	assert.Equal(t, int64(10), summary.TotalDonated)
}

func TestRecordView(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	userID, campaignID := uuid.New(), uuid.New()

	mockRepo.EXPECT().RecordView(gomock.Any(), userID, campaignID).Return(nil)

	assert.NoError(t, uc.RecordView(context.Background(), userID, campaignID))
}

func TestRecordView_Error(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().RecordView(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	err := uc.RecordView(context.Background(), uuid.New(), uuid.New())

	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}

func TestAppendDonation(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	record := &models.DonationRecord{TransactionID: "TX-1", Amount: 25}

	mockRepo.EXPECT().AppendDonation(gomock.Any(), record).Return(nil)

	assert.NoError(t, uc.AppendDonation(context.Background(), record))
}

func TestAppendDonation_Error(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().AppendDonation(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := uc.AppendDonation(context.Background(), &models.DonationRecord{TransactionID: "TX-1"})

	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}
