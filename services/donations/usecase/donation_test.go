package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/donations/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	campaigns *mocks.MockCampaignStore
	history   *mocks.MockHistoryStore
	payment   *mocks.MockPaymentGW
	events    *mocks.MockEventGW
}

func newTestUC(t *testing.T) (*DonationUC, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		campaigns: mocks.NewMockCampaignStore(ctrl),
		history:   mocks.NewMockHistoryStore(ctrl),
		payment:   mocks.NewMockPaymentGW(ctrl),
		events:    mocks.NewMockEventGW(ctrl),
	}

	cfg := &models.Config{
		Payment:  models.PaymentConfig{Currency: "USD", TimeoutSeconds: 5},
		Donation: models.DonationConfig{HistoryRetries: 2, RetryBaseDelayMs: 1},
	}
	uc := NewDonationUC(cfg, deps.campaigns, deps.history, deps.payment, deps.events, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, deps
}

func testCampaign() *models.Campaign {
	return &models.Campaign{
		ID:            uuid.New(),
		CreatorID:     uuid.New(),
		Title:         "Clean Water",
		GoalAmount:    100000,
		CurrentAmount: 40000,
		DonorCount:    10,
		EndDate:       fixedNow.Add(7 * 24 * time.Hour),
	}
}

func testDonor() *models.User {
	return &models.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
}

func TestStart(t *testing.T) {
	uc, deps := newTestUC(t)
	campaign := testCampaign()
	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)

	outcome, err := uc.Start(context.Background(), testDonor(), campaign.ID)

	require.NoError(t, err)
	assert.Equal(t, models.DonationStateEnteringAmount, outcome.State)
	assert.Equal(t, campaign, outcome.Campaign)
}

func TestStart_Guards(t *testing.T) {
	donor := testDonor()

	tests := []struct {
		name       string
		donor      *models.User
		campaign   func() *models.Campaign
		storeErr   error
		wantKind   apperror.Kind
		wantReason apperror.Reason
		wantTitle  string
	}{
		{
			name:       "unauthenticated",
			donor:      nil,
			wantKind:   apperror.KindAuthorization,
			wantReason: apperror.ReasonUnauthenticated,
		},
		{
			name:     "missing campaign",
			donor:    donor,
			storeErr: apperror.NotFound("Campaign not found"),
			wantKind: apperror.KindNotFound,
		},
		{
			name:     "store failure",
			donor:    donor,
			storeErr: errors.New("db down"),
			wantKind: apperror.KindPersistence,
		},
		{
			name:  "expired",
			donor: donor,
			campaign: func() *models.Campaign {
				c := testCampaign()
				c.EndDate = fixedNow.Add(-time.Hour)
				return c
			},
			wantKind:   apperror.KindValidation,
			wantReason: apperror.ReasonCampaignExpired,
			wantTitle:  "Campaign Ended",
		},
		{
			name:  "self donation",
			donor: donor,
			campaign: func() *models.Campaign {
				c := testCampaign()
				c.CreatorID = donor.ID
				return c
			},
			wantKind:   apperror.KindAuthorization,
			wantReason: apperror.ReasonSelfDonation,
			wantTitle:  "Self-Donation Restricted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc, deps := newTestUC(t)
			id := uuid.New()
			if tt.donor != nil {
				var campaign *models.Campaign
				if tt.campaign != nil {
					campaign = tt.campaign()
					id = campaign.ID
				}
				deps.campaigns.EXPECT().GetCampaign(gomock.Any(), id).Return(campaign, tt.storeErr)
			}

			// Act
			outcome, err := uc.Start(context.Background(), tt.donor, id)

			// Assert
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			assert.Equal(t, tt.wantReason, apperror.ReasonOf(err))
			if tt.wantTitle == "" {
				assert.Nil(t, outcome)
				return
			}
			require.NotNil(t, outcome)
			assert.Equal(t, tt.wantTitle, outcome.Message.Title)
			assert.Equal(t, models.DonationStateEnteringAmount, outcome.State)
		})
	}
}

func TestDonate_Completed(t *testing.T) {
	// Arrange
	uc, deps := newTestUC(t)
	campaign := testCampaign()
	donor := testDonor()

	updated := *campaign
	updated.CurrentAmount = 42500
	updated.DonorCount = 11

	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)
	deps.payment.EXPECT().Capture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order models.PaymentOrder) (*models.PaymentCapture, error) {
			assert.Equal(t, int64(2500), order.Amount)
			assert.Equal(t, "Donation to Clean Water", order.Description)
			assert.Equal(t, "USD", order.Currency)
			assert.Equal(t, "tok-1", order.Token)
			return &models.PaymentCapture{TransactionID: "TX-1", Status: "capture"}, nil
		})
	deps.campaigns.EXPECT().IncrementAggregate(gomock.Any(), campaign.ID, int64(2500)).Return(&updated, nil)
	deps.history.EXPECT().AppendDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.DonationRecord) error {
			assert.Equal(t, "TX-1", record.TransactionID)
			assert.Equal(t, int64(2500), record.Amount)
			assert.Equal(t, donor.ID, record.UserID)
			assert.Equal(t, "Clean Water", record.CampaignTitle)
			return nil
		})
	deps.events.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DonationCompletedEvent) error {
			assert.Equal(t, "TX-1", event.TransactionID)
			assert.Equal(t, "Ana", event.DonorName)
			return nil
		})

	// Act
	outcome, err := uc.Donate(context.Background(), donor, campaign.ID, models.DonationRequest{Amount: "25", PaymentToken: "tok-1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.DonationStateCompleted, outcome.State)
	assert.Equal(t, int64(42500), outcome.Campaign.CurrentAmount)
	assert.Equal(t, 11, outcome.Campaign.DonorCount)
	assert.Equal(t, models.SeverityInfo, outcome.Message.Severity)
	require.NotNil(t, outcome.Receipt)
	assert.Equal(t, "TX-1", outcome.Receipt.TransactionID)
	assert.Equal(t, "HeartFund_Receipt_TX-1.txt", outcome.ReceiptFilename)
	assert.Contains(t, outcome.ReceiptText, "Amount: $25.00 USD")
	assert.Contains(t, outcome.ReceiptText, "Donor: Ana")
}

func TestDonate_InvalidAmountMakesNoStoreCalls(t *testing.T) {
	for _, amount := range []string{"-5", "0", "abc", ""} {
		t.Run(amount, func(t *testing.T) {
			uc, deps := newTestUC(t)
			campaign := testCampaign()
			deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)

			outcome, err := uc.Donate(context.Background(), testDonor(), campaign.ID, models.DonationRequest{Amount: amount})

			assert.True(t, apperror.Is(err, apperror.KindValidation))
			require.NotNil(t, outcome)
			assert.Equal(t, models.DonationStateEnteringAmount, outcome.State)
			assert.Equal(t, models.SeverityError, outcome.Message.Severity)
		})
	}
}

func TestDonate_ExpiredNeverCallsPayment(t *testing.T) {
	uc, deps := newTestUC(t)
	campaign := testCampaign()
	campaign.EndDate = fixedNow.Add(-time.Minute)
	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)

	outcome, err := uc.Donate(context.Background(), testDonor(), campaign.ID, models.DonationRequest{Amount: "25"})

	assert.Equal(t, apperror.ReasonCampaignExpired, apperror.ReasonOf(err))
	require.NotNil(t, outcome)
	assert.Equal(t, models.DonationStateEnteringAmount, outcome.State)
}

func TestDonate_SelfDonationBlockedBeforePayment(t *testing.T) {
	uc, deps := newTestUC(t)
	donor := testDonor()
	campaign := testCampaign()
	campaign.CreatorID = donor.ID
	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)

	outcome, err := uc.Donate(context.Background(), donor, campaign.ID, models.DonationRequest{Amount: "25"})

	assert.Equal(t, apperror.ReasonSelfDonation, apperror.ReasonOf(err))
	assert.Equal(t, "Self-Donation Restricted", outcome.Message.Title)
	assert.NotEqual(t, models.DonationStateAwaitingPayment, outcome.State)
}

func TestDonate_PaymentFailures(t *testing.T) {
	tests := []struct {
		name         string
		captureErr   error
		wantReason   apperror.Reason
		wantSeverity models.MessageSeverity
	}{
		{
			name:         "cancelled",
			captureErr:   apperror.Payment(apperror.ReasonPaymentCancelled, "Payment was cancelled", nil),
			wantReason:   apperror.ReasonPaymentCancelled,
			wantSeverity: models.SeverityWarning,
		},
		{
			name:         "declined",
			captureErr:   apperror.Payment(apperror.ReasonPaymentDeclined, "Transaction was declined", nil),
			wantReason:   apperror.ReasonPaymentDeclined,
			wantSeverity: models.SeverityError,
		},
		{
			name:         "deadline",
			captureErr:   context.DeadlineExceeded,
			wantReason:   apperror.ReasonPaymentTimeout,
			wantSeverity: models.SeverityError,
		},
		{
			name:         "unclassified",
			captureErr:   errors.New("connection reset"),
			wantReason:   apperror.ReasonNone,
			wantSeverity: models.SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUC(t)
			campaign := testCampaign()
			deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)
			deps.payment.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(nil, tt.captureErr).Times(1)

			outcome, err := uc.Donate(context.Background(), testDonor(), campaign.ID, models.DonationRequest{Amount: "25"})

			assert.True(t, apperror.Is(err, apperror.KindPayment))
			assert.Equal(t, tt.wantReason, apperror.ReasonOf(err))
			assert.Equal(t, models.DonationStateAwaitingPayment, outcome.State)
			assert.Equal(t, tt.wantSeverity, outcome.Message.Severity)
		})
	}
}

func TestDonate_AggregateFailurePublishesReconciliation(t *testing.T) {
	uc, deps := newTestUC(t)
	campaign := testCampaign()

	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)
	deps.payment.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(&models.PaymentCapture{TransactionID: "TX-9"}, nil)
	deps.campaigns.EXPECT().IncrementAggregate(gomock.Any(), campaign.ID, int64(1000)).Return(nil, errors.New("db down"))
	deps.events.EXPECT().PublishReconciliation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.ReconciliationEvent) error {
			assert.Equal(t, "TX-9", event.TransactionID)
			assert.Equal(t, models.ReconcileAggregateFailed, event.Reason)
			return nil
		})

	outcome, err := uc.Donate(context.Background(), testDonor(), campaign.ID, models.DonationRequest{Amount: "10"})

	assert.True(t, apperror.Is(err, apperror.KindPersistence))
	assert.Equal(t, apperror.ReasonReconciliationNeeded, apperror.ReasonOf(err))
	assert.Equal(t, models.DonationStateAwaitingPayment, outcome.State)
}

func TestDonate_HistoryAppendRetriedWithSameTransaction(t *testing.T) {
	uc, deps := newTestUC(t)
	campaign := testCampaign()
	updated := *campaign

	var seen []string
	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)
	deps.payment.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(&models.PaymentCapture{TransactionID: "TX-1"}, nil)
	deps.campaigns.EXPECT().IncrementAggregate(gomock.Any(), campaign.ID, int64(2500)).Return(&updated, nil)
	gomock.InOrder(
		deps.history.EXPECT().AppendDonation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.DonationRecord) error {
				seen = append(seen, r.TransactionID)
				return errors.New("connection reset")
			}),
		deps.history.EXPECT().AppendDonation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.DonationRecord) error {
				seen = append(seen, r.TransactionID)
				return nil
			}),
	)
	deps.events.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := uc.Donate(context.Background(), testDonor(), campaign.ID, models.DonationRequest{Amount: "25"})

	require.NoError(t, err)
	assert.Equal(t, models.DonationStateCompleted, outcome.State)
	assert.Equal(t, []string{"TX-1", "TX-1"}, seen)
}

func TestDonate_HistoryRetriesExhausted(t *testing.T) {
	uc, deps := newTestUC(t)
	campaign := testCampaign()
	updated := *campaign

	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)
	deps.payment.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(&models.PaymentCapture{TransactionID: "TX-1"}, nil)
	deps.campaigns.EXPECT().IncrementAggregate(gomock.Any(), campaign.ID, int64(2500)).Return(&updated, nil)
	deps.history.EXPECT().AppendDonation(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")).Times(3)
	deps.events.EXPECT().PublishReconciliation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.ReconciliationEvent) error {
			assert.Equal(t, models.ReconcileHistoryFailed, event.Reason)
			return errors.New("nats down")
		})

	outcome, err := uc.Donate(context.Background(), testDonor(), campaign.ID, models.DonationRequest{Amount: "25"})

	assert.Equal(t, apperror.ReasonReconciliationNeeded, apperror.ReasonOf(err))
	assert.Equal(t, models.DonationStateAwaitingPayment, outcome.State)
	assert.Equal(t, models.SeverityError, outcome.Message.Severity)
}

func TestDonate_DonorDisconnectsAfterCapture(t *testing.T) {
	// Arrange
	uc, deps := newTestUC(t)
	campaign := testCampaign()
	updated := *campaign
	updated.CurrentAmount = 42500

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)
	deps.payment.EXPECT().Capture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.PaymentOrder) (*models.PaymentCapture, error) {
			cancel()
			return &models.PaymentCapture{TransactionID: "TX-1"}, nil
		})
	deps.campaigns.EXPECT().IncrementAggregate(gomock.Any(), campaign.ID, int64(2500)).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ int64) (*models.Campaign, error) {
			assert.NoError(t, ctx.Err())
			return &updated, nil
		})
	deps.history.EXPECT().AppendDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.DonationRecord) error {
			assert.NoError(t, ctx.Err())
			assert.Equal(t, "TX-1", record.TransactionID)
			return nil
		})
	deps.events.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	outcome, err := uc.Donate(ctx, testDonor(), campaign.ID, models.DonationRequest{Amount: "25"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.DonationStateCompleted, outcome.State)
	assert.Equal(t, int64(42500), outcome.Campaign.CurrentAmount)
}

func TestDonate_ReconciliationPublishedAfterDisconnect(t *testing.T) {
	uc, deps := newTestUC(t)
	campaign := testCampaign()
	updated := *campaign

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)
	deps.payment.EXPECT().Capture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.PaymentOrder) (*models.PaymentCapture, error) {
			cancel()
			return &models.PaymentCapture{TransactionID: "TX-1"}, nil
		})
	deps.campaigns.EXPECT().IncrementAggregate(gomock.Any(), campaign.ID, int64(2500)).Return(&updated, nil)
	deps.history.EXPECT().AppendDonation(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")).Times(3)
	deps.events.EXPECT().PublishReconciliation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.ReconciliationEvent) error {
			assert.NoError(t, ctx.Err())
			assert.Equal(t, "TX-1", event.TransactionID)
			assert.Equal(t, models.ReconcileHistoryFailed, event.Reason)
			return nil
		})

	_, err := uc.Donate(ctx, testDonor(), campaign.ID, models.DonationRequest{Amount: "25"})

	assert.Equal(t, apperror.ReasonReconciliationNeeded, apperror.ReasonOf(err))
	assert.NotErrorIs(t, err, context.Canceled)
}

func TestDonate_EmptyTransactionIDIsGenerated(t *testing.T) {
	uc, deps := newTestUC(t)
	campaign := testCampaign()
	updated := *campaign

	deps.campaigns.EXPECT().GetCampaign(gomock.Any(), campaign.ID).Return(campaign, nil)
	deps.payment.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(&models.PaymentCapture{TransactionID: ""}, nil)
	deps.campaigns.EXPECT().IncrementAggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&updated, nil)
	deps.history.EXPECT().AppendDonation(gomock.Any(), gomock.Any()).Return(nil)
	deps.events.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	outcome, err := uc.Donate(context.Background(), testDonor(), campaign.ID, models.DonationRequest{Amount: "5"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(outcome.Receipt.TransactionID, "TXN-"))
	assert.Len(t, outcome.Receipt.TransactionID, len("TXN-")+9)
}

func TestOrderDescription_Truncated(t *testing.T) {
	desc := orderDescription(strings.Repeat("x", 200))

	assert.Len(t, []rune(desc), 127)
	assert.True(t, strings.HasPrefix(desc, "Donation to "))
}
