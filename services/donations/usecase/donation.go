package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	nrpkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/newrelic"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/retry"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/donations"
	"github.com/google/uuid"
)

const (
	maxDescriptionLength  = 127
	defaultPaymentTimeout = 30 * time.Second
	defaultCurrency       = "USD"
)

// bookkeepingTimeout bounds the ledger writes that follow a capture
const bookkeepingTimeout = 30 * time.Second

// DonationUC implements donations.DonationUC
type DonationUC struct {
	cfg           *models.Config
	campaignStore donations.CampaignStore
	historyStore  donations.HistoryStore
	paymentGW     donations.PaymentGW
	eventGW       donations.EventGW
	retrier       *retry.Retrier
	logger        *logger.ZapLogger
	now           func() time.Time
	newTxnID      func() string
}

// NewDonationUC creates a new donation use case
func NewDonationUC(
	cfg *models.Config,
	campaignStore donations.CampaignStore,
	historyStore donations.HistoryStore,
	paymentGW donations.PaymentGW,
	eventGW donations.EventGW,
	zapLogger *logger.ZapLogger,
) *DonationUC {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Donation.HistoryRetries
	if cfg.Donation.RetryBaseDelayMs > 0 {
		retryCfg.BaseDelay = time.Duration(cfg.Donation.RetryBaseDelayMs) * time.Millisecond
	}
	retryCfg.RetryableFunc = func(err error) bool {
		return !apperror.Is(err, apperror.KindValidation)
	}

	return &DonationUC{
		cfg:           cfg,
		campaignStore: campaignStore,
		historyStore:  historyStore,
		paymentGW:     paymentGW,
		eventGW:       eventGW,
		retrier:       retry.New(retryCfg, zapLogger),
		logger:        zapLogger,
		now:           time.Now,
		newTxnID:      generateTxnID,
	}
}

// Start checks that donor may donate to the campaign and opens the workflow
func (uc *DonationUC) Start(ctx context.Context, donor *models.User, campaignID uuid.UUID) (*models.DonationOutcome, error) {
	campaign, err := uc.guard(ctx, donor, campaignID)
	if err != nil {
		return refusedOutcome(campaign, err), err
	}

	return &models.DonationOutcome{
		State:    NewWorkflow().State(),
		Campaign: campaign,
	}, nil
}

// Donate runs the workflow from amount entry to completion. When the run
// stops early the returned outcome carries the state and the donor message
// alongside the classified error.
func (uc *DonationUC) Donate(ctx context.Context, donor *models.User, campaignID uuid.UUID, request models.DonationRequest) (*models.DonationOutcome, error) {
	campaign, err := uc.guard(ctx, donor, campaignID)
	if err != nil {
		return refusedOutcome(campaign, err), err
	}

	wf := NewWorkflow()
	outcome := &models.DonationOutcome{State: wf.State(), Campaign: campaign}

	amount, err := ParseAmount(request.Amount)
	if err != nil {
		outcome.Message = &models.UserMessage{
			Severity: models.SeverityError,
			Title:    "Invalid Amount",
			Text:     apperror.PublicMessage(err),
		}
		return outcome, err
	}

	if err := wf.Transition(models.DonationStateAwaitingPayment); err != nil {
		return nil, err
	}
	outcome.State = wf.State()

	capture, err := uc.capture(ctx, donor, campaign, amount, request.PaymentToken)
	if err != nil {
		uc.logger.Warn("Payment capture failed",
			logger.UserID(donor.ID),
			logger.CampaignID(campaign.ID),
			logger.Amount(amount),
			logger.String("reason", string(apperror.ReasonOf(err))),
			logger.Err(err))
		return uc.fail(wf, outcome, paymentMessage(err), err)
	}

	transactionID := strings.TrimSpace(capture.TransactionID)
	if transactionID == "" {
		transactionID = uc.newTxnID()
	}
	nrpkg.AddAttribute(ctx, "donation.transaction_id", transactionID)

	// The donor has been charged. Recording it must not depend on the
	// request staying open.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bookkeepingTimeout)
	defer cancel()

	if err := wf.Transition(models.DonationStateProcessing); err != nil {
		return nil, err
	}
	outcome.State = wf.State()

	updated, err := uc.campaignStore.IncrementAggregate(ctx, campaign.ID, amount)
	if err != nil {
		uc.logger.Error("Failed to update campaign aggregate after capture",
			logger.TransactionID(transactionID),
			logger.CampaignID(campaign.ID),
			logger.Amount(amount),
			logger.Err(err))
		uc.publishReconciliation(ctx, transactionID, campaign.ID, donor.ID, amount, models.ReconcileAggregateFailed, err)

		appErr := apperror.Persistence(err, "Your payment was received but the campaign total could not be updated. Our team will reconcile it.").
			WithReason(apperror.ReasonReconciliationNeeded)
		return uc.fail(wf, outcome, persistenceMessage(appErr), appErr)
	}

	donatedAt := uc.now().UTC()
	record := &models.DonationRecord{
		ID:            uuid.New(),
		UserID:        donor.ID,
		CampaignID:    campaign.ID,
		CampaignTitle: campaign.Title,
		Amount:        amount,
		TransactionID: transactionID,
		Date:          donatedAt,
	}

	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.historyStore.AppendDonation(ctx, record)
	})
	if err != nil {
		uc.logger.Error("Failed to record donation history after capture",
			logger.TransactionID(transactionID),
			logger.UserID(donor.ID),
			logger.Amount(amount),
			logger.Err(err))
		uc.publishReconciliation(ctx, transactionID, campaign.ID, donor.ID, amount, models.ReconcileHistoryFailed, err)

		appErr := apperror.Persistence(err, "Your payment was received but your donation history could not be saved. Our team will reconcile it.").
			WithReason(apperror.ReasonReconciliationNeeded)
		return uc.fail(wf, outcome, persistenceMessage(appErr), appErr)
	}

	if err := wf.Transition(models.DonationStateCompleted); err != nil {
		return nil, err
	}

	receipt := models.Receipt{
		TransactionID: transactionID,
		Date:          donatedAt,
		CampaignTitle: campaign.Title,
		DonorName:     donor.Name,
		Amount:        amount,
		Currency:      uc.currency(),
	}

	uc.publishCompleted(ctx, receipt, campaign.ID, donor.ID)

	uc.logger.Info("Donation completed",
		logger.TransactionID(transactionID),
		logger.UserID(donor.ID),
		logger.CampaignID(campaign.ID),
		logger.Amount(amount))

	outcome.State = wf.State()
	outcome.Campaign = updated
	outcome.Receipt = &receipt
	outcome.ReceiptText = receipt.Text()
	outcome.ReceiptFilename = receipt.Filename()
	outcome.Message = &models.UserMessage{
		Severity: models.SeverityInfo,
		Title:    "Donation Successful!",
		Text: fmt.Sprintf("Thank you! Your donation of $%s to %s was received.",
			models.FormatAmount(amount), campaign.Title),
	}
	return outcome, nil
}

// guard evaluates, in order: the campaign exists, it has not ended, and the
// donor is not its creator. The campaign is returned with the refusal once it
// has been loaded.
func (uc *DonationUC) guard(ctx context.Context, donor *models.User, campaignID uuid.UUID) (*models.Campaign, error) {
	if donor == nil {
		return nil, apperror.Authorization("Please log in to donate").WithReason(apperror.ReasonUnauthenticated)
	}

	campaign, err := uc.campaignStore.GetCampaign(ctx, campaignID)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.Persistence(err, "Failed to load campaign")
	}

	if campaign.IsExpired(uc.now()) {
		return campaign, apperror.Validation("This campaign has ended and no longer accepts donations").
			WithReason(apperror.ReasonCampaignExpired)
	}

	if campaign.IsCreator(donor.ID) {
		return campaign, apperror.Authorization("For security and integrity reasons, you cannot donate to a campaign you created.").
			WithReason(apperror.ReasonSelfDonation)
	}

	return campaign, nil
}

func (uc *DonationUC) capture(ctx context.Context, donor *models.User, campaign *models.Campaign, amount int64, token string) (*models.PaymentCapture, error) {
	timeout := defaultPaymentTimeout
	if uc.cfg.Payment.TimeoutSeconds > 0 {
		timeout = time.Duration(uc.cfg.Payment.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	order := models.PaymentOrder{
		OrderID:     "HF-" + uuid.NewString(),
		Description: orderDescription(campaign.Title),
		Amount:      amount,
		Currency:    uc.currency(),
		Token:       token,
		DonorName:   donor.Name,
		DonorEmail:  donor.Email,
	}

	capture, err := uc.paymentGW.Capture(ctx, order)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.Payment(apperror.ReasonPaymentTimeout, "The payment session has expired. Please try again.", err)
		}
		return nil, apperror.Payment(apperror.ReasonNone, "An error occurred during payment capture.", err)
	}
	if capture == nil {
		return nil, apperror.Payment(apperror.ReasonNone, "An error occurred during payment capture.", nil)
	}
	return capture, nil
}

func (uc *DonationUC) fail(wf *Workflow, outcome *models.DonationOutcome, msg *models.UserMessage, cause error) (*models.DonationOutcome, error) {
	if err := wf.Fail(); err != nil {
		return nil, err
	}
	outcome.State = wf.State()
	outcome.Message = msg
	return outcome, cause
}

func (uc *DonationUC) publishReconciliation(ctx context.Context, transactionID string, campaignID, donorID uuid.UUID, amount int64, reason string, cause error) {
	if uc.eventGW == nil {
		return
	}

	event := models.ReconciliationEvent{
		TransactionID: transactionID,
		CampaignID:    campaignID,
		DonorID:       donorID,
		Amount:        amount,
		Reason:        reason,
		Error:         cause.Error(),
		Date:          uc.now().UTC(),
	}
	if err := uc.eventGW.PublishReconciliation(ctx, event); err != nil {
		uc.logger.Error("Failed to publish reconciliation event",
			logger.TransactionID(transactionID),
			logger.String("reason", reason),
			logger.Err(err))
	}
}

func (uc *DonationUC) publishCompleted(ctx context.Context, receipt models.Receipt, campaignID, donorID uuid.UUID) {
	if uc.eventGW == nil {
		return
	}

	event := models.DonationCompletedEvent{
		TransactionID: receipt.TransactionID,
		CampaignID:    campaignID,
		CampaignTitle: receipt.CampaignTitle,
		DonorID:       donorID,
		DonorName:     receipt.DonorName,
		Amount:        receipt.Amount,
		Currency:      receipt.Currency,
		Date:          receipt.Date,
	}
	if err := uc.eventGW.PublishDonationCompleted(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish donation completed event",
			logger.TransactionID(receipt.TransactionID),
			logger.Err(err))
	}
}

func (uc *DonationUC) currency() string {
	if uc.cfg.Payment.Currency == "" {
		return defaultCurrency
	}
	return uc.cfg.Payment.Currency
}

func orderDescription(title string) string {
	desc := "Donation to " + title
	runes := []rune(desc)
	if len(runes) > maxDescriptionLength {
		return string(runes[:maxDescriptionLength])
	}
	return desc
}

// refusedOutcome describes a guard refusal. Refusals before the campaign is
// loaded carry no outcome.
func refusedOutcome(campaign *models.Campaign, err error) *models.DonationOutcome {
	if campaign == nil {
		return nil
	}

	outcome := &models.DonationOutcome{
		State:    models.DonationStateEnteringAmount,
		Campaign: campaign,
	}
	switch apperror.ReasonOf(err) {
	case apperror.ReasonSelfDonation:
		outcome.Message = &models.UserMessage{
			Severity: models.SeverityError,
			Title:    "Self-Donation Restricted",
			Text:     apperror.PublicMessage(err),
		}
	case apperror.ReasonCampaignExpired:
		outcome.Message = &models.UserMessage{
			Severity: models.SeverityWarning,
			Title:    "Campaign Ended",
			Text:     apperror.PublicMessage(err),
		}
	}
	return outcome
}

func paymentMessage(err error) *models.UserMessage {
	switch apperror.ReasonOf(err) {
	case apperror.ReasonPaymentCancelled:
		return &models.UserMessage{
			Severity: models.SeverityWarning,
			Title:    "Payment Cancelled",
			Text:     apperror.PublicMessage(err),
		}
	case apperror.ReasonPaymentTimeout:
		return &models.UserMessage{
			Severity: models.SeverityError,
			Title:    "Payment Timed Out",
			Text:     apperror.PublicMessage(err),
		}
	default:
		return &models.UserMessage{
			Severity: models.SeverityError,
			Title:    "Payment Failed",
			Text:     apperror.PublicMessage(err),
		}
	}
}

func persistenceMessage(err error) *models.UserMessage {
	return &models.UserMessage{
		Severity: models.SeverityError,
		Title:    "Donation Not Fully Recorded",
		Text:     apperror.PublicMessage(err),
	}
}

func generateTxnID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TXN-" + strings.ToUpper(raw[:9])
}
