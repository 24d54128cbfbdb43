package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/constants"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	natspkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/nats"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity"
	"github.com/nats-io/nats.go/jetstream"
)

const handleTimeout = 10 * time.Second

// ActivityHandler consumes donation events into the activity feed
type ActivityHandler struct {
	activityUC activity.ActivityUC
	natsClient *natspkg.Client
}

// NewActivityHandler creates a new activity NATS handler
func NewActivityHandler(activityUC activity.ActivityUC, client *natspkg.Client) *ActivityHandler {
	return &ActivityHandler{
		activityUC: activityUC,
		natsClient: client,
	}
}

// InitNATSConsumers creates the durable consumers and starts consuming
func (h *ActivityHandler) InitNATSConsumers(ctx context.Context) error {
	consumers := []struct {
		name    string
		handler natspkg.JetStreamMessageHandler
	}{
		{constants.ConsumerDonationCompletedActivity, h.handleDonationCompleted},
		{constants.ConsumerReconciliationAudit, h.handleReconciliation},
	}

	configs := natspkg.DefaultConsumerConfigs()
	for _, c := range consumers {
		cfg, ok := configs[c.name]
		if !ok {
			return fmt.Errorf("missing consumer config %s", c.name)
		}

		if err := h.natsClient.CreateConsumer(ctx, cfg); err != nil {
			return err
		}

		if err := h.natsClient.ConsumeMessages(cfg.StreamName, cfg.ConsumerName, c.handler); err != nil {
			return fmt.Errorf("failed to consume %s: %w", cfg.FilterSubject, err)
		}

		logger.Info("Activity consumer started",
			logger.String("stream", cfg.StreamName),
			logger.String("consumer", cfg.ConsumerName))
	}
	return nil
}

func (h *ActivityHandler) handleDonationCompleted(msg jetstream.Msg) error {
	var event models.DonationCompletedEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		// redelivery cannot fix a malformed payload
		logger.Error("Dropping malformed donation completed event", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := h.activityUC.RecordDonation(ctx, event); err != nil {
		if apperror.Is(err, apperror.KindValidation) {
			logger.Warn("Dropping invalid donation completed event",
				logger.TransactionID(event.TransactionID),
				logger.Err(err))
			return nil
		}
		return fmt.Errorf("failed to record activity for %s: %w", event.TransactionID, err)
	}
	return nil
}

// handleReconciliation records captured payments the ledger failed to book.
// The log line is the audit trail operators reconcile from.
func (h *ActivityHandler) handleReconciliation(msg jetstream.Msg) error {
	var event models.ReconciliationEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error("Dropping malformed reconciliation event", logger.Err(err))
		return nil
	}

	logger.Error("Captured donation needs manual reconciliation",
		logger.TransactionID(event.TransactionID),
		logger.String("campaign_id", event.CampaignID.String()),
		logger.String("donor_id", event.DonorID.String()),
		logger.Int64("amount", event.Amount),
		logger.String("reason", event.Reason),
		logger.String("cause", event.Error))
	return nil
}
