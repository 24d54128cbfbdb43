package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/constants"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	natspkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/nats"
	nrpkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/newrelic"
)

// EventGW publishes donation events to JetStream
type EventGW struct {
	natsClient *natspkg.Client
}

// NewEventGW creates a new JetStream event gateway
func NewEventGW(client *natspkg.Client) *EventGW {
	return &EventGW{
		natsClient: client,
	}
}

// PublishDonationCompleted publishes a donation.completed event
func (g *EventGW) PublishDonationCompleted(ctx context.Context, event models.DonationCompletedEvent) error {
	return g.publish(ctx, constants.SubjectDonationCompleted, event)
}

// PublishReconciliation publishes a donation.reconciliation_required event
func (g *EventGW) PublishReconciliation(ctx context.Context, event models.ReconciliationEvent) error {
	return g.publish(ctx, constants.SubjectDonationReconciliation, event)
}

func (g *EventGW) publish(ctx context.Context, subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}

	return nrpkg.WithMessageProducerSegment(ctx, subject, func() error {
		if err := g.natsClient.Publish(ctx, subject, data); err != nil {
			return fmt.Errorf("failed to publish %s event: %w", subject, err)
		}
		return nil
	})
}
