package donations

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/donations PaymentGW,EventGW

// PaymentGW captures a payment with an external provider
type PaymentGW interface {
	Capture(ctx context.Context, order models.PaymentOrder) (*models.PaymentCapture, error)
}

// EventGW publishes donation lifecycle events
type EventGW interface {
	PublishDonationCompleted(ctx context.Context, event models.DonationCompletedEvent) error
	PublishReconciliation(ctx context.Context, event models.ReconciliationEvent) error
}
