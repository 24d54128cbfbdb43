package gateway

import (
	"context"
	"strings"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

// Simulated payment tokens
const (
	SimTokenSuccess = "sim-success"
	SimTokenDecline = "sim-decline"
	SimTokenCancel  = "sim-cancel"
	SimTokenTimeout = "sim-timeout"
)

// SimulatedGW is a payment provider for local and demo environments. The
// outcome is chosen by the order token; unknown tokens succeed.
type SimulatedGW struct{}

// NewSimulatedGW creates a simulated payment gateway
func NewSimulatedGW() *SimulatedGW {
	return &SimulatedGW{}
}

// Capture simulates a card capture
func (g *SimulatedGW) Capture(ctx context.Context, order models.PaymentOrder) (*models.PaymentCapture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.TrimSpace(order.Token) {
	case SimTokenDecline:
		return nil, apperror.Payment(apperror.ReasonPaymentDeclined,
			"Simulated Card Payment Failure: Transaction was declined.", nil)
	case SimTokenCancel:
		return nil, apperror.Payment(apperror.ReasonPaymentCancelled,
			"Payment was cancelled. You can try again whenever you are ready.", nil)
	case SimTokenTimeout:
		return nil, apperror.Payment(apperror.ReasonPaymentTimeout,
			"Simulated Card Timeout: The session has expired.", nil)
	}

	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return &models.PaymentCapture{
		TransactionID: "SIM-P-" + suffix,
		Status:        "capture",
	}, nil
}
