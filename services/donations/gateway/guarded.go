package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/circuitbreaker"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/donations"
)

// GuardedGW wraps a payment provider with a circuit breaker and a timeout
type GuardedGW struct {
	provider donations.PaymentGW
	breaker  *circuitbreaker.CircuitBreaker
	timeout  time.Duration
}

// NewGuardedGW wraps provider. Declines and cancellations are donor outcomes
// and do not count against the breaker.
func NewGuardedGW(provider donations.PaymentGW, cfg circuitbreaker.Config, timeout time.Duration, zapLogger *logger.ZapLogger) *GuardedGW {
	cfg.IsFailure = isProviderFailure
	return &GuardedGW{
		provider: provider,
		breaker:  circuitbreaker.New(cfg, zapLogger),
		timeout:  timeout,
	}
}

// Capture runs the provider capture through the breaker. A provider that
// ignores its context is abandoned once the timeout passes.
func (g *GuardedGW) Capture(ctx context.Context, order models.PaymentOrder) (*models.PaymentCapture, error) {
	var capture *models.PaymentCapture

	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		if g.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}

		type result struct {
			capture *models.PaymentCapture
			err     error
		}
		done := make(chan result, 1)
		go func() {
			c, err := g.provider.Capture(ctx, order)
			done <- result{capture: c, err: err}
		}()

		select {
		case <-ctx.Done():
			return apperror.Payment(apperror.ReasonPaymentTimeout,
				"The payment session has expired. Please try again.", ctx.Err())
		case r := <-done:
			capture = r.capture
			return r.err
		}
	})

	if errors.Is(err, circuitbreaker.ErrOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return nil, apperror.Payment(apperror.ReasonNone,
			"Payments are temporarily unavailable. Please try again in a few minutes.", err)
	}
	if err != nil {
		return nil, err
	}
	return capture, nil
}

// State exposes the breaker state for health reporting
func (g *GuardedGW) State() circuitbreaker.State {
	return g.breaker.State()
}

func isProviderFailure(err error) bool {
	if err == nil {
		return false
	}
	switch apperror.ReasonOf(err) {
	case apperror.ReasonPaymentDeclined, apperror.ReasonPaymentCancelled:
		return false
	}
	return true
}
