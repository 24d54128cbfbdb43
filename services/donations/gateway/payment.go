package gateway

import (
	"strings"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/circuitbreaker"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/donations"
)

// Payment providers
const (
	ProviderMidtrans  = "midtrans"
	ProviderSimulated = "simulated"
)

// NewPaymentGW builds the configured payment provider behind the breaker
func NewPaymentGW(cfg models.PaymentConfig, zapLogger *logger.ZapLogger) *GuardedGW {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}

	var provider donations.PaymentGW
	switch strings.ToLower(cfg.Provider) {
	case ProviderMidtrans:
		provider = NewMidtransGW(cfg)
	default:
		provider = NewSimulatedGW()
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	breakerCfg := circuitbreaker.DefaultConfig("payment-" + strings.ToLower(cfg.Provider))
	breakerCfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		zapLogger.Warn("Payment circuit breaker state changed",
			logger.String("breaker", name),
			logger.String("from", from.String()),
			logger.String("to", to.String()))
	}

	zapLogger.Info("Payment provider configured",
		logger.String("provider", cfg.Provider),
		logger.Duration("timeout", timeout))

	return NewGuardedGW(provider, breakerCfg, timeout, zapLogger)
}
