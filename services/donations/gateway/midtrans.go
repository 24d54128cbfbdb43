package gateway

import (
	"context"
	"strings"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	nrpkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/newrelic"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

const (
	midtransSandboxChargeURL    = "https://api.sandbox.midtrans.com/v2/charge"
	midtransProductionChargeURL = "https://api.midtrans.com/v2/charge"
)

// chargeClient is the part of coreapi.Client used for card charges
type chargeClient interface {
	ChargeTransaction(req *coreapi.ChargeReq) (*coreapi.ChargeResponse, *midtrans.Error)
}

// MidtransGW captures card payments through the Midtrans Core API
type MidtransGW struct {
	client    chargeClient
	chargeURL string
}

// NewMidtransGW creates a Midtrans Core API gateway
func NewMidtransGW(cfg models.PaymentConfig) *MidtransGW {
	env := midtrans.Sandbox
	chargeURL := midtransSandboxChargeURL
	if strings.EqualFold(cfg.MidtransEnv, "production") {
		env = midtrans.Production
		chargeURL = midtransProductionChargeURL
	}

	client := &coreapi.Client{}
	client.New(cfg.MidtransServerKey, env)

	return &MidtransGW{
		client:    client,
		chargeURL: chargeURL,
	}
}

// Capture charges the card token on the order. Midtrans settles in whole
// currency units, so amounts with a fractional part are refused.
func (g *MidtransGW) Capture(ctx context.Context, order models.PaymentOrder) (*models.PaymentCapture, error) {
	if order.Amount%100 != 0 {
		return nil, apperror.Payment(apperror.ReasonPaymentDeclined,
			"This payment method accepts whole amounts only.", nil)
	}
	if strings.TrimSpace(order.Token) == "" {
		return nil, apperror.Payment(apperror.ReasonPaymentDeclined,
			"Card details are missing. Please enter your card again.", nil)
	}

	grossAmount := order.Amount / 100
	req := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeCreditCard,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderID,
			GrossAmt: grossAmount,
		},
		CreditCard: &coreapi.CreditCardDetails{
			TokenID: order.Token,
		},
		CustomerDetails: &midtrans.CustomerDetails{
			FName: order.DonorName,
			Email: order.DonorEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    order.OrderID,
				Name:  truncate(order.Description, 50),
				Price: grossAmount,
				Qty:   1,
			},
		},
	}

	var resp *coreapi.ChargeResponse
	err := nrpkg.WithExternalSegment(ctx, "midtrans", "ChargeTransaction", g.chargeURL, func() error {
		var chargeErr *midtrans.Error
		resp, chargeErr = g.client.ChargeTransaction(req)
		if chargeErr != nil {
			return chargeFailure(chargeErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return captureFromResponse(resp)
}

// chargeFailure maps a Core API error. 4xx answers are about the card or the
// request and count as declines. Anything else is an outage on the provider
// side, including a zero status from a transport failure.
func chargeFailure(chargeErr *midtrans.Error) error {
	if chargeErr.StatusCode >= 400 && chargeErr.StatusCode < 500 {
		return apperror.Payment(apperror.ReasonPaymentDeclined,
			"An error occurred during payment capture.", chargeErr)
	}
	return apperror.Payment(apperror.ReasonNone,
		"An error occurred during payment capture.", chargeErr)
}

func captureFromResponse(resp *coreapi.ChargeResponse) (*models.PaymentCapture, error) {
	if resp == nil {
		return nil, apperror.Payment(apperror.ReasonNone, "An error occurred during payment capture.", nil)
	}

	status := strings.ToLower(resp.TransactionStatus)
	switch status {
	case "capture", "settlement":
		if strings.EqualFold(resp.FraudStatus, "deny") {
			return nil, apperror.Payment(apperror.ReasonPaymentDeclined, "Transaction was declined.", nil)
		}
		return &models.PaymentCapture{
			TransactionID: resp.TransactionID,
			Status:        status,
		}, nil
	case "deny":
		return nil, apperror.Payment(apperror.ReasonPaymentDeclined, "Transaction was declined.", nil)
	case "cancel", "expire":
		return nil, apperror.Payment(apperror.ReasonPaymentCancelled,
			"Payment was cancelled. You can try again whenever you are ready.", nil)
	case "pending":
		return nil, apperror.Payment(apperror.ReasonPaymentDeclined,
			"Payment is still pending confirmation and was not completed.", nil)
	default:
		return nil, apperror.Payment(apperror.ReasonNone, "An error occurred during payment capture.", nil)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
