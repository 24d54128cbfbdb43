package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_WrappedError(t *testing.T) {
	base := NotFound("campaign not found")
	wrapped := fmt.Errorf("lookup failed: %w", base)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindValidation))
}

func TestKindOf_PlainError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, Kind(""), KindOf(err))
	assert.Equal(t, ReasonNone, ReasonOf(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, "Internal server error", PublicMessage(err))
}

func TestWithReason_DoesNotMutateOriginal(t *testing.T) {
	base := Validation("bad input")
	expired := base.WithReason(ReasonCampaignExpired)

	assert.Equal(t, ReasonNone, base.Reason)
	assert.Equal(t, ReasonCampaignExpired, expired.Reason)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence(cause, "failed to save donation")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("x"), http.StatusBadRequest},
		{"duplicate", Validation("x").WithReason(ReasonDuplicate), http.StatusConflict},
		{"forbidden", Authorization("x").WithReason(ReasonSelfDonation), http.StatusForbidden},
		{"unauthenticated", Authorization("x").WithReason(ReasonUnauthenticated), http.StatusUnauthorized},
		{"not found", NotFound("x"), http.StatusNotFound},
		{"payment", Payment(ReasonPaymentDeclined, "x", nil), http.StatusPaymentRequired},
		{"payment timeout", Payment(ReasonPaymentTimeout, "x", nil), http.StatusGatewayTimeout},
		{"persistence", Persistence(errors.New("db"), "x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
