// Package apperror provides the tagged error type shared by usecases and
// handlers. Callers classify failures by Kind and Reason, never by message text.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the broad class of a failure
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindPayment       Kind = "payment"
	KindPersistence   Kind = "persistence"
)

// Reason refines a Kind
type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonCampaignExpired      Reason = "campaign_expired"
	ReasonSelfDonation         Reason = "self_donation"
	ReasonUnauthenticated      Reason = "unauthenticated"
	ReasonInvalidCredentials   Reason = "invalid_credentials"
	ReasonDuplicate            Reason = "duplicate"
	ReasonPaymentCancelled     Reason = "payment_cancelled"
	ReasonPaymentDeclined      Reason = "payment_declined"
	ReasonPaymentTimeout       Reason = "payment_timeout"
	ReasonReconciliationNeeded Reason = "reconciliation_needed"
)

// Error is a classified application error
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithReason returns a copy of e carrying reason
func (e *Error) WithReason(reason Reason) *Error {
	clone := *e
	clone.Reason = reason
	return &clone
}

// New creates an Error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind around err
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Authorization creates an authorization error
func Authorization(message string) *Error {
	return New(KindAuthorization, message)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Payment creates a payment error with a reason
func Payment(reason Reason, message string, err error) *Error {
	return &Error{Kind: KindPayment, Reason: reason, Message: message, Err: err}
}

// Persistence wraps a store failure
func Persistence(err error, message string) *Error {
	return Wrap(KindPersistence, err, message)
}

// As extracts the *Error in err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or an empty Kind when err is unclassified
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return ""
}

// ReasonOf returns the reason of err
func ReasonOf(err error) Reason {
	if appErr, ok := As(err); ok {
		return appErr.Reason
	}
	return ReasonNone
}

// Is reports whether err is classified as kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps err to the HTTP status returned to clients
func HTTPStatus(err error) int {
	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation:
		if appErr.Reason == ReasonDuplicate {
			return http.StatusConflict
		}
		return http.StatusBadRequest
	case KindAuthorization:
		if appErr.Reason == ReasonUnauthenticated || appErr.Reason == ReasonInvalidCredentials {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindPayment:
		if appErr.Reason == ReasonPaymentTimeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show to clients
func PublicMessage(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return "Internal server error"
}
