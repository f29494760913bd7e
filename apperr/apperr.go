// Package apperr classifies domain errors and maps them to HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error classes.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrConfiguration = errors.New("configuration error")
	ErrGateway       = errors.New("gateway error")
)

var (
	ErrSubtotalMismatch    = fmt.Errorf("subtotal mismatch: %w", ErrValidation)
	ErrTotalMismatch       = fmt.Errorf("total mismatch: %w", ErrValidation)
	ErrOrderIDRequired     = fmt.Errorf("order_id required: %w", ErrValidation)
	ErrUnsupportedLocation = fmt.Errorf("unsupported city or hub: %w", ErrNotFound)
	ErrOrderNotFound       = fmt.Errorf("order not found: %w", ErrNotFound)
	ErrStorageUnavailable  = fmt.Errorf("database not configured: %w", ErrConfiguration)
)

// GatewayError is an explicit failure reported by the payment gateway.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string { return "Paystack error: " + e.Message }

func (e *GatewayError) Is(target error) bool { return target == ErrGateway }

// Validation wraps a free-form validation message so it classifies as ErrValidation.
func Validation(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct{ msg string }

func (e *validationError) Error() string        { return e.msg }
func (e *validationError) Is(target error) bool { return target == ErrValidation }

// Message returns the client-facing text for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSubtotalMismatch):
		return "Subtotal mismatch"
	case errors.Is(err, ErrTotalMismatch):
		return "Total mismatch"
	case errors.Is(err, ErrOrderIDRequired):
		return "order_id required"
	case errors.Is(err, ErrUnsupportedLocation):
		return "Unsupported city or hub"
	case errors.Is(err, ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, ErrStorageUnavailable):
		return "Database not configured"
	}
	return err.Error()
}

func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrGateway):
		return "gateway"
	default:
		return "internal"
	}
}

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrUnsupportedLocation):
		return http.StatusBadRequest

	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrConfiguration):
		return http.StatusInternalServerError

	case errors.Is(err, ErrGateway):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
