// Package payment initiates and verifies payments against an external
// gateway, falling back to a simulated flow when no gateway is configured.
package payment

import (
	"context"
	"errors"
)

// ErrTransport marks gateway calls that failed before a usable response
// was decoded: dial errors, timeouts, or an unreadable body.
var ErrTransport = errors.New("gateway transport failure")

type InitializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
	Currency  string `json:"currency"`
}

type InitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type VerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

// Gateway is the remote payment processor.
type Gateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (InitializeResponse, error)
	Verify(ctx context.Context, reference string) (VerifyResponse, error)
}
