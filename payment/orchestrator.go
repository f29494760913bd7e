package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"horion-farms/api/apperr"
	"horion-farms/api/config"
	"horion-farms/api/events"
	"horion-farms/api/models"
	"horion-farms/api/store"
)

const referencePrefix = "HF-"

// Reference is the deterministic payment reference for an order.
func Reference(orderID string) string {
	return referencePrefix + orderID
}

// Orchestrator decides between live, simulated and manual payment flows.
type Orchestrator struct {
	cfg       config.PaymentConfig
	store     store.Store
	gateway   Gateway
	publisher events.Publisher
}

// NewOrchestrator builds an orchestrator. A nil gateway means simulated
// mode; a nil store makes Init fail with apperr.ErrStorageUnavailable.
func NewOrchestrator(cfg config.PaymentConfig, st store.Store, gw Gateway, pub events.Publisher) *Orchestrator {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Orchestrator{cfg: cfg, store: st, gateway: gw, publisher: pub}
}

// NewGateway returns the live gateway for cfg, or nil in simulated mode.
func NewGateway(cfg config.PaymentConfig) Gateway {
	if cfg.Mode != config.GatewayLive {
		return nil
	}
	return NewPaystack(cfg.BaseURL, cfg.SecretKey, cfg.Timeout)
}

func (o *Orchestrator) Init(ctx context.Context, orderID string, method models.PaymentMethod) (models.PaymentInitResult, error) {
	if orderID == "" {
		return models.PaymentInitResult{}, apperr.ErrOrderIDRequired
	}
	switch method {
	case "":
		method = models.PaymentMethodCard
	case models.PaymentMethodCard, models.PaymentMethodBankTransfer:
	default:
		return models.PaymentInitResult{}, apperr.Validation(fmt.Sprintf("unsupported payment_method %q", method))
	}

	if o.store == nil {
		return models.PaymentInitResult{}, apperr.ErrStorageUnavailable
	}

	var order models.Order
	if err := o.store.FindOne(ctx, models.OrderCollection, orderID, &order); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PaymentInitResult{}, apperr.ErrOrderNotFound
		}
		return models.PaymentInitResult{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	reference := Reference(orderID)
	email := order.Customer.Email
	if email == "" {
		email = o.cfg.FallbackEmail
	}

	result, err := o.initResult(ctx, reference, email, order.Total, method)
	if err != nil {
		return models.PaymentInitResult{}, err
	}

	o.publish(ctx, events.Event{
		Name:      events.PaymentInitialized,
		OrderID:   orderID,
		Reference: reference,
		Fields: map[string]any{
			"mode":   result.Mode,
			"method": result.PaymentMethod,
			"amount": order.Total,
		},
	})
	return result, nil
}

func (o *Orchestrator) initResult(ctx context.Context, reference, email string, total float64, method models.PaymentMethod) (models.PaymentInitResult, error) {
	if method == models.PaymentMethodBankTransfer && o.cfg.Bank.Configured() {
		return o.manual(reference, total), nil
	}

	if o.gateway != nil {
		resp, err := o.gateway.Initialize(ctx, InitializeRequest{
			Email:     email,
			Amount:    int64(math.Round(total * 100)),
			Reference: reference,
			Currency:  o.cfg.Currency,
		})
		switch {
		case err != nil && errors.Is(err, ErrTransport) && o.cfg.FallbackOnTransportError:
			slog.Warn("payment gateway unreachable, using simulated checkout",
				"reference", reference, "err", err)
		case err != nil:
			return models.PaymentInitResult{}, &apperr.GatewayError{Message: err.Error()}
		case !resp.Status:
			return models.PaymentInitResult{}, &apperr.GatewayError{Message: resp.Message}
		default:
			authURL := resp.Data.AuthorizationURL
			return models.PaymentInitResult{
				Mode:             models.PaymentModeLive,
				Reference:        reference,
				PaymentMethod:    method,
				AuthorizationURL: &authURL,
			}, nil
		}
	}

	authURL := o.cfg.CheckoutBaseURL + reference
	return models.PaymentInitResult{
		Mode:             models.PaymentModeSimulated,
		Reference:        reference,
		PaymentMethod:    method,
		AuthorizationURL: &authURL,
	}, nil
}

func (o *Orchestrator) manual(reference string, total float64) models.PaymentInitResult {
	b := o.cfg.Bank
	instructions := fmt.Sprintf("Transfer %s %.2f to %s (%s, %s) using %s as the narration.",
		o.cfg.Currency, total, b.AccountNumber, b.AccountName, b.BankName, reference)
	return models.PaymentInitResult{
		Mode:          models.PaymentModeManual,
		Reference:     reference,
		PaymentMethod: models.PaymentMethodBankTransfer,
		AccountNumber: &b.AccountNumber,
		AccountName:   &b.AccountName,
		BankName:      &b.BankName,
		Instructions:  &instructions,
	}
}

// Verify reports whether the payment for reference succeeded. It never
// fails: gateway outcomes other than success map to a failed result, and
// simulated mode always reports success. The stored order is not updated.
func (o *Orchestrator) Verify(ctx context.Context, reference string) models.PaymentVerifyResult {
	result := o.verifyResult(ctx, reference)
	o.publish(ctx, events.Event{
		Name:      events.PaymentVerified,
		Reference: reference,
		Fields:    map[string]any{"status": result.Status, "paid": result.Paid},
	})
	return result
}

func (o *Orchestrator) verifyResult(ctx context.Context, reference string) models.PaymentVerifyResult {
	if o.gateway != nil {
		resp, err := o.gateway.Verify(ctx, reference)
		switch {
		case err != nil && o.cfg.FallbackOnTransportError:
			slog.Warn("payment gateway unreachable, simulating verification",
				"reference", reference, "err", err)
		case err != nil:
			slog.Error("payment verification failed", "reference", reference, "err", err)
			return failed(reference)
		case resp.Status && resp.Data.Status == string(models.PaymentStatusSuccess):
			return paid(reference)
		default:
			return failed(reference)
		}
	}
	return paid(reference)
}

func paid(reference string) models.PaymentVerifyResult {
	return models.PaymentVerifyResult{
		Status:      models.PaymentStatusSuccess,
		OrderStatus: models.OrderStatusPaid,
		Reference:   reference,
		Paid:        true,
	}
}

func failed(reference string) models.PaymentVerifyResult {
	return models.PaymentVerifyResult{
		Status:      models.PaymentStatusFailed,
		OrderStatus: models.OrderStatusFailed,
		Reference:   reference,
		Paid:        false,
	}
}

func (o *Orchestrator) publish(ctx context.Context, e events.Event) {
	if err := o.publisher.Publish(ctx, e); err != nil {
		slog.Warn("event publish failed", "event", e.Name, "err", err)
	}
}
