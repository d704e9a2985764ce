package stripe

import (
	"encoding/json"
	"errors"

	"pta-storefront/internal/domain/checkout"
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/pkg/errs"

	stripego "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
)

const (
	EventSessionCompleted          = "checkout.session.completed"
	EventSessionAsyncPaymentOK     = "checkout.session.async_payment_succeeded"
	EventSessionAsyncPaymentFailed = "checkout.session.async_payment_failed"
	EventPaymentIntentFailed       = "payment_intent.payment_failed"
	EventChargeRefunded            = "charge.refunded"
)

// WebhookVerifier checks the Stripe-Signature header against the endpoint
// secret and decodes the event exactly once.
type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(cfg config.StripeConfig) *WebhookVerifier {
	return &WebhookVerifier{secret: cfg.WebhookSecret}
}

func (v *WebhookVerifier) Configured() bool {
	return v.secret != ""
}

func (v *WebhookVerifier) Verify(payload []byte, signatureHeader string) (checkout.Event, error) {
	if !v.Configured() {
		return nil, checkout.ErrInvalidSignature
	}

	evt, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return nil, errs.Mark(err, checkout.ErrInvalidSignature)
		}
		return nil, errs.Mark(err, checkout.ErrMalformedEvent)
	}

	return decodeEvent(evt)
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

func decodeEvent(evt stripego.Event) (checkout.Event, error) {
	env := checkout.Envelope{ID: evt.ID, Type: string(evt.Type)}
	if evt.Data == nil {
		return checkout.Unhandled{Envelope: env}, nil
	}

	switch env.Type {
	case EventSessionCompleted, EventSessionAsyncPaymentOK:
		var s stripego.CheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &s); err != nil {
			return nil, errs.Mark(err, checkout.ErrMalformedEvent)
		}
		return checkout.Completed{Envelope: env, Session: snapshotFromSession(&s)}, nil

	case EventSessionAsyncPaymentFailed:
		var s stripego.CheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &s); err != nil {
			return nil, errs.Mark(err, checkout.ErrMalformedEvent)
		}
		return checkout.Failed{Envelope: env, Session: snapshotFromSession(&s)}, nil

	case EventPaymentIntentFailed:
		var pi stripego.PaymentIntent
		if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
			return nil, errs.Mark(err, checkout.ErrMalformedEvent)
		}
		return checkout.Failed{Envelope: env, Session: snapshotFromPaymentIntent(&pi)}, nil

	case EventChargeRefunded:
		var ch stripego.Charge
		if err := json.Unmarshal(evt.Data.Raw, &ch); err != nil {
			return nil, errs.Mark(err, checkout.ErrMalformedEvent)
		}
		return checkout.Refunded{Envelope: env, Session: snapshotFromCharge(&ch)}, nil

	default:
		return checkout.Unhandled{Envelope: env}, nil
	}
}
