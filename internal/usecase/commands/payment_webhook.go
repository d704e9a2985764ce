package commands

import (
	"context"
	"log/slog"

	"pta-storefront/internal/domain/checkout"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/shared"
)

var (
	ErrEmptyPayload         = errs.Mark(errs.New("webhook payload is empty"), errs.ErrSecurity)
	ErrMissingSignature     = errs.Mark(errs.New("webhook signature header is missing"), errs.ErrSecurity)
	ErrWebhookSecretMissing = errs.Mark(errs.New("webhook secret is not configured"), errs.ErrSecurity)
)

const (
	WebhookRecorded  = "recorded"
	WebhookDuplicate = "duplicate"
	WebhookIgnored   = "ignored"
	WebhookFailed    = "failed"
)

type WebhookResult struct {
	EventID   string
	EventType string
	Outcome   string
}

type PaymentWebhookCommands interface {
	// Handle returns an error only when the delivery fails verification.
	// Anything that goes wrong after that is logged.
	Handle(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

type paymentWebhookImpl struct {
	verifier shared.WebhookVerifier
	recorder OrderRecorder
}

func NewPaymentWebhookCommands(verifier shared.WebhookVerifier, recorder OrderRecorder) PaymentWebhookCommands {
	return &paymentWebhookImpl{
		verifier: verifier,
		recorder: recorder,
	}
}

func (uc *paymentWebhookImpl) Handle(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if signature == "" {
		return nil, ErrMissingSignature
	}
	if !uc.verifier.Configured() {
		return nil, ErrWebhookSecretMissing
	}

	evt, err := uc.verifier.Verify(payload, signature)
	if err != nil {
		return nil, err
	}

	slog.Info("webhook received", "event_id", evt.EventID(), "event_type", evt.EventType())

	result := &WebhookResult{
		EventID:   evt.EventID(),
		EventType: evt.EventType(),
		Outcome:   WebhookIgnored,
	}

	var (
		outcome   *RecordOutcome
		recordErr error
	)
	switch e := evt.(type) {
	case checkout.Completed:
		outcome, recordErr = uc.recorder.RecordSuccess(ctx, e.Session)
	case checkout.Failed:
		outcome, recordErr = uc.recorder.RecordFailure(ctx, e.Session)
	case checkout.Refunded:
		outcome, recordErr = uc.recorder.RecordRefund(ctx, e.Session)
	default:
		return result, nil
	}

	switch {
	case recordErr != nil:
		slog.Error("webhook processing failed",
			"event_id", evt.EventID(),
			"event_type", evt.EventType(),
			"error", recordErr.Error())
		result.Outcome = WebhookFailed
	case outcome.Applied:
		result.Outcome = WebhookRecorded
	default:
		result.Outcome = WebhookDuplicate
	}
	return result, nil
}
