package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"pta-storefront/internal/domain/checkout"
	"pta-storefront/internal/domain/transaction"
	"pta-storefront/internal/infra"
	"pta-storefront/internal/pkg/clock"
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobKindEmail           = "email"
	TopicOrderConfirmation = "order_confirmation"
)

var ErrRecordFailed = errs.New("failed to record transaction")

// RecordOutcome describes what a single delivery did to the store.
// Applied is false for a redelivery of an already recorded status.
type RecordOutcome struct {
	TransactionID uuid.UUID
	Reference     string
	Applied       bool
	Inserted      bool
	Notified      bool
}

type OrderRecorder interface {
	RecordSuccess(ctx context.Context, snap checkout.SessionSnapshot) (*RecordOutcome, error)
	RecordFailure(ctx context.Context, snap checkout.SessionSnapshot) (*RecordOutcome, error)
	RecordRefund(ctx context.Context, snap checkout.SessionSnapshot) (*RecordOutcome, error)
}

type orderRecorderImpl struct {
	uow        shared.UnitOfWork
	gateway    shared.CheckoutGateway
	dispatcher NotificationDispatcher
	clock      clock.Clock
	site       config.SiteConfig
}

func NewOrderRecorder(uow shared.UnitOfWork, gateway shared.CheckoutGateway, dispatcher NotificationDispatcher, clk clock.Clock, cfg config.Config) OrderRecorder {
	return &orderRecorderImpl{
		uow:        uow,
		gateway:    gateway,
		dispatcher: dispatcher,
		clock:      clk,
		site:       cfg.Site,
	}
}

// RecordSuccess prefers the gateway's current view of the session and falls
// back to the webhook payload when the re-fetch fails.
func (r *orderRecorderImpl) RecordSuccess(ctx context.Context, snap checkout.SessionSnapshot) (*RecordOutcome, error) {
	merged := snap
	if snap.SessionID != "" {
		fetched, err := r.gateway.RetrieveSession(ctx, snap.SessionID)
		if err != nil {
			slog.Warn("session re-fetch failed, using webhook payload",
				"checkout_session_id", snap.SessionID,
				"error", err.Error())
		} else {
			merged = fetched.FillFrom(snap)
		}
	}

	// a completed session with a delayed payment method stays pending until
	// the async success event arrives
	status := transaction.StatusSucceeded
	if !merged.IsPaid() {
		status = transaction.StatusPending
	}
	rec, err := transaction.FromSnapshot(merged, status)
	if err != nil {
		return nil, err
	}
	return r.persist(ctx, rec, status == transaction.StatusSucceeded)
}

func (r *orderRecorderImpl) RecordFailure(ctx context.Context, snap checkout.SessionSnapshot) (*RecordOutcome, error) {
	rec, err := transaction.FromSnapshot(snap, transaction.StatusFailed)
	if err != nil {
		return nil, err
	}
	return r.persist(ctx, rec, false)
}

func (r *orderRecorderImpl) RecordRefund(ctx context.Context, snap checkout.SessionSnapshot) (*RecordOutcome, error) {
	rec, err := transaction.FromSnapshot(snap, transaction.StatusRefunded)
	if err != nil {
		return nil, err
	}
	return r.persist(ctx, rec, false)
}

func (r *orderRecorderImpl) persist(ctx context.Context, rec *transaction.Record, notify bool) (*RecordOutcome, error) {
	outcome := &RecordOutcome{Reference: rec.Reference}
	var (
		jobID *uuid.UUID
		msg   shared.OrderConfirmation
	)

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// reset per attempt, Within may retry
		jobID = nil
		outcome.Applied, outcome.Inserted = false, false

		res, err := tx.Transactions().Upsert(ctx, tx.DB(), rec)
		if err != nil {
			return err
		}
		outcome.TransactionID = res.ID
		outcome.Applied = res.Applied
		outcome.Inserted = res.Inserted

		if !res.Applied || !notify || !rec.HasEmail() {
			return nil
		}

		msg = r.confirmation(rec)
		payload, err := json.Marshal(msg)
		if err != nil {
			return errs.Wrap(err, "encode confirmation payload")
		}
		id, err := tx.Notifications().CreateJob(ctx, tx.DB(), JobKindEmail, TopicOrderConfirmation, payload, r.clock.Now())
		if err != nil {
			return err
		}
		jobID = &id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// a concurrent delivery won the insert
			slog.Info("transaction already recorded", "reference", rec.Reference)
			return &RecordOutcome{Reference: rec.Reference}, nil
		}
		return nil, errs.Mark(errs.Wrap(err, "persist transaction"), ErrRecordFailed)
	}

	if !outcome.Applied {
		slog.Info("duplicate delivery ignored",
			"reference", rec.Reference,
			"payment_status", rec.Status.String())
		return outcome, nil
	}

	slog.Info("transaction recorded",
		"transaction_id", outcome.TransactionID,
		"reference", rec.Reference,
		"payment_status", rec.Status.String(),
		"inserted", outcome.Inserted)

	if jobID != nil {
		outcome.Notified = r.dispatcher.Dispatch(ctx, *jobID, msg) == nil
	}
	return outcome, nil
}

func (r *orderRecorderImpl) confirmation(rec *transaction.Record) shared.OrderConfirmation {
	msg := shared.OrderConfirmation{
		SiteName:             r.site.Name,
		SiteURL:              r.site.URL,
		CustomerName:         rec.CustomerName,
		CustomerEmail:        rec.CustomerEmail,
		TransactionReference: rec.Reference,
		Currency:             rec.Currency,
		Total:                rec.Total,
		Lines:                make([]shared.OrderLine, 0, len(rec.LineItems)),
	}
	for _, li := range rec.LineItems {
		msg.Lines = append(msg.Lines, shared.OrderLine{
			Name:     li.Name,
			Quantity: li.Quantity,
			Amount:   li.Amount,
		})
	}
	return msg
}
