package commands

import (
	"context"
	"log/slog"

	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

var ErrNotificationFailed = errs.Mark(errs.New("order confirmation could not be sent"), errs.ErrNotification)

// NotificationDispatcher delivers a queued confirmation and records the
// result on its job row.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, jobID uuid.UUID, msg shared.OrderConfirmation) error
}

type notificationDispatcherImpl struct {
	uow    shared.UnitOfWork
	mailer shared.OrderMailer
}

func NewNotificationDispatcher(uow shared.UnitOfWork, mailer shared.OrderMailer) NotificationDispatcher {
	return &notificationDispatcherImpl{
		uow:    uow,
		mailer: mailer,
	}
}

func (d *notificationDispatcherImpl) Dispatch(ctx context.Context, jobID uuid.UUID, msg shared.OrderConfirmation) error {
	sendErr := d.mailer.SendOrderConfirmation(ctx, msg)

	status := JobStatusSent
	var lastError *string
	if sendErr != nil {
		status = JobStatusFailed
		detail := sendErr.Error()
		lastError = &detail
		slog.Error("order confirmation email failed",
			"job_id", jobID,
			"reference", msg.TransactionReference,
			"error", detail)
	}

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), jobID, status, lastError)
	})
	if err != nil {
		slog.Warn("failed to update notification job", "job_id", jobID, "status", status, "error", err.Error())
	}

	if sendErr != nil {
		return errs.Mark(sendErr, ErrNotificationFailed)
	}
	slog.Info("order confirmation sent", "job_id", jobID, "reference", msg.TransactionReference)
	return nil
}
