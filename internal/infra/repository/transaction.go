package repository

import (
	"context"
	"encoding/json"

	"pta-storefront/internal/domain/transaction"
	"pta-storefront/internal/infra"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/pkg/pgconv"
	"pta-storefront/internal/usecase/shared"
)

type TransactionWriteQueries interface {
	UpsertTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertTransactionParams) (sqlc.UpsertTransactionRow, error)
}

type TransactionRepository struct {
	queries TransactionWriteQueries
}

func NewTransactionRepository(queries TransactionWriteQueries) *TransactionRepository {
	return &TransactionRepository{queries: queries}
}

// Upsert writes rec keyed by its reference. A redelivery carrying the status
// already stored returns Applied=false and leaves the row untouched.
func (r *TransactionRepository) Upsert(ctx context.Context, tx sqlc.DBTX, rec *transaction.Record) (shared.UpsertResult, error) {
	params, err := toUpsertParams(rec)
	if err != nil {
		return shared.UpsertResult{}, err
	}

	row, err := r.queries.UpsertTransaction(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.UpsertResult{Applied: false}, nil
		}
		return shared.UpsertResult{}, infra.WrapRepoErr("failed to upsert transaction", err)
	}

	return shared.UpsertResult{
		ID:       row.ID,
		Applied:  true,
		Inserted: row.Inserted,
	}, nil
}

func toUpsertParams(rec *transaction.Record) (sqlc.UpsertTransactionParams, error) {
	lines := rec.LineItems
	if lines == nil {
		lines = []transaction.LineItem{}
	}
	lineItems, err := json.Marshal(lines)
	if err != nil {
		return sqlc.UpsertTransactionParams{}, infra.WrapRepoErr("failed to encode line items", err, infra.KindDBFailure)
	}

	return sqlc.UpsertTransactionParams{
		UserEmail:            rec.CustomerEmail,
		CustomerName:         rec.CustomerName,
		CustomerPhone:        rec.CustomerPhone,
		AddressLine1:         rec.Billing.Line1,
		AddressLine2:         rec.Billing.Line2,
		City:                 rec.Billing.City,
		State:                rec.Billing.State,
		PostalCode:           rec.Billing.PostalCode,
		Country:              rec.Billing.Country,
		TransactionReference: rec.Reference,
		CheckoutSessionID:    rec.CheckoutSessionID,
		TotalAmount:          pgconv.NumericFromDecimal(rec.Total),
		Subtotal:             pgconv.NumericFromDecimal(rec.Subtotal),
		Currency:             rec.Currency,
		PaymentStatus:        rec.Status.String(),
		LineItems:            lineItems,
	}, nil
}
