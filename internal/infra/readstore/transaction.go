package readstore

import (
	"context"
	"encoding/json"

	"pta-storefront/internal/domain/transaction"
	"pta-storefront/internal/infra"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/pkg/pgconv"
	"pta-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionReadQueries interface {
	GetTransactionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Transactions, error)
	ListTransactions(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionsParams) ([]sqlc.Transactions, error)
}

type TransactionReadStore struct {
	queries TransactionReadQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionReadQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	row, err := r.queries.GetTransactionByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get transaction by id", err)
	}
	return toTransactionView(row)
}

// List pages newest first. A nil after starts from the top.
func (r *TransactionReadStore) List(ctx context.Context, status string, after *queries.Keyset, limit int32) ([]queries.TransactionListItem, error) {
	params := sqlc.ListTransactionsParams{
		Status:   pgconv.TextFromString(status),
		RowLimit: limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgtype.UUID{Bytes: after.ID, Valid: true}
	}

	rows, err := r.queries.ListTransactions(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}

	items := make([]queries.TransactionListItem, 0, len(rows))
	for _, row := range rows {
		total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid transaction total", err, infra.KindDBFailure)
		}
		items = append(items, queries.TransactionListItem{
			ID:                   row.ID,
			TransactionReference: row.TransactionReference,
			UserEmail:            row.UserEmail,
			CustomerName:         row.CustomerName,
			TotalAmount:          total,
			Currency:             row.Currency,
			PaymentStatus:        row.PaymentStatus,
			CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func toTransactionView(row sqlc.Transactions) (*queries.TransactionView, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid transaction total", err, infra.KindDBFailure)
	}
	subtotal, err := pgconv.DecimalFromNumeric(row.Subtotal)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid transaction subtotal", err, infra.KindDBFailure)
	}

	var stored []transaction.LineItem
	if len(row.LineItems) > 0 {
		if err := json.Unmarshal(row.LineItems, &stored); err != nil {
			return nil, infra.WrapRepoErr("invalid transaction line items", err, infra.KindDBFailure)
		}
	}
	lines := make([]queries.TransactionLineView, 0, len(stored))
	for _, li := range stored {
		lines = append(lines, queries.TransactionLineView{Name: li.Name, Quantity: li.Quantity, Amount: li.Amount})
	}

	return &queries.TransactionView{
		ID:                   row.ID,
		TransactionReference: row.TransactionReference,
		CheckoutSessionID:    row.CheckoutSessionID,
		UserEmail:            row.UserEmail,
		CustomerName:         row.CustomerName,
		CustomerPhone:        row.CustomerPhone,
		AddressLine1:         row.AddressLine1,
		AddressLine2:         row.AddressLine2,
		City:                 row.City,
		State:                row.State,
		PostalCode:           row.PostalCode,
		Country:              row.Country,
		TotalAmount:          total,
		Subtotal:             subtotal,
		Currency:             row.Currency,
		PaymentStatus:        row.PaymentStatus,
		LineItems:            lines,
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:            pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
