package queries

import (
	"context"

	"pta-storefront/internal/domain/transaction"
	"pta-storefront/internal/infra"
	"pta-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type TransactionFilter struct {
	Status string
}

type TransactionPage struct {
	Items      []TransactionListItem
	NextCursor *string
}

type TransactionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	List(ctx context.Context, filter TransactionFilter, cursor *Cursor, limit int) (*TransactionPage, error)
}

type TransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	List(ctx context.Context, status string, after *Keyset, limit int32) ([]TransactionListItem, error)
}

type transactionQueriesImpl struct {
	readStore TransactionReadStore
}

func NewTransactionQueries(readStore TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{readStore: readStore}
}

func (q *transactionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TransactionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, transaction.ErrTransactionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *transactionQueriesImpl) List(ctx context.Context, filter TransactionFilter, cursor *Cursor, limit int) (*TransactionPage, error) {
	limit = ValidateLimit(limit)

	if filter.Status != "" {
		if _, err := transaction.ParsePaymentStatus(filter.Status); err != nil {
			return nil, err
		}
	}

	var after *Keyset
	if cursor != nil && cursor.After != "" {
		createdAt, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCursor)
		}
		after = &Keyset{CreatedAt: createdAt, ID: id}
	}

	// fetch one extra row to detect the next page
	rows, err := q.readStore.List(ctx, filter.Status, after, int32(limit+1)) // #nosec G115 -- bounded by ValidateLimit
	if err != nil {
		return nil, err
	}

	page := &TransactionPage{Items: rows}
	if len(rows) > limit {
		last := rows[limit-1]
		next := EncodeAfterCursor(last.CreatedAt, last.ID)
		page.Items = rows[:limit]
		page.NextCursor = &next
	}
	return page, nil
}
