//go:build unit || e2e

package builder

import (
	"time"

	"pta-storefront/internal/domain/checkout"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/pkg/pgconv"
	"pta-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// SessionBuilder produces gateway session snapshots as a completed
// checkout would report them.
type SessionBuilder struct {
	snap checkout.SessionSnapshot
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{snap: checkout.SessionSnapshot{
		SessionID:       "cs_test_a1",
		PaymentIntentID: "pi_test_a1",
		Customer: checkout.Customer{
			Email: "parent@example.com",
			Name:  "Pat Parent",
			Phone: "+15555550100",
			Address: checkout.Address{
				Line1:      "1 School Rd",
				City:       "Springfield",
				State:      "IL",
				PostalCode: "62701",
				Country:    "US",
			},
		},
		AmountTotal:    2000,
		AmountSubtotal: 2000,
		Currency:       "usd",
		PaymentStatus:  "paid",
		Status:         "complete",
		LineItems: []checkout.PurchasedItem{
			{Name: "Spring Gala", Quantity: 2, Amount: 2000},
		},
	}}
}

func (b *SessionBuilder) With(mutate func(*checkout.SessionSnapshot)) *SessionBuilder {
	mutate(&b.snap)
	return b
}

func (b *SessionBuilder) WithoutEmail() *SessionBuilder {
	b.snap.Customer.Email = ""
	return b
}

func (b *SessionBuilder) Build() checkout.SessionSnapshot {
	snap := b.snap
	snap.LineItems = append([]checkout.PurchasedItem(nil), b.snap.LineItems...)
	return snap
}

type TransactionBuilder struct {
	ID        uuid.UUID
	Reference string
	Email     string
	Name      string
	Total     decimal.Decimal
	Currency  string
	Status    string
	CreatedAt time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:        uuid.New(),
		Reference: "pi_test_a1",
		Email:     "parent@example.com",
		Name:      "Pat Parent",
		Total:     decimal.RequireFromString("20.00"),
		Currency:  "usd",
		Status:    "succeeded",
		CreatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (t *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(t)
	return t
}

func (t *TransactionBuilder) BuildInfra() sqlc.Transactions {
	return sqlc.Transactions{
		ID:                   t.ID,
		UserEmail:            t.Email,
		CustomerName:         t.Name,
		TransactionReference: t.Reference,
		CheckoutSessionID:    "cs_test_a1",
		TotalAmount:          pgconv.NumericFromDecimal(t.Total),
		Subtotal:             pgconv.NumericFromDecimal(t.Total),
		Currency:             t.Currency,
		PaymentStatus:        t.Status,
		LineItems:            []byte(`[{"name":"Spring Gala","quantity":2,"amount":"20.00"}]`),
		CreatedAt:            pgtype.Timestamptz{Time: t.CreatedAt, Valid: true},
		UpdatedAt:            pgtype.Timestamptz{Time: t.CreatedAt, Valid: true},
	}
}

func (t *TransactionBuilder) BuildView() *queries.TransactionView {
	return &queries.TransactionView{
		ID:                   t.ID,
		TransactionReference: t.Reference,
		CheckoutSessionID:    "cs_test_a1",
		UserEmail:            t.Email,
		CustomerName:         t.Name,
		TotalAmount:          t.Total,
		Subtotal:             t.Total,
		Currency:             t.Currency,
		PaymentStatus:        t.Status,
		LineItems: []queries.TransactionLineView{
			{Name: "Spring Gala", Quantity: 2, Amount: t.Total},
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.CreatedAt,
	}
}

func (t *TransactionBuilder) BuildListItem() queries.TransactionListItem {
	return queries.TransactionListItem{
		ID:                   t.ID,
		TransactionReference: t.Reference,
		UserEmail:            t.Email,
		CustomerName:         t.Name,
		TotalAmount:          t.Total,
		Currency:             t.Currency,
		PaymentStatus:        t.Status,
		CreatedAt:            t.CreatedAt,
	}
}
