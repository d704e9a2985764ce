package event

import (
	"time"

	"pta-storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrEventNotFound = errs.New("event not found")

// Event is a ticketed PTA event from the public calendar.
type Event struct {
	ID        uuid.UUID
	Title     string
	Excerpt   string
	Price     decimal.Decimal
	Date      *time.Time
	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPurchasable reports whether shoppers may put the event in a cart.
func (e Event) IsPurchasable() bool {
	return e.IsPublic && e.ID != uuid.Nil && !e.Price.IsNegative()
}
