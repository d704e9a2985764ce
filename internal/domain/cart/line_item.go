package cart

import (
	"strings"

	"pta-storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MinQuantity = 1

var (
	ErrEventNotPurchasable = errs.Mark(errs.New("event is not available for purchase"), errs.ErrValidation)
	ErrInvalidQuantity     = errs.Mark(errs.New("quantity must be a positive integer"), errs.ErrValidation)
	ErrInvalidPrice        = errs.Mark(errs.New("unit price must not be negative"), errs.ErrValidation)
)

// LineItem captures name and unit price when the shopper adds it; they are
// never refreshed from the catalog afterwards.
type LineItem struct {
	EventID   uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func NewLineItem(eventID uuid.UUID, name string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if eventID == uuid.Nil {
		return LineItem{}, ErrEventNotPurchasable
	}
	if quantity < MinQuantity {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return LineItem{}, ErrInvalidPrice
	}
	return LineItem{
		EventID:   eventID,
		Name:      strings.TrimSpace(name),
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
