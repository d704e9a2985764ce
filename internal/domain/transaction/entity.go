package transaction

import (
	"strings"
	"time"

	"pta-storefront/internal/domain/checkout"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/pkg/money"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingReference    = errs.New("transaction reference is required")
	ErrInvalidStatus       = errs.New("invalid payment status")
	ErrTransactionNotFound = errs.New("transaction not found")
)

const defaultCurrency = "usd"

var validate = validator.New()

type BillingAddress struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// LineItem is the serialized snapshot stored with the record.
type LineItem struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// Record is one payment outcome keyed by the gateway reference.
type Record struct {
	ID                uuid.UUID
	Reference         string
	CheckoutSessionID string
	CustomerEmail     string
	CustomerName      string
	CustomerPhone     string
	Billing           BillingAddress
	Total             decimal.Decimal
	Subtotal          decimal.Decimal
	Currency          string
	Status            PaymentStatus
	LineItems         []LineItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FromSnapshot builds a sanitized record from whatever the gateway reported.
// Missing customer fields stay empty.
func FromSnapshot(snap checkout.SessionSnapshot, status PaymentStatus) (*Record, error) {
	ref := strings.TrimSpace(snap.Reference())
	if ref == "" {
		return nil, ErrMissingReference
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	currency := strings.ToLower(strings.TrimSpace(snap.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	rec := &Record{
		Reference:         ref,
		CheckoutSessionID: strings.TrimSpace(snap.SessionID),
		CustomerEmail:     sanitizeEmail(snap.Customer.Email),
		CustomerName:      clean(snap.Customer.Name),
		CustomerPhone:     clean(snap.Customer.Phone),
		Billing: BillingAddress{
			Line1:      clean(snap.Customer.Address.Line1),
			Line2:      clean(snap.Customer.Address.Line2),
			City:       clean(snap.Customer.Address.City),
			State:      clean(snap.Customer.Address.State),
			PostalCode: clean(snap.Customer.Address.PostalCode),
			Country:    strings.ToUpper(clean(snap.Customer.Address.Country)),
		},
		Total:     money.FromMinorUnits(snap.AmountTotal, currency),
		Subtotal:  money.FromMinorUnits(snap.AmountSubtotal, currency),
		Currency:  currency,
		Status:    status,
		LineItems: make([]LineItem, 0, len(snap.LineItems)),
	}
	for _, li := range snap.LineItems {
		rec.LineItems = append(rec.LineItems, LineItem{
			Name:     clean(li.Name),
			Quantity: li.Quantity,
			Amount:   money.FromMinorUnits(li.Amount, currency),
		})
	}

	return rec, nil
}

func (r *Record) HasEmail() bool {
	return r.CustomerEmail != ""
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func sanitizeEmail(s string) string {
	s = strings.ToLower(clean(s))
	if validate.Var(s, "email") != nil {
		return ""
	}
	return s
}
