package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type EventView struct {
	ID       uuid.UUID
	Title    string
	Excerpt  string
	Price    decimal.Decimal
	Date     *time.Time
	IsPublic bool
}

type CartLineView struct {
	Key       int
	EventID   uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type CartView struct {
	Items   []CartLineView
	Total   decimal.Decimal
	IsEmpty bool
}

type TransactionLineView struct {
	Name     string
	Quantity int64
	Amount   decimal.Decimal
}

type TransactionView struct {
	ID                   uuid.UUID
	TransactionReference string
	CheckoutSessionID    string
	UserEmail            string
	CustomerName         string
	CustomerPhone        string
	AddressLine1         string
	AddressLine2         string
	City                 string
	State                string
	PostalCode           string
	Country              string
	TotalAmount          decimal.Decimal
	Subtotal             decimal.Decimal
	Currency             string
	PaymentStatus        string
	LineItems            []TransactionLineView
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type TransactionListItem struct {
	ID                   uuid.UUID
	TransactionReference string
	UserEmail            string
	CustomerName         string
	TotalAmount          decimal.Decimal
	Currency             string
	PaymentStatus        string
	CreatedAt            time.Time
}
