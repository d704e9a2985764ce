package shared

import (
	"context"

	"pta-storefront/internal/domain/checkout"
	"pta-storefront/internal/domain/event"
	"pta-storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrSessionSlotEmpty = errs.New("session slot is empty")

// SessionStore is per-visitor server-side state. Each visitor has its own
// key space, so writes for one visitor never race with another's.
type SessionStore interface {
	Get(ctx context.Context, sessionID, slot string) ([]byte, error)
	Set(ctx context.Context, sessionID, slot string, value []byte) error
	Clear(ctx context.Context, sessionID, slot string) error
}

type EventCatalog interface {
	// PurchasableByID returns event.ErrEventNotFound for unknown or non-public events.
	PurchasableByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
}

type CheckoutGateway interface {
	CreateSession(ctx context.Context, req checkout.SessionRequest) (*checkout.CreatedSession, error)
	// RetrieveSession returns the authoritative session with line items expanded.
	RetrieveSession(ctx context.Context, sessionID string) (*checkout.SessionSnapshot, error)
}

type WebhookVerifier interface {
	// Verify returns checkout.ErrInvalidSignature when the payload was not
	// signed with the configured secret.
	Verify(payload []byte, signatureHeader string) (checkout.Event, error)
	// Configured reports whether a webhook secret is available.
	Configured() bool
}

type OrderLine struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// OrderConfirmation is the view model for the confirmation email.
type OrderConfirmation struct {
	SiteName             string          `json:"site_name"`
	SiteURL              string          `json:"site_url"`
	CustomerName         string          `json:"customer_name"`
	CustomerEmail        string          `json:"customer_email"`
	TransactionReference string          `json:"transaction_reference"`
	Currency             string          `json:"currency"`
	Lines                []OrderLine     `json:"lines"`
	Total                decimal.Decimal `json:"total"`
}

type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, msg OrderConfirmation) error
}
