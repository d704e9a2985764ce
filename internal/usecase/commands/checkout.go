package commands

import (
	"context"
	"log/slog"
	"strings"

	"pta-storefront/internal/domain/checkout"
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/pkg/money"
	"pta-storefront/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var (
	ErrCartEmpty          = errs.Mark(errs.New("cart is empty"), errs.ErrValidation)
	ErrGatewayUnavailable = errs.Mark(errs.New("payment gateway unavailable"), errs.ErrGateway)
	ErrSessionIDRequired  = errs.Mark(errs.New("checkout session id is required"), errs.ErrValidation)
)

type CheckoutResult struct {
	SessionID   string
	RedirectURL string
}

// CheckoutConfirmation is what the thank-you page shows for a gateway session.
type CheckoutConfirmation struct {
	SessionID     string
	Status        string
	PaymentStatus string
	CustomerEmail string
	AmountTotal   decimal.Decimal
	Currency      string
	Paid          bool
}

type CheckoutCommands interface {
	Start(ctx context.Context, sessionID string) (*CheckoutResult, error)
	Confirm(ctx context.Context, sessionID, checkoutSessionID string) (*CheckoutConfirmation, error)
}

type checkoutCommandsImpl struct {
	sessions shared.SessionStore
	gateway  shared.CheckoutGateway
	currency string
	siteURL  string
}

func NewCheckoutCommands(sessions shared.SessionStore, gateway shared.CheckoutGateway, cfg config.Config) CheckoutCommands {
	return &checkoutCommandsImpl{
		sessions: sessions,
		gateway:  gateway,
		currency: strings.ToLower(cfg.Stripe.Currency),
		siteURL:  cfg.Site.URL,
	}
}

func (uc *checkoutCommandsImpl) Start(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	c, err := shared.LoadCart(ctx, uc.sessions, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrCartEmpty
	}

	req := checkout.SessionRequest{
		Mode:       checkout.ModePayment,
		Currency:   uc.currency,
		SuccessURL: checkout.SuccessURL(uc.siteURL),
		CancelURL:  checkout.CancelURL(uc.siteURL),
	}
	for _, it := range c.Items() {
		req.LineItems = append(req.LineItems, checkout.LineItem{
			Name:       it.Name,
			UnitAmount: money.ToMinorUnits(it.UnitPrice, uc.currency),
			Quantity:   int64(it.Quantity),
		})
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.gateway.CreateSession(ctx, req)
	if err != nil {
		slog.Error("checkout session creation failed",
			"lines", len(req.LineItems),
			"error", err.Error())
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	slog.Info("checkout session created", "checkout_session_id", created.ID)
	return &CheckoutResult{
		SessionID:   created.ID,
		RedirectURL: created.URL,
	}, nil
}

// Confirm re-fetches the gateway session for the thank-you page and empties
// the visitor's cart once the payment has settled.
func (uc *checkoutCommandsImpl) Confirm(ctx context.Context, sessionID, checkoutSessionID string) (*CheckoutConfirmation, error) {
	checkoutSessionID = strings.TrimSpace(checkoutSessionID)
	if checkoutSessionID == "" || checkoutSessionID == checkout.SessionIDPlaceholder {
		return nil, ErrSessionIDRequired
	}

	snap, err := uc.gateway.RetrieveSession(ctx, checkoutSessionID)
	if err != nil {
		slog.Error("checkout session lookup failed",
			"checkout_session_id", checkoutSessionID,
			"error", err.Error())
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	paid := snap.IsPaid()
	if paid {
		if err := shared.ClearCart(ctx, uc.sessions, sessionID); err != nil {
			slog.Warn("failed to clear cart after payment", "error", err.Error())
		}
	}

	currency := snap.Currency
	if currency == "" {
		currency = uc.currency
	}
	return &CheckoutConfirmation{
		SessionID:     snap.SessionID,
		Status:        snap.Status,
		PaymentStatus: snap.PaymentStatus,
		CustomerEmail: snap.Customer.Email,
		AmountTotal:   money.FromMinorUnits(snap.AmountTotal, currency),
		Currency:      currency,
		Paid:          paid,
	}, nil
}
