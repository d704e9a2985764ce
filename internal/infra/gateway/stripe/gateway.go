package stripe

import (
	"context"
	"net/http"
	"strings"

	"pta-storefront/internal/domain/checkout"
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/pkg/errs"

	stripego "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

var (
	ErrNotConfigured  = errs.Mark(errs.New("stripe secret key is not configured"), errs.ErrGateway)
	ErrRequestFailed  = errs.Mark(errs.New("stripe request failed"), errs.ErrGateway)
	ErrMissingSession = errs.Mark(errs.New("stripe returned no session"), errs.ErrGateway)
)

// Gateway talks to the hosted checkout API. Each instance carries its own
// backend and key so tests can point it at a fake server.
type Gateway struct {
	client *session.Client
}

func NewGateway(cfg config.StripeConfig) *Gateway {
	backendCfg := &stripego.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout},
		MaxNetworkRetries: stripego.Int64(0),
		LeveledLogger:     &stripego.LeveledLogger{Level: stripego.LevelError},
	}
	if cfg.APIBase != "" {
		backendCfg.URL = stripego.String(strings.TrimRight(cfg.APIBase, "/"))
	}

	return &Gateway{
		client: &session.Client{
			B:   stripego.GetBackendWithConfig(stripego.APIBackend, backendCfg),
			Key: cfg.ActiveSecretKey(),
		},
	}
}

func (g *Gateway) CreateSession(ctx context.Context, req checkout.SessionRequest) (*checkout.CreatedSession, error) {
	if g.client.Key == "" {
		return nil, ErrNotConfigured
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := &stripego.CheckoutSessionParams{
		Mode:                     stripego.String(string(req.Mode)),
		SuccessURL:               stripego.String(req.SuccessURL),
		CancelURL:                stripego.String(req.CancelURL),
		BillingAddressCollection: stripego.String(string(stripego.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripego.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx
	for _, li := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency: stripego.String(req.Currency),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(li.Name),
				},
				UnitAmount: stripego.Int64(li.UnitAmount),
			},
			Quantity: stripego.Int64(li.Quantity),
		})
	}

	sess, err := g.client.New(params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create checkout session"), ErrRequestFailed)
	}
	if sess == nil || sess.URL == "" {
		return nil, ErrMissingSession
	}

	return &checkout.CreatedSession{ID: sess.ID, URL: sess.URL}, nil
}

// RetrieveSession fetches the session with its line items expanded.
func (g *Gateway) RetrieveSession(ctx context.Context, sessionID string) (*checkout.SessionSnapshot, error) {
	if g.client.Key == "" {
		return nil, ErrNotConfigured
	}

	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")

	sess, err := g.client.Get(sessionID, params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "retrieve checkout session"), ErrRequestFailed)
	}
	if sess == nil {
		return nil, ErrMissingSession
	}

	snap := snapshotFromSession(sess)
	return &snap, nil
}
