package bootstrap

import (
	"log/slog"

	"pta-storefront/internal/infra/gateway/stripe"
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewCheckoutGateway,
			fx.As(new(shared.CheckoutGateway)),
		),
		fx.Annotate(
			NewWebhookVerifier,
			fx.As(new(shared.WebhookVerifier)),
		),
	),
)

// Missing keys are logged, not fatal. Checkout and webhooks fail closed.
func NewCheckoutGateway(cfg config.Config) *stripe.Gateway {
	if cfg.Stripe.ActiveSecretKey() == "" {
		slog.Warn("payment gateway secret key is not configured", "test_mode", cfg.Stripe.TestMode)
	}
	return stripe.NewGateway(cfg.Stripe)
}

func NewWebhookVerifier(cfg config.Config) *stripe.WebhookVerifier {
	verifier := stripe.NewWebhookVerifier(cfg.Stripe)
	if !verifier.Configured() {
		slog.Warn("webhook secret is not configured, all webhook deliveries will be rejected")
	}
	return verifier
}
