package bootstrap

import (
	"context"

	"pta-storefront/internal/infra/mail"
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(shared.OrderMailer)),
		),
	),
)

func NewMailer(lc fx.Lifecycle, cfg config.Config) (*mail.SMTPMailer, error) {
	mailer, err := mail.NewSMTPMailer(cfg.Mail)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			mailer.Close()
			return nil
		},
	})

	return mailer, nil
}
