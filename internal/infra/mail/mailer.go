package mail

import (
	"bytes"
	"context"
	"embed"
	htmltemplate "html/template"
	"net/smtp"
	"strings"
	texttemplate "text/template"
	"time"

	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/shared"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
)

//go:embed templates/*
var templateFS embed.FS

var (
	ErrNoRecipient = errs.Mark(errs.New("confirmation has no recipient"), errs.ErrNotification)
	ErrSendFailed  = errs.Mark(errs.New("smtp send failed"), errs.ErrNotification)
)

var funcs = map[string]any{
	"money": formatMoney,
}

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("order_confirmation.html").Funcs(funcs).ParseFS(templateFS, "templates/order_confirmation.html"))
	textTmpl = texttemplate.Must(texttemplate.New("order_confirmation.txt").Funcs(funcs).ParseFS(templateFS, "templates/order_confirmation.txt"))
)

// sender is the part of email.Pool the mailer uses.
type sender interface {
	Send(e *email.Email, timeout time.Duration) error
}

type SMTPMailer struct {
	pool    sender
	from    string
	timeout time.Duration
}

// NewSMTPMailer builds a pooled mailer. Connections are dialed lazily on
// the first send, so a missing SMTP server does not block startup.
func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	size := cfg.PoolSize
	if size < 1 {
		size = 1
	}

	pool, err := email.NewPool(cfg.Addr(), size, auth)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create smtp pool")
	}

	return newSMTPMailer(pool, cfg.From, cfg.Timeout), nil
}

func newSMTPMailer(pool sender, from string, timeout time.Duration) *SMTPMailer {
	return &SMTPMailer{pool: pool, from: from, timeout: timeout}
}

// Close releases pooled connections when the pool supports it.
func (m *SMTPMailer) Close() {
	if p, ok := m.pool.(*email.Pool); ok {
		p.Close()
	}
}

func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, msg shared.OrderConfirmation) error {
	if strings.TrimSpace(msg.CustomerEmail) == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, ErrSendFailed)
	}

	e, err := BuildOrderConfirmation(m.from, msg)
	if err != nil {
		return err
	}

	if err := m.pool.Send(e, m.timeout); err != nil {
		return errs.Mark(errs.Wrapf(err, "send confirmation to %s", msg.CustomerEmail), ErrSendFailed)
	}
	return nil
}

// BuildOrderConfirmation renders both bodies of the confirmation message.
func BuildOrderConfirmation(from string, msg shared.OrderConfirmation) (*email.Email, error) {
	var html, text bytes.Buffer
	if err := htmlTmpl.Execute(&html, msg); err != nil {
		return nil, errs.Wrap(err, "render html body")
	}
	if err := textTmpl.Execute(&text, msg); err != nil {
		return nil, errs.Wrap(err, "render text body")
	}

	e := email.NewEmail()
	e.From = from
	e.To = []string{msg.CustomerEmail}
	e.Subject = Subject(msg.SiteName)
	e.HTML = html.Bytes()
	e.Text = text.Bytes()
	return e, nil
}

func Subject(siteName string) string {
	return "Your " + siteName + " order confirmation"
}

func formatMoney(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + strings.ToUpper(currency)
}
