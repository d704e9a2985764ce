//go:build unit

package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/shared"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePool struct {
	sent    []*email.Email
	timeout time.Duration
	err     error
}

func (p *fakePool) Send(e *email.Email, timeout time.Duration) error {
	p.timeout = timeout
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, e)
	return nil
}

func confirmation() shared.OrderConfirmation {
	return shared.OrderConfirmation{
		SiteName:             "Lincoln PTA",
		SiteURL:              "https://pta.example.org",
		CustomerName:         "Pat <Parent>",
		CustomerEmail:        "parent@example.com",
		TransactionReference: "pi_test_1",
		Currency:             "usd",
		Lines: []shared.OrderLine{
			{Name: "Spring Gala", Quantity: 2, Amount: decimal.RequireFromString("20")},
			{Name: "Book Fair", Quantity: 1, Amount: decimal.RequireFromString("5.5")},
		},
		Total: decimal.RequireFromString("25.5"),
	}
}

func TestBuildOrderConfirmation(t *testing.T) {
	e, err := BuildOrderConfirmation("no-reply@pta.example.org", confirmation())
	require.NoError(t, err)

	assert.Equal(t, "no-reply@pta.example.org", e.From)
	assert.Equal(t, []string{"parent@example.com"}, e.To)
	assert.Equal(t, "Your Lincoln PTA order confirmation", e.Subject)

	text := string(e.Text)
	assert.Contains(t, text, "Transaction ID: pi_test_1")
	assert.Contains(t, text, "Event: Spring Gala")
	assert.Contains(t, text, "Quantity: 2")
	assert.Contains(t, text, "Subtotal: 20.00 USD")
	assert.Contains(t, text, "Subtotal: 5.50 USD")
	assert.Contains(t, text, "Total: 25.50 USD")

	html := string(e.HTML)
	assert.Contains(t, html, "pi_test_1")
	assert.Contains(t, html, "25.50 USD")
	assert.Contains(t, html, "Pat &lt;Parent&gt;")
	assert.NotContains(t, html, "<Parent>")
}

func TestBuildOrderConfirmation_NoName(t *testing.T) {
	msg := confirmation()
	msg.CustomerName = ""

	e, err := BuildOrderConfirmation("no-reply@pta.example.org", msg)
	require.NoError(t, err)
	assert.Contains(t, string(e.Text), "Thank you!")
}

func TestSMTPMailer_SendOrderConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("success: message handed to the pool", func(t *testing.T) {
		pool := &fakePool{}
		m := newSMTPMailer(pool, "no-reply@pta.example.org", 3*time.Second)

		require.NoError(t, m.SendOrderConfirmation(ctx, confirmation()))
		require.Len(t, pool.sent, 1)
		assert.Equal(t, 3*time.Second, pool.timeout)
		assert.Equal(t, []string{"parent@example.com"}, pool.sent[0].To)
	})

	t.Run("error: no recipient", func(t *testing.T) {
		pool := &fakePool{}
		m := newSMTPMailer(pool, "no-reply@pta.example.org", time.Second)

		msg := confirmation()
		msg.CustomerEmail = "  "
		err := m.SendOrderConfirmation(ctx, msg)
		assert.ErrorIs(t, err, ErrNoRecipient)
		assert.Empty(t, pool.sent)
	})

	t.Run("error: smtp failure is a notification error", func(t *testing.T) {
		pool := &fakePool{err: errors.New("connection refused")}
		m := newSMTPMailer(pool, "no-reply@pta.example.org", time.Second)

		err := m.SendOrderConfirmation(ctx, confirmation())
		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrSendFailed))
		assert.True(t, errs.Is(err, errs.ErrNotification))
	})

	t.Run("error: cancelled context skips the send", func(t *testing.T) {
		pool := &fakePool{}
		m := newSMTPMailer(pool, "no-reply@pta.example.org", time.Second)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := m.SendOrderConfirmation(cctx, confirmation())
		assert.True(t, errs.Is(err, ErrSendFailed))
		assert.Empty(t, pool.sent)
	})
}
