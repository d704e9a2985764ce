//go:build e2e

package checkout_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"pta-storefront/internal/domain/user"
	"pta-storefront/internal/handler/api"
	"pta-storefront/internal/handler/dto/request"
	resdto "pta-storefront/internal/handler/dto/response"
	"pta-storefront/internal/infra/gateway/stripe"
	"pta-storefront/tests/common/authtest"
	"pta-storefront/tests/common/dbtest"
	"pta-storefront/tests/common/httptest"
	"pta-storefront/tests/common/paymenttest"
	"pta-storefront/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartItemsURL   = "/api/cart/items"
	cartURL        = "/api/cart"
	checkoutURL    = "/api/checkout"
	sessionURL     = "/api/checkout/sessions/%s"
	webhookURL     = "/api/webhooks/stripe"
	transactionURL = "/api/admin/transactions"
)

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) visitorCookies(t *testing.T, eventID uuid.UUID, qty int) []*http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
		request.AddCartItemRequest{EventID: eventID, Quantity: qty}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	sid := httptest.ExtractCookie(w, s.Config.Session.CookieName)
	require.NotNil(t, sid, "visitor session cookie missing")
	return []*http.Cookie{sid}
}

func (s *checkoutSuite) startCheckout(t *testing.T, cookies []*http.Cookie) string {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, checkoutURL, nil, cookies, "")
	require.Equal(t, http.StatusSeeOther, w.Code)

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "checkout.example.test", loc.Host)
	return strings.TrimPrefix(loc.Path, "/pay/")
}

func (s *checkoutSuite) deliver(t *testing.T, payload []byte) int {
	t.Helper()

	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, map[string]string{
		"Content-Type":      "application/json",
		api.SignatureHeader: paymenttest.Sign(payload, s.Config.Stripe.WebhookSecret),
	})
	return w.Code
}

func completedSession(sessionID, intentID string) string {
	return sessionWithPayment(sessionID, intentID, "paid")
}

func sessionWithPayment(sessionID, intentID, paymentStatus string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"object": "checkout.session",
		"status": "complete",
		"payment_status": %q,
		"payment_intent": %q,
		"amount_total": 2000,
		"amount_subtotal": 2000,
		"currency": "usd",
		"customer_details": {
			"email": "parent@example.com",
			"name": "Pat Parent",
			"phone": "+15555550100",
			"address": {"line1": "1 School Rd", "city": "Springfield", "state": "IL", "postal_code": "62701", "country": "US"}
		},
		"line_items": {
			"object": "list",
			"data": [{"id": "li_1", "object": "item", "description": "Spring Gala", "quantity": 2, "amount_total": 2000, "currency": "usd"}]
		}
	}`, sessionID, paymentStatus, intentID)
}

func refundedCharge(chargeID, intentID string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"object": "charge",
		"amount": 2000,
		"currency": "usd",
		"refunded": true,
		"payment_intent": %q
	}`, chargeID, intentID)
}

func (s *checkoutSuite) TestPurchaseFlow() {
	s.Run("success: paid checkout is recorded once and confirmed once", func() {
		t := s.T()

		eventID := dbtest.CreateTestEvent(t, s.DB, "Spring Gala", "10.00", true)
		cookies := s.visitorCookies(t, eventID, 2)

		sessionID := s.startCheckout(t, cookies)

		forms := s.Payments.CreatedForms()
		require.NotEmpty(t, forms)
		form := forms[len(forms)-1]
		assert.Equal(t, "Spring Gala", form.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "1000", form.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "2", form.Get("line_items[0][quantity]"))

		session := completedSession(sessionID, "pi_e2e_paid")
		s.Payments.PutSession(sessionID, session)
		payload := paymenttest.EventJSON("evt_e2e_paid", stripe.EventSessionCompleted, session)

		// the provider retries until it sees a 2xx, so the same event can arrive twice
		require.Equal(t, http.StatusOK, s.deliver(t, payload))
		require.Equal(t, http.StatusOK, s.deliver(t, payload))

		assert.Equal(t, 1, dbtest.CountTransactions(t, s.DB, "pi_e2e_paid"))
		assert.Equal(t, "succeeded", dbtest.TransactionStatus(t, s.DB, "pi_e2e_paid"))
		assert.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "sent"))

		sent := s.Mailer.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "parent@example.com", sent[0].CustomerEmail)
		assert.Equal(t, "pi_e2e_paid", sent[0].TransactionReference)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, fmt.Sprintf(sessionURL, sessionID), nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var conf resdto.CheckoutConfirmationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &conf))
		assert.True(t, conf.Paid)
		assert.Equal(t, "parent@example.com", conf.CustomerEmail)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, cartURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code)
		var cart resdto.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		assert.Empty(t, cart.Items, "cart should be cleared after a paid confirmation")
	})

	s.Run("success: delayed payment is pending until the async success event", func() {
		t := s.T()

		unpaid := sessionWithPayment("cs_e2e_async", "pi_e2e_async", "unpaid")
		s.Payments.PutSession("cs_e2e_async", unpaid)
		require.Equal(t, http.StatusOK, s.deliver(t, paymenttest.EventJSON("evt_e2e_async_1", stripe.EventSessionCompleted, unpaid)))

		assert.Equal(t, "pending", dbtest.TransactionStatus(t, s.DB, "pi_e2e_async"))
		assert.Empty(t, s.Mailer.Sent(), "no confirmation before the money settles")

		paid := completedSession("cs_e2e_async", "pi_e2e_async")
		s.Payments.PutSession("cs_e2e_async", paid)
		require.Equal(t, http.StatusOK, s.deliver(t, paymenttest.EventJSON("evt_e2e_async_2", stripe.EventSessionAsyncPaymentOK, paid)))

		assert.Equal(t, 1, dbtest.CountTransactions(t, s.DB, "pi_e2e_async"))
		assert.Equal(t, "succeeded", dbtest.TransactionStatus(t, s.DB, "pi_e2e_async"))
		require.Len(t, s.Mailer.Sent(), 1)
		assert.Equal(t, "pi_e2e_async", s.Mailer.Sent()[0].TransactionReference)
	})

	s.Run("success: late unpaid completion does not demote a settled payment", func() {
		t := s.T()

		paid := completedSession("cs_e2e_late", "pi_e2e_late")
		s.Payments.PutSession("cs_e2e_late", paid)
		require.Equal(t, http.StatusOK, s.deliver(t, paymenttest.EventJSON("evt_e2e_late_1", stripe.EventSessionAsyncPaymentOK, paid)))

		unpaid := sessionWithPayment("cs_e2e_late", "pi_e2e_late", "unpaid")
		s.Payments.PutSession("cs_e2e_late", unpaid)
		require.Equal(t, http.StatusOK, s.deliver(t, paymenttest.EventJSON("evt_e2e_late_2", stripe.EventSessionCompleted, unpaid)))

		assert.Equal(t, "succeeded", dbtest.TransactionStatus(t, s.DB, "pi_e2e_late"))
		assert.Len(t, s.Mailer.Sent(), 1)
	})

	s.Run("success: refund is final and a redelivered completion sends nothing", func() {
		t := s.T()

		session := completedSession("cs_e2e_refund", "pi_e2e_refund")
		s.Payments.PutSession("cs_e2e_refund", session)
		completed := paymenttest.EventJSON("evt_e2e_refund_1", stripe.EventSessionCompleted, session)
		require.Equal(t, http.StatusOK, s.deliver(t, completed))
		require.Len(t, s.Mailer.Sent(), 1)

		refund := paymenttest.EventJSON("evt_e2e_refund_2", stripe.EventChargeRefunded, refundedCharge("ch_e2e_refund", "pi_e2e_refund"))
		require.Equal(t, http.StatusOK, s.deliver(t, refund))
		assert.Equal(t, "refunded", dbtest.TransactionStatus(t, s.DB, "pi_e2e_refund"))

		require.Equal(t, http.StatusOK, s.deliver(t, completed))

		assert.Equal(t, 1, dbtest.CountTransactions(t, s.DB, "pi_e2e_refund"))
		assert.Equal(t, "refunded", dbtest.TransactionStatus(t, s.DB, "pi_e2e_refund"))
		assert.Len(t, s.Mailer.Sent(), 1, "refunded order must not be confirmed again")
	})

	s.Run("success: failed payment is recorded without an email", func() {
		t := s.T()

		intent := `{
			"id": "pi_e2e_failed",
			"object": "payment_intent",
			"amount": 1500,
			"currency": "usd",
			"status": "requires_payment_method",
			"receipt_email": "parent@example.com"
		}`
		payload := paymenttest.EventJSON("evt_e2e_failed", stripe.EventPaymentIntentFailed, intent)

		require.Equal(t, http.StatusOK, s.deliver(t, payload))

		assert.Equal(t, 1, dbtest.CountTransactions(t, s.DB, "pi_e2e_failed"))
		assert.Equal(t, "failed", dbtest.TransactionStatus(t, s.DB, "pi_e2e_failed"))
		assert.Empty(t, s.Mailer.Sent())
	})

	s.Run("success: unhandled event types are acknowledged", func() {
		t := s.T()

		payload := paymenttest.EventJSON("evt_e2e_other", "customer.created", `{"id":"cus_1","object":"customer"}`)
		require.Equal(t, http.StatusOK, s.deliver(t, payload))
	})

	s.Run("error: bad signature is rejected and nothing is stored", func() {
		t := s.T()

		payload := paymenttest.EventJSON("evt_e2e_forged", stripe.EventSessionCompleted, completedSession("cs_forged", "pi_forged"))
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, map[string]string{
			api.SignatureHeader: paymenttest.Sign(payload, "whsec_wrong"),
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, dbtest.CountTransactions(t, s.DB, "pi_forged"))
	})
}

func (s *checkoutSuite) TestStartCheckout() {
	s.Run("success: empty cart goes back to the cart page", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, "")
		require.Equal(t, http.StatusSeeOther, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{"Location": "/cart"})
	})

	s.Run("error: gateway failure redirects with a payment error", func() {
		t := s.T()

		eventID := dbtest.CreateTestEvent(t, s.DB, "Book Fair", "4.99", true)
		cookies := s.visitorCookies(t, eventID, 1)

		s.Payments.FailNextCreate()
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, checkoutURL, nil, cookies, "")
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, api.PaymentErrorURL(), w.Header().Get("Location"))
	})

	s.Run("error: private events cannot be added", func() {
		t := s.T()

		eventID := dbtest.CreateTestEvent(t, s.DB, "Board Meeting", "0.00", false)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			request.AddCartItemRequest{EventID: eventID, Quantity: 1}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *checkoutSuite) TestAdminTransactions() {
	s.Run("success: operator sees recorded transactions", func() {
		t := s.T()

		payload := paymenttest.EventJSON("evt_e2e_admin", stripe.EventSessionCompleted, completedSession("cs_admin", "pi_e2e_admin"))
		require.Equal(t, http.StatusOK, s.deliver(t, payload))

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleOperator))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, transactionURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list resdto.TransactionListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list.Transactions, 1)
		assert.Equal(t, "pi_e2e_admin", list.Transactions[0].TransactionReference)
		assert.Equal(t, "succeeded", list.Transactions[0].PaymentStatus)
	})

	s.Run("error: viewer is forbidden", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "viewer@example.com", string(user.RoleViewer))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, transactionURL, nil, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
