package checkout

import (
	"strings"

	"pta-storefront/internal/pkg/errs"
)

// SessionIDPlaceholder is substituted by the gateway with its own session id.
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

type Mode string

const ModePayment Mode = "payment"

var ErrNoLineItems = errs.Mark(errs.New("checkout requires at least one line item"), errs.ErrValidation)

// LineItem is a cart line as sent to the gateway, with the price in minor units.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type SessionRequest struct {
	Mode       Mode
	Currency   string
	SuccessURL string
	CancelURL  string
	LineItems  []LineItem
}

func (r SessionRequest) Validate() error {
	if len(r.LineItems) == 0 {
		return ErrNoLineItems
	}
	return nil
}

// CreatedSession is what the gateway hands back for a new checkout.
type CreatedSession struct {
	ID  string
	URL string
}

// SuccessURL builds the thank-you URL the gateway redirects to after payment.
func SuccessURL(siteURL string) string {
	return strings.TrimRight(siteURL, "/") + "/checkout/thank-you?session_id=" + SessionIDPlaceholder
}

func CancelURL(siteURL string) string {
	return strings.TrimRight(siteURL, "/") + "/cart"
}
