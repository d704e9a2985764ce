package checkout

import (
	"pta-storefront/internal/pkg/errs"
)

var (
	ErrInvalidSignature = errs.Mark(errs.New("webhook signature verification failed"), errs.ErrSecurity)
	ErrMalformedEvent   = errs.Mark(errs.New("webhook event could not be decoded"), errs.ErrValidation)
)

// Event is a verified gateway notification. The concrete type is one of
// Completed, Failed, Refunded or Unhandled.
type Event interface {
	EventID() string
	EventType() string
	sealed()
}

type Envelope struct {
	ID   string
	Type string
}

func (e Envelope) EventID() string   { return e.ID }
func (e Envelope) EventType() string { return e.Type }
func (Envelope) sealed()             {}

// Completed reports a paid checkout session.
type Completed struct {
	Envelope
	Session SessionSnapshot
}

// Failed reports a declined or failed asynchronous payment.
type Failed struct {
	Envelope
	Session SessionSnapshot
}

// Refunded reports that a captured charge was refunded.
type Refunded struct {
	Envelope
	Session SessionSnapshot
}

// Unhandled is any event type this service does not act on.
type Unhandled struct {
	Envelope
}

type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type Customer struct {
	Email   string
	Name    string
	Phone   string
	Address Address
}

// PurchasedItem is a line as reported by the gateway. Amount is the line
// total in minor units.
type PurchasedItem struct {
	Name     string
	Quantity int64
	Amount   int64
}

// SessionSnapshot is the subset of a gateway session or payment intent the
// order records need. Absent fields are zero values.
type SessionSnapshot struct {
	SessionID       string
	PaymentIntentID string
	Customer        Customer
	AmountTotal     int64
	AmountSubtotal  int64
	Currency        string
	PaymentStatus   string
	Status          string
	LineItems       []PurchasedItem
}

// Reference is the transaction key: the payment intent, or the session id
// when the session has no intent.
func (s SessionSnapshot) Reference() string {
	if s.PaymentIntentID != "" {
		return s.PaymentIntentID
	}
	return s.SessionID
}

// IsPaid reports whether the gateway considers the session settled.
func (s SessionSnapshot) IsPaid() bool {
	return s.Status == "complete" && (s.PaymentStatus == "paid" || s.PaymentStatus == "no_payment_required")
}

// FillFrom copies fields that are empty in s from other.
func (s SessionSnapshot) FillFrom(other SessionSnapshot) SessionSnapshot {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&s.SessionID, other.SessionID)
	fill(&s.PaymentIntentID, other.PaymentIntentID)
	fill(&s.Customer.Email, other.Customer.Email)
	fill(&s.Customer.Name, other.Customer.Name)
	fill(&s.Customer.Phone, other.Customer.Phone)
	if s.Customer.Address == (Address{}) {
		s.Customer.Address = other.Customer.Address
	}
	fill(&s.Currency, other.Currency)
	fill(&s.PaymentStatus, other.PaymentStatus)
	fill(&s.Status, other.Status)
	if s.AmountTotal == 0 {
		s.AmountTotal = other.AmountTotal
	}
	if s.AmountSubtotal == 0 {
		s.AmountSubtotal = other.AmountSubtotal
	}
	if len(s.LineItems) == 0 {
		s.LineItems = other.LineItems
	}
	return s
}
