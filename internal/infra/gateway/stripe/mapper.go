package stripe

import (
	"pta-storefront/internal/domain/checkout"

	stripego "github.com/stripe/stripe-go/v80"
)

func snapshotFromSession(s *stripego.CheckoutSession) checkout.SessionSnapshot {
	snap := checkout.SessionSnapshot{
		SessionID:      s.ID,
		AmountTotal:    s.AmountTotal,
		AmountSubtotal: s.AmountSubtotal,
		Currency:       string(s.Currency),
		PaymentStatus:  string(s.PaymentStatus),
		Status:         string(s.Status),
	}
	if s.PaymentIntent != nil {
		snap.PaymentIntentID = s.PaymentIntent.ID
	}
	if d := s.CustomerDetails; d != nil {
		snap.Customer = checkout.Customer{
			Email:   d.Email,
			Name:    d.Name,
			Phone:   d.Phone,
			Address: toAddress(d.Address),
		}
	}
	if snap.Customer.Email == "" {
		snap.Customer.Email = s.CustomerEmail
	}
	if s.LineItems != nil {
		for _, li := range s.LineItems.Data {
			if li == nil {
				continue
			}
			snap.LineItems = append(snap.LineItems, checkout.PurchasedItem{
				Name:     li.Description,
				Quantity: li.Quantity,
				Amount:   li.AmountTotal,
			})
		}
	}
	return snap
}

// A failed intent has no session. Billing details come from the payment
// method that was declined.
func snapshotFromPaymentIntent(pi *stripego.PaymentIntent) checkout.SessionSnapshot {
	snap := checkout.SessionSnapshot{
		PaymentIntentID: pi.ID,
		AmountTotal:     pi.Amount,
		AmountSubtotal:  pi.Amount,
		Currency:        string(pi.Currency),
		PaymentStatus:   string(pi.Status),
	}
	if pe := pi.LastPaymentError; pe != nil && pe.PaymentMethod != nil && pe.PaymentMethod.BillingDetails != nil {
		bd := pe.PaymentMethod.BillingDetails
		snap.Customer = checkout.Customer{
			Email:   bd.Email,
			Name:    bd.Name,
			Phone:   bd.Phone,
			Address: toAddress(bd.Address),
		}
	}
	if snap.Customer.Email == "" {
		snap.Customer.Email = pi.ReceiptEmail
	}
	return snap
}

func snapshotFromCharge(ch *stripego.Charge) checkout.SessionSnapshot {
	snap := checkout.SessionSnapshot{
		AmountTotal: ch.Amount,
		Currency:    string(ch.Currency),
	}
	if ch.PaymentIntent != nil && ch.PaymentIntent.ID != "" {
		snap.PaymentIntentID = ch.PaymentIntent.ID
	} else {
		// charges made without an intent are keyed by the charge itself
		snap.PaymentIntentID = ch.ID
	}
	if bd := ch.BillingDetails; bd != nil {
		snap.Customer = checkout.Customer{
			Email:   bd.Email,
			Name:    bd.Name,
			Phone:   bd.Phone,
			Address: toAddress(bd.Address),
		}
	}
	if snap.Customer.Email == "" {
		snap.Customer.Email = ch.ReceiptEmail
	}
	return snap
}

func toAddress(a *stripego.Address) checkout.Address {
	if a == nil {
		return checkout.Address{}
	}
	return checkout.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
