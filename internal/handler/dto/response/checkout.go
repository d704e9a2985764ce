package response

import "pta-storefront/internal/usecase/commands"

type CheckoutConfirmationResponse struct {
	SessionID     string `json:"session_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	CustomerEmail string `json:"customer_email"`
	AmountTotal   string `json:"amount_total"`
	Currency      string `json:"currency"`
	Paid          bool   `json:"paid"`
}

func FromCheckoutConfirmation(c *commands.CheckoutConfirmation) *CheckoutConfirmationResponse {
	return &CheckoutConfirmationResponse{
		SessionID:     c.SessionID,
		Status:        c.Status,
		PaymentStatus: c.PaymentStatus,
		CustomerEmail: c.CustomerEmail,
		AmountTotal:   c.AmountTotal.StringFixed(2),
		Currency:      c.Currency,
		Paid:          c.Paid,
	}
}

type WebhookAckResponse struct {
	Status string `json:"status"`
}
