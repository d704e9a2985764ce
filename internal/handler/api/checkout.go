package api

import (
	"net/http"
	"net/url"

	resdto "pta-storefront/internal/handler/dto/response"
	"pta-storefront/internal/handler/httperr"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	cartPath              = "/cart"
	paymentFailureMessage = "Payment failed. Please try again, or use contact form to send us a message."
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Start checkout
// @Description Create a hosted checkout session from the cart and redirect to it
// @Tags checkout
// @Success 303 "Redirect to the hosted payment page, or back to the cart"
// @Router /api/checkout [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	sid, ok := visitorSession(c)
	if !ok {
		return
	}

	result, err := h.cmds.Start(c.Request.Context(), sid)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, result.RedirectURL)
	case errs.Is(err, commands.ErrCartEmpty):
		c.Redirect(http.StatusSeeOther, cartPath)
	default:
		// already logged with detail by the command
		_ = c.Error(err)
		c.Redirect(http.StatusSeeOther, PaymentErrorURL())
	}
}

// PaymentErrorURL is where a failed checkout start sends the visitor.
func PaymentErrorURL() string {
	q := url.Values{}
	q.Set("payment_error", "1")
	q.Set("status", "error")
	q.Set("message", paymentFailureMessage)
	return cartPath + "?" + q.Encode()
}

// @Summary Confirm checkout
// @Description Look up a checkout session for the thank-you page. Clears the cart once payment has settled.
// @Tags checkout
// @Produce json
// @Param id path string true "Checkout session ID"
// @Success 200 {object} resdto.CheckoutConfirmationResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/checkout/sessions/{id} [get]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	sid, ok := visitorSession(c)
	if !ok {
		return
	}

	conf, err := h.cmds.Confirm(c.Request.Context(), sid, c.Param("id"))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrSessionIDRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Checkout session id is required", nil)
		case errs.Is(err, errs.ErrGateway):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutConfirmation(conf))
}
