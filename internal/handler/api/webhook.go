package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	resdto "pta-storefront/internal/handler/dto/response"
	"pta-storefront/internal/handler/httperr"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	MaxWebhookBodyBytes = 64 << 10
	SignatureHeader     = "Stripe-Signature"
)

type WebhookHandler struct {
	cmds commands.PaymentWebhookCommands
}

func NewWebhookHandler(cmds commands.PaymentWebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment webhook
// @Description Receive a signed payment event. Any verified delivery is acknowledged with 200.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /api/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payload too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		return
	}

	result, err := h.cmds.Handle(c.Request.Context(), payload, c.GetHeader(SignatureHeader))
	if err != nil {
		if errs.Is(err, errs.ErrSecurity) || errs.Is(err, errs.ErrValidation) {
			slog.Warn("webhook rejected", "error", err.Error())
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook", nil)
			return
		}
		slog.Error("webhook handling failed", "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	slog.Info("webhook acknowledged",
		"event_id", result.EventID,
		"event_type", result.EventType,
		"outcome", result.Outcome)
	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Status: "ok"})
}
