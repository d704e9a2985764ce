package api

import (
	"net/http"
	"strconv"

	"pta-storefront/internal/domain/transaction"
	resdto "pta-storefront/internal/handler/dto/response"
	"pta-storefront/internal/handler/httperr"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminTransactionHandler struct {
	q queries.TransactionQueries
}

func NewAdminTransactionHandler(q queries.TransactionQueries) *AdminTransactionHandler {
	return &AdminTransactionHandler{q: q}
}

// @Summary List transactions
// @Description List recorded transactions, newest first, with keyset pagination
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, succeeded, failed or refunded"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.TransactionListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/transactions [get]
func (h *AdminTransactionHandler) List(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	page, err := h.q.List(c.Request.Context(), queries.TransactionFilter{Status: c.Query("status")}, cursor, limit)
	if err != nil {
		switch {
		case errs.Is(err, transaction.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		case errs.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	res, err := resdto.FromTransactionPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get transaction
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/transactions/{id} [get]
func (h *AdminTransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, transaction.ErrTransactionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Transaction not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	res, err := resdto.FromTransactionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
