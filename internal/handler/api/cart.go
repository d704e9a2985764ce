package api

import (
	"log/slog"
	"net/http"

	"pta-storefront/internal/domain/cart"
	reqdto "pta-storefront/internal/handler/dto/request"
	resdto "pta-storefront/internal/handler/dto/response"
	"pta-storefront/internal/handler/httperr"
	"pta-storefront/internal/handler/middleware"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/commands"
	"pta-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the visitor's cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 500 {object} map[string]string
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sid, ok := visitorSession(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), sid)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add an event ticket line to the cart. Lines for the same event are not merged.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Add item request"
// @Success 201 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sid, ok := visitorSession(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Add(c.Request.Context(), sid, req.EventID, req.Quantity)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCartView(view))
}

// @Summary Update cart quantities
// @Description Set quantities by line key. Quantities below 1 are raised to 1 and unknown keys are ignored.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateCartItemsRequest true "Quantities by line key"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /api/cart/items [patch]
func (h *CartHandler) UpdateItems(c *gin.Context) {
	sid, ok := visitorSession(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quantities, err := req.ToKeyed()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid line key", nil)
		return
	}
	view, err := h.cmds.UpdateQuantities(c.Request.Context(), sid, quantities)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart items
// @Description Remove lines by key. Remaining lines are renumbered from zero.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.RemoveCartItemsRequest true "Line keys"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /api/cart/items [delete]
func (h *CartHandler) RemoveItems(c *gin.Context) {
	sid, ok := visitorSession(c)
	if !ok {
		return
	}
	var req reqdto.RemoveCartItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Remove(c.Request.Context(), sid, req.Keys)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sid, ok := visitorSession(c)
	if !ok {
		return
	}
	view, err := h.cmds.Clear(c.Request.Context(), sid)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func (h *CartHandler) abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, cart.ErrEventNotPurchasable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Event is not available for purchase", nil)
	case errs.Is(err, cart.ErrInvalidQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be at least 1", nil)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		slog.Error("cart operation failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// visitorSession aborts with 500 when the session middleware did not run.
func visitorSession(c *gin.Context) (string, bool) {
	sid, ok := middleware.GetVisitorSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("visitor session missing"), "Internal server error", nil)
		return "", false
	}
	return sid, true
}
