package api

import (
	"net/http"
	"strconv"

	"pta-storefront/internal/domain/event"
	resdto "pta-storefront/internal/handler/dto/response"
	"pta-storefront/internal/handler/httperr"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	q queries.EventQueries
}

func NewEventHandler(q queries.EventQueries) *EventHandler {
	return &EventHandler{q: q}
}

// @Summary List events
// @Description List public events ordered by date
// @Tags events
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.EventResponse
// @Failure 500 {object} map[string]string
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	items, err := h.q.ListPublic(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": resdto.FromEventList(items)})
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetPublic(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, event.ErrEventNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventView(view))
}
