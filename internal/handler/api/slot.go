package api

import (
	"net/http"

	resdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/response"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/httperr"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List slots
// @Description Slots of one court for a local date of its venue, each AVAILABLE or BOOKED
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /courts/{id}/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	courtID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	date, err := clock.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	listing, err := h.q.ListSlots(c.Request.Context(), courtID, date)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list slots")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotListing(listing))
}
