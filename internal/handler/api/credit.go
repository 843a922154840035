package api

import (
	"net/http"

	reqdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/request"
	resdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/response"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/httperr"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	cmds commands.CreditCommands
	q    queries.CreditQueries
}

func NewCreditHandler(cmds commands.CreditCommands, q queries.CreditQueries) *CreditHandler {
	return &CreditHandler{cmds: cmds, q: q}
}

// @Summary Consume credit
// @Description Apply an available credit to a reservation whose deposit is pending
// @Tags credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit ID"
// @Param request body reqdto.ConsumeCreditRequest true "Target reservation"
// @Success 200 {object} resdto.MovementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /credits/{id}/consume [post]
func (h *CreditHandler) Consume(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	creditID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ConsumeCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	movement, err := h.cmds.ConsumeCredit(c.Request.Context(), actor, creditID, req.ReservationID)
	if err != nil {
		abortWithUseCaseError(c, err, "Credit consumption failed")
		return
	}
	resp, err := resdto.FromMovement(movement)
	renderJSON(c, http.StatusOK, resp, err)
}

// @Summary Get credit
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit ID"
// @Success 200 {object} resdto.CreditResponse
// @Failure 404 {object} httperr.Response
// @Router /credits/{id} [get]
func (h *CreditHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load credit")
		return
	}
	resp, err := resdto.FromCreditView(view)
	renderJSON(c, http.StatusOK, resp, err)
}

// @Summary List my credits
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param venue_id query string false "Venue ID"
// @Success 200 {array} resdto.CreditResponse
// @Failure 400 {object} httperr.Response
// @Router /credits [get]
func (h *CreditHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var query reqdto.CreditListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListByPlayer(c.Request.Context(), actor, query.GetVenueID())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list credits")
		return
	}
	resp, err := resdto.FromCreditViews(views)
	renderJSON(c, http.StatusOK, resp, err)
}
