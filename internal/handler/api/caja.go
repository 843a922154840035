package api

import (
	"net/http"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	reqdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/request"
	resdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/response"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/httperr"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct {
	cmds commands.CashCommands
	q    queries.CajaQueries
}

func NewCajaHandler(cmds commands.CashCommands, q queries.CajaQueries) *CajaHandler {
	return &CajaHandler{cmds: cmds, q: q}
}

// @Summary Cash ledger report
// @Description Movements and totals of a venue over whole local days, both ends included
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param from query string true "First local date (YYYY-MM-DD)"
// @Param to query string true "Last local date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CajaResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /venues/{id}/caja [get]
func (h *CajaHandler) Report(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	venueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var query reqdto.CajaQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from and to are required", nil)
		return
	}
	from, err := clock.ParseDate(query.From)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date, expected YYYY-MM-DD", nil)
		return
	}
	to, err := clock.ParseDate(query.To)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date, expected YYYY-MM-DD", nil)
		return
	}

	report, err := h.q.ReportDays(c.Request.Context(), actor, venueID, from, to)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to build cash report")
		return
	}
	resp, err := resdto.FromCajaReport(report)
	renderJSON(c, http.StatusOK, resp, err)
}

// @Summary Record manual movement
// @Description Cash entered by hand. Expenses are stored negative whatever the sign sent.
// @Tags caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.RecordMovementRequest true "Movement"
// @Success 201 {object} resdto.MovementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /venues/{id}/caja/movements [post]
func (h *CajaHandler) RecordMovement(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	venueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	m, err := h.cmds.RecordManualMovement(c.Request.Context(), actor, commands.ManualMovementInput{
		VenueID:     venueID,
		Kind:        ledger.Kind(req.Kind),
		AmountCents: req.AmountCents,
		Description: req.GetDescription(),
		Method:      ledger.Method(req.Method),
	})
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to record movement")
		return
	}
	resp, err := resdto.FromMovement(m)
	renderJSON(c, http.StatusCreated, resp, err)
}
