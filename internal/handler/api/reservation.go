package api

import (
	"net/http"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	reqdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/request"
	resdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/response"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/httperr"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/middleware"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a court slot. Retries carrying the same Idempotency-Key return the original reservation.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed request"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
		return
	}

	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), actor, commands.ReserveInput{
		CourtID:         req.CourtID,
		PlayerID:        req.GetPlayerID(),
		Start:           req.Start,
		DurationMinutes: req.GetDurationMinutes(),
		DepositRequired: req.DepositRequired,
		IdempotencyKey:  idempotencyKey,
	})
	if err != nil {
		abortWithUseCaseError(c, err, "Reservation failed")
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	resp, err := resdto.FromReservation(result.Reservation)
	renderJSON(c, status, resp, err)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
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
		abortWithUseCaseError(c, err, "Failed to load reservation")
		return
	}
	resp, err := resdto.FromReservationView(view)
	renderJSON(c, http.StatusOK, resp, err)
}

// @Summary Cancel reservation
// @Description Cancel a reservation. A paid deposit becomes a credit for the player.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err, "Cancellation failed")
		return
	}
	resp, err := resdto.FromReservation(res)
	renderJSON(c, http.StatusOK, resp, err)
}

// @Summary Settle balance
// @Description Record the remaining balance paid at the venue
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SettleBalanceRequest true "Payment method"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/settle [post]
func (h *ReservationHandler) Settle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SettleBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.SettleBalance(c.Request.Context(), actor, id, ledger.Method(req.Method))
	if err != nil {
		abortWithUseCaseError(c, err, "Settlement failed")
		return
	}
	resp, err := resdto.FromReservation(res)
	renderJSON(c, http.StatusOK, resp, err)
}

// getIdempotencyKey returns nil when the header is absent.
func getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader(middleware.IdempotencyKeyHeader)
	if keyStr == "" {
		return nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, errInvalidIdempotencyKey
	}
	return &key, nil
}
