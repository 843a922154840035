package api

import (
	"net/http"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	reqdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/request"
	resdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/response"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/httperr"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// PaymentHandler receives notifications from the payment collector.
type PaymentHandler struct {
	cmds commands.ReservationCommands
}

func NewPaymentHandler(cmds commands.ReservationCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Payment callback
// @Description Deposit paid or abandoned, as reported by the payment collector
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Payment-Token header string true "Shared callback token"
// @Param request body reqdto.PaymentCallbackRequest true "Payment event"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/callback [post]
func (h *PaymentHandler) Callback(c *gin.Context) {
	var req reqdto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	var (
		res *reservation.Reservation
		err error
	)
	switch req.Event {
	case reqdto.PaymentEventPaid:
		// The collector only reports card and transfer charges; card is its default.
		method := ledger.Method(req.Method)
		if method == ledger.MethodNone {
			method = ledger.MethodCard
		}
		res, err = h.cmds.MarkPaid(c.Request.Context(), req.ReservationID, method)
	default:
		var at time.Time
		if req.OccurredAt != nil {
			at = *req.OccurredAt
		}
		res, err = h.cmds.MarkCancelled(c.Request.Context(), req.ReservationID, at)
	}
	if err != nil {
		abortWithUseCaseError(c, err, "Payment callback failed")
		return
	}
	resp, err := resdto.FromReservation(res)
	renderJSON(c, http.StatusOK, resp, err)
}
