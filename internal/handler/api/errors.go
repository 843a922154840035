package api

import (
	"net/http"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/httperr"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/middleware"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingActor          = errs.New("actor missing from context")
	errInvalidIdempotencyKey = errs.New("invalid idempotency key format")
)

type errorMapping struct {
	target error
	status int
	code   string
	msg    string
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{errs.ErrReservationConflict, http.StatusConflict, "SLOT_ALREADY_BOOKED", "Slot already booked"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "IDEMPOTENCY_KEY_REUSED", "Idempotency key reused with a different request"},
	{errs.ErrCreditNotAvailable, http.StatusConflict, "CREDIT_NOT_AVAILABLE", "Credit not available"},
	{errs.ErrReservationCancelled, http.StatusConflict, "RESERVATION_CANCELLED", "Reservation is cancelled"},
	{errs.ErrDepositOutstanding, http.StatusConflict, "DEPOSIT_OUTSTANDING", "Deposit has not been paid"},

	{errs.ErrVenueNotFound, http.StatusNotFound, "VENUE_NOT_FOUND", "Venue not found"},
	{errs.ErrCourtNotFound, http.StatusNotFound, "COURT_NOT_FOUND", "Court not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation not found"},
	{errs.ErrCreditNotFound, http.StatusNotFound, "CREDIT_NOT_FOUND", "Credit not found"},

	{errs.ErrOutOfHours, http.StatusUnprocessableEntity, "OUT_OF_HOURS", "Reservation is outside opening hours"},
	{errs.ErrInvalidDuration, http.StatusUnprocessableEntity, "INVALID_DURATION", "Invalid reservation duration"},
	{errs.ErrSlotInPast, http.StatusUnprocessableEntity, "SLOT_IN_PAST", "Reservation start is in the past"},
	{errs.ErrCourtInactive, http.StatusUnprocessableEntity, "COURT_INACTIVE", "Court is not active"},
	{errs.ErrCreditMismatch, http.StatusUnprocessableEntity, "CREDIT_MISMATCH", "Credit cannot be applied to this reservation"},
	{errs.ErrInvalidMovement, http.StatusUnprocessableEntity, "INVALID_MOVEMENT", "Invalid ledger movement"},
	{queries.ErrInvalidRange, http.StatusUnprocessableEntity, "INVALID_RANGE", "Invalid date range"},

	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "Forbidden"},
	{errs.ErrStorageUnavailable, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Service temporarily unavailable"},
}

func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, m.code, err, m.msg)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

// renderJSON writes body, or aborts with 500 when the response could not be built.
func renderJSON[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(status, body)
}

func actorFrom(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
	}
	return actor, ok
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
