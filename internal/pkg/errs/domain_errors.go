package errs

// Sentinels shared by the usecase layer and the HTTP mapping.
// Callers mark lower-level errors with these so errors.Is works across layers.
var (
	// Directory errors
	ErrVenueNotFound = New("venue not found")
	ErrCourtNotFound = New("court not found")
	ErrCourtInactive = New("court is not active")

	// Reservation errors
	ErrReservationNotFound  = New("reservation not found")
	ErrReservationConflict  = New("reservation conflict")
	ErrReservationCancelled = New("reservation is cancelled")
	ErrOutOfHours           = New("reservation is outside venue opening hours")
	ErrInvalidDuration      = New("invalid reservation duration")
	ErrSlotInPast           = New("reservation start is in the past")
	ErrDepositOutstanding   = New("deposit has not been paid")

	// Credit errors
	ErrCreditNotFound     = New("credit not found")
	ErrCreditNotAvailable = New("credit not available")
	ErrCreditMismatch     = New("credit cannot be applied to this reservation")

	// Ledger errors
	ErrInvalidMovement = New("invalid ledger movement")

	// Idempotency errors
	ErrIdempotencyKeyReused = New("idempotency key reused with different request")

	// Access errors
	ErrForbidden = New("forbidden")

	// Operation errors
	ErrStorageUnavailable = New("storage unavailable")
)
