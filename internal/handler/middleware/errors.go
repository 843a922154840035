package middleware

import "github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"

var (
	errMissingToken        = errs.New("access token required")
	errMissingActor        = errs.New("actor missing from context")
	errInsufficientRole    = errs.New("insufficient role")
	errInvalidPaymentToken = errs.New("invalid payment token")
	errRateLimited         = errs.New("rate limit exceeded")
	errLimiterUnavailable  = errs.New("rate limiter unavailable")
)
