//go:build unit || e2e

package httptest

import (
	"github.com/Arielcito/rcfapp-sub002/internal/handler/middleware"

	"github.com/google/uuid"
)

// IdempotencyHeaders returns request headers carrying key.
func IdempotencyHeaders(key uuid.UUID) map[string]string {
	return map[string]string{middleware.IdempotencyKeyHeader: key.String()}
}

// PaymentCallbackHeaders returns the headers the payment collector sends.
func PaymentCallbackHeaders(token string) map[string]string {
	return map[string]string{middleware.PaymentTokenHeader: token}
}
