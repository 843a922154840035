package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/Arielcito/rcfapp-sub002/internal/handler/httperr"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const PaymentTokenHeader = "X-Payment-Token"

// RequirePaymentToken guards the payment collector callback with a shared secret.
func RequirePaymentToken(cfg config.PaymentConfig) gin.HandlerFunc {
	expected := []byte(cfg.CallbackToken)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(PaymentTokenHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidPaymentToken, "Invalid payment token", nil)
			return
		}
		c.Next()
	}
}
