package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers browser clients must be able to send or read regardless of configuration.
var (
	requiredAllowHeaders  = []string{IdempotencyKeyHeader, PaymentTokenHeader}
	requiredExposeHeaders = []string{RequestIDHeader, "Retry-After"}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allow := withHeaders(cfg.AllowHeaders, requiredAllowHeaders)
	expose := withHeaders(cfg.ExposeHeaders, requiredExposeHeaders)

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_headers", allow,
		"expose_headers", expose,
	)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func withHeaders(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(c string) bool { return strings.EqualFold(c, h) }) {
			out = append(out, h)
		}
	}
	return out
}
