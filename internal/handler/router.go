package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/api"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/middleware"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slot        *api.SlotHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Credit      *api.CreditHandler
	Caja        *api.CajaHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Logger    *middleware.Logger
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, cfg, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/courts"), []route{
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Slot.List},
		})

		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodPost, Path: "/callback", Handler: h.Payment.Callback, Mw: []gin.HandlerFunc{middleware.RequirePaymentToken(cfg.Payment)}},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(mw.Auth.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Reserve, Mw: []gin.HandlerFunc{mw.RateLimit.Limit()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/settle", Handler: h.Reservation.Settle, Mw: []gin.HandlerFunc{mw.Auth.RequireRoleAtLeast(user.RoleOwner)}},
			})
		}

		credits := apiGroup.Group("/credits")
		credits.Use(mw.Auth.RequireAuth())
		{
			addRoutes(credits, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Credit.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Credit.Get},
				{Method: http.MethodPost, Path: "/:id/consume", Handler: h.Credit.Consume},
			})
		}

		venues := apiGroup.Group("/venues")
		venues.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRoleAtLeast(user.RoleOwner))
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "/:id/caja", Handler: h.Caja.Report},
				{Method: http.MethodPost, Path: "/:id/caja/movements", Handler: h.Caja.RecordMovement},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
