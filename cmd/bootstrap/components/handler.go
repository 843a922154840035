package components

import (
	"github.com/Arielcito/rcfapp-sub002/internal/handler"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/api"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/middleware"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewCreditHandler,
		api.NewCajaHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routeParams struct {
	fx.In

	Engine *gin.Engine
	Config config.Config

	Slot        *api.SlotHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Credit      *api.CreditHandler
	Caja        *api.CajaHandler

	Auth      *middleware.AuthMiddleware
	Logger    *middleware.Logger
	RateLimit *middleware.RateLimiter `optional:"true"`
}

func registerRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config,
		handler.Handlers{
			Slot:        p.Slot,
			Reservation: p.Reservation,
			Payment:     p.Payment,
			Credit:      p.Credit,
			Caja:        p.Caja,
		},
		handler.Middlewares{
			Auth:      p.Auth,
			Logger:    p.Logger,
			RateLimit: p.RateLimit,
		},
	)
}
