package components

import (
	"table-booking/internal/handler"
	"table-booking/internal/handler/api"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/jwt"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config, tokens *jwt.Service) *api.AuthHandler {
			return api.NewAuthHandler(cmds, q, cfg.Cookie, tokens.TokenDuration())
		},
		api.NewUserHandler,
		api.NewRestaurantHandler,
		api.NewBookingHandler,
		api.NewRewardHandler,
		api.NewCronHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	restaurant *api.RestaurantHandler,
	booking *api.BookingHandler,
	reward *api.RewardHandler,
	cron *api.CronHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		User:       user,
		Restaurant: restaurant,
		Booking:    booking,
		Reward:     reward,
		Cron:       cron,
	}
}
