package fx

import (
	"summoner-rating/internal/api"
	"summoner-rating/internal/config"
	"summoner-rating/internal/logger"
	"summoner-rating/internal/rating"
	"summoner-rating/internal/server"
	"summoner-rating/internal/service"

	"go.uber.org/fx"
)

func ProvideRatingOptions(cfg *config.Config) rating.Options {
	return rating.Options{
		Region:            cfg.Region,
		QueueID:           cfg.QueueID,
		FastGameMinutes:   cfg.FastGameMinutes,
		MatchHistoryLimit: cfg.MatchHistoryLimit,
	}
}

// RatingModule provides everything needed to rate a summoner.
var RatingModule = fx.Options(
	logger.Module,
	config.Module,
	// api client
	fx.Provide(api.NewRiotClient),
	// svc
	fx.Provide(fx.Annotate(service.NewStatsService, fx.As(new(rating.StatsProvider)))),
	fx.Provide(ProvideRatingOptions),
	fx.Provide(rating.NewRater),
)

// Module adds the RPC server on top of RatingModule.
var Module = fx.Options(
	RatingModule,
	// server
	fx.Provide(func(r *rating.Rater) server.PlayerRater { return r }),
	fx.Provide(server.NewRatingServer),
	fx.Provide(server.NewHTTPHandler),
)
