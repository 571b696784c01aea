package server

import (
	"context"
	"errors"
	"summoner-rating/internal/domain"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

type PlayerRater interface {
	RatePlayer(ctx context.Context, playerName string) (*domain.Rating, error)
}

type RatingServer struct {
	rater  PlayerRater
	logger zerolog.Logger
}

func NewRatingServer(rater PlayerRater, logger zerolog.Logger) *RatingServer {
	return &RatingServer{rater: rater, logger: logger}
}

func (s *RatingServer) RatePlayer(ctx context.Context, req *connect.Request[RatePlayerRequest]) (*connect.Response[RatePlayerResponse], error) {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &s.logger
	}

	rating, err := s.rater.RatePlayer(ctx, req.Msg.Name)
	if err != nil {
		logger.Error().Err(err).Str("summoner", req.Msg.Name).Msg("rating failed")
		return nil, toConnectError(err)
	}

	resp := &RatePlayerResponse{
		RatingID: rating.ID,
		Name:     rating.Name,
		Tier:     string(rating.Tier),
		Rating:   rating.Value,
		Matches:  make([]MatchScore, 0, len(rating.Matches)),
	}
	for _, m := range rating.Matches {
		resp.Matches = append(resp.Matches, MatchScore{GameID: m.GameID, Score: m.Score})
	}

	return connect.NewResponse(resp), nil
}

func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, domain.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, domain.ErrUnknownTier), errors.Is(err, domain.ErrInvalidMatch):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
