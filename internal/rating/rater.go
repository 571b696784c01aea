package rating

import (
	"context"
	"fmt"
	"strings"
	"summoner-rating/internal/constants"
	"summoner-rating/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type StatsProvider interface {
	GetSummoner(ctx context.Context, region, name string) (*domain.Summoner, error)
	GetRecentMatchIDs(ctx context.Context, region, accountID string, queueID, limit int) ([]int64, error)
	GetMatch(ctx context.Context, region string, gameID int64) (*domain.MatchSummary, error)
	GetLeagueTier(ctx context.Context, region, summonerID string) (domain.Tier, error)
}

// Options is copied into the Rater at construction and never mutated.
type Options struct {
	Region            string
	QueueID           int
	FastGameMinutes   float64
	MatchHistoryLimit int
}

type Rater struct {
	provider StatsProvider
	scorer   Scorer
	opts     Options
	logger   zerolog.Logger
	newID    func() (string, error)
}

func NewRater(provider StatsProvider, opts Options, logger zerolog.Logger) *Rater {
	return &Rater{
		provider: provider,
		scorer:   NewScorer(opts.FastGameMinutes),
		opts:     opts,
		logger:   logger,
		newID:    func() (string, error) { return gonanoid.New() },
	}
}

// RatePlayer sums the scores of the player's most recent matches in the
// configured queue. Any failed lookup aborts the whole rating.
func (r *Rater) RatePlayer(ctx context.Context, playerName string) (*domain.Rating, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, fmt.Errorf("summoner name is empty: %w", domain.ErrInvalidArgument)
	}
	if r.opts.MatchHistoryLimit < 1 {
		return nil, fmt.Errorf("match history limit %d: %w", r.opts.MatchHistoryLimit, domain.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	id, err := r.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate rating id: %w", err)
	}
	logger := r.logger.With().Str("rating_id", id).Str("summoner", playerName).Logger()

	logger.Info().Str("region", r.opts.Region).Int("queue_id", r.opts.QueueID).Int("limit", r.opts.MatchHistoryLimit).Msg("rating summoner")

	summoner, err := r.provider.GetSummoner(ctx, r.opts.Region, playerName)
	if err != nil {
		return nil, &StageError{Stage: StageSummoner, Err: err}
	}

	tier, err := r.provider.GetLeagueTier(ctx, r.opts.Region, summoner.ID)
	if err != nil {
		return nil, &StageError{Stage: StageLeague, Err: err}
	}
	multiplier, err := Multiplier(tier)
	if err != nil {
		return nil, &StageError{Stage: StageLeague, Err: err}
	}
	logger.Debug().Str("tier", string(tier)).Int("multiplier", multiplier).Msg("tier resolved")

	gameIDs, err := r.provider.GetRecentMatchIDs(ctx, r.opts.Region, summoner.AccountID, r.opts.QueueID, r.opts.MatchHistoryLimit)
	if err != nil {
		return nil, &StageError{Stage: StageMatchHistory, Err: err}
	}

	rating := &domain.Rating{
		ID:      id,
		Name:    summoner.Name,
		Tier:    domain.NormalizeTier(string(tier)),
		Matches: make([]domain.MatchScore, 0, len(gameIDs)),
	}

	for _, gameID := range gameIDs {
		match, err := r.provider.GetMatch(ctx, r.opts.Region, gameID)
		if err != nil {
			return nil, &StageError{Stage: StageMatch, GameID: gameID, Err: err}
		}

		eval, err := r.scorer.Evaluate(match, summoner.Name, tier)
		if err != nil {
			return nil, &StageError{Stage: StageScoring, GameID: gameID, Err: err}
		}

		if e := logger.Debug(); e.Enabled() {
			for _, c := range eval.Contributions {
				e.Float64(c.Signal, c.Points)
			}
			e.Int64("game_id", gameID).Float64("subtotal", eval.Subtotal).Int("score", eval.Score).Msg("match scored")
		}

		rating.Value += eval.Score
		rating.Matches = append(rating.Matches, domain.MatchScore{GameID: gameID, Score: eval.Score})
	}

	logger.Info().
		Str("name", rating.Name).
		Str("tier", string(rating.Tier)).
		Int("matches", len(rating.Matches)).
		Int("rating", rating.Value).
		Msg("summoner rated")

	return rating, nil
}
