package service

import (
	"context"
	"fmt"
	"summoner-rating/internal/api"
	"summoner-rating/internal/config"
	"summoner-rating/internal/constants"
	"summoner-rating/internal/domain"

	"github.com/rs/zerolog"
)

// queueTypes maps matchmaking queue ids to the league endpoint's queueType.
var queueTypes = map[int]string{
	420: "RANKED_SOLO_5x5",
	440: "RANKED_FLEX_SR",
}

// StatsService fetches summoner, league and match data from the Riot API and
// converts it into domain values.
type StatsService struct {
	riot    *api.RiotClient
	queueID int
	logger  zerolog.Logger
}

func NewStatsService(riot *api.RiotClient, cfg *config.Config, logger zerolog.Logger) *StatsService {
	return &StatsService{riot: riot, queueID: cfg.QueueID, logger: logger}
}

func (s *StatsService) GetSummoner(ctx context.Context, region, name string) (*domain.Summoner, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	s.logger.Debug().Str("region", region).Str("summoner", name).Msg("fetching summoner")

	resp, err := s.riot.GetSummonerByName(ctx, region, name)
	if err != nil {
		s.logger.Error().Err(err).Str("summoner", name).Msg("failed to fetch summoner")
		return nil, fmt.Errorf("failed to fetch summoner %q: %w", name, err)
	}

	return &domain.Summoner{
		ID:        resp.ID,
		AccountID: resp.AccountID,
		Name:      resp.Name,
		Level:     resp.SummonerLevel,
	}, nil
}

// GetLeagueTier returns the tier of the entry matching the configured queue,
// falling back to the first entry. A summoner with no entries is unranked.
func (s *StatsService) GetLeagueTier(ctx context.Context, region, summonerID string) (domain.Tier, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	entries, err := s.riot.GetLeagueEntries(ctx, region, summonerID)
	if err != nil {
		s.logger.Error().Err(err).Str("summoner_id", summonerID).Msg("failed to fetch league entries")
		return "", fmt.Errorf("failed to fetch league data: %w", err)
	}

	if len(entries) == 0 {
		s.logger.Debug().Str("summoner_id", summonerID).Msg("no league entries, treating as unranked")
		return domain.TierUnranked, nil
	}

	entry := entries[0]
	if queueType, ok := queueTypes[s.queueID]; ok {
		for _, e := range entries {
			if e.QueueType == queueType {
				entry = e
				break
			}
		}
	}

	s.logger.Debug().
		Str("summoner_id", summonerID).
		Str("queue_type", entry.QueueType).
		Str("tier", entry.Tier).
		Str("rank", entry.Rank).
		Msg("league entry selected")

	return domain.NormalizeTier(entry.Tier), nil
}
