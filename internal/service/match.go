package service

import (
	"context"
	"fmt"
	"summoner-rating/internal/api"
	"summoner-rating/internal/constants"
	"summoner-rating/internal/domain"
)

func (s *StatsService) GetRecentMatchIDs(ctx context.Context, region, accountID string, queueID, limit int) ([]int64, error) {
	if limit < 1 {
		return nil, fmt.Errorf("match history limit %d: %w", limit, domain.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	list, err := s.riot.GetMatchlist(ctx, region, accountID, queueID, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("account_id", accountID).Msg("failed to fetch match list")
		return nil, fmt.Errorf("failed to fetch match history: %w", err)
	}

	if len(list.Matches) == 0 {
		return nil, fmt.Errorf("no matches in queue %d for account %s: %w", queueID, accountID, domain.ErrNotFound)
	}

	ids := make([]int64, 0, limit)
	for _, m := range list.Matches {
		if len(ids) == limit {
			break
		}
		ids = append(ids, m.GameID)
	}

	s.logger.Debug().Str("account_id", accountID).Int("match_count", len(ids)).Msg("match list fetched")
	return ids, nil
}

func (s *StatsService) GetMatch(ctx context.Context, region string, gameID int64) (*domain.MatchSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.riot.GetMatch(ctx, region, gameID)
	if err != nil {
		s.logger.Error().Err(err).Int64("game_id", gameID).Msg("failed to fetch match")
		return nil, fmt.Errorf("failed to fetch match data: %w", err)
	}

	return toMatchSummary(resp), nil
}

func toMatchSummary(resp *api.MatchResponse) *domain.MatchSummary {
	m := &domain.MatchSummary{
		GameID:          resp.GameID,
		QueueID:         resp.QueueID,
		DurationSeconds: resp.GameDuration,
		Identities:      make([]domain.ParticipantIdentity, 0, len(resp.ParticipantIdentities)),
		Participants:    make([]domain.Participant, 0, len(resp.Participants)),
		Teams:           make([]domain.TeamStats, 0, len(resp.Teams)),
	}

	for _, pi := range resp.ParticipantIdentities {
		m.Identities = append(m.Identities, domain.ParticipantIdentity{
			ParticipantID: pi.ParticipantID,
			SummonerName:  pi.Player.SummonerName,
			AccountID:     pi.Player.AccountID,
			SummonerID:    pi.Player.SummonerID,
		})
	}

	for _, p := range resp.Participants {
		st := p.Stats
		m.Participants = append(m.Participants, domain.Participant{
			ParticipantID: p.ParticipantID,
			TeamID:        p.TeamID,
			Stats: domain.PlayerStats{
				Kills:                st.Kills,
				Deaths:               st.Deaths,
				Assists:              st.Assists,
				TotalMinionsKilled:   st.TotalMinionsKilled,
				VisionScore:          st.VisionScore,
				GoldEarned:           st.GoldEarned,
				TotalDamageDealt:     st.TotalDamageDealt,
				TotalHeal:            st.TotalHeal,
				WardsPlaced:          st.WardsPlaced,
				WardsKilled:          st.WardsKilled,
				TripleKills:          st.TripleKills,
				QuadraKills:          st.QuadraKills,
				PentaKills:           st.PentaKills,
				FirstBloodKill:       st.FirstBloodKill,
				FirstBloodAssist:     st.FirstBloodAssist,
				FirstTowerKill:       st.FirstTowerKill,
				FirstTowerAssist:     st.FirstTowerAssist,
				FirstInhibitorKill:   st.FirstInhibitorKill,
				FirstInhibitorAssist: st.FirstInhibitorAssist,
			},
		})
	}

	for _, t := range resp.Teams {
		m.Teams = append(m.Teams, domain.TeamStats{
			TeamID:          t.TeamID,
			Win:             t.Win == "Win",
			TowerKills:      t.TowerKills,
			DragonKills:     t.DragonKills,
			BaronKills:      t.BaronKills,
			RiftHeraldKills: t.RiftHeraldKills,
		})
	}

	return m
}
