package rating

import (
	"fmt"
	"math"
	"summoner-rating/internal/domain"
)

// Contribution is one weighted signal of a match score, before the tier
// multiplier is applied.
type Contribution struct {
	Signal string
	Points float64
}

type Evaluation struct {
	GameID        int64
	Contributions []Contribution
	Subtotal      float64
	Multiplier    int
	Score         int
}

// Scorer turns a single match into a score. It holds no state beyond its
// threshold, so a value can be shared and reused freely.
type Scorer struct {
	fastGameMinutes float64
}

func NewScorer(fastGameMinutes float64) Scorer {
	return Scorer{fastGameMinutes: fastGameMinutes}
}

// ScoreMatch scores the match for playerName at the given tier.
func (s Scorer) ScoreMatch(match *domain.MatchSummary, playerName string, tier domain.Tier) (int, error) {
	e, err := s.Evaluate(match, playerName, tier)
	if err != nil {
		return 0, err
	}
	return e.Score, nil
}

func (s Scorer) Evaluate(match *domain.MatchSummary, playerName string, tier domain.Tier) (*Evaluation, error) {
	if match == nil {
		return nil, fmt.Errorf("nil match: %w", domain.ErrInvalidMatch)
	}

	multiplier, err := Multiplier(tier)
	if err != nil {
		return nil, err
	}

	stats, team, err := locate(match, playerName)
	if err != nil {
		return nil, err
	}

	if match.DurationSeconds <= 0 {
		return nil, fmt.Errorf("game %d has duration %ds: %w", match.GameID, match.DurationSeconds, domain.ErrInvalidMatch)
	}
	gameMinutes := float64(match.DurationSeconds) / 60

	contributions := s.Breakdown(stats, team, gameMinutes)

	var subtotal float64
	for _, c := range contributions {
		subtotal += c.Points
	}

	return &Evaluation{
		GameID:        match.GameID,
		Contributions: contributions,
		Subtotal:      subtotal,
		Multiplier:    multiplier,
		Score:         int(math.Floor(subtotal * float64(multiplier))),
	}, nil
}

// Breakdown lists every weighted signal, highest-value metrics first. The
// order is also the summation order.
func (s Scorer) Breakdown(stats domain.PlayerStats, team domain.TeamStats, gameMinutes float64) []Contribution {
	// a deathless game counts the full kill participation
	deaths := stats.Deaths
	if deaths < 1 {
		deaths = 1
	}

	fastGame := gameMinutes < s.fastGameMinutes

	return []Contribution{
		{"win", flag(team.Win, 200)},
		{"kda", float64(stats.Kills+stats.Assists) / float64(deaths) * 50},
		{"minions_killed", float64(stats.TotalMinionsKilled)},
		{"vision_score", float64(stats.VisionScore)},
		{"gold_per_minute", float64(stats.GoldEarned) / gameMinutes / 2},
		{"first_tower_kill", flag(stats.FirstTowerKill, 50)},
		{"first_tower_assist", flag(stats.FirstTowerAssist, 25)},
		{"dragon_kills", float64(team.DragonKills * 10)},

		{"penta_kills", float64(stats.PentaKills * 20)},
		{"quadra_kills", float64(stats.QuadraKills * 15)},
		{"triple_kills", float64(stats.TripleKills * 10)},
		{"damage_per_minute", float64(stats.TotalDamageDealt) / gameMinutes / 100},
		{"heal_per_minute", float64(stats.TotalHeal) / gameMinutes / 10},
		{"baron_kills", float64(team.BaronKills * 10)},
		{"herald_kills", float64(team.RiftHeraldKills * 10)},
		{"fast_game", flag(fastGame, 10)},

		{"wards_placed", float64(stats.WardsPlaced) / 2},
		{"wards_killed", float64(stats.WardsKilled) / 2},
		{"tower_kills", float64(team.TowerKills)},
		{"first_blood_kill", flag(stats.FirstBloodKill, 3)},
		{"first_blood_assist", flag(stats.FirstBloodAssist, 1)},
		{"first_inhibitor_kill", flag(stats.FirstInhibitorKill, 3)},
		{"first_inhibitor_assist", flag(stats.FirstInhibitorAssist, 2)},
	}
}

// locate finds the stats of the first participant named playerName and the
// stats of that participant's team.
func locate(match *domain.MatchSummary, playerName string) (domain.PlayerStats, domain.TeamStats, error) {
	participantID := 0
	for _, pi := range match.Identities {
		if pi.SummonerName == playerName {
			participantID = pi.ParticipantID
			break
		}
	}
	if participantID == 0 {
		return domain.PlayerStats{}, domain.TeamStats{}, fmt.Errorf("participant %q in game %d: %w", playerName, match.GameID, domain.ErrNotFound)
	}

	var (
		stats  domain.PlayerStats
		teamID int
		found  bool
	)
	for _, p := range match.Participants {
		if p.ParticipantID == participantID {
			stats, teamID, found = p.Stats, p.TeamID, true
			break
		}
	}
	if !found {
		return domain.PlayerStats{}, domain.TeamStats{}, fmt.Errorf("stats for participant %d in game %d: %w", participantID, match.GameID, domain.ErrNotFound)
	}

	for _, t := range match.Teams {
		if t.TeamID == teamID {
			return stats, t, nil
		}
	}
	return domain.PlayerStats{}, domain.TeamStats{}, fmt.Errorf("team %d in game %d: %w", teamID, match.GameID, domain.ErrNotFound)
}

func flag(b bool, points float64) float64 {
	if b {
		return points
	}
	return 0
}
