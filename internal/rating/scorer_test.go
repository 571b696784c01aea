package rating

import (
	"errors"
	"summoner-rating/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceMatch is a solo queue win: 9/3/6, 214 cs, 1619s.
func referenceMatch() *domain.MatchSummary {
	return &domain.MatchSummary{
		GameID:          3456789012,
		QueueID:         420,
		DurationSeconds: 1619,
		Identities: []domain.ParticipantIdentity{
			{ParticipantID: 1, SummonerName: "Josh"},
		},
		Participants: []domain.Participant{
			{
				ParticipantID: 1,
				TeamID:        100,
				Stats: domain.PlayerStats{
					Kills:              9,
					Deaths:             3,
					Assists:            6,
					TotalMinionsKilled: 214,
					VisionScore:        33,
					GoldEarned:         14155,
					TotalDamageDealt:   152170,
					TotalHeal:          7381,
					WardsPlaced:        12,
					WardsKilled:        9,
					FirstTowerAssist:   true,
				},
			},
		},
		Teams: []domain.TeamStats{
			{TeamID: 100, Win: true, TowerKills: 7, BaronKills: 1, DragonKills: 2, RiftHeraldKills: 2},
		},
	}
}

func TestScoreMatch_ReferenceGame(t *testing.T) {
	score, err := NewScorer(25).ScoreMatch(referenceMatch(), "Josh", domain.TierChallenger)
	require.NoError(t, err)
	assert.Equal(t, 56776, score)
}

func TestScoreMatch_Deterministic(t *testing.T) {
	s := NewScorer(25)
	m := referenceMatch()

	first, err := s.ScoreMatch(m, "Josh", domain.TierChallenger)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := s.ScoreMatch(m, "Josh", domain.TierChallenger)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, referenceMatch(), m, "scoring must not modify the match")
}

func TestScoreMatch_LossCostsTwoHundredTimesMultiplier(t *testing.T) {
	s := NewScorer(25)

	for _, tier := range []domain.Tier{domain.TierChallenger, domain.TierGold, domain.TierUnranked} {
		t.Run(string(tier), func(t *testing.T) {
			multiplier, err := Multiplier(tier)
			require.NoError(t, err)

			won, err := s.ScoreMatch(referenceMatch(), "Josh", tier)
			require.NoError(t, err)

			m := referenceMatch()
			m.Teams[0].Win = false
			lost, err := s.ScoreMatch(m, "Josh", tier)
			require.NoError(t, err)

			assert.Equal(t, 200*multiplier, won-lost)
		})
	}
}

func TestScoreMatch_FastGameBonus(t *testing.T) {
	// threshold above the 26.98 minute reference game
	slow, err := NewScorer(25).Evaluate(referenceMatch(), "Josh", domain.TierUnranked)
	require.NoError(t, err)
	fast, err := NewScorer(30).Evaluate(referenceMatch(), "Josh", domain.TierUnranked)
	require.NoError(t, err)

	assert.InDelta(t, 10, fast.Subtotal-slow.Subtotal, 1e-9)
}

func TestScoreMatch_ZeroDeathsUsesDivisorOne(t *testing.T) {
	m := referenceMatch()
	m.Participants[0].Stats.Deaths = 0

	e, err := NewScorer(25).Evaluate(m, "Josh", domain.TierUnranked)
	require.NoError(t, err)

	assert.Equal(t, Contribution{Signal: "kda", Points: 750}, e.Contributions[1])
}

func TestScoreMatch_FlagsAndMultiKills(t *testing.T) {
	base := referenceMatch()
	base.Participants[0].Stats.FirstTowerAssist = false

	baseline, err := NewScorer(25).Evaluate(base, "Josh", domain.TierUnranked)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		mutate func(*domain.PlayerStats)
		delta  float64
	}{
		{"first tower kill", func(s *domain.PlayerStats) { s.FirstTowerKill = true }, 50},
		{"first tower assist", func(s *domain.PlayerStats) { s.FirstTowerAssist = true }, 25},
		{"first blood kill", func(s *domain.PlayerStats) { s.FirstBloodKill = true }, 3},
		{"first blood assist", func(s *domain.PlayerStats) { s.FirstBloodAssist = true }, 1},
		{"first inhibitor kill", func(s *domain.PlayerStats) { s.FirstInhibitorKill = true }, 3},
		{"first inhibitor assist", func(s *domain.PlayerStats) { s.FirstInhibitorAssist = true }, 2},
		{"penta kill", func(s *domain.PlayerStats) { s.PentaKills = 1 }, 20},
		{"two quadra kills", func(s *domain.PlayerStats) { s.QuadraKills = 2 }, 30},
		{"triple kill", func(s *domain.PlayerStats) { s.TripleKills = 1 }, 10},
		{"ward placed", func(s *domain.PlayerStats) { s.WardsPlaced++ }, 0.5},
		{"ward killed", func(s *domain.PlayerStats) { s.WardsKilled++ }, 0.5},
		{"minion", func(s *domain.PlayerStats) { s.TotalMinionsKilled++ }, 1},
		{"vision", func(s *domain.PlayerStats) { s.VisionScore++ }, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := referenceMatch()
			m.Participants[0].Stats.FirstTowerAssist = false
			tc.mutate(&m.Participants[0].Stats)

			e, err := NewScorer(25).Evaluate(m, "Josh", domain.TierUnranked)
			require.NoError(t, err)
			assert.InDelta(t, tc.delta, e.Subtotal-baseline.Subtotal, 1e-9)
		})
	}
}

func TestScoreMatch_TeamObjectives(t *testing.T) {
	baseline, err := NewScorer(25).Evaluate(referenceMatch(), "Josh", domain.TierUnranked)
	require.NoError(t, err)

	m := referenceMatch()
	m.Teams[0].DragonKills++
	m.Teams[0].BaronKills++
	m.Teams[0].RiftHeraldKills++
	m.Teams[0].TowerKills++

	e, err := NewScorer(25).Evaluate(m, "Josh", domain.TierUnranked)
	require.NoError(t, err)
	assert.InDelta(t, 31, e.Subtotal-baseline.Subtotal, 1e-9)
}

func TestScoreMatch_UsesPlayersOwnTeam(t *testing.T) {
	m := referenceMatch()
	m.Identities = append(m.Identities, domain.ParticipantIdentity{ParticipantID: 6, SummonerName: "Enemy"})
	m.Participants = append(m.Participants, domain.Participant{ParticipantID: 6, TeamID: 200})
	m.Teams = append([]domain.TeamStats{{TeamID: 200, Win: false, TowerKills: 1}}, m.Teams...)

	score, err := NewScorer(25).ScoreMatch(m, "Josh", domain.TierChallenger)
	require.NoError(t, err)
	assert.Equal(t, 56776, score)

	enemy, err := NewScorer(25).Evaluate(m, "Enemy", domain.TierUnranked)
	require.NoError(t, err)
	assert.Equal(t, Contribution{Signal: "win", Points: 0}, enemy.Contributions[0])
}

func TestScoreMatch_FirstIdentityWins(t *testing.T) {
	m := referenceMatch()
	m.Identities = append(m.Identities, domain.ParticipantIdentity{ParticipantID: 2, SummonerName: "Josh"})
	m.Participants = append(m.Participants, domain.Participant{ParticipantID: 2, TeamID: 100})

	score, err := NewScorer(25).ScoreMatch(m, "Josh", domain.TierChallenger)
	require.NoError(t, err)
	assert.Equal(t, 56776, score)
}

func TestScoreMatch_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*domain.MatchSummary)
		player      string
		tier        domain.Tier
		expectedErr error
	}{
		{
			name:        "player not in identities",
			mutate:      func(m *domain.MatchSummary) {},
			player:      "Nobody",
			tier:        domain.TierGold,
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "name comparison is exact",
			mutate:      func(m *domain.MatchSummary) {},
			player:      "josh",
			tier:        domain.TierGold,
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "participant stats missing",
			mutate:      func(m *domain.MatchSummary) { m.Participants = nil },
			player:      "Josh",
			tier:        domain.TierGold,
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "team stats missing",
			mutate:      func(m *domain.MatchSummary) { m.Teams[0].TeamID = 200 },
			player:      "Josh",
			tier:        domain.TierGold,
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "zero duration",
			mutate:      func(m *domain.MatchSummary) { m.DurationSeconds = 0 },
			player:      "Josh",
			tier:        domain.TierGold,
			expectedErr: domain.ErrInvalidMatch,
		},
		{
			name:        "unknown tier",
			mutate:      func(m *domain.MatchSummary) {},
			player:      "Josh",
			tier:        "wood",
			expectedErr: domain.ErrUnknownTier,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := referenceMatch()
			tc.mutate(m)

			score, err := NewScorer(25).ScoreMatch(m, tc.player, tc.tier)
			assert.Zero(t, score)
			assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
		})
	}
}

func TestScoreMatch_NilMatch(t *testing.T) {
	_, err := NewScorer(25).ScoreMatch(nil, "Josh", domain.TierGold)
	assert.True(t, errors.Is(err, domain.ErrInvalidMatch))
}
