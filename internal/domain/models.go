package domain

import "fmt"

type Summoner struct {
	ID        string
	AccountID string
	Name      string
	Level     int
}

type PlayerStats struct {
	Kills              int
	Deaths             int
	Assists            int
	TotalMinionsKilled int
	VisionScore        int
	GoldEarned         int
	TotalDamageDealt   int
	TotalHeal          int
	WardsPlaced        int
	WardsKilled        int
	TripleKills        int
	QuadraKills        int
	PentaKills         int

	FirstBloodKill       bool
	FirstBloodAssist     bool
	FirstTowerKill       bool
	FirstTowerAssist     bool
	FirstInhibitorKill   bool
	FirstInhibitorAssist bool
}

type TeamStats struct {
	TeamID          int
	Win             bool
	TowerKills      int
	DragonKills     int
	BaronKills      int
	RiftHeraldKills int
}

type ParticipantIdentity struct {
	ParticipantID int
	SummonerName  string
	AccountID     string
	SummonerID    string
}

type Participant struct {
	ParticipantID int
	TeamID        int
	Stats         PlayerStats
}

// MatchSummary is one completed match as returned by the match endpoint.
type MatchSummary struct {
	GameID          int64
	QueueID         int
	DurationSeconds int
	Identities      []ParticipantIdentity
	Participants    []Participant
	Teams           []TeamStats
}

type MatchScore struct {
	GameID int64
	Score  int
}

type Rating struct {
	ID      string // nanoid
	Name    string
	Tier    Tier
	Value   int
	Matches []MatchScore
}

func (r Rating) String() string {
	return fmt.Sprintf("%s has a rating of %d", r.Name, r.Value)
}
