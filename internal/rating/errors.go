package rating

import "fmt"

// Stage names the step of a rating that failed.
type Stage string

const (
	StageSummoner     Stage = "summoner lookup"
	StageLeague       Stage = "league lookup"
	StageMatchHistory Stage = "match history lookup"
	StageMatch        Stage = "match lookup"
	StageScoring      Stage = "scoring"
)

type StageError struct {
	Stage  Stage
	GameID int64
	Err    error
}

func (e *StageError) Error() string {
	if e.GameID != 0 {
		return fmt.Sprintf("%s for game %d: %v", e.Stage, e.GameID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
