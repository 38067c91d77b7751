package models

import "github.com/Truecroo/championship-scoring/scoring"

// ResultResponse is one team's aggregated standing. JudgesScore 0 with
// JudgesCount 0 means no judge has scored yet; clients render that as
// "no data" rather than a real low score.
type ResultResponse struct {
	TeamID         string  `json:"team_id"`
	TeamName       string  `json:"team_name"`
	NominationID   string  `json:"nomination_id"`
	NominationName string  `json:"nomination_name"`
	JudgesScore    float64 `json:"judges_score"`
	JudgesCount    int     `json:"judges_count"`
	SpectatorsAvg  float64 `json:"spectators_avg"`
	SpectatorVotes int     `json:"spectator_votes"`
}

func TransformResult(r scoring.Result) ResultResponse {
	return ResultResponse{
		TeamID:         r.TeamID,
		TeamName:       r.TeamName,
		NominationID:   r.NominationID,
		NominationName: r.NominationName,
		JudgesScore:    r.JudgesScore,
		JudgesCount:    r.JudgesCount,
		SpectatorsAvg:  r.SpectatorsAvg,
		SpectatorVotes: r.SpectatorVotes,
	}
}
