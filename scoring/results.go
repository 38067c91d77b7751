package scoring

// Team identifies one competitor entry for result labeling.
type Team struct {
	ID             string
	Name           string
	NominationID   string
	NominationName string
}

// ScoreValue is one persisted score value attributed to a team within a
// nomination. For judges the value is the stored weighted average, for
// spectators the raw vote.
type ScoreValue struct {
	TeamID       string
	NominationID string
	Value        float64
}

// Result is the per-team summary of judge and spectator scoring.
// JudgesScore 0 with JudgesCount 0 means "no data", not a real low score;
// the same goes for the spectator pair.
type Result struct {
	TeamID         string
	TeamName       string
	NominationID   string
	NominationName string
	JudgesScore    float64
	JudgesCount    int
	SpectatorsAvg  float64
	SpectatorVotes int
}

type groupKey struct {
	teamID       string
	nominationID string
}

// Summarize folds all persisted scores into one Result per team. Both
// score collections are grouped by (team, nomination) in a single pass up
// front, so a team competing in two nominations never mixes their scores
// and the fold stays linear in the number of score rows.
//
// Output order follows the teams slice; ranking is a presentation concern
// left to the caller.
func Summarize(teams []Team, judgeScores, spectatorScores []ScoreValue) []Result {
	judgeGroups := groupValues(judgeScores)
	spectatorGroups := groupValues(spectatorScores)

	results := make([]Result, 0, len(teams))
	for _, team := range teams {
		key := groupKey{teamID: team.ID, nominationID: team.NominationID}

		judgeAvgs := judgeGroups[key]
		var judgesScore float64
		if len(judgeAvgs) > 0 {
			judgesScore = Round2(mean(judgeAvgs))
		}

		votes := spectatorGroups[key]
		var spectatorsAvg float64
		if len(votes) > 0 {
			spectatorsAvg = Round2(mean(votes))
		}

		results = append(results, Result{
			TeamID:         team.ID,
			TeamName:       team.Name,
			NominationID:   team.NominationID,
			NominationName: team.NominationName,
			JudgesScore:    judgesScore,
			JudgesCount:    len(judgeAvgs),
			SpectatorsAvg:  spectatorsAvg,
			SpectatorVotes: len(votes),
		})
	}
	return results
}

func groupValues(scores []ScoreValue) map[groupKey][]float64 {
	groups := make(map[groupKey][]float64)
	for _, s := range scores {
		key := groupKey{teamID: s.TeamID, nominationID: s.NominationID}
		groups[key] = append(groups[key], s.Value)
	}
	return groups
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
