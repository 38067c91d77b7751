package models

import (
	"time"

	"github.com/Truecroo/championship-scoring/scoring"
	"github.com/Truecroo/championship-scoring/storage"
)

type ScoreCreateRequest struct {
	JudgeID      string                  `json:"judge_id"`
	NominationID string                  `json:"nomination_id"`
	TeamID       string                  `json:"team_id"`
	Scores       scoring.CriterionScores `json:"scores"`
}

// ScoreUpdateRequest is used when the caller already holds the row id
// from a prior create; only the criterion values are replaced.
type ScoreUpdateRequest struct {
	Scores scoring.CriterionScores `json:"scores"`
}

type ScoreResponse struct {
	ID           string                  `json:"id"`
	JudgeID      string                  `json:"judge_id"`
	NominationID string                  `json:"nomination_id"`
	TeamID       string                  `json:"team_id"`
	Scores       scoring.CriterionScores `json:"scores"`
	Average      float64                 `json:"average"`
	Timestamp    time.Time               `json:"timestamp"`
	CreatedAt    time.Time               `json:"created_at"`
}

func TransformScoreFromStorage(s *storage.JudgeScore) ScoreResponse {
	return ScoreResponse{
		ID:           s.ID,
		JudgeID:      s.JudgeID,
		NominationID: s.NominationID,
		TeamID:       s.TeamID,
		Scores:       CriteriaFromStorage(s),
		Average:      s.WeightedAverage,
		Timestamp:    s.CreatedAt,
		CreatedAt:    s.CreatedAt,
	}
}

func CriteriaFromStorage(s *storage.JudgeScore) scoring.CriterionScores {
	return scoring.CriterionScores{
		Choreography: scoring.CriterionScore{Score: s.ChoreographyScore, Comment: s.ChoreographyComment},
		Technique:    scoring.CriterionScore{Score: s.TechniqueScore, Comment: s.TechniqueComment},
		Artistry:     scoring.CriterionScore{Score: s.ArtistryScore, Comment: s.ArtistryComment},
		Overall:      scoring.CriterionScore{Score: s.OverallScore, Comment: s.OverallComment},
	}
}

// ApplyCriteriaToStorage flattens the criterion set onto the nullable
// per-criterion columns.
func ApplyCriteriaToStorage(dst *storage.JudgeScore, c scoring.CriterionScores) {
	dst.ChoreographyScore = c.Choreography.Score
	dst.ChoreographyComment = c.Choreography.Comment
	dst.TechniqueScore = c.Technique.Score
	dst.TechniqueComment = c.Technique.Comment
	dst.ArtistryScore = c.Artistry.Score
	dst.ArtistryComment = c.Artistry.Comment
	dst.OverallScore = c.Overall.Score
	dst.OverallComment = c.Overall.Comment
}
