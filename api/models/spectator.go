package models

import (
	"time"

	"github.com/Truecroo/championship-scoring/storage"
)

// SpectatorScoreCreateRequest carries one spectator vote. Score is a
// pointer so a missing field is distinguishable from a zero value.
type SpectatorScoreCreateRequest struct {
	NominationID string   `json:"nomination_id"`
	TeamID       string   `json:"team_id"`
	Score        *float64 `json:"score"`
	Fingerprint  string   `json:"fingerprint"`
}

type SpectatorScoreResponse struct {
	ID           string    `json:"id"`
	NominationID string    `json:"nomination_id"`
	TeamID       string    `json:"team_id"`
	Score        float64   `json:"score"`
	Fingerprint  string    `json:"fingerprint"`
	CreatedAt    time.Time `json:"created_at"`
}

// SpectatorCheckResponse is the lightweight polling payload: the team's
// vote count plus whether the calling fingerprint already voted, instead
// of shipping every vote row to every client.
type SpectatorCheckResponse struct {
	VoteCount int64 `json:"vote_count"`
	HasVoted  bool  `json:"has_voted"`
}

func TransformSpectatorScoreFromStorage(s *storage.SpectatorScore) SpectatorScoreResponse {
	return SpectatorScoreResponse{
		ID:           s.ID,
		NominationID: s.NominationID,
		TeamID:       s.TeamID,
		Score:        s.Score,
		Fingerprint:  s.Fingerprint,
		CreatedAt:    s.CreatedAt,
	}
}
