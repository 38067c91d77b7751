package models

import (
	"time"

	"github.com/Truecroo/championship-scoring/storage"
)

type TeamCreateRequest struct {
	Name         string `json:"name"`
	NominationID string `json:"nomination_id"`
}

// TeamReorderRequest carries team ids in the desired display order.
type TeamReorderRequest struct {
	TeamIDs []string `json:"team_ids"`
}

type TeamResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NominationID string    `json:"nomination_id"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func TransformTeamFromStorage(t *storage.Team) TeamResponse {
	return TeamResponse{
		ID:           t.ID,
		Name:         t.Name,
		NominationID: t.NominationID,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
	}
}
