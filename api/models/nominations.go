package models

import (
	"time"

	"github.com/Truecroo/championship-scoring/storage"
)

type NominationCreateRequest struct {
	Name string `json:"name"`
}

type NominationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func TransformNominationFromStorage(n *storage.Nomination) NominationResponse {
	return NominationResponse{
		ID:        n.ID,
		Name:      n.Name,
		CreatedAt: n.CreatedAt,
	}
}
