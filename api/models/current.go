package models

// CurrentTeamSetRequest points spectators at a team, or clears the
// pointer when both references are null.
type CurrentTeamSetRequest struct {
	TeamID       *string `json:"team_id"`
	NominationID *string `json:"nomination_id"`
}

type CurrentTeamResponse struct {
	TeamID         string `json:"team_id"`
	NominationID   string `json:"nomination_id"`
	TeamName       string `json:"team_name"`
	NominationName string `json:"nomination_name"`
}
