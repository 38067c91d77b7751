package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreateResponse acknowledges a write with the persisted row identifier.
type CreateResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}
