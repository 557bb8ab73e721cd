package api

// Shared response envelopes for the HTTP handlers.

type ErrorResponse struct {
	Error string `json:"error" example:"Unable to load the schedule."`
}

type MessageResponse struct {
	Message string `json:"message" example:"Booked successfully!"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
