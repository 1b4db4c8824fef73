package dto

import "time"

type ResumeScoreRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	ResumeText     string `json:"resume_text" validate:"required"`
}

type ResumeScoreResponse struct {
	Score    int    `json:"score"`
	Analysis string `json:"analysis"`
}

// APIKeyResponse hands out a token referencing the cached key row, never
// the provider secret itself.
type APIKeyResponse struct {
	TempToken  string    `json:"temp_token"`
	ValidUntil time.Time `json:"valid_until"`
}
