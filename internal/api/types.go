package api

import "github.com/samcharles93/emotive/internal/emotion"

// EmotionRequest is the body of POST /v1/emotion.
type EmotionRequest struct {
	Text string `json:"text"`
	// Labels optionally overrides the classifier's label list; it must
	// match the model's output class count.
	Labels []string `json:"labels,omitempty"`
}

// EmotionResponse wraps a classification report with the request id.
type EmotionResponse struct {
	ID string `json:"id"`
	emotion.Report
}

// ErrorResponse mirrors the CLI failure shape over HTTP, plus the
// request id.
type ErrorResponse struct {
	ID string `json:"id"`
	emotion.ErrorReport
}
