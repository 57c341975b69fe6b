// Package apierror provides the standardized error response structure for the API.
// All errors returned to clients go through this package so that every endpoint —
// including the legacy paths that used to fail ungracefully — answers with the
// same envelope.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}
