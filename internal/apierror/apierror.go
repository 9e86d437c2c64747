// Package apierror defines the error envelopes returned to API clients.
// Every 4xx/5xx body goes through here so the shape stays uniform and
// internal details (store errors, stack traces) never reach the client.
package apierror

// APIError is the single-message envelope: {"detail": "..."}.
type APIError struct {
	Detail string `json:"detail"`
}

func New(detail string) *APIError {
	return &APIError{Detail: detail}
}

// ValidationError adds per-field tags for 422 responses.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
