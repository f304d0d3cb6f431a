// Package apierror defines the error envelopes returned by the API.
// Every 4xx/5xx goes through here so internal details (DB errors,
// stack traces) never leak to the client.
package apierror

// APIError is the envelope for simple errors.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError groups the per-field errors of an invalid request.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
