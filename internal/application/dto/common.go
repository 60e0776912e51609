package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse confirmación simple (p. ej. borrado).
type MessageResponse struct {
	Message string `json:"message"`
}
