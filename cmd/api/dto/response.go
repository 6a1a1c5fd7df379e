package dto

// ErrorResponseDTO is the shared error response shape.
type ErrorResponseDTO struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// MessageResponseDTO is the shared plain-message response shape.
type MessageResponseDTO struct {
	Message string `json:"message"`
}
