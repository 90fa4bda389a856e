package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (borrados, logout).
type MessageResponse struct {
	Message string `json:"message"`
}

// Orden de listados por fecha de creación.
const (
	SortCreatedAtAsc  = "createdAt"
	SortCreatedAtDesc = "-createdAt"
)
