package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje legible>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}
