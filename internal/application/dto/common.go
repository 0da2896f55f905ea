package dto

// ErrorResponse cuerpo de error HTTP de la superficie JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
