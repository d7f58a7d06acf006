package dto

// ErrorResponse cuerpo de error HTTP. RequestID solo se incluye en errores
// internos, para correlacionar la respuesta con la línea de log.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
