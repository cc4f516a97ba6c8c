package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded. Use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StandardError is the body of every error response.
type StandardError struct {
	Timestamp time.Time `json:"timestamp" example:"2026-10-19T15:04:05Z"`
	Status    int       `json:"status"    example:"400"`
	Error     string    `json:"error"     example:"Violação de regra de negócio"`
	Message   string    `json:"message"   example:"Pedido deve conter pelo menos um item."`
	Path      string    `json:"path"      example:"/api/pedidos"`
} // @name StandardError

// ValidationError is a StandardError carrying per-field messages.
type ValidationError struct {
	StandardError
	Fields map[string]string `json:"fields"`
} // @name ValidationError

// NewStandardError builds the error body for r. Timestamps are UTC.
func NewStandardError(r *http.Request, status int, title, message string) StandardError {
	return StandardError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      r.URL.Path,
	}
}

// JSONError writes a StandardError response. title defaults to the status text.
func JSONError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	if title == "" {
		title = http.StatusText(status)
	}
	JSON(w, status, NewStandardError(r, status, title, message))
}

// SafeError returns the error message for client responses.
// In production (isProduction=true), internal server errors (5xx) are replaced
// with a generic message to avoid leaking implementation details.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
