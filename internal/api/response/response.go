package response

import (
	"encoding/json"
	"net/http"
)

// FieldError describes one offending request field in a shape-validation
// failure. Loc mirrors the path-style location the API has always reported.
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// JSON sends a JSON response with the given status
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// OK sends a 200 OK response with data
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Message sends a 200 OK confirmation message
func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, map[string]string{"message": message})
}

// Error sends an error response wrapped in a detail field
func Error(w http.ResponseWriter, status int, detail any) {
	JSON(w, status, map[string]any{"detail": detail})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(w http.ResponseWriter, detail any) {
	Error(w, http.StatusBadRequest, detail)
}

// NotFound sends a 404 Not Found response
func NotFound(w http.ResponseWriter, detail any) {
	Error(w, http.StatusNotFound, detail)
}

// UnprocessableEntity sends a 422 response with the per-field problem list
func UnprocessableEntity(w http.ResponseWriter, errors []FieldError) {
	Error(w, http.StatusUnprocessableEntity, errors)
}

// TooManyRequests sends a 429 Too Many Requests response
func TooManyRequests(w http.ResponseWriter, detail any) {
	Error(w, http.StatusTooManyRequests, detail)
}

// InternalError sends a 500 Internal Server Error response
func InternalError(w http.ResponseWriter, detail any) {
	Error(w, http.StatusInternalServerError, detail)
}

// ServiceUnavailable sends a 503 Service Unavailable response
func ServiceUnavailable(w http.ResponseWriter, detail any) {
	Error(w, http.StatusServiceUnavailable, detail)
}
