package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody carries a short machine-readable reason for 4xx/5xx responses.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, statusCode int, reason string) {
	JSON(w, statusCode, ErrorBody{Error: reason})
}

func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Error: "validation failed", Fields: fields})
}

func BadRequest(w http.ResponseWriter, reason string) {
	if reason == "" {
		reason = "bad request"
	}
	Error(w, http.StatusBadRequest, reason)
}

func NotFound(w http.ResponseWriter, reason string) {
	if reason == "" {
		reason = "resource not found"
	}
	Error(w, http.StatusNotFound, reason)
}

func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}
