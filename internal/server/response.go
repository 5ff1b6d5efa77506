package server

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeValidationError reports every violated rule together, never a
// partial list.
func writeValidationError(w http.ResponseWriter, messages []string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":    "Validation failed",
		"messages": messages,
	})
}
