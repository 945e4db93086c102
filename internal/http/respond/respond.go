// Package respond writes JSON responses in the shapes the marketplace
// frontend expects: raw payloads on success, an {error,message} envelope on
// failure.
package respond

import (
	"encoding/json"
	"net/http"
)

type errorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// JSON writes the payload as-is with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	write(w, status, payload)
}

// Error writes the shared error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, errorEnvelope{Error: true, Message: message})
}

// Text writes a plain-text body.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
