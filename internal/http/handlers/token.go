package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/globallang/gla-backend/internal/auth"
	"github.com/globallang/gla-backend/internal/http/respond"
)

// TokenHandler owns the token issuance endpoint.
type TokenHandler struct {
	tokens *auth.TokenManager
}

// NewTokenHandler constructs the handler.
func NewTokenHandler(tokens *auth.TokenManager) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue signs the posted claims and returns the bearer token. The claims are
// taken verbatim from the body; the frontend identity provider is the only
// thing vouching for the email inside them.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var claims map[string]any
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	token, err := h.tokens.Issue(claims)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to sign token")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"token": token})
}
