package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/globallang/gla-backend/internal/http/respond"
	"github.com/globallang/gla-backend/internal/middleware"
	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler owns the cart collection endpoints.
type CartHandler struct {
	carts storage.CartStore
	log   zerolog.Logger
}

// NewCartHandler constructs the handler.
func NewCartHandler(carts storage.CartStore, log zerolog.Logger) *CartHandler {
	return &CartHandler{carts: carts, log: log}
}

// List returns the cart for the email query param. The token's email claim
// must match the requested email; learners cannot read each other's carts.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respond.Error(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	if middleware.EmailFromContext(r.Context()) != email {
		respond.Error(w, http.StatusForbidden, "forbidden access")
		return
	}
	items, err := h.carts.ListCartItemsByEmail(r.Context(), email)
	if err != nil {
		h.log.Error().Err(err).Msg("list cart items")
		respond.Error(w, http.StatusInternalServerError, "failed to list cart items")
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// Create inserts a cart item for a learner.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if _, err := uuid.Parse(item.ClassID); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid class id")
		return
	}
	created, err := h.carts.CreateCartItem(r.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create cart item")
		respond.Error(w, http.StatusInternalServerError, "failed to add cart item")
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

type deleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Delete removes a single cart item by id.
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid cart item id")
		return
	}
	deleted, err := h.carts.DeleteCartItem(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Msg("delete cart item")
		respond.Error(w, http.StatusInternalServerError, "failed to delete cart item")
		return
	}
	if deleted == 0 {
		respond.Error(w, http.StatusNotFound, "cart item not found")
		return
	}
	respond.JSON(w, http.StatusOK, deleteResult{DeletedCount: deleted})
}
