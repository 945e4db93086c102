package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/globallang/gla-backend/internal/http/respond"
	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ClassHandler owns the class collection endpoints.
type ClassHandler struct {
	classes storage.ClassStore
	log     zerolog.Logger
}

// NewClassHandler constructs the handler.
func NewClassHandler(classes storage.ClassStore, log zerolog.Logger) *ClassHandler {
	return &ClassHandler{classes: classes, log: log}
}

// List returns every class listing.
func (h *ClassHandler) List(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classes.ListClasses(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list classes")
		respond.Error(w, http.StatusInternalServerError, "failed to list classes")
		return
	}
	respond.JSON(w, http.StatusOK, classes)
}

// ListByInstructor returns the classes attributed to the email query param.
func (h *ClassHandler) ListByInstructor(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	classes, err := h.classes.ListClassesByInstructor(r.Context(), email)
	if err != nil {
		h.log.Error().Err(err).Msg("list instructor classes")
		respond.Error(w, http.StatusInternalServerError, "failed to list classes")
		return
	}
	respond.JSON(w, http.StatusOK, classes)
}

// Create inserts a class submitted by an instructor. New listings start out
// pending unless the submission already carries a status.
func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var class models.Class
	if err := json.NewDecoder(r.Body).Decode(&class); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	created, err := h.classes.CreateClass(r.Context(), class)
	if err != nil {
		h.log.Error().Err(err).Msg("create class")
		respond.Error(w, http.StatusInternalServerError, "failed to create class")
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

type approvalRequest struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

type approvalNoop struct {
	Updated bool `json:"updated"`
}

// UpdateApproval patches a class's review status. Approval sets the status
// and leaves feedback alone; denial records the feedback too. Any other
// status performs no store call, matching the legacy three-way branch.
func (h *ClassHandler) UpdateApproval(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid class id")
		return
	}
	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if req.Status != models.ClassApproved && req.Status != models.ClassDenied {
		respond.JSON(w, http.StatusOK, approvalNoop{})
		return
	}

	updated, err := h.classes.UpdateClassStatus(r.Context(), id, req.Status, req.Feedback)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "class not found")
			return
		}
		h.log.Error().Err(err).Msg("update class status")
		respond.Error(w, http.StatusInternalServerError, "failed to update class")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}
