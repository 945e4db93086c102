package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/globallang/gla-backend/internal/http/respond"
	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserHandler owns the user collection endpoints.
type UserHandler struct {
	users storage.UserStore
	log   zerolog.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(users storage.UserStore, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// List returns every user. Admin-guarded at the route layer.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users")
		respond.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

// ListInstructors returns users holding the instructor role.
func (h *UserHandler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsersByRole(r.Context(), models.RoleInstructor)
	if err != nil {
		h.log.Error().Err(err).Msg("list instructors")
		respond.Error(w, http.StatusInternalServerError, "failed to list instructors")
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

type roleResponse struct {
	Role *string `json:"role"`
}

// GetRole reports the role recorded for an email. Unknown emails and users
// without a role both report null.
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	user, err := h.users.FindUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.JSON(w, http.StatusOK, roleResponse{})
			return
		}
		h.log.Error().Err(err).Msg("find user role")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if user.Role == "" {
		respond.JSON(w, http.StatusOK, roleResponse{})
		return
	}
	respond.JSON(w, http.StatusOK, roleResponse{Role: &user.Role})
}

// Create records a user on first sign-in. A duplicate email is not an error:
// the existing record comes back with a 200 instead of a 201.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}
	created, inserted, err := h.users.CreateUser(r.Context(), user)
	if err != nil {
		h.log.Error().Err(err).Msg("create user")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	respond.JSON(w, status, created)
}

type roleUpdateRequest struct {
	Role string `json:"role"`
}

// UpdateRole promotes a user. "admin" grants admin; any other value grants
// instructor, matching how the admin dashboard has always used this route.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req roleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	role := models.RoleInstructor
	if req.Role == models.RoleAdmin {
		role = models.RoleAdmin
	}
	updated, err := h.users.UpdateUserRole(r.Context(), id, role)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.Error().Err(err).Msg("update user role")
		respond.Error(w, http.StatusInternalServerError, "failed to update role")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}
