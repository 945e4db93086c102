package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/globallang/gla-backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRouter(store *fakeUserStore) chi.Router {
	h := NewUserHandler(store, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/users", h.List)
	r.Get("/instructors", h.ListInstructors)
	r.Get("/users/role/{email}", h.GetRole)
	r.Post("/users", h.Create)
	r.Patch("/users/role/{id}", h.UpdateRole)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func patchJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateUser_DuplicateEmailInsertsOnce(t *testing.T) {
	store := &fakeUserStore{}
	router := newUserRouter(store)

	first := postJSON(t, router, "/users", map[string]string{"name": "Ana", "email": "ana@example.com"})
	assert.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, router, "/users", map[string]string{"name": "Ana Again", "email": "ana@example.com"})
	assert.Equal(t, http.StatusOK, second.Code)

	require.Len(t, store.users, 1)
	assert.Equal(t, "Ana", store.users[0].Name)
}

func TestCreateUser_MissingEmail(t *testing.T) {
	router := newUserRouter(&fakeUserStore{})

	rec := postJSON(t, router, "/users", map[string]string{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUserRole_AdminAndFallback(t *testing.T) {
	store := &fakeUserStore{}
	router := newUserRouter(store)

	created := postJSON(t, router, "/users", map[string]string{"email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, created.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &user))

	rec := patchJSON(t, router, "/users/role/"+user.ID, map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, store.users[0].Role)

	rec = patchJSON(t, router, "/users/role/"+user.ID, map[string]string{"role": "something-else"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleInstructor, store.users[0].Role)
}

func TestUpdateUserRole_BadID(t *testing.T) {
	router := newUserRouter(&fakeUserStore{})

	rec := patchJSON(t, router, "/users/role/not-a-uuid", map[string]string{"role": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUserRole_Unknown(t *testing.T) {
	router := newUserRouter(&fakeUserStore{})

	rec := patchJSON(t, router, "/users/role/6f1c2b1e-52a4-4be4-b089-0e8b3c2b8a11", map[string]string{"role": "admin"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRole(t *testing.T) {
	store := &fakeUserStore{users: []models.User{
		{ID: "1", Email: "teacher@example.com", Role: models.RoleInstructor},
		{ID: "2", Email: "learner@example.com"},
	}}
	router := newUserRouter(store)

	type roleBody struct {
		Role *string `json:"role"`
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/role/teacher@example.com", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body roleBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Role)
	assert.Equal(t, models.RoleInstructor, *body.Role)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/role/learner@example.com", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body = roleBody{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Role)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/role/ghost@example.com", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body = roleBody{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Role)
}

func TestListInstructors(t *testing.T) {
	store := &fakeUserStore{users: []models.User{
		{ID: "1", Email: "teacher@example.com", Role: models.RoleInstructor},
		{ID: "2", Email: "admin@example.com", Role: models.RoleAdmin},
	}}
	router := newUserRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/instructors", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "teacher@example.com", out[0].Email)
}
