package handler

import (
	"net/http"

	"github.com/dangerclosesec/scholar/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Profile returns the caller's own user record.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	user, err := h.users.Profile(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// ListTeachers returns every non-admin user for a chair person or admin.
func (h *UserHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	users, err := h.users.ListTeachers(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	user, err := h.users.GetTeacher(r.Context(), p, chi.URLParam(r, "teacherID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}
