package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/dangerclosesec/scholar/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// ResourceHandler serves the CRUD routes for one kind of owned record.
type ResourceHandler[T any, PT interface {
	*T
	model.Owned
}] struct {
	svc      *service.ResourceService[T, PT]
	validate *validator.Validate
}

func NewResourceHandler[T any, PT interface {
	*T
	model.Owned
}](svc *service.ResourceService[T, PT], validate *validator.Validate) *ResourceHandler[T, PT] {
	return &ResourceHandler[T, PT]{svc: svc, validate: validate}
}

func (h *ResourceHandler[T, PT]) Name() string {
	return h.svc.Descriptor().Name
}

// Routes mounts GET/POST on / and GET/PUT/DELETE on /{id}.
func (h *ResourceHandler[T, PT]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// ReviewRoutes mounts the read-only routes a reviewer uses for one teacher.
func (h *ResourceHandler[T, PT]) ReviewRoutes(r chi.Router) {
	r.Get("/", h.ListForTeacher)
	r.Get("/{id}", h.GetForTeacher)
}

func (h *ResourceHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.List(r.Context(), p, r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func (h *ResourceHandler[T, PT]) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	d, err := h.svc.Get(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, d)
}

func (h *ResourceHandler[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	rec, teacherIDs, err := h.decode(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.svc.Create(r.Context(), p, rec, teacherIDs); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithMessage(w, http.StatusCreated, "Successful")
}

func (h *ResourceHandler[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	rec, teacherIDs, err := h.decode(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Update(r.Context(), p, chi.URLParam(r, "id"), rec, teacherIDs); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Update successful")
}

func (h *ResourceHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Successfully deleted")
}

func (h *ResourceHandler[T, PT]) ListForTeacher(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.ListForTeacher(r.Context(), p, chi.URLParam(r, "teacherID"), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func (h *ResourceHandler[T, PT]) GetForTeacher(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	d, err := h.svc.GetForTeacher(r.Context(), p, chi.URLParam(r, "teacherID"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, d)
}

type coOwners struct {
	TeacherIDs []string `json:"teacherIds"`
}

// decode reads the record and its teacherIds from one JSON body and
// validates the record's fields.
func (h *ResourceHandler[T, PT]) decode(w http.ResponseWriter, r *http.Request) (PT, []string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading body: %v", domain.ErrInvalidInput, err)
	}

	rec := PT(new(T))
	if err := json.Unmarshal(body, rec); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	var extra coOwners
	if err := json.Unmarshal(body, &extra); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := h.validate.Struct(rec); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !h.svc.HasCoOwners() {
		extra.TeacherIDs = nil
	}
	return rec, extra.TeacherIDs, nil
}
