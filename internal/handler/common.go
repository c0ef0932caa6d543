package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/middleware"
)

const maxBodyBytes = 1 << 20

type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

func respondWithMessage(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, MessageResponse{Message: message})
}

// writeError maps a domain error onto a status code and a fixed plain text
// message. Details never reach the client; services log them.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrPasswordTooWeak):
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEmpIDAlreadyExists):
		http.Error(w, "Conflict", http.StatusConflict)
	default:
		if !errors.Is(err, domain.ErrInternal) {
			slog.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
		}
		http.Error(w, "Something went wrong!!", http.StatusInternalServerError)
	}
}

// principal returns the authenticated caller or writes 401.
func principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok || p.ID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return domain.Principal{}, false
	}
	return p, true
}
