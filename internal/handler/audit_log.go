package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dangerclosesec/scholar/internal/policy"
	"github.com/dangerclosesec/scholar/internal/repository"
	"github.com/dangerclosesec/scholar/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AuditLogHandler exposes the audit trail to admins with full access.
type AuditLogHandler struct {
	auditLogService *service.AuditLogService
}

func NewAuditLogHandler(auditLogService *service.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{auditLogService: auditLogService}
}

type auditLogPage struct {
	Logs  interface{} `json:"logs"`
	Total int64       `json:"total"`
}

// GetAuditLogs lists audit entries filtered by the query string.
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	if !policy.CanReadAudit(p) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	logs, total, err := h.auditLogService.GetAuditLogs(r.Context(), auditQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, auditLogPage{Logs: logs, Total: total})
}

// GetAuditLogByID returns a single audit entry.
func (h *AuditLogHandler) GetAuditLogByID(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	if !policy.CanReadAudit(p) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	log, err := h.auditLogService.GetAuditLogByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, log)
}

func auditQuery(q url.Values) repository.QueryParams {
	params := repository.QueryParams{
		ActionType: q.Get("action_type"),
		Resource:   q.Get("resource"),
		ResourceID: q.Get("resource_id"),
		ActorID:    q.Get("actor_id"),
	}
	if result, err := strconv.ParseBool(q.Get("result")); err == nil {
		params.Result = &result
	}
	if t, err := time.Parse(time.RFC3339, q.Get("start_time")); err == nil {
		params.StartTime = t
	}
	if t, err := time.Parse(time.RFC3339, q.Get("end_time")); err == nil {
		params.EndTime = t
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset >= 0 {
		params.Offset = offset
	}
	return params
}
