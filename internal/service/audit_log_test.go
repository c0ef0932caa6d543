package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/scholar/internal/audit"
	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/dangerclosesec/scholar/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogServiceRecordsRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuditLogService(repository.NewAuditLogRepository(db))
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	req := httptest.NewRequest("PUT", "/api/v1/journal/j1", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	req.Header.Set("User-Agent", "scholar-test")
	ctx := context.WithValue(audit.WithRequest(context.Background(), req), middleware.RequestIDKey, "req-1")

	require.NoError(t, svc.LogAccessDenied(ctx, "update", "journal", "j1", "u2"))
	require.NoError(t, svc.LogAssociationChange(ctx, model.ActionAssociationAdd, "journal", "j1", "u3", "u1"))

	logs, total, err := svc.GetAuditLogs(ctx, repository.QueryParams{ActionType: model.ActionAccessDenied})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	got := logs[0]
	assert.Equal(t, "journal", got.Resource)
	assert.Equal(t, "u2", got.ActorID)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, "10.0.0.7", got.ClientIP)
	assert.Equal(t, "scholar-test", got.UserAgent)
	assert.Equal(t, "update", got.Context["operation"])
	require.NotNil(t, got.Result)
	assert.False(t, *got.Result)
	assert.True(t, fixed.Equal(got.Timestamp))

	byID, err := svc.GetAuditLogByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ID, byID.ID)

	_, err = svc.GetAuditLogByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, total, err = svc.GetAuditLogs(ctx, repository.QueryParams{Resource: "journal"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
