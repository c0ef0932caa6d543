package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/scholar/internal/audit"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/dangerclosesec/scholar/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

var _ audit.Logger = (*AuditLogService)(nil)

// AuditLogService writes and reads the audit trail of record mutations.
type AuditLogService struct {
	repo *repository.AuditLogRepository
	now  func() time.Time
}

func NewAuditLogService(repo *repository.AuditLogRepository) *AuditLogService {
	return &AuditLogService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// LogResourceChange records a create, update or delete of an owned record.
func (s *AuditLogService) LogResourceChange(ctx context.Context, action, resource, resourceID, actorID string, attributes map[string]interface{}) error {
	ok := true
	return s.write(ctx, &model.AuditLog{
		ActionType: action,
		Result:     &ok,
		Resource:   resource,
		ResourceID: resourceID,
		ActorID:    actorID,
		Context:    model.JSONMap(attributes),
	})
}

// LogAssociationChange records a co-owner link being added or removed.
func (s *AuditLogService) LogAssociationChange(ctx context.Context, action, resource, resourceID, userID, actorID string) error {
	ok := true
	return s.write(ctx, &model.AuditLog{
		ActionType: action,
		Result:     &ok,
		Resource:   resource,
		ResourceID: resourceID,
		ActorID:    actorID,
		UserID:     userID,
	})
}

// LogAccessDenied records a mutation refused by the access policy.
func (s *AuditLogService) LogAccessDenied(ctx context.Context, operation, resource, resourceID, actorID string) error {
	denied := false
	return s.write(ctx, &model.AuditLog{
		ActionType: model.ActionAccessDenied,
		Result:     &denied,
		Resource:   resource,
		ResourceID: resourceID,
		ActorID:    actorID,
		Context:    model.JSONMap{"operation": operation},
	})
}

func (s *AuditLogService) write(ctx context.Context, log *model.AuditLog) error {
	log.Timestamp = s.now()
	log.RequestID = middleware.GetReqID(ctx)
	if meta, ok := audit.RequestFrom(ctx); ok {
		log.ClientIP = meta.ClientIP
		log.UserAgent = meta.UserAgent
	}
	return s.repo.Create(ctx, log)
}

// GetAuditLogs retrieves audit logs matching params and the total count.
func (s *AuditLogService) GetAuditLogs(ctx context.Context, params repository.QueryParams) ([]model.AuditLog, int64, error) {
	return s.repo.Query(ctx, params)
}

// GetAuditLogByID retrieves a single audit log.
func (s *AuditLogService) GetAuditLogByID(ctx context.Context, id uuid.UUID) (*model.AuditLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting audit log %s: %w", id, err)
	}
	return log, nil
}
