package audit

import (
	"context"
	"net"
	"net/http"
)

// Logger defines the interface for auditing record changes
type Logger interface {
	// LogResourceChange records a create, update or delete of an owned record.
	LogResourceChange(ctx context.Context, action, resource, resourceID, actorID string, attributes map[string]interface{}) error

	// LogAssociationChange records a co-owner being linked or unlinked.
	LogAssociationChange(ctx context.Context, action, resource, resourceID, userID, actorID string) error

	// LogAccessDenied records a mutation refused by policy.
	LogAccessDenied(ctx context.Context, operation, resource, resourceID, actorID string) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (l *NoOpLogger) LogResourceChange(ctx context.Context, action, resource, resourceID, actorID string, attributes map[string]interface{}) error {
	return nil
}

func (l *NoOpLogger) LogAssociationChange(ctx context.Context, action, resource, resourceID, userID, actorID string) error {
	return nil
}

func (l *NoOpLogger) LogAccessDenied(ctx context.Context, operation, resource, resourceID, actorID string) error {
	return nil
}

// RequestMeta is the part of the inbound request an audit entry keeps.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
}

type requestMetaKey struct{}

// WithRequest stores the caller's address and user agent on ctx.
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return context.WithValue(ctx, requestMetaKey{}, RequestMeta{
		ClientIP:  ip,
		UserAgent: r.UserAgent(),
	})
}

// RequestFrom returns the metadata stored by WithRequest, if any.
func RequestFrom(ctx context.Context) (RequestMeta, bool) {
	meta, ok := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta, ok
}
