package middleware

import (
	"net/http"

	"github.com/dangerclosesec/scholar/internal/audit"
)

// AuditContext records the caller's address and user agent on the request
// context so audit entries written deeper in the stack can include them.
func AuditContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(audit.WithRequest(r.Context(), r)))
	})
}
