// Package policy decides what a principal may see or change. Every function
// here is pure; callers load the rows and pass the owner in.
package policy

import "github.com/dangerclosesec/scholar/internal/domain"

// Scope is the row visibility granted to a principal for one domain.
type Scope int

const (
	// ScopeOwn limits the caller to rows they own or are associated with.
	ScopeOwn Scope = iota
	// ScopeAll grants every row in the domain.
	ScopeAll
)

func (s Scope) String() string {
	if s == ScopeAll {
		return "all"
	}
	return "own"
}

// CanAccessAll reports whether an admin's accessTo covers the domain.
func CanAccessAll(role domain.Role, accessTo domain.AccessTo, d domain.Domain) bool {
	if role != domain.RoleAdmin {
		return false
	}
	return accessTo == domain.AccessAll || string(accessTo) == string(d)
}

// IsOwner reports whether principalID owns a row. An empty owner matches nobody.
func IsOwner(principalID, ownerID string) bool {
	return ownerID != "" && principalID == ownerID
}

// ScopeFor narrows list and read-all requests instead of denying them.
func ScopeFor(p domain.Principal, d domain.Domain) Scope {
	if CanAccessAll(p.Role, p.AccessTo, d) {
		return ScopeAll
	}
	return ScopeOwn
}

// CanMutate is the row-level check for update and delete.
func CanMutate(p domain.Principal, d domain.Domain, ownerID string) bool {
	return CanAccessAll(p.Role, p.AccessTo, d) || IsOwner(p.ID, ownerID)
}

// CanReviewFaculty gates the chair-person views over other teachers' records.
func CanReviewFaculty(p domain.Principal) bool {
	return p.Role == domain.RoleChairPerson || p.Role == domain.RoleAdmin
}

func CanReadAudit(p domain.Principal) bool {
	return p.Role == domain.RoleAdmin && p.AccessTo == domain.AccessAll
}
