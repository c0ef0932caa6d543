package domain

// Role is the coarse privilege level carried in an access token.
type Role string

const (
	RoleUser        Role = "user"
	RoleChairPerson Role = "chair_person"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleChairPerson, RoleAdmin:
		return true
	}
	return false
}

// AccessTo scopes which records an admin may act on across owners.
type AccessTo string

const (
	AccessNone       AccessTo = "none"
	AccessDepartment AccessTo = "department"
	AccessResearch   AccessTo = "research"
	AccessStudent    AccessTo = "student"
	AccessAll        AccessTo = "all"
)

func (a AccessTo) Valid() bool {
	switch a {
	case AccessNone, AccessDepartment, AccessResearch, AccessStudent, AccessAll:
		return true
	}
	return false
}

// Domain groups resource kinds for admin scoping.
type Domain string

const (
	DomainResearch   Domain = "research"
	DomainDepartment Domain = "department"
	DomainStudent    Domain = "student"
)

// Principal identifies the caller of a request. It is derived from the
// verified token on every request and never read from ambient state.
type Principal struct {
	ID       string
	EmpID    string
	Name     string
	Role     Role
	AccessTo AccessTo
}
