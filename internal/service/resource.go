package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"time"

	"github.com/dangerclosesec/scholar/internal/audit"
	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/dangerclosesec/scholar/internal/policy"
	"github.com/dangerclosesec/scholar/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Descriptor describes one kind of owned record.
type Descriptor struct {
	// Name is the route segment and the resource name in audit entries.
	Name    string
	Domain  domain.Domain
	Filters []repository.FieldFilter
	// AssociationTable is empty for records without co-owners.
	AssociationTable string
}

// ResourceService applies the access policy, storage and co-owner
// reconciliation for one kind of owned record.
type ResourceService[T any, PT interface {
	*T
	model.Owned
}] struct {
	desc  Descriptor
	repo  *repository.ResourceRepository[T, PT]
	assoc *repository.AssociationRepository
	users repository.UserRepositoryIface
	audit audit.Logger
}

func NewResourceService[T any, PT interface {
	*T
	model.Owned
}](db *gorm.DB, desc Descriptor, users repository.UserRepositoryIface, auditLogger audit.Logger) *ResourceService[T, PT] {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	s := &ResourceService[T, PT]{
		desc:  desc,
		repo:  repository.NewResourceRepository[T, PT](db),
		users: users,
		audit: auditLogger,
	}
	if desc.AssociationTable != "" {
		s.assoc = repository.NewAssociationRepository(db, desc.AssociationTable)
	}
	return s
}

func (s *ResourceService[T, PT]) Descriptor() Descriptor {
	return s.desc
}

// HasCoOwners reports whether records of this kind carry teacherIds.
func (s *ResourceService[T, PT]) HasCoOwners() bool {
	return s.assoc != nil
}

// Get returns one record with its owner and co-owners. Records the caller
// may not see are reported as not found.
func (s *ResourceService[T, PT]) Get(ctx context.Context, p domain.Principal, id string) (*Detail[T], error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}

	if policy.ScopeFor(p, s.desc.Domain) == policy.ScopeOwn {
		visible, err := s.visibleTo(ctx, rec, p.ID)
		if err != nil {
			return nil, s.fail(ctx, "get", err)
		}
		if !visible {
			return nil, fmt.Errorf("%s %s: %w", s.desc.Name, id, domain.ErrNotFound)
		}
	}

	return s.detail(ctx, rec)
}

// List returns every record when the caller's scope covers the domain and
// otherwise the records they own or co-own. Filters come from the query string.
func (s *ResourceService[T, PT]) List(ctx context.Context, p domain.Principal, q url.Values) ([]Listed[T], error) {
	conds := repository.Conditions(s.desc.Filters, q)

	if policy.ScopeFor(p, s.desc.Domain) == policy.ScopeOwn {
		return s.listFor(ctx, p.ID, conds)
	}

	rows, err := s.repo.List(ctx, repository.ListQuery{Conditions: conds})
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}
	out := make([]Listed[T], len(rows))
	for i := range rows {
		out[i] = Listed[T]{AddedAt: PT(&rows[i]).GetCreatedAt(), Record: rows[i]}
	}
	return out, nil
}

// Create stores rec owned by p and links teacherIDs plus p as co-owners in
// the same transaction. It returns the new id.
func (s *ResourceService[T, PT]) Create(ctx context.Context, p domain.Principal, rec PT, teacherIDs []string) (string, error) {
	if p.ID == "" {
		return "", domain.ErrUnauthorized
	}

	id := uuid.NewString()
	rec.SetID(id)
	rec.SetOwnerID(p.ID)

	var diff Diff
	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, rec); err != nil {
			return err
		}
		if s.assoc == nil {
			return nil
		}
		var err error
		diff, err = Reconcile(ctx, s.assoc.WithTx(tx), id, p.ID, teacherIDs, true)
		return err
	})
	if err != nil {
		return "", s.fail(ctx, "create", err)
	}

	s.record(ctx, s.audit.LogResourceChange(ctx, model.ActionResourceCreate, s.desc.Name, id, p.ID, nil))
	s.recordDiff(ctx, id, p.ID, diff)
	return id, nil
}

// Update replaces the fields of record id and reconciles its co-owners to
// teacherIDs plus the owner. The owner never changes. A record outside the
// caller's scope is forbidden.
func (s *ResourceService[T, PT]) Update(ctx context.Context, p domain.Principal, id string, rec PT, teacherIDs []string) error {
	scope := policy.ScopeFor(p, s.desc.Domain)

	var diff Diff
	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var existing PT
		var err error
		if scope == policy.ScopeAll {
			existing, err = repo.FindByID(ctx, id)
		} else {
			existing, err = repo.FindOwned(ctx, id, p.ID)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%s %s: %w", s.desc.Name, id, domain.ErrForbidden)
		}
		if err != nil {
			return err
		}

		owner := existing.GetOwnerID()
		rec.SetID(id)
		rec.SetOwnerID(owner)
		rec.SetCreatedAt(existing.GetCreatedAt())
		if err := repo.Save(ctx, rec); err != nil {
			return err
		}

		if s.assoc == nil {
			return nil
		}
		diff, err = Reconcile(ctx, s.assoc.WithTx(tx), id, owner, teacherIDs, false)
		return err
	})
	if errors.Is(err, domain.ErrForbidden) {
		s.record(ctx, s.audit.LogAccessDenied(ctx, "update", s.desc.Name, id, p.ID))
		return err
	}
	if err != nil {
		return s.fail(ctx, "update", err)
	}

	s.record(ctx, s.audit.LogResourceChange(ctx, model.ActionResourceUpdate, s.desc.Name, id, p.ID, nil))
	s.recordDiff(ctx, id, p.ID, diff)
	return nil
}

// Delete removes record id and all of its links. A missing record is not
// found; a record without an owner is treated as already gone.
func (s *ResourceService[T, PT]) Delete(ctx context.Context, p domain.Principal, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.fail(ctx, "delete", err)
	}
	if existing.GetOwnerID() == "" {
		return nil
	}
	if !policy.CanMutate(p, s.desc.Domain, existing.GetOwnerID()) {
		s.record(ctx, s.audit.LogAccessDenied(ctx, "delete", s.desc.Name, id, p.ID))
		return fmt.Errorf("%s %s: %w", s.desc.Name, id, domain.ErrForbidden)
	}

	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if s.assoc != nil {
			if err := s.assoc.WithTx(tx).RemoveAll(ctx, id); err != nil {
				return err
			}
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete", err)
	}

	s.record(ctx, s.audit.LogResourceChange(ctx, model.ActionResourceDelete, s.desc.Name, id, p.ID, nil))
	return nil
}

// ListForTeacher lists the records teacherID owns or co-owns for a reviewer.
func (s *ResourceService[T, PT]) ListForTeacher(ctx context.Context, reviewer domain.Principal, teacherID string, q url.Values) ([]Listed[T], error) {
	if !policy.CanReviewFaculty(reviewer) {
		return nil, domain.ErrForbidden
	}
	return s.listFor(ctx, teacherID, repository.Conditions(s.desc.Filters, q))
}

// GetForTeacher returns one of teacherID's records for a reviewer.
func (s *ResourceService[T, PT]) GetForTeacher(ctx context.Context, reviewer domain.Principal, teacherID, id string) (*Detail[T], error) {
	if !policy.CanReviewFaculty(reviewer) {
		return nil, domain.ErrForbidden
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	visible, err := s.visibleTo(ctx, rec, teacherID)
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	if !visible {
		return nil, fmt.Errorf("%s %s: %w", s.desc.Name, id, domain.ErrNotFound)
	}
	return s.detail(ctx, rec)
}

// CountAll counts every record of this kind.
func (s *ResourceService[T, PT]) CountAll(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx, repository.ListQuery{})
	if err != nil {
		return 0, s.fail(ctx, "count", err)
	}
	return n, nil
}

// CountFor counts the records userID owns or co-owns.
func (s *ResourceService[T, PT]) CountFor(ctx context.Context, userID string) (int64, error) {
	ids, _, err := s.linkedIDs(ctx, userID)
	if err != nil {
		return 0, s.fail(ctx, "count", err)
	}
	n, err := s.repo.Count(ctx, repository.ListQuery{Restrict: true, OwnerID: userID, IDs: ids})
	if err != nil {
		return 0, s.fail(ctx, "count", err)
	}
	return n, nil
}

func (s *ResourceService[T, PT]) listFor(ctx context.Context, userID string, conds []clause.Expression) ([]Listed[T], error) {
	ids, added, err := s.linkedIDs(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}

	rows, err := s.repo.List(ctx, repository.ListQuery{
		Conditions: conds,
		Restrict:   true,
		OwnerID:    userID,
		IDs:        ids,
	})
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}

	out := make([]Listed[T], 0, len(rows))
	for i := range rows {
		rec := PT(&rows[i])
		at, ok := added[rec.GetID()]
		if !ok {
			at = rec.GetCreatedAt()
		}
		out = append(out, Listed[T]{AddedAt: at, Record: rows[i]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedAt.After(out[j].AddedAt)
	})
	return out, nil
}

// linkedIDs returns the ids userID co-owns and when each link was made.
func (s *ResourceService[T, PT]) linkedIDs(ctx context.Context, userID string) ([]string, map[string]time.Time, error) {
	added := make(map[string]time.Time)
	if s.assoc == nil {
		return nil, added, nil
	}
	links, err := s.assoc.ForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		if _, seen := added[l.ResourceID]; seen {
			continue
		}
		added[l.ResourceID] = l.CreatedAt
		ids = append(ids, l.ResourceID)
	}
	return ids, added, nil
}

func (s *ResourceService[T, PT]) visibleTo(ctx context.Context, rec PT, userID string) (bool, error) {
	if policy.IsOwner(userID, rec.GetOwnerID()) {
		return true, nil
	}
	if s.assoc == nil {
		return false, nil
	}
	return s.assoc.Has(ctx, rec.GetID(), userID)
}

func (s *ResourceService[T, PT]) detail(ctx context.Context, rec PT) (*Detail[T], error) {
	d := &Detail[T]{Record: *rec}

	owner, err := s.users.FindByID(ctx, rec.GetOwnerID())
	switch {
	case err == nil:
		summary := owner.Summary()
		d.TeacherAdmin = &summary
	case errors.Is(err, domain.ErrUserNotFound):
	default:
		return nil, s.fail(ctx, "get", err)
	}

	if s.assoc == nil {
		return d, nil
	}
	members, err := s.assoc.Members(ctx, rec.GetID())
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	d.Teachers = []string{}
	d.TeacherIDs = []string{}
	for _, m := range members {
		d.TeacherIDs = append(d.TeacherIDs, m.UserID)
		if m.Role == string(domain.RoleAdmin) {
			continue
		}
		d.Teachers = append(d.Teachers, m.Name)
	}
	return d, nil
}

// fail keeps the domain error a caller can act on and replaces anything
// else with domain.ErrInternal after logging it.
func (s *ResourceService[T, PT]) fail(ctx context.Context, op string, err error) error {
	for _, known := range []error{domain.ErrNotFound, domain.ErrForbidden, domain.ErrConflict, domain.ErrInvalidInput, domain.ErrUnauthorized} {
		if errors.Is(err, known) {
			return err
		}
	}
	slog.ErrorContext(ctx, "resource operation failed",
		"resource", s.desc.Name,
		"op", op,
		"error", err,
	)
	return fmt.Errorf("%s %s: %w", op, s.desc.Name, domain.ErrInternal)
}

func (s *ResourceService[T, PT]) record(ctx context.Context, err error) {
	if err != nil {
		slog.WarnContext(ctx, "audit log write failed", "resource", s.desc.Name, "error", err)
	}
}

func (s *ResourceService[T, PT]) recordDiff(ctx context.Context, id, actorID string, diff Diff) {
	for _, userID := range diff.Added {
		s.record(ctx, s.audit.LogAssociationChange(ctx, model.ActionAssociationAdd, s.desc.Name, id, userID, actorID))
	}
	for _, userID := range diff.Removed {
		s.record(ctx, s.audit.LogAssociationChange(ctx, model.ActionAssociationRemove, s.desc.Name, id, userID, actorID))
	}
}
