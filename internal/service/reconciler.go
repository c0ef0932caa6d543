package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/repository"
)

// Diff is the set of co-owner links a reconciliation adds and removes.
type Diff struct {
	Added   []string
	Removed []string
}

func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// desiredMembers deduplicates desired, drops blanks and always includes the owner.
func desiredMembers(ownerID string, desired []string) []string {
	seen := make(map[string]struct{}, len(desired)+1)
	out := make([]string, 0, len(desired)+1)
	for _, id := range append([]string{ownerID}, desired...) {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// PlanReconcile computes the links to add and remove so that the stored set
// equals desired plus the owner. Both sides are sorted.
func PlanReconcile(ownerID string, current, desired []string) Diff {
	want := desiredMembers(ownerID, desired)
	wantSet := make(map[string]struct{}, len(want))
	for _, id := range want {
		wantSet[id] = struct{}{}
	}

	have := make(map[string]struct{}, len(current))
	var diff Diff
	for _, id := range current {
		if _, dup := have[id]; dup {
			continue
		}
		have[id] = struct{}{}
		if _, ok := wantSet[id]; !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}
	for _, id := range want {
		if _, ok := have[id]; !ok {
			diff.Added = append(diff.Added, id)
		}
	}
	sort.Strings(diff.Removed)
	return diff
}

// Reconcile brings the links of resourceID in line with desired plus the
// owner. When creating, any pre-existing link for the new id is a conflict.
// Callers pass a store bound to their transaction.
func Reconcile(ctx context.Context, store repository.AssociationRepositoryIface, resourceID, ownerID string, desired []string, creating bool) (Diff, error) {
	var current []string
	if creating {
		existing, err := store.Existing(ctx, resourceID, desiredMembers(ownerID, desired))
		if err != nil {
			return Diff{}, err
		}
		if len(existing) > 0 {
			return Diff{}, fmt.Errorf("%w: %d users already linked to %s", domain.ErrConflict, len(existing), resourceID)
		}
	} else {
		var err error
		if current, err = store.UserIDs(ctx, resourceID); err != nil {
			return Diff{}, err
		}
	}

	diff := PlanReconcile(ownerID, current, desired)
	if len(diff.Added) > 0 {
		if err := store.Add(ctx, resourceID, diff.Added); err != nil {
			return Diff{}, err
		}
	}
	if len(diff.Removed) > 0 {
		if err := store.Remove(ctx, resourceID, diff.Removed); err != nil {
			return Diff{}, err
		}
	}
	return diff, nil
}
