package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlanReconcile(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		current []string
		desired []string
		want    Diff
	}{
		{
			name:    "create adds owner and co-owners",
			owner:   "u1",
			desired: []string{"u2"},
			want:    Diff{Added: []string{"u1", "u2"}},
		},
		{
			name:    "owner is always kept",
			owner:   "u1",
			current: []string{"u1", "u2"},
			desired: nil,
			want:    Diff{Removed: []string{"u2"}},
		},
		{
			name:    "swap co-owner",
			owner:   "u1",
			current: []string{"u1", "u2"},
			desired: []string{"u3"},
			want:    Diff{Added: []string{"u3"}, Removed: []string{"u2"}},
		},
		{
			name:    "duplicates and blanks are ignored",
			owner:   "u1",
			current: []string{"u1"},
			desired: []string{"u2", "", "u2", "u1"},
			want:    Diff{Added: []string{"u2"}},
		},
		{
			name:    "no change",
			owner:   "u1",
			current: []string{"u2", "u1"},
			desired: []string{"u2"},
			want:    Diff{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanReconcile(tt.owner, tt.current, tt.desired)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanReconcileIsIdempotent(t *testing.T) {
	current := []string{"u1", "u4"}
	desired := []string{"u2", "u3"}

	diff := PlanReconcile("u1", current, desired)
	after := applyDiff(current, diff)

	assert.ElementsMatch(t, []string{"u1", "u2", "u3"}, after)
	assert.True(t, PlanReconcile("u1", after, desired).Empty())
}

func applyDiff(current []string, d Diff) []string {
	removed := make(map[string]bool)
	for _, id := range d.Removed {
		removed[id] = true
	}
	var out []string
	for _, id := range current {
		if !removed[id] {
			out = append(out, id)
		}
	}
	return append(out, d.Added...)
}

func TestReconcileCreateConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAssociationRepositoryIface(ctrl)
	ctx := context.Background()

	store.EXPECT().Existing(ctx, "r1", []string{"u1", "u2"}).Return([]string{"u2"}, nil)

	_, err := Reconcile(ctx, store, "r1", "u1", []string{"u2"}, true)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReconcileCreateAddsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAssociationRepositoryIface(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		store.EXPECT().Existing(ctx, "r1", []string{"u1", "u2"}).Return(nil, nil),
		store.EXPECT().Add(ctx, "r1", []string{"u1", "u2"}).Return(nil),
	)

	diff, err := Reconcile(ctx, store, "r1", "u1", []string{"u2", "u2"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, diff.Added)
	assert.Empty(t, diff.Removed)
}

func TestReconcileUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAssociationRepositoryIface(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		store.EXPECT().UserIDs(ctx, "r1").Return([]string{"u1", "u2"}, nil),
		store.EXPECT().Add(ctx, "r1", []string{"u3"}).Return(nil),
		store.EXPECT().Remove(ctx, "r1", []string{"u2"}).Return(nil),
	)

	diff, err := Reconcile(ctx, store, "r1", "u1", []string{"u3"}, false)
	require.NoError(t, err)
	assert.Equal(t, Diff{Added: []string{"u3"}, Removed: []string{"u2"}}, diff)
}

func TestReconcileUpdateNoChangeWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAssociationRepositoryIface(ctrl)
	ctx := context.Background()

	store.EXPECT().UserIDs(ctx, "r1").Return([]string{"u1"}, nil)

	diff, err := Reconcile(ctx, store, "r1", "u1", nil, false)
	require.NoError(t, err)
	assert.True(t, diff.Empty())
}

func TestReconcilePropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAssociationRepositoryIface(ctrl)
	ctx := context.Background()
	boom := errors.New("boom")

	store.EXPECT().UserIDs(ctx, "r1").Return(nil, nil)
	store.EXPECT().Add(ctx, "r1", []string{"u1"}).Return(boom)

	_, err := Reconcile(ctx, store, "r1", "u1", nil, false)
	assert.ErrorIs(t, err, boom)
}
