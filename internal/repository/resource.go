package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/scholar/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListQuery narrows a listing. Conditions come from Conditions; when Restrict
// is set only rows owned by OwnerID or whose id is in IDs are returned.
type ListQuery struct {
	Conditions []clause.Expression
	Restrict   bool
	OwnerID    string
	IDs        []string
}

// ResourceRepository stores one kind of owned record. PT is inferred from T,
// so callers write NewResourceRepository[model.Journal](db).
type ResourceRepository[T any, PT interface {
	*T
	model.Owned
}] struct {
	db *gorm.DB
}

func NewResourceRepository[T any, PT interface {
	*T
	model.Owned
}](db *gorm.DB) *ResourceRepository[T, PT] {
	return &ResourceRepository[T, PT]{db: db}
}

// WithTx returns a repository bound to an open transaction.
func (r *ResourceRepository[T, PT]) WithTx(tx *gorm.DB) *ResourceRepository[T, PT] {
	return &ResourceRepository[T, PT]{db: tx}
}

// Transaction runs fn in a database transaction, rolling back when fn fails.
func (r *ResourceRepository[T, PT]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *ResourceRepository[T, PT]) table() string {
	return PT(new(T)).TableName()
}

func (r *ResourceRepository[T, PT]) Create(ctx context.Context, rec PT) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("creating %s: %w", r.table(), translateError(err))
	}
	return nil
}

// FindByID loads a row regardless of owner.
func (r *ResourceRepository[T, PT]) FindByID(ctx context.Context, id string) (PT, error) {
	rec := PT(new(T))
	if err := r.db.WithContext(ctx).First(rec, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("finding %s %s: %w", r.table(), id, translateError(err))
	}
	return rec, nil
}

// FindOwned loads a row only when ownerID owns it.
func (r *ResourceRepository[T, PT]) FindOwned(ctx context.Context, id, ownerID string) (PT, error) {
	rec := PT(new(T))
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(rec).Error
	if err != nil {
		return nil, fmt.Errorf("finding owned %s %s: %w", r.table(), id, translateError(err))
	}
	return rec, nil
}

// Save writes every column of rec. Callers carry the owner and creation time
// over from the stored row.
func (r *ResourceRepository[T, PT]) Save(ctx context.Context, rec PT) error {
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("saving %s %s: %w", r.table(), rec.GetID(), translateError(err))
	}
	return nil
}

func (r *ResourceRepository[T, PT]) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(PT(new(T)), "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting %s %s: %w", r.table(), id, translateError(err))
	}
	return nil
}

func (r *ResourceRepository[T, PT]) scoped(ctx context.Context, q ListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(PT(new(T)))
	for _, cond := range q.Conditions {
		tx = tx.Where(cond)
	}
	if q.Restrict {
		owned := clause.Eq{Column: clause.Column{Name: "owner_id"}, Value: q.OwnerID}
		if len(q.IDs) == 0 {
			tx = tx.Where(owned)
		} else {
			ids := make([]interface{}, len(q.IDs))
			for i, id := range q.IDs {
				ids[i] = id
			}
			tx = tx.Where(clause.Or(owned, clause.IN{Column: clause.Column{Name: "id"}, Values: ids}))
		}
	}
	return tx
}

// List returns matching rows, newest first.
func (r *ResourceRepository[T, PT]) List(ctx context.Context, q ListQuery) ([]T, error) {
	var rows []T
	if err := r.scoped(ctx, q).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.table(), translateError(err))
	}
	return rows, nil
}

func (r *ResourceRepository[T, PT]) Count(ctx context.Context, q ListQuery) (int64, error) {
	var count int64
	if err := r.scoped(ctx, q).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting %s: %w", r.table(), translateError(err))
	}
	return count, nil
}
