package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssociationRepositoryIface is the slice of association storage the
// reconciler needs.
type AssociationRepositoryIface interface {
	UserIDs(ctx context.Context, resourceID string) ([]string, error)
	Existing(ctx context.Context, resourceID string, userIDs []string) ([]string, error)
	Add(ctx context.Context, resourceID string, userIDs []string) error
	Remove(ctx context.Context, resourceID string, userIDs []string) error
}

var _ AssociationRepositoryIface = (*AssociationRepository)(nil)

// AssociationRepository manages one association table.
type AssociationRepository struct {
	db    *gorm.DB
	table string
}

func NewAssociationRepository(db *gorm.DB, table string) *AssociationRepository {
	return &AssociationRepository{db: db, table: table}
}

// WithTx returns a repository bound to an open transaction.
func (r *AssociationRepository) WithTx(tx *gorm.DB) *AssociationRepository {
	return &AssociationRepository{db: tx, table: r.table}
}

func (r *AssociationRepository) Table() string {
	return r.table
}

// UserIDs returns the co-owners currently linked to resourceID.
func (r *AssociationRepository) UserIDs(ctx context.Context, resourceID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Table(r.table).
		Where("resource_id = ?", resourceID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("finding %s users: %w", r.table, translateError(err))
	}
	return ids, nil
}

// Existing returns which of userIDs are already linked to resourceID.
func (r *AssociationRepository) Existing(ctx context.Context, resourceID string, userIDs []string) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.WithContext(ctx).Table(r.table).
		Where("resource_id = ? AND user_id IN ?", resourceID, userIDs).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("checking %s users: %w", r.table, translateError(err))
	}
	return ids, nil
}

func (r *AssociationRepository) Add(ctx context.Context, resourceID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]model.Association, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, model.Association{
			ID:         uuid.NewString(),
			ResourceID: resourceID,
			UserID:     userID,
		})
	}
	if err := r.db.WithContext(ctx).Table(r.table).Create(&rows).Error; err != nil {
		return fmt.Errorf("adding %s users: %w", r.table, translateError(err))
	}
	return nil
}

func (r *AssociationRepository) Remove(ctx context.Context, resourceID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Table(r.table).
		Where("resource_id = ? AND user_id IN ?", resourceID, userIDs).
		Delete(&model.Association{}).Error
	if err != nil {
		return fmt.Errorf("removing %s users: %w", r.table, translateError(err))
	}
	return nil
}

// RemoveAll deletes every link to resourceID.
func (r *AssociationRepository) RemoveAll(ctx context.Context, resourceID string) error {
	err := r.db.WithContext(ctx).Table(r.table).
		Where("resource_id = ?", resourceID).
		Delete(&model.Association{}).Error
	if err != nil {
		return fmt.Errorf("clearing %s: %w", r.table, translateError(err))
	}
	return nil
}

// Has reports whether userID is linked to resourceID.
func (r *AssociationRepository) Has(ctx context.Context, resourceID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(r.table).
		Where("resource_id = ? AND user_id = ?", resourceID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking %s membership: %w", r.table, translateError(err))
	}
	return count > 0, nil
}

// ForUser returns the links held by userID, newest first.
func (r *AssociationRepository) ForUser(ctx context.Context, userID string) ([]model.Association, error) {
	var links []model.Association
	err := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("finding %s for user: %w", r.table, translateError(err))
	}
	return links, nil
}

// Members returns the linked users with their names and roles, newest first.
func (r *AssociationRepository) Members(ctx context.Context, resourceID string) ([]model.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).
		Table(r.table+" AS a").
		Select("a.user_id AS user_id, users.name AS name, users.role AS role, a.created_at AS created_at").
		Joins("JOIN users ON users.id = a.user_id").
		Where("a.resource_id = ?", resourceID).
		Order("a.created_at DESC").
		Scan(&members).Error
	if err != nil {
		return nil, fmt.Errorf("finding %s members: %w", r.table, translateError(err))
	}
	return members, nil
}
