package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmpID(ctx context.Context, empID string) (*model.User, error)
	FindTeachers(ctx context.Context) ([]*model.User, error)
	Count(ctx context.Context) (int64, error)
}

var _ UserRepositoryIface = (*UserRepository)(nil)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		err := translateError(result.Error)
		if errors.Is(err, domain.ErrConflict) {
			return domain.ErrEmpIDAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmpID(ctx context.Context, empID string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("emp_id = ?", empID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

// FindTeachers returns every non-admin user ordered by name.
func (r *UserRepository) FindTeachers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	result := r.db.WithContext(ctx).
		Where("role IN ?", []string{string(domain.RoleUser), string(domain.RoleChairPerson)}).
		Order("name ASC").
		Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find teachers: %w", result.Error)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
