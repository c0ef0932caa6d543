package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/dangerclosesec/scholar/internal/auth"
	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/dangerclosesec/scholar/internal/policy"
	"github.com/dangerclosesec/scholar/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	validate       *validator.Validate
}

func NewUserService(repo repository.UserRepositoryIface, passwordHasher *auth.PasswordHasher) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		validate:       validator.New(),
	}
}

type CreateUserInput struct {
	EmpID           string `json:"empId" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	Phno            string `json:"phno"`
	Dept            string `json:"dept"`
	Campus          string `json:"campus"`
	Designation     string `json:"designation"`
	Qualification   string `json:"qualification"`
	Expertise       string `json:"expertise"`
	GoogleScholarID string `json:"googleScholarId"`
	Role            string `json:"role"`
	AccessTo        string `json:"accessTo"`
}

// CreateUser registers a faculty member. Role defaults to user and
// AccessTo to none.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if input.Role == "" {
		input.Role = string(domain.RoleUser)
	}
	if input.AccessTo == "" {
		input.AccessTo = string(domain.AccessNone)
	}
	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:              uuid.NewString(),
		EmpID:           input.EmpID,
		PasswordHash:    hash,
		Name:            input.Name,
		Phno:            input.Phno,
		Dept:            input.Dept,
		Campus:          input.Campus,
		Designation:     input.Designation,
		Qualification:   input.Qualification,
		Expertise:       input.Expertise,
		GoogleScholarID: input.GoogleScholarID,
		Role:            input.Role,
		AccessTo:        input.AccessTo,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks an employee id and password and returns the principal
// a token would carry.
func (s *UserService) Authenticate(ctx context.Context, empID, password string) (domain.Principal, error) {
	user, err := s.repo.FindByEmpID(ctx, empID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Principal{}, err
	}

	ok, err := s.passwordHasher.Verify(password, user.PasswordHash)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	return principalOf(user), nil
}

// Profile returns the caller's own user record.
func (s *UserService) Profile(ctx context.Context, p domain.Principal) (*model.User, error) {
	if p.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.FindByID(ctx, p.ID)
}

// ListTeachers returns every non-admin user for a reviewer.
func (s *UserService) ListTeachers(ctx context.Context, reviewer domain.Principal) ([]*model.User, error) {
	if !policy.CanReviewFaculty(reviewer) {
		return nil, domain.ErrForbidden
	}
	users, err := s.repo.FindTeachers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "listing teachers failed", "error", err)
		return nil, fmt.Errorf("list teachers: %w", domain.ErrInternal)
	}
	return users, nil
}

// GetTeacher returns one non-admin user for a reviewer.
func (s *UserService) GetTeacher(ctx context.Context, reviewer domain.Principal, id string) (*model.User, error) {
	if !policy.CanReviewFaculty(reviewer) {
		return nil, domain.ErrForbidden
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == string(domain.RoleAdmin) {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) validateCreateInput(input CreateUserInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !domain.Role(input.Role).Valid() || !domain.AccessTo(input.AccessTo).Valid() {
		return domain.ErrInvalidRole
	}

	var hasLetter, hasNumber bool
	for _, c := range input.Password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsNumber(c):
			hasNumber = true
		}
	}
	if !hasLetter || !hasNumber {
		return domain.ErrPasswordTooWeak
	}
	return nil
}

func principalOf(u *model.User) domain.Principal {
	return domain.Principal{
		ID:       u.ID,
		EmpID:    u.EmpID,
		Name:     u.Name,
		Role:     domain.Role(u.Role),
		AccessTo: domain.AccessTo(u.AccessTo),
	}
}
