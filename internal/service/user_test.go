package service

import (
	"context"
	"strings"
	"testing"

	"github.com/dangerclosesec/scholar/internal/auth"
	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/mocks"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := NewUserService(repo, auth.NewPasswordHasher())
	ctx := context.Background()

	var stored *model.User
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
		stored = u
		return nil
	})

	user, err := svc.CreateUser(ctx, CreateUserInput{EmpID: "E9", Name: "Esha", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Same(t, stored, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, string(domain.RoleUser), user.Role)
	assert.Equal(t, string(domain.AccessNone), user.AccessTo)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
}

func TestCreateUserRejectsBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := NewUserService(repo, auth.NewPasswordHasher())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateUserInput
		want  error
	}{
		{"missing emp id", CreateUserInput{Name: "X", Password: "abcdefg1"}, domain.ErrInvalidInput},
		{"short password", CreateUserInput{EmpID: "E", Name: "X", Password: "a1"}, domain.ErrInvalidInput},
		{"no digit", CreateUserInput{EmpID: "E", Name: "X", Password: "abcdefgh"}, domain.ErrPasswordTooWeak},
		{"unknown role", CreateUserInput{EmpID: "E", Name: "X", Password: "abcdefg1", Role: "root"}, domain.ErrInvalidRole},
		{"unknown scope", CreateUserInput{EmpID: "E", Name: "X", Password: "abcdefg1", AccessTo: "galaxy"}, domain.ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateUserDuplicateEmpID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := NewUserService(repo, auth.NewPasswordHasher())
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(domain.ErrEmpIDAlreadyExists)

	_, err := svc.CreateUser(ctx, CreateUserInput{EmpID: "E1", Name: "Dup", Password: "abcdefg1"})
	assert.ErrorIs(t, err, domain.ErrEmpIDAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryIface(ctrl)
	hasher := auth.NewPasswordHasher()
	svc := NewUserService(repo, hasher)
	ctx := context.Background()

	hash, err := hasher.Hash("abcdefg1")
	require.NoError(t, err)
	user := &model.User{ID: "u1", EmpID: "E1", Name: "Asha", PasswordHash: hash, Role: "admin", AccessTo: "research"}

	repo.EXPECT().FindByEmpID(ctx, "E1").Return(user, nil).Times(2)
	repo.EXPECT().FindByEmpID(ctx, "E404").Return(nil, domain.ErrUserNotFound)

	p, err := svc.Authenticate(ctx, "E1", "abcdefg1")
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{ID: "u1", EmpID: "E1", Name: "Asha", Role: domain.RoleAdmin, AccessTo: domain.AccessResearch}, p)

	_, err = svc.Authenticate(ctx, "E1", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "E404", "abcdefg1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestTeacherReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := NewUserService(repo, auth.NewPasswordHasher())
	ctx := context.Background()

	_, err := svc.ListTeachers(ctx, teacher1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	teachers := []*model.User{{ID: "u1", Name: "Asha"}, {ID: "u2", Name: "Bala"}}
	repo.EXPECT().FindTeachers(ctx).Return(teachers, nil)
	got, err := svc.ListTeachers(ctx, chair)
	require.NoError(t, err)
	assert.Equal(t, teachers, got)

	repo.EXPECT().FindByID(ctx, "a1").Return(&model.User{ID: "a1", Role: "admin"}, nil)
	_, err = svc.GetTeacher(ctx, chair, "a1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	repo.EXPECT().FindByID(ctx, "u2").Return(teachers[1], nil)
	u, err := svc.GetTeacher(ctx, everyone, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Bala", u.Name)
}

func TestProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := NewUserService(repo, auth.NewPasswordHasher())
	ctx := context.Background()

	_, err := svc.Profile(ctx, domain.Principal{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.EXPECT().FindByID(ctx, "u1").Return(&model.User{ID: "u1", Name: "Asha"}, nil)
	u, err := svc.Profile(ctx, teacher1)
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)
}
