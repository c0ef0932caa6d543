package repository

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func seedUsers(t *testing.T, db *gorm.DB, users ...model.User) {
	t.Helper()
	repo := NewUserRepository(db)
	for i := range users {
		if users[i].PasswordHash == "" {
			users[i].PasswordHash = "hash"
		}
		require.NoError(t, repo.Create(context.Background(), &users[i]))
	}
}

func journal(id, owner, year string) *model.Journal {
	return &model.Journal{
		Ownership:   model.Ownership{ID: id, OwnerID: owner},
		Title:       "Paper " + id,
		Campus:      "Main",
		Dept:        "CSE",
		JournalName: "Systems",
		Month:       "Jan",
		Year:        year,
		Keywords:    model.StringList{"a", "b,c"},
	}
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db := openSQLite(t)
	assert.NoError(t, AutoMigrate(db))
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	repo := NewUserRepository(db)

	seedUsers(t, db,
		model.User{ID: "u1", EmpID: "E1", Name: "Asha", Role: "user", AccessTo: "none"},
		model.User{ID: "a1", EmpID: "A1", Name: "Root", Role: "admin", AccessTo: "all"},
	)

	err := repo.Create(ctx, &model.User{ID: "u9", EmpID: "E1", Name: "Dup", PasswordHash: "x"})
	assert.ErrorIs(t, err, domain.ErrEmpIDAlreadyExists)

	u, err := repo.FindByEmpID(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	teachers, err := repo.FindTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Asha", teachers[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestResourceRepositoryScopes(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	repo := NewResourceRepository[model.Journal](db)

	require.NoError(t, repo.Create(ctx, journal("j1", "u1", "2020")))
	require.NoError(t, repo.Create(ctx, journal("j2", "u2", "2022")))
	require.NoError(t, repo.Create(ctx, journal("j3", "u2", "2024")))

	err := repo.Create(ctx, journal("j1", "u3", "2021"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	all, err := repo.List(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	own, err := repo.List(ctx, ListQuery{Restrict: true, OwnerID: "u1"})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, model.StringList{"a", "b,c"}, own[0].Keywords)

	linked, err := repo.List(ctx, ListQuery{Restrict: true, OwnerID: "u1", IDs: []string{"j3"}})
	require.NoError(t, err)
	assert.Len(t, linked, 2)

	filtered, err := repo.List(ctx, ListQuery{
		Conditions: Conditions([]FieldFilter{YearRange("year")}, url.Values{"startYear": {"2021"}}),
		Restrict:   true,
		OwnerID:    "u2",
	})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	count, err := repo.Count(ctx, ListQuery{Restrict: true, OwnerID: "u2"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	_, err = repo.FindOwned(ctx, "j2", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "j2"))
	_, err = repo.FindByID(ctx, "j2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResourceRepositoryTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	repo := NewResourceRepository[model.Journal](db)
	links := NewAssociationRepository(db, model.JournalUsersTable)

	err := repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := repo.WithTx(tx).Create(ctx, journal("j1", "u1", "2020")); err != nil {
			return err
		}
		return links.WithTx(tx).Add(ctx, "j1", []string{"u1", "u1"})
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.FindByID(ctx, "j1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssociationRepository(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	seedUsers(t, db,
		model.User{ID: "u1", EmpID: "E1", Name: "Asha", Role: "user", AccessTo: "none"},
		model.User{ID: "u2", EmpID: "E2", Name: "Bala", Role: "user", AccessTo: "none"},
	)
	links := NewAssociationRepository(db, model.JournalUsersTable)
	assert.Equal(t, model.JournalUsersTable, links.Table())

	require.NoError(t, links.Add(ctx, "j1", []string{"u1"}))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, links.Add(ctx, "j1", []string{"u2"}))
	require.NoError(t, links.Add(ctx, "j1", nil))

	assert.ErrorIs(t, links.Add(ctx, "j1", []string{"u2"}), domain.ErrConflict)

	ids, err := links.UserIDs(ctx, "j1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u1", "u2"}, ids)

	existing, err := links.Existing(ctx, "j1", []string{"u2", "u3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, existing)

	members, err := links.Members(ctx, "j1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Bala", members[0].Name)

	has, err := links.Has(ctx, "j1", "u1")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, links.Remove(ctx, "j1", []string{"u1"}))
	has, err = links.Has(ctx, "j1", "u1")
	require.NoError(t, err)
	assert.False(t, has)

	forUser, err := links.ForUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, forUser, 1)

	require.NoError(t, links.RemoveAll(ctx, "j1"))
	ids, err = links.UserIDs(ctx, "j1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAuditLogRepositoryQuery(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	repo := NewAuditLogRepository(db)

	denied := false
	require.NoError(t, repo.Create(ctx, &model.AuditLog{ActionType: model.ActionAccessDenied, Resource: "journal", ActorID: "u2", Result: &denied}))
	require.NoError(t, repo.Create(ctx, &model.AuditLog{ActionType: model.ActionAccessDenied, Resource: "patent", ActorID: "u2", Result: &denied}))

	logs, total, err := repo.Query(ctx, QueryParams{Resource: "journal"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, logs, 1)

	got, err := repo.FindByID(ctx, logs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "journal", got.Resource)

	logs, total, err = repo.Query(ctx, QueryParams{ActorID: "u2", Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, logs, 1)
}
