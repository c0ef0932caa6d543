//go:build integration

package repository

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run with: go test -tags=integration -timeout 180s ./internal/repository/...
func openPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("scholar"),
		postgres.WithUsername("scholar"),
		postgres.WithPassword("scholar"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// TranslateError stays off so unique violations reach translateError as
	// raw pgconn errors.
	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestPostgresSchemaAndConstraints(t *testing.T) {
	ctx := context.Background()
	db := openPostgres(t)

	var dataType string
	require.NoError(t, db.Raw(
		"SELECT data_type FROM information_schema.columns WHERE table_name = 'journals' AND column_name = 'keywords'",
	).Scan(&dataType).Error)
	assert.Equal(t, "ARRAY", dataType)

	users := NewUserRepository(db)
	require.NoError(t, users.Create(ctx, &model.User{ID: "u1", EmpID: "E1", Name: "Asha", PasswordHash: "h", Role: "user", AccessTo: "none"}))
	assert.ErrorIs(t,
		users.Create(ctx, &model.User{ID: "u2", EmpID: "E1", Name: "Dup", PasswordHash: "h", Role: "user", AccessTo: "none"}),
		domain.ErrEmpIDAlreadyExists)

	journals := NewResourceRepository[model.Journal](db)
	require.NoError(t, journals.Create(ctx, journal("j1", "u1", "2023")))
	got, err := journals.FindByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"a", "b,c"}, got.Keywords)

	links := NewAssociationRepository(db, model.JournalUsersTable)
	require.NoError(t, links.Add(ctx, "j1", []string{"u1"}))
	assert.ErrorIs(t, links.Add(ctx, "j1", []string{"u1"}), domain.ErrConflict)

	members, err := links.Members(ctx, "j1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Asha", members[0].Name)

	audit := NewAuditLogRepository(db)
	require.NoError(t, audit.Create(ctx, &model.AuditLog{
		ActionType: model.ActionAccessDenied,
		Resource:   "journal",
		ResourceID: "j1",
		ActorID:    "u2",
		Context:    model.JSONMap{"operation": "delete"},
	}))
	logs, total, err := audit.Query(ctx, QueryParams{ResourceID: "j1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "delete", logs[0].Context["operation"])
}
