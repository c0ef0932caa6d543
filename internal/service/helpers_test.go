package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/dangerclosesec/scholar/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	teacher1 = domain.Principal{ID: "u1", EmpID: "E1", Name: "Asha", Role: domain.RoleUser, AccessTo: domain.AccessNone}
	teacher2 = domain.Principal{ID: "u2", EmpID: "E2", Name: "Bala", Role: domain.RoleUser, AccessTo: domain.AccessNone}
	teacher3 = domain.Principal{ID: "u3", EmpID: "E3", Name: "Chitra", Role: domain.RoleUser, AccessTo: domain.AccessNone}
	chair    = domain.Principal{ID: "c1", EmpID: "C1", Name: "Devi", Role: domain.RoleChairPerson, AccessTo: domain.AccessNone}
	research = domain.Principal{ID: "a1", EmpID: "A1", Name: "Admin Research", Role: domain.RoleAdmin, AccessTo: domain.AccessResearch}
	students = domain.Principal{ID: "a2", EmpID: "A2", Name: "Admin Student", Role: domain.RoleAdmin, AccessTo: domain.AccessStudent}
	everyone = domain.Principal{ID: "a3", EmpID: "A3", Name: "Admin All", Role: domain.RoleAdmin, AccessTo: domain.AccessAll}
)

// newTestDB opens a migrated SQLite database in the test's temp dir.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

type fixture struct {
	db      *gorm.DB
	users   *repository.UserRepository
	catalog *Catalog
	audit   *recordingAudit
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	for _, p := range []domain.Principal{teacher1, teacher2, teacher3, chair, research, students, everyone} {
		require.NoError(t, users.Create(context.Background(), &model.User{
			ID:           p.ID,
			EmpID:        p.EmpID,
			PasswordHash: "unused",
			Name:         p.Name,
			Role:         string(p.Role),
			AccessTo:     string(p.AccessTo),
		}))
	}

	rec := &recordingAudit{}
	return &fixture{
		db:      db,
		users:   users,
		catalog: NewCatalog(db, users, rec),
		audit:   rec,
	}
}

func (f *fixture) links(t *testing.T, table, resourceID string) []string {
	t.Helper()
	ids, err := repository.NewAssociationRepository(f.db, table).UserIDs(context.Background(), resourceID)
	require.NoError(t, err)
	return ids
}

type auditEntry struct {
	Action     string
	Resource   string
	ResourceID string
	UserID     string
	ActorID    string
}

// recordingAudit keeps every audit call in memory.
type recordingAudit struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (r *recordingAudit) add(e auditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *recordingAudit) LogResourceChange(_ context.Context, action, resource, resourceID, actorID string, _ map[string]interface{}) error {
	return r.add(auditEntry{Action: action, Resource: resource, ResourceID: resourceID, ActorID: actorID})
}

func (r *recordingAudit) LogAssociationChange(_ context.Context, action, resource, resourceID, userID, actorID string) error {
	return r.add(auditEntry{Action: action, Resource: resource, ResourceID: resourceID, UserID: userID, ActorID: actorID})
}

func (r *recordingAudit) LogAccessDenied(_ context.Context, _ string, resource, resourceID, actorID string) error {
	return r.add(auditEntry{Action: model.ActionAccessDenied, Resource: resource, ResourceID: resourceID, ActorID: actorID})
}

func (r *recordingAudit) count(action string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

func newJournal(title, year string) *model.Journal {
	return &model.Journal{
		Title:       title,
		Campus:      "Main",
		Dept:        "CSE",
		JournalName: "Journal of Systems",
		Month:       "May",
		Year:        year,
	}
}

func newConference(title string) *model.Conference {
	return &model.Conference{
		PaperTitle: title,
		Campus:     "Main",
		Dept:       "CSE",
		Year:       "2024",
	}
}

func newAward(title string) *model.Award {
	return &model.Award{
		YearOfAward:       "2023",
		TitleOfInnovation: title,
		AwardeeName:       "Asha",
		AwardingAgency:    "DST",
		Category:          "Research",
	}
}
