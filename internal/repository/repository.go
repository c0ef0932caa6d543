// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Models lists every table owned by this service, except the association
// tables which share model.Association.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Journal{},
		&model.Conference{},
		&model.Patent{},
		&model.Award{},
		&model.Grant{},
		&model.Mou{},
		&model.Collaboration{},
		&model.DepartmentConductedActivity{},
		&model.DepartmentAttendedActivity{},
		&model.StudentHigherStudies{},
		&model.StudentEntranceExam{},
		&model.StudentCareerCounselling{},
		&model.StudentSportsCultural{},
		&model.IntraSports{},
		&model.InterSports{},
		&model.AuditLog{},
	}
}

// AutoMigrate creates or updates every table. Association tables get a unique
// (resource_id, user_id) index so duplicates are rejected by the database.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrating models: %w", err)
	}

	for _, table := range model.AssociationTables {
		if err := db.Table(table).AutoMigrate(&model.Association{}); err != nil {
			return fmt.Errorf("migrating %s: %w", table, err)
		}
		stmts := []string{
			fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_pair ON %s (resource_id, user_id)", table, table),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_user ON %s (user_id, created_at)", table, table),
		}
		for _, stmt := range stmts {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("indexing %s: %w", table, err)
			}
		}
	}

	return nil
}

// translateError maps driver errors onto domain errors. Unique violations
// become domain.ErrConflict whether or not gorm translated them already.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
