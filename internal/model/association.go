package model

import "time"

// Association tables link a record to one of its co-owners. All of them share
// this row shape; the table is chosen per record kind.
const (
	JournalUsersTable    = "journal_users"
	ConferenceUsersTable = "conference_users"
	PatentUsersTable     = "patent_users"
)

// AssociationTables lists every association table for migrations.
var AssociationTables = []string{JournalUsersTable, ConferenceUsersTable, PatentUsersTable}

type Association struct {
	ID         string    `gorm:"type:text;primaryKey" json:"id"`
	ResourceID string    `gorm:"type:text;not null" json:"resourceId"`
	UserID     string    `gorm:"type:text;not null" json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Member is an association joined with the user it points at.
type Member struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"addedAt"`
}
