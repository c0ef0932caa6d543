// internal/model/owned.go
package model

import "time"

// Owned is implemented by every record that has exactly one creating owner.
type Owned interface {
	GetID() string
	SetID(id string)
	GetOwnerID() string
	SetOwnerID(ownerID string)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	TableName() string
}

// Ownership holds the columns shared by all owned records. The owner is
// written once on create and never changes afterwards.
type Ownership struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	OwnerID   string    `gorm:"type:text;not null;index" json:"teacherAdminId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Ownership) GetID() string             { return o.ID }
func (o *Ownership) SetID(id string)           { o.ID = id }
func (o *Ownership) GetOwnerID() string        { return o.OwnerID }
func (o *Ownership) SetOwnerID(ownerID string) { o.OwnerID = ownerID }
func (o *Ownership) GetCreatedAt() time.Time   { return o.CreatedAt }
func (o *Ownership) SetCreatedAt(t time.Time)  { o.CreatedAt = t }
