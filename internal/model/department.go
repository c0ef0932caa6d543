package model

import "time"

type DepartmentConductedActivity struct {
	Ownership
	ProgramTitle      string    `gorm:"type:text;not null" json:"programTitle" validate:"required"`
	DurationStartDate time.Time `gorm:"not null" json:"durationStartDate" validate:"required"`
	DurationEndDate   time.Time `gorm:"not null" json:"durationEndDate" validate:"required,gtefield=DurationStartDate"`
	DocumentLink      string    `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
	Year              string    `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
}

func (DepartmentConductedActivity) TableName() string { return "department_conducted_activities" }

type DepartmentAttendedActivity struct {
	Ownership
	NameOfProgram     string    `gorm:"type:text;not null" json:"nameOfProgram" validate:"required"`
	NoOfParticipants  int       `gorm:"not null" json:"noOfParticipants" validate:"gte=0"`
	DurationStartDate time.Time `gorm:"not null" json:"durationStartDate" validate:"required"`
	DurationEndDate   time.Time `gorm:"not null" json:"durationEndDate" validate:"required,gtefield=DurationStartDate"`
	DocumentLink      string    `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
	Year              string    `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
}

func (DepartmentAttendedActivity) TableName() string { return "department_attended_activities" }
