package model

import "time"

type StudentHigherStudies struct {
	Ownership
	StudentName           string `gorm:"type:text;not null" json:"studentName" validate:"required"`
	ProgramGraduatedFrom  string `gorm:"type:text;not null" json:"programGraduatedFrom" validate:"required"`
	InstitutionAdmittedTo string `gorm:"type:text;not null" json:"institutionAdmittedTo" validate:"required"`
	ProgrammeAdmittedTo   string `gorm:"type:text;not null" json:"programmeAdmittedTo" validate:"required"`
	DocumentLink          string `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
	Year                  string `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
}

func (StudentHigherStudies) TableName() string { return "student_higher_studies" }

type StudentEntranceExam struct {
	Ownership
	Year               string `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
	RegistrationNumber string `gorm:"type:text;not null" json:"registrationNumber" validate:"required"`
	StudentName        string `gorm:"type:text;not null" json:"studentName" validate:"required"`
	IsNET              bool   `json:"isNET"`
	IsSLET             bool   `json:"isSLET"`
	IsGATE             bool   `json:"isGATE"`
	IsGMAT             bool   `json:"isGMAT"`
	IsCAT              bool   `json:"isCAT"`
	IsGRE              bool   `json:"isGRE"`
	IsJAM              bool   `json:"isJAM"`
	IsIELTS            bool   `json:"isIELTS"`
	IsTOEFL            bool   `json:"isTOEFL"`
	DocumentLink       string `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
}

func (StudentEntranceExam) TableName() string { return "student_entrance_exams" }

type StudentCareerCounselling struct {
	Ownership
	Year             string `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
	ActivityName     string `gorm:"type:text;not null" json:"activityName" validate:"required"`
	NumberOfStudents int    `gorm:"not null" json:"numberOfStudents" validate:"gte=0"`
	DocumentLink     string `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
}

func (StudentCareerCounselling) TableName() string { return "student_career_counselling" }

type StudentSportsCultural struct {
	Ownership
	Year      string    `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
	EventDate time.Time `gorm:"not null" json:"eventDate" validate:"required"`
	EventName string    `gorm:"type:text;not null" json:"eventName" validate:"required"`
}

func (StudentSportsCultural) TableName() string { return "student_sports_cultural" }

type IntraSports struct {
	Ownership
	Event       string    `gorm:"type:text;not null" json:"event" validate:"required"`
	StartDate   time.Time `gorm:"not null" json:"startDate" validate:"required"`
	EndDate     time.Time `gorm:"not null" json:"endDate" validate:"required,gtefield=StartDate"`
	Link        string    `gorm:"type:text;not null" json:"link" validate:"required,url"`
	YearOfEvent string    `gorm:"type:text;not null;index" json:"yearOfEvent" validate:"required,len=4,numeric"`
}

func (IntraSports) TableName() string { return "intra_sports" }

type InterSports struct {
	Ownership
	NameOfStudent string `gorm:"type:text;not null" json:"nameOfStudent" validate:"required"`
	NameOfEvent   string `gorm:"type:text;not null" json:"nameOfEvent" validate:"required"`
	Link          string `gorm:"type:text;not null" json:"link" validate:"required,url"`
	NameOfUniv    string `gorm:"type:text;not null" json:"nameOfUniv" validate:"required"`
	YearOfEvent   string `gorm:"type:text;not null;index" json:"yearOfEvent" validate:"required,len=4,numeric"`
	TeamOrIndi    string `gorm:"type:text;not null" json:"teamOrIndi" validate:"required,oneof=team individual"`
	Level         string `gorm:"type:text;not null" json:"level" validate:"required"`
	NameOfAward   string `gorm:"type:text;not null" json:"nameOfAward" validate:"required"`
}

func (InterSports) TableName() string { return "inter_sports" }
