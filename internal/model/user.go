package model

import "time"

type User struct {
	ID              string    `gorm:"type:text;primaryKey" json:"id"`
	EmpID           string    `gorm:"type:text;uniqueIndex;not null" json:"empId"`
	PasswordHash    string    `gorm:"column:password;type:text;not null" json:"-"`
	Name            string    `gorm:"type:text;not null;index" json:"name"`
	Phno            string    `gorm:"type:text" json:"phno"`
	Dept            string    `gorm:"type:text" json:"dept"`
	Campus          string    `gorm:"type:text" json:"campus"`
	Designation     string    `gorm:"type:text" json:"designation"`
	Qualification   string    `gorm:"type:text" json:"qualification"`
	Expertise       string    `gorm:"type:text" json:"expertise"`
	GoogleScholarID string    `gorm:"type:text" json:"googleScholarId"`
	Role            string    `gorm:"type:text;not null;default:'user'" json:"role"`
	AccessTo        string    `gorm:"type:text;not null;default:'none'" json:"accessTo"`
	ProfileImg      string    `gorm:"type:text" json:"profileImg"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserSummary is the owner projection attached to a record. It never carries
// the password hash.
type UserSummary struct {
	ID          string `json:"id"`
	EmpID       string `json:"empId"`
	Name        string `json:"name"`
	Dept        string `json:"dept"`
	Campus      string `json:"campus"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		EmpID:       u.EmpID,
		Name:        u.Name,
		Dept:        u.Dept,
		Campus:      u.Campus,
		Designation: u.Designation,
		Role:        u.Role,
	}
}
