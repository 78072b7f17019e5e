package entity

import (
	"time"
)

// Inquiry is a row in the admissions CRM's inquiries table. One row per
// family that has registered interest.
type Inquiry struct {
	FamilyID       string `gorm:"primaryKey;column:family_id"`
	ParentName     string
	ParentEmail    string
	ChildName      string
	YearGroup      string
	BoardingStatus string
	Interests      string
	Country        string
	LanguagePref   string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (Inquiry) TableName() string {
	return "inquiries"
}
