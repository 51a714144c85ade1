package models

import "time"

// PersonalProfile is the root identity record. Employee and Address hang off it
// and are removed with it (ON DELETE CASCADE on their side).
type PersonalProfile struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	FirstName   string    `gorm:"type:varchar(50);not null" json:"first_name"`
	MiddleName  string    `gorm:"type:varchar(50);not null;default:''" json:"middle_name"`
	LastName    string    `gorm:"type:varchar(50);not null" json:"last_name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p PersonalProfile) FullName() string {
	if p.MiddleName == "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName + " " + p.MiddleName + " " + p.LastName
}
