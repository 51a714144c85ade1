package models

import "time"

type Employee struct {
	ID                uint64         `gorm:"primarykey" json:"id"`
	Email             string         `gorm:"type:varchar(50);not null;uniqueIndex:uniq_employee_email" json:"email"`
	Code              string         `gorm:"column:employee_code;type:varchar(10);not null;uniqueIndex:uniq_employee_employee_id" json:"employee_id"`
	JoinedDate        time.Time      `gorm:"type:date;not null" json:"joined_date"`
	Photo             string         `gorm:"type:varchar(100);not null;default:'staff/not_set.png'" json:"photo"`
	Status            EmployeeStatus `gorm:"type:varchar(15);not null;default:'active'" json:"status"`
	PersonalProfileID uint64         `gorm:"not null;uniqueIndex:uniq_employee_personal_profile" json:"personal_profile_id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`

	// Relations
	PersonalProfile *PersonalProfile `gorm:"foreignKey:PersonalProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"personal_profile,omitempty"`
}
