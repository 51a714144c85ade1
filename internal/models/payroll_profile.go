package models

import "time"

type PayrollProfile struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	EmployeeID     uint64         `gorm:"not null;uniqueIndex:uniq_payroll_employee" json:"employee_id"`
	IBAN           string         `gorm:"column:iban;type:varchar(40);not null" json:"iban"`
	PaycheckPeriod PaycheckPeriod `gorm:"type:varchar(20);not null;default:'monthly'" json:"paycheck_period"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"employee,omitempty"`
}
