package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employment is one role held by an employee. A nil EndingRoleAtDate marks the
// current employment; the store allows at most one per employee.
type Employment struct {
	ID                uint64          `gorm:"primarykey" json:"id"`
	Role              string          `gorm:"type:varchar(20);not null" json:"role"`
	StartedRoleAtDate time.Time       `gorm:"type:date;not null" json:"started_role_at_date"`
	Income            decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"income"`
	Currency          string          `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	EndingRoleAtDate  *time.Time      `gorm:"type:date" json:"ending_role_at_date"`
	Type              EmploymentType  `gorm:"type:varchar(15);not null;default:'part_time'" json:"type"`
	NoticePeriod      string          `gorm:"type:varchar(10);not null" json:"notice_period"`
	EmployeeID        uint64          `gorm:"not null;index" json:"employee_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"employee,omitempty"`
}

func (e Employment) IsCurrent() bool {
	return e.EndingRoleAtDate == nil
}
