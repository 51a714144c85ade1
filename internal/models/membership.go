package models

import "time"

// EmployeeProject records one stint of an employee on a project. Leaving sets
// DateLeft instead of deleting the row, so rejoining creates a new row.
type EmployeeProject struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	EmployeeID uint64     `gorm:"not null;index" json:"employee_id"`
	ProjectID  uint64     `gorm:"not null;index" json:"project_id"`
	DateJoined time.Time  `gorm:"autoCreateTime" json:"date_joined"`
	DateLeft   *time.Time `json:"date_left"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"employee,omitempty"`
	Project  *Project  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"project,omitempty"`
}

func (m EmployeeProject) IsActive() bool {
	return m.DateLeft == nil
}

// EmployeeTask is the task-scoped counterpart of EmployeeProject.
type EmployeeTask struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	EmployeeID uint64     `gorm:"not null;index" json:"employee_id"`
	TaskID     uint64     `gorm:"not null;index" json:"task_id"`
	DateJoined time.Time  `gorm:"autoCreateTime" json:"date_joined"`
	DateLeft   *time.Time `json:"date_left"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"employee,omitempty"`
	Task     *Task     `gorm:"foreignKey:TaskID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"task,omitempty"`
}

func (m EmployeeTask) IsActive() bool {
	return m.DateLeft == nil
}
