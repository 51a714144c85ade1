package models

import "time"

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	CreatedByID uint64     `gorm:"not null;index" json:"created_by_id"`
	CreatedDate time.Time  `gorm:"autoCreateTime" json:"created_date"`
	ProjectID   uint64     `gorm:"not null;index" json:"project_id"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	CreatedBy *Employee `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"created_by,omitempty"`
	Project   *Project  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"project,omitempty"`
}
