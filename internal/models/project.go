package models

import "time"

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"type:varchar(50);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'not_started_yet'" json:"status"`
	CreatedByID uint64        `gorm:"not null;index" json:"created_by_id"`
	CreatedDate time.Time     `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	CreatedBy *Employee `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"created_by,omitempty"`
}
