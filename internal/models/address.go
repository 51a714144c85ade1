package models

import "time"

type Address struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	Street            string    `gorm:"type:varchar(30);not null;default:''" json:"street"`
	Number            string    `gorm:"type:varchar(10);not null" json:"number"`
	City              string    `gorm:"type:varchar(30);not null" json:"city"`
	Country           string    `gorm:"type:varchar(30);not null" json:"country"`
	PostalCode        string    `gorm:"type:varchar(10);not null" json:"postal_code"`
	PersonalProfileID uint64    `gorm:"not null;uniqueIndex:uniq_address_personal_profile" json:"personal_profile_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	PersonalProfile *PersonalProfile `gorm:"foreignKey:PersonalProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"personal_profile,omitempty"`
}
