package models

import "time"

// User is a staff account allowed to sign in.
type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(150);uniqueIndex:uniq_user_username;not null" json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool       `gorm:"not null" json:"is_active"`
	IsSuperuser  bool       `gorm:"not null;default:false" json:"is_superuser"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&PersonalProfile{},
		&Employee{},
		&Address{},
		&Employment{},
		&PayrollProfile{},
		&Project{},
		&Task{},
		&EmployeeProject{},
		&EmployeeTask{},
	}
}
