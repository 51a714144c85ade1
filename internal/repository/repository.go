package repository

import (
	"time"

	"github.com/worknest/staff/internal/models"
)

// CRUDRepository is the plain record access used by the operator console.
type CRUDRepository[T any] interface {
	// Create inserts a new record
	Create(record *T) error

	// FindByID finds a record by primary key
	FindByID(id uint64) (*T, error)

	// List returns one page of records and the total count
	List(page, pageSize int) ([]T, int64, error)

	// Update saves every column of the record
	Update(record *T) error

	// Delete removes the record; gorm.ErrRecordNotFound when nothing matched
	Delete(id uint64) error
}

// ProfileRepository defines the data access behind the staff pages
type ProfileRepository interface {
	// Count returns the number of personal profiles
	Count() (int64, error)

	// ListNames returns profiles ordered by last name then first name,
	// loading only the name columns
	ListNames(offset, limit int) ([]models.PersonalProfile, error)

	// FindWithAddress loads a profile and its address, if any
	FindWithAddress(id uint64) (*models.PersonalProfile, *models.Address, error)

	// FindEmployee finds the employee linked to a profile
	FindEmployee(profileID uint64) (*models.Employee, error)

	// CreateWithAddress creates a profile and its address in one transaction
	CreateWithAddress(profile *models.PersonalProfile, address *models.Address) error
}

// EmploymentRepository defines employment data access
type EmploymentRepository interface {
	// Create inserts an employment
	Create(employment *models.Employment) error

	// FindByID finds an employment by ID
	FindByID(id uint64) (*models.Employment, error)

	// FindCurrent finds the open employment of an employee
	FindCurrent(employeeID uint64) (*models.Employment, error)

	// ListByEmployee lists every employment of an employee, newest first
	ListByEmployee(employeeID uint64) ([]models.Employment, error)

	// End closes the employment if it is still open and reports whether it was
	End(id uint64, endedAt time.Time) (bool, error)
}

// MembershipRepository defines project and task membership data access
type MembershipRepository interface {
	// JoinProject inserts a new active project membership
	JoinProject(membership *models.EmployeeProject) error

	// LeaveProject stamps date_left on the active membership and reports whether one existed
	LeaveProject(projectID, employeeID uint64, at time.Time) (bool, error)

	// ListProjectMembers lists project memberships, optionally only active ones
	ListProjectMembers(projectID uint64, activeOnly bool) ([]models.EmployeeProject, error)

	// JoinTask inserts a new active task membership
	JoinTask(membership *models.EmployeeTask) error

	// LeaveTask stamps date_left on the active membership and reports whether one existed
	LeaveTask(taskID, employeeID uint64, at time.Time) (bool, error)

	// ListTaskMembers lists task memberships, optionally only active ones
	ListTaskMembers(taskID uint64, activeOnly bool) ([]models.EmployeeTask, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// TouchLastLogin records a successful sign in
	TouchLastLogin(id uint64, at time.Time) error
}
