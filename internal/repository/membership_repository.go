package repository

import (
	"time"

	"github.com/worknest/staff/internal/models"
	"gorm.io/gorm"
)

// GormMembershipRepository is a GORM implementation of MembershipRepository
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{db: db}
}

func (r *GormMembershipRepository) JoinProject(membership *models.EmployeeProject) error {
	membership.DateLeft = nil
	return r.db.Create(membership).Error
}

func (r *GormMembershipRepository) LeaveProject(projectID, employeeID uint64, at time.Time) (bool, error) {
	result := r.db.Model(&models.EmployeeProject{}).
		Where("project_id = ? AND employee_id = ? AND date_left IS NULL", projectID, employeeID).
		Update("date_left", at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormMembershipRepository) ListProjectMembers(projectID uint64, activeOnly bool) ([]models.EmployeeProject, error) {
	members := []models.EmployeeProject{}
	query := r.db.Where("project_id = ?", projectID)
	if activeOnly {
		query = query.Where("date_left IS NULL")
	}
	err := query.Order("date_joined ASC, id ASC").Find(&members).Error
	return members, err
}

func (r *GormMembershipRepository) JoinTask(membership *models.EmployeeTask) error {
	membership.DateLeft = nil
	return r.db.Create(membership).Error
}

func (r *GormMembershipRepository) LeaveTask(taskID, employeeID uint64, at time.Time) (bool, error) {
	result := r.db.Model(&models.EmployeeTask{}).
		Where("task_id = ? AND employee_id = ? AND date_left IS NULL", taskID, employeeID).
		Update("date_left", at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormMembershipRepository) ListTaskMembers(taskID uint64, activeOnly bool) ([]models.EmployeeTask, error) {
	members := []models.EmployeeTask{}
	query := r.db.Where("task_id = ?", taskID)
	if activeOnly {
		query = query.Where("date_left IS NULL")
	}
	err := query.Order("date_joined ASC, id ASC").Find(&members).Error
	return members, err
}
