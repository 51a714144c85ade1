package repository

import (
	"time"

	"github.com/worknest/staff/internal/models"
	"gorm.io/gorm"
)

// GormEmploymentRepository is a GORM implementation of EmploymentRepository
type GormEmploymentRepository struct {
	db *gorm.DB
}

// NewEmploymentRepository creates a new EmploymentRepository
func NewEmploymentRepository(db *gorm.DB) EmploymentRepository {
	return &GormEmploymentRepository{db: db}
}

func (r *GormEmploymentRepository) Create(employment *models.Employment) error {
	return r.db.Create(employment).Error
}

func (r *GormEmploymentRepository) FindByID(id uint64) (*models.Employment, error) {
	var employment models.Employment
	if err := r.db.First(&employment, id).Error; err != nil {
		return nil, err
	}
	return &employment, nil
}

func (r *GormEmploymentRepository) FindCurrent(employeeID uint64) (*models.Employment, error) {
	var employment models.Employment
	if err := r.db.Where("employee_id = ? AND ending_role_at_date IS NULL", employeeID).
		First(&employment).Error; err != nil {
		return nil, err
	}
	return &employment, nil
}

func (r *GormEmploymentRepository) ListByEmployee(employeeID uint64) ([]models.Employment, error) {
	employments := []models.Employment{}
	err := r.db.Where("employee_id = ?", employeeID).
		Order("started_role_at_date DESC, id DESC").
		Find(&employments).Error
	return employments, err
}

func (r *GormEmploymentRepository) End(id uint64, endedAt time.Time) (bool, error) {
	result := r.db.Model(&models.Employment{}).
		Where("id = ? AND ending_role_at_date IS NULL", id).
		Update("ending_role_at_date", endedAt)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
