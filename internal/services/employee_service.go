package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeService covers employee operations beyond plain record edits.
type EmployeeService struct {
	employeeRepo repository.CRUDRepository[models.Employee]
	storage      *StorageService
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.CRUDRepository[models.Employee], storage *StorageService) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		storage:      storage,
	}
}

// UploadPhoto replaces the photo of an employee. The previous file is removed
// once the new path is saved.
func (s *EmployeeService) UploadPhoto(employeeID uint64, file *multipart.FileHeader) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	path, err := s.storage.SaveEmployeePhoto(file)
	if err != nil {
		return nil, err
	}

	previous := employee.Photo
	employee.Photo = path
	if err := s.employeeRepo.Update(employee); err != nil {
		if rmErr := s.storage.Remove(path); rmErr != nil {
			zap.L().Warn("Failed to remove orphaned photo", zap.String("path", path), zap.Error(rmErr))
		}
		return nil, translateWriteError(err)
	}

	if err := s.storage.Remove(previous); err != nil {
		zap.L().Warn("Failed to remove replaced photo", zap.String("path", previous), zap.Error(err))
	}

	return employee, nil
}
