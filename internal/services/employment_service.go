package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrOpenEmploymentExists   = errors.New("employee already has a current employment")
	ErrEmploymentNotFound     = errors.New("employment not found")
	ErrEmploymentAlreadyEnded = errors.New("employment has already ended")
	ErrEndBeforeStart         = errors.New("ending date is before the start date")
)

// EmploymentService handles the employment history of employees.
type EmploymentService struct {
	employmentRepo repository.EmploymentRepository
}

// NewEmploymentService creates a new EmploymentService
func NewEmploymentService(employmentRepo repository.EmploymentRepository) *EmploymentService {
	return &EmploymentService{employmentRepo: employmentRepo}
}

// Start records a new employment. A second open employment for the same
// employee is rejected by the store and reported as ErrOpenEmploymentExists.
func (s *EmploymentService) Start(employment *models.Employment) error {
	if err := s.employmentRepo.Create(employment); err != nil {
		return translateEmploymentError(err)
	}
	return nil
}

func (s *EmploymentService) End(id uint64, endedAt time.Time) (*models.Employment, error) {
	employment, err := s.employmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmploymentNotFound
		}
		return nil, fmt.Errorf("failed to find employment: %w", err)
	}
	if !employment.IsCurrent() {
		return nil, ErrEmploymentAlreadyEnded
	}
	if endedAt.Before(employment.StartedRoleAtDate) {
		return nil, ErrEndBeforeStart
	}

	ended, err := s.employmentRepo.End(id, endedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to end employment: %w", err)
	}
	if !ended {
		return nil, ErrEmploymentAlreadyEnded
	}

	employment.EndingRoleAtDate = &endedAt
	return employment, nil
}

func (s *EmploymentService) Current(employeeID uint64) (*models.Employment, error) {
	employment, err := s.employmentRepo.FindCurrent(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmploymentNotFound
		}
		return nil, fmt.Errorf("failed to find current employment: %w", err)
	}
	return employment, nil
}

func (s *EmploymentService) History(employeeID uint64) ([]models.Employment, error) {
	employments, err := s.employmentRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employments: %w", err)
	}
	return employments, nil
}

func translateEmploymentError(err error) error {
	if c, ok := database.ViolatedConstraint(err); ok && c.Name == database.ConstraintCurrentEmployment.Name {
		return fmt.Errorf("%w: %v", ErrOpenEmploymentExists, err)
	}
	return translateWriteError(err)
}
