package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/repository"
)

var (
	ErrAlreadyActiveMember = errors.New("employee is already an active member")
	ErrNoActiveMembership  = errors.New("employee has no active membership")
)

// MembershipService manages who works on which project and task. Leaving
// closes the membership row; joining again opens a new one.
type MembershipService struct {
	membershipRepo repository.MembershipRepository
	now            func() time.Time
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(membershipRepo repository.MembershipRepository) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		now:            time.Now,
	}
}

func (s *MembershipService) JoinProject(projectID, employeeID uint64) (*models.EmployeeProject, error) {
	membership := &models.EmployeeProject{EmployeeID: employeeID, ProjectID: projectID}
	if err := s.membershipRepo.JoinProject(membership); err != nil {
		return nil, translateMembershipError(err, database.ConstraintActiveProjectMember)
	}
	return membership, nil
}

func (s *MembershipService) LeaveProject(projectID, employeeID uint64) error {
	left, err := s.membershipRepo.LeaveProject(projectID, employeeID, s.now())
	if err != nil {
		return fmt.Errorf("failed to leave project: %w", err)
	}
	if !left {
		return ErrNoActiveMembership
	}
	return nil
}

func (s *MembershipService) ActiveProjectMembers(projectID uint64) ([]models.EmployeeProject, error) {
	members, err := s.membershipRepo.ListProjectMembers(projectID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	return members, nil
}

func (s *MembershipService) JoinTask(taskID, employeeID uint64) (*models.EmployeeTask, error) {
	membership := &models.EmployeeTask{EmployeeID: employeeID, TaskID: taskID}
	if err := s.membershipRepo.JoinTask(membership); err != nil {
		return nil, translateMembershipError(err, database.ConstraintActiveTaskMember)
	}
	return membership, nil
}

func (s *MembershipService) LeaveTask(taskID, employeeID uint64) error {
	left, err := s.membershipRepo.LeaveTask(taskID, employeeID, s.now())
	if err != nil {
		return fmt.Errorf("failed to leave task: %w", err)
	}
	if !left {
		return ErrNoActiveMembership
	}
	return nil
}

func (s *MembershipService) ActiveTaskMembers(taskID uint64) ([]models.EmployeeTask, error) {
	members, err := s.membershipRepo.ListTaskMembers(taskID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list task members: %w", err)
	}
	return members, nil
}

func translateMembershipError(err error, active database.Constraint) error {
	if c, ok := database.ViolatedConstraint(err); ok && c.Name == active.Name {
		return fmt.Errorf("%w: %v", ErrAlreadyActiveMember, err)
	}
	return translateWriteError(err)
}
