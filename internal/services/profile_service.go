package services

import (
	"errors"
	"fmt"

	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/repository"
	"github.com/worknest/staff/internal/utils"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService backs the staff list, detail and add pages.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	pageSize    int
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository, pageSize int) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		pageSize:    pageSize,
	}
}

// ProfilePage is one page of the profile listing.
type ProfilePage struct {
	Profiles []models.PersonalProfile
	Page     utils.Page
}

// ListProfiles resolves rawPage against the current row count and loads that
// page. Out of range pages come back as *utils.PageOutOfRangeError.
func (s *ProfileService) ListProfiles(rawPage string) (*ProfilePage, error) {
	total, err := s.profileRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	page, err := utils.ResolvePage(rawPage, total, s.pageSize)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.ListNames(page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return &ProfilePage{Profiles: profiles, Page: page}, nil
}

// ProfileDetail is a profile with the records hanging off it.
type ProfileDetail struct {
	Profile  *models.PersonalProfile
	Address  *models.Address
	Employee *models.Employee
}

func (s *ProfileService) GetProfile(id uint64) (*ProfileDetail, error) {
	profile, address, err := s.profileRepo.FindWithAddress(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	detail := &ProfileDetail{Profile: profile, Address: address}

	employee, err := s.profileRepo.FindEmployee(id)
	switch {
	case err == nil:
		detail.Employee = employee
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	return detail, nil
}

// CreateProfile stores a profile and its address together; nothing is kept
// when either insert fails.
func (s *ProfileService) CreateProfile(profile *models.PersonalProfile, address *models.Address) error {
	if err := s.profileRepo.CreateWithAddress(profile, address); err != nil {
		return translateWriteError(err)
	}
	return nil
}
