package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateProfile is returned when inserting the profile fails inside the add transaction.
	ErrCreateProfile = errors.New("profile repository: create profile failed")
	// ErrCreateAddress is returned when inserting the address fails inside the add transaction.
	ErrCreateAddress = errors.New("profile repository: create address failed")
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.PersonalProfile{}).Count(&total).Error
	return total, err
}

func (r *GormProfileRepository) ListNames(offset, limit int) ([]models.PersonalProfile, error) {
	profiles := []models.PersonalProfile{}
	err := r.db.Model(&models.PersonalProfile{}).
		Select("id", "first_name", "middle_name", "last_name").
		Order("last_name ASC, first_name ASC, id ASC").
		Scopes(database.Paginate(offset, limit)).
		Find(&profiles).Error
	return profiles, err
}

// profileAddressRow is the flat result of the profile/address outer join
type profileAddressRow struct {
	ID          uint64
	FirstName   string
	MiddleName  string
	LastName    string
	DateOfBirth time.Time
	AddressID   *uint64
	Street      *string
	Number      *string
	City        *string
	Country     *string
	PostalCode  *string
}

func (r *GormProfileRepository) FindWithAddress(id uint64) (*models.PersonalProfile, *models.Address, error) {
	var rows []profileAddressRow
	err := r.db.Table("personal_profiles").
		Select("personal_profiles.id, personal_profiles.first_name, personal_profiles.middle_name, personal_profiles.last_name, personal_profiles.date_of_birth, "+
			"addresses.id AS address_id, addresses.street, addresses.number, addresses.city, addresses.country, addresses.postal_code").
		Joins("LEFT JOIN addresses ON addresses.personal_profile_id = personal_profiles.id").
		Where("personal_profiles.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	row := rows[0]
	profile := &models.PersonalProfile{
		ID:          row.ID,
		FirstName:   row.FirstName,
		MiddleName:  row.MiddleName,
		LastName:    row.LastName,
		DateOfBirth: row.DateOfBirth,
	}
	if row.AddressID == nil {
		return profile, nil, nil
	}

	address := &models.Address{
		ID:                *row.AddressID,
		Street:            deref(row.Street),
		Number:            deref(row.Number),
		City:              deref(row.City),
		Country:           deref(row.Country),
		PostalCode:        deref(row.PostalCode),
		PersonalProfileID: row.ID,
	}
	return profile, address, nil
}

func (r *GormProfileRepository) FindEmployee(profileID uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("personal_profile_id = ?", profileID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateWithAddress creates the profile, then attaches and creates the address atomically.
func (r *GormProfileRepository) CreateWithAddress(profile *models.PersonalProfile, address *models.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateProfile, err)
		}

		address.PersonalProfileID = profile.ID

		if err := tx.Create(address).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateAddress, err)
		}

		return nil
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
