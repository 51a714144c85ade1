package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/models"
	"gorm.io/gorm"
)

type ProfileRepositoryTestSuite struct {
	RepositoryTestSuite
	repo ProfileRepository
}

func (s *ProfileRepositoryTestSuite) SetupTest() {
	s.RepositoryTestSuite.SetupTest()
	s.repo = NewProfileRepository(s.db)
}

func TestProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryTestSuite))
}

func (s *ProfileRepositoryTestSuite) TestListNames_OrderedByLastThenFirst() {
	s.createProfile("Zoe", "Albu")
	s.createProfile("Ana", "Pop")
	s.createProfile("Bogdan", "Albu")

	profiles, err := s.repo.ListNames(0, 10)
	s.Require().NoError(err)
	s.Require().Len(profiles, 3)

	s.Equal("Bogdan Albu", profiles[0].FullName())
	s.Equal("Zoe Albu", profiles[1].FullName())
	s.Equal("Ana Pop", profiles[2].FullName())
	s.True(profiles[0].DateOfBirth.IsZero())

	total, err := s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(3), total)
}

func (s *ProfileRepositoryTestSuite) TestListNames_Window() {
	for _, last := range []string{"A", "B", "C", "D"} {
		s.createProfile("X", last)
	}

	profiles, err := s.repo.ListNames(2, 2)
	s.Require().NoError(err)
	s.Require().Len(profiles, 2)
	s.Equal("C", profiles[0].LastName)
	s.Equal("D", profiles[1].LastName)
}

func (s *ProfileRepositoryTestSuite) TestCreateWithAddress_LinksAddress() {
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := &models.PersonalProfile{FirstName: "Ana", LastName: "Pop", DateOfBirth: dob}
	address := &models.Address{City: "Cluj", Number: "12", Country: "RO", PostalCode: "400001"}

	s.Require().NoError(s.repo.CreateWithAddress(profile, address))
	s.NotZero(profile.ID)
	s.Equal(profile.ID, address.PersonalProfileID)

	found, foundAddress, err := s.repo.FindWithAddress(profile.ID)
	s.Require().NoError(err)
	s.Equal("Ana", found.FirstName)
	s.True(dob.Equal(found.DateOfBirth.UTC()), found.DateOfBirth)
	s.Require().NotNil(foundAddress)
	s.Equal("Cluj", foundAddress.City)
	s.Equal("400001", foundAddress.PostalCode)
}

func (s *ProfileRepositoryTestSuite) TestCreateWithAddress_RollsBack() {
	existing := s.createProfile("Ana", "Pop")
	s.Require().NoError(s.db.Create(&models.Address{
		City: "Cluj", Number: "1", Country: "RO", PostalCode: "1", PersonalProfileID: existing.ID,
	}).Error)

	// Force the address insert to collide on its primary key.
	var taken models.Address
	s.Require().NoError(s.db.First(&taken).Error)

	profile := &models.PersonalProfile{FirstName: "Ion", LastName: "Rus"}
	address := &models.Address{ID: taken.ID, City: "Iasi", Number: "2", Country: "RO", PostalCode: "2"}

	err := s.repo.CreateWithAddress(profile, address)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrCreateAddress))

	total, err := s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}

func (s *ProfileRepositoryTestSuite) TestFindWithAddress_NoAddress() {
	profile := s.createProfile("Ana", "Pop")

	found, address, err := s.repo.FindWithAddress(profile.ID)
	s.Require().NoError(err)
	s.Equal(profile.ID, found.ID)
	s.Nil(address)
}

func (s *ProfileRepositoryTestSuite) TestFindWithAddress_NotFound() {
	_, _, err := s.repo.FindWithAddress(404)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *ProfileRepositoryTestSuite) TestFindEmployee() {
	employee := s.createEmployee("E1")

	found, err := s.repo.FindEmployee(employee.PersonalProfileID)
	s.Require().NoError(err)
	s.Equal("E1", found.Code)

	_, err = s.repo.FindEmployee(employee.PersonalProfileID + 100)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *ProfileRepositoryTestSuite) TestCreateWithAddress_DuplicateAddressIsClassified() {
	profile := s.createProfile("Ana", "Pop")
	s.Require().NoError(s.db.Create(&models.Address{
		City: "Cluj", Number: "1", Country: "RO", PostalCode: "1", PersonalProfileID: profile.ID,
	}).Error)

	err := s.db.Create(&models.Address{
		City: "Iasi", Number: "2", Country: "RO", PostalCode: "2", PersonalProfileID: profile.ID,
	}).Error

	c, ok := database.ViolatedConstraint(err)
	s.Require().True(ok)
	s.Equal(database.ConstraintAddressProfile.Name, c.Name)
}
