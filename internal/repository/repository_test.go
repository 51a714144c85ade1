package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/models"
	"gorm.io/gorm"
)

type RepositoryTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *RepositoryTestSuite) SetupTest() {
	db, err := database.OpenSQLite(":memory:")
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db
}

func (s *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *RepositoryTestSuite) createProfile(first, last string) *models.PersonalProfile {
	profile := &models.PersonalProfile{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.db.Create(profile).Error)
	return profile
}

func (s *RepositoryTestSuite) createEmployee(code string) *models.Employee {
	profile := s.createProfile("Ana", "Pop "+code)
	employee := &models.Employee{
		Email:             code + "@example.com",
		Code:              code,
		JoinedDate:        time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:            models.EmployeeStatusActive,
		PersonalProfileID: profile.ID,
	}
	s.Require().NoError(s.db.Create(employee).Error)
	return employee
}

func (s *RepositoryTestSuite) createProject(creator *models.Employee) *models.Project {
	project := &models.Project{
		Name:        "Payroll revamp",
		Status:      models.ProjectStatusInProgress,
		CreatedByID: creator.ID,
	}
	s.Require().NoError(s.db.Create(project).Error)
	return project
}

func newEmployment(employeeID uint64, started time.Time) *models.Employment {
	return &models.Employment{
		Role:              "Engineer",
		StartedRoleAtDate: started,
		Income:            decimal.RequireFromString("2500.00"),
		Currency:          "EUR",
		Type:              models.EmploymentTypeFullTime,
		NoticePeriod:      "30 days",
		EmployeeID:        employeeID,
	}
}
