package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/models"
	"gorm.io/gorm"
)

type ServiceTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *ServiceTestSuite) SetupTest() {
	db, err := database.OpenSQLite(":memory:")
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db
}

func (s *ServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *ServiceTestSuite) createEmployee(code string) *models.Employee {
	profile := &models.PersonalProfile{
		FirstName:   "Ana",
		LastName:    "Pop " + code,
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.db.Create(profile).Error)

	employee := &models.Employee{
		Email:             code + "@example.com",
		Code:              code,
		JoinedDate:        time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:            models.EmployeeStatusActive,
		Photo:             "staff/not_set.png",
		PersonalProfileID: profile.ID,
	}
	s.Require().NoError(s.db.Create(employee).Error)
	return employee
}

func openEmployment(employeeID uint64) *models.Employment {
	return &models.Employment{
		Role:              "Engineer",
		StartedRoleAtDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Income:            decimal.RequireFromString("1500.00"),
		Currency:          "EUR",
		Type:              models.EmploymentTypeFullTime,
		NoticePeriod:      "30 days",
		EmployeeID:        employeeID,
	}
}
