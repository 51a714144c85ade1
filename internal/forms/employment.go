package forms

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/worknest/staff/internal/models"
)

// maxIncome is the largest value a decimal(8,2) column holds.
var maxIncome = decimal.RequireFromString("999999.99")

type EmploymentForm struct {
	Role              string `form:"role" json:"role" binding:"required,notblank,max=20"`
	StartedRoleAtDate string `form:"started_role_at_date" json:"started_role_at_date" binding:"required,datetime=2006-01-02"`
	Income            string `form:"income" json:"income" binding:"required,numeric"`
	Currency          string `form:"currency" json:"currency" binding:"max=3"`
	EndingRoleAtDate  string `form:"ending_role_at_date" json:"ending_role_at_date" binding:"omitempty,datetime=2006-01-02"`
	Type              string `form:"type" json:"type" binding:"omitempty,oneof=part_time full_time internship"`
	NoticePeriod      string `form:"notice_period" json:"notice_period" binding:"required,notblank,max=10"`
	// EmployeeID may instead come from the URL, so it is checked in Apply.
	EmployeeID uint64 `form:"employee_id" json:"employee_id"`
}

func (f *EmploymentForm) Apply(e *models.Employment) error {
	fe := FieldErrors{}

	e.Role = strings.TrimSpace(f.Role)
	e.StartedRoleAtDate = parseDate(fe, "started_role_at_date", f.StartedRoleAtDate)
	e.EndingRoleAtDate = parseOptionalDate(fe, "ending_role_at_date", f.EndingRoleAtDate)
	if e.EndingRoleAtDate != nil && !fe.Has("started_role_at_date") && e.EndingRoleAtDate.Before(e.StartedRoleAtDate) {
		fe.Add("ending_role_at_date", "Ending Role At Date must not be before Started Role At Date")
	}

	income, err := decimal.NewFromString(strings.TrimSpace(f.Income))
	switch {
	case err != nil:
		fe.Add("income", "Income must be a number")
	case income.IsNegative():
		fe.Add("income", "Income must be greater than or equal to 0")
	case !income.Equal(income.Round(2)):
		fe.Add("income", "Income must have at most 2 decimal places")
	case income.GreaterThan(maxIncome):
		fe.Add("income", "Income must have at most 6 digits before the decimal point")
	}
	e.Income = income

	e.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))
	switch {
	case e.Currency == "":
		e.Currency = "EUR"
	case !isCurrencyCode(e.Currency):
		fe.Add("currency", "Currency must be an ISO 4217 currency code")
	}
	e.Type = models.EmploymentType(f.Type)
	if e.Type == "" {
		e.Type = models.EmploymentTypePartTime
	}
	e.NoticePeriod = strings.TrimSpace(f.NoticePeriod)
	if f.EmployeeID == 0 {
		fe.Add("employee_id", "Employee Id is required")
	}
	e.EmployeeID = f.EmployeeID

	return fe.OrNil()
}

// EndEmploymentForm closes the current employment.
type EndEmploymentForm struct {
	EndingRoleAtDate string `form:"ending_role_at_date" json:"ending_role_at_date" binding:"required,datetime=2006-01-02"`
}
