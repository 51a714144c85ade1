package forms

import (
	"strings"

	"github.com/worknest/staff/internal/constants"
	"github.com/worknest/staff/internal/models"
)

type EmployeeForm struct {
	Email             string `form:"email" json:"email" binding:"required,email,max=50"`
	EmployeeID        string `form:"employee_id" json:"employee_id" binding:"required,notblank,max=10"`
	JoinedDate        string `form:"joined_date" json:"joined_date" binding:"required,datetime=2006-01-02"`
	Status            string `form:"status" json:"status" binding:"omitempty,oneof=active inactive on_leave"`
	PersonalProfileID uint64 `form:"personal_profile_id" json:"personal_profile_id" binding:"required"`
}

func (f *EmployeeForm) Apply(e *models.Employee) error {
	fe := FieldErrors{}
	e.Email = strings.TrimSpace(f.Email)
	e.Code = strings.TrimSpace(f.EmployeeID)
	e.JoinedDate = parseDate(fe, "joined_date", f.JoinedDate)
	e.Status = models.EmployeeStatus(f.Status)
	if e.Status == "" {
		e.Status = models.EmployeeStatusActive
	}
	if e.Photo == "" {
		e.Photo = constants.DefaultEmployeePhoto
	}
	e.PersonalProfileID = f.PersonalProfileID
	return fe.OrNil()
}

type PayrollProfileForm struct {
	EmployeeID     uint64 `form:"employee_id" json:"employee_id" binding:"required"`
	IBAN           string `form:"iban" json:"iban" binding:"required,notblank,max=40"`
	PaycheckPeriod string `form:"paycheck_period" json:"paycheck_period" binding:"omitempty,oneof=monthly weekly biweekly"`
}

func (f *PayrollProfileForm) Apply(p *models.PayrollProfile) error {
	p.EmployeeID = f.EmployeeID
	p.IBAN = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(f.IBAN), " ", ""))
	p.PaycheckPeriod = models.PaycheckPeriod(f.PaycheckPeriod)
	if p.PaycheckPeriod == "" {
		p.PaycheckPeriod = models.PaycheckMonthly
	}
	return nil
}
