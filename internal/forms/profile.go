package forms

import (
	"strings"

	"github.com/worknest/staff/internal/models"
)

type PersonalProfileForm struct {
	FirstName   string `form:"first_name" json:"first_name" binding:"required,notblank,max=50"`
	MiddleName  string `form:"middle_name" json:"middle_name" binding:"max=50"`
	LastName    string `form:"last_name" json:"last_name" binding:"required,notblank,max=50"`
	DateOfBirth string `form:"date_of_birth" json:"date_of_birth" binding:"required,datetime=2006-01-02"`
}

func (f *PersonalProfileForm) Apply(p *models.PersonalProfile) error {
	fe := FieldErrors{}
	p.FirstName = strings.TrimSpace(f.FirstName)
	p.MiddleName = strings.TrimSpace(f.MiddleName)
	p.LastName = strings.TrimSpace(f.LastName)
	p.DateOfBirth = parseDate(fe, "date_of_birth", f.DateOfBirth)
	return fe.OrNil()
}

// AddressForm binds only the postal fields. The owning profile is attached by
// the caller and can never come from user input.
type AddressForm struct {
	Street     string `form:"street" json:"street" binding:"max=30"`
	Number     string `form:"number" json:"number" binding:"required,notblank,max=10"`
	City       string `form:"city" json:"city" binding:"required,notblank,max=30"`
	Country    string `form:"country" json:"country" binding:"required,notblank,max=30"`
	PostalCode string `form:"postal_code" json:"postal_code" binding:"required,notblank,max=10"`
}

func (f *AddressForm) Apply(a *models.Address) error {
	a.Street = strings.TrimSpace(f.Street)
	a.Number = strings.TrimSpace(f.Number)
	a.City = strings.TrimSpace(f.City)
	a.Country = strings.TrimSpace(f.Country)
	a.PostalCode = strings.TrimSpace(f.PostalCode)
	return nil
}

// AddressAdminForm is the operator console variant that may set the owner.
type AddressAdminForm struct {
	AddressForm
	PersonalProfileID uint64 `form:"personal_profile_id" json:"personal_profile_id" binding:"required"`
}

func (f *AddressAdminForm) Apply(a *models.Address) error {
	if err := f.AddressForm.Apply(a); err != nil {
		return err
	}
	a.PersonalProfileID = f.PersonalProfileID
	return nil
}
