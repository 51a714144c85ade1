package dto

import (
	"net/url"

	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/services"
	"github.com/worknest/staff/internal/utils"
)

// ProfileRowDTO is one line of the profile listing
type ProfileRowDTO struct {
	ID       uint64
	FullName string
}

// PageLinksDTO holds the navigation of a paginated page. URLs keep every
// other query parameter of the current request.
type PageLinksDTO struct {
	Number      int
	TotalPages  int
	Total       int64
	HasPrevious bool
	HasNext     bool
	FirstURL    string
	PreviousURL string
	NextURL     string
	LastURL     string
}

// ProfileListDTO is the home page view model
type ProfileListDTO struct {
	Profiles []ProfileRowDTO
	Page     PageLinksDTO
}

// AddressDTO is the address block of the detail page
type AddressDTO struct {
	Street     string
	Number     string
	City       string
	Country    string
	PostalCode string
}

// EmployeeSummaryDTO is the employee block of the detail page
type EmployeeSummaryDTO struct {
	Email      string
	EmployeeID string
	Status     string
	PhotoURL   string
}

// ProfileDetailDTO is the detail page view model
type ProfileDetailDTO struct {
	ID          uint64
	FullName    string
	FirstName   string
	MiddleName  string
	LastName    string
	DateOfBirth string
	Address     *AddressDTO
	Employee    *EmployeeSummaryDTO
}

func ToProfileListDTO(result *services.ProfilePage, path string, query url.Values) ProfileListDTO {
	rows := make([]ProfileRowDTO, len(result.Profiles))
	for i, p := range result.Profiles {
		rows[i] = ProfileRowDTO{ID: p.ID, FullName: p.FullName()}
	}
	return ProfileListDTO{
		Profiles: rows,
		Page:     ToPageLinksDTO(result.Page, path, query),
	}
}

func ToPageLinksDTO(page utils.Page, path string, query url.Values) PageLinksDTO {
	links := PageLinksDTO{
		Number:      page.Number,
		TotalPages:  page.TotalPages,
		Total:       page.Total,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
		FirstURL:    utils.PageURL(path, query, 1),
		LastURL:     utils.PageURL(path, query, page.TotalPages),
	}
	if links.HasPrevious {
		links.PreviousURL = utils.PageURL(path, query, page.Previous())
	}
	if links.HasNext {
		links.NextURL = utils.PageURL(path, query, page.Next())
	}
	return links
}

func ToProfileDetailDTO(detail *services.ProfileDetail) ProfileDetailDTO {
	p := detail.Profile
	view := ProfileDetailDTO{
		ID:          p.ID,
		FullName:    p.FullName(),
		FirstName:   p.FirstName,
		MiddleName:  p.MiddleName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth.Format("2006-01-02"),
	}
	if a := detail.Address; a != nil {
		view.Address = &AddressDTO{
			Street:     a.Street,
			Number:     a.Number,
			City:       a.City,
			Country:    a.Country,
			PostalCode: a.PostalCode,
		}
	}
	if e := detail.Employee; e != nil {
		view.Employee = &EmployeeSummaryDTO{
			Email:      e.Email,
			EmployeeID: e.Code,
			Status:     models.ChoiceLabel(models.EmployeeStatusChoices, string(e.Status)),
			PhotoURL:   "/media/" + e.Photo,
		}
	}
	return view
}
