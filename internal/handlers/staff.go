package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/constants"
	"github.com/worknest/staff/internal/dto"
	"github.com/worknest/staff/internal/forms"
	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/services"
	"github.com/worknest/staff/internal/utils"
	"go.uber.org/zap"
)

// StaffHandler serves the profile list, detail and add pages.
type StaffHandler struct {
	profileService *services.ProfileService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(profileService *services.ProfileService) *StaffHandler {
	return &StaffHandler{profileService: profileService}
}

// Home lists personal profiles one page at a time. A page outside the range
// redirects to the nearest valid page, keeping the rest of the query string.
func (h *StaffHandler) Home(c *gin.Context) {
	result, err := h.profileService.ListProfiles(c.Query("page"))

	var rangeErr *utils.PageOutOfRangeError
	switch {
	case errors.As(err, &rangeErr):
		c.Redirect(http.StatusFound, utils.PageURL(c.Request.URL.Path, c.Request.URL.Query(), rangeErr.Nearest))
		return
	case errors.Is(err, utils.ErrInvalidPage):
		renderPage(c, http.StatusNotFound, "error.html", "Not found", gin.H{
			"Message": "That page number is not an integer.",
		})
		return
	case err != nil:
		errorPage(c, err)
		return
	}

	renderPage(c, http.StatusOK, "home.html", "Profiles", gin.H{
		"List": dto.ToProfileListDTO(result, c.Request.URL.Path, c.Request.URL.Query()),
	})
}

// Detail shows one profile with its address.
func (h *StaffHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFoundPage(c)
		return
	}

	detail, err := h.profileService.GetProfile(id)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			renderPage(c, http.StatusNotFound, "error.html", "Not found", gin.H{
				"Message": "No personal profile matches the given query.",
			})
			return
		}
		errorPage(c, err)
		return
	}

	view := dto.ToProfileDetailDTO(detail)
	renderPage(c, http.StatusOK, "detail.html", view.FullName, gin.H{
		"Profile": view,
	})
}

// AddForm renders blank profile and address forms.
func (h *StaffHandler) AddForm(c *gin.Context) {
	renderAddForm(c, http.StatusOK, forms.PersonalProfileForm{}, forms.AddressForm{}, nil)
}

// Add validates both forms and stores the profile and its address together.
func (h *StaffHandler) Add(c *gin.Context) {
	var profileForm forms.PersonalProfileForm
	var addressForm forms.AddressForm

	errs := forms.FieldErrors{}
	mergeErrors(errs, forms.Bind(c, &profileForm))
	mergeErrors(errs, forms.Bind(c, &addressForm))

	var profile models.PersonalProfile
	var address models.Address
	if len(errs) == 0 {
		mergeErrors(errs, profileForm.Apply(&profile))
		mergeErrors(errs, addressForm.Apply(&address))
	}
	if len(errs) > 0 {
		renderAddForm(c, http.StatusUnprocessableEntity, profileForm, addressForm, errs)
		return
	}

	if err := h.profileService.CreateProfile(&profile, &address); err != nil {
		var violation *services.ConstraintViolationError
		if errors.As(err, &violation) {
			renderAddForm(c, http.StatusUnprocessableEntity, profileForm, addressForm, forms.ConstraintError(violation.Constraint))
			return
		}
		errorPage(c, err)
		return
	}

	zap.L().Info("Personal profile created", zap.Uint64("profile_id", profile.ID))

	session := sessions.Default(c)
	session.AddFlash(fmt.Sprintf("Profile for %s was created.", profile.FullName()), constants.FlashSuccess)
	if err := session.Save(); err != nil {
		zap.L().Warn("Failed to save flash", zap.Error(err))
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/%d/profile", profile.ID))
}

func renderAddForm(c *gin.Context, status int, profile forms.PersonalProfileForm, address forms.AddressForm, errs forms.FieldErrors) {
	data := gin.H{
		"Profile": profile,
		"Address": address,
	}
	if errs != nil {
		data["Errors"] = errs
	}
	renderPage(c, status, "add.html", "Add profile", data)
}
