package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/dto"
	apierrors "github.com/worknest/staff/internal/errors"
	"github.com/worknest/staff/internal/forms"
	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/services"
)

// AdminHandler serves the console operations that go beyond plain CRUD.
type AdminHandler struct {
	employmentService *services.EmploymentService
	membershipService *services.MembershipService
	employeeService   *services.EmployeeService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	employmentService *services.EmploymentService,
	membershipService *services.MembershipService,
	employeeService *services.EmployeeService,
) *AdminHandler {
	return &AdminHandler{
		employmentService: employmentService,
		membershipService: membershipService,
		employeeService:   employeeService,
	}
}

// StartEmployment records a new employment for the employee in the URL.
func (h *AdminHandler) StartEmployment(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.EmploymentForm
	if err := forms.Bind(c, &form); err != nil {
		respondServiceError(c, err)
		return
	}
	form.EmployeeID = employeeID

	var employment models.Employment
	if err := form.Apply(&employment); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.employmentService.Start(&employment); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employment)
}

// ListEmployments returns the employment history of an employee.
func (h *AdminHandler) ListEmployments(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	employments, err := h.employmentService.History(employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": employments})
}

// CurrentEmployment returns the open employment of an employee.
func (h *AdminHandler) CurrentEmployment(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	employment, err := h.employmentService.Current(employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employment)
}

// EndEmployment closes an open employment.
func (h *AdminHandler) EndEmployment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.EndEmploymentForm
	if err := forms.Bind(c, &form); err != nil {
		respondServiceError(c, err)
		return
	}
	endedAt, err := time.Parse("2006-01-02", form.EndingRoleAtDate)
	if err != nil {
		apierrors.UnprocessableEntity(c, "", forms.FieldErrors{"ending_role_at_date": "Ending Role At Date must be a date in YYYY-MM-DD format"})
		return
	}

	employment, err := h.employmentService.End(id, endedAt)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employment)
}

// UploadPhoto stores the multipart "photo" file as the employee photo.
func (h *AdminHandler) UploadPhoto(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		apierrors.UnprocessableEntity(c, "", forms.FieldErrors{"photo": "Photo is required"})
		return
	}

	employee, err := h.employeeService.UploadPhoto(employeeID, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// JoinProject adds an active membership for the employee in the body.
func (h *AdminHandler) JoinProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.MemberForm
	if err := forms.Bind(c, &form); err != nil {
		respondServiceError(c, err)
		return
	}

	membership, err := h.membershipService.JoinProject(projectID, form.EmployeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectMemberDTO(*membership))
}

// LeaveProject closes the active membership of an employee.
func (h *AdminHandler) LeaveProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	if err := h.membershipService.LeaveProject(projectID, employeeID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ProjectMembers lists the active members of a project.
func (h *AdminHandler) ProjectMembers(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.membershipService.ActiveProjectMembers(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	data := make([]dto.MemberDTO, len(members))
	for i, m := range members {
		data[i] = dto.ToProjectMemberDTO(m)
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *AdminHandler) JoinTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.MemberForm
	if err := forms.Bind(c, &form); err != nil {
		respondServiceError(c, err)
		return
	}

	membership, err := h.membershipService.JoinTask(taskID, form.EmployeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskMemberDTO(*membership))
}

func (h *AdminHandler) LeaveTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	if err := h.membershipService.LeaveTask(taskID, employeeID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) TaskMembers(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.membershipService.ActiveTaskMembers(taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	data := make([]dto.MemberDTO, len(members))
	for i, m := range members {
		data[i] = dto.ToTaskMemberDTO(m)
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Choices lists the allowed values of the enumerated fields.
func (h *AdminHandler) Choices(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AllChoices())
}
