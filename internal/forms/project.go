package forms

import (
	"strings"

	"github.com/worknest/staff/internal/models"
)

type ProjectForm struct {
	Name        string `form:"name" json:"name" binding:"required,notblank,max=50"`
	Description string `form:"description" json:"description"`
	Status      string `form:"status" json:"status" binding:"omitempty,oneof=not_started_yet in_progress unfinished done"`
	CreatedByID uint64 `form:"created_by_id" json:"created_by_id" binding:"required"`
}

func (f *ProjectForm) Apply(p *models.Project) error {
	p.Name = strings.TrimSpace(f.Name)
	p.Description = f.Description
	p.Status = models.ProjectStatus(f.Status)
	if p.Status == "" {
		p.Status = models.ProjectStatusNotStarted
	}
	p.CreatedByID = f.CreatedByID
	return nil
}

type TaskForm struct {
	Name        string `form:"name" json:"name" binding:"required,notblank,max=50"`
	Description string `form:"description" json:"description"`
	Status      string `form:"status" json:"status" binding:"omitempty,oneof=todo in_progress done reviewed"`
	CreatedByID uint64 `form:"created_by_id" json:"created_by_id" binding:"required"`
	ProjectID   uint64 `form:"project_id" json:"project_id" binding:"required"`
}

func (f *TaskForm) Apply(t *models.Task) error {
	t.Name = strings.TrimSpace(f.Name)
	t.Description = f.Description
	t.Status = models.TaskStatus(f.Status)
	if t.Status == "" {
		t.Status = models.TaskStatusTodo
	}
	t.CreatedByID = f.CreatedByID
	t.ProjectID = f.ProjectID
	return nil
}

// MemberForm names the employee joining a project or task.
type MemberForm struct {
	EmployeeID uint64 `form:"employee_id" json:"employee_id" binding:"required"`
}

type ProjectMembershipForm struct {
	EmployeeID uint64 `form:"employee_id" json:"employee_id" binding:"required"`
	ProjectID  uint64 `form:"project_id" json:"project_id" binding:"required"`
	DateLeft   string `form:"date_left" json:"date_left"`
}

func (f *ProjectMembershipForm) Apply(m *models.EmployeeProject) error {
	fe := FieldErrors{}
	m.EmployeeID = f.EmployeeID
	m.ProjectID = f.ProjectID
	m.DateLeft = parseOptionalTimestamp(fe, "date_left", f.DateLeft)
	return fe.OrNil()
}

type TaskMembershipForm struct {
	EmployeeID uint64 `form:"employee_id" json:"employee_id" binding:"required"`
	TaskID     uint64 `form:"task_id" json:"task_id" binding:"required"`
	DateLeft   string `form:"date_left" json:"date_left"`
}

func (f *TaskMembershipForm) Apply(m *models.EmployeeTask) error {
	fe := FieldErrors{}
	m.EmployeeID = f.EmployeeID
	m.TaskID = f.TaskID
	m.DateLeft = parseOptionalTimestamp(fe, "date_left", f.DateLeft)
	return fe.OrNil()
}
