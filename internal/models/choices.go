package models

// Choice is a stored value with its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
	EmployeeStatusOnLeave  EmployeeStatus = "on_leave"
)

var EmployeeStatusChoices = []Choice{
	{string(EmployeeStatusActive), "Active"},
	{string(EmployeeStatusInactive), "Inactive"},
	{string(EmployeeStatusOnLeave), "On leave"},
}

type EmploymentType string

const (
	EmploymentTypePartTime   EmploymentType = "part_time"
	EmploymentTypeFullTime   EmploymentType = "full_time"
	EmploymentTypeInternship EmploymentType = "internship"
)

var EmploymentTypeChoices = []Choice{
	{string(EmploymentTypePartTime), "Part Time"},
	{string(EmploymentTypeFullTime), "Full Time"},
	{string(EmploymentTypeInternship), "Internship"},
}

type PaycheckPeriod string

const (
	PaycheckMonthly  PaycheckPeriod = "monthly"
	PaycheckWeekly   PaycheckPeriod = "weekly"
	PaycheckBiweekly PaycheckPeriod = "biweekly"
)

var PaycheckPeriodChoices = []Choice{
	{string(PaycheckMonthly), "Monthly"},
	{string(PaycheckWeekly), "Weekly"},
	{string(PaycheckBiweekly), "Bi-Weekly"},
}

type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "not_started_yet"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusUnfinished ProjectStatus = "unfinished"
	ProjectStatusDone       ProjectStatus = "done"
)

var ProjectStatusChoices = []Choice{
	{string(ProjectStatusNotStarted), "Not Started Yet"},
	{string(ProjectStatusInProgress), "In Progress"},
	{string(ProjectStatusUnfinished), "Paused/Unfinished"},
	{string(ProjectStatusDone), "Done"},
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusReviewed   TaskStatus = "reviewed"
)

var TaskStatusChoices = []Choice{
	{string(TaskStatusTodo), "To-Do"},
	{string(TaskStatusInProgress), "In Progress"},
	{string(TaskStatusDone), "Done"},
	{string(TaskStatusReviewed), "Reviewed"},
}

// ChoiceLabel returns the label for value, or value itself when unknown.
func ChoiceLabel(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
