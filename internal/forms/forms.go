package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/worknest/staff/internal/database"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NonFieldErrors is the key for errors that do not belong to a single field.
const NonFieldErrors = "__all__"

const dateLayout = "2006-01-02"

// FieldErrors maps a form field name to a human readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// OrNil returns nil when no error was collected.
func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

var initOnce sync.Once

// Init names validation errors after the form tag of each field and registers
// the extra validators used by the forms.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	})
}

func isCurrencyCode(code string) bool {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	return ok && v.Var(code, "iso4217") == nil
}

// Bind fills form from the request body (urlencoded, multipart or JSON) and
// validates it. The returned error is FieldErrors.
func Bind(c *gin.Context, form interface{}) error {
	Init()
	if err := c.ShouldBind(form); err != nil {
		return FromBindingError(err)
	}
	return nil
}

// FromBindingError converts a binding or validation error into FieldErrors.
func FromBindingError(err error) FieldErrors {
	fe := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.Add(NonFieldErrors, "Invalid input")
		return fe
	}

	for _, e := range verrs {
		fe.Add(e.Field(), message(e))
	}
	return fe
}

func message(e validator.FieldError) string {
	label := Label(e.Field())
	switch e.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "email":
		return label + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	case "datetime":
		if e.Param() == dateLayout {
			return label + " must be a date in YYYY-MM-DD format"
		}
		return label + " must be a valid timestamp"
	case "numeric":
		return label + " must be a number"
	default:
		return label + " is invalid"
	}
}

// Label turns a field name such as postal_code into "Postal Code".
func Label(field string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(field, "_", " "))
}

type constraintMessage struct {
	field   string
	message string
}

var constraintMessages = map[string]constraintMessage{
	database.ConstraintCurrentEmployment.Name:   {"employee_id", "Employee already has a current employment"},
	database.ConstraintActiveProjectMember.Name: {"employee_id", "Employee is already an active member of this project"},
	database.ConstraintActiveTaskMember.Name:    {"employee_id", "Employee is already assigned to this task"},
	database.ConstraintEmployeeEmail.Name:       {"email", "Employee with this Email already exists"},
	database.ConstraintEmployeeNumber.Name:      {"employee_id", "Employee with this Employee ID already exists"},
	database.ConstraintEmployeeProfile.Name:     {"personal_profile_id", "This personal profile already belongs to an employee"},
	database.ConstraintAddressProfile.Name:      {"personal_profile_id", "This personal profile already has an address"},
	database.ConstraintPayrollEmployee.Name:     {"employee_id", "This employee already has a payroll profile"},
	database.ConstraintUsername.Name:            {"username", "A user with that username already exists"},
}

// ConstraintError renders a store-level uniqueness violation as a field error.
func ConstraintError(c database.Constraint) FieldErrors {
	if m, ok := constraintMessages[c.Name]; ok {
		return FieldErrors{m.field: m.message}
	}
	return FieldErrors{NonFieldErrors: "A record with these values already exists"}
}

func parseDate(fe FieldErrors, field, value string) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		fe.Add(field, Label(field)+" must be a date in YYYY-MM-DD format")
	}
	return t
}

func parseOptionalDate(fe FieldErrors, field, value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t := parseDate(fe, field, value)
	return &t
}

func parseOptionalTimestamp(fe FieldErrors, field, value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		fe.Add(field, Label(field)+" must be a valid timestamp")
		return nil
	}
	return &t
}
