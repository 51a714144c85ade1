package database

import (
	"fmt"
	"strings"

	"github.com/worknest/staff/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Constraint describes a uniqueness rule enforced by the store. When OpenColumn
// is set the rule only covers rows where that column IS NULL.
type Constraint struct {
	Name       string
	Table      string
	Columns    []string
	OpenColumn string
}

// Filtered reports whether the rule is restricted to open rows.
func (c Constraint) Filtered() bool {
	return c.OpenColumn != ""
}

var (
	ConstraintCurrentEmployment = Constraint{
		Name:       "uniq_current_employment_per_employee",
		Table:      "employments",
		Columns:    []string{"employee_id"},
		OpenColumn: "ending_role_at_date",
	}
	ConstraintActiveProjectMember = Constraint{
		Name:       "uniq_active_employee_project",
		Table:      "employee_projects",
		Columns:    []string{"employee_id", "project_id"},
		OpenColumn: "date_left",
	}
	ConstraintActiveTaskMember = Constraint{
		Name:       "uniq_active_employee_task",
		Table:      "employee_tasks",
		Columns:    []string{"employee_id", "task_id"},
		OpenColumn: "date_left",
	}

	// Plain unique columns, created by AutoMigrate from model tags.
	ConstraintEmployeeEmail   = Constraint{Name: "uniq_employee_email", Table: "employees", Columns: []string{"email"}}
	ConstraintEmployeeNumber  = Constraint{Name: "uniq_employee_employee_id", Table: "employees", Columns: []string{"employee_code"}}
	ConstraintEmployeeProfile = Constraint{Name: "uniq_employee_personal_profile", Table: "employees", Columns: []string{"personal_profile_id"}}
	ConstraintAddressProfile  = Constraint{Name: "uniq_address_personal_profile", Table: "addresses", Columns: []string{"personal_profile_id"}}
	ConstraintPayrollEmployee = Constraint{Name: "uniq_payroll_employee", Table: "payroll_profiles", Columns: []string{"employee_id"}}
	ConstraintUsername        = Constraint{Name: "uniq_user_username", Table: "users", Columns: []string{"username"}}
)

// Constraints is the registry used to classify uniqueness violations.
var Constraints = []Constraint{
	ConstraintCurrentEmployment,
	ConstraintActiveProjectMember,
	ConstraintActiveTaskMember,
	ConstraintEmployeeEmail,
	ConstraintEmployeeNumber,
	ConstraintEmployeeProfile,
	ConstraintAddressProfile,
	ConstraintPayrollEmployee,
	ConstraintUsername,
}

// Migrate creates or updates every table and the filtered unique indexes.
func Migrate(db *gorm.DB) error {
	zap.L().Info("Running database migrations")
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := ApplyIntegrityConstraints(db); err != nil {
		return err
	}
	zap.L().Info("Database migrations completed")
	return nil
}

// ApplyIntegrityConstraints creates the filtered unique indexes that GORM tags
// cannot express. It is safe to run repeatedly.
func ApplyIntegrityConstraints(db *gorm.DB) error {
	for _, c := range Constraints {
		if !c.Filtered() {
			continue
		}

		if db.Migrator().HasIndex(c.Table, c.Name) {
			continue
		}

		var err error
		if db.Dialector.Name() == "mysql" {
			err = createMySQLOpenKey(db, c)
		} else {
			sql := fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (%s) WHERE %s IS NULL",
				c.Name, c.Table, strings.Join(c.Columns, ", "), c.OpenColumn)
			err = db.Exec(sql).Error
		}
		if err != nil {
			return fmt.Errorf("failed to create constraint %s: %w", c.Name, err)
		}

		zap.L().Info("Created integrity constraint", zap.String("name", c.Name), zap.String("table", c.Table))
	}
	return nil
}

// MySQL has no partial indexes. A stored generated column carries the key only
// while the row is open; NULLs never collide in a unique index.
func createMySQLOpenKey(db *gorm.DB, c Constraint) error {
	if !db.Migrator().HasColumn(c.Table, "open_key") {
		sql := fmt.Sprintf(
			"ALTER TABLE %s ADD COLUMN open_key VARCHAR(64) AS (CASE WHEN %s IS NULL THEN CONCAT_WS(':', %s) END) STORED",
			c.Table, c.OpenColumn, strings.Join(c.Columns, ", "))
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}
	return db.Exec(fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (open_key)", c.Name, c.Table)).Error
}
