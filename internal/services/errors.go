package services

import (
	"errors"
	"fmt"

	"github.com/worknest/staff/internal/database"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrProtected        = errors.New("record is still referenced by other records")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// ConstraintViolationError reports a write rejected by a uniqueness rule.
type ConstraintViolationError struct {
	Constraint database.Constraint
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint %s violated: %v", e.Constraint.Name, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// translateWriteError maps store errors from inserts and updates onto service errors.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if c, ok := database.ViolatedConstraint(err); ok {
		return &ConstraintViolationError{Constraint: c, Err: err}
	}
	if database.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}

// translateDeleteError maps store errors from deletes onto service errors.
func translateDeleteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", ErrProtected, err)
	default:
		return err
	}
}
