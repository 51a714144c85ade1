package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/database"
	apierrors "github.com/worknest/staff/internal/errors"
	"github.com/worknest/staff/internal/forms"
	"github.com/worknest/staff/internal/middleware"
	"github.com/worknest/staff/internal/services"
	"go.uber.org/zap"
)

// respondServiceError maps service errors onto console responses.
func respondServiceError(c *gin.Context, err error) {
	var fe forms.FieldErrors
	var violation *services.ConstraintViolationError

	switch {
	case errors.As(err, &fe):
		apierrors.UnprocessableEntity(c, "", fe)
	case errors.Is(err, services.ErrOpenEmploymentExists):
		apierrors.UnprocessableEntity(c, "", forms.ConstraintError(database.ConstraintCurrentEmployment))
	case errors.Is(err, services.ErrAlreadyActiveMember):
		apierrors.UnprocessableEntity(c, "", forms.FieldErrors{"employee_id": "Employee is already an active member"})
	case errors.As(err, &violation):
		apierrors.UnprocessableEntity(c, "", forms.ConstraintError(violation.Constraint))
	case database.IsUniqueViolation(err):
		apierrors.UnprocessableEntity(c, "", forms.FieldErrors{forms.NonFieldErrors: "A record with these values already exists"})
	case errors.Is(err, services.ErrInvalidReference):
		apierrors.UnprocessableEntity(c, "", forms.FieldErrors{forms.NonFieldErrors: "Referenced record does not exist"})
	case errors.Is(err, services.ErrEndBeforeStart):
		apierrors.UnprocessableEntity(c, "", forms.FieldErrors{"ending_role_at_date": "Ending Role At Date must not be before Started Role At Date"})
	case errors.Is(err, services.ErrInvalidPhotoType), errors.Is(err, services.ErrPhotoTooLarge):
		apierrors.UnprocessableEntity(c, "", forms.FieldErrors{"photo": err.Error()})
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrEmploymentNotFound),
		errors.Is(err, services.ErrNoActiveMembership):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProtected):
		apierrors.Conflict(c, "Cannot delete: the record is still referenced by other records")
	case errors.Is(err, services.ErrEmploymentAlreadyEnded):
		apierrors.Conflict(c, err.Error())
	default:
		zap.L().Error("Console request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(middleware.ContextKeyRequestID)),
			zap.Error(err),
		)
		apierrors.InternalError(c, "")
	}
}
