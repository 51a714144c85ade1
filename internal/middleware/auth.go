package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/constants"
	apierrors "github.com/worknest/staff/internal/errors"
	"github.com/worknest/staff/internal/models"
	"go.uber.org/zap"
)

// UserLoader resolves the user stored in the session.
type UserLoader interface {
	GetUser(id uint64) (*models.User, error)
}

// LoadUser puts the signed in user, if any, into the context. A session that
// points at a missing or deactivated account is cleared.
func LoadUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := toUint64(session.Get(constants.ContextKeyUserID))
		if !ok {
			c.Next()
			return
		}

		user, err := users.GetUser(userID)
		if err != nil || !user.IsActive {
			session.Delete(constants.ContextKeyUserID)
			session.Delete(constants.SessionRememberKey)
			if saveErr := session.Save(); saveErr != nil {
				zap.L().Warn("Failed to clear stale session", zap.Error(saveErr))
			}
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireAuth rejects anonymous JSON requests with 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUser(c); !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperuser lets only superusers through; use after RequireAuth
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		if !user.IsSuperuser {
			apierrors.Forbidden(c, "Superuser access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireLogin redirects anonymous page requests to the login form,
// remembering where they were headed.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUser(c); !ok {
			c.Redirect(http.StatusFound, "/login/?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUser retrieves the signed in user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return toUint64(userID)
}

func toUint64(value interface{}) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
