package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/constants"
	"github.com/worknest/staff/internal/forms"
	"github.com/worknest/staff/internal/middleware"
	"go.uber.org/zap"
)

// renderPage renders an HTML page with the signed in user and pending flash
// messages added to data.
func renderPage(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title

	if user, ok := middleware.GetUser(c); ok {
		data["User"] = user
	}

	session := sessions.Default(c)
	var flashes []interface{}
	for _, bucket := range []string{constants.FlashSuccess, constants.FlashError} {
		flashes = append(flashes, session.Flashes(bucket)...)
	}
	if len(flashes) > 0 {
		data["Flashes"] = flashes
		if err := session.Save(); err != nil {
			zap.L().Warn("Failed to save session after reading flashes", zap.Error(err))
		}
	}

	if _, ok := data["Errors"]; !ok {
		data["Errors"] = forms.FieldErrors{}
	}

	c.HTML(status, name, data)
}

// NotFoundPage renders the HTML not found page.
func NotFoundPage(c *gin.Context) {
	renderPage(c, http.StatusNotFound, "error.html", "Not found", gin.H{
		"Message": "The page you requested does not exist.",
	})
}

func errorPage(c *gin.Context, err error) {
	zap.L().Error("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(middleware.ContextKeyRequestID)),
		zap.Error(err),
	)
	renderPage(c, http.StatusInternalServerError, "error.html", "Server error", gin.H{
		"Message": "Something went wrong. Please try again later.",
	})
}

// mergeErrors adds the field errors carried by err into dst. Anything else
// becomes a non field error.
func mergeErrors(dst forms.FieldErrors, err error) {
	if err == nil {
		return
	}
	var fe forms.FieldErrors
	if errors.As(err, &fe) {
		for field, msg := range fe {
			dst.Add(field, msg)
		}
		return
	}
	dst.Add(forms.NonFieldErrors, err.Error())
}
