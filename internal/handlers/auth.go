package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/config"
	"github.com/worknest/staff/internal/constants"
	"github.com/worknest/staff/internal/dto"
	apierrors "github.com/worknest/staff/internal/errors"
	"github.com/worknest/staff/internal/forms"
	"github.com/worknest/staff/internal/middleware"
	"github.com/worknest/staff/internal/services"
	"go.uber.org/zap"
)

const (
	msgInvalidLogin  = "Please enter a correct username and password. Note that both fields may be case-sensitive."
	msgInactiveLogin = "This account is inactive."
	msgLoggedOut     = "Logged out successfully"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginForm renders the login page; signed in users go straight on.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	next := c.Query("next")
	if _, ok := middleware.GetUser(c); ok {
		c.Redirect(http.StatusFound, safeNext(next))
		return
	}

	renderPage(c, http.StatusOK, "login.html", "Log in", gin.H{
		"Next": next,
	})
}

// Login authenticates a user and initializes the session. The cookie lives
// for the browser session unless remember_me was ticked.
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := forms.Bind(c, &form); err != nil {
		h.renderLogin(c, http.StatusUnprocessableEntity, form, err)
		return
	}
	if form.Next == "" {
		form.Next = c.Query("next")
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		h.renderLogin(c, http.StatusUnauthorized, form, forms.FieldErrors{forms.NonFieldErrors: msgInvalidLogin})
		return
	case errors.Is(err, services.ErrInactiveUser):
		h.renderLogin(c, http.StatusUnauthorized, form, forms.FieldErrors{forms.NonFieldErrors: msgInactiveLogin})
		return
	case err != nil:
		errorPage(c, err)
		return
	}

	maxAge := 0
	if form.Remember() {
		maxAge = h.cfg.SessionRememberMaxAge
	}

	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.ContextKeyUserID, user.ID)
	if maxAge > 0 {
		session.Set(constants.SessionRememberKey, true)
	}
	session.Options(middleware.SessionOptions(h.cfg, maxAge))
	if err := session.Save(); err != nil {
		errorPage(c, err)
		return
	}

	zap.L().Info("User logged in", zap.Uint64("user_id", user.ID), zap.Bool("remember_me", form.Remember()))
	c.Redirect(http.StatusFound, safeNext(form.Next))
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form forms.LoginForm, err error) {
	errs := forms.FieldErrors{}
	mergeErrors(errs, err)
	renderPage(c, status, "login.html", "Log in", gin.H{
		"Username":   form.Username,
		"RememberMe": form.Remember(),
		"Next":       form.Next,
		"Errors":     errs,
	})
}

// Logout removes the authentication session and sends the user to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(middleware.SessionOptions(h.cfg, 0))
	session.AddFlash(msgLoggedOut, constants.FlashSuccess)
	if err := session.Save(); err != nil {
		errorPage(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/login/")
}

// LogoutNotAllowed rejects logout through a safe method.
func (h *AuthHandler) LogoutNotAllowed(c *gin.Context) {
	apierrors.MethodNotAllowed(c, http.MethodPost)
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// safeNext only allows redirects to a path on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
