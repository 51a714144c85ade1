package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/worknest/staff/internal/config"
	"github.com/worknest/staff/internal/constants"
	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/forms"
	"github.com/worknest/staff/internal/middleware"
	"github.com/worknest/staff/internal/repository"
	"github.com/worknest/staff/internal/services"
	"github.com/worknest/staff/internal/web"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	cfg         *config.Config
	router      *gin.Engine
	authService *services.AuthService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	forms.Init()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	cfg := config.Load()
	cfg.PageSize = 2
	cfg.SessionStore = "cookie"
	cfg.MediaRoot = t.TempDir()

	tmpl, err := web.Templates()
	require.NoError(t, err)

	authService := services.NewAuthService(repository.NewUserRepository(db))
	profileService := services.NewProfileService(repository.NewProfileRepository(db), cfg.PageSize)
	authHandler := NewAuthHandler(authService, cfg)
	staffHandler := NewStaffHandler(profileService)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	store, err := middleware.NewSessionStore(cfg)
	require.NoError(t, err)
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.SessionLifetime(cfg))
	r.Use(middleware.LoadUser(authService))

	r.GET("/login/", authHandler.LoginForm)
	r.POST("/login/", authHandler.Login)
	r.POST("/logout/", authHandler.Logout)
	r.GET("/logout/", authHandler.LogoutNotAllowed)
	r.HEAD("/logout/", authHandler.LogoutNotAllowed)

	staff := r.Group("/")
	staff.Use(middleware.RequireLogin())
	staff.GET("/", staffHandler.Home)
	staff.GET("/add/", staffHandler.AddForm)
	staff.POST("/add/", staffHandler.Add)
	staff.GET("/:id/profile", staffHandler.Detail)

	return testEnv{
		db:          db,
		cfg:         cfg,
		router:      r,
		authService: authService,
	}
}

// client replays the cookies a browser would keep between requests.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func (env testEnv) newClient(t *testing.T) *client {
	return &client{t: t, router: env.router, cookies: map[string]*http.Cookie{}}
}

func (c *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return w
}

func (env testEnv) loggedInClient(t *testing.T) *client {
	t.Helper()

	_, err := env.authService.CreateUser(services.CreateUserInput{Username: "hr", Password: "password123"})
	require.NoError(t, err)

	c := env.newClient(t)
	w := c.do(http.MethodPost, "/login/", url.Values{"username": {"hr"}, "password": {"password123"}})
	require.Equal(t, http.StatusFound, w.Code)
	return c
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == constants.SessionCookieName {
			return ck
		}
	}
	return nil
}
