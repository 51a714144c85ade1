package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknest/staff/internal/config"
	"github.com/worknest/staff/internal/constants"
	"github.com/worknest/staff/internal/models"
	"go.uber.org/zap"
)

type fakeUsers map[uint64]*models.User

func (f fakeUsers) GetUser(id uint64) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

// newTestRouter signs requests in as the user id passed in the X-Test-User header.
func newTestRouter(users fakeUsers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-Test-User") != "" {
			session := sessions.Default(c)
			var id uint64
			for _, ch := range c.GetHeader("X-Test-User") {
				id = id*10 + uint64(ch-'0')
			}
			session.Set(constants.ContextKeyUserID, id)
		}
		c.Next()
	})
	r.Use(LoadUser(users))
	return r
}

func TestRequireLogin_RedirectsAnonymous(t *testing.T) {
	r := newTestRouter(fakeUsers{})
	r.GET("/add/", RequireLogin(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/add/?x=1", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/?next=%2Fadd%2F%3Fx%3D1", w.Header().Get("Location"))
}

func TestRequireLogin_AllowsActiveUser(t *testing.T) {
	r := newTestRouter(fakeUsers{1: {ID: 1, Username: "hr", IsActive: true}})
	r.GET("/", RequireLogin(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, "user %d", id)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Test-User", "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user 1", w.Body.String())
}

func TestLoadUser_InactiveUserIsAnonymous(t *testing.T) {
	r := newTestRouter(fakeUsers{1: {ID: 1, Username: "hr", IsActive: false}})
	r.GET("/", RequireLogin(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Test-User", "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRequireSuperuser(t *testing.T) {
	r := newTestRouter(fakeUsers{
		1: {ID: 1, Username: "clerk", IsActive: true},
		2: {ID: 2, Username: "root", IsActive: true, IsSuperuser: true},
	})
	r.GET("/admin/ping", RequireAuth(), RequireSuperuser(), func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	cases := []struct {
		user string
		want int
	}{
		{"", http.StatusUnauthorized},
		{"1", http.StatusForbidden},
		{"2", http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if tc.user != "" {
			req.Header.Set("X-Test-User", tc.user)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, "user %q", tc.user)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextKeyRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewSessionStore(t *testing.T) {
	cfg := config.Load()
	cfg.SessionStore = "cookie"

	store, err := NewSessionStore(cfg)
	require.NoError(t, err)
	require.NotNil(t, store)

	cfg.SessionStore = "memcached"
	_, err = NewSessionStore(cfg)
	assert.Error(t, err)
}

func TestSessionOptions(t *testing.T) {
	cfg := config.Load()
	cfg.GinMode = "release"

	opts := SessionOptions(cfg, 0)
	assert.Equal(t, 0, opts.MaxAge)
	assert.True(t, opts.Secure)
	assert.True(t, opts.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, opts.SameSite)
	assert.True(t, strings.HasPrefix(opts.Path, "/"))
}

func TestNewSessionStore_RedisTTL(t *testing.T) {
	cfg := config.Load()
	cfg.SessionStore = "redis"
	cfg.SessionBrowserTTL = 7200

	store, err := NewSessionStore(cfg)
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}

	err, rs := redisStore.GetRedisStore(store)
	require.NoError(t, err)
	assert.Equal(t, 7200, rs.DefaultMaxAge)
	assert.Equal(t, 0, rs.Options.MaxAge)
}

func TestSessionLifetime(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Load()

	store := cookie.NewStore([]byte("secret"))
	store.Options(SessionOptions(cfg, 0))

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(SessionLifetime(cfg))
	r.POST("/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(constants.SessionRememberKey, c.Query("remember") == "1")
		session.Options(SessionOptions(cfg, 0))
		require.NoError(t, session.Save())
	})
	r.POST("/touch", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("touched", true)
		require.NoError(t, session.Save())
	})

	cookieAfterTouch := func(remember string) *http.Cookie {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login?remember="+remember, nil))
		login := w.Result().Cookies()
		require.Len(t, login, 1)

		req := httptest.NewRequest(http.MethodPost, "/touch", nil)
		req.AddCookie(login[0])
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		touched := w.Result().Cookies()
		require.Len(t, touched, 1)
		return touched[0]
	}

	assert.Equal(t, cfg.SessionRememberMaxAge, cookieAfterTouch("1").MaxAge)
	assert.Equal(t, 0, cookieAfterTouch("0").MaxAge)
}
