package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/config"
	"github.com/worknest/staff/internal/constants"
)

// SessionOptions are the cookie settings for a session living maxAge seconds.
// A maxAge of 0 makes a browser-session cookie.
func SessionOptions(cfg *config.Config, maxAge int) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.SessionSecure || cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

// NewSessionStore builds the store selected by SESSION_STORE.
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store

	switch cfg.SessionStore {
	case "redis":
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		s, err := redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		err, rs := redisStore.GetRedisStore(s)
		if err != nil {
			return nil, err
		}
		// Remembered sessions carry their own Max-Age; the rest live this long in redis.
		rs.SetMaxAge(cfg.SessionRememberMaxAge)
		rs.DefaultMaxAge = cfg.SessionBrowserTTL
		store = s
	case "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}

	store.Options(SessionOptions(cfg, 0))
	return store, nil
}

// SessionLifetime re-applies the remember-me lifetime chosen at login, so every
// later save of the session keeps the persistent cookie.
func SessionLifetime(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if remember, _ := session.Get(constants.SessionRememberKey).(bool); remember {
			session.Options(SessionOptions(cfg, cfg.SessionRememberMaxAge))
		}
		c.Next()
	}
}
