package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/worknest/staff/internal/config"
	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/logger"
	"github.com/worknest/staff/internal/middleware"
	"github.com/worknest/staff/internal/repository"
	"github.com/worknest/staff/internal/router"
	"github.com/worknest/staff/internal/services"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.GinMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	seedAdmin(cfg, services.NewAuthService(repository.NewUserRepository(db)))

	store, err := middleware.NewSessionStore(cfg)
	if err != nil {
		log.Fatal("Failed to create session store", zap.Error(err))
	}

	r, err := router.New(cfg, db, store, log)
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
		return
	}
	log.Info("Server exited gracefully")
}

// seedAdmin creates the superuser named in ADMIN_USERNAME on first start.
func seedAdmin(cfg *config.Config, authService *services.AuthService) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}

	_, err := authService.CreateUser(services.CreateUserInput{
		Username:    cfg.AdminUsername,
		Password:    cfg.AdminPassword,
		IsSuperuser: true,
	})
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
	case err != nil:
		zap.L().Fatal("Failed to seed admin user", zap.Error(err))
	default:
		zap.L().Info("Admin user created", zap.String("username", cfg.AdminUsername))
	}
}
