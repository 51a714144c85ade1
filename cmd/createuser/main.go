// Command createuser adds a login account to the staff records database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/worknest/staff/internal/config"
	"github.com/worknest/staff/internal/database"
	"github.com/worknest/staff/internal/logger"
	"github.com/worknest/staff/internal/repository"
	"github.com/worknest/staff/internal/services"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	username := flag.String("username", "", "login name of the new user")
	password := flag.String("password", "", "password of the new user (or CREATEUSER_PASSWORD)")
	superuser := flag.Bool("superuser", false, "grant access to the operator console")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("CREATEUSER_PASSWORD")
	}

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

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	authService := services.NewAuthService(repository.NewUserRepository(db))
	user, err := authService.CreateUser(services.CreateUserInput{
		Username:    *username,
		Password:    *password,
		IsSuperuser: *superuser,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "createuser:", err)
		os.Exit(1)
	}

	log.Info("User created",
		zap.Uint64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Bool("superuser", user.IsSuperuser),
	)
}
