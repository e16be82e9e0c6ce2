//go:build ignore

package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/mina/shiftbase/internal/auth"
	"github.com/mina/shiftbase/internal/database"
	"github.com/mina/shiftbase/internal/database/models"
	"github.com/mina/shiftbase/pkg/config"
	"github.com/mina/shiftbase/pkg/util"
)

// Seeds a development database with an owner, their store, and one active
// employee. Run with: go run scripts/seed.go
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()

	jwtService := auth.NewJWTService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry(),
		cfg.JWT.RefreshExpiry(),
	)
	authService := auth.NewService(db, auth.NewUserRepository(db), jwtService)

	result, err := authService.SignupOwner(ctx, auth.SignupOwnerInput{
		Email:     "owner@shiftbase.dev",
		Password:  "Owner1234",
		Name:      "Dev Owner",
		StoreName: "Dev Cafe",
		StoreType: models.StoreTypeCafe,
	})
	if err != nil {
		log.Fatalf("failed to seed owner: %v", err)
	}

	hash, err := auth.HashPassword("Worker1234")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	worker := models.User{
		Email:        "worker@shiftbase.dev",
		PasswordHash: hash,
		Name:         "Dev Worker",
		Role:         models.RoleEmployee,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(&worker).Error; err != nil {
		log.Fatalf("failed to seed worker: %v", err)
	}

	emp := models.Employee{
		UserID:     worker.ID,
		StoreID:    result.Store.ID,
		Role:       "barista",
		HourlyWage: 11000,
		Status:     models.EmployeeStatusActive,
		HiredAt:    result.Store.CreatedAt,
	}
	if err := db.Create(&emp).Error; err != nil {
		log.Fatalf("failed to seed employment: %v", err)
	}

	logger.Info("seed complete",
		"owner", result.User.Email,
		"store", result.Store.ID,
		"worker", worker.Email,
	)
}
