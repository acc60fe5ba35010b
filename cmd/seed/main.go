package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"taskriser/internal/auth"
	"taskriser/internal/config"
	"taskriser/internal/db"
	"taskriser/internal/model"
	"taskriser/internal/repository"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Println("Admin user already exists.")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: hash,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Seeded admin user!")
}
