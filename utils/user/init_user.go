package main

import (
	"log"
	"os"

	"github.com/rockartdb/rockartdb-backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Creates the initial staff user against the configured database. Run once
// after provisioning; a second run is a no-op.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		log.Fatalf("failed to migrate user model: %v", err)
	}

	username := os.Getenv("INIT_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("INIT_PASSWORD")
	if password == "" {
		password = "admin"
	}

	var user models.UserModel
	result := db.Where("username = ?", username).First(&user)
	if result.Error == nil {
		log.Printf("User '%s' already exists\n", username)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newUser := models.UserModel{
		Username: username,
		Password: string(hashedPassword),
		IsStaff:  true,
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Printf("Staff user '%s' created\n", username)
}
