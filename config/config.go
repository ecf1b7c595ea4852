package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/litongxue7788/diabetic-diet-analyzer/models"
)

var DB *gorm.DB

// Load reads .env when present. Deployments without the file rely on the
// process environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

// InitDB connects the optional history store. When DB_HOST is not set the
// service runs statelessly and the history endpoints stay disabled.
func InitDB() error {
	if os.Getenv("DB_HOST") == "" {
		log.Println("DB_HOST not set, analysis history disabled")
		return nil
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.AnalysisRecord{}); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	DB = db
	return nil
}
