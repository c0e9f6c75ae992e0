package database

import (
	"fmt"
	"log"

	"github.com/ArtemTurin1/miniapp/internal/config"
	"github.com/ArtemTurin1/miniapp/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database selected by DB_DRIVER. TranslateError lets
// services match gorm.ErrDuplicatedKey regardless of the driver.
func Connect(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Printf("database connected (%s)", cfg.DBDriver)
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Problem{},
		&models.Solution{},
		&models.Task{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

// Seed inserts the sample problem set on first startup. A non-empty
// problems table is left untouched.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Problem{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count problems: %v", err)
	}
	if count > 0 {
		return
	}

	problems := []models.Problem{
		{
			Title:         "Quadratic equation",
			Description:   "Solve the equation: x² - 5x + 6 = 0",
			Subject:       models.SubjectMath,
			Difficulty:    models.DifficultyEasy,
			CorrectAnswer: "2;3",
			Points:        10,
		},
		{
			Title:         "Triangle area",
			Description:   "Find the area of a triangle with sides 5, 12, 13",
			Subject:       models.SubjectMath,
			Difficulty:    models.DifficultyMedium,
			CorrectAnswer: "30",
			Points:        20,
		},
		{
			Title:         "Binary search",
			Description:   "What is the time complexity of binary search?",
			Subject:       models.SubjectInformatics,
			Difficulty:    models.DifficultyEasy,
			CorrectAnswer: "O(log n)",
			Points:        10,
		},
		{
			Title:         "Sorting algorithms",
			Description:   "Which sorting algorithm has O(n²) worst-case complexity?",
			Subject:       models.SubjectInformatics,
			Difficulty:    models.DifficultyMedium,
			CorrectAnswer: "bubble sort",
			Points:        20,
		},
		{
			Title:         "Hash collisions",
			Description:   "What is the expected lookup complexity of a hash table with separate chaining and a good hash function?",
			Subject:       models.SubjectInformatics,
			Difficulty:    models.DifficultyHard,
			CorrectAnswer: "O(1)",
			Points:        30,
		},
	}

	if err := db.Create(&problems).Error; err != nil {
		log.Fatalf("failed to seed problems: %v", err)
	}
	log.Printf("seeded %d problems", len(problems))
}
