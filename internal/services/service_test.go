package services

import (
	"path/filepath"
	"testing"

	"github.com/ArtemTurin1/miniapp/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Problem{},
		&models.Solution{},
		&models.Task{},
	))
	return db
}

func seedProblem(t *testing.T, db *gorm.DB, subject, answer string, points int) *models.Problem {
	t.Helper()

	problem := models.Problem{
		Title:         "test problem",
		Description:   "test description",
		Subject:       subject,
		Difficulty:    models.DifficultyEasy,
		CorrectAnswer: answer,
		Points:        points,
	}
	require.NoError(t, db.Create(&problem).Error)
	return &problem
}

func seedUser(t *testing.T, db *gorm.DB, tgID int64, score int) *models.User {
	t.Helper()

	user := models.User{
		TelegramID: &tgID,
		Score:      score,
		Level:      score/100 + 1,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
