package services

import (
	"github.com/ArtemTurin1/miniapp/internal/models"

	"gorm.io/gorm"
)

type ProblemService struct {
	db *gorm.DB
}

func NewProblemService(db *gorm.DB) *ProblemService {
	return &ProblemService{db: db}
}

// List returns problems, optionally filtered by subject and difficulty.
// A value that is not a known enum member does not error: that filter is
// ignored and the dimension stays unfiltered.
func (s *ProblemService) List(subject, difficulty string) ([]models.Problem, error) {
	query := s.db.Model(&models.Problem{})

	if validSubject(subject) {
		query = query.Where("subject = ?", subject)
	}
	if validDifficulty(difficulty) {
		query = query.Where("difficulty = ?", difficulty)
	}

	var problems []models.Problem
	if err := query.Order("id ASC").Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

func validSubject(s string) bool {
	return s == models.SubjectMath || s == models.SubjectInformatics
}

func validDifficulty(d string) bool {
	return d == models.DifficultyEasy || d == models.DifficultyMedium || d == models.DifficultyHard
}
