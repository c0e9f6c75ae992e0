package services

import (
	"errors"
	"time"

	"github.com/ArtemTurin1/miniapp/internal/models"

	"gorm.io/gorm"
)

type SolutionService struct {
	db      *gorm.DB
	answers *AnswerService
}

func NewSolutionService(db *gorm.DB, answers *AnswerService) *SolutionService {
	return &SolutionService{db: db, answers: answers}
}

// SolveResult reports the outcome of a submission. CorrectAnswer carries
// the raw stored answer string only when the submission was wrong.
type SolveResult struct {
	Correct       bool    `json:"correct"`
	CorrectAnswer *string `json:"correct_answer"`
	PointsEarned  int     `json:"points_earned"`
	NewScore      int     `json:"new_score"`
}

// Check judges a submission and records it. The attempt row and the
// user's score/level update commit in one transaction: either both land
// or neither does. Nothing is recorded when the user or problem is
// missing.
func (s *SolutionService) Check(userID, problemID uint, answer string) (*SolveResult, error) {
	var problem models.Problem
	if err := s.db.First(&problem, problemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProblemNotFound
		}
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isCorrect := s.answers.Matches(answer, problem.CorrectAnswer)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		solution := models.Solution{
			UserID:    user.ID,
			ProblemID: problem.ID,
			Answer:    answer,
			IsCorrect: isCorrect,
			SolvedAt:  time.Now(),
		}
		if err := tx.Create(&solution).Error; err != nil {
			return err
		}

		if isCorrect {
			user.Score += problem.Points
			user.Level = user.Score/100 + 1
			if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
				Updates(map[string]interface{}{"score": user.Score, "level": user.Level}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &SolveResult{
		Correct:  isCorrect,
		NewScore: user.Score,
	}
	if isCorrect {
		result.PointsEarned = problem.Points
	} else {
		result.CorrectAnswer = &problem.CorrectAnswer
	}
	return result, nil
}
