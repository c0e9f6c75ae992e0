package services

import (
	"errors"

	"github.com/ArtemTurin1/miniapp/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type UserStats struct {
	Score             int   `json:"score"`
	Level             int   `json:"level"`
	SolvedCount       int64 `json:"solved_count"`
	MathSolved        int64 `json:"math_solved"`
	InformaticsSolved int64 `json:"informatics_solved"`
}

// GetStats counts correct submissions (not distinct problems), overall
// and per subject.
func (s *StatsService) GetStats(userID uint) (*UserStats, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	stats := &UserStats{
		Score: user.Score,
		Level: user.Level,
	}

	if err := s.db.Model(&models.Solution{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&stats.SolvedCount).Error; err != nil {
		return nil, err
	}

	if err := s.countBySubject(userID, models.SubjectMath, &stats.MathSolved); err != nil {
		return nil, err
	}
	if err := s.countBySubject(userID, models.SubjectInformatics, &stats.InformaticsSolved); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *StatsService) countBySubject(userID uint, subject string, out *int64) error {
	return s.db.Model(&models.Solution{}).
		Joins("JOIN problems ON problems.id = solutions.problem_id").
		Where("solutions.user_id = ? AND solutions.is_correct = ? AND problems.subject = ?", userID, true, subject).
		Count(out).Error
}
