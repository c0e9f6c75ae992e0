package models

import "time"

// Solution is an append-only log of submissions: one row per attempt,
// repeated submissions of the same problem each get their own row.
type Solution struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ProblemID uint      `gorm:"not null;index" json:"problem_id"`
	Answer    string    `gorm:"size:256" json:"answer"`
	IsCorrect bool      `gorm:"not null;default:false" json:"is_correct"`
	SolvedAt  time.Time `json:"solved_at"`
}
